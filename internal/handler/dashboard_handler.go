package handler

import (
	"github.com/gin-gonic/gin"

	"misportal/internal/service"
)

// DashboardHandler handles the landing-page summary endpoint.
type DashboardHandler struct {
	statsService service.StatsService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(statsService service.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

// Get handles GET /api/v1/dashboard
// @Summary Dashboard summary
// @Description Upload counts by status for the active financial year, the window verdict for today, and (for reviewers) per-department submission progress for the current month.
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=service.Dashboard} "Dashboard summary"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	dash, err := h.statsService.Dashboard(c.Request.Context(), actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, dash)
}
