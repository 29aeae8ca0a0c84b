package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"misportal/internal/service"
)

// FinancialYearHandler handles financial year master-data endpoints.
type FinancialYearHandler struct {
	fyService service.FinancialYearService
}

// NewFinancialYearHandler creates a new FinancialYearHandler.
func NewFinancialYearHandler(fyService service.FinancialYearService) *FinancialYearHandler {
	return &FinancialYearHandler{fyService: fyService}
}

// Create handles POST /api/v1/financial-years
func (h *FinancialYearHandler) Create(c *gin.Context) {
	var input service.CreateFinancialYearInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	fy, err := h.fyService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, fy)
}

// Get handles GET /api/v1/financial-years/:id
func (h *FinancialYearHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	fy, err := h.fyService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, fy)
}

// GetActive handles GET /api/v1/financial-years/active
func (h *FinancialYearHandler) GetActive(c *gin.Context) {
	fy, err := h.fyService.GetActive(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, fy)
}

// List handles GET /api/v1/financial-years
func (h *FinancialYearHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	years, total, err := h.fyService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, years, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/financial-years/:id
func (h *FinancialYearHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	var input service.UpdateFinancialYearInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	fy, err := h.fyService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, fy)
}

// Activate handles POST /api/v1/financial-years/:id/activate
// @Summary Activate a financial year
// @Description Make the given year the single active one; every other year is deactivated atomically.
// @Tags financial-years
// @Produce json
// @Param id path string true "Financial year ID"
// @Success 200 {object} Response{data=domain.FinancialYear} "Financial year activated"
// @Failure 409 {object} ErrorResponseBody "Year already active"
// @Security BearerAuth
// @Router /financial-years/{id}/activate [post]
func (h *FinancialYearHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	fy, err := h.fyService.Activate(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, fy)
}

// Delete handles DELETE /api/v1/financial-years/:id
func (h *FinancialYearHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	if err := h.fyService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "financial year deleted"})
}
