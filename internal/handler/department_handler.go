package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"misportal/internal/service"
)

// DepartmentHandler handles department master-data endpoints.
type DepartmentHandler struct {
	departmentService service.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(departmentService service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// Create handles POST /api/v1/departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	var input service.CreateDepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	dept, err := h.departmentService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, dept)
}

// Get handles GET /api/v1/departments/:id
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	dept, err := h.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, dept)
}

// List handles GET /api/v1/departments
func (h *DepartmentHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	depts, total, err := h.departmentService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, depts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/departments/:id
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	var input service.UpdateDepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	dept, err := h.departmentService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, dept)
}

// Toggle handles POST /api/v1/departments/:id/toggle
// @Summary Toggle a department's active flag
// @Description Deactivate or reactivate a department. An inactive department accepts no new uploads.
// @Tags departments
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} Response{data=domain.Department} "Department with flipped flag"
// @Security BearerAuth
// @Router /departments/{id}/toggle [post]
func (h *DepartmentHandler) Toggle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	dept, err := h.departmentService.Toggle(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, dept)
}

// Delete handles DELETE /api/v1/departments/:id
// @Summary Delete a department
// @Description Delete a department. Refused with 409 while users, uploads or templates still reference it.
// @Tags departments
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} Response{data=MessageResponse} "Department deleted"
// @Failure 409 {object} ErrorResponseBody "Department still referenced"
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	if err := h.departmentService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "department deleted"})
}
