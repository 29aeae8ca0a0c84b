package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"misportal/internal/service"
)

// TemplateHandler handles report template endpoints.
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// Upload handles POST /api/v1/templates (admin only)
// @Summary Publish a report template
// @Description Upload the blank spreadsheet a department fills in each month. The newest template per department wins.
// @Tags templates
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Template spreadsheet (XLSX or XLS)"
// @Param department_id formData string true "Department ID"
// @Success 201 {object} Response{data=domain.Template} "Template published"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Security BearerAuth
// @Router /templates [post]
func (h *TemplateHandler) Upload(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	departmentID, err := uuid.Parse(c.PostForm("department_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "department_id must be a valid UUID")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "unable to read uploaded file")
		return
	}

	tpl, err := h.templateService.Upload(c.Request.Context(), service.UploadTemplateInput{
		Actor:        actor,
		DepartmentID: departmentID,
		FileName:     header.Filename,
		Data:         data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, tpl)
}

// Latest handles GET /api/v1/templates/department/:id
func (h *TemplateHandler) Latest(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	departmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	tpl, err := h.templateService.GetLatestForDepartment(c.Request.Context(), actor, departmentID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tpl)
}

// Download handles GET /api/v1/templates/:id/download
func (h *TemplateHandler) Download(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	url, err := h.templateService.GetDownloadURL(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, DownloadURLResponse{DownloadURL: url})
}

// List handles GET /api/v1/templates (admin only)
func (h *TemplateHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	tpls, total, err := h.templateService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, tpls, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Delete handles DELETE /api/v1/templates/:id (admin only)
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "template deleted"})
}
