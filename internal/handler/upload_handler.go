package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"misportal/internal/domain"
	"misportal/internal/port"
	"misportal/internal/service"
)

// UploadHandler handles monthly report upload endpoints.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Submit handles POST /api/v1/uploads
// @Summary Submit a monthly report
// @Description Upload a monthly MIS spreadsheet (XLSX/XLS). Accepted only while the upload window is open.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet to upload (XLSX or XLS)"
// @Param department_id formData string true "Department ID"
// @Param month formData int true "Report month (1-12)"
// @Success 201 {object} Response{data=domain.Upload} "Upload accepted"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 409 {object} ErrorResponseBody "Upload window not open"
// @Failure 422 {object} ErrorResponseBody "Workbook failed structural validation"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Security BearerAuth
// @Router /uploads [post]
func (h *UploadHandler) Submit(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	departmentID, err := uuid.Parse(c.PostForm("department_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "department_id must be a valid UUID")
		return
	}
	month, err := strconv.Atoi(c.PostForm("month"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "month must be an integer between 1 and 12")
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

	upload, err := h.uploadService.Submit(c.Request.Context(), service.SubmitUploadInput{
		Actor:        actor,
		DepartmentID: departmentID,
		Month:        month,
		FileName:     header.Filename,
		Data:         data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, upload)
}

// List handles GET /api/v1/uploads
// @Summary List uploads
// @Description List uploads visible to the caller, optionally filtered by month, status or financial year. Non-admins only see their own department.
// @Tags uploads
// @Produce json
// @Param month query int false "Filter by month (1-12)"
// @Param status query string false "Filter by status (pending, validated, approved, rejected)"
// @Param financial_year_id query string false "Filter by financial year ID"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Upload,meta=PagMeta} "List of uploads"
// @Security BearerAuth
// @Router /uploads [get]
func (h *UploadHandler) List(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)

	var filter port.UploadFilter
	if v := c.Query("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "month must be an integer")
			return
		}
		filter.Month = &month
	}
	if v := c.Query("status"); v != "" {
		status := domain.UploadStatus(v)
		filter.Status = &status
	}
	if v := c.Query("financial_year_id"); v != "" {
		fyID, err := uuid.Parse(v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "financial_year_id must be a valid UUID")
			return
		}
		filter.FinancialYearID = &fyID
	}
	if v := c.Query("department_id"); v != "" {
		deptID, err := uuid.Parse(v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "department_id must be a valid UUID")
			return
		}
		filter.DepartmentID = &deptID
	}

	uploads, total, err := h.uploadService.List(c.Request.Context(), actor, filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, uploads, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/uploads/:id
func (h *UploadHandler) Get(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	upload, err := h.uploadService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, upload)
}

// Approve handles POST /api/v1/uploads/:id/approve
// @Summary Approve an upload
// @Description Approve a pending upload. HODs may only approve uploads of their own department.
// @Tags uploads
// @Produce json
// @Param id path string true "Upload ID"
// @Param request body DecisionRequest false "Optional reviewer note"
// @Success 200 {object} Response{data=domain.Upload} "Upload approved"
// @Failure 403 {object} ErrorResponseBody "Not a reviewer or wrong department"
// @Failure 404 {object} ErrorResponseBody "Upload not found"
// @Security BearerAuth
// @Router /uploads/{id}/approve [post]
func (h *UploadHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject handles POST /api/v1/uploads/:id/reject
func (h *UploadHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *UploadHandler) decide(c *gin.Context, approve bool) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	var req DecisionRequest
	_ = c.ShouldBindJSON(&req)

	var upload *domain.Upload
	if approve {
		upload, err = h.uploadService.Approve(c.Request.Context(), actor, id, req.Note)
	} else {
		upload, err = h.uploadService.Reject(c.Request.Context(), actor, id, req.Note)
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, upload)
}

// Delete handles DELETE /api/v1/uploads/:id
func (h *UploadHandler) Delete(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	if err := h.uploadService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "upload deleted"})
}

// Download handles GET /api/v1/uploads/:id/download
func (h *UploadHandler) Download(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	url, err := h.uploadService.GetDownloadURL(c.Request.Context(), actor, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, DownloadURLResponse{DownloadURL: url})
}

// Audit handles GET /api/v1/uploads/:id/audit
func (h *UploadHandler) Audit(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return
	}

	offset, limit := pagination(c)
	entries, total, err := h.uploadService.ListAudit(c.Request.Context(), actor, id, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, entries, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Window handles GET /api/v1/uploads/window
func (h *UploadHandler) Window(c *gin.Context) {
	RespondOK(c, h.uploadService.WindowStatus())
}

// pagination parses the shared offset/limit query parameters.
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
