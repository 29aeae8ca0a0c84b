package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"misportal/internal/domain"
	"misportal/internal/handler"
	"misportal/internal/middleware"
	"misportal/internal/port"
	"misportal/internal/service"
	"misportal/internal/window"
	"misportal/mocks"
)

func testUser(role domain.UserRole, deptID uuid.UUID) *domain.User {
	u := &domain.User{ID: uuid.New(), Username: "tester", Role: role, IsActive: true}
	if role != domain.RoleAdmin {
		u.DepartmentID = &deptID
	}
	return u
}

func authedContext(w *httptest.ResponseRecorder, user *domain.User) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextKeyUser, user)
	return c
}

// submitForm builds the multipart body the Submit endpoint expects.
func submitForm(t *testing.T, deptID, month, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	_ = writer.WriteField("department_id", deptID)
	_ = writer.WriteField("month", month)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = part.Write(content)
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadHandler_Submit_Success(t *testing.T) {
	mockSvc := new(mocks.MockUploadService)
	h := handler.NewUploadHandler(mockSvc)

	deptID := uuid.New()
	user := testUser(domain.RoleUser, deptID)
	expected := &domain.Upload{
		ID:           uuid.New(),
		DepartmentID: deptID,
		Month:        8,
		OriginalName: "finance_aug.xlsx",
		Status:       domain.UploadStatusValidated,
	}

	mockSvc.On("Submit", mock.Anything, mock.MatchedBy(func(in service.SubmitUploadInput) bool {
		return in.DepartmentID == deptID && in.Month == 8 && in.FileName == "finance_aug.xlsx"
	})).Return(expected, nil)

	body, contentType := submitForm(t, deptID.String(), "8", "finance_aug.xlsx", []byte("workbook bytes"))

	w := httptest.NewRecorder()
	c := authedContext(w, user)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestUploadHandler_Submit_BadDepartmentID(t *testing.T) {
	mockSvc := new(mocks.MockUploadService)
	h := handler.NewUploadHandler(mockSvc)

	body, contentType := submitForm(t, "not-a-uuid", "8", "finance_aug.xlsx", []byte("workbook bytes"))

	w := httptest.NewRecorder()
	c := authedContext(w, testUser(domain.RoleUser, uuid.New()))
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Submit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestUploadHandler_Submit_WindowClosed(t *testing.T) {
	mockSvc := new(mocks.MockUploadService)
	h := handler.NewUploadHandler(mockSvc)

	deptID := uuid.New()
	mockSvc.On("Submit", mock.Anything, mock.AnythingOfType("service.SubmitUploadInput")).
		Return(nil, domain.ErrWindowClosed)

	body, contentType := submitForm(t, deptID.String(), "8", "late.xlsx", []byte("workbook bytes"))

	w := httptest.NewRecorder()
	c := authedContext(w, testUser(domain.RoleUser, deptID))
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Submit(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "WINDOW_CLOSED", resp.Error.Code)
}

func TestUploadHandler_Submit_MissingUserContext(t *testing.T) {
	mockSvc := new(mocks.MockUploadService)
	h := handler.NewUploadHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/uploads", nil)

	h.Submit(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUploadHandler_Approve_Success(t *testing.T) {
	mockSvc := new(mocks.MockUploadService)
	h := handler.NewUploadHandler(mockSvc)

	deptID := uuid.New()
	user := testUser(domain.RoleHOD, deptID)
	uploadID := uuid.New()
	decided := &domain.Upload{ID: uploadID, DepartmentID: deptID, Status: domain.UploadStatusApproved}

	mockSvc.On("Approve", mock.Anything, user, uploadID, "looks good").Return(decided, nil)

	body, _ := json.Marshal(map[string]string{"note": "looks good"})

	w := httptest.NewRecorder()
	c := authedContext(w, user)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/uploads/"+uploadID.String()+"/approve", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: uploadID.String()}}

	h.Approve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestUploadHandler_Reject_WrongDepartment(t *testing.T) {
	mockSvc := new(mocks.MockUploadService)
	h := handler.NewUploadHandler(mockSvc)

	user := testUser(domain.RoleHOD, uuid.New())
	uploadID := uuid.New()

	mockSvc.On("Reject", mock.Anything, user, uploadID, "").
		Return(nil, domain.ErrWrongDepartment)

	w := httptest.NewRecorder()
	c := authedContext(w, user)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/uploads/"+uploadID.String()+"/reject", nil)
	c.Params = gin.Params{{Key: "id", Value: uploadID.String()}}

	h.Reject(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUploadHandler_List_ParsesFilters(t *testing.T) {
	mockSvc := new(mocks.MockUploadService)
	h := handler.NewUploadHandler(mockSvc)

	deptID := uuid.New()
	user := testUser(domain.RoleAdmin, deptID)

	mockSvc.On("List", mock.Anything, user, mock.MatchedBy(func(f port.UploadFilter) bool {
		return f.Month != nil && *f.Month == 8 &&
			f.Status != nil && *f.Status == domain.UploadStatusValidated
	}), 0, 20).Return([]domain.Upload{}, 0, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, user)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/uploads?month=8&status=validated", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestUploadHandler_Download_Success(t *testing.T) {
	mockSvc := new(mocks.MockUploadService)
	h := handler.NewUploadHandler(mockSvc)

	deptID := uuid.New()
	user := testUser(domain.RoleUser, deptID)
	uploadID := uuid.New()

	mockSvc.On("GetDownloadURL", mock.Anything, user, uploadID).
		Return("https://presigned.example.com/report.xlsx", nil)

	w := httptest.NewRecorder()
	c := authedContext(w, user)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/uploads/"+uploadID.String()+"/download", nil)
	c.Params = gin.Params{{Key: "id", Value: uploadID.String()}}

	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "presigned.example.com")
}

func TestUploadHandler_Window(t *testing.T) {
	mockSvc := new(mocks.MockUploadService)
	h := handler.NewUploadHandler(mockSvc)

	mockSvc.On("WindowStatus").Return(window.Status{
		Open:  true,
		Phase: window.PhaseOpen,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/uploads/window", nil)

	h.Window(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"open":true`)
}
