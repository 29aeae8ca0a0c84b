package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrWrongDepartment     = errors.New("action restricted to your own department")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDepartmentInactive  = errors.New("department is deactivated and accepts no submissions")
	ErrWindowNotOpen       = errors.New("upload window has not opened yet")
	ErrWindowClosed        = errors.New("upload window is closed for the current month")
	ErrFileInvalid         = errors.New("spreadsheet failed structural validation")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrHasReferences       = errors.New("record has associated references; deactivate it instead of deleting")
	ErrDuplicateName       = errors.New("name already exists")
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrInvalidDateRange    = errors.New("start date must be before end date")
	ErrAlreadyActive       = errors.New("financial year is already active")
	ErrInvalidRole         = errors.New("invalid role")
	ErrNoTemplate          = errors.New("no template found for this department")
)
