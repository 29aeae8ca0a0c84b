package domain

// UserRole defines the fixed role set of the portal.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleHOD   UserRole = "hod"
	RoleUser  UserRole = "user"
)

// ValidUserRoles enumerates the assignable roles. The set is fixed by
// design and not extensible at runtime.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin: true,
	RoleHOD:   true,
	RoleUser:  true,
}

// UploadStatus represents the lifecycle of a monthly MIS upload.
type UploadStatus string

const (
	// UploadStatusPending exists only between blob save and structural
	// validation; a healthy submission lands directly in Validated.
	UploadStatusPending   UploadStatus = "pending"
	UploadStatusValidated UploadStatus = "validated"
	UploadStatusApproved  UploadStatus = "approved"
	UploadStatusRejected  UploadStatus = "rejected"
)

// ReviewableStatuses are the statuses shown in the approval queue.
var ReviewableStatuses = []UploadStatus{UploadStatusPending, UploadStatusValidated}

// Decided reports whether the status is terminal. Approved and rejected
// uploads are never reviewed again.
func (s UploadStatus) Decided() bool {
	return s == UploadStatusApproved || s == UploadStatusRejected
}

// SpreadsheetType represents the allowed spreadsheet formats for upload.
type SpreadsheetType string

const (
	SpreadsheetXLSX SpreadsheetType = "xlsx"
	SpreadsheetXLS  SpreadsheetType = "xls"
)

// AllowedSpreadsheetExtensions maps file extensions (without dot) to SpreadsheetType.
var AllowedSpreadsheetExtensions = map[string]SpreadsheetType{
	"xlsx": SpreadsheetXLSX,
	"xls":  SpreadsheetXLS,
}

// SpreadsheetContentTypes maps SpreadsheetType to its MIME content type.
var SpreadsheetContentTypes = map[SpreadsheetType]string{
	SpreadsheetXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	SpreadsheetXLS:  "application/vnd.ms-excel",
}

// AuditAction enumerates upload audit log actions.
type AuditAction string

const (
	AuditUploadSubmitted AuditAction = "upload.submitted"
	AuditUploadApproved  AuditAction = "upload.approved"
	AuditUploadRejected  AuditAction = "upload.rejected"
	AuditUploadDeleted   AuditAction = "upload.deleted"
)
