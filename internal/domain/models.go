package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a company in the master configuration. Companies
// that should no longer be used are deactivated, not deleted.
type Company struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Department represents an organizational unit that owns users, uploads,
// and templates. It cannot be deleted while any of those reference it;
// a retired department is deactivated instead, which also closes it to
// new submissions.
type Department struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CompanyID   uuid.UUID `db:"company_id" json:"company_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// FinancialYear represents an annual reporting period. At most one is
// active at a time; the activation transition enforces exclusivity.
type FinancialYear struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	StartDate time.Time `db:"start_date" json:"start_date"`
	EndDate   time.Time `db:"end_date" json:"end_date"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated portal user.
type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	DepartmentID *uuid.UUID `db:"department_id" json:"department_id"`
	Role         UserRole   `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Upload is the lifecycle entity: one monthly spreadsheet submission.
type Upload struct {
	ID              uuid.UUID    `db:"id" json:"id"`
	DepartmentID    uuid.UUID    `db:"department_id" json:"department_id"`
	Month           int          `db:"month" json:"month"`
	FinancialYearID uuid.UUID    `db:"financial_year_id" json:"financial_year_id"`
	UploadedBy      uuid.UUID    `db:"uploaded_by" json:"uploaded_by"`
	FileName        string       `db:"file_name" json:"file_name"`
	OriginalName    string       `db:"original_name" json:"original_name"`
	FileSize        int64        `db:"file_size" json:"file_size"`
	ContentType     string       `db:"content_type" json:"content_type"`
	S3Bucket        string       `db:"s3_bucket" json:"s3_bucket"`
	S3Key           string       `db:"s3_key" json:"s3_key"`
	Status          UploadStatus `db:"status" json:"status"`
	DecidedBy       *uuid.UUID   `db:"decided_by" json:"decided_by"`
	DecidedAt       *time.Time   `db:"decided_at" json:"decided_at"`
	CreatedAt       time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at" json:"updated_at"`
}

// Template is a department-scoped reference spreadsheet. Multiple may
// exist per department; the most recent wins for download.
type Template struct {
	ID           uuid.UUID `db:"id" json:"id"`
	DepartmentID uuid.UUID `db:"department_id" json:"department_id"`
	UploadedBy   uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	FileName     string    `db:"file_name" json:"file_name"`
	OriginalName string    `db:"original_name" json:"original_name"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	ContentType  string    `db:"content_type" json:"content_type"`
	S3Bucket     string    `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string    `db:"s3_key" json:"s3_key"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// UploadAuditEntry records a single upload lifecycle action.
type UploadAuditEntry struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	UploadID  uuid.UUID   `db:"upload_id" json:"upload_id"`
	ActorID   *uuid.UUID  `db:"actor_id" json:"actor_id"`
	Action    AuditAction `db:"action" json:"action"`
	Note      string      `db:"note" json:"note"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}
