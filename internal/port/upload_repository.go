package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"misportal/internal/domain"
)

// UploadFilter narrows upload listings. Nil fields are ignored.
type UploadFilter struct {
	DepartmentID    *uuid.UUID
	FinancialYearID *uuid.UUID
	UploadedBy      *uuid.UUID
	Month           *int
	Status          *domain.UploadStatus
}

// StatusCount pairs an upload status with how many uploads carry it.
type StatusCount struct {
	Status domain.UploadStatus `db:"status" json:"status"`
	Count  int                 `db:"count" json:"count"`
}

// UploadRepository defines the contract for upload persistence.
type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Upload, error)
	List(ctx context.Context, filter UploadFilter, offset, limit int) ([]domain.Upload, int, error)
	// UpdateDecision stamps status, reviewer and timestamp in a single
	// statement. A later decision overwrites an earlier one. Returns
	// domain.ErrNotFound when the upload does not exist.
	UpdateDecision(ctx context.Context, id uuid.UUID, status domain.UploadStatus, decidedBy uuid.UUID, decidedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, filter UploadFilter) ([]StatusCount, error)
	// DepartmentIDsWithUpload returns the departments that have at least
	// one upload for the given financial year and month.
	DepartmentIDsWithUpload(ctx context.Context, financialYearID uuid.UUID, month int) ([]uuid.UUID, error)
}

// UploadAuditRepository defines the contract for upload audit log persistence.
type UploadAuditRepository interface {
	Create(ctx context.Context, entry *domain.UploadAuditEntry) error
	ListByUpload(ctx context.Context, uploadID uuid.UUID, offset, limit int) ([]domain.UploadAuditEntry, int, error)
}
