package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"misportal/internal/domain"
	"misportal/internal/port"
)

type uploadAuditRepo struct {
	db *sqlx.DB
}

// NewUploadAuditRepo creates a new PostgreSQL-backed UploadAuditRepository.
func NewUploadAuditRepo(db *sqlx.DB) port.UploadAuditRepository {
	return &uploadAuditRepo{db: db}
}

func (r *uploadAuditRepo) Create(ctx context.Context, entry *domain.UploadAuditEntry) error {
	entry.ID = uuid.New()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO upload_audit (id, upload_id, actor_id, action, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.UploadID, entry.ActorID, entry.Action, entry.Note, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("uploadAuditRepo.Create: %w", err)
	}
	return nil
}

func (r *uploadAuditRepo) ListByUpload(ctx context.Context, uploadID uuid.UUID, offset, limit int) ([]domain.UploadAuditEntry, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM upload_audit WHERE upload_id = $1", uploadID)
	if err != nil {
		return nil, 0, fmt.Errorf("uploadAuditRepo.ListByUpload count: %w", err)
	}

	var entries []domain.UploadAuditEntry
	err = r.db.SelectContext(ctx, &entries,
		`SELECT * FROM upload_audit WHERE upload_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		uploadID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("uploadAuditRepo.ListByUpload: %w", err)
	}
	return entries, total, nil
}
