package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"misportal/internal/domain"
	"misportal/internal/port"
)

type uploadRepo struct {
	db *sqlx.DB
}

// NewUploadRepo creates a new PostgreSQL-backed UploadRepository.
func NewUploadRepo(db *sqlx.DB) port.UploadRepository {
	return &uploadRepo{db: db}
}

// filterClause renders the filter as a WHERE clause with positional args.
func filterClause(filter port.UploadFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(col string, val interface{}) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if filter.DepartmentID != nil {
		add("department_id", *filter.DepartmentID)
	}
	if filter.FinancialYearID != nil {
		add("financial_year_id", *filter.FinancialYearID)
	}
	if filter.UploadedBy != nil {
		add("uploaded_by", *filter.UploadedBy)
	}
	if filter.Month != nil {
		add("month", *filter.Month)
	}
	if filter.Status != nil {
		add("status", *filter.Status)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Create inserts the upload. The service assigns the ID up front because
// the blob key embeds it; only a zero ID is replaced here.
func (r *uploadRepo) Create(ctx context.Context, upload *domain.Upload) error {
	if upload.ID == uuid.Nil {
		upload.ID = uuid.New()
	}
	now := time.Now().UTC()
	upload.CreatedAt = now
	upload.UpdatedAt = now

	query := `INSERT INTO uploads (id, department_id, month, financial_year_id, uploaded_by,
		file_name, original_name, file_size, content_type, s3_bucket, s3_key, status,
		decided_by, decided_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		upload.ID, upload.DepartmentID, upload.Month, upload.FinancialYearID, upload.UploadedBy,
		upload.FileName, upload.OriginalName, upload.FileSize, upload.ContentType,
		upload.S3Bucket, upload.S3Key, upload.Status,
		upload.DecidedBy, upload.DecidedAt, upload.CreatedAt, upload.UpdatedAt)
	if err != nil {
		return fmt.Errorf("uploadRepo.Create: %w", err)
	}
	return nil
}

func (r *uploadRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Upload, error) {
	var upload domain.Upload
	err := r.db.GetContext(ctx, &upload, "SELECT * FROM uploads WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("uploadRepo.GetByID: %w", err)
	}
	return &upload, nil
}

func (r *uploadRepo) List(ctx context.Context, filter port.UploadFilter, offset, limit int) ([]domain.Upload, int, error) {
	where, args := filterClause(filter)

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM uploads"+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("uploadRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM uploads%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var uploads []domain.Upload
	err = r.db.SelectContext(ctx, &uploads, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("uploadRepo.List: %w", err)
	}
	return uploads, total, nil
}

// UpdateDecision stamps status, reviewer and timestamp in one UPDATE so
// two concurrent reviewers cannot interleave a partial write. A later
// decision overwrites an earlier one; the audit log keeps the history.
func (r *uploadRepo) UpdateDecision(ctx context.Context, id uuid.UUID, status domain.UploadStatus, decidedBy uuid.UUID, decidedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE uploads SET status = $1, decided_by = $2, decided_at = $3, updated_at = NOW()
		 WHERE id = $4`,
		status, decidedBy, decidedAt, id)
	if err != nil {
		return fmt.Errorf("uploadRepo.UpdateDecision: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *uploadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM uploads WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("uploadRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *uploadRepo) CountByStatus(ctx context.Context, filter port.UploadFilter) ([]port.StatusCount, error) {
	where, args := filterClause(filter)

	var counts []port.StatusCount
	err := r.db.SelectContext(ctx, &counts,
		"SELECT status, COUNT(*) AS count FROM uploads"+where+" GROUP BY status", args...)
	if err != nil {
		return nil, fmt.Errorf("uploadRepo.CountByStatus: %w", err)
	}
	return counts, nil
}

func (r *uploadRepo) DepartmentIDsWithUpload(ctx context.Context, financialYearID uuid.UUID, month int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids,
		"SELECT DISTINCT department_id FROM uploads WHERE financial_year_id = $1 AND month = $2",
		financialYearID, month)
	if err != nil {
		return nil, fmt.Errorf("uploadRepo.DepartmentIDsWithUpload: %w", err)
	}
	return ids, nil
}
