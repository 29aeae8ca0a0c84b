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

type financialYearRepo struct {
	db *sqlx.DB
}

// NewFinancialYearRepo creates a new PostgreSQL-backed FinancialYearRepository.
func NewFinancialYearRepo(db *sqlx.DB) port.FinancialYearRepository {
	return &financialYearRepo{db: db}
}

func (r *financialYearRepo) Create(ctx context.Context, fy *domain.FinancialYear) error {
	fy.ID = uuid.New()
	now := time.Now().UTC()
	fy.CreatedAt = now
	fy.UpdatedAt = now

	query := `INSERT INTO financial_years (id, name, start_date, end_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		fy.ID, fy.Name, fy.StartDate, fy.EndDate, fy.IsActive, fy.CreatedAt, fy.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("financialYearRepo.Create: %w", err)
	}
	return nil
}

func (r *financialYearRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FinancialYear, error) {
	var fy domain.FinancialYear
	err := r.db.GetContext(ctx, &fy, "SELECT * FROM financial_years WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("financialYearRepo.GetByID: %w", err)
	}
	return &fy, nil
}

func (r *financialYearRepo) GetActive(ctx context.Context) (*domain.FinancialYear, error) {
	var fy domain.FinancialYear
	err := r.db.GetContext(ctx, &fy, "SELECT * FROM financial_years WHERE is_active = true")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("financialYearRepo.GetActive: %w", err)
	}
	return &fy, nil
}

func (r *financialYearRepo) List(ctx context.Context, offset, limit int) ([]domain.FinancialYear, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM financial_years")
	if err != nil {
		return nil, 0, fmt.Errorf("financialYearRepo.List count: %w", err)
	}

	var years []domain.FinancialYear
	err = r.db.SelectContext(ctx, &years,
		"SELECT * FROM financial_years ORDER BY start_date DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("financialYearRepo.List: %w", err)
	}
	return years, total, nil
}

func (r *financialYearRepo) Update(ctx context.Context, fy *domain.FinancialYear) error {
	fy.UpdatedAt = time.Now().UTC()
	query := `UPDATE financial_years SET name = $1, start_date = $2, end_date = $3, updated_at = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		fy.Name, fy.StartDate, fy.EndDate, fy.UpdatedAt, fy.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("financialYearRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *financialYearRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM financial_years WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("financialYearRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Activate deactivates every other year and activates the given one in a
// single transaction, so exactly one year is active afterwards.
func (r *financialYearRepo) Activate(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("financialYearRepo.Activate begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx,
		"UPDATE financial_years SET is_active = false, updated_at = NOW() WHERE is_active = true AND id <> $1", id); err != nil {
		return fmt.Errorf("financialYearRepo.Activate deactivate: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE financial_years SET is_active = true, updated_at = NOW() WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("financialYearRepo.Activate: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("financialYearRepo.Activate commit: %w", err)
	}
	return nil
}

func (r *financialYearRepo) CountUploads(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM uploads WHERE financial_year_id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("financialYearRepo.CountUploads: %w", err)
	}
	return count, nil
}
