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

type departmentRepo struct {
	db *sqlx.DB
}

// NewDepartmentRepo creates a new PostgreSQL-backed DepartmentRepository.
func NewDepartmentRepo(db *sqlx.DB) port.DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	dept.ID = uuid.New()
	now := time.Now().UTC()
	dept.CreatedAt = now
	dept.UpdatedAt = now

	query := `INSERT INTO departments (id, company_id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		dept.ID, dept.CompanyID, dept.Name, dept.Description, dept.IsActive, dept.CreatedAt, dept.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("departmentRepo.Create: %w", err)
	}
	return nil
}

func (r *departmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.GetContext(ctx, &dept, "SELECT * FROM departments WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("departmentRepo.GetByID: %w", err)
	}
	return &dept, nil
}

func (r *departmentRepo) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.GetContext(ctx, &dept, "SELECT * FROM departments WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("departmentRepo.GetByName: %w", err)
	}
	return &dept, nil
}

func (r *departmentRepo) List(ctx context.Context, offset, limit int) ([]domain.Department, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM departments")
	if err != nil {
		return nil, 0, fmt.Errorf("departmentRepo.List count: %w", err)
	}

	var depts []domain.Department
	err = r.db.SelectContext(ctx, &depts,
		"SELECT * FROM departments ORDER BY name ASC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("departmentRepo.List: %w", err)
	}
	return depts, total, nil
}

func (r *departmentRepo) ListAll(ctx context.Context) ([]domain.Department, error) {
	var depts []domain.Department
	err := r.db.SelectContext(ctx, &depts, "SELECT * FROM departments ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("departmentRepo.ListAll: %w", err)
	}
	return depts, nil
}

func (r *departmentRepo) Update(ctx context.Context, dept *domain.Department) error {
	dept.UpdatedAt = time.Now().UTC()
	query := `UPDATE departments SET company_id = $1, name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query,
		dept.CompanyID, dept.Name, dept.Description, dept.IsActive, dept.UpdatedAt, dept.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("departmentRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *departmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM departments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("departmentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *departmentRepo) CountReferences(ctx context.Context, id uuid.UUID) (int, int, int, error) {
	var counts struct {
		Users     int `db:"users"`
		Uploads   int `db:"uploads"`
		Templates int `db:"templates"`
	}
	query := `SELECT
		(SELECT COUNT(*) FROM users WHERE department_id = $1) AS users,
		(SELECT COUNT(*) FROM uploads WHERE department_id = $1) AS uploads,
		(SELECT COUNT(*) FROM templates WHERE department_id = $1) AS templates`
	err := r.db.GetContext(ctx, &counts, query, id)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("departmentRepo.CountReferences: %w", err)
	}
	return counts.Users, counts.Uploads, counts.Templates, nil
}
