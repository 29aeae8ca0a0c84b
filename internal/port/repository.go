package port

import (
	"context"

	"github.com/google/uuid"

	"misportal/internal/domain"
)

// CompanyRepository defines the contract for company persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context, offset, limit int) ([]domain.Company, int, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountDepartments(ctx context.Context, id uuid.UUID) (int, error)
}

// DepartmentRepository defines the contract for department persistence.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	GetByName(ctx context.Context, name string) (*domain.Department, error)
	List(ctx context.Context, offset, limit int) ([]domain.Department, int, error)
	ListAll(ctx context.Context) ([]domain.Department, error)
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id uuid.UUID) error
	// CountReferences returns how many users, uploads and templates point
	// at the department.
	CountReferences(ctx context.Context, id uuid.UUID) (users, uploads, templates int, err error)
}

// FinancialYearRepository defines the contract for financial year persistence.
type FinancialYearRepository interface {
	Create(ctx context.Context, fy *domain.FinancialYear) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FinancialYear, error)
	GetActive(ctx context.Context) (*domain.FinancialYear, error)
	List(ctx context.Context, offset, limit int) ([]domain.FinancialYear, int, error)
	Update(ctx context.Context, fy *domain.FinancialYear) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Activate marks the given year active and deactivates every other
	// year in a single transaction.
	Activate(ctx context.Context, id uuid.UUID) error
	CountUploads(ctx context.Context, id uuid.UUID) (int, error)
}

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountUploads(ctx context.Context, id uuid.UUID) (int, error)
}

// TemplateRepository defines the contract for report template persistence.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *domain.Template) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	// GetLatestForDepartment returns the most recently uploaded template
	// for the department.
	GetLatestForDepartment(ctx context.Context, departmentID uuid.UUID) (*domain.Template, error)
	List(ctx context.Context, offset, limit int) ([]domain.Template, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
