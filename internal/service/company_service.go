package service

import (
	"context"

	"github.com/google/uuid"

	"misportal/internal/domain"
	"misportal/internal/port"
)

// CreateCompanyInput is the DTO for creating a company.
type CreateCompanyInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// UpdateCompanyInput is the DTO for updating a company.
type UpdateCompanyInput struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

// CompanyService defines the company master-data contract.
type CompanyService interface {
	Create(ctx context.Context, input CreateCompanyInput) (*domain.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context, offset, limit int) ([]domain.Company, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCompanyInput) (*domain.Company, error)
	Toggle(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type companyService struct {
	repo port.CompanyRepository
}

// NewCompanyService creates a new CompanyService implementation.
func NewCompanyService(repo port.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) Create(ctx context.Context, input CreateCompanyInput) (*domain.Company, error) {
	company := &domain.Company{
		Name:     input.Name,
		Address:  input.Address,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *companyService) List(ctx context.Context, offset, limit int) ([]domain.Company, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *companyService) Update(ctx context.Context, id uuid.UUID, input UpdateCompanyInput) (*domain.Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Address != nil {
		company.Address = *input.Address
	}
	if input.IsActive != nil {
		company.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Toggle flips the active flag. Deactivation is the supported way to
// retire a company that still owns departments.
func (s *companyService) Toggle(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	company.IsActive = !company.IsActive
	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete refuses to remove a company that still owns departments.
func (s *companyService) Delete(ctx context.Context, id uuid.UUID) error {
	departments, err := s.repo.CountDepartments(ctx, id)
	if err != nil {
		return err
	}
	if departments > 0 {
		return domain.ErrHasReferences
	}
	return s.repo.Delete(ctx, id)
}
