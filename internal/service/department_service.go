package service

import (
	"context"

	"github.com/google/uuid"

	"misportal/internal/domain"
	"misportal/internal/port"
)

// CreateDepartmentInput is the DTO for creating a department.
type CreateDepartmentInput struct {
	CompanyID   uuid.UUID `json:"company_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
}

// UpdateDepartmentInput is the DTO for updating a department.
type UpdateDepartmentInput struct {
	CompanyID   *uuid.UUID `json:"company_id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	IsActive    *bool      `json:"is_active"`
}

// DepartmentService defines the department master-data contract.
type DepartmentService interface {
	Create(ctx context.Context, input CreateDepartmentInput) (*domain.Department, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	List(ctx context.Context, offset, limit int) ([]domain.Department, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateDepartmentInput) (*domain.Department, error)
	Toggle(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type departmentService struct {
	repo        port.DepartmentRepository
	companyRepo port.CompanyRepository
}

// NewDepartmentService creates a new DepartmentService implementation.
func NewDepartmentService(repo port.DepartmentRepository, companyRepo port.CompanyRepository) DepartmentService {
	return &departmentService{repo: repo, companyRepo: companyRepo}
}

func (s *departmentService) Create(ctx context.Context, input CreateDepartmentInput) (*domain.Department, error) {
	if _, err := s.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	dept := &domain.Department{
		CompanyID:   input.CompanyID,
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *departmentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *departmentService) List(ctx context.Context, offset, limit int) ([]domain.Department, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *departmentService) Update(ctx context.Context, id uuid.UUID, input UpdateDepartmentInput) (*domain.Department, error) {
	dept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CompanyID != nil {
		if _, err := s.companyRepo.GetByID(ctx, *input.CompanyID); err != nil {
			return nil, err
		}
		dept.CompanyID = *input.CompanyID
	}
	if input.Name != nil {
		dept.Name = *input.Name
	}
	if input.Description != nil {
		dept.Description = *input.Description
	}
	if input.IsActive != nil {
		dept.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// Toggle flips the active flag. A deactivated department keeps its
// history but accepts no new submissions.
func (s *departmentService) Toggle(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	dept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dept.IsActive = !dept.IsActive
	if err := s.repo.Update(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// Delete refuses to remove a department that still has users, uploads
// or templates pointing at it.
func (s *departmentService) Delete(ctx context.Context, id uuid.UUID) error {
	users, uploads, templates, err := s.repo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if users > 0 || uploads > 0 || templates > 0 {
		return domain.ErrHasReferences
	}
	return s.repo.Delete(ctx, id)
}
