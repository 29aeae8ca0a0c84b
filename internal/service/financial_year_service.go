package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"misportal/internal/domain"
	"misportal/internal/port"
)

// CreateFinancialYearInput is the DTO for creating a financial year.
type CreateFinancialYearInput struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// UpdateFinancialYearInput is the DTO for updating a financial year.
type UpdateFinancialYearInput struct {
	Name      *string    `json:"name"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// FinancialYearService defines the financial year master-data contract.
type FinancialYearService interface {
	Create(ctx context.Context, input CreateFinancialYearInput) (*domain.FinancialYear, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FinancialYear, error)
	GetActive(ctx context.Context) (*domain.FinancialYear, error)
	List(ctx context.Context, offset, limit int) ([]domain.FinancialYear, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateFinancialYearInput) (*domain.FinancialYear, error)
	Activate(ctx context.Context, id uuid.UUID) (*domain.FinancialYear, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type financialYearService struct {
	repo port.FinancialYearRepository
}

// NewFinancialYearService creates a new FinancialYearService implementation.
func NewFinancialYearService(repo port.FinancialYearRepository) FinancialYearService {
	return &financialYearService{repo: repo}
}

func (s *financialYearService) Create(ctx context.Context, input CreateFinancialYearInput) (*domain.FinancialYear, error) {
	if !input.StartDate.Before(input.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}

	fy := &domain.FinancialYear{
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		IsActive:  false,
	}
	if err := s.repo.Create(ctx, fy); err != nil {
		return nil, err
	}
	return fy, nil
}

func (s *financialYearService) GetByID(ctx context.Context, id uuid.UUID) (*domain.FinancialYear, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *financialYearService) GetActive(ctx context.Context) (*domain.FinancialYear, error) {
	return s.repo.GetActive(ctx)
}

func (s *financialYearService) List(ctx context.Context, offset, limit int) ([]domain.FinancialYear, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *financialYearService) Update(ctx context.Context, id uuid.UUID, input UpdateFinancialYearInput) (*domain.FinancialYear, error) {
	fy, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		fy.Name = *input.Name
	}
	if input.StartDate != nil {
		fy.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		fy.EndDate = *input.EndDate
	}
	if !fy.StartDate.Before(fy.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}

	if err := s.repo.Update(ctx, fy); err != nil {
		return nil, err
	}
	return fy, nil
}

// Activate makes the given year the single active one.
func (s *financialYearService) Activate(ctx context.Context, id uuid.UUID) (*domain.FinancialYear, error) {
	fy, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fy.IsActive {
		return nil, domain.ErrAlreadyActive
	}
	if err := s.repo.Activate(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *financialYearService) Delete(ctx context.Context, id uuid.UUID) error {
	uploads, err := s.repo.CountUploads(ctx, id)
	if err != nil {
		return err
	}
	if uploads > 0 {
		return domain.ErrHasReferences
	}
	return s.repo.Delete(ctx, id)
}
