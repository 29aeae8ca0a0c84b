package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"misportal/internal/domain"
	"misportal/internal/service"
	"misportal/mocks"
)

func TestFinancialYearService_Create_Success(t *testing.T) {
	repo := new(mocks.MockFinancialYearRepo)
	svc := service.NewFinancialYearService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.FinancialYear")).Return(nil)

	fy, err := svc.Create(context.Background(), service.CreateFinancialYearInput{
		Name:      "2025-2026",
		StartDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-2026", fy.Name)
	// New years start inactive; activation is an explicit step.
	assert.False(t, fy.IsActive)
}

func TestFinancialYearService_Create_InvalidDateRange(t *testing.T) {
	repo := new(mocks.MockFinancialYearRepo)
	svc := service.NewFinancialYearService(repo)

	start := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), service.CreateFinancialYearInput{
		Name:      "backwards",
		StartDate: start,
		EndDate:   end,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	// Equal dates are just as invalid.
	_, err = svc.Create(context.Background(), service.CreateFinancialYearInput{
		Name:      "zero-length",
		StartDate: start,
		EndDate:   start,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFinancialYearService_Update_RejectsInvertedRange(t *testing.T) {
	repo := new(mocks.MockFinancialYearRepo)
	svc := service.NewFinancialYearService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&domain.FinancialYear{
		ID:        id,
		Name:      "2025-2026",
		StartDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	}, nil)

	badEnd := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Update(context.Background(), id, service.UpdateFinancialYearInput{EndDate: &badEnd})

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFinancialYearService_Activate_Success(t *testing.T) {
	repo := new(mocks.MockFinancialYearRepo)
	svc := service.NewFinancialYearService(repo)

	id := uuid.New()
	inactive := &domain.FinancialYear{ID: id, Name: "2026-2027", IsActive: false}
	activated := &domain.FinancialYear{ID: id, Name: "2026-2027", IsActive: true}

	repo.On("GetByID", mock.Anything, id).Return(inactive, nil).Once()
	repo.On("Activate", mock.Anything, id).Return(nil)
	repo.On("GetByID", mock.Anything, id).Return(activated, nil).Once()

	fy, err := svc.Activate(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, fy.IsActive)
	repo.AssertExpectations(t)
}

func TestFinancialYearService_Activate_AlreadyActive(t *testing.T) {
	repo := new(mocks.MockFinancialYearRepo)
	svc := service.NewFinancialYearService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&domain.FinancialYear{ID: id, IsActive: true}, nil)

	_, err := svc.Activate(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrAlreadyActive)
	repo.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
}

func TestFinancialYearService_Delete_BlockedByUploads(t *testing.T) {
	repo := new(mocks.MockFinancialYearRepo)
	svc := service.NewFinancialYearService(repo)

	id := uuid.New()
	repo.On("CountUploads", mock.Anything, id).Return(3, nil)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrHasReferences)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestFinancialYearService_Delete_Success(t *testing.T) {
	repo := new(mocks.MockFinancialYearRepo)
	svc := service.NewFinancialYearService(repo)

	id := uuid.New()
	repo.On("CountUploads", mock.Anything, id).Return(0, nil)
	repo.On("Delete", mock.Anything, id).Return(nil)

	err := svc.Delete(context.Background(), id)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
