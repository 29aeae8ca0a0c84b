package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"misportal/internal/domain"
	"misportal/internal/port"
	"misportal/internal/service"
	"misportal/mocks"
)

func newStatsService(uploadRepo *mocks.MockUploadRepo, deptRepo *mocks.MockDepartmentRepo, fyRepo *mocks.MockFinancialYearRepo) service.StatsService {
	return service.NewStatsService(uploadRepo, deptRepo, fyRepo, testPolicy(), fixedNow(5))
}

func TestStatsService_Dashboard_NoActiveYear(t *testing.T) {
	uploadRepo := new(mocks.MockUploadRepo)
	deptRepo := new(mocks.MockDepartmentRepo)
	fyRepo := new(mocks.MockFinancialYearRepo)
	svc := newStatsService(uploadRepo, deptRepo, fyRepo)

	fyRepo.On("GetActive", mock.Anything).Return(nil, domain.ErrNotFound)

	dash, err := svc.Dashboard(context.Background(), adminUser())

	require.NoError(t, err)
	assert.Nil(t, dash.FinancialYear)
	assert.Empty(t, dash.StatusCounts)
	assert.Equal(t, 8, dash.Month)
	assert.True(t, dash.Window.Open)
}

func TestStatsService_Dashboard_AdminSeesAllDepartments(t *testing.T) {
	uploadRepo := new(mocks.MockUploadRepo)
	deptRepo := new(mocks.MockDepartmentRepo)
	fyRepo := new(mocks.MockFinancialYearRepo)
	svc := newStatsService(uploadRepo, deptRepo, fyRepo)

	fy := &domain.FinancialYear{ID: uuid.New(), Name: "2025-2026", IsActive: true}
	finance := domain.Department{ID: uuid.New(), Name: "Finance", IsActive: true}
	hr := domain.Department{ID: uuid.New(), Name: "HR", IsActive: true}

	fyRepo.On("GetActive", mock.Anything).Return(fy, nil)
	uploadRepo.On("CountByStatus", mock.Anything, mock.MatchedBy(func(f port.UploadFilter) bool {
		return f.DepartmentID == nil && f.FinancialYearID != nil && *f.FinancialYearID == fy.ID
	})).Return([]port.StatusCount{
		{Status: domain.UploadStatusValidated, Count: 2},
		{Status: domain.UploadStatusApproved, Count: 5},
	}, nil)
	uploadRepo.On("DepartmentIDsWithUpload", mock.Anything, fy.ID, 8).
		Return([]uuid.UUID{finance.ID}, nil)
	deptRepo.On("ListAll", mock.Anything).Return([]domain.Department{finance, hr}, nil)

	dash, err := svc.Dashboard(context.Background(), adminUser())

	require.NoError(t, err)
	assert.Equal(t, fy, dash.FinancialYear)
	assert.Len(t, dash.StatusCounts, 2)
	require.Len(t, dash.Departments, 2)
	assert.True(t, dash.Departments[0].Submitted)
	assert.False(t, dash.Departments[1].Submitted)
}

func TestStatsService_Dashboard_HODScopedToOwnDepartment(t *testing.T) {
	uploadRepo := new(mocks.MockUploadRepo)
	deptRepo := new(mocks.MockDepartmentRepo)
	fyRepo := new(mocks.MockFinancialYearRepo)
	svc := newStatsService(uploadRepo, deptRepo, fyRepo)

	fy := &domain.FinancialYear{ID: uuid.New(), IsActive: true}
	finance := domain.Department{ID: uuid.New(), Name: "Finance", IsActive: true}
	hr := domain.Department{ID: uuid.New(), Name: "HR", IsActive: true}
	actor := hodUser(finance.ID)

	fyRepo.On("GetActive", mock.Anything).Return(fy, nil)
	uploadRepo.On("CountByStatus", mock.Anything, mock.MatchedBy(func(f port.UploadFilter) bool {
		return f.DepartmentID != nil && *f.DepartmentID == finance.ID
	})).Return([]port.StatusCount{{Status: domain.UploadStatusValidated, Count: 1}}, nil)
	uploadRepo.On("DepartmentIDsWithUpload", mock.Anything, fy.ID, 8).
		Return([]uuid.UUID{}, nil)
	deptRepo.On("ListAll", mock.Anything).Return([]domain.Department{finance, hr}, nil)

	dash, err := svc.Dashboard(context.Background(), actor)

	require.NoError(t, err)
	// Foreign departments are filtered from the progress list.
	require.Len(t, dash.Departments, 1)
	assert.Equal(t, "Finance", dash.Departments[0].DepartmentName)
	assert.False(t, dash.Departments[0].Submitted)
}

func TestStatsService_Dashboard_PlainUserGetsNoProgressList(t *testing.T) {
	uploadRepo := new(mocks.MockUploadRepo)
	deptRepo := new(mocks.MockDepartmentRepo)
	fyRepo := new(mocks.MockFinancialYearRepo)
	svc := newStatsService(uploadRepo, deptRepo, fyRepo)

	fy := &domain.FinancialYear{ID: uuid.New(), IsActive: true}
	deptID := uuid.New()

	fyRepo.On("GetActive", mock.Anything).Return(fy, nil)
	uploadRepo.On("CountByStatus", mock.Anything, mock.AnythingOfType("port.UploadFilter")).
		Return([]port.StatusCount{}, nil)

	dash, err := svc.Dashboard(context.Background(), plainUser(deptID))

	require.NoError(t, err)
	assert.Empty(t, dash.Departments)
	uploadRepo.AssertNotCalled(t, "DepartmentIDsWithUpload", mock.Anything, mock.Anything, mock.Anything)
}
