package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"misportal/internal/domain"
	"misportal/internal/service"
	"misportal/mocks"
)

func TestDepartmentService_Create_Success(t *testing.T) {
	repo := new(mocks.MockDepartmentRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewDepartmentService(repo, companyRepo)

	companyID := uuid.New()
	companyRepo.On("GetByID", mock.Anything, companyID).
		Return(&domain.Company{ID: companyID, Name: "Meridian Industries"}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Department")).Return(nil)

	dept, err := svc.Create(context.Background(), service.CreateDepartmentInput{
		CompanyID:   companyID,
		Name:        "Finance",
		Description: "Accounts and treasury",
	})

	require.NoError(t, err)
	assert.Equal(t, "Finance", dept.Name)
	assert.Equal(t, companyID, dept.CompanyID)
	assert.True(t, dept.IsActive)
}

func TestDepartmentService_Create_UnknownCompany(t *testing.T) {
	repo := new(mocks.MockDepartmentRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewDepartmentService(repo, companyRepo)

	companyID := uuid.New()
	companyRepo.On("GetByID", mock.Anything, companyID).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), service.CreateDepartmentInput{
		CompanyID: companyID,
		Name:      "Finance",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDepartmentService_Delete_BlockedByUsers(t *testing.T) {
	repo := new(mocks.MockDepartmentRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewDepartmentService(repo, companyRepo)

	id := uuid.New()
	repo.On("CountReferences", mock.Anything, id).Return(4, 0, 0, nil)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrHasReferences)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDepartmentService_Delete_BlockedByUploads(t *testing.T) {
	repo := new(mocks.MockDepartmentRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewDepartmentService(repo, companyRepo)

	id := uuid.New()
	repo.On("CountReferences", mock.Anything, id).Return(0, 7, 0, nil)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrHasReferences)
}

func TestDepartmentService_Delete_BlockedByTemplates(t *testing.T) {
	repo := new(mocks.MockDepartmentRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewDepartmentService(repo, companyRepo)

	id := uuid.New()
	repo.On("CountReferences", mock.Anything, id).Return(0, 0, 3, nil)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrHasReferences)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDepartmentService_Delete_Success(t *testing.T) {
	repo := new(mocks.MockDepartmentRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewDepartmentService(repo, companyRepo)

	id := uuid.New()
	repo.On("CountReferences", mock.Anything, id).Return(0, 0, 0, nil)
	repo.On("Delete", mock.Anything, id).Return(nil)

	err := svc.Delete(context.Background(), id)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDepartmentService_Toggle_DeactivatesActiveDepartment(t *testing.T) {
	repo := new(mocks.MockDepartmentRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewDepartmentService(repo, companyRepo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).
		Return(&domain.Department{ID: id, Name: "Finance", IsActive: true}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(d *domain.Department) bool {
		return d.ID == id && !d.IsActive
	})).Return(nil)

	dept, err := svc.Toggle(context.Background(), id)

	require.NoError(t, err)
	assert.False(t, dept.IsActive)
	repo.AssertExpectations(t)
}

func TestDepartmentService_Update_RenameOnly(t *testing.T) {
	repo := new(mocks.MockDepartmentRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewDepartmentService(repo, companyRepo)

	id := uuid.New()
	companyID := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&domain.Department{
		ID:        id,
		CompanyID: companyID,
		Name:      "HR",
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Department")).Return(nil)

	newName := "Human Resources"
	dept, err := svc.Update(context.Background(), id, service.UpdateDepartmentInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Human Resources", dept.Name)
	assert.Equal(t, companyID, dept.CompanyID)
	companyRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
