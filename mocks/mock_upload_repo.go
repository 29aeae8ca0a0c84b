package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"misportal/internal/domain"
	"misportal/internal/port"
)

// MockUploadRepo is a mock implementation of port.UploadRepository.
type MockUploadRepo struct {
	mock.Mock
}

func (m *MockUploadRepo) Create(ctx context.Context, upload *domain.Upload) error {
	args := m.Called(ctx, upload)
	return args.Error(0)
}

func (m *MockUploadRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Upload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockUploadRepo) List(ctx context.Context, filter port.UploadFilter, offset, limit int) ([]domain.Upload, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Upload), args.Int(1), args.Error(2)
}

func (m *MockUploadRepo) UpdateDecision(ctx context.Context, id uuid.UUID, status domain.UploadStatus, decidedBy uuid.UUID, decidedAt time.Time) error {
	args := m.Called(ctx, id, status, decidedBy, decidedAt)
	return args.Error(0)
}

func (m *MockUploadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUploadRepo) CountByStatus(ctx context.Context, filter port.UploadFilter) ([]port.StatusCount, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.StatusCount), args.Error(1)
}

func (m *MockUploadRepo) DepartmentIDsWithUpload(ctx context.Context, financialYearID uuid.UUID, month int) ([]uuid.UUID, error) {
	args := m.Called(ctx, financialYearID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}
