package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"misportal/internal/domain"
	"misportal/internal/port"
	"misportal/internal/service"
	"misportal/internal/window"
)

// MockUploadService is a mock implementation of service.UploadService.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Submit(ctx context.Context, input service.SubmitUploadInput) (*domain.Upload, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockUploadService) GetByID(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Upload, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockUploadService) List(ctx context.Context, actor *domain.User, filter port.UploadFilter, offset, limit int) ([]domain.Upload, int, error) {
	args := m.Called(ctx, actor, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Upload), args.Int(1), args.Error(2)
}

func (m *MockUploadService) Approve(ctx context.Context, actor *domain.User, id uuid.UUID, note string) (*domain.Upload, error) {
	args := m.Called(ctx, actor, id, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockUploadService) Reject(ctx context.Context, actor *domain.User, id uuid.UUID, note string) (*domain.Upload, error) {
	args := m.Called(ctx, actor, id, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockUploadService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockUploadService) GetDownloadURL(ctx context.Context, actor *domain.User, id uuid.UUID) (string, error) {
	args := m.Called(ctx, actor, id)
	return args.String(0), args.Error(1)
}

func (m *MockUploadService) ListAudit(ctx context.Context, actor *domain.User, uploadID uuid.UUID, offset, limit int) ([]domain.UploadAuditEntry, int, error) {
	args := m.Called(ctx, actor, uploadID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.UploadAuditEntry), args.Int(1), args.Error(2)
}

func (m *MockUploadService) WindowStatus() window.Status {
	args := m.Called()
	return args.Get(0).(window.Status)
}
