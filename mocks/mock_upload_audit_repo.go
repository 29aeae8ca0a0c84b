package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"misportal/internal/domain"
)

// MockUploadAuditRepo is a mock implementation of port.UploadAuditRepository.
type MockUploadAuditRepo struct {
	mock.Mock
}

func (m *MockUploadAuditRepo) Create(ctx context.Context, entry *domain.UploadAuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockUploadAuditRepo) ListByUpload(ctx context.Context, uploadID uuid.UUID, offset, limit int) ([]domain.UploadAuditEntry, int, error) {
	args := m.Called(ctx, uploadID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.UploadAuditEntry), args.Int(1), args.Error(2)
}
