package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"misportal/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendUploadDecisionEmail(ctx context.Context, msg port.DecisionEmail) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockEmailSender) SendWindowReminderEmail(ctx context.Context, msg port.ReminderEmail) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
