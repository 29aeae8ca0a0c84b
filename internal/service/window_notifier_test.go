package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"misportal/internal/domain"
	"misportal/internal/port"
	"misportal/internal/service"
	"misportal/mocks"
)

func TestWindowNotifier_RunOnce_NotReminderDay(t *testing.T) {
	uploadRepo := new(mocks.MockUploadRepo)
	deptRepo := new(mocks.MockDepartmentRepo)
	userRepo := new(mocks.MockUserRepo)
	fyRepo := new(mocks.MockFinancialYearRepo)
	emailer := new(mocks.MockEmailSender)

	n := service.NewWindowNotifier(uploadRepo, deptRepo, userRepo, fyRepo, emailer, testPolicy(), fixedNow(5))
	n.RunOnce(context.Background())

	fyRepo.AssertNotCalled(t, "GetActive", mock.Anything)
	emailer.AssertNotCalled(t, "SendWindowReminderEmail", mock.Anything, mock.Anything)
}

func TestWindowNotifier_RunOnce_RemindsOnlyMissingDepartments(t *testing.T) {
	uploadRepo := new(mocks.MockUploadRepo)
	deptRepo := new(mocks.MockDepartmentRepo)
	userRepo := new(mocks.MockUserRepo)
	fyRepo := new(mocks.MockFinancialYearRepo)
	emailer := new(mocks.MockEmailSender)

	fy := &domain.FinancialYear{ID: uuid.New(), IsActive: true}
	finance := domain.Department{ID: uuid.New(), Name: "Finance", IsActive: true}
	hr := domain.Department{ID: uuid.New(), Name: "HR", IsActive: true}

	financeHOD := domain.User{
		ID: uuid.New(), Username: "finance_hod", Email: "finance.hod@example.com",
		Role: domain.RoleHOD, DepartmentID: &finance.ID, IsActive: true,
	}
	hrHOD := domain.User{
		ID: uuid.New(), Username: "hr_hod", Email: "hr.hod@example.com",
		Role: domain.RoleHOD, DepartmentID: &hr.ID, IsActive: true,
	}

	fyRepo.On("GetActive", mock.Anything).Return(fy, nil)
	// Finance has submitted for August; HR has not.
	uploadRepo.On("DepartmentIDsWithUpload", mock.Anything, fy.ID, 8).
		Return([]uuid.UUID{finance.ID}, nil)
	deptRepo.On("ListAll", mock.Anything).Return([]domain.Department{finance, hr}, nil)
	userRepo.On("ListByRole", mock.Anything, domain.RoleHOD).
		Return([]domain.User{financeHOD, hrHOD}, nil)
	emailer.On("SendWindowReminderEmail", mock.Anything, mock.MatchedBy(func(msg port.ReminderEmail) bool {
		return msg.ToEmail == "hr.hod@example.com" && msg.Department == "HR" &&
			msg.Month == 8 && msg.CloseDay == 10
	})).Return(nil).Once()

	// Day 8 is the reminder day of the default policy.
	n := service.NewWindowNotifier(uploadRepo, deptRepo, userRepo, fyRepo, emailer, testPolicy(), fixedNow(8))
	n.RunOnce(context.Background())

	emailer.AssertExpectations(t)
	emailer.AssertNumberOfCalls(t, "SendWindowReminderEmail", 1)
}

func TestWindowNotifier_RunOnce_SkipsInactiveHODs(t *testing.T) {
	uploadRepo := new(mocks.MockUploadRepo)
	deptRepo := new(mocks.MockDepartmentRepo)
	userRepo := new(mocks.MockUserRepo)
	fyRepo := new(mocks.MockFinancialYearRepo)
	emailer := new(mocks.MockEmailSender)

	fy := &domain.FinancialYear{ID: uuid.New(), IsActive: true}
	hr := domain.Department{ID: uuid.New(), Name: "HR", IsActive: true}
	formerHOD := domain.User{
		ID: uuid.New(), Username: "hr_hod", Email: "hr.hod@example.com",
		Role: domain.RoleHOD, DepartmentID: &hr.ID, IsActive: false,
	}

	fyRepo.On("GetActive", mock.Anything).Return(fy, nil)
	uploadRepo.On("DepartmentIDsWithUpload", mock.Anything, fy.ID, 8).
		Return([]uuid.UUID{}, nil)
	deptRepo.On("ListAll", mock.Anything).Return([]domain.Department{hr}, nil)
	userRepo.On("ListByRole", mock.Anything, domain.RoleHOD).
		Return([]domain.User{formerHOD}, nil)

	n := service.NewWindowNotifier(uploadRepo, deptRepo, userRepo, fyRepo, emailer, testPolicy(), fixedNow(8))
	n.RunOnce(context.Background())

	emailer.AssertNotCalled(t, "SendWindowReminderEmail", mock.Anything, mock.Anything)
}
