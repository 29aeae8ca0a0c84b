package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"misportal/internal/domain"
	"misportal/internal/port"
)

// CreateUserInput is the DTO for creating a user.
type CreateUserInput struct {
	Username     string          `json:"username" binding:"required,min=3"`
	Email        string          `json:"email" binding:"required,email"`
	Password     string          `json:"password" binding:"required,min=8"`
	Role         domain.UserRole `json:"role" binding:"required"`
	DepartmentID *uuid.UUID      `json:"department_id"`
}

// UpdateUserInput is the DTO for updating a user.
type UpdateUserInput struct {
	Email        *string          `json:"email"`
	Password     *string          `json:"password"`
	Role         *domain.UserRole `json:"role"`
	DepartmentID *uuid.UUID       `json:"department_id"`
	IsActive     *bool            `json:"is_active"`
}

// UserService defines the user management contract.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	repo     port.UserRepository
	deptRepo port.DepartmentRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(repo port.UserRepository, deptRepo port.DepartmentRepository) UserService {
	return &userService{repo: repo, deptRepo: deptRepo}
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if !domain.ValidUserRoles[input.Role] {
		return nil, domain.ErrInvalidRole
	}
	// Non-admin accounts must belong to a department.
	if input.Role != domain.RoleAdmin && input.DepartmentID == nil {
		return nil, fmt.Errorf("%w: role %s requires a department", domain.ErrInvalidRole, input.Role)
	}
	if input.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *input.DepartmentID); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), 12)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if input.Role != nil {
		if !domain.ValidUserRoles[*input.Role] {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *input.Role
	}
	if input.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *input.DepartmentID); err != nil {
			return nil, err
		}
		user.DepartmentID = input.DepartmentID
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	uploads, err := s.repo.CountUploads(ctx, userID)
	if err != nil {
		return err
	}
	if uploads > 0 {
		return domain.ErrHasReferences
	}
	return s.repo.Delete(ctx, userID)
}
