package handler

import (
	"time"

	"github.com/google/uuid"

	"misportal/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"finance_hod"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// DecisionRequest represents the approve/reject request body.
type DecisionRequest struct {
	Note string `json:"note" example:"Figures reconcile with the ledger."`
}

// CreateCompanyRequest represents the create company request body.
type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required" example:"Meridian Industries"`
	Address string `json:"address" example:"Plot 14, Industrial Area, Pune"`
}

// CreateDepartmentRequest represents the create department request body.
type CreateDepartmentRequest struct {
	CompanyID   uuid.UUID `json:"company_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string    `json:"name" binding:"required" example:"Finance"`
	Description string    `json:"description" example:"Accounts and treasury"`
}

// CreateFinancialYearRequest represents the create financial year request body.
type CreateFinancialYearRequest struct {
	Name      string    `json:"name" binding:"required" example:"2025-2026"`
	StartDate time.Time `json:"start_date" binding:"required" example:"2025-04-01T00:00:00Z"`
	EndDate   time.Time `json:"end_date" binding:"required" example:"2026-03-31T00:00:00Z"`
}

// CreateUserRequest represents the create user request body.
type CreateUserRequest struct {
	Username     string          `json:"username" binding:"required" example:"jane.doe"`
	Email        string          `json:"email" binding:"required" example:"jane.doe@meridian.example"`
	Password     string          `json:"password" binding:"required" example:"securepassword123"`
	Role         domain.UserRole `json:"role" binding:"required" example:"user"`
	DepartmentID *uuid.UUID      `json:"department_id" example:"660e8400-e29b-41d4-a716-446655440001"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2026-01-15T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// DownloadURLResponse represents a presigned download link.
type DownloadURLResponse struct {
	DownloadURL string `json:"download_url" example:"https://s3.amazonaws.com/misportal-uploads/...?X-Amz-Signature=..."`
}

// WindowStatusResponse represents the upload window verdict.
type WindowStatusResponse struct {
	Open   bool   `json:"open" example:"true"`
	Phase  string `json:"phase" example:"open"`
	Reason string `json:"reason" example:"upload window is open (days 1-10 of the month)"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
