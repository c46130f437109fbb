// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"grocer/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Phone    string
	Address  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued access token alongside the account it
// belongs to. TokenType is always "bearer".
type AuthOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new customer account and issues its first token.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a fresh token.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// GetUser retrieves the account behind an authenticated request.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers returns the registered accounts, newest first. Admin only.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
