// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"neabi/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput defines the data required to create a new account.
// Only admins may register accounts; Role defaults to reader when empty.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      entity.Role
}

// --- Output DTOs ---

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	User  *entity.User
	Token string
}

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies the credentials, issues a bearer token and records it
	// in the session ledger.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Register creates a new account. The caller must already be verified as
	// an admin by the delivery layer.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Logout revokes the ledger rows of the given token. Revoking an unknown
	// token succeeds silently.
	Logout(ctx context.Context, token string) error

	// Profile loads the account behind the given user id.
	Profile(ctx context.Context, userID uint) (*entity.User, error)
}
