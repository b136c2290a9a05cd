// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"flora/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new grower account.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the issued session token after a successful login.
// The delivery layer decides how to carry the token (cookie).
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new grower account. The role is always
	// GROWER; privileged roles are granted later by a super admin.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login checks the credentials and issues a session token.
	// Credential failures all collapse into one generic error.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// CurrentUser loads the full account of the authenticated principal.
	CurrentUser(ctx context.Context) (*entity.User, error)
}
