package usecase

import (
	"context"

	"flora/internal/domain/entity"
)

// UpdateUserInput defines the mutable fields of a user account.
// The role has its own operation with its own access rule.
type UpdateUserInput struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// UserUsecase defines the interface for user administration operations.
type UserUsecase interface {
	// List returns every account. Restricted to privileged readers.
	List(ctx context.Context) ([]*entity.User, error)

	// Get returns one account by ID, subject to the ownership policy.
	Get(ctx context.Context, id int64) (*entity.User, error)

	// SearchByName returns the accounts whose first or last name
	// contains the fragment. Restricted to privileged readers.
	SearchByName(ctx context.Context, fragment string) ([]*entity.User, error)

	// Update modifies an account's profile fields.
	Update(ctx context.Context, input UpdateUserInput) (*entity.User, error)

	// UpdateRole changes an account's role. Super admin only.
	UpdateRole(ctx context.Context, id int64, role entity.Role) (*entity.User, error)

	// Delete removes an account.
	Delete(ctx context.Context, id int64) error
}
