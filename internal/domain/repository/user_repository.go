// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"flora/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken is returned when creating or renaming a user would
// violate the username uniqueness constraint.
var ErrUsernameTaken = errors.New("username already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll retrieves every user ordered by ID.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// SearchByName retrieves users whose first or last name contains the
	// given fragment, case-insensitively.
	SearchByName(ctx context.Context, fragment string) ([]*entity.User, error)

	// ExistsByID reports whether a user with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Create persists a new user entity to the storage and fills in its ID.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given ID.
	Delete(ctx context.Context, id int64) error
}
