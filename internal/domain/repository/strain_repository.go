package repository

import (
	"context"
	"errors"

	"flora/internal/domain/entity"
)

// ErrStrainNotFound is returned when a strain is not found.
var ErrStrainNotFound = errors.New("strain not found")

// StrainRepository defines the standard operations for strain persistence.
type StrainRepository interface {
	// FindByID retrieves a single strain by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Strain, error)

	// FindAll retrieves every strain ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Strain, error)

	// FindByOwnerID retrieves the strains owned by the given user.
	FindByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Strain, error)

	// SearchByName retrieves strains whose name contains the given
	// fragment, case-insensitively.
	SearchByName(ctx context.Context, fragment string) ([]*entity.Strain, error)

	// ExistsByID reports whether a strain with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Create persists a new strain and fills in its ID.
	Create(ctx context.Context, strain *entity.Strain) error

	// Update modifies an existing strain.
	Update(ctx context.Context, strain *entity.Strain) error

	// Delete removes the strain with the given ID.
	Delete(ctx context.Context, id int64) error
}
