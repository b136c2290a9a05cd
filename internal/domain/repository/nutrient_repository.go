package repository

import (
	"context"
	"errors"

	"flora/internal/domain/entity"
)

// ErrNutrientNotFound is returned when a nutrient product is not found.
var ErrNutrientNotFound = errors.New("nutrient not found")

// NutrientRepository defines the standard operations for nutrient persistence.
type NutrientRepository interface {
	// FindByID retrieves a single nutrient by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Nutrient, error)

	// FindAll retrieves every nutrient ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Nutrient, error)

	// FindByOwnerID retrieves the nutrients owned by the given user.
	FindByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Nutrient, error)

	// ExistsByID reports whether a nutrient with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Create persists a new nutrient and fills in its ID.
	Create(ctx context.Context, nutrient *entity.Nutrient) error

	// Update modifies an existing nutrient.
	Update(ctx context.Context, nutrient *entity.Nutrient) error

	// Delete removes the nutrient with the given ID.
	Delete(ctx context.Context, id int64) error
}
