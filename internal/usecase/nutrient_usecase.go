package usecase

import (
	"context"

	"flora/internal/domain/entity"
)

// NutrientInput defines the data for creating or updating a nutrient product.
type NutrientInput struct {
	Title       string
	Description string
}

// NutrientUsecase defines the interface for nutrient catalog operations.
type NutrientUsecase interface {
	// Create records a new nutrient owned by the caller.
	Create(ctx context.Context, input NutrientInput) (*entity.Nutrient, error)

	// Get returns one nutrient, subject to the ownership policy.
	Get(ctx context.Context, id int64) (*entity.Nutrient, error)

	// List returns the nutrients the caller may read.
	List(ctx context.Context) ([]*entity.Nutrient, error)

	// Update modifies a nutrient the caller owns.
	Update(ctx context.Context, id int64, input NutrientInput) (*entity.Nutrient, error)

	// Delete removes a nutrient the caller owns.
	Delete(ctx context.Context, id int64) error
}
