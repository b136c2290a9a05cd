package usecase

import (
	"context"

	"flora/internal/domain/entity"
)

// StrainInput defines the data for creating or updating a strain.
type StrainInput struct {
	Name           string
	ParentGenetics string
	Dominance      string
	AromaFlavor    string
	THC            string
	CBD            string
	Detail         string
}

// StrainUsecase defines the interface for strain catalog operations.
type StrainUsecase interface {
	// Create records a new strain owned by the caller.
	Create(ctx context.Context, input StrainInput) (*entity.Strain, error)

	// Get returns one strain, subject to the ownership policy.
	Get(ctx context.Context, id int64) (*entity.Strain, error)

	// List returns the strains the caller may read.
	List(ctx context.Context) ([]*entity.Strain, error)

	// SearchByName returns the readable strains whose name contains the fragment.
	SearchByName(ctx context.Context, fragment string) ([]*entity.Strain, error)

	// Update modifies a strain the caller owns.
	Update(ctx context.Context, id int64, input StrainInput) (*entity.Strain, error)

	// Delete removes a strain the caller owns.
	Delete(ctx context.Context, id int64) error
}
