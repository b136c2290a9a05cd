package usecase

import (
	"context"
	"time"

	"flora/internal/domain/entity"
)

// PlantInput defines the data for creating or updating a plant.
type PlantInput struct {
	Name       string
	Stage      entity.Stage
	RoomID     int64
	StrainID   int64
	Production int
	FinishedAt *time.Time
	Location   string
	Public     bool
}

// PlantUsecase defines the interface for plant record operations.
type PlantUsecase interface {
	// Create records a new plant owned by the caller.
	Create(ctx context.Context, input PlantInput) (*entity.Plant, error)

	// Get returns one plant. Public plants are readable by any
	// authenticated caller; private ones follow the ownership policy.
	Get(ctx context.Context, id int64) (*entity.Plant, error)

	// List returns the plants the caller may read.
	List(ctx context.Context) ([]*entity.Plant, error)

	// ListByRoom returns the readable plants growing in one room.
	ListByRoom(ctx context.Context, roomID int64) ([]*entity.Plant, error)

	// SearchByName returns the readable plants whose name contains the fragment.
	SearchByName(ctx context.Context, fragment string) ([]*entity.Plant, error)

	// Update modifies a plant the caller owns.
	Update(ctx context.Context, id int64, input PlantInput) (*entity.Plant, error)

	// Delete removes a plant the caller owns.
	Delete(ctx context.Context, id int64) error
}
