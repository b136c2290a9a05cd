package repository

import (
	"context"
	"errors"

	"flora/internal/domain/entity"
)

// ErrPlantNotFound is returned when a plant is not found.
var ErrPlantNotFound = errors.New("plant not found")

// PlantRepository defines the standard operations for plant persistence.
type PlantRepository interface {
	// FindByID retrieves a single plant by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Plant, error)

	// FindAllByIDs retrieves the plants with the given IDs. Missing IDs
	// are simply absent from the result; callers compare lengths when
	// they need all of them.
	FindAllByIDs(ctx context.Context, ids []int64) ([]*entity.Plant, error)

	// FindAll retrieves every plant ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Plant, error)

	// FindByOwnerID retrieves the plants owned by the given user.
	FindByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Plant, error)

	// FindByRoomID retrieves the plants growing in the given room.
	FindByRoomID(ctx context.Context, roomID int64) ([]*entity.Plant, error)

	// SearchByName retrieves plants whose name contains the given
	// fragment, case-insensitively.
	SearchByName(ctx context.Context, fragment string) ([]*entity.Plant, error)

	// ExistsByID reports whether a plant with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Create persists a new plant and fills in its ID.
	Create(ctx context.Context, plant *entity.Plant) error

	// Update modifies an existing plant.
	Update(ctx context.Context, plant *entity.Plant) error

	// UpdateStage moves every plant in ids to the given stage. Used by
	// stage change events so the move and the event record share one
	// transaction.
	UpdateStage(ctx context.Context, ids []int64, stage entity.Stage) error

	// Delete removes the plant with the given ID.
	Delete(ctx context.Context, id int64) error
}
