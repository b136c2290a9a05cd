package usecase

import (
	"context"

	"flora/internal/domain/entity"
)

// RoomInput defines the data for creating or updating a grow room.
type RoomInput struct {
	Name        string
	Description string
	LightHours  string
	Humidity    float64
	AmbientTemp float64
}

// RoomUsecase defines the interface for grow room operations.
type RoomUsecase interface {
	// Create records a new room owned by the caller.
	Create(ctx context.Context, input RoomInput) (*entity.Room, error)

	// Get returns one room, subject to the ownership policy.
	Get(ctx context.Context, id int64) (*entity.Room, error)

	// List returns the rooms the caller may read: its own for growers,
	// all of them for privileged readers.
	List(ctx context.Context) ([]*entity.Room, error)

	// Update modifies a room the caller owns.
	Update(ctx context.Context, id int64, input RoomInput) (*entity.Room, error)

	// Delete removes a room the caller owns.
	Delete(ctx context.Context, id int64) error
}
