package repository

import (
	"context"
	"errors"

	"flora/internal/domain/entity"
)

// ErrRoomNotFound is returned when a grow room is not found.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepository defines the standard operations for grow room persistence.
type RoomRepository interface {
	// FindByID retrieves a single room by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Room, error)

	// FindAll retrieves every room ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Room, error)

	// FindByOwnerID retrieves the rooms owned by the given user.
	FindByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Room, error)

	// ExistsByID reports whether a room with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Create persists a new room and fills in its ID.
	Create(ctx context.Context, room *entity.Room) error

	// Update modifies an existing room.
	Update(ctx context.Context, room *entity.Room) error

	// Delete removes the room with the given ID.
	Delete(ctx context.Context, id int64) error
}
