package repository

import (
	"context"
	"errors"

	"flora/internal/domain/entity"
)

// ErrFavoriteNotFound is returned when a favorite mark is not found.
var ErrFavoriteNotFound = errors.New("favorite not found")

// ErrFavoriteExists is returned when a user marks a target it has
// already favorited.
var ErrFavoriteExists = errors.New("favorite already exists")

// FavoriteRepository defines the standard operations for favorite persistence.
type FavoriteRepository interface {
	// Find retrieves the favorite mark a user placed on one target, if any.
	Find(ctx context.Context, userID, targetID int64, kind entity.FavoriteKind) (*entity.Favorite, error)

	// FindTargetIDs retrieves the IDs of every target of the given kind
	// the user has favorited.
	FindTargetIDs(ctx context.Context, userID int64, kind entity.FavoriteKind) ([]int64, error)

	// Create persists a new favorite mark and fills in its ID.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite mark a user placed on one target.
	Delete(ctx context.Context, userID, targetID int64, kind entity.FavoriteKind) error
}
