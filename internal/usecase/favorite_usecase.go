package usecase

import (
	"context"

	"flora/internal/domain/entity"
)

// FavoritesOutput returns the caller's favorites of one kind with the
// targets hydrated. Exactly one slice is populated, matching the kind.
type FavoritesOutput struct {
	Kind   entity.FavoriteKind
	Plants []*entity.Plant
	Rooms  []*entity.Room
	Users  []*entity.User
}

// FavoriteUsecase defines the interface for the favorites feature.
// A favorite is keyed by caller, target ID, and target kind; the same
// ID may be favorited under different kinds independently.
type FavoriteUsecase interface {
	// Add marks a target as a favorite of the caller. The target must
	// exist; favoriting it twice is a conflict.
	Add(ctx context.Context, kind entity.FavoriteKind, targetID int64) error

	// Remove unmarks a target. Removing a never-favorited target is an error.
	Remove(ctx context.Context, kind entity.FavoriteKind, targetID int64) error

	// List returns the caller's favorites of one kind, hydrated.
	// Targets deleted since favoriting are silently skipped.
	List(ctx context.Context, kind entity.FavoriteKind) (*FavoritesOutput, error)
}
