package repository

import (
	"context"
	"errors"
	"time"

	"flora/internal/domain/entity"
)

// ErrEventNotFound is returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the standard operations for event persistence.
// All event kinds share one storage surface; the entity carries its own
// typed details.
type EventRepository interface {
	// FindByID retrieves a single event by its unique ID, including the
	// IDs of the plants it is attached to.
	FindByID(ctx context.Context, id int64) (*entity.Event, error)

	// FindAll retrieves every event ordered by date descending.
	FindAll(ctx context.Context) ([]*entity.Event, error)

	// FindByKind retrieves the events of one kind ordered by date descending.
	FindByKind(ctx context.Context, kind entity.EventKind) ([]*entity.Event, error)

	// FindByPlantID retrieves the events attached to the given plant,
	// ordered by date descending.
	FindByPlantID(ctx context.Context, plantID int64) ([]*entity.Event, error)

	// FindByDate retrieves the events whose date falls on the given
	// calendar day.
	FindByDate(ctx context.Context, day time.Time) ([]*entity.Event, error)

	// FindByDateAfter retrieves the events dated strictly after the
	// given instant, ordered by date ascending.
	FindByDateAfter(ctx context.Context, after time.Time) ([]*entity.Event, error)

	// Create persists a new event and its plant associations, and fills
	// in the event ID.
	Create(ctx context.Context, event *entity.Event) error

	// Update modifies an existing event and replaces its plant
	// associations.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes the event with the given ID along with its plant
	// associations.
	Delete(ctx context.Context, id int64) error
}
