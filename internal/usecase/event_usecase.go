package usecase

import (
	"context"
	"encoding/json"
	"time"

	"flora/internal/domain/entity"
)

// EventInput defines the data for creating or updating a cultivation
// event. Details carries the kind-specific payload in its generic JSON
// form; the use case materializes it through the variant registry.
type EventInput struct {
	Kind     entity.EventKind
	Date     time.Time
	PlantIDs []int64
	Details  json.RawMessage
}

// EventUsecase defines the interface for cultivation event operations.
// Ownership of an event is transitive over its plants: mutating it
// requires mutation rights on every associated plant.
type EventUsecase interface {
	// Create records a new event. A stage-change event also moves every
	// associated plant to the new stage, atomically with the record.
	Create(ctx context.Context, input EventInput) (*entity.Event, error)

	// Get returns one event.
	Get(ctx context.Context, id int64) (*entity.Event, error)

	// List returns the readable events, newest first.
	List(ctx context.Context) ([]*entity.Event, error)

	// ListByKind returns the readable events of one kind, newest first.
	ListByKind(ctx context.Context, kind entity.EventKind) ([]*entity.Event, error)

	// ListByPlant returns the readable events attached to one plant.
	ListByPlant(ctx context.Context, plantID int64) ([]*entity.Event, error)

	// ListByDate returns the readable events on one calendar day.
	ListByDate(ctx context.Context, day time.Time) ([]*entity.Event, error)

	// ListAfter returns the readable events dated strictly after the instant.
	ListAfter(ctx context.Context, after time.Time) ([]*entity.Event, error)

	// Update modifies an event's date, plants, and payload. The kind is
	// fixed at creation and cannot change.
	Update(ctx context.Context, id int64, input EventInput) (*entity.Event, error)

	// Delete removes an event.
	Delete(ctx context.Context, id int64) error
}
