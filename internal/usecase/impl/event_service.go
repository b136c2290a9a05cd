package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/policy"
	"flora/internal/domain/repository"
	"flora/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventService implements the EventUsecase interface. Event ownership
// is transitive over the associated plants, so every operation loads
// the plants and runs the ownership policy against their owners.
type eventService struct {
	txManager    repository.TransactionManager
	eventRepo    repository.EventRepository
	plantRepo    repository.PlantRepository
	nutrientRepo repository.NutrientRepository
	logger       *slog.Logger
}

// EventServiceParams holds dependencies for eventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	EventRepo    repository.EventRepository
	PlantRepo    repository.PlantRepository
	NutrientRepo repository.NutrientRepository
	Logger       *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		txManager:    params.TxManager,
		eventRepo:    params.EventRepo,
		plantRepo:    params.PlantRepo,
		nutrientRepo: params.NutrientRepo,
		logger:       params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolvePlants loads every referenced plant and fails if any is missing.
func (srv *eventService) resolvePlants(ctx context.Context, plantIDs []int64) ([]*entity.Plant, error) {
	if len(plantIDs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("an event needs at least one plant")
	}

	plants, err := srv.plantRepo.FindAllByIDs(ctx, plantIDs)
	if err != nil {
		return nil, err
	}
	if len(plants) != len(uniqueIDs(plantIDs)) {
		return nil, domainerrors.ErrPlantNotFound
	}

	return plants, nil
}

// decodeDetails materializes and validates the kind-specific payload.
func (srv *eventService) decodeDetails(ctx context.Context, input usecase.EventInput) (entity.EventDetails, error) {
	details, err := entity.DecodeEventDetails(input.Kind, input.Details)
	if err != nil {
		if errors.Is(err, entity.ErrUnknownEventKind) {
			return nil, domainerrors.ErrUnknownEventKind.WithDetails("kind: " + input.Kind.String())
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	switch d := details.(type) {
	case *entity.PruningDetails:
		if !d.PruningType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown pruning type")
		}
	case *entity.DefoliationDetails:
		if !d.Degree.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown defoliation degree")
		}
	case *entity.StageChangeDetails:
		if !d.NewStage.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown stage")
		}
	case *entity.NutrientDetails:
		exists, err := srv.nutrientRepo.ExistsByID(ctx, d.NutrientID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domainerrors.ErrNutrientNotFound
		}
	}

	return details, nil
}

// Create records a new event, moving plant stages in the same
// transaction when the event is a stage change.
func (srv *eventService) Create(ctx context.Context, input usecase.EventInput) (*entity.Event, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	details, err := srv.decodeDetails(ctx, input)
	if err != nil {
		return nil, err
	}

	plants, err := srv.resolvePlants(ctx, input.PlantIDs)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessEvent(p, plantOwnerIDs(plants), policy.OpUpdate) {
		return nil, domainerrors.ErrForbidden
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	event := &entity.Event{
		Date:     date,
		PlantIDs: uniqueIDs(input.PlantIDs),
		Details:  details,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewEventRepository().Create(ctx, event); err != nil {
			return err
		}

		// A stage change also moves every plant, atomically with the record.
		if stageChange, ok := details.(*entity.StageChangeDetails); ok {
			return repoFactory.NewPlantRepository().UpdateStage(ctx, event.PlantIDs, stageChange.NewStage)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Event created",
		slog.Int64("eventId", event.ID),
		slog.String("kind", event.Kind().String()),
		slog.Int("plants", len(event.PlantIDs)),
	)

	return event, nil
}

// Get returns one event.
func (srv *eventService) Get(ctx context.Context, id int64) (*entity.Event, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, err
	}

	plants, err := srv.plantRepo.FindAllByIDs(ctx, event.PlantIDs)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessEvent(p, plantOwnerIDs(plants), policy.OpRead) {
		return nil, domainerrors.ErrForbidden
	}

	return event, nil
}

// List returns the readable events, newest first.
func (srv *eventService) List(ctx context.Context) ([]*entity.Event, error) {
	return srv.listFiltered(ctx, srv.eventRepo.FindAll)
}

// ListByKind returns the readable events of one kind, newest first.
func (srv *eventService) ListByKind(ctx context.Context, kind entity.EventKind) ([]*entity.Event, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrUnknownEventKind.WithDetails("kind: " + kind.String())
	}

	return srv.listFiltered(ctx, func(ctx context.Context) ([]*entity.Event, error) {
		return srv.eventRepo.FindByKind(ctx, kind)
	})
}

// ListByPlant returns the readable events attached to one plant.
func (srv *eventService) ListByPlant(ctx context.Context, plantID int64) ([]*entity.Event, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	exists, err := srv.plantRepo.ExistsByID(ctx, plantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainerrors.ErrPlantNotFound
	}

	events, err := srv.eventRepo.FindByPlantID(ctx, plantID)
	if err != nil {
		return nil, err
	}

	return srv.filterReadable(ctx, p, events)
}

// ListByDate returns the readable events on one calendar day.
func (srv *eventService) ListByDate(ctx context.Context, day time.Time) ([]*entity.Event, error) {
	return srv.listFiltered(ctx, func(ctx context.Context) ([]*entity.Event, error) {
		return srv.eventRepo.FindByDate(ctx, day)
	})
}

// ListAfter returns the readable events dated strictly after the instant.
func (srv *eventService) ListAfter(ctx context.Context, after time.Time) ([]*entity.Event, error) {
	return srv.listFiltered(ctx, func(ctx context.Context) ([]*entity.Event, error) {
		return srv.eventRepo.FindByDateAfter(ctx, after)
	})
}

// Update modifies an event's date, plants, and payload.
func (srv *eventService) Update(ctx context.Context, id int64, input usecase.EventInput) (*entity.Event, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, err
	}

	// The kind is fixed at creation.
	if input.Kind != "" && input.Kind != event.Kind() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event kind cannot change")
	}
	input.Kind = event.Kind()

	details, err := srv.decodeDetails(ctx, input)
	if err != nil {
		return nil, err
	}

	// Mutation rights are required on the current plants and on the new set.
	currentPlants, err := srv.plantRepo.FindAllByIDs(ctx, event.PlantIDs)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessEvent(p, plantOwnerIDs(currentPlants), policy.OpUpdate) {
		return nil, domainerrors.ErrForbidden
	}

	newPlants, err := srv.resolvePlants(ctx, input.PlantIDs)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessEvent(p, plantOwnerIDs(newPlants), policy.OpUpdate) {
		return nil, domainerrors.ErrForbidden
	}

	if !input.Date.IsZero() {
		event.Date = input.Date
	}
	event.PlantIDs = uniqueIDs(input.PlantIDs)
	event.Details = details

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewEventRepository().Update(ctx, event); err != nil {
			return err
		}

		if stageChange, ok := details.(*entity.StageChangeDetails); ok {
			return repoFactory.NewPlantRepository().UpdateStage(ctx, event.PlantIDs, stageChange.NewStage)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Event updated", slog.Int64("eventId", event.ID))

	return event, nil
}

// Delete removes an event.
func (srv *eventService) Delete(ctx context.Context, id int64) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}

		return err
	}

	plants, err := srv.plantRepo.FindAllByIDs(ctx, event.PlantIDs)
	if err != nil {
		return err
	}
	if !policy.CanAccessEvent(p, plantOwnerIDs(plants), policy.OpDelete) {
		return domainerrors.ErrForbidden
	}

	if err := srv.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}

		return err
	}

	srv.log(ctx).Info("Event deleted", slog.Int64("eventId", id))

	return nil
}

// listFiltered runs a repository listing and keeps the readable events.
func (srv *eventService) listFiltered(ctx context.Context, find func(context.Context) ([]*entity.Event, error)) ([]*entity.Event, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	events, err := find(ctx)
	if err != nil {
		return nil, err
	}

	return srv.filterReadable(ctx, p, events)
}

// filterReadable keeps the events whose plants the principal may all
// read. Plant owners are resolved in one batch across the whole page.
func (srv *eventService) filterReadable(ctx context.Context, p *entity.Principal, events []*entity.Event) ([]*entity.Event, error) {
	if isPrivilegedReader(p) {
		return events, nil
	}

	idSet := make(map[int64]struct{})
	for _, event := range events {
		for _, plantID := range event.PlantIDs {
			idSet[plantID] = struct{}{}
		}
	}

	allIDs := make([]int64, 0, len(idSet))
	for id := range idSet {
		allIDs = append(allIDs, id)
	}

	plants, err := srv.plantRepo.FindAllByIDs(ctx, allIDs)
	if err != nil {
		return nil, err
	}

	ownerByPlant := make(map[int64]int64, len(plants))
	for _, plant := range plants {
		ownerByPlant[plant.ID] = plant.OwnerID
	}

	readable := make([]*entity.Event, 0, len(events))
	for _, event := range events {
		owners := make([]int64, 0, len(event.PlantIDs))
		for _, plantID := range event.PlantIDs {
			if owner, ok := ownerByPlant[plantID]; ok {
				owners = append(owners, owner)
			}
		}
		if policy.CanAccessEvent(p, owners, policy.OpRead) {
			readable = append(readable, event)
		}
	}

	return readable, nil
}

// plantOwnerIDs collects the owner of each plant.
func plantOwnerIDs(plants []*entity.Plant) []int64 {
	owners := make([]int64, 0, len(plants))
	for _, plant := range plants {
		owners = append(owners, plant.OwnerID)
	}

	return owners
}

// uniqueIDs de-duplicates an ID list preserving first-seen order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
