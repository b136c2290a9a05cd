package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	mockRepo "flora/internal/mocks/repository"
	"flora/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	eventRepo    *mockRepo.MockEventRepository
	plantRepo    *mockRepo.MockPlantRepository
	nutrientRepo *mockRepo.MockNutrientRepository
}

func newEventService(t *testing.T) (usecase.EventUsecase, eventServiceMocks) {
	mocks := eventServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		eventRepo:    mockRepo.NewMockEventRepository(t),
		plantRepo:    mockRepo.NewMockPlantRepository(t),
		nutrientRepo: mockRepo.NewMockNutrientRepository(t),
	}
	service := NewEventService(EventServiceParams{
		TxManager:    mocks.txManager,
		EventRepo:    mocks.eventRepo,
		PlantRepo:    mocks.plantRepo,
		NutrientRepo: mocks.nutrientRepo,
		Logger:       newDiscardLogger(),
	})

	return service, mocks
}

// runTransaction wires the transaction manager mock so the callback
// executes against a repository factory backed by the given mocks.
func runTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, eventRepo *mockRepo.MockEventRepository, plantRepo *mockRepo.MockPlantRepository) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	if eventRepo != nil {
		factory.EXPECT().NewEventRepository().Return(eventRepo)
	}
	if plantRepo != nil {
		factory.EXPECT().NewPlantRepository().Return(plantRepo)
	}

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return factory
}

func TestEventService_Create_Watering(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.plantRepo.EXPECT().
		FindAllByIDs(ctx, []int64{1, 1, 2}).
		Return([]*entity.Plant{{ID: 1, OwnerID: 5}, {ID: 2, OwnerID: 5}}, nil)

	txEventRepo := mockRepo.NewMockEventRepository(t)
	txEventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Event")).
		Run(func(_ context.Context, event *entity.Event) {
			event.ID = 100
		}).
		Return(nil)
	runTransaction(t, mocks.txManager, txEventRepo, nil)

	event, err := service.Create(ctx, usecase.EventInput{
		Kind:     entity.EventWatering,
		PlantIDs: []int64{1, 1, 2},
		Details:  json.RawMessage(`{"ph":6.2,"ec":1.4,"waterTemp":21.5}`),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), event.ID)
	assert.Equal(t, entity.EventWatering, event.Kind())
	assert.Equal(t, []int64{1, 2}, event.PlantIDs)
	assert.False(t, event.Date.IsZero())

	details, ok := event.Details.(*entity.WateringDetails)
	require.True(t, ok)
	assert.Equal(t, 6.2, details.PH)
}

func TestEventService_Create_StageChangeMovesPlants(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.plantRepo.EXPECT().
		FindAllByIDs(ctx, []int64{1, 2}).
		Return([]*entity.Plant{{ID: 1, OwnerID: 5}, {ID: 2, OwnerID: 5}}, nil)

	txEventRepo := mockRepo.NewMockEventRepository(t)
	txEventRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Event")).Return(nil)
	txPlantRepo := mockRepo.NewMockPlantRepository(t)
	txPlantRepo.EXPECT().UpdateStage(ctx, []int64{1, 2}, entity.StageFlowering).Return(nil)
	runTransaction(t, mocks.txManager, txEventRepo, txPlantRepo)

	event, err := service.Create(ctx, usecase.EventInput{
		Kind:     entity.EventStageChange,
		Date:     time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		PlantIDs: []int64{1, 2},
		Details:  json.RawMessage(`{"newStage":"FLOWERING"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EventStageChange, event.Kind())
}

func TestEventService_Create_UnknownKind(t *testing.T) {
	service, _ := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	_, err := service.Create(ctx, usecase.EventInput{
		Kind:     entity.EventKind("REPOTTING"),
		PlantIDs: []int64{1},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNKNOWN_EVENT_KIND", appErr.ErrorCode())
}

func TestEventService_Create_PayloadShapeMismatch(t *testing.T) {
	service, _ := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	// Watering payloads have no "degree" field; unknown fields are rejected.
	_, err := service.Create(ctx, usecase.EventInput{
		Kind:     entity.EventWatering,
		PlantIDs: []int64{1},
		Details:  json.RawMessage(`{"degree":"LIGHT"}`),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestEventService_Create_UnknownPruningType(t *testing.T) {
	service, _ := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	_, err := service.Create(ctx, usecase.EventInput{
		Kind:     entity.EventPruning,
		PlantIDs: []int64{1},
		Details:  json.RawMessage(`{"pruningType":"SUPERCROP"}`),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestEventService_Create_NutrientMissing(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.nutrientRepo.EXPECT().ExistsByID(ctx, int64(99)).Return(false, nil)

	_, err := service.Create(ctx, usecase.EventInput{
		Kind:     entity.EventNutrient,
		PlantIDs: []int64{1},
		Details:  json.RawMessage(`{"nutrientId":99}`),
	})
	require.ErrorIs(t, err, domainerrors.ErrNutrientNotFound)
}

func TestEventService_Create_NoPlants(t *testing.T) {
	service, _ := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	_, err := service.Create(ctx, usecase.EventInput{
		Kind:    entity.EventNote,
		Details: json.RawMessage(`{"text":"looking healthy"}`),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestEventService_Create_PlantMissing(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.plantRepo.EXPECT().
		FindAllByIDs(ctx, []int64{1, 99}).
		Return([]*entity.Plant{{ID: 1, OwnerID: 5}}, nil)

	_, err := service.Create(ctx, usecase.EventInput{
		Kind:     entity.EventNote,
		PlantIDs: []int64{1, 99},
		Details:  json.RawMessage(`{"text":"note"}`),
	})
	require.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
}

func TestEventService_Create_ForeignPlantForbidden(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.plantRepo.EXPECT().
		FindAllByIDs(ctx, []int64{1, 2}).
		Return([]*entity.Plant{{ID: 1, OwnerID: 5}, {ID: 2, OwnerID: 9}}, nil)

	_, err := service.Create(ctx, usecase.EventInput{
		Kind:     entity.EventNote,
		PlantIDs: []int64{1, 2},
		Details:  json.RawMessage(`{"text":"note"}`),
	})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestEventService_Get_OwnerReads(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	event := &entity.Event{ID: 100, PlantIDs: []int64{1}, Details: &entity.NoteDetails{Text: "note"}}
	mocks.eventRepo.EXPECT().FindByID(ctx, int64(100)).Return(event, nil)
	mocks.plantRepo.EXPECT().FindAllByIDs(ctx, []int64{1}).Return([]*entity.Plant{{ID: 1, OwnerID: 5}}, nil)

	got, err := service.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestEventService_Get_StrangerForbidden(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	event := &entity.Event{ID: 100, PlantIDs: []int64{1}, Details: &entity.NoteDetails{}}
	mocks.eventRepo.EXPECT().FindByID(ctx, int64(100)).Return(event, nil)
	mocks.plantRepo.EXPECT().FindAllByIDs(ctx, []int64{1}).Return([]*entity.Plant{{ID: 1, OwnerID: 9}}, nil)

	_, err := service.Get(ctx, 100)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestEventService_Get_NotFound(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.eventRepo.EXPECT().FindByID(ctx, int64(100)).Return(nil, repository.ErrEventNotFound)

	_, err := service.Get(ctx, 100)
	require.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_List_GrowerSeesOnlyFullyOwned(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	events := []*entity.Event{
		{ID: 1, PlantIDs: []int64{1}, Details: &entity.NoteDetails{}},
		{ID: 2, PlantIDs: []int64{1, 2}, Details: &entity.NoteDetails{}},
		{ID: 3, PlantIDs: []int64{2}, Details: &entity.NoteDetails{}},
	}
	mocks.eventRepo.EXPECT().FindAll(ctx).Return(events, nil)
	mocks.plantRepo.EXPECT().
		FindAllByIDs(ctx, mock.AnythingOfType("[]int64")).
		Return([]*entity.Plant{{ID: 1, OwnerID: 5}, {ID: 2, OwnerID: 9}}, nil)

	got, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestEventService_List_AdminSeesAll(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(1, entity.RoleAdmin)

	events := []*entity.Event{
		{ID: 1, PlantIDs: []int64{1}, Details: &entity.NoteDetails{}},
		{ID: 2, PlantIDs: []int64{2}, Details: &entity.NoteDetails{}},
	}
	mocks.eventRepo.EXPECT().FindAll(ctx).Return(events, nil)

	got, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestEventService_ListByKind_UnknownKind(t *testing.T) {
	service, _ := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	_, err := service.ListByKind(ctx, entity.EventKind("REPOTTING"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNKNOWN_EVENT_KIND", appErr.ErrorCode())
}

func TestEventService_ListByPlant_PlantMissing(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.plantRepo.EXPECT().ExistsByID(ctx, int64(99)).Return(false, nil)

	_, err := service.ListByPlant(ctx, 99)
	require.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
}

func TestEventService_Update_KindCannotChange(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	event := &entity.Event{ID: 100, PlantIDs: []int64{1}, Details: &entity.WateringDetails{}}
	mocks.eventRepo.EXPECT().FindByID(ctx, int64(100)).Return(event, nil)

	_, err := service.Update(ctx, 100, usecase.EventInput{
		Kind:     entity.EventNote,
		PlantIDs: []int64{1},
		Details:  json.RawMessage(`{"text":"note"}`),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestEventService_Update_ReassignsPlants(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	event := &entity.Event{
		ID:       100,
		Date:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		PlantIDs: []int64{1},
		Details:  &entity.NoteDetails{Text: "old"},
	}
	mocks.eventRepo.EXPECT().FindByID(ctx, int64(100)).Return(event, nil)
	// Current plants, then the new assignment.
	mocks.plantRepo.EXPECT().FindAllByIDs(ctx, []int64{1}).Return([]*entity.Plant{{ID: 1, OwnerID: 5}}, nil)
	mocks.plantRepo.EXPECT().FindAllByIDs(ctx, []int64{2}).Return([]*entity.Plant{{ID: 2, OwnerID: 5}}, nil)

	txEventRepo := mockRepo.NewMockEventRepository(t)
	txEventRepo.EXPECT().Update(ctx, event).Return(nil)
	runTransaction(t, mocks.txManager, txEventRepo, nil)

	got, err := service.Update(ctx, 100, usecase.EventInput{
		PlantIDs: []int64{2},
		Details:  json.RawMessage(`{"text":"new"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, got.PlantIDs)
	assert.Equal(t, "new", got.Details.(*entity.NoteDetails).Text)
	// The date was not supplied, so the original one stands.
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), got.Date)
}

func TestEventService_Delete_OwnerSuccess(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	event := &entity.Event{ID: 100, PlantIDs: []int64{1}, Details: &entity.NoteDetails{}}
	mocks.eventRepo.EXPECT().FindByID(ctx, int64(100)).Return(event, nil)
	mocks.plantRepo.EXPECT().FindAllByIDs(ctx, []int64{1}).Return([]*entity.Plant{{ID: 1, OwnerID: 5}}, nil)
	mocks.eventRepo.EXPECT().Delete(ctx, int64(100)).Return(nil)

	require.NoError(t, service.Delete(ctx, 100))
}

func TestEventService_Delete_AdminCannotDeleteForeign(t *testing.T) {
	service, mocks := newEventService(t)
	ctx := ctxWithPrincipal(1, entity.RoleAdmin)

	event := &entity.Event{ID: 100, PlantIDs: []int64{1}, Details: &entity.NoteDetails{}}
	mocks.eventRepo.EXPECT().FindByID(ctx, int64(100)).Return(event, nil)
	mocks.plantRepo.EXPECT().FindAllByIDs(ctx, []int64{1}).Return([]*entity.Plant{{ID: 1, OwnerID: 9}}, nil)

	err := service.Delete(ctx, 100)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}
