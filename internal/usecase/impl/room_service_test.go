package impl

import (
	"context"
	"testing"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	mockRepo "flora/internal/mocks/repository"
	"flora/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRoomService(t *testing.T) (usecase.RoomUsecase, *mockRepo.MockRoomRepository) {
	mockRoomRepo := mockRepo.NewMockRoomRepository(t)
	service := NewRoomService(RoomServiceParams{
		RoomRepo: mockRoomRepo,
		Logger:   newDiscardLogger(),
	})

	return service, mockRoomRepo
}

func TestRoomService_Create_StampsOwner(t *testing.T) {
	service, mockRoomRepo := newRoomService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockRoomRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Room")).
		Run(func(_ context.Context, room *entity.Room) {
			room.ID = 3
		}).
		Return(nil)

	room, err := service.Create(ctx, usecase.RoomInput{Name: "Veg tent", LightHours: "18/6"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), room.ID)
	assert.Equal(t, int64(5), room.OwnerID)
	assert.Equal(t, "Veg tent", room.Name)
}

func TestRoomService_Get_OwnerReads(t *testing.T) {
	service, mockRoomRepo := newRoomService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	room := &entity.Room{ID: 3, OwnerID: 5}
	mockRoomRepo.EXPECT().FindByID(ctx, int64(3)).Return(room, nil)

	got, err := service.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, room, got)
}

func TestRoomService_Get_StrangerForbidden(t *testing.T) {
	service, mockRoomRepo := newRoomService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockRoomRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Room{ID: 3, OwnerID: 9}, nil)

	_, err := service.Get(ctx, 3)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRoomService_Get_AdminReadsAny(t *testing.T) {
	service, mockRoomRepo := newRoomService(t)
	ctx := ctxWithPrincipal(1, entity.RoleAdmin)

	room := &entity.Room{ID: 3, OwnerID: 9}
	mockRoomRepo.EXPECT().FindByID(ctx, int64(3)).Return(room, nil)

	got, err := service.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, room, got)
}

func TestRoomService_Get_NotFound(t *testing.T) {
	service, mockRoomRepo := newRoomService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockRoomRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrRoomNotFound)

	_, err := service.Get(ctx, 99)
	require.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
}

func TestRoomService_List_GrowerSeesOwn(t *testing.T) {
	service, mockRoomRepo := newRoomService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	rooms := []*entity.Room{{ID: 3, OwnerID: 5}}
	mockRoomRepo.EXPECT().FindByOwnerID(ctx, int64(5)).Return(rooms, nil)

	got, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, rooms, got)
}

func TestRoomService_List_AdminSeesAll(t *testing.T) {
	service, mockRoomRepo := newRoomService(t)
	ctx := ctxWithPrincipal(1, entity.RoleAdmin)

	rooms := []*entity.Room{{ID: 3, OwnerID: 5}, {ID: 4, OwnerID: 9}}
	mockRoomRepo.EXPECT().FindAll(ctx).Return(rooms, nil)

	got, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, rooms, got)
}

func TestRoomService_Update_AdminCannotMutateOthers(t *testing.T) {
	service, mockRoomRepo := newRoomService(t)
	ctx := ctxWithPrincipal(1, entity.RoleAdmin)

	mockRoomRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Room{ID: 3, OwnerID: 9}, nil)

	_, err := service.Update(ctx, 3, usecase.RoomInput{Name: "Renamed"})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRoomService_Update_OwnerSuccess(t *testing.T) {
	service, mockRoomRepo := newRoomService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	room := &entity.Room{ID: 3, OwnerID: 5, Name: "Old"}
	mockRoomRepo.EXPECT().FindByID(ctx, int64(3)).Return(room, nil)
	mockRoomRepo.EXPECT().Update(ctx, room).Return(nil)

	got, err := service.Update(ctx, 3, usecase.RoomInput{Name: "Flower room", Humidity: 55})
	require.NoError(t, err)
	assert.Equal(t, "Flower room", got.Name)
	assert.Equal(t, float64(55), got.Humidity)
}

func TestRoomService_Delete_StrangerForbidden(t *testing.T) {
	service, mockRoomRepo := newRoomService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockRoomRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Room{ID: 3, OwnerID: 9}, nil)

	err := service.Delete(ctx, 3)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRoomService_Delete_OwnerSuccess(t *testing.T) {
	service, mockRoomRepo := newRoomService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockRoomRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Room{ID: 3, OwnerID: 5}, nil)
	mockRoomRepo.EXPECT().Delete(ctx, int64(3)).Return(nil)

	require.NoError(t, service.Delete(ctx, 3))
}
