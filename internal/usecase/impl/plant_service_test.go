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

func newPlantService(t *testing.T) (usecase.PlantUsecase, *mockRepo.MockPlantRepository, *mockRepo.MockRoomRepository, *mockRepo.MockStrainRepository) {
	mockPlantRepo := mockRepo.NewMockPlantRepository(t)
	mockRoomRepo := mockRepo.NewMockRoomRepository(t)
	mockStrainRepo := mockRepo.NewMockStrainRepository(t)
	service := NewPlantService(PlantServiceParams{
		PlantRepo:  mockPlantRepo,
		RoomRepo:   mockRoomRepo,
		StrainRepo: mockStrainRepo,
		Logger:     newDiscardLogger(),
	})

	return service, mockPlantRepo, mockRoomRepo, mockStrainRepo
}

func TestPlantService_Create_DefaultsToGermination(t *testing.T) {
	service, mockPlantRepo, _, _ := newPlantService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockPlantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Plant")).
		Run(func(_ context.Context, plant *entity.Plant) {
			plant.ID = 21
		}).
		Return(nil)

	plant, err := service.Create(ctx, usecase.PlantInput{Name: "Plant #1"})
	require.NoError(t, err)
	assert.Equal(t, int64(21), plant.ID)
	assert.Equal(t, entity.StageGermination, plant.Stage)
	assert.Equal(t, int64(5), plant.OwnerID)
	assert.False(t, plant.CreatedAt.IsZero())
}

func TestPlantService_Create_UnknownStage(t *testing.T) {
	service, _, _, _ := newPlantService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	_, err := service.Create(ctx, usecase.PlantInput{Name: "Plant", Stage: entity.Stage("SPROUTING")})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPlantService_Create_MissingRoom(t *testing.T) {
	service, _, mockRoomRepo, _ := newPlantService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockRoomRepo.EXPECT().ExistsByID(ctx, int64(99)).Return(false, nil)

	_, err := service.Create(ctx, usecase.PlantInput{Name: "Plant", RoomID: 99})
	require.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
}

func TestPlantService_Create_MissingStrain(t *testing.T) {
	service, _, mockRoomRepo, mockStrainRepo := newPlantService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockRoomRepo.EXPECT().ExistsByID(ctx, int64(3)).Return(true, nil)
	mockStrainRepo.EXPECT().ExistsByID(ctx, int64(99)).Return(false, nil)

	_, err := service.Create(ctx, usecase.PlantInput{Name: "Plant", RoomID: 3, StrainID: 99})
	require.ErrorIs(t, err, domainerrors.ErrStrainNotFound)
}

func TestPlantService_Get_PublicPlantReadableByStranger(t *testing.T) {
	service, mockPlantRepo, _, _ := newPlantService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	plant := &entity.Plant{ID: 21, OwnerID: 9, Public: true}
	mockPlantRepo.EXPECT().FindByID(ctx, int64(21)).Return(plant, nil)

	got, err := service.Get(ctx, 21)
	require.NoError(t, err)
	assert.Equal(t, plant, got)
}

func TestPlantService_Get_PrivatePlantForbidden(t *testing.T) {
	service, mockPlantRepo, _, _ := newPlantService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockPlantRepo.EXPECT().FindByID(ctx, int64(21)).Return(&entity.Plant{ID: 21, OwnerID: 9}, nil)

	_, err := service.Get(ctx, 21)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPlantService_List_GrowerSeesOwn(t *testing.T) {
	service, mockPlantRepo, _, _ := newPlantService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	plants := []*entity.Plant{{ID: 21, OwnerID: 5}}
	mockPlantRepo.EXPECT().FindByOwnerID(ctx, int64(5)).Return(plants, nil)

	got, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, plants, got)
}

func TestPlantService_ListByRoom_FiltersToReadable(t *testing.T) {
	service, mockPlantRepo, mockRoomRepo, _ := newPlantService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockRoomRepo.EXPECT().ExistsByID(ctx, int64(3)).Return(true, nil)
	mockPlantRepo.EXPECT().FindByRoomID(ctx, int64(3)).Return([]*entity.Plant{
		{ID: 1, OwnerID: 5},
		{ID: 2, OwnerID: 9},
		{ID: 3, OwnerID: 9, Public: true},
	}, nil)

	got, err := service.ListByRoom(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestPlantService_ListByRoom_RoomMissing(t *testing.T) {
	service, _, mockRoomRepo, _ := newPlantService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockRoomRepo.EXPECT().ExistsByID(ctx, int64(99)).Return(false, nil)

	_, err := service.ListByRoom(ctx, 99)
	require.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
}

func TestPlantService_SearchByName_AdminSeesAll(t *testing.T) {
	service, mockPlantRepo, _, _ := newPlantService(t)
	ctx := ctxWithPrincipal(1, entity.RoleAdmin)

	plants := []*entity.Plant{{ID: 1, OwnerID: 5}, {ID: 2, OwnerID: 9}}
	mockPlantRepo.EXPECT().SearchByName(ctx, "auto").Return(plants, nil)

	got, err := service.SearchByName(ctx, " auto ")
	require.NoError(t, err)
	assert.Equal(t, plants, got)
}

func TestPlantService_Update_PreservesStageWhenEmpty(t *testing.T) {
	service, mockPlantRepo, _, _ := newPlantService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	plant := &entity.Plant{ID: 21, OwnerID: 5, Stage: entity.StageFlowering, Name: "Old"}
	mockPlantRepo.EXPECT().FindByID(ctx, int64(21)).Return(plant, nil)
	mockPlantRepo.EXPECT().Update(ctx, plant).Return(nil)

	got, err := service.Update(ctx, 21, usecase.PlantInput{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, entity.StageFlowering, got.Stage)
	assert.Equal(t, "Renamed", got.Name)
}

func TestPlantService_Update_StrangerForbidden(t *testing.T) {
	service, mockPlantRepo, _, _ := newPlantService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockPlantRepo.EXPECT().FindByID(ctx, int64(21)).Return(&entity.Plant{ID: 21, OwnerID: 9}, nil)

	_, err := service.Update(ctx, 21, usecase.PlantInput{Name: "Renamed"})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPlantService_Delete_SuperAdminDeletesAny(t *testing.T) {
	service, mockPlantRepo, _, _ := newPlantService(t)
	ctx := ctxWithPrincipal(1, entity.RoleSuperAdmin)

	mockPlantRepo.EXPECT().FindByID(ctx, int64(21)).Return(&entity.Plant{ID: 21, OwnerID: 9}, nil)
	mockPlantRepo.EXPECT().Delete(ctx, int64(21)).Return(nil)

	require.NoError(t, service.Delete(ctx, 21))
}

func TestPlantService_Delete_NotFound(t *testing.T) {
	service, mockPlantRepo, _, _ := newPlantService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockPlantRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrPlantNotFound)

	err := service.Delete(ctx, 99)
	require.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
}
