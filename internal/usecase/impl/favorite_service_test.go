package impl

import (
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

type favoriteServiceMocks struct {
	favoriteRepo *mockRepo.MockFavoriteRepository
	plantRepo    *mockRepo.MockPlantRepository
	roomRepo     *mockRepo.MockRoomRepository
	userRepo     *mockRepo.MockUserRepository
}

func newFavoriteService(t *testing.T) (usecase.FavoriteUsecase, favoriteServiceMocks) {
	mocks := favoriteServiceMocks{
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		plantRepo:    mockRepo.NewMockPlantRepository(t),
		roomRepo:     mockRepo.NewMockRoomRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
	}
	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: mocks.favoriteRepo,
		PlantRepo:    mocks.plantRepo,
		RoomRepo:     mocks.roomRepo,
		UserRepo:     mocks.userRepo,
		Logger:       newDiscardLogger(),
	})

	return service, mocks
}

func TestFavoriteService_Add_Plant(t *testing.T) {
	service, mocks := newFavoriteService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.plantRepo.EXPECT().ExistsByID(ctx, int64(21)).Return(true, nil)
	mocks.favoriteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(nil)

	require.NoError(t, service.Add(ctx, entity.FavoritePlant, 21))
}

func TestFavoriteService_Add_TargetMissing(t *testing.T) {
	service, mocks := newFavoriteService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.roomRepo.EXPECT().ExistsByID(ctx, int64(99)).Return(false, nil)

	err := service.Add(ctx, entity.FavoriteRoom, 99)
	require.ErrorIs(t, err, domainerrors.ErrFavoriteTargetNotFound)
}

func TestFavoriteService_Add_Duplicate(t *testing.T) {
	service, mocks := newFavoriteService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.userRepo.EXPECT().ExistsByID(ctx, int64(9)).Return(true, nil)
	mocks.favoriteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(repository.ErrFavoriteExists)

	err := service.Add(ctx, entity.FavoriteUser, 9)
	require.ErrorIs(t, err, domainerrors.ErrAlreadyFavorited)
}

func TestFavoriteService_Add_UnknownKind(t *testing.T) {
	service, _ := newFavoriteService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	err := service.Add(ctx, entity.FavoriteKind("GARDEN"), 21)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestFavoriteService_Remove_Success(t *testing.T) {
	service, mocks := newFavoriteService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.favoriteRepo.EXPECT().
		Delete(ctx, int64(5), int64(21), entity.FavoritePlant).
		Return(nil)

	require.NoError(t, service.Remove(ctx, entity.FavoritePlant, 21))
}

func TestFavoriteService_Remove_NotFavorited(t *testing.T) {
	service, mocks := newFavoriteService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.favoriteRepo.EXPECT().
		Delete(ctx, int64(5), int64(21), entity.FavoritePlant).
		Return(repository.ErrFavoriteNotFound)

	err := service.Remove(ctx, entity.FavoritePlant, 21)
	require.ErrorIs(t, err, domainerrors.ErrNotFavorited)
}

func TestFavoriteService_List_Plants(t *testing.T) {
	service, mocks := newFavoriteService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	plants := []*entity.Plant{{ID: 21}, {ID: 22}}
	mocks.favoriteRepo.EXPECT().
		FindTargetIDs(ctx, int64(5), entity.FavoritePlant).
		Return([]int64{21, 22}, nil)
	mocks.plantRepo.EXPECT().FindAllByIDs(ctx, []int64{21, 22}).Return(plants, nil)

	output, err := service.List(ctx, entity.FavoritePlant)
	require.NoError(t, err)
	assert.Equal(t, entity.FavoritePlant, output.Kind)
	assert.Equal(t, plants, output.Plants)
}

func TestFavoriteService_List_SkipsDeletedRooms(t *testing.T) {
	service, mocks := newFavoriteService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.favoriteRepo.EXPECT().
		FindTargetIDs(ctx, int64(5), entity.FavoriteRoom).
		Return([]int64{3, 4}, nil)
	mocks.roomRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, repository.ErrRoomNotFound)
	mocks.roomRepo.EXPECT().FindByID(ctx, int64(4)).Return(&entity.Room{ID: 4}, nil)

	output, err := service.List(ctx, entity.FavoriteRoom)
	require.NoError(t, err)
	require.Len(t, output.Rooms, 1)
	assert.Equal(t, int64(4), output.Rooms[0].ID)
}

func TestFavoriteService_List_Users(t *testing.T) {
	service, mocks := newFavoriteService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mocks.favoriteRepo.EXPECT().
		FindTargetIDs(ctx, int64(5), entity.FavoriteUser).
		Return([]int64{9}, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(&entity.User{ID: 9}, nil)

	output, err := service.List(ctx, entity.FavoriteUser)
	require.NoError(t, err)
	require.Len(t, output.Users, 1)
	assert.Equal(t, int64(9), output.Users[0].ID)
}
