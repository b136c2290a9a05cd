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

func newStrainService(t *testing.T) (usecase.StrainUsecase, *mockRepo.MockStrainRepository) {
	mockStrainRepo := mockRepo.NewMockStrainRepository(t)
	service := NewStrainService(StrainServiceParams{
		StrainRepo: mockStrainRepo,
		Logger:     newDiscardLogger(),
	})

	return service, mockStrainRepo
}

func TestStrainService_Create_StampsOwner(t *testing.T) {
	service, mockStrainRepo := newStrainService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockStrainRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Strain")).
		Run(func(_ context.Context, strain *entity.Strain) {
			strain.ID = 11
		}).
		Return(nil)

	strain, err := service.Create(ctx, usecase.StrainInput{Name: "Northern Lights", Dominance: "indica"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), strain.ID)
	assert.Equal(t, int64(5), strain.OwnerID)
}

func TestStrainService_SearchByName_GrowerSeesOnlyOwned(t *testing.T) {
	service, mockStrainRepo := newStrainService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockStrainRepo.EXPECT().SearchByName(ctx, "haze").Return([]*entity.Strain{
		{ID: 1, Name: "Amnesia Haze", OwnerID: 5},
		{ID: 2, Name: "Super Silver Haze", OwnerID: 9},
	}, nil)

	got, err := service.SearchByName(ctx, " haze ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestStrainService_SearchByName_AdminSeesAll(t *testing.T) {
	service, mockStrainRepo := newStrainService(t)
	ctx := ctxWithPrincipal(1, entity.RoleAdmin)

	strains := []*entity.Strain{
		{ID: 1, OwnerID: 5},
		{ID: 2, OwnerID: 9},
	}
	mockStrainRepo.EXPECT().SearchByName(ctx, "haze").Return(strains, nil)

	got, err := service.SearchByName(ctx, "haze")
	require.NoError(t, err)
	assert.Equal(t, strains, got)
}

func TestStrainService_Update_StrangerForbidden(t *testing.T) {
	service, mockStrainRepo := newStrainService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockStrainRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Strain{ID: 2, OwnerID: 9}, nil)

	_, err := service.Update(ctx, 2, usecase.StrainInput{Name: "Renamed"})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestStrainService_Delete_NotFound(t *testing.T) {
	service, mockStrainRepo := newStrainService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockStrainRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrStrainNotFound)

	err := service.Delete(ctx, 99)
	require.ErrorIs(t, err, domainerrors.ErrStrainNotFound)
}
