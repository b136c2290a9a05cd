package impl

import (
	"context"
	"testing"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	mockRepo "flora/internal/mocks/repository"
	"flora/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNutrientService(t *testing.T) (usecase.NutrientUsecase, *mockRepo.MockNutrientRepository) {
	mockNutrientRepo := mockRepo.NewMockNutrientRepository(t)
	service := NewNutrientService(NutrientServiceParams{
		NutrientRepo: mockNutrientRepo,
		Logger:       newDiscardLogger(),
	})

	return service, mockNutrientRepo
}

func TestNutrientService_Create_StampsOwner(t *testing.T) {
	service, mockNutrientRepo := newNutrientService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockNutrientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Nutrient")).
		Run(func(_ context.Context, nutrient *entity.Nutrient) {
			nutrient.ID = 8
		}).
		Return(nil)

	nutrient, err := service.Create(ctx, usecase.NutrientInput{Title: "CalMag"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), nutrient.ID)
	assert.Equal(t, int64(5), nutrient.OwnerID)
}

func TestNutrientService_List_GrowerSeesOwn(t *testing.T) {
	service, mockNutrientRepo := newNutrientService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	nutrients := []*entity.Nutrient{{ID: 8, OwnerID: 5}}
	mockNutrientRepo.EXPECT().FindByOwnerID(ctx, int64(5)).Return(nutrients, nil)

	got, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, nutrients, got)
}

func TestNutrientService_Get_StrangerForbidden(t *testing.T) {
	service, mockNutrientRepo := newNutrientService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockNutrientRepo.EXPECT().FindByID(ctx, int64(8)).Return(&entity.Nutrient{ID: 8, OwnerID: 9}, nil)

	_, err := service.Get(ctx, 8)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNutrientService_Unauthenticated(t *testing.T) {
	service, _ := newNutrientService(t)

	_, err := service.List(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
