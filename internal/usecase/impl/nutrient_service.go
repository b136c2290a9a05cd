package impl

import (
	"context"
	"log/slog"

	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/policy"
	"flora/internal/domain/repository"
	"flora/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// nutrientService implements the NutrientUsecase interface.
type nutrientService struct {
	nutrientRepo repository.NutrientRepository
	logger       *slog.Logger
}

// NutrientServiceParams holds dependencies for nutrientService, injected by Fx.
type NutrientServiceParams struct {
	fx.In

	NutrientRepo repository.NutrientRepository
	Logger       *slog.Logger
}

// NewNutrientService is the constructor for nutrientService.
func NewNutrientService(params NutrientServiceParams) usecase.NutrientUsecase {
	return &nutrientService{
		nutrientRepo: params.NutrientRepo,
		logger:       params.Logger,
	}
}

func (srv *nutrientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a new nutrient owned by the caller.
func (srv *nutrientService) Create(ctx context.Context, input usecase.NutrientInput) (*entity.Nutrient, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	nutrient := &entity.Nutrient{
		Title:       input.Title,
		Description: input.Description,
		OwnerID:     p.UserID,
	}

	if err := srv.nutrientRepo.Create(ctx, nutrient); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Nutrient created", slog.Int64("nutrientId", nutrient.ID), slog.Int64("ownerId", p.UserID))

	return nutrient, nil
}

// Get returns one nutrient, subject to the ownership policy.
func (srv *nutrientService) Get(ctx context.Context, id int64) (*entity.Nutrient, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	nutrient, err := srv.nutrientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNutrientNotFound) {
			return nil, domainerrors.ErrNutrientNotFound
		}

		return nil, err
	}

	if !policy.CanAccess(p, nutrient.OwnerID, policy.OpRead) {
		return nil, domainerrors.ErrForbidden
	}

	return nutrient, nil
}

// List returns the nutrients the caller may read.
func (srv *nutrientService) List(ctx context.Context) ([]*entity.Nutrient, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if isPrivilegedReader(p) {
		return srv.nutrientRepo.FindAll(ctx)
	}

	return srv.nutrientRepo.FindByOwnerID(ctx, p.UserID)
}

// Update modifies a nutrient the caller owns.
func (srv *nutrientService) Update(ctx context.Context, id int64, input usecase.NutrientInput) (*entity.Nutrient, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	nutrient, err := srv.nutrientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNutrientNotFound) {
			return nil, domainerrors.ErrNutrientNotFound
		}

		return nil, err
	}

	if !policy.CanAccess(p, nutrient.OwnerID, policy.OpUpdate) {
		return nil, domainerrors.ErrForbidden
	}

	nutrient.Title = input.Title
	nutrient.Description = input.Description

	if err := srv.nutrientRepo.Update(ctx, nutrient); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Nutrient updated", slog.Int64("nutrientId", nutrient.ID))

	return nutrient, nil
}

// Delete removes a nutrient the caller owns.
func (srv *nutrientService) Delete(ctx context.Context, id int64) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	nutrient, err := srv.nutrientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNutrientNotFound) {
			return domainerrors.ErrNutrientNotFound
		}

		return err
	}

	if !policy.CanAccess(p, nutrient.OwnerID, policy.OpDelete) {
		return domainerrors.ErrForbidden
	}

	if err := srv.nutrientRepo.Delete(ctx, id); err != nil {
		return err
	}

	srv.log(ctx).Info("Nutrient deleted", slog.Int64("nutrientId", id))

	return nil
}
