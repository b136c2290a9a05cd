package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/policy"
	"flora/internal/domain/repository"
	"flora/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// strainService implements the StrainUsecase interface.
type strainService struct {
	strainRepo repository.StrainRepository
	logger     *slog.Logger
}

// StrainServiceParams holds dependencies for strainService, injected by Fx.
type StrainServiceParams struct {
	fx.In

	StrainRepo repository.StrainRepository
	Logger     *slog.Logger
}

// NewStrainService is the constructor for strainService.
func NewStrainService(params StrainServiceParams) usecase.StrainUsecase {
	return &strainService{
		strainRepo: params.StrainRepo,
		logger:     params.Logger,
	}
}

func (srv *strainService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a new strain owned by the caller.
func (srv *strainService) Create(ctx context.Context, input usecase.StrainInput) (*entity.Strain, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	strain := &entity.Strain{
		Name:           input.Name,
		ParentGenetics: input.ParentGenetics,
		Dominance:      input.Dominance,
		AromaFlavor:    input.AromaFlavor,
		THC:            input.THC,
		CBD:            input.CBD,
		Detail:         input.Detail,
		OwnerID:        p.UserID,
	}

	if err := srv.strainRepo.Create(ctx, strain); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Strain created", slog.Int64("strainId", strain.ID), slog.Int64("ownerId", p.UserID))

	return strain, nil
}

// Get returns one strain, subject to the ownership policy.
func (srv *strainService) Get(ctx context.Context, id int64) (*entity.Strain, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	strain, err := srv.strainRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStrainNotFound) {
			return nil, domainerrors.ErrStrainNotFound
		}

		return nil, err
	}

	if !policy.CanAccess(p, strain.OwnerID, policy.OpRead) {
		return nil, domainerrors.ErrForbidden
	}

	return strain, nil
}

// List returns the strains the caller may read.
func (srv *strainService) List(ctx context.Context) ([]*entity.Strain, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if isPrivilegedReader(p) {
		return srv.strainRepo.FindAll(ctx)
	}

	return srv.strainRepo.FindByOwnerID(ctx, p.UserID)
}

// SearchByName returns the readable strains whose name contains the fragment.
func (srv *strainService) SearchByName(ctx context.Context, fragment string) ([]*entity.Strain, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	strains, err := srv.strainRepo.SearchByName(ctx, strings.TrimSpace(fragment))
	if err != nil {
		return nil, err
	}

	if isPrivilegedReader(p) {
		return strains, nil
	}

	owned := make([]*entity.Strain, 0, len(strains))
	for _, strain := range strains {
		if strain.OwnerID == p.UserID {
			owned = append(owned, strain)
		}
	}

	return owned, nil
}

// Update modifies a strain the caller owns.
func (srv *strainService) Update(ctx context.Context, id int64, input usecase.StrainInput) (*entity.Strain, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	strain, err := srv.strainRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStrainNotFound) {
			return nil, domainerrors.ErrStrainNotFound
		}

		return nil, err
	}

	if !policy.CanAccess(p, strain.OwnerID, policy.OpUpdate) {
		return nil, domainerrors.ErrForbidden
	}

	strain.Name = input.Name
	strain.ParentGenetics = input.ParentGenetics
	strain.Dominance = input.Dominance
	strain.AromaFlavor = input.AromaFlavor
	strain.THC = input.THC
	strain.CBD = input.CBD
	strain.Detail = input.Detail

	if err := srv.strainRepo.Update(ctx, strain); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Strain updated", slog.Int64("strainId", strain.ID))

	return strain, nil
}

// Delete removes a strain the caller owns.
func (srv *strainService) Delete(ctx context.Context, id int64) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	strain, err := srv.strainRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStrainNotFound) {
			return domainerrors.ErrStrainNotFound
		}

		return err
	}

	if !policy.CanAccess(p, strain.OwnerID, policy.OpDelete) {
		return domainerrors.ErrForbidden
	}

	if err := srv.strainRepo.Delete(ctx, id); err != nil {
		return err
	}

	srv.log(ctx).Info("Strain deleted", slog.Int64("strainId", id))

	return nil
}
