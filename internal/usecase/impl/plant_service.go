package impl

import (
	"context"
	"log/slog"
	"strings"
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

// plantService implements the PlantUsecase interface.
type plantService struct {
	plantRepo  repository.PlantRepository
	roomRepo   repository.RoomRepository
	strainRepo repository.StrainRepository
	logger     *slog.Logger
}

// PlantServiceParams holds dependencies for plantService, injected by Fx.
type PlantServiceParams struct {
	fx.In

	PlantRepo  repository.PlantRepository
	RoomRepo   repository.RoomRepository
	StrainRepo repository.StrainRepository
	Logger     *slog.Logger
}

// NewPlantService is the constructor for plantService.
func NewPlantService(params PlantServiceParams) usecase.PlantUsecase {
	return &plantService{
		plantRepo:  params.PlantRepo,
		roomRepo:   params.RoomRepo,
		strainRepo: params.StrainRepo,
		logger:     params.Logger,
	}
}

func (srv *plantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// checkReferences verifies the room and strain a plant points at exist.
// Zero means unassigned and is always accepted.
func (srv *plantService) checkReferences(ctx context.Context, input usecase.PlantInput) error {
	if input.RoomID != 0 {
		exists, err := srv.roomRepo.ExistsByID(ctx, input.RoomID)
		if err != nil {
			return err
		}
		if !exists {
			return domainerrors.ErrRoomNotFound
		}
	}

	if input.StrainID != 0 {
		exists, err := srv.strainRepo.ExistsByID(ctx, input.StrainID)
		if err != nil {
			return err
		}
		if !exists {
			return domainerrors.ErrStrainNotFound
		}
	}

	return nil
}

// Create records a new plant owned by the caller.
func (srv *plantService) Create(ctx context.Context, input usecase.PlantInput) (*entity.Plant, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	stage := input.Stage
	if stage == "" {
		stage = entity.StageGermination
	}
	if !stage.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown stage: " + stage.String())
	}

	if err := srv.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	plant := &entity.Plant{
		Name:       input.Name,
		Stage:      stage,
		RoomID:     input.RoomID,
		StrainID:   input.StrainID,
		OwnerID:    p.UserID,
		CreatedAt:  time.Now(),
		Production: input.Production,
		FinishedAt: input.FinishedAt,
		Location:   input.Location,
		Public:     input.Public,
	}

	if err := srv.plantRepo.Create(ctx, plant); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Plant created",
		slog.Int64("plantId", plant.ID),
		slog.Int64("ownerId", p.UserID),
		slog.String("stage", plant.Stage.String()),
	)

	return plant, nil
}

// Get returns one plant. Public plants are readable by any
// authenticated caller.
func (srv *plantService) Get(ctx context.Context, id int64) (*entity.Plant, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	plant, err := srv.plantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, domainerrors.ErrPlantNotFound
		}

		return nil, err
	}

	if !plant.Public && !policy.CanAccess(p, plant.OwnerID, policy.OpRead) {
		return nil, domainerrors.ErrForbidden
	}

	return plant, nil
}

// List returns the plants the caller may read.
func (srv *plantService) List(ctx context.Context) ([]*entity.Plant, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if isPrivilegedReader(p) {
		return srv.plantRepo.FindAll(ctx)
	}

	return srv.plantRepo.FindByOwnerID(ctx, p.UserID)
}

// ListByRoom returns the readable plants growing in one room.
func (srv *plantService) ListByRoom(ctx context.Context, roomID int64) ([]*entity.Plant, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	exists, err := srv.roomRepo.ExistsByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainerrors.ErrRoomNotFound
	}

	plants, err := srv.plantRepo.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return filterReadablePlants(p, plants), nil
}

// SearchByName returns the readable plants whose name contains the fragment.
func (srv *plantService) SearchByName(ctx context.Context, fragment string) ([]*entity.Plant, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	plants, err := srv.plantRepo.SearchByName(ctx, strings.TrimSpace(fragment))
	if err != nil {
		return nil, err
	}

	return filterReadablePlants(p, plants), nil
}

// Update modifies a plant the caller owns.
func (srv *plantService) Update(ctx context.Context, id int64, input usecase.PlantInput) (*entity.Plant, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	plant, err := srv.plantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, domainerrors.ErrPlantNotFound
		}

		return nil, err
	}

	if !policy.CanAccess(p, plant.OwnerID, policy.OpUpdate) {
		return nil, domainerrors.ErrForbidden
	}

	stage := input.Stage
	if stage == "" {
		stage = plant.Stage
	}
	if !stage.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown stage: " + stage.String())
	}

	if err := srv.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	plant.Name = input.Name
	plant.Stage = stage
	plant.RoomID = input.RoomID
	plant.StrainID = input.StrainID
	plant.Production = input.Production
	plant.FinishedAt = input.FinishedAt
	plant.Location = input.Location
	plant.Public = input.Public

	if err := srv.plantRepo.Update(ctx, plant); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Plant updated", slog.Int64("plantId", plant.ID))

	return plant, nil
}

// Delete removes a plant the caller owns.
func (srv *plantService) Delete(ctx context.Context, id int64) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	plant, err := srv.plantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return domainerrors.ErrPlantNotFound
		}

		return err
	}

	if !policy.CanAccess(p, plant.OwnerID, policy.OpDelete) {
		return domainerrors.ErrForbidden
	}

	if err := srv.plantRepo.Delete(ctx, id); err != nil {
		return err
	}

	srv.log(ctx).Info("Plant deleted", slog.Int64("plantId", id))

	return nil
}

// filterReadablePlants keeps the plants the principal may read: all of
// them for privileged readers, otherwise its own plus public ones.
func filterReadablePlants(p *entity.Principal, plants []*entity.Plant) []*entity.Plant {
	if isPrivilegedReader(p) {
		return plants
	}

	readable := make([]*entity.Plant, 0, len(plants))
	for _, plant := range plants {
		if plant.Public || plant.OwnerID == p.UserID {
			readable = append(readable, plant)
		}
	}

	return readable
}
