package impl

import (
	"context"
	"log/slog"

	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	plantRepo    repository.PlantRepository
	roomRepo     repository.RoomRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	PlantRepo    repository.PlantRepository
	RoomRepo     repository.RoomRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		plantRepo:    params.PlantRepo,
		roomRepo:     params.RoomRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// targetExists checks the referenced target under its kind's table.
func (srv *favoriteService) targetExists(ctx context.Context, kind entity.FavoriteKind, targetID int64) (bool, error) {
	switch kind {
	case entity.FavoritePlant:
		return srv.plantRepo.ExistsByID(ctx, targetID)
	case entity.FavoriteRoom:
		return srv.roomRepo.ExistsByID(ctx, targetID)
	case entity.FavoriteUser:
		return srv.userRepo.ExistsByID(ctx, targetID)
	default:
		return false, domainerrors.ErrValidationFailed.WithDetails("unknown favorite kind: " + kind.String())
	}
}

// Add marks a target as a favorite of the caller.
func (srv *favoriteService) Add(ctx context.Context, kind entity.FavoriteKind, targetID int64) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	exists, err := srv.targetExists(ctx, kind, targetID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrFavoriteTargetNotFound
	}

	favorite := &entity.Favorite{
		UserID:     p.UserID,
		TargetID:   targetID,
		TargetKind: kind,
	}

	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrFavoriteExists) {
			return domainerrors.ErrAlreadyFavorited
		}

		return err
	}

	srv.log(ctx).Info("Favorite added",
		slog.Int64("userId", p.UserID),
		slog.String("kind", kind.String()),
		slog.Int64("targetId", targetID),
	)

	return nil
}

// Remove unmarks a target.
func (srv *favoriteService) Remove(ctx context.Context, kind entity.FavoriteKind, targetID int64) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	if !kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown favorite kind: " + kind.String())
	}

	if err := srv.favoriteRepo.Delete(ctx, p.UserID, targetID, kind); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrNotFavorited
		}

		return err
	}

	srv.log(ctx).Info("Favorite removed",
		slog.Int64("userId", p.UserID),
		slog.String("kind", kind.String()),
		slog.Int64("targetId", targetID),
	)

	return nil
}

// List returns the caller's favorites of one kind with targets
// hydrated. Targets deleted since favoriting are skipped silently.
func (srv *favoriteService) List(ctx context.Context, kind entity.FavoriteKind) (*usecase.FavoritesOutput, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown favorite kind: " + kind.String())
	}

	targetIDs, err := srv.favoriteRepo.FindTargetIDs(ctx, p.UserID, kind)
	if err != nil {
		return nil, err
	}

	output := &usecase.FavoritesOutput{Kind: kind}

	switch kind {
	case entity.FavoritePlant:
		output.Plants, err = srv.plantRepo.FindAllByIDs(ctx, targetIDs)
		if err != nil {
			return nil, err
		}
	case entity.FavoriteRoom:
		for _, id := range targetIDs {
			room, err := srv.roomRepo.FindByID(ctx, id)
			if errors.Is(err, repository.ErrRoomNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			output.Rooms = append(output.Rooms, room)
		}
	case entity.FavoriteUser:
		for _, id := range targetIDs {
			user, err := srv.userRepo.FindByID(ctx, id)
			if errors.Is(err, repository.ErrUserNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			output.Users = append(output.Users, user)
		}
	}

	return output, nil
}
