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

// roomService implements the RoomUsecase interface.
type roomService struct {
	roomRepo repository.RoomRepository
	logger   *slog.Logger
}

// RoomServiceParams holds dependencies for roomService, injected by Fx.
type RoomServiceParams struct {
	fx.In

	RoomRepo repository.RoomRepository
	Logger   *slog.Logger
}

// NewRoomService is the constructor for roomService.
func NewRoomService(params RoomServiceParams) usecase.RoomUsecase {
	return &roomService{
		roomRepo: params.RoomRepo,
		logger:   params.Logger,
	}
}

func (srv *roomService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a new room owned by the caller.
func (srv *roomService) Create(ctx context.Context, input usecase.RoomInput) (*entity.Room, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	room := &entity.Room{
		Name:        input.Name,
		Description: input.Description,
		LightHours:  input.LightHours,
		Humidity:    input.Humidity,
		AmbientTemp: input.AmbientTemp,
		OwnerID:     p.UserID,
	}

	if err := srv.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Room created", slog.Int64("roomId", room.ID), slog.Int64("ownerId", p.UserID))

	return room, nil
}

// Get returns one room, subject to the ownership policy.
func (srv *roomService) Get(ctx context.Context, id int64) (*entity.Room, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	room, err := srv.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrRoomNotFound
		}

		return nil, err
	}

	if !policy.CanAccess(p, room.OwnerID, policy.OpRead) {
		return nil, domainerrors.ErrForbidden
	}

	return room, nil
}

// List returns the rooms the caller may read.
func (srv *roomService) List(ctx context.Context) ([]*entity.Room, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if isPrivilegedReader(p) {
		return srv.roomRepo.FindAll(ctx)
	}

	return srv.roomRepo.FindByOwnerID(ctx, p.UserID)
}

// Update modifies a room the caller owns.
func (srv *roomService) Update(ctx context.Context, id int64, input usecase.RoomInput) (*entity.Room, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	room, err := srv.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrRoomNotFound
		}

		return nil, err
	}

	if !policy.CanAccess(p, room.OwnerID, policy.OpUpdate) {
		return nil, domainerrors.ErrForbidden
	}

	room.Name = input.Name
	room.Description = input.Description
	room.LightHours = input.LightHours
	room.Humidity = input.Humidity
	room.AmbientTemp = input.AmbientTemp

	if err := srv.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Room updated", slog.Int64("roomId", room.ID))

	return room, nil
}

// Delete removes a room the caller owns.
func (srv *roomService) Delete(ctx context.Context, id int64) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	room, err := srv.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return domainerrors.ErrRoomNotFound
		}

		return err
	}

	if !policy.CanAccess(p, room.OwnerID, policy.OpDelete) {
		return domainerrors.ErrForbidden
	}

	if err := srv.roomRepo.Delete(ctx, id); err != nil {
		return err
	}

	srv.log(ctx).Info("Room deleted", slog.Int64("roomId", id))

	return nil
}
