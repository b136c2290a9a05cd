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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every account. Restricted to privileged readers.
func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !isPrivilegedReader(p) {
		return nil, domainerrors.ErrForbidden
	}

	return srv.userRepo.FindAll(ctx)
}

// Get returns one account. A grower may only read its own; admins read any.
func (srv *userService) Get(ctx context.Context, id int64) (*entity.User, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	// An account is owned by itself for policy purposes.
	if !policy.CanAccess(p, user.ID, policy.OpRead) {
		return nil, domainerrors.ErrForbidden
	}

	return user, nil
}

// SearchByName returns accounts by name fragment. Privileged readers only.
func (srv *userService) SearchByName(ctx context.Context, fragment string) ([]*entity.User, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !isPrivilegedReader(p) {
		return nil, domainerrors.ErrForbidden
	}

	return srv.userRepo.SearchByName(ctx, strings.TrimSpace(fragment))
}

// Update modifies an account's profile fields.
func (srv *userService) Update(ctx context.Context, input usecase.UpdateUserInput) (*entity.User, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	if !policy.CanAccess(p, user.ID, policy.OpUpdate) {
		return nil, domainerrors.ErrForbidden
	}

	if username := strings.TrimSpace(input.Username); username != "" {
		user.Username = username
	}
	user.FirstName = input.FirstName
	user.LastName = input.LastName

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, domainerrors.ErrUsernameTaken
		}

		return nil, err
	}

	srv.log(ctx).Info("User updated", slog.Int64("userId", user.ID))

	return user, nil
}

// UpdateRole changes an account's role. Super admin only.
func (srv *userService) UpdateRole(ctx context.Context, id int64, role entity.Role) (*entity.User, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !p.IsSuperAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + role.String())
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	previous := user.Role
	user.Role = role

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User role changed",
		slog.Int64("userId", user.ID),
		slog.String("from", previous.String()),
		slog.String("to", role.String()),
	)

	return user, nil
}

// Delete removes an account.
func (srv *userService) Delete(ctx context.Context, id int64) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	exists, err := srv.userRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrUserNotFound
	}

	if !policy.CanAccess(p, id, policy.OpDelete) {
		return domainerrors.ErrForbidden
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	srv.log(ctx).Info("User deleted", slog.Int64("userId", id))

	return nil
}
