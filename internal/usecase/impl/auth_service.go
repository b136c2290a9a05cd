package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/domain/service"
	"flora/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new grower account.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidRequest
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Password hashing failed", slog.String("error", err.Error()))

		return nil, domainerrors.ErrInternalError
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         entity.RoleGrower,
		RegisteredAt: time.Now(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, domainerrors.ErrUsernameTaken
		}

		return nil, err
	}

	srv.log(ctx).Info("User registered",
		slog.Int64("userId", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login checks the credentials and issues a session token. The specific
// failure reason only reaches the audit log; the client always sees the
// same generic error.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidRequest
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login rejected: unknown username", slog.String("username", username))

			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Login lookup failed", slog.String("error", err.Error()))

		return nil, domainerrors.ErrAuthServiceUnavailable
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected: wrong password",
			slog.Int64("userId", user.ID),
			slog.String("username", user.Username),
		)

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.Principal())
	if err != nil {
		srv.log(ctx).Error("Token issuance failed",
			slog.Int64("userId", user.ID),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrAuthServiceUnavailable
	}

	srv.log(ctx).Info("Login succeeded",
		slog.Int64("userId", user.ID),
		slog.String("username", user.Username),
		slog.String("role", user.Role.String()),
	)

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// CurrentUser loads the full account of the authenticated principal.
func (srv *authService) CurrentUser(ctx context.Context) (*entity.User, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}
