package main

import (
	"context"
	"log/slog"
	"os"

	"flora/config"
	"flora/internal/delivery"
	"flora/internal/delivery/http"
	"flora/internal/delivery/http/middleware"
	"flora/internal/delivery/http/router/handler"
	"flora/internal/domain/service"
	"flora/internal/infra/auth"
	logs "flora/internal/infra/log"
	"flora/internal/infra/persistence/postgres"
	"flora/internal/infra/storage"
	"flora/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRoomRepository,
			postgres.NewStrainRepository,
			postgres.NewNutrientRepository,
			postgres.NewPlantRepository,
			postgres.NewEventRepository,
			postgres.NewFavoriteRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			newFileStorage,
		),
	)
}

// newPasswordHasher respects the configured bcrypt cost when one is set.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	}

	return auth.NewBcryptHasher()
}

// newFileStorage opens the note-media bucket and closes it on shutdown.
func newFileStorage(lc fx.Lifecycle, cfg *config.Config) (service.FileStorage, error) {
	fileStorage, cleanup, err := storage.NewBlobStorage(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return cleanup()
		},
	})

	return fileStorage, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewRoomService,
			impl.NewStrainService,
			impl.NewNutrientService,
			impl.NewPlantService,
			impl.NewEventService,
			impl.NewFavoriteService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewRoomHandler,
			handler.NewStrainHandler,
			handler.NewNutrientHandler,
			handler.NewPlantHandler,
			handler.NewEventHandler,
			handler.NewFavoriteHandler,
			handler.NewMediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
