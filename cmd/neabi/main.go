package main

import (
	"context"
	"log/slog"
	"os"

	"neabi/config"
	"neabi/internal/delivery"
	"neabi/internal/delivery/http"
	"neabi/internal/delivery/http/middleware"
	"neabi/internal/delivery/http/router/handler"
	"neabi/internal/domain/service"
	"neabi/internal/infra/auth"
	logs "neabi/internal/infra/log"
	"neabi/internal/infra/persistence/postgres"
	"neabi/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
			bootstrapDatabase,
			impl.NewSessionSweeper,
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
			postgres.NewSessionRepository,
			postgres.NewPostRepository,
			postgres.NewEventRepository,
			postgres.NewTaxonomyRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPostService,
			impl.NewEventService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPingHandler,
			handler.NewAuthHandler,
			handler.NewPostHandler,
			handler.NewEventHandler,
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

// bootstrapDatabase migrates the schema and, when enabled, seeds the default
// users and taxonomy before the server starts accepting requests.
func bootstrapDatabase(
	ctx context.Context,
	cfg *config.Config,
	db *gorm.DB,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) error {
	if err := postgres.Migrate(db); err != nil {
		return err
	}

	if cfg.Seed != nil && cfg.Seed.Enabled {
		return postgres.Seed(ctx, db, hasher, logger)
	}

	return nil
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
