package main

import (
	"context"
	"log/slog"
	"os"

	"cabinet/config"
	"cabinet/internal/delivery"
	"cabinet/internal/delivery/api"
	"cabinet/internal/delivery/api/middleware"
	"cabinet/internal/delivery/api/router/handler"
	"cabinet/internal/delivery/scheduler"
	"cabinet/internal/infra/auth"
	logs "cabinet/internal/infra/log"
	"cabinet/internal/infra/persistence/postgres"
	"cabinet/internal/infra/pubsub"
	"cabinet/internal/infra/qrcode"
	"cabinet/internal/infra/redis"
	"cabinet/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			migrateSchema,
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
		redis.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewItemRepository,
			postgres.NewStockRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			redis.NewLoginLimiter,
			qrcode.NewLabelService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAccountService,
			impl.NewItemService,
			impl.NewStockService,
			impl.NewGuardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRouteGuard,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewAccountHandler,
			handler.NewItemHandler,
			handler.NewStockHandler,
			handler.NewGuardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewSessionCleanup,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func migrateSchema(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *slog.Logger) error {
	if !cfg.Env.AutoMigrate {
		return nil
	}

	logger.Info("Migrating database schema")

	return postgres.Migrate(ctx, db)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
