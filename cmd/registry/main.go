package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"userregistry/config"
	"userregistry/internal/delivery"
	"userregistry/internal/delivery/http"
	"userregistry/internal/delivery/http/middleware"
	"userregistry/internal/delivery/http/router/handler"
	"userregistry/internal/domain/service"
	"userregistry/internal/infra/auth"
	"userregistry/internal/infra/auth/google"
	logs "userregistry/internal/infra/log"
	"userregistry/internal/infra/persistence/postgres"
	"userregistry/internal/usecase"
	"userregistry/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	AuthUsecase usecase.AuthUsecase
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
			seedBootstrapAdmin,
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
			postgres.NewAccountRepository,
			postgres.NewRegistrantRepository,
			postgres.NewGeographyRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			google.NewVerifier,
		),
	)
}

// newPasswordHasher builds the bcrypt hasher with the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewRegistrantService,
			impl.NewDataLoadService,
			impl.NewGeographyService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewRegistrantHandler,
			handler.NewDataLoadHandler,
			handler.NewGeographyHandler,
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

// seedBootstrapAdmin runs after the database is reachable and migrated,
// before the HTTP server starts taking requests.
func seedBootstrapAdmin(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return params.AuthUsecase.EnsureBootstrapAdmin(ctx)
		},
	})
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
