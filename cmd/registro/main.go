package main

import (
	"context"
	"log/slog"
	"os"

	"registro/config"
	"registro/internal/delivery"
	"registro/internal/delivery/http"
	"registro/internal/delivery/http/middleware"
	"registro/internal/delivery/http/router/handler"
	"registro/internal/infra/auth"
	logs "registro/internal/infra/log"
	"registro/internal/infra/persistence/postgres"
	"registro/internal/usecase/impl"

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
			postgres.NewTransactionManager,
			postgres.NewLegalEntityRepository,
			postgres.NewNaturalPersonRepository,
			postgres.NewProfileRepository,
			postgres.NewPermissionRepository,
			postgres.NewModuleRepository,
			postgres.NewSystemGrantRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotaryService,
			impl.NewSupplierService,
			impl.NewPersonService,
			impl.NewProfileService,
			impl.NewPermissionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotaryHandler,
			handler.NewSupplierHandler,
			handler.NewPersonHandler,
			handler.NewProfileHandler,
			handler.NewPermissionHandler,
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
