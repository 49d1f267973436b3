package main

import (
	"context"
	"log/slog"
	"os"

	"giftshop/config"
	"giftshop/internal/delivery"
	"giftshop/internal/delivery/worker"
	"giftshop/internal/delivery/worker/handler"
	"giftshop/internal/domain/constants"
	logs "giftshop/internal/infra/log"
	"giftshop/internal/infra/notification"
	"giftshop/internal/infra/persistence/postgres"
	"giftshop/internal/usecase/impl"

	"github.com/pkg/errors"
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
		injectHandler(),
		injectDelivery(),
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
		newDB,
	)
}

// newDB opens PostgreSQL. The worker reads devices written by the API process, so the
// in-memory driver cannot back it.
func newDB(params postgres.Params) (*gorm.DB, error) {
	if params.Config.Storage.Driver != constants.StorageDriverPostgres {
		return nil, errors.Errorf("worker requires storage driver %q, got %q",
			constants.StorageDriverPostgres, params.Config.Storage.Driver)
	}

	return postgres.New(params)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return notification.Module
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
