package main

import (
	"log/slog"

	"giftshop/config"
	"giftshop/internal/domain/constants"
	"giftshop/internal/domain/repository"
	"giftshop/internal/infra/persistence/memory"
	"giftshop/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type repositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type repositories struct {
	fx.Out

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	GiftRepo   repository.GiftRepository
	OrderRepo  repository.OrderRepository
	DeviceRepo repository.DeviceRepository
}

// newRepositories builds every repository on the storage driver selected by storage.driver.
func newRepositories(params repositoryParams) (repositories, error) {
	switch params.Config.Storage.Driver {
	case constants.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()

		return repositories{
			TxManager:  memory.NewTransactionManager(store),
			UserRepo:   memory.NewUserRepository(store),
			GiftRepo:   memory.NewGiftRepository(store),
			OrderRepo:  memory.NewOrderRepository(store),
			DeviceRepo: memory.NewDeviceRepository(store),
		}, nil

	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return repositories{}, err
		}
		postgres.RegisterMigrations(postgres.MigrateParams{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
			DB:        db,
		})

		return repositories{
			TxManager:  postgres.NewTransactionManager(db),
			UserRepo:   postgres.NewUserRepository(db),
			GiftRepo:   postgres.NewGiftRepository(db),
			OrderRepo:  postgres.NewOrderRepository(db),
			DeviceRepo: postgres.NewDeviceRepository(db),
		}, nil

	default:
		return repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
