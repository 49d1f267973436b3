package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"giftshop/internal/domain/entity"
	"giftshop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGift(t *testing.T, store *Store, name string, stock int) *entity.Gift {
	t.Helper()

	gift := &entity.Gift{
		Name:                     name,
		Category:                 "toys",
		Price:                    decimal.NewFromInt(10),
		StockCount:               stock,
		AgeRange:                 entity.AgeRange{Min: 3, Max: 10},
		Gender:                   entity.GenderUnisex,
		EstimatedDeliveryMinutes: 30,
	}
	require.NoError(t, NewGiftRepository(store).Create(context.Background(), gift))

	return gift
}

func TestStore_RollbackRestoresStock(t *testing.T) {
	store := NewStore()
	gift := seedGift(t, store, "Kite", 3)
	txManager := NewTransactionManager(store)
	boom := errors.New("boom")

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		gifts := factory.NewGiftRepository()
		if err := gifts.ReserveStock(context.Background(), gift.ID, 2); err != nil {
			return err
		}

		order := &entity.Order{UserID: uuid.New(), Status: entity.OrderStatusPending}
		if err := factory.NewOrderRepository().Create(context.Background(), order); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	found, err := NewGiftRepository(store).FindByID(context.Background(), gift.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.StockCount)
	assert.True(t, found.InStock)
	assert.Empty(t, store.orders)
}

func TestStore_OrderVisibleOnlyAfterCommit(t *testing.T) {
	store := NewStore()
	txManager := NewTransactionManager(store)
	orders := NewOrderRepository(store)
	userID := uuid.New()

	var orderID uuid.UUID
	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		order := &entity.Order{UserID: userID, Status: entity.OrderStatusPending}
		if err := factory.NewOrderRepository().Create(context.Background(), order); err != nil {
			return err
		}
		orderID = order.ID

		_, err := orders.FindByID(context.Background(), order.ID)
		assert.ErrorIs(t, err, repository.ErrOrderNotFound)

		own, err := factory.NewOrderRepository().FindByUser(context.Background(), userID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, own, 1)

		return nil
	})
	require.NoError(t, err)

	found, err := orders.FindByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, userID, found.UserID)
}

func TestStore_ConcurrentReservationOfLastUnit(t *testing.T) {
	store := NewStore()
	gift := seedGift(t, store, "Last Teddy", 1)
	txManager := NewTransactionManager(store)

	const workers = 8
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
				gifts := factory.NewGiftRepository()
				locked, err := gifts.FindByIDsForUpdate(context.Background(), []uuid.UUID{gift.ID})
				if err != nil {
					return err
				}
				if len(locked) != 1 || !locked[0].CanFulfil(1) {
					return repository.ErrInsufficientStock
				}

				return gifts.ReserveStock(context.Background(), gift.ID, 1)
			})
			if err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())

	found, err := NewGiftRepository(store).FindByID(context.Background(), gift.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.StockCount)
	assert.False(t, found.InStock)
}

func TestStore_LockWaitHonoursContext(t *testing.T) {
	store := NewStore()
	gift := seedGift(t, store, "Puzzle", 5)
	txManager := NewTransactionManager(store)

	locked := make(chan struct{})
	done := make(chan struct{})
	go func() {
		_ = txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
			if _, err := factory.NewGiftRepository().FindByIDsForUpdate(context.Background(), []uuid.UUID{gift.ID}); err != nil {
				return err
			}
			close(locked)
			<-done

			return nil
		})
	}()
	<-locked
	defer close(done)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := NewGiftRepository(store).ReserveStock(ctx, gift.ID, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.ErrorIs(t, err, repository.ErrLockContention)
}

func TestGiftRepository_ReserveStock(t *testing.T) {
	store := NewStore()
	gift := seedGift(t, store, "Blocks", 2)
	gifts := NewGiftRepository(store)
	ctx := context.Background()

	require.ErrorIs(t, gifts.ReserveStock(ctx, gift.ID, 3), repository.ErrInsufficientStock)
	require.ErrorIs(t, gifts.ReserveStock(ctx, uuid.New(), 1), repository.ErrGiftNotFound)
	require.NoError(t, gifts.ReserveStock(ctx, gift.ID, 2))

	found, err := gifts.FindByID(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.StockCount)
	assert.False(t, found.InStock)

	require.NoError(t, gifts.ReleaseStock(ctx, gift.ID, 4))
	found, err = gifts.FindByID(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, found.StockCount)
	assert.True(t, found.InStock)
}

func TestGiftRepository_List(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	gifts := NewGiftRepository(store)

	cheap := seedGift(t, store, "Cheap", 1)
	pricey := &entity.Gift{
		Name: "Pricey", Category: "toys", Price: decimal.NewFromInt(50), StockCount: 1,
		AgeRange: entity.AgeRange{Min: 3, Max: 10}, Gender: entity.GenderGirl, EstimatedDeliveryMinutes: 10,
	}
	require.NoError(t, gifts.Create(ctx, pricey))
	seedGift(t, store, "Empty", 0)

	maxPrice := decimal.NewFromInt(20)
	age := 5
	listed, err := gifts.List(ctx, repository.GiftFilter{
		Age:         &age,
		Gender:      entity.GenderBoy,
		MaxPrice:    &maxPrice,
		InStockOnly: true,
		Sort:        repository.GiftSortPriceAsc,
	})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, cheap.ID, listed[0].ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &entity.User{Email: "Ann@Example.com ", Name: "Ann"}))
	err := users.Create(ctx, &entity.User{Email: "ann@example.com", Name: "Other"})
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)

	found, err := users.FindByEmail(ctx, "ANN@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", found.Name)
}

func TestDeviceRepository_Lifecycle(t *testing.T) {
	store := NewStore()
	devices := NewDeviceRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	device := &entity.UserDevice{UserID: userID, DeviceID: "phone-1", FCMToken: "token-1", Platform: "ios", IsActive: true}
	require.NoError(t, devices.CreateDevice(ctx, device))
	require.ErrorIs(t, devices.CreateDevice(ctx, &entity.UserDevice{UserID: userID, DeviceID: "phone-1"}), repository.ErrDuplicateDevice)

	require.NoError(t, devices.UpdateFCMToken(ctx, device.ID, "token-2"))
	active, err := devices.FindActiveDevicesByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "token-2", active[0].FCMToken)

	require.NoError(t, devices.DeleteDevice(ctx, device.ID))
	require.ErrorIs(t, devices.DeleteDevice(ctx, device.ID), repository.ErrDeviceNotFound)

	tablet := &entity.UserDevice{UserID: userID, DeviceID: "tablet-1", FCMToken: "token-3", Platform: "android", IsActive: true}
	require.NoError(t, devices.CreateDevice(ctx, tablet))
	removed, err := devices.DeleteDevices(ctx, []uuid.UUID{tablet.ID, device.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}
