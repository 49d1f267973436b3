package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"giftshop/internal/domain/entity"
	domainerrors "giftshop/internal/domain/errors"
	"giftshop/internal/domain/repository"
	"giftshop/internal/domain/service"
	"giftshop/internal/infra/persistence/memory"
	"giftshop/internal/infra/validation"
	mockRepo "giftshop/internal/mocks/repository"
	mockSvc "giftshop/internal/mocks/service"
	"giftshop/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures wires the order service to an in-memory store so stock effects are observable.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	store     *memory.Store
	gifts     repository.GiftRepository
	orders    repository.OrderRepository
	publisher *mockSvc.MockEventPublisher
	qrService *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T, restockOnCancel bool) orderServiceFixtures {
	store := memory.NewStore()
	publisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager: memory.NewTransactionManager(store),
		OrderRepo: memory.NewOrderRepository(store),
		Validator: validation.NewSchemaValidator(),
		QRService: qrService,
		Publisher: publisher,
		Config:    newTestConfig(restockOnCancel),
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   svc,
		store:     store,
		gifts:     memory.NewGiftRepository(store),
		orders:    memory.NewOrderRepository(store),
		publisher: publisher,
		qrService: qrService,
	}
}

func (f orderServiceFixtures) expectPublish(eventType string) {
	f.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == eventType
		})).
		Return(nil)
}

func (f orderServiceFixtures) seedGift(t *testing.T, name string, price int64, stock int) *entity.Gift {
	t.Helper()

	gift := &entity.Gift{
		Name:                     name,
		Category:                 "toys",
		Price:                    decimal.NewFromInt(price),
		StockCount:               stock,
		AgeRange:                 entity.AgeRange{Min: 4, Max: 12},
		Gender:                   entity.GenderUnisex,
		EstimatedDeliveryMinutes: 45,
	}
	require.NoError(t, f.gifts.Create(context.Background(), gift))

	return gift
}

func (f orderServiceFixtures) stockOf(t *testing.T, id uuid.UUID) int {
	t.Helper()

	gift, err := f.gifts.FindByID(context.Background(), id)
	require.NoError(t, err)

	return gift.StockCount
}

// newPlaceOrderInput builds a reconciled order for the given lines with a 5.00 fee and 1.50 tax.
func newPlaceOrderInput(lines ...usecase.OrderItemInput) *usecase.PlaceOrderInput {
	fee := decimal.NewFromInt(5)
	tax := decimal.RequireFromString("1.50")

	total := fee.Add(tax)
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return &usecase.PlaceOrderInput{
		Recipient: usecase.RecipientInput{Name: "Mia", Age: 7, Gender: entity.GenderGirl, Relationship: "niece"},
		Items:     lines,
		DeliveryAddress: usecase.DeliveryAddressInput{
			Street:     "12 Market Street",
			City:       "Lisbon",
			PostalCode: "1100-148",
			Country:    "PT",
		},
		Payment:     usecase.PaymentInput{Method: entity.PaymentMethodCard},
		TotalAmount: total,
		DeliveryFee: fee,
		Tax:         tax,
	}
}

func lineFor(gift *entity.Gift, quantity int) usecase.OrderItemInput {
	return usecase.OrderItemInput{GiftID: gift.ID, Quantity: quantity, Price: gift.Price}
}

func requireAppError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	require.Error(t, err)
	assert.True(t, errors.Is(err, want), "expected %s, got %v", want.ErrorCode(), err)
}

func TestOrderService_PlaceOrder_ReservesStock(t *testing.T) {
	fx := createTestOrderService(t, true)
	ctx := context.Background()
	userID := uuid.New()
	gift := fx.seedGift(t, "Wooden Train", 25, 30)

	fx.expectPublish(service.OrderEventPlaced)

	order, err := fx.service.PlaceOrder(ctx, userID, newPlaceOrderInput(lineFor(gift, 4)))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.Payment.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Wooden Train", order.Items[0].Name)
	require.Len(t, order.Tracking, 1)
	assert.Equal(t, entity.TrackingOrderReceived, order.Tracking[0].Description)
	assert.Equal(t, order.CreatedAt.Add(time.Hour), order.DeliveryTime)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("106.50")))

	assert.Equal(t, 26, fx.stockOf(t, gift.ID))
}

func TestOrderService_PlaceOrder_RepeatedLinesReserveTogether(t *testing.T) {
	fx := createTestOrderService(t, true)
	gift := fx.seedGift(t, "Puzzle", 12, 5)

	_, err := fx.service.PlaceOrder(context.Background(), uuid.New(),
		newPlaceOrderInput(lineFor(gift, 3), lineFor(gift, 3)))
	requireAppError(t, err, domainerrors.ErrInventoryUnavailable)

	assert.Equal(t, 5, fx.stockOf(t, gift.ID))
}

func TestOrderService_PlaceOrder_InsufficientStockLeavesInventoryUntouched(t *testing.T) {
	fx := createTestOrderService(t, true)
	userID := uuid.New()
	gift := fx.seedGift(t, "Telescope", 80, 20)

	_, err := fx.service.PlaceOrder(context.Background(), userID, newPlaceOrderInput(lineFor(gift, 21)))
	requireAppError(t, err, domainerrors.ErrInventoryUnavailable)
	assert.Contains(t, err.Error(), "Telescope")

	assert.Equal(t, 20, fx.stockOf(t, gift.ID))

	orders, err := fx.orders.FindByUser(context.Background(), userID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_PlaceOrder_SecondLineFailureRollsBackFirst(t *testing.T) {
	fx := createTestOrderService(t, true)
	userID := uuid.New()
	available := fx.seedGift(t, "Crayons", 4, 10)
	soldOut := fx.seedGift(t, "Drone", 90, 0)

	_, err := fx.service.PlaceOrder(context.Background(), userID,
		newPlaceOrderInput(lineFor(available, 2), lineFor(soldOut, 1)))
	requireAppError(t, err, domainerrors.ErrInventoryUnavailable)
	assert.Contains(t, err.Error(), "Drone")

	assert.Equal(t, 10, fx.stockOf(t, available.ID))
	assert.Equal(t, 0, fx.stockOf(t, soldOut.ID))

	orders, err := fx.orders.FindByUser(context.Background(), userID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_PlaceOrder_UnknownGift(t *testing.T) {
	fx := createTestOrderService(t, true)

	line := usecase.OrderItemInput{GiftID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(3)}
	_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), newPlaceOrderInput(line))
	requireAppError(t, err, domainerrors.ErrInventoryUnavailable)
}

func TestOrderService_PlaceOrder_ConcurrentLastUnit(t *testing.T) {
	fx := createTestOrderService(t, true)
	gift := fx.seedGift(t, "Limited Plush", 15, 1)

	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

	const buyers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), newPlaceOrderInput(lineFor(gift, 1)))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domainerrors.ErrInventoryUnavailable):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, buyers-1, rejected)
	assert.Equal(t, 0, fx.stockOf(t, gift.ID))
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	fx := createTestOrderService(t, true)
	gift := fx.seedGift(t, "Kite", 20, 5)

	tests := []struct {
		name   string
		mutate func(input *usecase.PlaceOrderInput)
		field  string
	}{
		{
			name:   "total does not reconcile",
			mutate: func(input *usecase.PlaceOrderInput) { input.TotalAmount = input.TotalAmount.Add(decimal.NewFromInt(1)) },
			field:  "totalAmount",
		},
		{
			name:   "zero quantity",
			mutate: func(input *usecase.PlaceOrderInput) { input.Items[0].Quantity = 0 },
			field:  "items[0].quantity",
		},
		{
			name:   "stale price",
			mutate: func(input *usecase.PlaceOrderInput) { bumpPrice(input, decimal.NewFromInt(2)) },
			field:  "items[0].price",
		},
		{
			name:   "missing recipient name",
			mutate: func(input *usecase.PlaceOrderInput) { input.Recipient.Name = "" },
			field:  "recipient.name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := newPlaceOrderInput(lineFor(gift, 1))
			tt.mutate(input)

			_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), input)
			requireAppError(t, err, domainerrors.ErrValidationFailed)

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Contains(t, validationErr.Fields(), tt.field)

			assert.Equal(t, 5, fx.stockOf(t, gift.ID))
		})
	}
}

// bumpPrice raises the first line's unit price and keeps the total reconciled.
func bumpPrice(input *usecase.PlaceOrderInput, delta decimal.Decimal) {
	line := &input.Items[0]
	line.Price = line.Price.Add(delta)
	input.TotalAmount = input.TotalAmount.Add(delta.Mul(decimal.NewFromInt(int64(line.Quantity))))
}

func TestOrderService_PlaceOrder_Unauthenticated(t *testing.T) {
	fx := createTestOrderService(t, true)
	gift := fx.seedGift(t, "Kite", 20, 5)

	_, err := fx.service.PlaceOrder(context.Background(), uuid.Nil, newPlaceOrderInput(lineFor(gift, 1)))
	requireAppError(t, err, domainerrors.ErrUnauthenticated)
	assert.Equal(t, 5, fx.stockOf(t, gift.ID))
}

func TestOrderService_PlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	fx := createTestOrderService(t, true)
	gift := fx.seedGift(t, "Kite", 20, 5)

	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.PlaceOrder(context.Background(), uuid.New(), newPlaceOrderInput(lineFor(gift, 1)))
	require.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, 4, fx.stockOf(t, gift.ID))
}

func TestOrderService_UpdateOrder_CancelRestocks(t *testing.T) {
	fx := createTestOrderService(t, true)
	ctx := context.Background()
	userID := uuid.New()
	gift := fx.seedGift(t, "Board Game", 35, 5)

	fx.expectPublish(service.OrderEventPlaced)
	placed, err := fx.service.PlaceOrder(ctx, userID, newPlaceOrderInput(lineFor(gift, 2)))
	require.NoError(t, err)
	require.Equal(t, 3, fx.stockOf(t, gift.ID))

	fx.expectPublish(service.OrderEventCanceled)
	canceled := entity.OrderStatusCanceled
	updated, err := fx.service.UpdateOrder(ctx, userID, placed.ID, &usecase.UpdateOrderInput{
		Status:             &canceled,
		CancellationReason: "changed mind",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCanceled, updated.Status)
	require.Len(t, updated.Tracking, 2)
	assert.Equal(t, entity.OrderStatusCanceled, updated.Tracking[1].Status)
	assert.Equal(t, "changed mind", updated.Tracking[1].Description)
	assert.Equal(t, 5, fx.stockOf(t, gift.ID))

	stored, err := fx.orders.FindByID(ctx, placed.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(updated.Tracking, stored.Tracking); diff != "" {
		t.Errorf("stored tracking mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderService_UpdateOrder_CancelWithoutRestock(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()
	userID := uuid.New()
	gift := fx.seedGift(t, "Board Game", 35, 5)

	fx.expectPublish(service.OrderEventPlaced)
	placed, err := fx.service.PlaceOrder(ctx, userID, newPlaceOrderInput(lineFor(gift, 2)))
	require.NoError(t, err)

	fx.expectPublish(service.OrderEventCanceled)
	canceled := entity.OrderStatusCanceled
	updated, err := fx.service.UpdateOrder(ctx, userID, placed.ID, &usecase.UpdateOrderInput{Status: &canceled})
	require.NoError(t, err)

	assert.Equal(t, entity.TrackingCanceledByCustomer, updated.Tracking[1].Description)
	assert.Equal(t, 3, fx.stockOf(t, gift.ID))
}

func TestOrderService_UpdateOrder_Rejections(t *testing.T) {
	fx := createTestOrderService(t, true)
	ctx := context.Background()
	ownerID := uuid.New()
	gift := fx.seedGift(t, "Board Game", 35, 10)

	fx.expectPublish(service.OrderEventPlaced)
	placed, err := fx.service.PlaceOrder(ctx, ownerID, newPlaceOrderInput(lineFor(gift, 1)))
	require.NoError(t, err)

	canceled := entity.OrderStatusCanceled
	preparing := entity.OrderStatusPreparing
	notes := "leave at the door"

	t.Run("someone else's order", func(t *testing.T) {
		_, err := fx.service.UpdateOrder(ctx, uuid.New(), placed.ID, &usecase.UpdateOrderInput{SpecialInstructions: &notes})
		requireAppError(t, err, domainerrors.ErrAccessDenied)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := fx.service.UpdateOrder(ctx, ownerID, uuid.New(), &usecase.UpdateOrderInput{Status: &canceled})
		requireAppError(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("customer advancing status", func(t *testing.T) {
		_, err := fx.service.UpdateOrder(ctx, ownerID, placed.ID, &usecase.UpdateOrderInput{Status: &preparing})
		requireAppError(t, err, domainerrors.ErrInvalidStateTransition)
	})

	t.Run("delivered order", func(t *testing.T) {
		stored, err := fx.orders.FindByID(ctx, placed.ID)
		require.NoError(t, err)
		stored.Status = entity.OrderStatusDelivered
		require.NoError(t, fx.orders.Update(ctx, stored))

		_, err = fx.service.UpdateOrder(ctx, ownerID, placed.ID, &usecase.UpdateOrderInput{Status: &canceled})
		requireAppError(t, err, domainerrors.ErrInvalidStateTransition)

		assert.Equal(t, 9, fx.stockOf(t, gift.ID))
	})
}

func TestOrderService_UpdateOrder_SpecialInstructions(t *testing.T) {
	fx := createTestOrderService(t, true)
	ctx := context.Background()
	userID := uuid.New()
	gift := fx.seedGift(t, "Board Game", 35, 10)

	fx.expectPublish(service.OrderEventPlaced)
	placed, err := fx.service.PlaceOrder(ctx, userID, newPlaceOrderInput(lineFor(gift, 1)))
	require.NoError(t, err)

	fx.expectPublish(service.OrderEventUpdated)
	notes := "ring twice"
	updated, err := fx.service.UpdateOrder(ctx, userID, placed.ID, &usecase.UpdateOrderInput{SpecialInstructions: &notes})
	require.NoError(t, err)

	assert.Equal(t, "ring twice", updated.SpecialInstructions)
	assert.Equal(t, entity.OrderStatusPending, updated.Status)
	assert.Len(t, updated.Tracking, 1)
	assert.Equal(t, 9, fx.stockOf(t, gift.ID))
}

func TestOrderService_GetOrder(t *testing.T) {
	fx := createTestOrderService(t, true)
	ctx := context.Background()
	ownerID := uuid.New()
	gift := fx.seedGift(t, "Board Game", 35, 10)

	fx.expectPublish(service.OrderEventPlaced)
	placed, err := fx.service.PlaceOrder(ctx, ownerID, newPlaceOrderInput(lineFor(gift, 1)))
	require.NoError(t, err)

	first, err := fx.service.GetOrder(ctx, ownerID, placed.ID)
	require.NoError(t, err)
	second, err := fx.service.GetOrder(ctx, ownerID, placed.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated read differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, 9, fx.stockOf(t, gift.ID))

	_, err = fx.service.GetOrder(ctx, uuid.New(), placed.ID)
	requireAppError(t, err, domainerrors.ErrAccessDenied)

	_, err = fx.service.GetOrder(ctx, ownerID, uuid.New())
	requireAppError(t, err, domainerrors.ErrOrderNotFound)

	_, err = fx.service.GetOrder(ctx, uuid.Nil, placed.ID)
	requireAppError(t, err, domainerrors.ErrUnauthenticated)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t, true)
	ctx := context.Background()
	userID := uuid.New()
	gift := fx.seedGift(t, "Board Game", 35, 10)

	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Times(3)

	var placed []*entity.Order
	for range 2 {
		order, err := fx.service.PlaceOrder(ctx, userID, newPlaceOrderInput(lineFor(gift, 1)))
		require.NoError(t, err)
		placed = append(placed, order)
	}
	_, err := fx.service.PlaceOrder(ctx, uuid.New(), newPlaceOrderInput(lineFor(gift, 1)))
	require.NoError(t, err)

	orders, err := fx.service.ListOrders(ctx, userID, nil)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, userID, order.UserID)
	}

	_, err = fx.service.ListOrders(ctx, userID, &usecase.ListOrdersInput{Limit: 1000})
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_GetTrackingQR(t *testing.T) {
	fx := createTestOrderService(t, true)
	ctx := context.Background()
	userID := uuid.New()
	gift := fx.seedGift(t, "Board Game", 35, 10)

	fx.expectPublish(service.OrderEventPlaced)
	placed, err := fx.service.PlaceOrder(ctx, userID, newPlaceOrderInput(lineFor(gift, 1)))
	require.NoError(t, err)

	fx.qrService.EXPECT().GenerateTrackingQR(placed.ID).Return([]byte("png"), nil)

	png, err := fx.service.GetTrackingQR(ctx, userID, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = fx.service.GetTrackingQR(ctx, uuid.New(), placed.ID)
	requireAppError(t, err, domainerrors.ErrAccessDenied)
}

func TestOrderService_PlaceOrder_TransactionFailureIsAborted(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	giftRepo := mockRepo.NewMockGiftRepository(t)
	svc := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: mockRepo.NewMockOrderRepository(t),
		Validator: validation.NewSchemaValidator(),
		QRService: mockSvc.NewMockQRCodeService(t),
		Publisher: mockSvc.NewMockEventPublisher(t),
		Config:    newTestConfig(true),
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	gift := &entity.Gift{ID: uuid.New(), Name: "Kite", Price: decimal.NewFromInt(20), StockCount: 5, InStock: true}
	lockErr := errors.New("canceling statement due to lock timeout")

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewGiftRepository().Return(giftRepo)

			return fn(factory)
		})
	giftRepo.EXPECT().FindByIDsForUpdate(ctx, []uuid.UUID{gift.ID}).Return([]*entity.Gift{gift}, nil)
	giftRepo.EXPECT().ReserveStock(ctx, gift.ID, 1).Return(lockErr)

	_, err := svc.PlaceOrder(ctx, uuid.New(), newPlaceOrderInput(lineFor(gift, 1)))
	requireAppError(t, err, domainerrors.ErrTransactionAborted)
}
