package impl

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"giftshop/config"
	deliverycontext "giftshop/internal/delivery/context"
	"giftshop/internal/domain/entity"
	domainerrors "giftshop/internal/domain/errors"
	"giftshop/internal/domain/repository"
	"giftshop/internal/domain/service"
	"giftshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager       repository.TransactionManager
	orderRepo       repository.OrderRepository
	validator       service.SchemaValidator
	qrService       service.QRCodeService
	publisher       service.EventPublisher
	deliveryWindow  time.Duration
	restockOnCancel bool
	now             func() time.Time
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Validator service.SchemaValidator
	QRService service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:       params.TxManager,
		orderRepo:       params.OrderRepo,
		validator:       params.Validator,
		qrService:       params.QRService,
		publisher:       params.Publisher,
		deliveryWindow:  params.Config.OrderDeliveryWindow(),
		restockOnCancel: params.Config.RestockOnCancel(),
		now:             func() time.Time { return time.Now().UTC() },
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the request, then reserves every line and creates the order in one transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, callerID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if callerID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	if err := srv.validate(input); err != nil {
		return nil, err
	}

	items := toOrderItems(input.Items)
	if !entity.AmountsReconcile(items, input.DeliveryFee, input.Tax, input.Discount, input.TotalAmount) {
		expected := entity.ExpectedTotal(items, input.DeliveryFee, input.Tax, input.Discount)

		return nil, domainerrors.NewFieldError("totalAmount",
			fmt.Sprintf("does not match items + deliveryFee + tax - discount (expected %s)", expected.StringFixed(2)))
	}

	order := srv.buildOrder(callerID, input, items)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.reserveItems(ctx, repoFactory.NewGiftRepository(), order.Items); err != nil {
			return err
		}

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, srv.transactionError(ctx, "place order", err)
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("user_id", callerID.String()),
		slog.Int("items", len(order.Items)),
		slog.String("total_amount", order.TotalAmount.StringFixed(2)),
	)

	srv.publish(ctx, service.OrderEventPlaced, order, entity.TrackingOrderReceived)

	return order, nil
}

func (srv *orderService) buildOrder(callerID uuid.UUID, input *usecase.PlaceOrderInput, items []entity.OrderItem) *entity.Order {
	now := srv.now()

	deliveryTime := now.Add(srv.deliveryWindow)
	if input.DeliveryTime != nil && !input.DeliveryTime.IsZero() {
		deliveryTime = input.DeliveryTime.UTC()
	}

	return &entity.Order{
		UserID: callerID,
		Recipient: entity.Recipient{
			Name:         input.Recipient.Name,
			Age:          input.Recipient.Age,
			Gender:       input.Recipient.Gender,
			Relationship: input.Recipient.Relationship,
			Phone:        input.Recipient.Phone,
		},
		Items: items,
		DeliveryAddress: entity.DeliveryAddress{
			Street:     input.DeliveryAddress.Street,
			City:       input.DeliveryAddress.City,
			PostalCode: input.DeliveryAddress.PostalCode,
			Country:    input.DeliveryAddress.Country,
			Notes:      input.DeliveryAddress.Notes,
		},
		Payment: entity.PaymentInfo{
			Method:        input.Payment.Method,
			Status:        entity.PaymentStatusPending,
			TransactionID: input.Payment.TransactionID,
		},
		Status:              entity.OrderStatusPending,
		DeliveryTime:        deliveryTime,
		SpecialInstructions: input.SpecialInstructions,
		TotalAmount:         input.TotalAmount,
		DeliveryFee:         input.DeliveryFee,
		Tax:                 input.Tax,
		Discount:            input.Discount,
		Tracking: []entity.TrackingEvent{
			{Status: entity.OrderStatusPending, Timestamp: now, Description: entity.TrackingOrderReceived},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// reserveItems locks the referenced gifts, checks every line against them and then takes the stock.
// Line names are filled in from the catalog.
func (srv *orderService) reserveItems(ctx context.Context, giftRepo repository.GiftRepository, items []entity.OrderItem) error {
	quantities := entity.SumQuantities(items)
	ids := sortedIDs(slices.Collect(maps.Keys(quantities)))

	gifts, err := giftRepo.FindByIDsForUpdate(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to lock gifts")
	}

	byID := make(map[uuid.UUID]*entity.Gift, len(gifts))
	for _, gift := range gifts {
		byID[gift.ID] = gift
	}

	for i := range items {
		gift, ok := byID[items[i].GiftID]
		if !ok {
			srv.log(ctx).Warn("Order references unknown gift", slog.String("gift_id", items[i].GiftID.String()))

			return domainerrors.NewInventoryUnavailableError("")
		}

		if !gift.CanFulfil(quantities[gift.ID]) {
			return domainerrors.NewInventoryUnavailableError(gift.Name)
		}

		if !items[i].Price.Equal(gift.Price) {
			return domainerrors.NewFieldError(fmt.Sprintf("items[%d].price", i),
				fmt.Sprintf("does not match the current price %s", gift.Price.StringFixed(2)))
		}

		items[i].Name = gift.Name
	}

	for _, id := range ids {
		if err := giftRepo.ReserveStock(ctx, id, quantities[id]); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) || errors.Is(err, repository.ErrGiftNotFound) {
				return domainerrors.NewInventoryUnavailableError(byID[id].Name)
			}

			return errors.Wrapf(err, "failed to reserve gift %s", id)
		}
	}

	return nil
}

// UpdateOrder applies a customer patch to a pending or confirmed order.
func (srv *orderService) UpdateOrder(ctx context.Context, callerID, orderID uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	if callerID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	if err := srv.validate(input); err != nil {
		return nil, err
	}

	cancel := input.Status != nil && *input.Status == entity.OrderStatusCanceled

	var (
		updated     *entity.Order
		description string
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to load order")
		}

		if !order.IsOwnedBy(callerID) {
			return domainerrors.ErrAccessDenied
		}

		if !order.Status.IsCustomerMutable() {
			return domainerrors.ErrInvalidStateTransition.WithDetails(fmt.Sprintf("order is %s", order.Status))
		}

		if input.Status != nil && !cancel {
			return domainerrors.ErrInvalidStateTransition.WithMessage("Customers may only cancel an order")
		}

		now := srv.now()
		if input.SpecialInstructions != nil {
			order.SpecialInstructions = *input.SpecialInstructions
		}
		order.UpdatedAt = now

		if cancel {
			description = cmp.Or(strings.TrimSpace(input.CancellationReason), entity.TrackingCanceledByCustomer)
			event := order.AppendTracking(entity.OrderStatusCanceled, now, description)

			if srv.restockOnCancel {
				if err := srv.releaseItems(ctx, repoFactory.NewGiftRepository(), order); err != nil {
					return err
				}
			}

			if err := orderRepo.AppendTracking(ctx, order.ID, event); err != nil {
				return errors.Wrap(err, "failed to append tracking event")
			}
		}

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}

		updated = order

		return nil
	})
	if err != nil {
		return nil, srv.transactionError(ctx, "update order", err)
	}

	eventType := service.OrderEventUpdated
	if cancel {
		eventType = service.OrderEventCanceled
		srv.log(ctx).Info("Order canceled",
			slog.String("order_id", updated.ID.String()),
			slog.Bool("restocked", srv.restockOnCancel),
		)
	}
	srv.publish(ctx, eventType, updated, description)

	return updated, nil
}

// releaseItems returns the order's reserved units to the catalog. Gifts removed from the catalog are skipped.
func (srv *orderService) releaseItems(ctx context.Context, giftRepo repository.GiftRepository, order *entity.Order) error {
	quantities := order.QuantitiesByGift()

	for _, id := range sortedIDs(slices.Collect(maps.Keys(quantities))) {
		err := giftRepo.ReleaseStock(ctx, id, quantities[id])
		if errors.Is(err, repository.ErrGiftNotFound) {
			srv.log(ctx).Warn("Skipping restock of removed gift",
				slog.String("order_id", order.ID.String()),
				slog.String("gift_id", id.String()),
			)

			continue
		}
		if err != nil {
			return errors.Wrapf(err, "failed to restock gift %s", id)
		}
	}

	return nil
}

// GetOrder returns an order owned by the caller.
func (srv *orderService) GetOrder(ctx context.Context, callerID, orderID uuid.UUID) (*entity.Order, error) {
	if callerID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !order.IsOwnedBy(callerID) {
		return nil, domainerrors.ErrAccessDenied
	}

	return order, nil
}

// ListOrders returns the caller's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, callerID uuid.UUID, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	if callerID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	if input == nil {
		input = &usecase.ListOrdersInput{}
	}
	if err := srv.validate(input); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindByUser(ctx, callerID, input.Limit, input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetTrackingQR renders the tracking QR code of an order owned by the caller.
func (srv *orderService) GetTrackingQR(ctx context.Context, callerID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, callerID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateTrackingQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return png, nil
}

func (srv *orderService) validate(input any) error {
	if fields := srv.validator.Validate(input); len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}

// transactionError passes application errors through and turns anything else raised in the
// atomic phase (driver failures, lock timeouts, deadlines) into TransactionAborted.
func (srv *orderService) transactionError(ctx context.Context, operation string, err error) error {
	var validationErr *domainerrors.ValidationError
	var baseErr *domainerrors.BaseError
	if errors.As(err, &validationErr) || errors.As(err, &baseErr) {
		return err
	}

	srv.log(ctx).Error("Order transaction aborted",
		slog.String("operation", operation),
		slog.Any("error", err),
	)

	return domainerrors.ErrTransactionAborted
}

// publish emits an order event after commit. Failures are logged only.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order, description string) {
	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		Type:        eventType,
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		Status:      order.Status.String(),
		Description: description,
		TotalAmount: order.TotalAmount.StringFixed(2),
		OccurredAt:  srv.now(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("event_type", eventType),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

func toOrderItems(inputs []usecase.OrderItemInput) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, entity.OrderItem{
			GiftID:   in.GiftID,
			Quantity: in.Quantity,
			Price:    in.Price,
		})
	}

	return items
}

// sortedIDs orders ids the way Postgres orders uuid columns, so row locks are always taken in the same sequence.
func sortedIDs(ids []uuid.UUID) []uuid.UUID {
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})

	return ids
}
