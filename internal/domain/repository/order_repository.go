package repository

import (
	"context"

	"giftshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for the order ledger.
type OrderRepository interface {
	// Create persists a new order together with its line items and tracking history.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items and tracking history.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate is FindByID that, inside a transaction, locks the order row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves a user's orders, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// Update persists the mutable order fields (status, special instructions, payment, delivery partner).
	// Items and tracking are never rewritten.
	Update(ctx context.Context, order *entity.Order) error

	// AppendTracking adds one event to the order's tracking history.
	AppendTracking(ctx context.Context, orderID uuid.UUID, event entity.TrackingEvent) error
}
