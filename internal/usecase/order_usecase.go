package usecase

import (
	"context"
	"time"

	"giftshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// RecipientInput describes who receives the gift.
type RecipientInput struct {
	Name         string        `json:"name" validate:"required,max=100"`
	Age          int           `json:"age" validate:"gte=0,lte=120"`
	Gender       entity.Gender `json:"gender" validate:"required,oneof=boy girl unisex"`
	Relationship string        `json:"relationship,omitempty" validate:"max=50"`
	Phone        string        `json:"phone,omitempty" validate:"max=30"`
}

// OrderItemInput is one requested cart line. Price is the unit price the customer saw.
type OrderItemInput struct {
	GiftID   uuid.UUID       `json:"gift" validate:"required"`
	Quantity int             `json:"quantity" validate:"min=1,max=100"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
}

// DeliveryAddressInput is the delivery destination.
type DeliveryAddressInput struct {
	Street     string `json:"street" validate:"required,max=200"`
	City       string `json:"city" validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,max=100"`
	Notes      string `json:"notes,omitempty" validate:"max=500"`
}

// PaymentInput selects the payment method. Payment status always starts pending.
type PaymentInput struct {
	Method        entity.PaymentMethod `json:"method" validate:"required,oneof=card cash_on_delivery wallet"`
	TransactionID string               `json:"transactionId,omitempty" validate:"max=100"`
}

// PlaceOrderInput is the order request submitted by a customer.
// Any owner supplied by the client is ignored; the caller identity is used instead.
type PlaceOrderInput struct {
	Recipient           RecipientInput       `json:"recipient"`
	Items               []OrderItemInput     `json:"items" validate:"required,min=1,max=50,dive"`
	DeliveryAddress     DeliveryAddressInput `json:"deliveryAddress"`
	Payment             PaymentInput         `json:"payment"`
	DeliveryTime        *time.Time           `json:"deliveryTime,omitempty"`
	SpecialInstructions string               `json:"specialInstructions,omitempty" validate:"max=500"`
	TotalAmount         decimal.Decimal      `json:"totalAmount" validate:"gte=0"`
	DeliveryFee         decimal.Decimal      `json:"deliveryFee" validate:"gte=0"`
	Tax                 decimal.Decimal      `json:"tax" validate:"gte=0"`
	Discount            decimal.Decimal      `json:"discount" validate:"gte=0"`
}

// UpdateOrderInput is a customer patch on an existing order.
// Status may only be set to "canceled".
type UpdateOrderInput struct {
	SpecialInstructions *string             `json:"specialInstructions,omitempty" validate:"omitempty,max=500"`
	Status              *entity.OrderStatus `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed preparing out_for_delivery delivered canceled"`
	CancellationReason  string              `json:"cancellationReason,omitempty" validate:"max=200"`
}

// ListOrdersInput pages through the caller's orders.
type ListOrdersInput struct {
	Limit  int `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `json:"offset" validate:"omitempty,min=0"`
}

// OrderUsecase defines order placement, lifecycle and read operations.
// Every operation acts on behalf of callerID; uuid.Nil means the caller is not authenticated.
type OrderUsecase interface {
	// PlaceOrder validates the request, reserves inventory and creates the order in one transaction.
	PlaceOrder(ctx context.Context, callerID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// UpdateOrder replaces special instructions and/or cancels an order owned by the caller.
	UpdateOrder(ctx context.Context, callerID, orderID uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)

	// GetOrder returns one of the caller's orders.
	GetOrder(ctx context.Context, callerID, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders returns the caller's orders, newest first.
	ListOrders(ctx context.Context, callerID uuid.UUID, input *ListOrdersInput) ([]*entity.Order, error)

	// GetTrackingQR renders a PNG QR code for one of the caller's orders.
	GetTrackingQR(ctx context.Context, callerID, orderID uuid.UUID) ([]byte, error)
}
