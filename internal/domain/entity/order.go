// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tracking descriptions written by the order flows.
const (
	TrackingOrderReceived      = "Order received"
	TrackingCanceledByCustomer = "Canceled by customer"
)

// AmountTolerance is the largest accepted gap between a submitted total and the computed one.
var AmountTolerance = decimal.New(1, -2)

// OrderStatus is the lifecycle status of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCanceled       OrderStatus = "canceled"
)

// allowedTransitions lists every status an order may move to from a given status.
// Terminal statuses have no entry.
var allowedTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending: {
		OrderStatusConfirmed: true,
		OrderStatusCanceled:  true,
	},
	OrderStatusConfirmed: {
		OrderStatusPreparing: true,
		OrderStatusCanceled:  true,
	},
	OrderStatusPreparing: {
		OrderStatusOutForDelivery: true,
	},
	OrderStatusOutForDelivery: {
		OrderStatusDelivered: true,
	},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// IsCustomerMutable reports whether the customer may still edit or cancel an order in s.
func (s OrderStatus) IsCustomerMutable() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

// CanTransitionTo reports whether the state machine allows s -> next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return allowedTransitions[s][next]
}

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodWallet         PaymentMethod = "wallet"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCashOnDelivery, PaymentMethodWallet:
		return true
	default:
		return false
	}
}

// PaymentStatus is the stored payment state. It is never reconciled with a gateway.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// Recipient is the person receiving the gift.
type Recipient struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Gender       Gender `json:"gender"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// DeliveryAddress is where the order is delivered.
type DeliveryAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Notes      string `json:"notes,omitempty"`
}

// PaymentInfo is the stored payment record of an order.
type PaymentInfo struct {
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transactionId,omitempty"`
}

// DeliveryPartner is the courier assigned to an order.
type DeliveryPartner struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// OrderItem is a line of an order. Name and Price are copied from the gift at order time.
type OrderItem struct {
	GiftID   uuid.UUID       `json:"gift"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// LineTotal returns Price * Quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TrackingEvent is an immutable entry of an order's status history.
type TrackingEvent struct {
	Status      OrderStatus `json:"status"`
	Timestamp   time.Time   `json:"timestamp"`
	Description string      `json:"description"`
}

// Order is a placed gift order.
type Order struct {
	ID                  uuid.UUID        `json:"id"`                            // The Global Unique Identifier (GUID) for the order.
	UserID              uuid.UUID        `json:"user"`                          // Owning user, stamped from the caller identity.
	Recipient           Recipient        `json:"recipient"`                     // Who receives the gift.
	Items               []OrderItem      `json:"items"`                         // Ordered lines, in request order.
	DeliveryAddress     DeliveryAddress  `json:"deliveryAddress"`               // Delivery destination.
	Payment             PaymentInfo      `json:"payment"`                       // Stored payment record.
	Status              OrderStatus      `json:"status"`                        // Lifecycle status.
	DeliveryTime        time.Time        `json:"deliveryTime"`                  // Requested delivery time.
	SpecialInstructions string           `json:"specialInstructions,omitempty"` // Free-form customer notes.
	TotalAmount         decimal.Decimal  `json:"totalAmount"`                   // Items + fee + tax - discount.
	DeliveryFee         decimal.Decimal  `json:"deliveryFee"`                   // Courier fee.
	Tax                 decimal.Decimal  `json:"tax"`                           // Tax amount.
	Discount            decimal.Decimal  `json:"discount"`                      // Discount amount.
	DeliveryPartner     *DeliveryPartner `json:"deliveryPartner,omitempty"`     // Assigned courier, if any.
	Tracking            []TrackingEvent  `json:"tracking"`                      // Append-only status history.
	CreatedAt           time.Time        `json:"createdAt"`                     // Timestamp of when the order was placed.
	UpdatedAt           time.Time        `json:"updatedAt"`                     // Timestamp of the last modification.
}

// ExpectedTotal computes sum(price * quantity) + deliveryFee + tax - discount.
func ExpectedTotal(items []OrderItem, deliveryFee, tax, discount decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}

	return total.Add(deliveryFee).Add(tax).Sub(discount)
}

// AmountsReconcile reports whether totalAmount matches the computed total within AmountTolerance.
func AmountsReconcile(items []OrderItem, deliveryFee, tax, discount, totalAmount decimal.Decimal) bool {
	expected := ExpectedTotal(items, deliveryFee, tax, discount)

	return totalAmount.Sub(expected).Abs().LessThanOrEqual(AmountTolerance)
}

// ReconcileAmount checks the order's own monetary breakdown.
func (o *Order) ReconcileAmount() bool {
	return AmountsReconcile(o.Items, o.DeliveryFee, o.Tax, o.Discount, o.TotalAmount)
}

// IsOwnedBy reports whether userID owns the order.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && o.UserID == userID
}

// AppendTracking records a status change and moves the order to status.
func (o *Order) AppendTracking(status OrderStatus, at time.Time, description string) TrackingEvent {
	event := TrackingEvent{Status: status, Timestamp: at, Description: description}
	o.Tracking = append(o.Tracking, event)
	o.Status = status
	o.UpdatedAt = at

	return event
}

// QuantitiesByGift sums quantities per gift across all lines.
func (o *Order) QuantitiesByGift() map[uuid.UUID]int {
	return SumQuantities(o.Items)
}

// SumQuantities sums quantities per gift, so repeated lines of one gift reserve together.
func SumQuantities(items []OrderItem) map[uuid.UUID]int {
	quantities := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		quantities[item.GiftID] += item.Quantity
	}

	return quantities
}
