package service

import (
	"context"
	"time"
)

// Order event types.
const (
	OrderEventPlaced   = "order.placed"
	OrderEventUpdated  = "order.updated"
	OrderEventCanceled = "order.canceled"
)

// OrderEvent is published after an order transaction commits and consumed by the notification worker.
type OrderEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	TotalAmount string    `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
