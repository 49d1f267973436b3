package usecase

import (
	"context"

	"giftshop/internal/domain/service"
)

// NotificationResult summarizes one fan-out of an order event to the owner's devices.
type NotificationResult struct {
	Devices        int `json:"devices"`
	Sent           int `json:"sent"`
	Failed         int `json:"failed"`
	RemovedDevices int `json:"removedDevices"`
}

// NotificationUsecase turns order events into push notifications for the order owner.
type NotificationUsecase interface {
	// NotifyOrderEvent pushes the event to every active device of the order owner and
	// removes devices whose tokens are reported invalid.
	NotifyOrderEvent(ctx context.Context, event *service.OrderEvent) (*NotificationResult, error)
}
