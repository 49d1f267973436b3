package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "giftshop/internal/delivery/context"
	domainerrors "giftshop/internal/domain/errors"
	"giftshop/internal/domain/repository"
	"giftshop/internal/domain/service"
	"giftshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NotifyOrderEvent pushes the event to the owner's active devices in batches of at most
// service.MaxBatchTokens and deletes devices whose tokens were reported invalid.
func (s *notificationService) NotifyOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.NotificationResult, error) {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order event has an invalid user ID")
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	result := &usecase.NotificationResult{Devices: len(devices)}
	if len(devices) == 0 {
		s.log(ctx).Debug("No active devices for order owner", slog.String("user_id", event.UserID))

		return result, nil
	}

	deviceByToken := make(map[string]uuid.UUID, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if _, seen := deviceByToken[device.FCMToken]; seen {
			continue
		}
		deviceByToken[device.FCMToken] = device.ID
		tokens = append(tokens, device.FCMToken)
	}

	msg := orderEventMessage(event)

	var invalidTokens []string
	for batch := range slices.Chunk(tokens, service.MaxBatchTokens) {
		sent, err := s.notificationSvc.SendBatch(ctx, batch, msg)
		if err != nil {
			s.log(ctx).Error("Failed to send notification batch",
				slog.String("order_id", event.OrderID),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			result.Failed += len(batch)

			continue
		}
		result.Sent += sent.Sent
		result.Failed += sent.Failed
		invalidTokens = append(invalidTokens, sent.InvalidTokens...)
	}

	stale := make([]uuid.UUID, 0, len(invalidTokens))
	for _, token := range invalidTokens {
		if deviceID, ok := deviceByToken[token]; ok {
			stale = append(stale, deviceID)
		}
	}
	if len(stale) > 0 {
		removed, err := s.deviceRepo.DeleteDevices(ctx, stale)
		if err != nil {
			s.log(ctx).Warn("Failed to remove devices with invalid tokens",
				slog.Int("devices", len(stale)),
				slog.Any("error", err),
			)
		}
		result.RemovedDevices = removed
	}

	s.log(ctx).Info("Order event notifications sent",
		slog.String("event_type", event.Type),
		slog.String("order_id", event.OrderID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("removed_devices", result.RemovedDevices),
	)

	return result, nil
}

// orderEventMessage collapses on the order ID so a device that was offline
// only shows the latest status of each order.
func orderEventMessage(event *service.OrderEvent) service.PushMessage {
	msg := service.PushMessage{
		Title: "Order updated",
		Body:  "Your gift order is now " + event.Status + ".",
		Data: map[string]string{
			"type":     event.Type,
			"order_id": event.OrderID,
			"status":   event.Status,
		},
		CollapseKey: event.OrderID,
	}

	switch event.Type {
	case service.OrderEventPlaced:
		msg.Title = "Order received"
		msg.Body = "Your gift order has been placed. Total: " + event.TotalAmount
	case service.OrderEventCanceled:
		msg.Title = "Order canceled"
		msg.Body = "Your gift order has been canceled."
		if event.Description != "" {
			msg.Body += " Reason: " + event.Description
		}
	}

	return msg
}
