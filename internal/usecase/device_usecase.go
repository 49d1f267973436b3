package usecase

import (
	"context"

	"giftshop/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput identifies a client install. DeviceID is chosen by the client and is unique per user.
type RegisterDeviceInput struct {
	FCMToken string                `json:"fcmToken" validate:"required,max=4096"`
	DeviceID string                `json:"deviceId" validate:"required,max=255"`
	Platform entity.DevicePlatform `json:"platform" validate:"required,oneof=ios android web"`
}

type RotateTokenInput struct {
	FCMToken string `json:"fcmToken" validate:"required,max=4096"`
}

// DeviceUsecase manages the push targets of the calling user. Every method
// except RegisterDevice fails with ACCESS_DENIED for a device owned by someone else.
type DeviceUsecase interface {
	// RegisterDevice is idempotent per DeviceID: a known install only gets its token rotated.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.UserDevice, error)
	RotateToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error
	// ListDevices returns active devices only.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
