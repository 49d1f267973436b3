package repository

import (
	"context"

	"giftshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores the push targets of each user.
type DeviceRepository interface {
	// CreateDevice fails with ErrDuplicateDevice when the user already registered the client device ID.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	// FindDevicesByUser includes inactive devices.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error
	// DeleteDevice soft-deletes one device.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
	// DeleteDevices soft-deletes every listed device that still exists and returns how many were removed.
	DeleteDevices(ctx context.Context, ids []uuid.UUID) (int, error)
}
