package impl

import (
	"context"
	"testing"

	"giftshop/internal/domain/entity"
	domainerrors "giftshop/internal/domain/errors"
	"giftshop/internal/domain/repository"
	"giftshop/internal/infra/validation"
	mockRepo "giftshop/internal/mocks/repository"
	"giftshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Validator:  validation.NewSchemaValidator(),
		Logger:     newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:    svc,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.RegisterDeviceInput{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.UserDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: "ios",
		IsActive: true,
	}
	updatedDevice := &entity.UserDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
		IsActive: true,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existingDevice}, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_Errors(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.RegisterDeviceInput{FCMToken: "token", DeviceID: "device-123", Platform: "android"}

	t.Run("unauthenticated", func(t *testing.T) {
		fx := createTestDeviceService(t)

		_, err := fx.service.RegisterDevice(ctx, uuid.Nil, deviceInfo)
		requireAppError(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("unknown platform", func(t *testing.T) {
		fx := createTestDeviceService(t)

		_, err := fx.service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{FCMToken: "token", DeviceID: "d", Platform: "symbian"})
		requireAppError(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("concurrent duplicate", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
		fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

		_, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
		requireAppError(t, err, domainerrors.ErrConflict)
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, errors.New("connection refused"))

		_, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to find devices by user")
	})
}

func TestDeviceService_RotateToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "rotated").Return(nil)

		require.NoError(t, fx.service.RotateToken(ctx, userID, deviceID, "rotated"))
	})

	t.Run("another user's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.RotateToken(ctx, userID, deviceID, "rotated")
		requireAppError(t, err, domainerrors.ErrAccessDenied)
	})

	t.Run("empty token", func(t *testing.T) {
		fx := createTestDeviceService(t)

		err := fx.service.RotateToken(ctx, userID, deviceID, "")
		requireAppError(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: userID, IsActive: true}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)

	got, err := fx.service.ListDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

func TestDeviceService_RemoveDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

		require.NoError(t, fx.service.RemoveDevice(ctx, userID, deviceID))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.RemoveDevice(ctx, userID, deviceID)
		requireAppError(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("pruned concurrently", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(repository.ErrDeviceNotFound)

		err := fx.service.RemoveDevice(ctx, userID, deviceID)
		requireAppError(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("owned by someone else", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.RemoveDevice(ctx, userID, deviceID)
		requireAppError(t, err, domainerrors.ErrAccessDenied)
	})
}

func TestDeviceService_RegisterDevice_SameTokenSkipsUpdate(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "token", DeviceID: "device-123", Platform: entity.DevicePlatformWeb, IsActive: true}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(existing, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{FCMToken: "token", DeviceID: "device-123", Platform: entity.DevicePlatformWeb})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
}
