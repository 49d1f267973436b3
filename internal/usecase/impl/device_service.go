package impl

import (
	"context"
	"log/slog"
	"slices"

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

type deviceService struct {
	deviceRepo repository.DeviceRepository
	validator  service.SchemaValidator
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Validator  service.SchemaValidator
	Logger     *slog.Logger
}

func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		validator:  params.Validator,
		logger:     params.Logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if fields := s.validator.Validate(input); len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	known, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	if i := slices.IndexFunc(known, func(d *entity.UserDevice) bool { return d.DeviceID == input.DeviceID }); i >= 0 {
		return s.reregister(ctx, known[i], input.FCMToken)
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: input.FCMToken,
		DeviceID: input.DeviceID,
		Platform: input.Platform,
		IsActive: true,
	}
	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrConflict.WrapMessage("device already registered")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	s.log(ctx).Debug("Device registered",
		slog.String("device_id", device.ID.String()),
		slog.String("platform", device.Platform.String()),
	)

	return device, nil
}

// reregister rotates the token of an install the user registered before.
func (s *deviceService) reregister(ctx context.Context, device *entity.UserDevice, fcmToken string) (*entity.UserDevice, error) {
	if device.FCMToken != fcmToken {
		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, fcmToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}
	}

	refreshed, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload device")
	}

	return refreshed, nil
}

func (s *deviceService) RotateToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error {
	if fields := s.validator.Validate(&usecase.RotateTokenInput{FCMToken: fcmToken}); len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	return errors.Wrap(s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken), "failed to update FCM token")
}

func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

func (s *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		// Lost a race with the worker pruning the same device.
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to delete device")
	}

	s.log(ctx).Debug("Device removed", slog.String("device_id", deviceID.String()))

	return nil
}

func (s *deviceService) findOwnedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, domainerrors.ErrAccessDenied
	}

	return device, nil
}
