package postgres

import (
	"context"

	"giftshop/internal/domain/entity"
	domainerrors "giftshop/internal/domain/errors"
	"giftshop/internal/domain/repository"
	"giftshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice registers a push device. (user_id, device_id) is unique among live rows.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrDuplicateDevice
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrUserNotFound.WrapMessage("device owner does not exist")
		case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid device information")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
		}
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.findByUser(ctx, userID, false)
}

// FindActiveDevicesByUser is what the notification worker fans out to.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.findByUser(ctx, userID, true)
}

func (repo *deviceRepository) findByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("created_at DESC").Order("id ASC").Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find devices for user %s", userID)
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateFCMToken rotates the push token of a device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", deviceID).
		Update("fcm_token", fcmToken)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice deactivates and soft-deletes a device.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.UserDeviceModel{}).
			Where("id = ?", id).
			Update("is_active", false)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to deactivate device")
		}
		if result.RowsAffected == 0 {
			return repository.ErrDeviceNotFound
		}

		if err := tx.Where("id = ?", id).Delete(&model.UserDeviceModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete device")
		}

		return nil
	})
}

// DeleteDevices deactivates and soft-deletes the listed devices in one transaction.
func (repo *deviceRepository) DeleteDevices(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var removed int64
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.UserDeviceModel{}).
			Where("id IN ?", ids).
			Update("is_active", false).Error; err != nil {
			return errors.Wrap(err, "failed to deactivate devices")
		}

		result := tx.Where("id IN ?", ids).Delete(&model.UserDeviceModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete devices")
		}
		removed = result.RowsAffected

		return nil
	})
	if err != nil {
		return 0, err
	}

	return int(removed), nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  entity.DevicePlatform(data.Platform),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform.String(),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
