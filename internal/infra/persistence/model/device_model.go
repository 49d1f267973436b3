package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel maps the user_devices table. A user has at most one live row per
// client device ID; re-registration rotates the token on that row.
type UserDeviceModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uq_user_devices_user_device,where:deleted_at IS NULL"`
	DeviceID  string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_devices_user_device,where:deleted_at IS NULL"`
	FCMToken  string         `gorm:"column:fcm_token;type:varchar(4096);not null"`
	Platform  string         `gorm:"type:varchar(50);not null;check:platform IN ('ios', 'android', 'web')"`
	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
