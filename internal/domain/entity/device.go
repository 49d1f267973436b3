// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the client platform a push token was issued for.
type DevicePlatform string

const (
	DevicePlatformIOS     DevicePlatform = "ios"
	DevicePlatformAndroid DevicePlatform = "android"
	DevicePlatformWeb     DevicePlatform = "web"
)

// String returns the string representation of the DevicePlatform.
func (p DevicePlatform) String() string {
	return string(p)
}

// UserDevice represents a user's device registered for order push notifications.
type UserDevice struct {
	ID        uuid.UUID      `json:"id"`        // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID      `json:"userId"`    // The ID of the user who owns this device.
	FCMToken  string         `json:"fcmToken"`  // Firebase Cloud Messaging token for push notifications.
	DeviceID  string         `json:"deviceId"`  // Unique device identifier from the client.
	Platform  DevicePlatform `json:"platform"`  // Device platform.
	IsActive  bool           `json:"isActive"`  // Only active devices receive order pushes.
	CreatedAt time.Time      `json:"createdAt"` // Timestamp of when this device was registered.
	UpdatedAt time.Time      `json:"updatedAt"` // Timestamp of the last modification.
}
