package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string                      `gorm:"type:varchar(100);not null"`
	PasswordHash string                      `gorm:"type:varchar(255);not null"`
	Roles        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
