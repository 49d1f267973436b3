package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GiftModel mirrors the 'gifts' table. in_stock is kept equal to stock_count > 0 by every
// stock mutation and by a CHECK constraint.
type GiftModel struct {
	ID                       uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                     string          `gorm:"type:varchar(200);not null"`
	Description              string          `gorm:"type:text"`
	Category                 string          `gorm:"type:varchar(50);not null;index"`
	ImageURL                 string          `gorm:"type:varchar(500)"`
	Price                    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	InStock                  bool            `gorm:"not null"`
	StockCount               int             `gorm:"not null"`
	AgeMin                   int             `gorm:"not null"`
	AgeMax                   int             `gorm:"not null"`
	Gender                   string          `gorm:"type:varchar(10);not null;index"`
	EstimatedDeliveryMinutes int             `gorm:"not null"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
	DeletedAt                gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (GiftModel) TableName() string {
	return "gifts"
}
