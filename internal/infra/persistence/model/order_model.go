package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RecipientData is the JSONB payload of orders.recipient.
type RecipientData struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// AddressData is the JSONB payload of orders.delivery_address.
type AddressData struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Notes      string `json:"notes,omitempty"`
}

// DeliveryPartnerData is the JSONB payload of orders.delivery_partner.
type DeliveryPartnerData struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// OrderModel mirrors the 'orders' table. Line items and tracking history live in their own tables.
type OrderModel struct {
	ID                   uuid.UUID                                `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID               uuid.UUID                                `gorm:"type:uuid;not null;index"`
	Recipient            datatypes.JSONType[RecipientData]        `gorm:"type:jsonb;not null"`
	DeliveryAddress      datatypes.JSONType[AddressData]          `gorm:"type:jsonb;not null"`
	PaymentMethod        string                                   `gorm:"type:varchar(30);not null"`
	PaymentStatus        string                                   `gorm:"type:varchar(20);not null"`
	PaymentTransactionID string                                   `gorm:"type:varchar(100)"`
	Status               string                                   `gorm:"type:varchar(30);not null;index"`
	DeliveryTime         time.Time                                `gorm:"not null"`
	SpecialInstructions  string                                   `gorm:"type:text"`
	TotalAmount          decimal.Decimal                          `gorm:"type:numeric(12,2);not null"`
	DeliveryFee          decimal.Decimal                          `gorm:"type:numeric(12,2);not null"`
	Tax                  decimal.Decimal                          `gorm:"type:numeric(12,2);not null"`
	Discount             decimal.Decimal                          `gorm:"type:numeric(12,2);not null"`
	DeliveryPartner      *datatypes.JSONType[DeliveryPartnerData] `gorm:"type:jsonb"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Items    []OrderItemModel          `gorm:"foreignKey:OrderID"`
	Tracking []OrderTrackingEventModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Name and Price are copies taken at order time.
type OrderItemModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position int             `gorm:"not null"`
	GiftID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name     string          `gorm:"type:varchar(200);not null"`
	Quantity int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderTrackingEventModel mirrors the append-only 'order_tracking_events' table.
// The serial ID preserves insertion order.
type OrderTrackingEventModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"type:varchar(30);not null"`
	Description string    `gorm:"type:varchar(255);not null"`
	OccurredAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderTrackingEventModel) TableName() string {
	return "order_tracking_events"
}
