package usecase

import (
	"context"

	"giftshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListGiftsInput holds the catalog query parameters. Zero values mean "no constraint".
type ListGiftsInput struct {
	Gender   entity.Gender    `json:"gender,omitempty" validate:"omitempty,oneof=boy girl unisex"`
	MinAge   *int             `json:"minAge,omitempty" validate:"omitempty,gte=0,lte=120"`
	MaxAge   *int             `json:"maxAge,omitempty" validate:"omitempty,gte=0,lte=120"`
	MaxPrice *decimal.Decimal `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	Category string           `json:"category,omitempty" validate:"max=50"`
	InStock  bool             `json:"inStock,omitempty"`
	Limit    int              `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Offset   int              `json:"offset,omitempty" validate:"omitempty,min=0"`
}

// RecommendationInput describes the recipient a recommendation is for.
type RecommendationInput struct {
	Age    int              `json:"age" validate:"gte=0,lte=120"`
	Gender entity.Gender    `json:"gender,omitempty" validate:"omitempty,oneof=boy girl unisex"`
	Budget *decimal.Decimal `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Limit  int              `json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
}

// CreateGiftInput is an admin request to add a gift to the catalog.
type CreateGiftInput struct {
	Name                     string          `json:"name" validate:"required,max=200"`
	Description              string          `json:"description" validate:"max=2000"`
	Category                 string          `json:"category" validate:"required,max=50"`
	ImageURL                 string          `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Price                    decimal.Decimal `json:"price" validate:"gte=0"`
	StockCount               int             `json:"stockCount" validate:"gte=0"`
	AgeRange                 AgeRangeInput   `json:"ageRange"`
	Gender                   entity.Gender   `json:"gender" validate:"required,oneof=boy girl unisex"`
	EstimatedDeliveryMinutes int             `json:"estimatedDeliveryMinutes" validate:"min=1,max=60"`
}

// AgeRangeInput is an inclusive age interval.
type AgeRangeInput struct {
	Min int `json:"min" validate:"gte=0,lte=120"`
	Max int `json:"max" validate:"gte=0,lte=120,gtefield=Min"`
}

// SetStockInput is an admin restock or stock correction.
type SetStockInput struct {
	StockCount int `json:"stockCount" validate:"gte=0"`
}

// CatalogUsecase defines catalog reads and admin stock management.
type CatalogUsecase interface {
	// ListGifts returns gifts matching the filter, newest first.
	ListGifts(ctx context.Context, input *ListGiftsInput) ([]*entity.Gift, error)

	// GetGift returns a single gift.
	GetGift(ctx context.Context, giftID uuid.UUID) (*entity.Gift, error)

	// Recommend returns in-stock gifts suitable for the recipient, cheapest and fastest first.
	Recommend(ctx context.Context, input *RecommendationInput) ([]*entity.Gift, error)

	// CreateGift adds a gift to the catalog.
	CreateGift(ctx context.Context, input *CreateGiftInput) (*entity.Gift, error)

	// SetStock overwrites a gift's stock level.
	SetStock(ctx context.Context, giftID uuid.UUID, input *SetStockInput) (*entity.Gift, error)
}
