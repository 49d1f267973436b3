// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"giftshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for gift persistence.
var (
	// ErrGiftNotFound is returned when a gift is not found.
	ErrGiftNotFound = errors.New("gift not found")
	// ErrInsufficientStock is returned when a conditional reservation finds fewer units than requested.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// GiftSort selects the ordering of catalog listings.
type GiftSort string

const (
	// GiftSortNewest lists the most recently created gifts first.
	GiftSortNewest GiftSort = "newest"
	// GiftSortPriceAsc lists the cheapest gifts first, then the fastest to deliver.
	GiftSortPriceAsc GiftSort = "price_asc"
)

// GiftFilter narrows catalog listings. Zero values mean "no constraint".
type GiftFilter struct {
	Gender      entity.Gender    // Gifts tagged with this gender or unisex.
	Age         *int             // Gifts whose age range contains this age.
	MinAge      *int             // Gifts suitable for someone at least this old.
	MaxAge      *int             // Gifts suitable for someone at most this old.
	MaxPrice    *decimal.Decimal // Gifts priced at or below this amount.
	Category    string           // Exact category match.
	InStockOnly bool             // Only gifts with stock available.
	Sort        GiftSort         // Defaults to GiftSortNewest.
	Limit       int              // Page size; zero means the repository default.
	Offset      int              // Page offset.
}

// GiftRepository defines the interface for catalog persistence, including the stock-mutation primitives.
type GiftRepository interface {
	// Create persists a new gift. InStock is derived from StockCount.
	Create(ctx context.Context, gift *entity.Gift) error

	// FindByID retrieves a gift by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Gift, error)

	// FindByIDsForUpdate retrieves the given gifts in ascending ID order and, inside a transaction,
	// locks them until the transaction ends. Missing IDs are simply absent from the result.
	FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Gift, error)

	// List retrieves gifts matching the filter.
	List(ctx context.Context, filter GiftFilter) ([]*entity.Gift, error)

	// ReserveStock decrements stock by quantity only if at least quantity units remain,
	// re-deriving InStock in the same write. Returns ErrInsufficientStock or ErrGiftNotFound
	// without changing anything when the reservation cannot be made.
	ReserveStock(ctx context.Context, id uuid.UUID, quantity int) error

	// ReleaseStock increments stock by quantity and re-derives InStock.
	ReleaseStock(ctx context.Context, id uuid.UUID, quantity int) error

	// SetStock overwrites the stock level and re-derives InStock.
	SetStock(ctx context.Context, id uuid.UUID, count int) error
}
