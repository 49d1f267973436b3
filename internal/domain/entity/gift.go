// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxDeliveryMinutes is the upper bound for a gift's estimated delivery time.
const MaxDeliveryMinutes = 60

// Gender is the recipient gender a gift is tagged for.
type Gender string

const (
	// GenderBoy marks gifts aimed at boys.
	GenderBoy Gender = "boy"
	// GenderGirl marks gifts aimed at girls.
	GenderGirl Gender = "girl"
	// GenderUnisex marks gifts suitable for anyone.
	GenderUnisex Gender = "unisex"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderBoy, GenderGirl, GenderUnisex:
		return true
	default:
		return false
	}
}

// Matches reports whether a gift tagged g suits a recipient of gender recipient.
// Unisex gifts suit everyone; an empty recipient gender matches every gift.
func (g Gender) Matches(recipient Gender) bool {
	return recipient == "" || g == GenderUnisex || g == recipient
}

// AgeRange is an inclusive age interval in years.
type AgeRange struct {
	Min int `json:"min"` // Youngest suitable age.
	Max int `json:"max"` // Oldest suitable age.
}

// IsValid checks 0 <= Min <= Max.
func (r AgeRange) IsValid() bool {
	return r.Min >= 0 && r.Min <= r.Max
}

// Contains reports whether age falls inside the range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// Gift is a catalog item that can be ordered.
type Gift struct {
	ID                       uuid.UUID       `json:"id"`                       // The Global Unique Identifier (GUID) for the gift.
	Name                     string          `json:"name"`                     // Display name, also used in inventory error messages.
	Description              string          `json:"description"`              // Free-form description.
	Category                 string          `json:"category"`                 // Catalog category, e.g. "toys" or "books".
	ImageURL                 string          `json:"imageUrl,omitempty"`       // Optional product image.
	Price                    decimal.Decimal `json:"price"`                    // Current unit price, never negative.
	InStock                  bool            `json:"inStock"`                  // Always equal to StockCount > 0.
	StockCount               int             `json:"stockCount"`               // Units available for reservation.
	AgeRange                 AgeRange        `json:"ageRange"`                 // Suitable recipient ages.
	Gender                   Gender          `json:"gender"`                   // Suitable recipient gender.
	EstimatedDeliveryMinutes int             `json:"estimatedDeliveryMinutes"` // At most MaxDeliveryMinutes.
	CreatedAt                time.Time       `json:"createdAt"`                // Timestamp of when this gift was created.
	UpdatedAt                time.Time       `json:"updatedAt"`                // Timestamp of the last modification.
}

// SyncAvailability re-establishes InStock == (StockCount > 0).
func (g *Gift) SyncAvailability() {
	g.InStock = g.StockCount > 0
}

// CanFulfil reports whether quantity units can be reserved right now.
func (g *Gift) CanFulfil(quantity int) bool {
	return g.InStock && g.StockCount >= quantity
}

// Reserve takes quantity units out of stock. It returns false and leaves the gift
// untouched when not enough units are available.
func (g *Gift) Reserve(quantity int) bool {
	if quantity <= 0 || !g.CanFulfil(quantity) {
		return false
	}
	g.StockCount -= quantity
	g.SyncAvailability()

	return true
}

// Release puts quantity units back into stock.
func (g *Gift) Release(quantity int) {
	if quantity <= 0 {
		return
	}
	g.StockCount += quantity
	g.SyncAvailability()
}

// SetStock overwrites the stock level, clamping negatives to zero.
func (g *Gift) SetStock(count int) {
	g.StockCount = max(count, 0)
	g.SyncAvailability()
}
