package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Offer is a shop-scoped promotional discount with an expiry.
type Offer struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	OwnerID         uuid.UUID       `json:"ownerId" db:"owner_id"`
	ShopID          uuid.UUID       `json:"shopId" db:"shop_id"`
	Title           string          `json:"title" db:"title"`
	Description     string          `json:"description,omitempty" db:"description"`
	DiscountPercent decimal.Decimal `json:"discountPercent" db:"discount_percent"`
	ValidUntil      time.Time       `json:"validUntil" db:"valid_until"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
}

// Active reports whether the offer has not yet expired at the given time.
func (o Offer) Active(now time.Time) bool {
	return now.Before(o.ValidUntil)
}

// OfferRequest represents the request payload for creating or updating an offer.
type OfferRequest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	ValidUntil      time.Time       `json:"validUntil"`
}
