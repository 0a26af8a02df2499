package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item in a shop's catalogue. Price is a
// snapshot source: invoice line items copy the price at creation time, so
// later price changes never alter historical invoices.
type Product struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	OwnerID     uuid.UUID       `json:"ownerId" db:"owner_id"`
	ShopID      uuid.UUID       `json:"shopId" db:"shop_id"`
	Name        string          `json:"name" db:"name"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Description string          `json:"description,omitempty" db:"description"`
	ImageKey    string          `json:"imageKey,omitempty" db:"image_key"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// ProductRequest represents the request payload for creating or updating a product.
type ProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageKey    string          `json:"imageKey"`
}
