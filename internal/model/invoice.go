package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is an immutable billing record for one customer of one shop. Totals
// are computed once at creation and stored; deletion is the only mutation.
type Invoice struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	OwnerID         uuid.UUID       `json:"ownerId" db:"owner_id"`
	ShopID          uuid.UUID       `json:"shopId" db:"shop_id"`
	CustomerID      uuid.UUID       `json:"customerId" db:"customer_id"`
	Status          string          `json:"status" db:"status"`
	DiscountPercent decimal.Decimal `json:"discountPercent" db:"discount_percent"`
	Subtotal        decimal.Decimal `json:"subtotal" db:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discountAmount" db:"discount_amount"`
	Total           decimal.Decimal `json:"total" db:"total"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	Items           []InvoiceItem   `json:"items,omitempty"`
}

// InvoiceStatusPending is the status assigned to newly created invoices.
const InvoiceStatusPending = "Pending"

// InvoiceItem is one line on an invoice. Rate is copied from the product
// price at creation time unless the request overrides it. Position preserves
// the insertion order for display.
type InvoiceItem struct {
	ID          uuid.UUID       `json:"-" db:"id"`
	InvoiceID   uuid.UUID       `json:"-" db:"invoice_id"`
	ProductID   uuid.UUID       `json:"productId" db:"product_id"`
	ProductName string          `json:"productName" db:"product_name"`
	Quantity    int             `json:"quantity" db:"quantity"`
	Rate        decimal.Decimal `json:"rate" db:"rate"`
	Position    int             `json:"-" db:"position"`
}

// Amount returns quantity × rate for this line.
func (i InvoiceItem) Amount() decimal.Decimal {
	return i.Rate.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// InvoiceRequest represents the request payload for creating an invoice.
type InvoiceRequest struct {
	CustomerID      uuid.UUID            `json:"customerId"`
	DiscountPercent decimal.Decimal      `json:"discountPercent"`
	Items           []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest is a single line in an invoice request. Rate is
// optional; when nil the product's current price is used.
type InvoiceItemRequest struct {
	ProductID uuid.UUID        `json:"productId"`
	Quantity  int              `json:"quantity"`
	Rate      *decimal.Decimal `json:"rate,omitempty"`
}
