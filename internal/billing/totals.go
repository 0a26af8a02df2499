// Package billing holds the pure invoice arithmetic: line-item totals,
// discount application, GST breakdowns and dashboard metrics. Nothing in this
// package touches storage or transport; all monetary values are decimals so
// results carry no binary floating-point drift.
package billing

import (
	"shopdesk/internal/model"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// LineItem is the minimal shape the totals computation needs.
type LineItem struct {
	Quantity int
	Rate     decimal.Decimal
}

// Totals is the result of computing an invoice's monetary figures.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Total          decimal.Decimal `json:"total"`
}

// ComputeTotals derives subtotal, discount amount and total from the given
// line items and an overall discount percentage:
//
//	subtotal       = Σ quantity × rate
//	discountAmount = subtotal × discountPercent / 100
//	total          = subtotal − discountAmount
//
// It fails with a validation error when items is empty, any quantity is not
// positive, any rate is negative, or discountPercent lies outside [0, 100].
// Stored amounts keep full precision; rounding to two decimal places is a
// presentation concern.
func ComputeTotals(items []LineItem, discountPercent decimal.Decimal) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, model.ErrEmptyInvoice
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(oneHundred) {
		return Totals{}, model.ErrInvalidDiscount
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return Totals{}, model.ErrInvalidQuantity
		}
		if item.Rate.IsNegative() {
			return Totals{}, model.ErrNegativeRate
		}
		subtotal = subtotal.Add(item.Rate.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	discountAmount := subtotal.Mul(discountPercent).Div(oneHundred)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          subtotal.Sub(discountAmount),
	}, nil
}

// ItemsFromInvoice projects invoice items onto the shape ComputeTotals needs.
func ItemsFromInvoice(items []model.InvoiceItem) []LineItem {
	lines := make([]LineItem, len(items))
	for i, item := range items {
		lines[i] = LineItem{Quantity: item.Quantity, Rate: item.Rate}
	}
	return lines
}
