package billing

import (
	"testing"
	"time"

	"shopdesk/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics_Empty(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	m := ComputeMetrics(nil, nil, now)

	assert.True(t, m.TotalRevenue.IsZero())
	assert.Equal(t, 0, m.InvoiceCount)
	assert.Equal(t, 0, m.UnitsSold)
	assert.Equal(t, 0, m.ActiveOfferCount)
}

func TestComputeMetrics_Aggregates(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	invoices := []model.Invoice{
		{
			Total: dec("225"),
			Items: []model.InvoiceItem{
				{Quantity: 2, Rate: dec("100")},
				{Quantity: 1, Rate: dec("50")},
			},
		},
		{
			Total: dec("40"),
			Items: []model.InvoiceItem{
				{Quantity: 4, Rate: dec("10")},
			},
		},
	}

	offers := []model.Offer{
		{Title: "Summer sale", ValidUntil: now.Add(24 * time.Hour)},
		{Title: "Expired", ValidUntil: now.Add(-24 * time.Hour)},
	}

	m := ComputeMetrics(invoices, offers, now)

	assert.True(t, m.TotalRevenue.Equal(dec("265")), "revenue = %s", m.TotalRevenue)
	assert.Equal(t, 2, m.InvoiceCount)
	assert.Equal(t, 7, m.UnitsSold)
	assert.Equal(t, 1, m.ActiveOfferCount)
}

func TestComputeMetrics_OfferExpiryBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// An offer expiring exactly now is no longer active.
	offers := []model.Offer{{ValidUntil: now}}

	m := ComputeMetrics(nil, offers, now)

	assert.Equal(t, 0, m.ActiveOfferCount)
}

func TestComputeMetrics_Deterministic(t *testing.T) {
	now := time.Now()
	invoices := []model.Invoice{
		{ID: uuid.New(), Total: dec("19.99"), Items: []model.InvoiceItem{{Quantity: 2, Rate: dec("9.995")}}},
	}
	offers := []model.Offer{{ValidUntil: now.Add(time.Hour)}}

	first := ComputeMetrics(invoices, offers, now)
	second := ComputeMetrics(invoices, offers, now)

	assert.True(t, first.TotalRevenue.Equal(second.TotalRevenue))
	assert.Equal(t, first.UnitsSold, second.UnitsSold)
	assert.Equal(t, first.ActiveOfferCount, second.ActiveOfferCount)
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := FixedClock{Instant: instant}

	assert.Equal(t, instant, clock.Now())
	assert.Equal(t, instant, clock.Now())
}
