package billing

import (
	"time"

	"shopdesk/internal/model"

	"github.com/shopspring/decimal"
)

// Metrics are the dashboard figures for one shop, derived on every call from
// the shop's invoice and offer collections. There is no cached state.
type Metrics struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	InvoiceCount     int             `json:"invoiceCount"`
	UnitsSold        int             `json:"unitsSold"`
	ActiveOfferCount int             `json:"activeOfferCount"`
}

// ComputeMetrics aggregates revenue, units sold and active offers. Empty
// collections yield zeros. An offer is active iff its expiry is after now.
func ComputeMetrics(invoices []model.Invoice, offers []model.Offer, now time.Time) Metrics {
	m := Metrics{TotalRevenue: decimal.Zero}

	for _, inv := range invoices {
		m.TotalRevenue = m.TotalRevenue.Add(inv.Total)
		m.InvoiceCount++
		for _, item := range inv.Items {
			m.UnitsSold += item.Quantity
		}
	}

	for _, offer := range offers {
		if offer.Active(now) {
			m.ActiveOfferCount++
		}
	}

	return m
}
