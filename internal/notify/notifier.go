// Package notify fans promotional offers out to a shop's customers.
package notify

import (
	"context"

	"shopdesk/internal/model"

	"github.com/rs/zerolog"
)

// Notifier announces a new offer to a set of customers.
type Notifier interface {
	// OfferCreated sends the offer to every customer with a phone number.
	// Delivery failures never fail offer creation.
	OfferCreated(ctx context.Context, offer *model.Offer, customers []model.Customer)
}

// smsLogNotifier writes each would-be SMS to the log. A real SMS gateway
// would slot in behind the same interface.
type smsLogNotifier struct {
	logger zerolog.Logger
}

// NewSMSLogNotifier creates a notifier that logs offer announcements.
func NewSMSLogNotifier(logger zerolog.Logger) Notifier {
	return &smsLogNotifier{
		logger: logger.With().Str("component", "sms-notifier").Logger(),
	}
}

// OfferCreated logs one announcement per customer that has a phone number.
func (n *smsLogNotifier) OfferCreated(ctx context.Context, offer *model.Offer, customers []model.Customer) {
	sent := 0
	for _, customer := range customers {
		if customer.Phone == "" {
			continue
		}
		n.logger.Info().
			Str("offer_id", offer.ID.String()).
			Str("phone", customer.Phone).
			Str("title", offer.Title).
			Time("valid_until", offer.ValidUntil).
			Msg("offer announcement")
		sent++
	}

	n.logger.Debug().
		Str("offer_id", offer.ID.String()).
		Int("recipients", sent).
		Msg("offer fan-out complete")
}
