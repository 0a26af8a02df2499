package service

import (
	"context"
	"fmt"

	"shopdesk/internal/billing"
	"shopdesk/internal/model"
	"shopdesk/internal/repository"

	"github.com/rs/zerolog"
)

type dashboardService struct {
	invoiceRepo repository.InvoiceRepository
	offerRepo   repository.OfferRepository
	clock       billing.Clock
	logger      zerolog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	invoiceRepo repository.InvoiceRepository,
	offerRepo repository.OfferRepository,
	clock billing.Clock,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardService{
		invoiceRepo: invoiceRepo,
		offerRepo:   offerRepo,
		clock:       clock,
		logger:      logger.With().Str("service", "dashboard").Logger(),
	}
}

// Metrics derives the shop's dashboard figures from its invoices and offers.
// Nothing is cached; a change to either collection shows up on the next call.
func (s *dashboardService) Metrics(ctx context.Context, ref model.ShopRef) (billing.Metrics, error) {
	invoices, err := s.invoiceRepo.GetByShop(ctx, ref)
	if err != nil {
		return billing.Metrics{}, fmt.Errorf("failed to get invoices: %w", err)
	}

	offers, err := s.offerRepo.GetAll(ctx, ref)
	if err != nil {
		return billing.Metrics{}, fmt.Errorf("failed to get offers: %w", err)
	}

	return billing.ComputeMetrics(invoices, offers, s.clock.Now()), nil
}
