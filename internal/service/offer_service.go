package service

import (
	"context"
	"fmt"
	"strings"

	"shopdesk/internal/billing"
	"shopdesk/internal/model"
	"shopdesk/internal/notify"
	"shopdesk/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var offerDiscountCeiling = decimal.NewFromInt(100)

type offerService struct {
	offerRepo    repository.OfferRepository
	customerRepo repository.CustomerRepository
	notifier     notify.Notifier
	clock        billing.Clock
	logger       zerolog.Logger
}

// NewOfferService creates a new offer service.
func NewOfferService(
	offerRepo repository.OfferRepository,
	customerRepo repository.CustomerRepository,
	notifier notify.Notifier,
	clock billing.Clock,
	logger zerolog.Logger,
) OfferService {
	return &offerService{
		offerRepo:    offerRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		clock:        clock,
		logger:       logger.With().Str("service", "offer").Logger(),
	}
}

func (s *offerService) validateOfferRequest(req *model.OfferRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return model.NewValidationError("Offer title is required")
	}
	if req.DiscountPercent.IsNegative() || req.DiscountPercent.GreaterThan(offerDiscountCeiling) {
		return model.ErrInvalidDiscount
	}
	if req.ValidUntil.IsZero() {
		return model.NewValidationError("Offer expiry is required")
	}
	return nil
}

// Create stores the offer and announces it to the shop's customers. The
// announcement is best-effort and never fails the create.
func (s *offerService) Create(ctx context.Context, ref model.ShopRef, req *model.OfferRequest) (*model.Offer, error) {
	if err := s.validateOfferRequest(req); err != nil {
		return nil, err
	}

	offer := &model.Offer{
		ID:              uuid.New(),
		OwnerID:         ref.OwnerID,
		ShopID:          ref.ShopID,
		Title:           strings.TrimSpace(req.Title),
		Description:     strings.TrimSpace(req.Description),
		DiscountPercent: req.DiscountPercent,
		ValidUntil:      req.ValidUntil.UTC(),
		CreatedAt:       s.clock.Now().UTC(),
	}

	if err := s.offerRepo.Create(ctx, ref, offer); err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	customers, err := s.customerRepo.GetAll(ctx, ref)
	if err != nil {
		s.logger.Warn().Err(err).Str("offer_id", offer.ID.String()).Msg("failed to load customers for offer fan-out")
	} else {
		s.notifier.OfferCreated(ctx, offer, customers)
	}

	s.logger.Info().
		Str("offer_id", offer.ID.String()).
		Str("shop_id", ref.ShopID.String()).
		Time("valid_until", offer.ValidUntil).
		Msg("offer created")

	return offer, nil
}

// GetAll returns all offers of the shop, expired ones included.
func (s *offerService) GetAll(ctx context.Context, ref model.ShopRef) ([]model.Offer, error) {
	offers, err := s.offerRepo.GetAll(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get offers: %w", err)
	}
	return offers, nil
}

// GetActive filters the shop's offers down to those not yet expired.
func (s *offerService) GetActive(ctx context.Context, ref model.ShopRef) ([]model.Offer, error) {
	offers, err := s.offerRepo.GetAll(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get offers: %w", err)
	}

	now := s.clock.Now()
	active := make([]model.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.Active(now) {
			active = append(active, offer)
		}
	}
	return active, nil
}

// Update modifies an existing offer.
func (s *offerService) Update(ctx context.Context, ref model.ShopRef, id uuid.UUID, req *model.OfferRequest) (*model.Offer, error) {
	if err := s.validateOfferRequest(req); err != nil {
		return nil, err
	}

	offer, err := s.offerRepo.GetByID(ctx, ref, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	if offer == nil {
		return nil, model.ErrOfferNotFound
	}

	offer.Title = strings.TrimSpace(req.Title)
	offer.Description = strings.TrimSpace(req.Description)
	offer.DiscountPercent = req.DiscountPercent
	offer.ValidUntil = req.ValidUntil.UTC()

	if err := s.offerRepo.Update(ctx, ref, offer); err != nil {
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}

	s.logger.Info().Str("offer_id", id.String()).Msg("offer updated")
	return offer, nil
}

// Delete removes an offer.
func (s *offerService) Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error {
	if err := s.offerRepo.Delete(ctx, ref, id); err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}

	s.logger.Info().Str("offer_id", id.String()).Msg("offer deleted")
	return nil
}
