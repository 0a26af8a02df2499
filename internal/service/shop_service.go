package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopdesk/internal/model"
	"shopdesk/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type shopService struct {
	shopRepo repository.ShopRepository
	logger   zerolog.Logger
}

// NewShopService creates a new shop service.
func NewShopService(shopRepo repository.ShopRepository, logger zerolog.Logger) ShopService {
	return &shopService{
		shopRepo: shopRepo,
		logger:   logger.With().Str("service", "shop").Logger(),
	}
}

// Create opens a new shop for an owner.
func (s *shopService) Create(ctx context.Context, ownerID uuid.UUID, req *model.ShopRequest) (*model.Shop, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, model.NewValidationError("Shop name is required")
	}

	shop := &model.Shop{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(req.Name),
		Location:  strings.TrimSpace(req.Location),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}

	s.logger.Info().
		Str("shop_id", shop.ID.String()).
		Str("owner_id", ownerID.String()).
		Msg("shop created")

	return shop, nil
}

// GetByOwner returns all shops belonging to an owner.
func (s *shopService) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Shop, error) {
	shops, err := s.shopRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shops: %w", err)
	}
	return shops, nil
}

// Resolve verifies ownership of the shop and returns the tenant ref. An
// existing shop belonging to a different owner is indistinguishable from a
// missing one to the caller.
func (s *shopService) Resolve(ctx context.Context, ownerID, shopID uuid.UUID) (model.ShopRef, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return model.ShopRef{}, fmt.Errorf("failed to get shop: %w", err)
	}
	if shop == nil || shop.OwnerID != ownerID {
		return model.ShopRef{}, model.ErrShopAccessDenied
	}

	return model.NewShopRef(ownerID, shopID), nil
}

// RefForShop builds the tenant ref for a shop from its stored owner. Used by
// public storefront reads, which carry no authenticated owner.
func (s *shopService) RefForShop(ctx context.Context, shopID uuid.UUID) (model.ShopRef, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return model.ShopRef{}, fmt.Errorf("failed to get shop: %w", err)
	}
	if shop == nil {
		return model.ShopRef{}, model.ErrShopNotFound
	}

	return model.NewShopRef(shop.OwnerID, shop.ID), nil
}
