package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopdesk/internal/auth"
	"shopdesk/internal/model"
	"shopdesk/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ownerService struct {
	ownerRepo repository.OwnerRepository
	shopRepo  repository.ShopRepository
	logger    zerolog.Logger
}

// NewOwnerService creates a new owner service for company-admin provisioning.
func NewOwnerService(ownerRepo repository.OwnerRepository, shopRepo repository.ShopRepository, logger zerolog.Logger) OwnerService {
	return &ownerService{
		ownerRepo: ownerRepo,
		shopRepo:  shopRepo,
		logger:    logger.With().Str("service", "owner").Logger(),
	}
}

func validateOwnerRequest(req *model.OwnerRequest, requirePassword bool) error {
	if strings.TrimSpace(req.Name) == "" {
		return model.NewValidationError("Owner name is required")
	}
	if strings.TrimSpace(req.Mobile) == "" {
		return model.NewValidationError("Owner mobile number is required")
	}
	if requirePassword && strings.TrimSpace(req.Password) == "" {
		return model.NewValidationError("Owner password is required")
	}
	return nil
}

// Create provisions a new owner and opens their first shop.
func (s *ownerService) Create(ctx context.Context, req *model.OwnerRequest) (*model.Owner, error) {
	if err := validateOwnerRequest(req, true); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	owner := &model.Owner{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Mobile:       strings.TrimSpace(req.Mobile),
		PasswordHash: hash,
		ShopName:     strings.TrimSpace(req.ShopName),
		Address:      strings.TrimSpace(req.Address),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.ownerRepo.Create(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to create owner: %w", err)
	}

	if owner.ShopName != "" {
		shop := &model.Shop{
			ID:        uuid.New(),
			OwnerID:   owner.ID,
			Name:      owner.ShopName,
			Location:  owner.Address,
			CreatedAt: owner.CreatedAt,
		}
		if err := s.shopRepo.Create(ctx, shop); err != nil {
			return nil, fmt.Errorf("failed to create owner's shop: %w", err)
		}
	}

	s.logger.Info().
		Str("owner_id", owner.ID.String()).
		Str("mobile", owner.Mobile).
		Msg("owner provisioned")

	return owner, nil
}

// GetAll returns every provisioned owner.
func (s *ownerService) GetAll(ctx context.Context) ([]model.Owner, error) {
	owners, err := s.ownerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get owners: %w", err)
	}
	return owners, nil
}

// Update modifies an existing owner. An empty password leaves the stored
// hash unchanged.
func (s *ownerService) Update(ctx context.Context, id uuid.UUID, req *model.OwnerRequest) (*model.Owner, error) {
	if err := validateOwnerRequest(req, false); err != nil {
		return nil, err
	}

	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if owner == nil {
		return nil, model.ErrOwnerNotFound
	}

	owner.Name = strings.TrimSpace(req.Name)
	owner.Email = strings.TrimSpace(req.Email)
	owner.Mobile = strings.TrimSpace(req.Mobile)
	owner.ShopName = strings.TrimSpace(req.ShopName)
	owner.Address = strings.TrimSpace(req.Address)

	if strings.TrimSpace(req.Password) != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		owner.PasswordHash = hash
	}

	if err := s.ownerRepo.Update(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to update owner: %w", err)
	}

	s.logger.Info().Str("owner_id", id.String()).Msg("owner updated")
	return owner, nil
}

// Delete removes an owner; tenant data under the owner cascades away.
func (s *ownerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.ownerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete owner: %w", err)
	}

	s.logger.Info().Str("owner_id", id.String()).Msg("owner deleted")
	return nil
}
