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

type customerService struct {
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

func validateCustomerRequest(req *model.CustomerRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return model.NewValidationError("Customer name is required")
	}
	return nil
}

// Create validates and stores a new customer for the shop.
func (s *customerService) Create(ctx context.Context, ref model.ShopRef, req *model.CustomerRequest) (*model.Customer, error) {
	if err := validateCustomerRequest(req); err != nil {
		return nil, err
	}

	customer := &model.Customer{
		ID:        uuid.New(),
		OwnerID:   ref.OwnerID,
		ShopID:    ref.ShopID,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.customerRepo.Create(ctx, ref, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info().
		Str("customer_id", customer.ID.String()).
		Str("shop_id", ref.ShopID.String()).
		Msg("customer created")

	return customer, nil
}

// GetAll returns all customers of the shop.
func (s *customerService) GetAll(ctx context.Context, ref model.ShopRef) ([]model.Customer, error) {
	customers, err := s.customerRepo.GetAll(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return customers, nil
}

// GetByID returns one customer of the shop.
func (s *customerService) GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, ref, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}
	return customer, nil
}

// Update modifies an existing customer of the shop.
func (s *customerService) Update(ctx context.Context, ref model.ShopRef, id uuid.UUID, req *model.CustomerRequest) (*model.Customer, error) {
	if err := validateCustomerRequest(req); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, ref, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	customer.Name = strings.TrimSpace(req.Name)
	customer.Email = strings.TrimSpace(req.Email)
	customer.Phone = strings.TrimSpace(req.Phone)
	customer.Address = strings.TrimSpace(req.Address)

	if err := s.customerRepo.Update(ctx, ref, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	s.logger.Info().Str("customer_id", id.String()).Msg("customer updated")
	return customer, nil
}

// Delete removes a customer from the shop.
func (s *customerService) Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error {
	if err := s.customerRepo.Delete(ctx, ref, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.logger.Info().Str("customer_id", id.String()).Msg("customer deleted")
	return nil
}
