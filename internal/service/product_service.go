package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopdesk/internal/model"
	"shopdesk/internal/repository"
	"shopdesk/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type productService struct {
	productRepo repository.ProductRepository
	images      storage.ImageStore
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, images storage.ImageStore, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		images:      images,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

func validateProductRequest(req *model.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return model.NewValidationError("Product name is required")
	}
	if req.Price.IsNegative() {
		return model.ErrNegativeRate
	}
	return nil
}

// Create validates and stores a new product in the shop's catalogue.
func (s *productService) Create(ctx context.Context, ref model.ShopRef, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:          uuid.New(),
		OwnerID:     ref.OwnerID,
		ShopID:      ref.ShopID,
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Description: strings.TrimSpace(req.Description),
		ImageKey:    req.ImageKey,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.productRepo.Create(ctx, ref, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("shop_id", ref.ShopID.String()).
		Msg("product created")

	return product, nil
}

// GetAll returns the shop's full catalogue.
func (s *productService) GetAll(ctx context.Context, ref model.ShopRef) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByID returns one product of the shop.
func (s *productService) GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, ref, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

// Update modifies an existing product. A changed image key leaves the old
// image in place for any invoice documents that still reference it.
func (s *productService) Update(ctx context.Context, ref model.ShopRef, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, ref, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	product.Name = strings.TrimSpace(req.Name)
	product.Price = req.Price
	product.Description = strings.TrimSpace(req.Description)
	if req.ImageKey != "" {
		product.ImageKey = req.ImageKey
	}

	if err := s.productRepo.Update(ctx, ref, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product updated")
	return product, nil
}

// Delete removes a product and its stored image, if any.
func (s *productService) Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, ref, id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, ref, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if product.ImageKey != "" {
		if err := s.images.Delete(ctx, product.ImageKey); err != nil {
			// Orphaned image bytes are harmless; the product row is gone.
			s.logger.Warn().Err(err).Str("image_key", product.ImageKey).Msg("failed to delete product image")
		}
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")
	return nil
}
