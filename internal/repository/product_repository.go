package repository

import (
	"context"
	"errors"
	"fmt"

	"shopdesk/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	var description, imageKey *string
	err := row.Scan(&p.ID, &p.OwnerID, &p.ShopID, &p.Name, &p.Price, &description, &imageKey, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if description != nil {
		p.Description = *description
	}
	if imageKey != nil {
		p.ImageKey = *imageKey
	}
	return &p, nil
}

// Create inserts a new product under the given shop ref.
func (r *productRepository) Create(ctx context.Context, ref model.ShopRef, product *model.Product) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO products (id, owner_id, shop_id, name, price, description, image_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID, ref.OwnerID, ref.ShopID,
		product.Name, product.Price, product.Description, product.ImageKey, product.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", product.ID.String()).
			Str("shop_id", ref.ShopID.String()).
			Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Str("product_id", product.ID.String()).Msg("product created")
	return nil
}

// GetAll retrieves all of a shop's products ordered by name.
func (r *productRepository) GetAll(ctx context.Context, ref model.ShopRef) ([]model.Product, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, shop_id, name, price, description, image_key, created_at
		FROM products
		WHERE owner_id = $1 AND shop_id = $2
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, ref.OwnerID, ref.ShopID)
	if err != nil {
		r.logger.Error().Err(err).Str("shop_id", ref.ShopID.String()).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a product by id under the given shop ref.
func (r *productRepository) GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Product, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, shop_id, name, price, description, image_key, created_at
		FROM products
		WHERE id = $1 AND owner_id = $2 AND shop_id = $3
	`

	product, err := scanProduct(r.pool.QueryRow(ctx, query, id, ref.OwnerID, ref.ShopID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return product, nil
}

// GetByIDs retrieves multiple products by id within one shop.
func (r *productRepository) GetByIDs(ctx context.Context, ref model.ShopRef, ids []uuid.UUID) ([]model.Product, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	query := `
		SELECT id, owner_id, shop_id, name, price, description, image_key, created_at
		FROM products
		WHERE id = ANY($1) AND owner_id = $2 AND shop_id = $3
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, ids, ref.OwnerID, ref.ShopID)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query products by IDs")
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Update persists changes to a product under the given shop ref. Historical
// invoice items keep their snapshotted rates; price changes only affect
// invoices created afterwards.
func (r *productRepository) Update(ctx context.Context, ref model.ShopRef, product *model.Product) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE products
		SET name = $4, price = $5, description = $6, image_key = $7
		WHERE id = $1 AND owner_id = $2 AND shop_id = $3
	`

	tag, err := r.pool.Exec(ctx, query,
		product.ID, ref.OwnerID, ref.ShopID,
		product.Name, product.Price, product.Description, product.ImageKey)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", product.ID.String()).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// Delete removes a product under the given shop ref.
func (r *productRepository) Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM products WHERE id = $1 AND owner_id = $2 AND shop_id = $3`,
		id, ref.OwnerID, ref.ShopID)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}
