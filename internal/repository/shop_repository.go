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

// shopRepository implements the ShopRepository interface using PostgreSQL.
type shopRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewShopRepository creates a new PostgreSQL-backed shop repository.
func NewShopRepository(pool *pgxpool.Pool, logger zerolog.Logger) ShopRepository {
	return &shopRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "shop").Logger(),
	}
}

// Create inserts a new shop for an owner.
func (r *shopRepository) Create(ctx context.Context, shop *model.Shop) error {
	query := `
		INSERT INTO shops (id, owner_id, name, location, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		shop.ID, shop.OwnerID, shop.Name, shop.Location, shop.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Str("shop_id", shop.ID.String()).
			Str("owner_id", shop.OwnerID.String()).
			Msg("failed to create shop")
		return fmt.Errorf("failed to create shop: %w", err)
	}

	r.logger.Debug().Str("shop_id", shop.ID.String()).Msg("shop created")
	return nil
}

// GetByID retrieves a shop by id.
func (r *shopRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	query := `
		SELECT id, owner_id, name, location, created_at
		FROM shops
		WHERE id = $1
	`

	var s model.Shop
	var location *string
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.OwnerID, &s.Name, &location, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("shop_id", id.String()).Msg("shop not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("shop_id", id.String()).Msg("failed to query shop")
		return nil, fmt.Errorf("failed to query shop: %w", err)
	}
	if location != nil {
		s.Location = *location
	}

	return &s, nil
}

// GetByOwner retrieves all shops belonging to an owner.
func (r *shopRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Shop, error) {
	query := `
		SELECT id, owner_id, name, location, created_at
		FROM shops
		WHERE owner_id = $1
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Str("owner_id", ownerID.String()).Msg("failed to query shops")
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	var shops []model.Shop
	for rows.Next() {
		var s model.Shop
		var location *string
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &location, &s.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan shop row")
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		if location != nil {
			s.Location = *location
		}
		shops = append(shops, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating shop rows")
		return nil, fmt.Errorf("error iterating shops: %w", err)
	}

	return shops, nil
}
