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

// offerRepository implements the OfferRepository interface using PostgreSQL.
type offerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOfferRepository creates a new PostgreSQL-backed offer repository.
func NewOfferRepository(pool *pgxpool.Pool, logger zerolog.Logger) OfferRepository {
	return &offerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "offer").Logger(),
	}
}

func scanOffer(row pgx.Row) (*model.Offer, error) {
	var o model.Offer
	var description *string
	err := row.Scan(&o.ID, &o.OwnerID, &o.ShopID, &o.Title, &description,
		&o.DiscountPercent, &o.ValidUntil, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if description != nil {
		o.Description = *description
	}
	return &o, nil
}

// Create inserts a new offer under the given shop ref.
func (r *offerRepository) Create(ctx context.Context, ref model.ShopRef, offer *model.Offer) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO offers (id, owner_id, shop_id, title, description, discount_percent, valid_until, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		offer.ID, ref.OwnerID, ref.ShopID,
		offer.Title, offer.Description, offer.DiscountPercent, offer.ValidUntil, offer.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Str("offer_id", offer.ID.String()).
			Str("shop_id", ref.ShopID.String()).
			Msg("failed to create offer")
		return fmt.Errorf("failed to create offer: %w", err)
	}

	r.logger.Debug().Str("offer_id", offer.ID.String()).Msg("offer created")
	return nil
}

// GetAll retrieves all of a shop's offers, newest first.
func (r *offerRepository) GetAll(ctx context.Context, ref model.ShopRef) ([]model.Offer, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, shop_id, title, description, discount_percent, valid_until, created_at
		FROM offers
		WHERE owner_id = $1 AND shop_id = $2
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ref.OwnerID, ref.ShopID)
	if err != nil {
		r.logger.Error().Err(err).Str("shop_id", ref.ShopID.String()).Msg("failed to query offers")
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	var offers []model.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan offer row")
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, *offer)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating offer rows")
		return nil, fmt.Errorf("error iterating offers: %w", err)
	}

	return offers, nil
}

// GetByID retrieves an offer by id under the given shop ref.
func (r *offerRepository) GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Offer, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, shop_id, title, description, discount_percent, valid_until, created_at
		FROM offers
		WHERE id = $1 AND owner_id = $2 AND shop_id = $3
	`

	offer, err := scanOffer(r.pool.QueryRow(ctx, query, id, ref.OwnerID, ref.ShopID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("offer_id", id.String()).Msg("offer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to query offer")
		return nil, fmt.Errorf("failed to query offer: %w", err)
	}

	return offer, nil
}

// Update persists changes to an offer under the given shop ref.
func (r *offerRepository) Update(ctx context.Context, ref model.ShopRef, offer *model.Offer) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE offers
		SET title = $4, description = $5, discount_percent = $6, valid_until = $7
		WHERE id = $1 AND owner_id = $2 AND shop_id = $3
	`

	tag, err := r.pool.Exec(ctx, query,
		offer.ID, ref.OwnerID, ref.ShopID,
		offer.Title, offer.Description, offer.DiscountPercent, offer.ValidUntil)
	if err != nil {
		r.logger.Error().Err(err).Str("offer_id", offer.ID.String()).Msg("failed to update offer")
		return fmt.Errorf("failed to update offer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrOfferNotFound
	}

	return nil
}

// Delete removes an offer under the given shop ref.
func (r *offerRepository) Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM offers WHERE id = $1 AND owner_id = $2 AND shop_id = $3`,
		id, ref.OwnerID, ref.ShopID)
	if err != nil {
		r.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to delete offer")
		return fmt.Errorf("failed to delete offer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrOfferNotFound
	}

	return nil
}
