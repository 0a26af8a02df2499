package repository

import (
	"context"
	"fmt"

	"shopdesk/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// inquiryRepository implements the InquiryRepository interface using PostgreSQL.
type inquiryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewInquiryRepository creates a new PostgreSQL-backed inquiry repository.
func NewInquiryRepository(pool *pgxpool.Pool, logger zerolog.Logger) InquiryRepository {
	return &inquiryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "inquiry").Logger(),
	}
}

// Create inserts a new contact inquiry.
func (r *inquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Message, inquiry.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("inquiry_id", inquiry.ID.String()).Msg("failed to create inquiry")
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	r.logger.Debug().Str("inquiry_id", inquiry.ID.String()).Msg("inquiry created")
	return nil
}

// GetAll retrieves all inquiries, newest first.
func (r *inquiryRepository) GetAll(ctx context.Context) ([]model.Inquiry, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM inquiries
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query inquiries")
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []model.Inquiry
	for rows.Next() {
		var q model.Inquiry
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Message, &q.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan inquiry row")
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, q)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating inquiry rows")
		return nil, fmt.Errorf("error iterating inquiries: %w", err)
	}

	return inquiries, nil
}
