package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopdesk/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ownerRepository implements the OwnerRepository interface using PostgreSQL.
type ownerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOwnerRepository creates a new PostgreSQL-backed owner repository.
func NewOwnerRepository(pool *pgxpool.Pool, logger zerolog.Logger) OwnerRepository {
	return &ownerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "owner").Logger(),
	}
}

const ownerColumns = "id, name, email, mobile, password_hash, shop_name, address, otp_code, otp_expires_at, created_at"

func scanOwner(row pgx.Row) (*model.Owner, error) {
	var o model.Owner
	var email, address, otpCode *string
	err := row.Scan(&o.ID, &o.Name, &email, &o.Mobile, &o.PasswordHash,
		&o.ShopName, &address, &otpCode, &o.OTPExpiresAt, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if email != nil {
		o.Email = *email
	}
	if address != nil {
		o.Address = *address
	}
	if otpCode != nil {
		o.OTPCode = *otpCode
	}
	return &o, nil
}

// Create inserts a new owner. Duplicate email or mobile fails with the
// duplicate-owner domain error.
func (r *ownerRepository) Create(ctx context.Context, owner *model.Owner) error {
	query := `
		INSERT INTO owners (id, name, email, mobile, password_hash, shop_name, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		owner.ID, owner.Name, owner.Email, owner.Mobile,
		owner.PasswordHash, owner.ShopName, owner.Address, owner.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn().Str("mobile", owner.Mobile).Msg("owner already exists")
			return model.ErrDuplicateOwner
		}
		r.logger.Error().Err(err).Str("owner_id", owner.ID.String()).Msg("failed to create owner")
		return fmt.Errorf("failed to create owner: %w", err)
	}

	r.logger.Debug().Str("owner_id", owner.ID.String()).Msg("owner created")
	return nil
}

// GetByID retrieves an owner by id.
func (r *ownerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE id = $1`

	owner, err := scanOwner(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("owner_id", id.String()).Msg("failed to query owner")
		return nil, fmt.Errorf("failed to query owner: %w", err)
	}

	return owner, nil
}

// GetByMobile retrieves an owner by login mobile number.
func (r *ownerRepository) GetByMobile(ctx context.Context, mobile string) (*model.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE mobile = $1`

	owner, err := scanOwner(r.pool.QueryRow(ctx, query, mobile))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("mobile", mobile).Msg("failed to query owner by mobile")
		return nil, fmt.Errorf("failed to query owner by mobile: %w", err)
	}

	return owner, nil
}

// GetAll retrieves all owners ordered by name.
func (r *ownerRepository) GetAll(ctx context.Context) ([]model.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query owners")
		return nil, fmt.Errorf("failed to query owners: %w", err)
	}
	defer rows.Close()

	var owners []model.Owner
	for rows.Next() {
		owner, err := scanOwner(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan owner row")
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, *owner)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating owner rows")
		return nil, fmt.Errorf("error iterating owners: %w", err)
	}

	return owners, nil
}

// Update persists changes to an existing owner.
func (r *ownerRepository) Update(ctx context.Context, owner *model.Owner) error {
	query := `
		UPDATE owners
		SET name = $2, email = $3, mobile = $4, password_hash = $5, shop_name = $6, address = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		owner.ID, owner.Name, owner.Email, owner.Mobile,
		owner.PasswordHash, owner.ShopName, owner.Address)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrDuplicateOwner
		}
		r.logger.Error().Err(err).Str("owner_id", owner.ID.String()).Msg("failed to update owner")
		return fmt.Errorf("failed to update owner: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrOwnerNotFound
	}

	return nil
}

// Delete removes an owner; shops, customers, products, invoices and offers
// under it are removed by foreign-key cascade.
func (r *ownerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("owner_id", id.String()).Msg("failed to delete owner")
		return fmt.Errorf("failed to delete owner: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrOwnerNotFound
	}

	r.logger.Info().Str("owner_id", id.String()).Msg("owner deleted")
	return nil
}

// SetOTP stores a login OTP and its expiry for an owner.
func (r *ownerRepository) SetOTP(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE owners SET otp_code = $2, otp_expires_at = $3 WHERE id = $1`,
		id, code, expiresAt)
	if err != nil {
		r.logger.Error().Err(err).Str("owner_id", id.String()).Msg("failed to set OTP")
		return fmt.Errorf("failed to set OTP: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrOwnerNotFound
	}

	return nil
}

// ClearOTP removes any stored OTP for an owner.
func (r *ownerRepository) ClearOTP(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE owners SET otp_code = NULL, otp_expires_at = NULL WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("owner_id", id.String()).Msg("failed to clear OTP")
		return fmt.Errorf("failed to clear OTP: %w", err)
	}

	return nil
}
