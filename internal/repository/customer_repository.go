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

// customerRepository implements the CustomerRepository interface using PostgreSQL.
type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	var email, phone, address *string
	err := row.Scan(&c.ID, &c.OwnerID, &c.ShopID, &c.Name, &email, &phone, &address, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if email != nil {
		c.Email = *email
	}
	if phone != nil {
		c.Phone = *phone
	}
	if address != nil {
		c.Address = *address
	}
	return &c, nil
}

// Create inserts a new customer under the given shop ref.
func (r *customerRepository) Create(ctx context.Context, ref model.ShopRef, customer *model.Customer) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO customers (id, owner_id, shop_id, name, email, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		customer.ID, ref.OwnerID, ref.ShopID,
		customer.Name, customer.Email, customer.Phone, customer.Address, customer.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Str("customer_id", customer.ID.String()).
			Str("shop_id", ref.ShopID.String()).
			Msg("failed to create customer")
		return fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Debug().Str("customer_id", customer.ID.String()).Msg("customer created")
	return nil
}

// GetAll retrieves all of a shop's customers ordered by name.
func (r *customerRepository) GetAll(ctx context.Context, ref model.ShopRef) ([]model.Customer, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, shop_id, name, email, phone, address, created_at
		FROM customers
		WHERE owner_id = $1 AND shop_id = $2
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, ref.OwnerID, ref.ShopID)
	if err != nil {
		r.logger.Error().Err(err).Str("shop_id", ref.ShopID.String()).Msg("failed to query customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan customer row")
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *customer)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating customer rows")
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// GetByID retrieves a customer by id under the given shop ref.
func (r *customerRepository) GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Customer, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, shop_id, name, email, phone, address, created_at
		FROM customers
		WHERE id = $1 AND owner_id = $2 AND shop_id = $3
	`

	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, id, ref.OwnerID, ref.ShopID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("customer_id", id.String()).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return customer, nil
}

// Update persists changes to a customer under the given shop ref.
func (r *customerRepository) Update(ctx context.Context, ref model.ShopRef, customer *model.Customer) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE customers
		SET name = $4, email = $5, phone = $6, address = $7
		WHERE id = $1 AND owner_id = $2 AND shop_id = $3
	`

	tag, err := r.pool.Exec(ctx, query,
		customer.ID, ref.OwnerID, ref.ShopID,
		customer.Name, customer.Email, customer.Phone, customer.Address)
	if err != nil {
		r.logger.Error().Err(err).Str("customer_id", customer.ID.String()).Msg("failed to update customer")
		return fmt.Errorf("failed to update customer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer under the given shop ref.
func (r *customerRepository) Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM customers WHERE id = $1 AND owner_id = $2 AND shop_id = $3`,
		id, ref.OwnerID, ref.ShopID)
	if err != nil {
		r.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to delete customer")
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrCustomerNotFound
	}

	return nil
}
