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

// invoiceRepository implements the InvoiceRepository interface using PostgreSQL.
type invoiceRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewInvoiceRepository creates a new PostgreSQL-backed invoice repository.
func NewInvoiceRepository(pool *pgxpool.Pool, logger zerolog.Logger) InvoiceRepository {
	return &invoiceRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "invoice").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *invoiceRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateInvoice inserts the invoice header within the provided transaction.
func (r *invoiceRepository) CreateInvoice(ctx context.Context, tx pgx.Tx, invoice *model.Invoice) error {
	query := `
		INSERT INTO invoices (id, owner_id, shop_id, customer_id, status,
			discount_percent, subtotal, discount_amount, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := tx.Exec(ctx, query,
		invoice.ID, invoice.OwnerID, invoice.ShopID, invoice.CustomerID, invoice.Status,
		invoice.DiscountPercent, invoice.Subtotal, invoice.DiscountAmount, invoice.Total,
		invoice.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Str("invoice_id", invoice.ID.String()).
			Msg("failed to create invoice")
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	r.logger.Debug().Str("invoice_id", invoice.ID.String()).Msg("invoice created")
	return nil
}

// CreateInvoiceItems inserts the invoice's line items within the provided transaction.
func (r *invoiceRepository) CreateInvoiceItems(ctx context.Context, tx pgx.Tx, items []model.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO invoice_items (id, invoice_id, product_id, product_name, quantity, rate, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.ID, item.InvoiceID, item.ProductID,
			item.ProductName, item.Quantity, item.Rate, item.Position)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().Err(err).
				Str("invoice_id", items[i].InvoiceID.String()).
				Str("product_id", items[i].ProductID.String()).
				Msg("failed to create invoice item")
			return fmt.Errorf("failed to create invoice item: %w", err)
		}
	}

	r.logger.Debug().Int("count", len(items)).Msg("invoice items created")
	return nil
}

const invoiceColumns = `id, owner_id, shop_id, customer_id, status,
	discount_percent, subtotal, discount_amount, total, created_at`

func scanInvoice(row pgx.Row) (*model.Invoice, error) {
	var inv model.Invoice
	err := row.Scan(&inv.ID, &inv.OwnerID, &inv.ShopID, &inv.CustomerID, &inv.Status,
		&inv.DiscountPercent, &inv.Subtotal, &inv.DiscountAmount, &inv.Total, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByID retrieves an invoice with its items, ordered by position.
func (r *invoiceRepository) GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Invoice, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id = $1 AND owner_id = $2 AND shop_id = $3
	`

	invoice, err := scanInvoice(r.pool.QueryRow(ctx, query, id, ref.OwnerID, ref.ShopID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("invoice_id", id.String()).Msg("invoice not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("invoice_id", id.String()).Msg("failed to query invoice")
		return nil, fmt.Errorf("failed to query invoice: %w", err)
	}

	itemsByInvoice, err := r.loadItems(ctx, []uuid.UUID{invoice.ID})
	if err != nil {
		return nil, err
	}
	invoice.Items = itemsByInvoice[invoice.ID]

	return invoice, nil
}

// GetByShop retrieves all of a shop's invoices with their items, newest first.
func (r *invoiceRepository) GetByShop(ctx context.Context, ref model.ShopRef) ([]model.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE owner_id = $1 AND shop_id = $2
		ORDER BY created_at DESC
	`

	return r.queryInvoices(ctx, ref, query, ref.OwnerID, ref.ShopID)
}

// GetByCustomer retrieves a customer's invoices with their items, newest first.
func (r *invoiceRepository) GetByCustomer(ctx context.Context, ref model.ShopRef, customerID uuid.UUID) ([]model.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE owner_id = $1 AND shop_id = $2 AND customer_id = $3
		ORDER BY created_at DESC
	`

	return r.queryInvoices(ctx, ref, query, ref.OwnerID, ref.ShopID, customerID)
}

func (r *invoiceRepository) queryInvoices(ctx context.Context, ref model.ShopRef, query string, args ...any) ([]model.Invoice, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("shop_id", ref.ShopID.String()).Msg("failed to query invoices")
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []model.Invoice
	var ids []uuid.UUID
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan invoice row")
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, *invoice)
		ids = append(ids, invoice.ID)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating invoice rows")
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}

	if len(invoices) == 0 {
		return invoices, nil
	}

	itemsByInvoice, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Items = itemsByInvoice[invoices[i].ID]
	}

	return invoices, nil
}

// loadItems fetches line items for the given invoice ids, keyed by invoice
// and ordered by position within each invoice.
func (r *invoiceRepository) loadItems(ctx context.Context, invoiceIDs []uuid.UUID) (map[uuid.UUID][]model.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, product_id, product_name, quantity, rate, position
		FROM invoice_items
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, position
	`

	rows, err := r.pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		r.logger.Error().Err(err).Int("invoice_count", len(invoiceIDs)).Msg("failed to query invoice items")
		return nil, fmt.Errorf("failed to query invoice items: %w", err)
	}
	defer rows.Close()

	itemsByInvoice := make(map[uuid.UUID][]model.InvoiceItem, len(invoiceIDs))
	for rows.Next() {
		var item model.InvoiceItem
		err := rows.Scan(&item.ID, &item.InvoiceID, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.Rate, &item.Position)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan invoice item row")
			return nil, fmt.Errorf("failed to scan invoice item: %w", err)
		}
		itemsByInvoice[item.InvoiceID] = append(itemsByInvoice[item.InvoiceID], item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating invoice item rows")
		return nil, fmt.Errorf("error iterating invoice items: %w", err)
	}

	return itemsByInvoice, nil
}

// Delete removes an invoice; its items are removed by foreign-key cascade.
func (r *invoiceRepository) Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM invoices WHERE id = $1 AND owner_id = $2 AND shop_id = $3`,
		id, ref.OwnerID, ref.ShopID)
	if err != nil {
		r.logger.Error().Err(err).Str("invoice_id", id.String()).Msg("failed to delete invoice")
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrInvoiceNotFound
	}

	r.logger.Info().Str("invoice_id", id.String()).Msg("invoice deleted")
	return nil
}
