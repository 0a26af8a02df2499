package repository

import (
	"context"
	"time"

	"shopdesk/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Shop-scoped repositories take a model.ShopRef and reject it before any
// read or write when either identifier is missing. Every query predicate
// includes both owner_id and shop_id, so one tenant's rows are never visible
// through another tenant's ref.

// OwnerRepository defines data access for shop owners (company-admin scope).
type OwnerRepository interface {
	// Create inserts a new owner.
	Create(ctx context.Context, owner *model.Owner) error

	// GetByID retrieves an owner by id. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Owner, error)

	// GetByMobile retrieves an owner by login mobile number. Returns nil when not found.
	GetByMobile(ctx context.Context, mobile string) (*model.Owner, error)

	// GetAll retrieves all owners.
	GetAll(ctx context.Context) ([]model.Owner, error)

	// Update persists changes to an existing owner.
	Update(ctx context.Context, owner *model.Owner) error

	// Delete removes an owner and, through cascading, all tenant data under it.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetOTP stores a login OTP and its expiry for an owner.
	SetOTP(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error

	// ClearOTP removes any stored OTP for an owner.
	ClearOTP(ctx context.Context, id uuid.UUID) error
}

// ShopRepository defines data access for shops.
type ShopRepository interface {
	// Create inserts a new shop for an owner.
	Create(ctx context.Context, shop *model.Shop) error

	// GetByID retrieves a shop by id. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Shop, error)

	// GetByOwner retrieves all shops belonging to an owner.
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Shop, error)
}

// CustomerRepository defines shop-scoped data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, ref model.ShopRef, customer *model.Customer) error
	GetAll(ctx context.Context, ref model.ShopRef) ([]model.Customer, error)
	GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Customer, error)
	Update(ctx context.Context, ref model.ShopRef, customer *model.Customer) error
	Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error
}

// ProductRepository defines shop-scoped data access for products.
type ProductRepository interface {
	Create(ctx context.Context, ref model.ShopRef, product *model.Product) error
	GetAll(ctx context.Context, ref model.ShopRef) ([]model.Product, error)
	GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by id within one shop.
	GetByIDs(ctx context.Context, ref model.ShopRef, ids []uuid.UUID) ([]model.Product, error)

	Update(ctx context.Context, ref model.ShopRef, product *model.Product) error
	Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error
}

// InvoiceRepository defines shop-scoped data access for invoices. Invoice and
// line-item inserts run inside one transaction so an invoice is never
// partially persisted.
type InvoiceRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateInvoice inserts the invoice header within the provided transaction.
	CreateInvoice(ctx context.Context, tx pgx.Tx, invoice *model.Invoice) error

	// CreateInvoiceItems inserts the invoice's line items within the provided transaction.
	CreateInvoiceItems(ctx context.Context, tx pgx.Tx, items []model.InvoiceItem) error

	// GetByID retrieves an invoice with its items, ordered by position.
	// Returns nil when not found under the given ref.
	GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Invoice, error)

	// GetByShop retrieves all of a shop's invoices with their items.
	GetByShop(ctx context.Context, ref model.ShopRef) ([]model.Invoice, error)

	// GetByCustomer retrieves a customer's invoices with their items.
	GetByCustomer(ctx context.Context, ref model.ShopRef, customerID uuid.UUID) ([]model.Invoice, error)

	// Delete removes an invoice and its items.
	Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error
}

// OfferRepository defines shop-scoped data access for offers.
type OfferRepository interface {
	Create(ctx context.Context, ref model.ShopRef, offer *model.Offer) error
	GetAll(ctx context.Context, ref model.ShopRef) ([]model.Offer, error)
	GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Offer, error)
	Update(ctx context.Context, ref model.ShopRef, offer *model.Offer) error
	Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error
}

// InquiryRepository defines data access for storefront contact inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *model.Inquiry) error
	GetAll(ctx context.Context) ([]model.Inquiry, error)
}
