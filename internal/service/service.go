package service

import (
	"context"
	"io"
	"time"

	"shopdesk/internal/billing"
	"shopdesk/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerService defines operations for a shop's customer book.
type CustomerService interface {
	Create(ctx context.Context, ref model.ShopRef, req *model.CustomerRequest) (*model.Customer, error)
	GetAll(ctx context.Context, ref model.ShopRef) ([]model.Customer, error)
	GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Customer, error)
	Update(ctx context.Context, ref model.ShopRef, id uuid.UUID, req *model.CustomerRequest) (*model.Customer, error)
	Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error
}

// ProductService defines operations for a shop's product catalogue.
type ProductService interface {
	Create(ctx context.Context, ref model.ShopRef, req *model.ProductRequest) (*model.Product, error)
	GetAll(ctx context.Context, ref model.ShopRef) ([]model.Product, error)
	GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Product, error)
	Update(ctx context.Context, ref model.ShopRef, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)
	Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error
}

// InvoiceService defines operations for invoice creation and retrieval.
// Invoices are immutable once created; deletion is the only mutation.
type InvoiceService interface {
	// Create validates the request, computes totals and persists the invoice
	// with its line items atomically.
	Create(ctx context.Context, ref model.ShopRef, req *model.InvoiceRequest) (*model.Invoice, error)

	GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Invoice, error)
	GetByShop(ctx context.Context, ref model.ShopRef) ([]model.Invoice, error)
	GetByCustomer(ctx context.Context, ref model.ShopRef, customerID uuid.UUID) ([]model.Invoice, error)
	Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error

	// Document renders the printable representation of an invoice, including
	// the GST breakdown. Tax never alters the stored invoice totals.
	Document(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*InvoiceDocument, error)
}

// OfferService defines operations for promotional offers.
type OfferService interface {
	// Create stores the offer and fans an announcement out to the shop's
	// customers.
	Create(ctx context.Context, ref model.ShopRef, req *model.OfferRequest) (*model.Offer, error)

	GetAll(ctx context.Context, ref model.ShopRef) ([]model.Offer, error)

	// GetActive returns only offers that have not expired.
	GetActive(ctx context.Context, ref model.ShopRef) ([]model.Offer, error)

	Update(ctx context.Context, ref model.ShopRef, id uuid.UUID, req *model.OfferRequest) (*model.Offer, error)
	Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error
}

// DashboardService derives per-shop metrics on every call.
type DashboardService interface {
	Metrics(ctx context.Context, ref model.ShopRef) (billing.Metrics, error)
}

// OwnerService defines company-admin operations for owner provisioning.
type OwnerService interface {
	Create(ctx context.Context, req *model.OwnerRequest) (*model.Owner, error)
	GetAll(ctx context.Context) ([]model.Owner, error)
	Update(ctx context.Context, id uuid.UUID, req *model.OwnerRequest) (*model.Owner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShopService defines shop management and tenant-ref resolution.
type ShopService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *model.ShopRequest) (*model.Shop, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Shop, error)

	// Resolve verifies that the shop belongs to the owner and returns the
	// tenant ref. Fails with an unauthorised error on a mismatch.
	Resolve(ctx context.Context, ownerID, shopID uuid.UUID) (model.ShopRef, error)

	// RefForShop builds the tenant ref for a shop from its stored owner,
	// for public storefront reads.
	RefForShop(ctx context.Context, shopID uuid.UUID) (model.ShopRef, error)
}

// AuthService defines owner login flows.
type AuthService interface {
	// Login verifies mobile and password and returns a session token.
	Login(ctx context.Context, mobile, password string) (string, error)

	// RequestOTP generates a one-time code for the owner and hands it to the
	// notifier channel (logged in this deployment).
	RequestOTP(ctx context.Context, mobile string) error

	// VerifyOTP checks a one-time code and returns a session token. A used
	// code is cleared and cannot be replayed.
	VerifyOTP(ctx context.Context, mobile, otp string) (string, error)
}

// InquiryService defines operations for storefront contact inquiries.
type InquiryService interface {
	Create(ctx context.Context, req *model.InquiryRequest) (*model.Inquiry, error)
	GetAll(ctx context.Context) ([]model.Inquiry, error)
}

// TransferService moves customer and product data in and out as CSV.
type TransferService interface {
	ImportCustomers(ctx context.Context, ref model.ShopRef, r io.Reader) (*ImportResult, error)
	ImportProducts(ctx context.Context, ref model.ShopRef, r io.Reader) (*ImportResult, error)
	ExportCustomers(ctx context.Context, ref model.ShopRef, w io.Writer) error
	ExportInvoices(ctx context.Context, ref model.ShopRef, w io.Writer) error
}

// ImportResult reports a bulk import run. Rows that fail validation are
// skipped and reported; valid rows are still imported.
type ImportResult struct {
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors,omitempty"`
}

// RowError describes one rejected CSV row.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// InvoiceDocument is the printable representation of an invoice.
type InvoiceDocument struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	IssuedAt      time.Time       `json:"issuedAt"`
	Status        string          `json:"status"`
	ShopName      string          `json:"shopName"`
	Customer      model.Customer  `json:"customer"`
	Lines         []DocumentLine  `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	TotalCGST     decimal.Decimal `json:"totalCgst"`
	TotalSGST     decimal.Decimal `json:"totalSgst"`
	AmountDue     decimal.Decimal `json:"amountDue"`
	Terms         []string        `json:"terms"`
}

// DocumentLine is one rendered invoice line with its GST split.
type DocumentLine struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	Gross       decimal.Decimal `json:"gross"`
}
