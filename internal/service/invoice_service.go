package service

import (
	"context"
	"fmt"
	"strings"

	"shopdesk/internal/billing"
	"shopdesk/internal/model"
	"shopdesk/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// invoiceDocumentTerms appear at the foot of every rendered invoice.
var invoiceDocumentTerms = []string{
	"Goods once sold will not be taken back.",
	"All amounts include CGST and SGST at 9% each.",
}

type invoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	shopRepo     repository.ShopRepository
	clock        billing.Clock
	logger       zerolog.Logger
}

// NewInvoiceService creates a new invoice service. The clock supplies invoice
// timestamps so tests can pin creation time.
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	shopRepo repository.ShopRepository,
	clock billing.Clock,
	logger zerolog.Logger,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		shopRepo:     shopRepo,
		clock:        clock,
		logger:       logger.With().Str("service", "invoice").Logger(),
	}
}

// Create builds the invoice from the request, computes its totals and
// persists the header and line items in one transaction. Line rates default
// to the product's current price so later price edits never rewrite history.
func (s *invoiceService) Create(ctx context.Context, ref model.ShopRef, req *model.InvoiceRequest) (*model.Invoice, error) {
	if len(req.Items) == 0 {
		return nil, model.ErrEmptyInvoice
	}
	if req.CustomerID == uuid.Nil {
		return nil, model.NewValidationError("Customer id is required")
	}

	customer, err := s.customerRepo.GetByID(ctx, ref, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	items, err := s.resolveItems(ctx, ref, req.Items)
	if err != nil {
		return nil, err
	}

	totals, err := billing.ComputeTotals(billing.ItemsFromInvoice(items), req.DiscountPercent)
	if err != nil {
		return nil, err
	}

	invoice := &model.Invoice{
		ID:              uuid.New(),
		OwnerID:         ref.OwnerID,
		ShopID:          ref.ShopID,
		CustomerID:      customer.ID,
		Status:          model.InvoiceStatusPending,
		DiscountPercent: req.DiscountPercent,
		Subtotal:        totals.Subtotal,
		DiscountAmount:  totals.DiscountAmount,
		Total:           totals.Total,
		CreatedAt:       s.clock.Now().UTC(),
	}
	for i := range items {
		items[i].InvoiceID = invoice.ID
	}
	invoice.Items = items

	tx, err := s.invoiceRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := s.invoiceRepo.CreateInvoice(ctx, tx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	if err := s.invoiceRepo.CreateInvoiceItems(ctx, tx, invoice.Items); err != nil {
		return nil, fmt.Errorf("failed to create invoice items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info().
		Str("invoice_id", invoice.ID.String()).
		Str("shop_id", ref.ShopID.String()).
		Str("total", invoice.Total.String()).
		Int("items", len(invoice.Items)).
		Msg("invoice created")

	return invoice, nil
}

// resolveItems looks every requested product up within the shop and builds
// line items with the product name and rate snapshotted.
func (s *invoiceService) resolveItems(ctx context.Context, ref model.ShopRef, reqItems []model.InvoiceItemRequest) ([]model.InvoiceItem, error) {
	ids := make([]uuid.UUID, 0, len(reqItems))
	for _, item := range reqItems {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ref, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]model.InvoiceItem, len(reqItems))
	for i, reqItem := range reqItems {
		product, ok := byID[reqItem.ProductID]
		if !ok {
			return nil, model.ErrProductNotFound
		}

		rate := product.Price
		if reqItem.Rate != nil {
			rate = *reqItem.Rate
		}

		items[i] = model.InvoiceItem{
			ID:          uuid.New(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    reqItem.Quantity,
			Rate:        rate,
			Position:    i,
		}
	}
	return items, nil
}

// GetByID returns one invoice of the shop with its items.
func (s *invoiceService) GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, ref, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	if invoice == nil {
		return nil, model.ErrInvoiceNotFound
	}
	return invoice, nil
}

// GetByShop returns all invoices of the shop.
func (s *invoiceService) GetByShop(ctx context.Context, ref model.ShopRef) ([]model.Invoice, error) {
	invoices, err := s.invoiceRepo.GetByShop(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoices: %w", err)
	}
	return invoices, nil
}

// GetByCustomer returns a customer's invoices within the shop.
func (s *invoiceService) GetByCustomer(ctx context.Context, ref model.ShopRef, customerID uuid.UUID) ([]model.Invoice, error) {
	invoices, err := s.invoiceRepo.GetByCustomer(ctx, ref, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer invoices: %w", err)
	}
	return invoices, nil
}

// Delete removes an invoice and its items.
func (s *invoiceService) Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error {
	if err := s.invoiceRepo.Delete(ctx, ref, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	s.logger.Info().Str("invoice_id", id.String()).Msg("invoice deleted")
	return nil
}

// Document renders the printable form of an invoice with the per-line GST
// split. Stored totals are untouched; tax is layered on top for display.
func (s *invoiceService) Document(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*InvoiceDocument, error) {
	invoice, err := s.GetByID(ctx, ref, id)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, ref, invoice.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	shop, err := s.shopRepo.GetByID(ctx, invoice.ShopID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	if shop == nil {
		return nil, model.ErrShopNotFound
	}

	lines := make([]DocumentLine, len(invoice.Items))
	totalCGST := decimal.Zero
	totalSGST := decimal.Zero
	for i, item := range invoice.Items {
		amount := item.Amount()
		tax := billing.ComputeLineTax(amount)
		lines[i] = DocumentLine{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      amount.Round(2),
			CGST:        tax.CGST,
			SGST:        tax.SGST,
			Gross:       tax.Gross,
		}
		totalCGST = totalCGST.Add(tax.CGST)
		totalSGST = totalSGST.Add(tax.SGST)
	}

	return &InvoiceDocument{
		InvoiceNumber: invoiceNumber(invoice.ID),
		IssuedAt:      invoice.CreatedAt,
		Status:        invoice.Status,
		ShopName:      shop.Name,
		Customer:      *customer,
		Lines:         lines,
		Subtotal:      invoice.Subtotal.Round(2),
		Discount:      invoice.DiscountAmount.Round(2),
		TotalCGST:     totalCGST,
		TotalSGST:     totalSGST,
		AmountDue:     invoice.Total.Add(totalCGST).Add(totalSGST).Round(2),
		Terms:         invoiceDocumentTerms,
	}, nil
}

// invoiceNumber derives the short human-facing invoice number from the id.
func invoiceNumber(id uuid.UUID) string {
	return "INV-" + strings.ToUpper(id.String()[:8])
}
