package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"shopdesk/internal/model"
	"shopdesk/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	customerCSVHeader = []string{"name", "email", "phone", "address"}
	productCSVHeader  = []string{"name", "price", "description"}
	invoiceCSVHeader  = []string{"invoice_id", "customer_id", "status", "subtotal", "discount_amount", "total", "created_at"}
)

type transferService struct {
	customers   CustomerService
	products    ProductService
	invoiceRepo repository.InvoiceRepository
	logger      zerolog.Logger
}

// NewTransferService creates a new CSV import/export service. Imports run
// through the customer and product services so every row gets the same
// validation as the API.
func NewTransferService(
	customers CustomerService,
	products ProductService,
	invoiceRepo repository.InvoiceRepository,
	logger zerolog.Logger,
) TransferService {
	return &transferService{
		customers:   customers,
		products:    products,
		invoiceRepo: invoiceRepo,
		logger:      logger.With().Str("service", "transfer").Logger(),
	}
}

// ImportCustomers reads customer rows from CSV and creates each valid one.
// Expected columns: name, email, phone, address. A leading header row is
// detected and skipped.
func (s *transferService) ImportCustomers(ctx context.Context, ref model.ShopRef, r io.Reader) (*ImportResult, error) {
	return s.importRows(ctx, r, customerCSVHeader, func(record []string) error {
		_, err := s.customers.Create(ctx, ref, &model.CustomerRequest{
			Name:    record[0],
			Email:   cell(record, 1),
			Phone:   cell(record, 2),
			Address: cell(record, 3),
		})
		return err
	})
}

// ImportProducts reads product rows from CSV and creates each valid one.
// Expected columns: name, price, description.
func (s *transferService) ImportProducts(ctx context.Context, ref model.ShopRef, r io.Reader) (*ImportResult, error) {
	return s.importRows(ctx, r, productCSVHeader, func(record []string) error {
		price, err := decimal.NewFromString(cell(record, 1))
		if err != nil {
			return model.NewValidationError(fmt.Sprintf("Invalid price %q", cell(record, 1)))
		}
		_, err = s.products.Create(ctx, ref, &model.ProductRequest{
			Name:        record[0],
			Price:       price,
			Description: cell(record, 2),
		})
		return err
	})
}

// importRows drives one CSV import. Malformed or invalid rows are reported
// and skipped; the rest are imported.
func (s *transferService) importRows(ctx context.Context, r io.Reader, header []string, create func(record []string) error) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &ImportResult{}
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, RowError{Line: line, Message: "malformed CSV row"})
			continue
		}
		if line == 1 && isHeaderRow(record, header) {
			continue
		}
		if len(record) == 0 || record[0] == "" {
			result.Skipped++
			result.Errors = append(result.Errors, RowError{Line: line, Message: "missing name"})
			continue
		}

		if err := create(record); err != nil {
			if model.ErrorCode(err) == model.ErrCodeInternalError {
				return nil, err
			}
			result.Skipped++
			result.Errors = append(result.Errors, RowError{Line: line, Message: err.Error()})
			continue
		}
		result.Imported++
	}

	s.logger.Info().
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("CSV import complete")

	return result, nil
}

// ExportCustomers writes the shop's customers as CSV.
func (s *transferService) ExportCustomers(ctx context.Context, ref model.ShopRef, w io.Writer) error {
	customers, err := s.customers.GetAll(ctx, ref)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(customerCSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, c := range customers {
		if err := writer.Write([]string{c.Name, c.Email, c.Phone, c.Address}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportInvoices writes the shop's invoice headers as CSV.
func (s *transferService) ExportInvoices(ctx context.Context, ref model.ShopRef, w io.Writer) error {
	invoices, err := s.invoiceRepo.GetByShop(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to get invoices: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(invoiceCSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, inv := range invoices {
		row := []string{
			inv.ID.String(),
			inv.CustomerID.String(),
			inv.Status,
			inv.Subtotal.StringFixed(2),
			inv.DiscountAmount.StringFixed(2),
			inv.Total.StringFixed(2),
			inv.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// isHeaderRow reports whether the record matches the expected header
// cell-for-cell. Matching the whole row keeps a data row whose first cell
// happens to equal the first column name from being dropped.
func isHeaderRow(record, header []string) bool {
	if len(record) != len(header) {
		return false
	}
	for i := range header {
		if !strings.EqualFold(record[i], header[i]) {
			return false
		}
	}
	return true
}

// cell returns record[i] or the empty string when the row is short.
func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}
