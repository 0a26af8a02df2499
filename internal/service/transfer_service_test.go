package service

import (
	"context"
	"strings"
	"testing"

	"shopdesk/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransferServiceForTest(
	customerRepo *MockCustomerRepository,
	productRepo *MockProductRepository,
	invoiceRepo *MockInvoiceRepository,
) TransferService {
	customers := NewCustomerService(customerRepo, zerolog.Nop())
	products := NewProductService(productRepo, new(MockImageStore), zerolog.Nop())
	return NewTransferService(customers, products, invoiceRepo, zerolog.Nop())
}

func TestTransferService_ImportCustomers(t *testing.T) {
	ctx := context.Background()
	ref := testRef()

	csv := strings.Join([]string{
		"name,email,phone,address",
		"Asha,asha@example.com,9876500001,Pune",
		",missing@example.com,9876500002,Pune", // no name, skipped
		"Ravi,,9876500003,",
	}, "\n")

	mockCustomerRepo := new(MockCustomerRepository)
	service := newTransferServiceForTest(mockCustomerRepo, new(MockProductRepository), new(MockInvoiceRepository))

	mockCustomerRepo.On("Create", ctx, ref, mock.AnythingOfType("*model.Customer")).Return(nil)

	result, err := service.ImportCustomers(ctx, ref, strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Line)

	mockCustomerRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestTransferService_ImportCustomers_NameCellMatchesHeader(t *testing.T) {
	ctx := context.Background()
	ref := testRef()

	// Only a full header row is skipped; a data row whose name cell happens
	// to be "name" is a real customer.
	csv := strings.Join([]string{
		"name,rajesh@example.com,9876500001,Pune",
		"Asha,asha@example.com,9876500002,Pune",
	}, "\n")

	mockCustomerRepo := new(MockCustomerRepository)
	service := newTransferServiceForTest(mockCustomerRepo, new(MockProductRepository), new(MockInvoiceRepository))

	mockCustomerRepo.On("Create", ctx, ref, mock.AnythingOfType("*model.Customer")).Return(nil)

	result, err := service.ImportCustomers(ctx, ref, strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	mockCustomerRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestTransferService_ImportProducts(t *testing.T) {
	ctx := context.Background()
	ref := testRef()

	csv := strings.Join([]string{
		"name,price,description",
		"Rice Bag,100.50,25kg bag",
		"Broken Row,not-a-price,",
		"Cooking Oil,50,1L bottle",
	}, "\n")

	mockProductRepo := new(MockProductRepository)
	service := newTransferServiceForTest(new(MockCustomerRepository), mockProductRepo, new(MockInvoiceRepository))

	mockProductRepo.On("Create", ctx, ref, mock.AnythingOfType("*model.Product")).Return(nil)

	result, err := service.ImportProducts(ctx, ref, strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "price")
}

func TestTransferService_ExportCustomers(t *testing.T) {
	ctx := context.Background()
	ref := testRef()

	mockCustomerRepo := new(MockCustomerRepository)
	service := newTransferServiceForTest(mockCustomerRepo, new(MockProductRepository), new(MockInvoiceRepository))

	mockCustomerRepo.On("GetAll", ctx, ref).Return([]model.Customer{
		{ID: uuid.New(), Name: "Asha", Email: "asha@example.com", Phone: "9876500001", Address: "Pune"},
	}, nil)

	var out strings.Builder
	err := service.ExportCustomers(ctx, ref, &out)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,email,phone,address", lines[0])
	assert.Equal(t, "Asha,asha@example.com,9876500001,Pune", lines[1])
}

func TestTransferService_ExportInvoices(t *testing.T) {
	ctx := context.Background()
	ref := testRef()

	invoice := model.Invoice{
		ID:             uuid.New(),
		CustomerID:     uuid.New(),
		Status:         model.InvoiceStatusPending,
		Subtotal:       decimal.RequireFromString("250"),
		DiscountAmount: decimal.RequireFromString("25"),
		Total:          decimal.RequireFromString("225"),
		CreatedAt:      fixedClock().Instant,
	}

	mockInvoiceRepo := new(MockInvoiceRepository)
	service := newTransferServiceForTest(new(MockCustomerRepository), new(MockProductRepository), mockInvoiceRepo)

	mockInvoiceRepo.On("GetByShop", ctx, ref).Return([]model.Invoice{invoice}, nil)

	var out strings.Builder
	err := service.ExportInvoices(ctx, ref, &out)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], invoice.ID.String())
	assert.Contains(t, lines[1], "250.00")
	assert.Contains(t, lines[1], "225.00")
}
