package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopdesk/internal/middleware"
	"shopdesk/internal/model"
	"shopdesk/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInvoiceService is a mock implementation of InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Create(ctx context.Context, ref model.ShopRef, req *model.InvoiceRequest) (*model.Invoice, error) {
	args := m.Called(ctx, ref, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*model.Invoice, error) {
	args := m.Called(ctx, ref, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetByShop(ctx context.Context, ref model.ShopRef) ([]model.Invoice, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetByCustomer(ctx context.Context, ref model.ShopRef, customerID uuid.UUID) ([]model.Invoice, error) {
	args := m.Called(ctx, ref, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, ref model.ShopRef, id uuid.UUID) error {
	args := m.Called(ctx, ref, id)
	return args.Error(0)
}

func (m *MockInvoiceService) Document(ctx context.Context, ref model.ShopRef, id uuid.UUID) (*service.InvoiceDocument, error) {
	args := m.Called(ctx, ref, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoiceDocument), args.Error(1)
}

// scopedRequest builds a request carrying a tenant ref, as the shop-scope
// middleware would leave it.
func scopedRequest(method, target string, body string, ref model.ShopRef) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return r.WithContext(middleware.WithShopRef(r.Context(), ref))
}

func TestInvoiceHandler_Create(t *testing.T) {
	logger := zerolog.Nop()
	ref := model.NewShopRef(uuid.New(), uuid.New())

	validBody := `{"customerId":"` + uuid.NewString() + `","discountPercent":"10","items":[{"productId":"` + uuid.NewString() + `","quantity":2}]}`

	tests := []struct {
		name           string
		body           string
		withRef        bool
		mockReturn     *model.Invoice
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           validBody,
			withRef:        true,
			mockReturn:     &model.Invoice{ID: uuid.New(), Total: decimal.RequireFromString("225")},
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			body:           `{not json`,
			withRef:        true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Empty invoice rejected",
			body:           validBody,
			withRef:        true,
			mockError:      model.ErrEmptyInvoice,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Customer not found",
			body:           validBody,
			withRef:        true,
			mockError:      model.ErrCustomerNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Missing shop scope",
			body:           validBody,
			withRef:        false,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockInvoiceService)
			h := NewInvoiceHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Create", mock.Anything, ref, mock.AnythingOfType("*model.InvoiceRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			var r *http.Request
			if tt.withRef {
				r = scopedRequest(http.MethodPost, "/api/invoices", tt.body, ref)
			} else {
				r = httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(tt.body))
			}
			w := httptest.NewRecorder()

			h.Create(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if !tt.expectService {
				mockService.AssertNotCalled(t, "Create")
			}
		})
	}
}

func TestInvoiceHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ref := model.NewShopRef(uuid.New(), uuid.New())
	invoiceID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockService := new(MockInvoiceService)
		h := NewInvoiceHandler(mockService, logger)

		stored := &model.Invoice{ID: invoiceID, Total: decimal.RequireFromString("100")}
		mockService.On("GetByID", mock.Anything, ref, invoiceID).Return(stored, nil)

		r := scopedRequest(http.MethodGet, "/api/invoices/"+invoiceID.String(), "", ref)
		r.SetPathValue("id", invoiceID.String())
		w := httptest.NewRecorder()

		h.GetByID(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var got model.Invoice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, invoiceID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := new(MockInvoiceService)
		h := NewInvoiceHandler(mockService, logger)

		mockService.On("GetByID", mock.Anything, ref, invoiceID).Return(nil, model.ErrInvoiceNotFound)

		r := scopedRequest(http.MethodGet, "/api/invoices/"+invoiceID.String(), "", ref)
		r.SetPathValue("id", invoiceID.String())
		w := httptest.NewRecorder()

		h.GetByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeNotFound, resp.Error)
	})

	t.Run("malformed id", func(t *testing.T) {
		mockService := new(MockInvoiceService)
		h := NewInvoiceHandler(mockService, logger)

		r := scopedRequest(http.MethodGet, "/api/invoices/not-a-uuid", "", ref)
		r.SetPathValue("id", "not-a-uuid")
		w := httptest.NewRecorder()

		h.GetByID(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetByID")
	})
}

func TestInvoiceHandler_Document(t *testing.T) {
	logger := zerolog.Nop()
	ref := model.NewShopRef(uuid.New(), uuid.New())
	invoiceID := uuid.New()

	mockService := new(MockInvoiceService)
	h := NewInvoiceHandler(mockService, logger)

	doc := &service.InvoiceDocument{
		InvoiceNumber: "INV-ABCD1234",
		ShopName:      "Asha General Store",
		AmountDue:     decimal.RequireFromString("236"),
	}
	mockService.On("Document", mock.Anything, ref, invoiceID).Return(doc, nil)

	r := scopedRequest(http.MethodGet, "/api/invoices/"+invoiceID.String()+"/document", "", ref)
	r.SetPathValue("id", invoiceID.String())
	w := httptest.NewRecorder()

	h.Document(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var got service.InvoiceDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "INV-ABCD1234", got.InvoiceNumber)
	assert.Equal(t, "Asha General Store", got.ShopName)
}
