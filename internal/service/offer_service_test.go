package service

import (
	"context"
	"testing"
	"time"

	"shopdesk/internal/billing"
	"shopdesk/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOfferService_Create_NotifiesCustomers(t *testing.T) {
	ctx := context.Background()
	ref := testRef()

	req := &model.OfferRequest{
		Title:           "Festival Sale",
		DiscountPercent: decimal.RequireFromString("15"),
		ValidUntil:      fixedClock().Instant.Add(72 * time.Hour),
	}

	customers := []model.Customer{
		{ID: uuid.New(), Name: "Asha", Phone: "9876500001"},
		{ID: uuid.New(), Name: "Ravi", Phone: "9876500002"},
	}

	mockOfferRepo := new(MockOfferRepository)
	mockCustomerRepo := new(MockCustomerRepository)
	mockNotifier := new(MockNotifier)

	service := NewOfferService(mockOfferRepo, mockCustomerRepo, mockNotifier, fixedClock(), zerolog.Nop())

	mockOfferRepo.On("Create", ctx, ref, mock.AnythingOfType("*model.Offer")).Return(nil)
	mockCustomerRepo.On("GetAll", ctx, ref).Return(customers, nil)
	mockNotifier.On("OfferCreated", ctx, mock.AnythingOfType("*model.Offer"), customers).Return()

	offer, err := service.Create(ctx, ref, req)

	require.NoError(t, err)
	require.NotNil(t, offer)
	assert.Equal(t, "Festival Sale", offer.Title)
	assert.Equal(t, ref.OwnerID, offer.OwnerID)
	assert.Equal(t, ref.ShopID, offer.ShopID)

	mockOfferRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestOfferService_Create_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	ref := testRef()

	validUntil := fixedClock().Instant.Add(24 * time.Hour)

	tests := []struct {
		name string
		req  *model.OfferRequest
	}{
		{
			name: "missing title",
			req:  &model.OfferRequest{DiscountPercent: decimal.RequireFromString("10"), ValidUntil: validUntil},
		},
		{
			name: "discount above 100",
			req:  &model.OfferRequest{Title: "Sale", DiscountPercent: decimal.RequireFromString("120"), ValidUntil: validUntil},
		},
		{
			name: "negative discount",
			req:  &model.OfferRequest{Title: "Sale", DiscountPercent: decimal.RequireFromString("-5"), ValidUntil: validUntil},
		},
		{
			name: "missing expiry",
			req:  &model.OfferRequest{Title: "Sale", DiscountPercent: decimal.RequireFromString("10")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOfferRepo := new(MockOfferRepository)
			mockNotifier := new(MockNotifier)

			service := NewOfferService(mockOfferRepo, new(MockCustomerRepository), mockNotifier, fixedClock(), zerolog.Nop())

			offer, err := service.Create(ctx, ref, tt.req)

			require.Error(t, err)
			assert.Equal(t, model.ErrCodeValidation, model.ErrorCode(err))
			assert.Nil(t, offer)
			mockOfferRepo.AssertNotCalled(t, "Create")
			mockNotifier.AssertNotCalled(t, "OfferCreated")
		})
	}
}

func TestOfferService_GetActive_FiltersExpired(t *testing.T) {
	ctx := context.Background()
	ref := testRef()
	now := fixedClock().Instant

	offers := []model.Offer{
		{ID: uuid.New(), Title: "Live", ValidUntil: now.Add(time.Hour)},
		{ID: uuid.New(), Title: "Expired", ValidUntil: now.Add(-time.Hour)},
		{ID: uuid.New(), Title: "Expiring now", ValidUntil: now},
	}

	mockOfferRepo := new(MockOfferRepository)
	service := NewOfferService(mockOfferRepo, new(MockCustomerRepository), new(MockNotifier), fixedClock(), zerolog.Nop())

	mockOfferRepo.On("GetAll", ctx, ref).Return(offers, nil)

	active, err := service.GetActive(ctx, ref)

	require.NoError(t, err)
	// An offer expiring exactly now is no longer active.
	require.Len(t, active, 1)
	assert.Equal(t, "Live", active[0].Title)
}

func TestOfferService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	ref := testRef()
	offerID := uuid.New()

	mockOfferRepo := new(MockOfferRepository)
	service := NewOfferService(mockOfferRepo, new(MockCustomerRepository), new(MockNotifier), billing.SystemClock{}, zerolog.Nop())

	mockOfferRepo.On("GetByID", ctx, ref, offerID).Return(nil, nil)

	offer, err := service.Update(ctx, ref, offerID, &model.OfferRequest{
		Title:           "Sale",
		DiscountPercent: decimal.RequireFromString("10"),
		ValidUntil:      time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.Equal(t, model.ErrOfferNotFound, err)
	assert.Nil(t, offer)
}
