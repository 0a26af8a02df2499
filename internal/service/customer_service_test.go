package service

import (
	"context"
	"errors"
	"testing"

	"shopdesk/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()
	ref := testRef()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(mockRepo, zerolog.Nop())

		mockRepo.On("Create", ctx, ref, mock.AnythingOfType("*model.Customer")).Return(nil)

		customer, err := service.Create(ctx, ref, &model.CustomerRequest{
			Name:  "  Asha  ",
			Phone: "9876500001",
		})

		require.NoError(t, err)
		require.NotNil(t, customer)
		assert.Equal(t, "Asha", customer.Name)
		assert.Equal(t, ref.OwnerID, customer.OwnerID)
		assert.Equal(t, ref.ShopID, customer.ShopID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(mockRepo, zerolog.Nop())

		customer, err := service.Create(ctx, ref, &model.CustomerRequest{Name: "   "})

		require.Error(t, err)
		assert.Equal(t, model.ErrCodeValidation, model.ErrorCode(err))
		assert.Nil(t, customer)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(mockRepo, zerolog.Nop())

		mockRepo.On("Create", ctx, ref, mock.AnythingOfType("*model.Customer")).
			Return(errors.New("database error"))

		customer, err := service.Create(ctx, ref, &model.CustomerRequest{Name: "Asha"})

		require.Error(t, err)
		assert.Nil(t, customer)
	})
}

func TestCustomerService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	ref := testRef()
	id := uuid.New()

	mockRepo := new(MockCustomerRepository)
	service := NewCustomerService(mockRepo, zerolog.Nop())

	mockRepo.On("GetByID", ctx, ref, id).Return(nil, nil)

	customer, err := service.GetByID(ctx, ref, id)

	require.Error(t, err)
	assert.Equal(t, model.ErrCustomerNotFound, err)
	assert.Nil(t, customer)
}

func TestCustomerService_Update(t *testing.T) {
	ctx := context.Background()
	ref := testRef()
	id := uuid.New()

	mockRepo := new(MockCustomerRepository)
	service := NewCustomerService(mockRepo, zerolog.Nop())

	existing := &model.Customer{ID: id, OwnerID: ref.OwnerID, ShopID: ref.ShopID, Name: "Asha"}
	mockRepo.On("GetByID", ctx, ref, id).Return(existing, nil)
	mockRepo.On("Update", ctx, ref, mock.AnythingOfType("*model.Customer")).Return(nil)

	customer, err := service.Update(ctx, ref, id, &model.CustomerRequest{
		Name:  "Asha Devi",
		Email: "asha@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Asha Devi", customer.Name)
	assert.Equal(t, "asha@example.com", customer.Email)
	mockRepo.AssertExpectations(t)
}
