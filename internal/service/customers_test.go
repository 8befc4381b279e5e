package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nattawat-k/storefront-service/internal/domain/model"
	"github.com/nattawat-k/storefront-service/internal/mocks"
)

// TestCustomerService_List tests customer search.
func TestCustomerService_List(t *testing.T) {
	t.Run("passes the search term through", func(t *testing.T) {
		mockRepo := new(mocks.MockCustomersRepositoryInterface)
		mockRepo.On("List", mock.Anything, "สมชาย").
			Return([]model.Customer{{Name: "คุณสมชาย"}}, nil)

		svc := NewCustomerService(mockRepo)
		customers, err := svc.List(context.Background(), "สมชาย")

		require.NoError(t, err)
		assert.Len(t, customers, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		mockRepo := new(mocks.MockCustomersRepositoryInterface)
		mockRepo.On("List", mock.Anything, "").Return(nil, errors.New("read failed"))

		svc := NewCustomerService(mockRepo)
		_, err := svc.List(context.Background(), "")

		assert.Error(t, err)
	})

	t.Run("fails without a repository", func(t *testing.T) {
		svc := NewCustomerService(nil)

		_, err := svc.List(context.Background(), "")

		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}

// TestCustomerService_Get tests single-customer lookup.
func TestCustomerService_Get(t *testing.T) {
	id := primitive.NewObjectID()

	mockRepo := new(mocks.MockCustomersRepositoryInterface)
	mockRepo.On("GetByID", mock.Anything, id).Return(&model.Customer{ID: id}, nil)

	svc := NewCustomerService(mockRepo)
	customer, err := svc.Get(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, customer.ID)
}

// TestCustomerService_Create tests customer creation.
func TestCustomerService_Create(t *testing.T) {
	mockRepo := new(mocks.MockCustomersRepositoryInterface)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Customer")).
		Return(&model.Customer{Name: "คุณสมชาย"}, nil)

	svc := NewCustomerService(mockRepo)
	customer, err := svc.Create(context.Background(), model.Customer{Name: "คุณสมชาย"})

	require.NoError(t, err)
	assert.Equal(t, "คุณสมชาย", customer.Name)
}

// TestCustomerService_Update tests customer updates.
func TestCustomerService_Update(t *testing.T) {
	id := primitive.NewObjectID()

	mockRepo := new(mocks.MockCustomersRepositoryInterface)
	mockRepo.On("Update", mock.Anything, id, mock.AnythingOfType("model.Customer")).
		Return(&model.Customer{ID: id, Phone: "0812345678"}, nil)

	svc := NewCustomerService(mockRepo)
	customer, err := svc.Update(context.Background(), id, model.Customer{Phone: "0812345678"})

	require.NoError(t, err)
	assert.Equal(t, "0812345678", customer.Phone)
}
