package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storefront/internal/errors"
	"storefront/internal/model"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

var validCard = CardDetails{
	Number: "4242 4242 4242 4242",
	Expiry: "12/30",
	CVV:    "123",
}

func TestOrderService_Checkout(t *testing.T) {
	user := &model.User{ID: 1, Email: "test@example.com", Name: "Test User"}

	t.Run("successful checkout", func(t *testing.T) {
		mockOrder := new(MockOrderRepository)
		mockCart := new(MockCartRepository)
		mockUser := new(MockUserRepository)

		mockUser.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
		mockCart.On("ListByUser", mock.Anything, uint(1)).Return([]model.CartItem{
			{ID: 1, UserID: 1, ProductID: 10, Name: "Classic Tee", Price: decimal.NewFromFloat(19.99), Quantity: 2},
			{ID: 2, UserID: 1, ProductID: 11, Name: "Cap", Price: decimal.NewFromFloat(14.50), Quantity: 1},
		}, nil)
		mockOrder.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
		mockCart.On("Clear", mock.Anything, uint(1)).Return(nil)

		service := NewOrderService(mockOrder, mockCart, mockUser, NewStubGateway())
		order, err := service.Checkout(context.Background(), 1, validCard)

		assert.NoError(t, err)
		assert.NotNil(t, order)
		// 2 * 19.99 + 14.50
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(54.48)))
		assert.Equal(t, model.OrderStatusPending, order.Status)
		assert.Equal(t, "Test User", order.CustomerName)
		assert.Len(t, order.Items, 2)

		mockOrder.AssertExpectations(t)
		mockCart.AssertExpectations(t)
		mockUser.AssertExpectations(t)
	})

	t.Run("empty cart rejected before charging", func(t *testing.T) {
		mockOrder := new(MockOrderRepository)
		mockCart := new(MockCartRepository)
		mockUser := new(MockUserRepository)

		mockUser.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
		mockCart.On("ListByUser", mock.Anything, uint(1)).Return([]model.CartItem{}, nil)

		service := NewOrderService(mockOrder, mockCart, mockUser, NewStubGateway())
		order, err := service.Checkout(context.Background(), 1, validCard)

		assert.Equal(t, errors.ErrEmptyCart, err)
		assert.Nil(t, order)
		mockOrder.AssertNotCalled(t, "Create")
	})

	t.Run("invalid card leaves the cart untouched", func(t *testing.T) {
		mockOrder := new(MockOrderRepository)
		mockCart := new(MockCartRepository)
		mockUser := new(MockUserRepository)

		mockUser.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
		mockCart.On("ListByUser", mock.Anything, uint(1)).Return([]model.CartItem{
			{ID: 1, UserID: 1, ProductID: 10, Name: "Classic Tee", Price: decimal.NewFromFloat(19.99), Quantity: 1},
		}, nil)

		service := NewOrderService(mockOrder, mockCart, mockUser, NewStubGateway())
		order, err := service.Checkout(context.Background(), 1, CardDetails{
			Number: "1234 5678 9012 3456",
			Expiry: "12/30",
			CVV:    "123",
		})

		assert.Equal(t, errors.ErrInvalidCard, err)
		assert.Nil(t, order)
		mockOrder.AssertNotCalled(t, "Create")
		mockCart.AssertNotCalled(t, "Clear")
	})

	t.Run("unknown user rejected", func(t *testing.T) {
		mockOrder := new(MockOrderRepository)
		mockCart := new(MockCartRepository)
		mockUser := new(MockUserRepository)

		mockUser.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		service := NewOrderService(mockOrder, mockCart, mockUser, NewStubGateway())
		order, err := service.Checkout(context.Background(), 9, validCard)

		assert.Equal(t, errors.ErrUserNotFound, err)
		assert.Nil(t, order)
	})

	t.Run("cart clear failure does not fail the checkout", func(t *testing.T) {
		mockOrder := new(MockOrderRepository)
		mockCart := new(MockCartRepository)
		mockUser := new(MockUserRepository)

		mockUser.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
		mockCart.On("ListByUser", mock.Anything, uint(1)).Return([]model.CartItem{
			{ID: 1, UserID: 1, ProductID: 10, Name: "Classic Tee", Price: decimal.NewFromFloat(19.99), Quantity: 1},
		}, nil)
		mockOrder.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
		mockCart.On("Clear", mock.Anything, uint(1)).Return(assert.AnError)

		service := NewOrderService(mockOrder, mockCart, mockUser, NewStubGateway())
		order, err := service.Checkout(context.Background(), 1, validCard)

		// The card was charged and the order persisted; a retry would
		// duplicate the order, so the client must see success.
		assert.NoError(t, err)
		assert.NotNil(t, order)
		assert.Equal(t, model.OrderStatusPending, order.Status)
	})
}

func TestOrderService_Get(t *testing.T) {
	id := uuid.New()

	t.Run("order found", func(t *testing.T) {
		mockOrder := new(MockOrderRepository)
		mockOrder.On("FindByID", mock.Anything, id).Return(&model.Order{
			ID:     id,
			UserID: 1,
			Status: model.OrderStatusPending,
		}, nil)

		service := NewOrderService(mockOrder, new(MockCartRepository), new(MockUserRepository), NewStubGateway())
		order, err := service.Get(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, id, order.ID)
	})

	t.Run("order not found", func(t *testing.T) {
		mockOrder := new(MockOrderRepository)
		mockOrder.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		service := NewOrderService(mockOrder, new(MockCartRepository), new(MockUserRepository), NewStubGateway())
		order, err := service.Get(context.Background(), id)

		assert.Equal(t, errors.ErrOrderNotFound, err)
		assert.Nil(t, order)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name          string
		status        model.OrderStatus
		setupMock     func(*MockOrderRepository)
		expectedError error
	}{
		{
			name:   "valid transition",
			status: model.OrderStatusShipped,
			setupMock: func(m *MockOrderRepository) {
				m.On("UpdateStatus", mock.Anything, id, model.OrderStatusShipped).Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name:          "unknown status rejected",
			status:        model.OrderStatus("Delivered"),
			setupMock:     func(m *MockOrderRepository) {},
			expectedError: errors.ErrInvalidOrderStatus,
		},
		{
			name:   "absent order reported",
			status: model.OrderStatusCancelled,
			setupMock: func(m *MockOrderRepository) {
				m.On("UpdateStatus", mock.Anything, id, model.OrderStatusCancelled).Return(int64(0), nil)
			},
			expectedError: errors.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrder := new(MockOrderRepository)
			tt.setupMock(mockOrder)

			service := NewOrderService(mockOrder, new(MockCartRepository), new(MockUserRepository), NewStubGateway())
			err := service.UpdateStatus(context.Background(), id, tt.status)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockOrder.AssertExpectations(t)
		})
	}
}
