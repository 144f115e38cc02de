package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// CardDetails carries the card fields submitted at checkout.
type CardDetails struct {
	Number string
	Expiry string
	CVV    string
}

// OrderService handles checkout and order management.
type OrderService interface {
	// Checkout totals the caller's cart, charges the card through the
	// gateway, creates the order with its items, and clears the cart.
	Checkout(ctx context.Context, userID uint, card CardDetails) (*model.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	userRepo  repository.UserRepository
	gateway   PaymentGateway
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, userRepo repository.UserRepository, gateway PaymentGateway) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		userRepo:  userRepo,
		gateway:   gateway,
	}
}

func (s *orderService) Checkout(ctx context.Context, userID uint, card CardDetails) (*model.Order, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	cartItems, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, errors.ErrEmptyCart
	}

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		line := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
		items = append(items, model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	if err := s.gateway.Charge(ctx, card.Number, card.Expiry, card.CVV, total); err != nil {
		return nil, err
	}

	order := &model.Order{
		UserID:       userID,
		CustomerName: user.Name,
		TotalAmount:  total,
		Status:       model.OrderStatusPending,
		Items:        items,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		// The card was charged and the order persisted. A stale cart is
		// recoverable by the next sync, so the checkout still succeeds.
		log.Printf("clear cart after checkout for user %d: %v", userID, err)
	}

	return order, nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *orderService) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	if !model.ValidOrderStatus(status) {
		return errors.ErrInvalidOrderStatus
	}

	affected, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if affected == 0 {
		return errors.ErrOrderNotFound
	}
	return nil
}
