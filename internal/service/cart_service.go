package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// CartService handles per-user cart operations.
type CartService interface {
	// Get returns the user's cart, dropping structurally invalid rows from
	// the response. Invalid rows are logged, not repaired.
	Get(ctx context.Context, userID uint) ([]model.CartItem, error)
	// Sync replaces the user's cart with the supplied items. Invalid items
	// are filtered out before insert; an empty slice empties the cart.
	Sync(ctx context.Context, userID uint, items []model.CartItem) ([]model.CartItem, error)
	AddItem(ctx context.Context, userID, productID uint, quantity int) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID uint) error
	Clear(ctx context.Context, userID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartService) Get(ctx context.Context, userID uint) ([]model.CartItem, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}

	valid := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		if !item.Valid() {
			log.Printf("dropping invalid cart row %d for user %d", item.ID, userID)
			continue
		}
		valid = append(valid, item)
	}
	return valid, nil
}

func (s *cartService) Sync(ctx context.Context, userID uint, items []model.CartItem) ([]model.CartItem, error) {
	valid := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		if !item.Valid() {
			log.Printf("filtering invalid cart item for user %d: %+v", userID, item)
			continue
		}
		valid = append(valid, item)
	}

	if err := s.cartRepo.ReplaceAll(ctx, userID, valid); err != nil {
		return nil, fmt.Errorf("replace cart: %w", err)
	}
	return valid, nil
}

// AddItem puts a product in the cart, incrementing quantity when the product
// is already present. Name and price are snapshotted from the catalog row.
func (s *cartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, errors.ErrInvalidQuantity
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	existing, err := s.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	if err == nil {
		existing.Quantity += quantity
		if err := s.cartRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update cart item: %w", err)
		}
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	item := &model.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}
	return item, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, errors.ErrInvalidQuantity
	}

	item, err := s.cartRepo.FindByUserAndID(ctx, userID, itemID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	item.Quantity = quantity
	if err := s.cartRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	return item, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	affected, err := s.cartRepo.DeleteByUserAndID(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if affected == 0 {
		return errors.ErrCartItemNotFound
	}
	return nil
}

func (s *cartService) Clear(ctx context.Context, userID uint) error {
	return s.cartRepo.Clear(ctx, userID)
}
