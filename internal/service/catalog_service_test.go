package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storefront/internal/errors"
	"storefront/internal/model"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) Upsert(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func TestCatalogService_GetProduct(t *testing.T) {
	t.Run("product found", func(t *testing.T) {
		mockProduct := new(MockProductRepository)
		mockProduct.On("FindByID", mock.Anything, uint(10)).Return(&model.Product{
			ID:    10,
			Name:  "Classic Tee",
			Price: decimal.NewFromFloat(19.99),
		}, nil)

		service := NewCatalogService(mockProduct, new(MockCategoryRepository), nil)
		product, err := service.GetProduct(context.Background(), 10)

		assert.NoError(t, err)
		assert.Equal(t, "Classic Tee", product.Name)
		mockProduct.AssertExpectations(t)
	})

	t.Run("product not found", func(t *testing.T) {
		mockProduct := new(MockProductRepository)
		mockProduct.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewCatalogService(mockProduct, new(MockCategoryRepository), nil)
		product, err := service.GetProduct(context.Background(), 99)

		assert.Equal(t, errors.ErrProductNotFound, err)
		assert.Nil(t, product)
	})
}

func TestCatalogService_CachedProductKeepsCategory(t *testing.T) {
	categoryID := uint(1)
	product := &model.Product{
		ID:         10,
		Name:       "Classic Tee",
		Price:      decimal.NewFromFloat(19.99),
		CategoryID: &categoryID,
		Category:   &model.Category{ID: 1, Slug: "t-shirts", Name: "T-Shirts"},
	}

	payload, err := encodeCachedProduct(product)
	assert.NoError(t, err)

	cached, ok := decodeCachedProduct(payload)
	assert.True(t, ok)
	// The relation is excluded from API JSON, so the cache payload must carry
	// it explicitly or hits and misses would report different category names.
	assert.Equal(t, "T-Shirts", cached.CategoryName())
	assert.Equal(t, product.Name, cached.Name)
	assert.True(t, cached.Price.Equal(product.Price))
}

func TestCatalogService_CreateProduct(t *testing.T) {
	mockProduct := new(MockProductRepository)
	mockProduct.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	categoryID := uint(3)
	service := NewCatalogService(mockProduct, new(MockCategoryRepository), nil)
	product, err := service.CreateProduct(context.Background(), ProductInput{
		Name:        "Classic Tee",
		Description: "Plain cotton t-shirt.",
		Price:       decimal.NewFromFloat(19.99),
		Stock:       100,
		CategoryID:  &categoryID,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Classic Tee", product.Name)
	assert.Equal(t, 100, product.Stock)
	assert.Equal(t, &categoryID, product.CategoryID)
	mockProduct.AssertExpectations(t)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	t.Run("fields replaced", func(t *testing.T) {
		mockProduct := new(MockProductRepository)
		mockProduct.On("FindByID", mock.Anything, uint(10)).Return(&model.Product{
			ID:    10,
			Name:  "Classic Tee",
			Price: decimal.NewFromFloat(19.99),
			Stock: 100,
		}, nil)
		mockProduct.On("Update", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

		service := NewCatalogService(mockProduct, new(MockCategoryRepository), nil)
		product, err := service.UpdateProduct(context.Background(), 10, ProductInput{
			Name:  "Classic Tee v2",
			Price: decimal.NewFromFloat(21.99),
			Stock: 80,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Classic Tee v2", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromFloat(21.99)))
		assert.Equal(t, 80, product.Stock)
		mockProduct.AssertExpectations(t)
	})

	t.Run("absent product reported", func(t *testing.T) {
		mockProduct := new(MockProductRepository)
		mockProduct.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewCatalogService(mockProduct, new(MockCategoryRepository), nil)
		product, err := service.UpdateProduct(context.Background(), 99, ProductInput{Name: "x"})

		assert.Equal(t, errors.ErrProductNotFound, err)
		assert.Nil(t, product)
	})
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	// Delete is idempotent: the repository reports no error for an absent ID,
	// and the service passes that through.
	mockProduct := new(MockProductRepository)
	mockProduct.On("Delete", mock.Anything, uint(99)).Return(nil)

	service := NewCatalogService(mockProduct, new(MockCategoryRepository), nil)
	assert.NoError(t, service.DeleteProduct(context.Background(), 99))
	mockProduct.AssertExpectations(t)
}

func TestCatalogService_ListCategories(t *testing.T) {
	mockCategory := new(MockCategoryRepository)
	mockCategory.On("List", mock.Anything).Return([]model.Category{
		{ID: 1, Slug: "t-shirts", Name: "T-Shirts"},
		{ID: 2, Slug: "hoodies", Name: "Hoodies"},
	}, nil)

	service := NewCatalogService(new(MockProductRepository), mockCategory, nil)
	categories, err := service.ListCategories(context.Background())

	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	mockCategory.AssertExpectations(t)
}
