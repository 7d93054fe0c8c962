package product

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
)

// MockProductRepository is a mock implementation of domain.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCache is a mock implementation of the product service cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetRatingSummary(ctx context.Context, productID uuid.UUID) (*domain.RatingSummary, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingSummary), args.Error(1)
}

func (m *MockCache) SetRatingSummary(ctx context.Context, summary *domain.RatingSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockCache) InvalidateProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func newTestService() (*Service, *MockProductRepository, *MockCache) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockCache)
	service := NewService(mockRepo, mockCache, logger.New("test"))
	return service, mockRepo, mockCache
}

func TestService_Create_Success(t *testing.T) {
	service, mockRepo, _ := newTestService()

	product := &domain.Product{
		Name:  "Pencil",
		Price: 1.99,
	}

	mockRepo.On("Create", mock.Anything, product).Return(nil)

	err := service.Create(context.Background(), product)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_ZeroPrice(t *testing.T) {
	service, mockRepo, _ := newTestService()

	product := &domain.Product{
		Name:  "Pencil",
		Price: 0,
	}

	err := service.Create(context.Background(), product)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "price", validationErr.Field)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_NegativePrice(t *testing.T) {
	service, mockRepo, _ := newTestService()

	product := &domain.Product{
		Name:  "Pencil",
		Price: -5,
	}

	err := service.Create(context.Background(), product)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_EmptyName(t *testing.T) {
	service, mockRepo, _ := newTestService()

	product := &domain.Product{
		Name:  "",
		Price: 9.99,
	}

	err := service.Create(context.Background(), product)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_GetByID_NotFound(t *testing.T) {
	service, mockRepo, _ := newTestService()

	id := uuid.New()
	mockRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	product, err := service.GetByID(context.Background(), id)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestService_List_PassesFilter(t *testing.T) {
	service, mockRepo, _ := newTestService()

	minRating := 4.0
	filter := domain.ProductFilter{
		MinRating:  &minRating,
		OrderBy:    domain.OrderByPrice,
		Descending: false,
	}

	expected := []*domain.Product{
		{ID: uuid.New(), Name: "Pen", Price: 2.5, AvgRating: 4.5, ReviewsCount: 2},
	}
	mockRepo.On("List", mock.Anything, filter).Return(expected, nil)

	products, err := service.List(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_Success(t *testing.T) {
	service, mockRepo, _ := newTestService()

	id := uuid.New()
	product := &domain.Product{
		ID:    id,
		Name:  "Pencil HB",
		Price: 2.49,
	}
	reloaded := &domain.Product{
		ID:           id,
		Name:         "Pencil HB",
		Price:        2.49,
		AvgRating:    4.0,
		ReviewsCount: 2,
	}

	mockRepo.On("Update", mock.Anything, product).Return(nil)
	mockRepo.On("GetByID", mock.Anything, id).Return(reloaded, nil)

	updated, err := service.Update(context.Background(), product)

	assert.NoError(t, err)
	assert.Equal(t, reloaded, updated)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_InvalidPrice(t *testing.T) {
	service, mockRepo, _ := newTestService()

	product := &domain.Product{
		ID:    uuid.New(),
		Name:  "Pencil",
		Price: 0,
	}

	updated, err := service.Update(context.Background(), product)

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Delete_InvalidatesCache(t *testing.T) {
	service, mockRepo, mockCache := newTestService()

	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(nil)
	mockCache.On("InvalidateProduct", mock.Anything, id).Return(nil)

	err := service.Delete(context.Background(), id)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_GetRating_CacheHit(t *testing.T) {
	service, mockRepo, mockCache := newTestService()

	id := uuid.New()
	cached := &domain.RatingSummary{ProductID: id, AvgRating: 4.5, Count: 10}
	mockCache.On("GetRatingSummary", mock.Anything, id).Return(cached, nil)

	summary, err := service.GetRating(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, cached, summary)
	mockRepo.AssertNotCalled(t, "GetByID")
}

func TestService_GetRating_CacheMiss(t *testing.T) {
	service, mockRepo, mockCache := newTestService()

	id := uuid.New()
	product := &domain.Product{ID: id, Name: "Pencil", Price: 1.99, AvgRating: 4.0, ReviewsCount: 2}

	mockCache.On("GetRatingSummary", mock.Anything, id).Return(nil, domain.ErrNotFound)
	mockRepo.On("GetByID", mock.Anything, id).Return(product, nil)
	mockCache.On("SetRatingSummary", mock.Anything, mock.Anything).Return(nil)

	summary, err := service.GetRating(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, id, summary.ProductID)
	assert.Equal(t, 4.0, summary.AvgRating)
	assert.Equal(t, 2, summary.Count)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_GetRating_NoReviews(t *testing.T) {
	service, mockRepo, mockCache := newTestService()

	id := uuid.New()
	product := &domain.Product{ID: id, Name: "Eraser", Price: 0.99}

	mockCache.On("GetRatingSummary", mock.Anything, id).Return(nil, domain.ErrNotFound)
	mockRepo.On("GetByID", mock.Anything, id).Return(product, nil)
	mockCache.On("SetRatingSummary", mock.Anything, mock.Anything).Return(nil)

	summary, err := service.GetRating(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, summary.AvgRating)
	assert.Equal(t, 0, summary.Count)
}

func TestService_GetRating_ProductNotFound(t *testing.T) {
	service, mockRepo, mockCache := newTestService()

	id := uuid.New()
	mockCache.On("GetRatingSummary", mock.Anything, id).Return(nil, domain.ErrNotFound)
	mockRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	summary, err := service.GetRating(context.Background(), id)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
