package product

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
)

// Cache is the slice of the cache layer the product service relies on
type Cache interface {
	GetRatingSummary(ctx context.Context, productID uuid.UUID) (*domain.RatingSummary, error)
	SetRatingSummary(ctx context.Context, summary *domain.RatingSummary) error
	InvalidateProduct(ctx context.Context, productID uuid.UUID) error
}

// Service handles product business logic
type Service struct {
	repo     domain.ProductRepository
	cache    Cache
	validate *validator.Validate
	logger   *logger.Logger
}

// NewService creates a new product service
func NewService(repo domain.ProductRepository, redisCache Cache, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    redisCache,
		validate: validator.New(),
		logger:   log,
	}
}

// validatePrice produces the field-level error for non-positive prices
func validatePrice(price float64) error {
	if price <= 0 {
		return domain.NewValidationError("price", "price must be greater than 0")
	}
	return nil
}

// Create creates a new product
func (s *Service) Create(ctx context.Context, product *domain.Product) error {
	if err := validatePrice(product.Price); err != nil {
		return err
	}
	if err := s.validate.Struct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return domain.ErrInvalidInput
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	}).Info("Product created successfully")

	return nil
}

// GetByID retrieves a product by ID with its aggregates attached
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Product not found: %s", id)
		} else {
			s.logger.Error("Failed to get product", err)
		}
		return nil, err
	}

	return product, nil
}

// List retrieves products matching the filter
func (s *Service) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list products", err)
		return nil, err
	}

	return products, nil
}

// Update updates a product's name and price and returns the fresh entity
func (s *Service) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := validatePrice(product.Price); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return nil, domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", err)
		return nil, err
	}

	// Re-read so the response carries current aggregates
	updated, err := s.repo.GetByID(ctx, product.ID)
	if err != nil {
		s.logger.Error("Failed to reload updated product", err)
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": updated.ID,
		"name":       updated.Name,
	}).Info("Product updated successfully")

	return updated, nil
}

// Delete removes a product and its reviews
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete product", err)
		return err
	}

	if err := s.cache.InvalidateProduct(ctx, id); err != nil {
		s.logger.Warnf("Failed to invalidate cache for product %s: %v", id, err)
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": id,
	}).Info("Product deleted successfully")

	return nil
}

// GetRating returns the aggregate rating for a product, cached with
// recompute-on-miss. Unknown products are ErrNotFound.
func (s *Service) GetRating(ctx context.Context, id uuid.UUID) (*domain.RatingSummary, error) {
	if summary, err := s.cache.GetRatingSummary(ctx, id); err == nil {
		s.logger.Debugf("Rating cache hit for product %s", id)
		return summary, nil
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Product not found: %s", id)
		} else {
			s.logger.Error("Failed to get product for rating", err)
		}
		return nil, err
	}

	summary := &domain.RatingSummary{
		ProductID: product.ID,
		AvgRating: product.AvgRating,
		Count:     product.ReviewsCount,
	}

	if err := s.cache.SetRatingSummary(ctx, summary); err != nil {
		s.logger.Warnf("Failed to cache rating for product %s: %v", id, err)
	}

	return summary, nil
}
