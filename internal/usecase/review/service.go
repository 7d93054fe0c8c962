package review

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// Cache is the slice of the cache layer the review service relies on
type Cache interface {
	GetReviewsList(ctx context.Context, productID uuid.UUID) ([]*domain.Review, error)
	SetReviewsList(ctx context.Context, productID uuid.UUID, reviews []*domain.Review) error
	InvalidateProduct(ctx context.Context, productID uuid.UUID) error
}

// ReviewEvent represents a review lifecycle event. Rating carries the
// product's aggregate recomputed after the mutation.
type ReviewEvent struct {
	EventType string                `json:"event_type"`
	Timestamp time.Time             `json:"timestamp"`
	ProductID uuid.UUID             `json:"product_id"`
	Review    *domain.Review        `json:"review"`
	Rating    *domain.RatingSummary `json:"rating,omitempty"`
}

// Service handles review business logic with caching and event publishing
type Service struct {
	repo      domain.ReviewRepository
	products  domain.ProductRepository
	cache     Cache
	publisher EventPublisher
	validate  *validator.Validate
	logger    *logger.Logger
}

// NewService creates a new review service
func NewService(
	repo domain.ReviewRepository,
	products domain.ProductRepository,
	redisCache Cache,
	publisher EventPublisher,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:      repo,
		products:  products,
		cache:     redisCache,
		publisher: publisher,
		validate:  validator.New(),
		logger:    log,
	}
}

// validateRating produces the field-level error for out-of-range ratings
func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return domain.NewValidationError("rating", "rating must be between 1 and 5")
	}
	return nil
}

// Create creates a new review. The caller's identity must already be set on
// review.UserID; it is never taken from the request body. The duplicate
// pre-check produces a friendly message, the unique constraint arbitrates
// under race.
func (s *Service) Create(ctx context.Context, review *domain.Review) error {
	if err := validateRating(review.Rating); err != nil {
		return err
	}
	if err := s.validate.Struct(review); err != nil {
		s.logger.Error("Review validation failed", err)
		return domain.ErrInvalidInput
	}

	exists, err := s.repo.ExistsByProductAndUser(ctx, review.ProductID, review.UserID)
	if err != nil {
		s.logger.Error("Failed to check for existing review", err)
		return err
	}
	if exists {
		return domain.ErrAlreadyReviewed
	}

	if err := s.repo.Create(ctx, review); err != nil {
		s.logger.Error("Failed to create review", err)
		return err
	}

	// Stale cache would show incorrect ratings and review lists
	if err := s.cache.InvalidateProduct(ctx, review.ProductID); err != nil {
		s.logger.Warnf("Failed to invalidate cache for product %s: %v", review.ProductID, err)
	}

	s.publishEvent(ctx, "review.created", review)

	s.logger.WithFields(map[string]interface{}{
		"review_id":  review.ID,
		"product_id": review.ProductID,
		"user_id":    review.UserID,
		"rating":     review.Rating,
	}).Info("Review created successfully")

	return nil
}

// GetByID retrieves a review by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Review not found: %s", id)
		} else {
			s.logger.Error("Failed to get review", err)
		}
		return nil, err
	}

	return review, nil
}

// List retrieves all reviews across all products, newest first
func (s *Service) List(ctx context.Context) ([]*domain.Review, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list reviews", err)
		return nil, err
	}

	return reviews, nil
}

// GetByProductID retrieves a product's reviews, newest first, with caching.
// An unknown product is ErrNotFound.
func (s *Service) GetByProductID(ctx context.Context, productID uuid.UUID) ([]*domain.Review, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	reviews, err := s.cache.GetReviewsList(ctx, productID)
	if err == nil {
		s.logger.Debugf("Cache hit for product %s reviews", productID)
		return reviews, nil
	}

	s.logger.Debugf("Cache miss for product %s reviews", productID)
	reviews, err = s.repo.ListByProductID(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to get reviews by product ID", err)
		return nil, err
	}

	if err := s.cache.SetReviewsList(ctx, productID, reviews); err != nil {
		s.logger.Warnf("Failed to cache reviews for product %s: %v", productID, err)
	}

	return reviews, nil
}

// Update updates a review. Only the authoring user may do this; anyone else
// gets ErrForbidden.
func (s *Service) Update(ctx context.Context, actorID uuid.UUID, review *domain.Review) error {
	if err := validateRating(review.Rating); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, review.ID)
	if err != nil {
		s.logger.Error("Failed to get existing review", err)
		return err
	}

	if existing.UserID != actorID {
		s.logger.WithFields(map[string]interface{}{
			"review_id": review.ID,
			"owner_id":  existing.UserID,
			"actor_id":  actorID,
		}).Warnf("Non-owner attempted to update review %s", review.ID)
		return domain.ErrForbidden
	}

	// Authorship and product binding are immutable
	review.ProductID = existing.ProductID
	review.UserID = existing.UserID
	review.UserName = existing.UserName

	if err := s.validate.Struct(review); err != nil {
		s.logger.Error("Review validation failed", err)
		return domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, review); err != nil {
		s.logger.Error("Failed to update review", err)
		return err
	}

	if err := s.cache.InvalidateProduct(ctx, review.ProductID); err != nil {
		s.logger.Warnf("Failed to invalidate cache for product %s: %v", review.ProductID, err)
	}

	s.publishEvent(ctx, "review.updated", review)

	s.logger.WithFields(map[string]interface{}{
		"review_id":  review.ID,
		"product_id": review.ProductID,
		"rating":     review.Rating,
	}).Info("Review updated successfully")

	return nil
}

// Delete removes a review. Only the authoring user may do this.
func (s *Service) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get review for deletion", err)
		return err
	}

	if review.UserID != actorID {
		s.logger.WithFields(map[string]interface{}{
			"review_id": id,
			"owner_id":  review.UserID,
			"actor_id":  actorID,
		}).Warnf("Non-owner attempted to delete review %s", id)
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete review", err)
		return err
	}

	if err := s.cache.InvalidateProduct(ctx, review.ProductID); err != nil {
		s.logger.Warnf("Failed to invalidate cache for product %s: %v", review.ProductID, err)
	}

	s.publishEvent(ctx, "review.deleted", review)

	s.logger.WithFields(map[string]interface{}{
		"review_id":  id,
		"product_id": review.ProductID,
	}).Info("Review deleted successfully")

	return nil
}

// publishEvent publishes a review event (non-blocking). The aggregate is
// recomputed so consumers see the product's rating after the mutation.
func (s *Service) publishEvent(ctx context.Context, eventType string, review *domain.Review) {
	event := ReviewEvent{
		EventType: eventType,
		Timestamp: time.Now(),
		ProductID: review.ProductID,
		Review:    review,
	}

	if summary, err := s.repo.AggregateByProductID(ctx, review.ProductID); err == nil {
		event.Rating = summary
	} else {
		s.logger.Warnf("Failed to aggregate rating for event on product %s: %v", review.ProductID, err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal event for review %s", review.ID)
		return
	}

	// Publish in background to avoid blocking the request
	go func() {
		if err := s.publisher.Publish(context.Background(), "reviews.events", data); err != nil {
			s.logger.Errorf(err, "Failed to publish event for review %s", review.ID)
		}
	}()
}
