package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Pesokrava/product_catalog/internal/domain"
)

// RedisCache caches per-product rating summaries and review lists. Entries
// are invalidated on every review mutation so reads stay consistent with the
// review set.
type RedisCache struct {
	client           *redis.Client
	productRatingTTL time.Duration
	reviewsListTTL   time.Duration
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(client *redis.Client, productRatingTTL, reviewsListTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:           client,
		productRatingTTL: productRatingTTL,
		reviewsListTTL:   reviewsListTTL,
	}
}

func (c *RedisCache) ratingKey(productID uuid.UUID) string {
	return fmt.Sprintf("product:%s:rating", productID.String())
}

func (c *RedisCache) reviewsKey(productID uuid.UUID) string {
	return fmt.Sprintf("product:%s:reviews", productID.String())
}

// GetRatingSummary retrieves a cached rating summary
func (c *RedisCache) GetRatingSummary(ctx context.Context, productID uuid.UUID) (*domain.RatingSummary, error) {
	val, err := c.client.Get(ctx, c.ratingKey(productID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var summary domain.RatingSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// SetRatingSummary stores a rating summary in cache
func (c *RedisCache) SetRatingSummary(ctx context.Context, summary *domain.RatingSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.ratingKey(summary.ProductID), data, c.productRatingTTL).Err()
}

// GetReviewsList retrieves the cached review list for a product
func (c *RedisCache) GetReviewsList(ctx context.Context, productID uuid.UUID) ([]*domain.Review, error) {
	val, err := c.client.Get(ctx, c.reviewsKey(productID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var reviews []*domain.Review
	if err := json.Unmarshal([]byte(val), &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

// SetReviewsList stores a product's review list in cache
func (c *RedisCache) SetReviewsList(ctx context.Context, productID uuid.UUID, reviews []*domain.Review) error {
	data, err := json.Marshal(reviews)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.reviewsKey(productID), data, c.reviewsListTTL).Err()
}

// InvalidateProduct removes all cached entries for a product
func (c *RedisCache) InvalidateProduct(ctx context.Context, productID uuid.UUID) error {
	err := c.client.Unlink(ctx, c.ratingKey(productID), c.reviewsKey(productID)).Err()
	if err != nil && err != redis.Nil {
		return err
	}
	return nil
}
