package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Pesokrava/product_catalog/internal/domain"
)

// ReviewRepository implements domain.ReviewRepository for PostgreSQL
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new PostgreSQL review repository
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewSelect = `
	SELECT r.id, r.product_id, r.user_id, u.username AS user_name,
	       r.rating, r.comment, r.created_at
	FROM reviews r
	JOIN users u ON u.id = r.user_id
`

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// Create creates a new review. The (product_id, user_id) unique constraint is
// the arbiter under concurrent creation; a violation surfaces as
// ErrAlreadyReviewed.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	// Return domain.ErrNotFound instead of a cryptic foreign key violation
	var exists bool
	checkQuery := `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`
	err := r.db.GetContext(ctx, &exists, checkQuery, review.ProductID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	query := `
		INSERT INTO reviews (product_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err = r.db.QueryRowxContext(
		ctx,
		query,
		review.ProductID,
		review.UserID,
		review.Rating,
		review.Comment,
	).Scan(
		&review.ID,
		&review.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyReviewed
		}
		return err
	}

	return nil
}

// GetByID retrieves a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	query := reviewSelect + ` WHERE r.id = $1`

	var review domain.Review
	err := r.db.GetContext(ctx, &review, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &review, nil
}

// List retrieves all reviews across all products, newest first
func (r *ReviewRepository) List(ctx context.Context) ([]*domain.Review, error) {
	query := reviewSelect + ` ORDER BY r.created_at DESC`

	var reviews []*domain.Review
	err := r.db.SelectContext(ctx, &reviews, query)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// ListByProductID retrieves reviews for a product, newest first
func (r *ReviewRepository) ListByProductID(ctx context.Context, productID uuid.UUID) ([]*domain.Review, error) {
	query := reviewSelect + `
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC
	`

	var reviews []*domain.Review
	err := r.db.SelectContext(ctx, &reviews, query, productID)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// Update updates a review's rating and comment
func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	query := `
		UPDATE reviews
		SET rating = $1, comment = $2
		WHERE id = $3
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(
		ctx,
		query,
		review.Rating,
		review.Comment,
		review.ID,
	).Scan(&review.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	return nil
}

// Delete removes a review
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// ExistsByProductAndUser reports whether the user already reviewed the product
func (r *ReviewRepository) ExistsByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reviews WHERE product_id = $1 AND user_id = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, productID, userID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// AggregateByProductID computes the rating summary for one product. Products
// without reviews aggregate to 0.0 / 0.
func (r *ReviewRepository) AggregateByProductID(ctx context.Context, productID uuid.UUID) (*domain.RatingSummary, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0)::float8 AS avg_rating,
		       COUNT(id)::int AS count
		FROM reviews
		WHERE product_id = $1
	`

	summary := domain.RatingSummary{ProductID: productID}
	err := r.db.QueryRowxContext(ctx, query, productID).Scan(&summary.AvgRating, &summary.Count)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
