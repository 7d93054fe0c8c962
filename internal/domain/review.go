package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Review represents a product review authored by a user. UserName is a
// read-only display label resolved from the users table; authorship is
// tracked by UserID and is never taken from client input.
type Review struct {
	ID        uuid.UUID `json:"id" db:"id" xml:"id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id" xml:"product_id" validate:"required"`
	UserID    uuid.UUID `json:"user_id" db:"user_id" xml:"user_id"`
	UserName  string    `json:"user" db:"user_name" xml:"user"`
	Rating    int       `json:"rating" db:"rating" xml:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" db:"comment" xml:"comment" validate:"max=500"`
	CreatedAt time.Time `json:"created_at" db:"created_at" xml:"created_at"`
}

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	// Create creates a new review. A (product, user) uniqueness violation is
	// reported as ErrAlreadyReviewed; an unknown product as ErrNotFound.
	Create(ctx context.Context, review *Review) error

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id uuid.UUID) (*Review, error)

	// List retrieves all reviews across all products, newest first
	List(ctx context.Context) ([]*Review, error)

	// ListByProductID retrieves reviews for a product, newest first
	ListByProductID(ctx context.Context, productID uuid.UUID) ([]*Review, error)

	// Update updates a review's rating and comment
	Update(ctx context.Context, review *Review) error

	// Delete removes a review
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByProductAndUser reports whether the user already reviewed the product
	ExistsByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (bool, error)

	// AggregateByProductID computes the rating summary for one product,
	// zero-valued when the product has no reviews
	AggregateByProductID(ctx context.Context, productID uuid.UUID) (*RatingSummary, error)
}
