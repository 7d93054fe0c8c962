package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Product represents a sellable product in the catalog.
// AvgRating and ReviewsCount are computed from the review set at query time
// and are never stored on the product row.
type Product struct {
	ID           uuid.UUID `json:"id" db:"id" xml:"id"`
	Name         string    `json:"name" db:"name" xml:"name" validate:"required,min=1,max=120"`
	Price        float64   `json:"price" db:"price" xml:"price" validate:"required,gt=0"`
	AvgRating    float64   `json:"avg_rating" db:"avg_rating" xml:"avg_rating"`
	ReviewsCount int       `json:"reviews_count" db:"reviews_count" xml:"reviews_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" xml:"created_at"`
}

// ProductOrder enumerates the columns products can be sorted by
type ProductOrder string

const (
	OrderByCreatedAt ProductOrder = "created_at"
	OrderByPrice     ProductOrder = "price"
	OrderByName      ProductOrder = "name"
)

// ProductFilter holds the enumerated filter and sort options for listing
// products. Nil pointers mean the filter is not applied.
type ProductFilter struct {
	Name       *string
	Price      *float64
	MinRating  *float64
	OrderBy    ProductOrder
	Descending bool
}

// RatingSummary is the aggregate rating of a single product
type RatingSummary struct {
	ProductID uuid.UUID `json:"product_id" db:"product_id" xml:"product_id"`
	AvgRating float64   `json:"avg_rating" db:"avg_rating" xml:"avg_rating"`
	Count     int       `json:"count" db:"count" xml:"count"`
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// Create creates a new product
	Create(ctx context.Context, product *Product) error

	// GetByID retrieves a product by ID with its aggregates attached
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// List retrieves products matching the filter, aggregates computed in a
	// single grouped pass over the review set
	List(ctx context.Context, filter ProductFilter) ([]*Product, error)

	// Update updates a product's name and price
	Update(ctx context.Context, product *Product) error

	// Delete removes a product; its reviews go with it
	Delete(ctx context.Context, id uuid.UUID) error
}
