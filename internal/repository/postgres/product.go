package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Pesokrava/product_catalog/internal/domain"
)

// ProductRepository implements domain.ProductRepository for PostgreSQL
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productAggregateSelect = `
	SELECT p.id, p.name, p.price, p.created_at,
	       COALESCE(AVG(r.rating), 0)::float8 AS avg_rating,
	       COUNT(r.id)::int AS reviews_count
	FROM products p
	LEFT JOIN reviews r ON r.product_id = p.id
`

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (name, price)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(
		ctx,
		query,
		product.Name,
		product.Price,
	).Scan(
		&product.ID,
		&product.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a product by ID with its aggregates attached
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := productAggregateSelect + `
		WHERE p.id = $1
		GROUP BY p.id
	`

	var product domain.Product
	err := r.db.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &product, nil
}

// List retrieves products matching the filter. Aggregates are computed in a
// single grouped pass over the reviews table, so the result set costs one
// round trip regardless of its size.
func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	query := productAggregateSelect

	var args []interface{}
	var conds []string

	if filter.Name != nil {
		args = append(args, *filter.Name)
		conds = append(conds, fmt.Sprintf("p.name = $%d", len(args)))
	}
	if filter.Price != nil {
		args = append(args, *filter.Price)
		conds = append(conds, fmt.Sprintf("p.price = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " GROUP BY p.id"

	if filter.MinRating != nil {
		args = append(args, *filter.MinRating)
		query += fmt.Sprintf(" HAVING COALESCE(AVG(r.rating), 0) >= $%d", len(args))
	}

	query += " ORDER BY " + orderClause(filter)

	var products []*domain.Product
	err := r.db.SelectContext(ctx, &products, query, args...)
	if err != nil {
		return nil, err
	}

	return products, nil
}

// orderClause maps the enumerated sort options to SQL. Only whitelisted
// columns ever reach the query string.
func orderClause(filter domain.ProductFilter) string {
	column := "p.created_at"
	switch filter.OrderBy {
	case domain.OrderByPrice:
		column = "p.price"
	case domain.OrderByName:
		column = "p.name"
	case domain.OrderByCreatedAt:
		column = "p.created_at"
	}

	if filter.Descending {
		return column + " DESC"
	}
	return column + " ASC"
}

// Update updates a product's name and price. created_at is immutable.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $1, price = $2
		WHERE id = $3
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(
		ctx,
		query,
		product.Name,
		product.Price,
		product.ID,
	).Scan(&product.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	return nil
}

// Delete removes a product; the reviews FK cascade removes its reviews
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

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
