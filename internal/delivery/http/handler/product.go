package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Pesokrava/product_catalog/internal/delivery/http/request"
	"github.com/Pesokrava/product_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
	"github.com/Pesokrava/product_catalog/internal/usecase/product"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service *product.Service
	logger  *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *product.Service, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  log,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name  string  `json:"name" xml:"name" validate:"required,min=1,max=120"`
	Price float64 `json:"price" xml:"price" validate:"required,gt=0"`
}

// UpdateProductRequest represents the request body for a full product update
type UpdateProductRequest struct {
	Name  string  `json:"name" xml:"name" validate:"required,min=1,max=120"`
	Price float64 `json:"price" xml:"price" validate:"required,gt=0"`
}

// PatchProductRequest represents a partial product update; absent fields are
// left unchanged
type PatchProductRequest struct {
	Name  *string  `json:"name,omitempty" xml:"name,omitempty"`
	Price *float64 `json:"price,omitempty" xml:"price,omitempty"`
}

// Create handles POST /api/v1/products
// @Summary Create a new product
// @Description Create a new product with name and price
// @Tags Products
// @Accept json,xml
// @Produce json,xml
// @Param product body CreateProductRequest true "Product details"
// @Success 201 {object} response.Envelope "Product created successfully"
// @Failure 400 {object} response.ErrorBody "Invalid request body"
// @Failure 401 {object} response.ErrorBody "Authentication required"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Security BearerAuth
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := request.Decode(r, &req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	product := &domain.Product{
		Name:  req.Name,
		Price: req.Price,
	}

	if err := h.service.Create(r.Context(), product); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Created(w, r, product)
}

// GetByID handles GET /api/v1/products/:id
// @Summary Get a product by ID
// @Description Get a product including its average rating and review count
// @Tags Products
// @Produce json,xml
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} response.Envelope "Product details"
// @Failure 400 {object} response.ErrorBody "Invalid product ID"
// @Failure 404 {object} response.ErrorBody "Product not found"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Success(w, r, product)
}

// List handles GET /api/v1/products
// @Summary List products
// @Description List products with aggregate ratings. Supports exact name and price filters, a minimum average rating filter, and ordering by created_at, price or name (prefix with - for descending).
// @Tags Products
// @Produce json,xml
// @Param name query string false "Exact name filter"
// @Param price query number false "Exact price filter"
// @Param min_rating query number false "Minimum average rating (non-numeric values are ignored)"
// @Param ordering query string false "Sort column: created_at, price, name; - prefix for descending" default(-created_at)
// @Success 200 {object} response.Envelope "List of products"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := parseProductFilter(r)

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if products == nil {
		products = []*domain.Product{}
	}

	response.Success(w, r, products)
}

// parseProductFilter reads the enumerated query options. Malformed numeric
// values leave the corresponding filter unset rather than failing the
// request.
func parseProductFilter(r *http.Request) domain.ProductFilter {
	filter := domain.ProductFilter{
		OrderBy:    domain.OrderByCreatedAt,
		Descending: true,
	}

	q := r.URL.Query()

	if v := q.Get("name"); v != "" {
		filter.Name = &v
	}
	if v := q.Get("price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.Price = &f
		}
	}
	if v := q.Get("min_rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = &f
		}
	}

	if v := q.Get("ordering"); v != "" {
		desc := strings.HasPrefix(v, "-")
		switch domain.ProductOrder(strings.TrimPrefix(v, "-")) {
		case domain.OrderByPrice:
			filter.OrderBy = domain.OrderByPrice
			filter.Descending = desc
		case domain.OrderByName:
			filter.OrderBy = domain.OrderByName
			filter.Descending = desc
		case domain.OrderByCreatedAt:
			filter.OrderBy = domain.OrderByCreatedAt
			filter.Descending = desc
		}
	}

	return filter
}

// Update handles PUT /api/v1/products/:id
// @Summary Update a product
// @Description Replace a product's name and price
// @Tags Products
// @Accept json,xml
// @Produce json,xml
// @Param id path string true "Product ID (UUID)"
// @Param product body UpdateProductRequest true "Updated product details"
// @Success 200 {object} response.Envelope "Product updated successfully"
// @Failure 400 {object} response.ErrorBody "Invalid request"
// @Failure 401 {object} response.ErrorBody "Authentication required"
// @Failure 404 {object} response.ErrorBody "Product not found"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := request.Decode(r, &req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	product := &domain.Product{
		ID:    id,
		Name:  req.Name,
		Price: req.Price,
	}

	updated, err := h.service.Update(r.Context(), product)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Success(w, r, updated)
}

// Patch handles PATCH /api/v1/products/:id
// @Summary Partially update a product
// @Description Update only the provided product fields
// @Tags Products
// @Accept json,xml
// @Produce json,xml
// @Param id path string true "Product ID (UUID)"
// @Param product body PatchProductRequest true "Fields to update"
// @Success 200 {object} response.Envelope "Product updated successfully"
// @Failure 400 {object} response.ErrorBody "Invalid request"
// @Failure 401 {object} response.ErrorBody "Authentication required"
// @Failure 404 {object} response.ErrorBody "Product not found"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Security BearerAuth
// @Router /products/{id} [patch]
func (h *ProductHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req PatchProductRequest
	if err := request.Decode(r, &req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	existing, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}

	updated, err := h.service.Update(r.Context(), existing)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Success(w, r, updated)
}

// Delete handles DELETE /api/v1/products/:id
// @Summary Delete a product
// @Description Delete a product and all its reviews
// @Tags Products
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Product deleted successfully"
// @Failure 400 {object} response.ErrorBody "Invalid product ID"
// @Failure 401 {object} response.ErrorBody "Authentication required"
// @Failure 404 {object} response.ErrorBody "Product not found"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.NoContent(w)
}

// GetRating handles GET /api/v1/products/:id/rating
// @Summary Get a product's aggregate rating
// @Description Returns the product's average rating and review count; 0.0 and 0 when it has no reviews
// @Tags Products
// @Produce json,xml
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} domain.RatingSummary "Aggregate rating"
// @Failure 400 {object} response.ErrorBody "Invalid product ID"
// @Failure 404 {object} response.ErrorBody "Product not found"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /products/{id}/rating [get]
func (h *ProductHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid product ID")
		return
	}

	summary, err := h.service.GetRating(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Render(w, r, http.StatusOK, summary)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *ProductHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, r, http.StatusNotFound, "Product not found")
	case errors.As(err, &validationErr):
		response.FieldError(w, r, http.StatusBadRequest, validationErr.Field, validationErr.Message)
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, r, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in product handler", err)
		response.Error(w, r, http.StatusInternalServerError, "Internal server error")
	}
}
