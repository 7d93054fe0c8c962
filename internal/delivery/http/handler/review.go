package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Pesokrava/product_catalog/internal/delivery/http/middleware"
	"github.com/Pesokrava/product_catalog/internal/delivery/http/request"
	"github.com/Pesokrava/product_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
	"github.com/Pesokrava/product_catalog/internal/usecase/review"
)

// ReviewHandler handles HTTP requests for reviews
type ReviewHandler struct {
	service *review.Service
	logger  *logger.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *review.Service, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  log,
	}
}

// CreateReviewRequest represents the request body for creating a review. The
// author is always the authenticated caller; it cannot be supplied here.
type CreateReviewRequest struct {
	ProductID string `json:"product_id" xml:"product_id" validate:"required"`
	Rating    int    `json:"rating" xml:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" xml:"comment" validate:"max=500"`
}

// UpdateReviewRequest represents the request body for a full review update
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" xml:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" xml:"comment" validate:"max=500"`
}

// PatchReviewRequest represents a partial review update
type PatchReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" xml:"rating,omitempty"`
	Comment *string `json:"comment,omitempty" xml:"comment,omitempty"`
}

// Create handles POST /api/v1/reviews
// @Summary Create a review
// @Description Create a review for a product. One review per user per product; the author is taken from the access token.
// @Tags Reviews
// @Accept json,xml
// @Produce json,xml
// @Param review body CreateReviewRequest true "Review details"
// @Success 201 {object} response.Envelope "Review created successfully"
// @Failure 400 {object} response.ErrorBody "Invalid body, rating out of range or duplicate review"
// @Failure 401 {object} response.ErrorBody "Authentication required"
// @Failure 404 {object} response.ErrorBody "Product not found"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Security BearerAuth
// @Router /reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateReviewRequest
	if err := request.Decode(r, &req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid product ID")
		return
	}

	review := &domain.Review{
		ProductID: productID,
		UserID:    identity.UserID,
		UserName:  identity.Username,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := h.service.Create(r.Context(), review); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Created(w, r, review)
}

// GetByID handles GET /api/v1/reviews/:id
// @Summary Get a review by ID
// @Tags Reviews
// @Produce json,xml
// @Param id path string true "Review ID (UUID)"
// @Success 200 {object} response.Envelope "Review details"
// @Failure 400 {object} response.ErrorBody "Invalid review ID"
// @Failure 404 {object} response.ErrorBody "Review not found"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid review ID")
		return
	}

	review, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Success(w, r, review)
}

// List handles GET /api/v1/reviews
// @Summary List all reviews
// @Description All reviews across all products, newest first
// @Tags Reviews
// @Produce json,xml
// @Success 200 {object} response.Envelope "List of reviews"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /reviews [get]
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if reviews == nil {
		reviews = []*domain.Review{}
	}

	response.Success(w, r, reviews)
}

// Update handles PUT /api/v1/reviews/:id
// @Summary Update a review
// @Description Replace a review's rating and comment. Only the authoring user may do this.
// @Tags Reviews
// @Accept json,xml
// @Produce json,xml
// @Param id path string true "Review ID (UUID)"
// @Param review body UpdateReviewRequest true "Updated review details"
// @Success 200 {object} response.Envelope "Review updated successfully"
// @Failure 400 {object} response.ErrorBody "Invalid request"
// @Failure 401 {object} response.ErrorBody "Authentication required"
// @Failure 403 {object} response.ErrorBody "Caller is not the review's owner"
// @Failure 404 {object} response.ErrorBody "Review not found"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Security BearerAuth
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid review ID")
		return
	}

	var req UpdateReviewRequest
	if err := request.Decode(r, &req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	review := &domain.Review{
		ID:      id,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := h.service.Update(r.Context(), identity.UserID, review); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Success(w, r, review)
}

// Patch handles PATCH /api/v1/reviews/:id
// @Summary Partially update a review
// @Description Update only the provided review fields. Only the authoring user may do this.
// @Tags Reviews
// @Accept json,xml
// @Produce json,xml
// @Param id path string true "Review ID (UUID)"
// @Param review body PatchReviewRequest true "Fields to update"
// @Success 200 {object} response.Envelope "Review updated successfully"
// @Failure 400 {object} response.ErrorBody "Invalid request"
// @Failure 401 {object} response.ErrorBody "Authentication required"
// @Failure 403 {object} response.ErrorBody "Caller is not the review's owner"
// @Failure 404 {object} response.ErrorBody "Review not found"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Security BearerAuth
// @Router /reviews/{id} [patch]
func (h *ReviewHandler) Patch(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid review ID")
		return
	}

	var req PatchReviewRequest
	if err := request.Decode(r, &req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	existing, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if req.Rating != nil {
		existing.Rating = *req.Rating
	}
	if req.Comment != nil {
		existing.Comment = *req.Comment
	}

	if err := h.service.Update(r.Context(), identity.UserID, existing); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Success(w, r, existing)
}

// Delete handles DELETE /api/v1/reviews/:id
// @Summary Delete a review
// @Description Delete a review. Only the authoring user may do this.
// @Tags Reviews
// @Param id path string true "Review ID (UUID)"
// @Success 204 "Review deleted successfully"
// @Failure 400 {object} response.ErrorBody "Invalid review ID"
// @Failure 401 {object} response.ErrorBody "Authentication required"
// @Failure 403 {object} response.ErrorBody "Caller is not the review's owner"
// @Failure 404 {object} response.ErrorBody "Review not found"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Security BearerAuth
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid review ID")
		return
	}

	if err := h.service.Delete(r.Context(), identity.UserID, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.NoContent(w)
}

// GetByProductID handles GET /api/v1/products/:id/reviews
// @Summary List a product's reviews
// @Description Reviews for one product, newest first. Results are cached.
// @Tags Reviews
// @Produce json,xml
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} response.Envelope "List of reviews"
// @Failure 400 {object} response.ErrorBody "Invalid product ID"
// @Failure 404 {object} response.ErrorBody "Product not found"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) GetByProductID(w http.ResponseWriter, r *http.Request) {
	productID, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid product ID")
		return
	}

	reviews, err := h.service.GetByProductID(r.Context(), productID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if reviews == nil {
		reviews = []*domain.Review{}
	}

	response.Success(w, r, reviews)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *ReviewHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, r, http.StatusNotFound, "Review or product not found")
	case errors.Is(err, domain.ErrAlreadyReviewed):
		response.FieldError(w, r, http.StatusBadRequest, "product_id", domain.ErrAlreadyReviewed.Error())
	case errors.As(err, &validationErr):
		response.FieldError(w, r, http.StatusBadRequest, validationErr.Field, validationErr.Message)
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, r, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrForbidden):
		response.Error(w, r, http.StatusForbidden, "Only the review's author may modify it")
	default:
		h.logger.Error("Internal error in review handler", err)
		response.Error(w, r, http.StatusInternalServerError, "Internal server error")
	}
}
