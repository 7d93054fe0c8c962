package handler

import (
	"errors"
	"net/http"

	"github.com/Pesokrava/product_catalog/internal/delivery/http/request"
	"github.com/Pesokrava/product_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
	"github.com/Pesokrava/product_catalog/internal/usecase/auth"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	service *auth.Service
	logger  *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *auth.Service, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  log,
	}
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Username string `json:"username" xml:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" xml:"email" validate:"required,email"`
	Password string `json:"password" xml:"password" validate:"required,min=8"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" xml:"username" validate:"required"`
	Password string `json:"password" xml:"password" validate:"required"`
}

// LoginResponse carries the issued token and the account it belongs to
type LoginResponse struct {
	Token string       `json:"token" xml:"token"`
	User  *domain.User `json:"user" xml:"user"`
}

// Register handles POST /api/v1/auth/register
// @Summary Register a new user
// @Tags Auth
// @Accept json,xml
// @Produce json,xml
// @Param user body RegisterRequest true "Account details"
// @Success 201 {object} response.Envelope "User registered"
// @Failure 400 {object} response.ErrorBody "Invalid body or username/email taken"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := request.Decode(r, &req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
	}

	if err := h.service.Register(r.Context(), user, req.Password); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Created(w, r, user)
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Exchange username and password for a Bearer token
// @Tags Auth
// @Accept json,xml
// @Produce json,xml
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope "Token and account"
// @Failure 400 {object} response.ErrorBody "Invalid request body"
// @Failure 401 {object} response.ErrorBody "Invalid credentials"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := request.Decode(r, &req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.Success(w, r, LoginResponse{Token: token, User: user})
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *AuthHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		response.FieldError(w, r, http.StatusBadRequest, validationErr.Field, validationErr.Message)
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, r, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrUnauthenticated):
		response.Error(w, r, http.StatusUnauthorized, "Invalid credentials")
	default:
		h.logger.Error("Internal error in auth handler", err)
		response.Error(w, r, http.StatusInternalServerError, "Internal server error")
	}
}
