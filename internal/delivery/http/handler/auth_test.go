package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Pesokrava/product_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/product_catalog/internal/domain"
	pkgauth "github.com/Pesokrava/product_catalog/internal/pkg/auth"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
	"github.com/Pesokrava/product_catalog/internal/usecase/auth"
)

func newAuthRouter() (chi.Router, *MockUserRepository) {
	mockUsers := new(MockUserRepository)
	tokens := pkgauth.NewJWTManager("test-secret", time.Hour)
	service := auth.NewService(mockUsers, tokens, logger.New("test"))
	handler := NewAuthHandler(service, logger.New("test"))

	r := chi.NewRouter()
	r.Post("/auth/register", handler.Register)
	r.Post("/auth/login", handler.Login)

	return r, mockUsers
}

func TestAuthHandler_Register(t *testing.T) {
	router, mockUsers := newAuthRouter()

	mockUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice" && u.PasswordHash != ""
	})).Return(nil)

	body := `{"username": "alice", "email": "alice@example.com", "password": "correct horse"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	mockUsers.AssertExpectations(t)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	router, mockUsers := newAuthRouter()

	body := `{"username": "alice", "email": "alice@example.com", "password": "short"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody response.ErrorBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "password", errBody.Field)
	mockUsers.AssertNotCalled(t, "Create")
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	router, mockUsers := newAuthRouter()

	mockUsers.On("Create", mock.Anything, mock.Anything).Return(domain.ErrAlreadyExists)

	body := `{"username": "alice", "email": "alice@example.com", "password": "correct horse"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody response.ErrorBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "username", errBody.Field)
}

func TestAuthHandler_Login(t *testing.T) {
	router, mockUsers := newAuthRouter()

	hash, err := pkgauth.HashPassword("correct horse")
	assert.NoError(t, err)

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}
	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(user, nil)

	body := `{"username": "alice", "password": "correct horse"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Data.Token)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	router, mockUsers := newAuthRouter()

	hash, err := pkgauth.HashPassword("correct horse")
	assert.NoError(t, err)

	user := &domain.User{ID: uuid.New(), Username: "alice", PasswordHash: hash}
	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(user, nil)

	body := `{"username": "alice", "password": "wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	router, mockUsers := newAuthRouter()

	mockUsers.On("GetByUsername", mock.Anything, "nobody").Return(nil, domain.ErrNotFound)

	body := `{"username": "nobody", "password": "whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
