package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Pesokrava/product_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
	"github.com/Pesokrava/product_catalog/internal/usecase/product"
)

func newProductRouter() (chi.Router, *MockProductRepository, *MockCache) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockCache)
	service := product.NewService(mockRepo, mockCache, logger.New("test"))
	handler := NewProductHandler(service, logger.New("test"))

	r := chi.NewRouter()
	r.Get("/products", handler.List)
	r.Post("/products", handler.Create)
	r.Get("/products/{id}", handler.GetByID)
	r.Put("/products/{id}", handler.Update)
	r.Patch("/products/{id}", handler.Patch)
	r.Delete("/products/{id}", handler.Delete)
	r.Get("/products/{id}/rating", handler.GetRating)

	return r, mockRepo, mockCache
}

func TestProductHandler_Create(t *testing.T) {
	router, mockRepo, _ := newProductRouter()

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := `{"name": "Pencil", "price": 1.99}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var envelope response.Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	mockRepo.AssertExpectations(t)
}

func TestProductHandler_Create_InvalidPrice(t *testing.T) {
	router, mockRepo, _ := newProductRouter()

	body := `{"name": "Pencil", "price": 0}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody response.ErrorBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "price", errBody.Field)
	assert.Contains(t, errBody.Error, "greater than 0")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestProductHandler_Create_MalformedBody(t *testing.T) {
	router, _, _ := newProductRouter()

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_Create_XMLBody(t *testing.T) {
	router, mockRepo, _ := newProductRouter()

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Name == "Pencil" && p.Price == 1.99
	})).Return(nil)

	body := `<CreateProductRequest><name>Pencil</name><price>1.99</price></CreateProductRequest>`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/xml")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductHandler_GetByID_NotFound(t *testing.T) {
	router, mockRepo, _ := newProductRouter()

	id := uuid.New()
	mockRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/products/"+id.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_GetByID_BadUUID(t *testing.T) {
	router, _, _ := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/products/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_GetByID_XMLAccept(t *testing.T) {
	router, mockRepo, _ := newProductRouter()

	id := uuid.New()
	mockRepo.On("GetByID", mock.Anything, id).
		Return(&domain.Product{ID: id, Name: "Pencil", Price: 1.99}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products/"+id.String(), nil)
	req.Header.Set("Accept", "application/xml")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<response>")
	assert.Contains(t, rec.Body.String(), "<name>Pencil</name>")
}

func TestProductHandler_List_MinRatingIgnoredWhenNotNumeric(t *testing.T) {
	router, mockRepo, _ := newProductRouter()

	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f domain.ProductFilter) bool {
		return f.MinRating == nil
	})).Return([]*domain.Product{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products?min_rating=abc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductHandler_List_MinRatingApplied(t *testing.T) {
	router, mockRepo, _ := newProductRouter()

	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f domain.ProductFilter) bool {
		return f.MinRating != nil && *f.MinRating == 4.0
	})).Return([]*domain.Product{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products?min_rating=4", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductHandler_List_Ordering(t *testing.T) {
	router, mockRepo, _ := newProductRouter()

	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f domain.ProductFilter) bool {
		return f.OrderBy == domain.OrderByPrice && f.Descending
	})).Return([]*domain.Product{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products?ordering=-price", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductHandler_List_DefaultOrdering(t *testing.T) {
	router, mockRepo, _ := newProductRouter()

	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f domain.ProductFilter) bool {
		return f.OrderBy == domain.OrderByCreatedAt && f.Descending
	})).Return([]*domain.Product{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductHandler_Delete(t *testing.T) {
	router, mockRepo, mockCache := newProductRouter()

	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(nil)
	mockCache.On("InvalidateProduct", mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/products/"+id.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestProductHandler_GetRating(t *testing.T) {
	router, _, mockCache := newProductRouter()

	id := uuid.New()
	mockCache.On("GetRatingSummary", mock.Anything, id).
		Return(&domain.RatingSummary{ProductID: id, AvgRating: 4.5, Count: 2}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products/"+id.String()+"/rating", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var summary domain.RatingSummary
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 4.5, summary.AvgRating)
	assert.Equal(t, 2, summary.Count)
}

func TestProductHandler_GetRating_NoReviews(t *testing.T) {
	router, mockRepo, mockCache := newProductRouter()

	id := uuid.New()
	mockCache.On("GetRatingSummary", mock.Anything, id).Return(nil, domain.ErrNotFound)
	mockRepo.On("GetByID", mock.Anything, id).
		Return(&domain.Product{ID: id, Name: "Eraser", Price: 0.99}, nil)
	mockCache.On("SetRatingSummary", mock.Anything, mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/products/"+id.String()+"/rating", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var summary domain.RatingSummary
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 0.0, summary.AvgRating)
	assert.Equal(t, 0, summary.Count)
}

func TestProductHandler_Patch(t *testing.T) {
	router, mockRepo, _ := newProductRouter()

	id := uuid.New()
	existing := &domain.Product{ID: id, Name: "Pencil", Price: 1.99}

	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Name == "Pencil" && p.Price == 2.49
	})).Return(nil)

	body := `{"price": 2.49}`
	req := httptest.NewRequest(http.MethodPatch, "/products/"+id.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockRepo.AssertExpectations(t)
}
