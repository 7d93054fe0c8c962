package http

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Pesokrava/product_catalog/internal/config"
	"github.com/Pesokrava/product_catalog/internal/delivery/http/handler"
	"github.com/Pesokrava/product_catalog/internal/delivery/http/middleware"
	"github.com/Pesokrava/product_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/product_catalog/internal/pkg/auth"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
)

// Router holds HTTP handlers and router configuration
type Router struct {
	productHandler *handler.ProductHandler
	reviewHandler  *handler.ReviewHandler
	authHandler    *handler.AuthHandler
	tokens         *auth.JWTManager
	logger         *logger.Logger
	cfg            *config.Config
}

// NewRouter creates a new HTTP router
func NewRouter(
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	authHandler *handler.AuthHandler,
	tokens *auth.JWTManager,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		productHandler: productHandler,
		reviewHandler:  reviewHandler,
		authHandler:    authHandler,
		tokens:         tokens,
		logger:         log,
		cfg:            cfg,
	}
}

// Setup configures and returns the HTTP router. Reads are open; every write
// route sits behind the auth middleware.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	requireAuth := middleware.RequireAuth(rt.tokens, rt.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", rt.authHandler.Register)
			r.Post("/login", rt.authHandler.Login)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", rt.productHandler.List)
			r.Get("/{id}", rt.productHandler.GetByID)
			r.Get("/{id}/rating", rt.productHandler.GetRating)
			r.Get("/{id}/reviews", rt.reviewHandler.GetByProductID)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", rt.productHandler.Create)
				r.Put("/{id}", rt.productHandler.Update)
				r.Patch("/{id}", rt.productHandler.Patch)
				r.Delete("/{id}", rt.productHandler.Delete)
			})
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", rt.reviewHandler.List)
			r.Get("/{id}", rt.reviewHandler.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", rt.reviewHandler.Create)
				r.Put("/{id}", rt.reviewHandler.Update)
				r.Patch("/{id}", rt.reviewHandler.Patch)
				r.Delete("/{id}", rt.reviewHandler.Delete)
			})
		})
	})

	return r
}

type healthStatus struct {
	XMLName xml.Name `json:"-" xml:"health"`
	Status  string   `json:"status" xml:"status"`
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.Render(w, r, http.StatusOK, healthStatus{Status: "healthy"})
}
