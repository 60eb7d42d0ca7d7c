package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/shoeppe/catalog-api/app/api"
	"github.com/shoeppe/catalog-api/app/categories"
	"github.com/shoeppe/catalog-api/app/config"
	"github.com/shoeppe/catalog-api/app/middleware"
	"github.com/shoeppe/catalog-api/app/products"
)

// NewRouter wires the catalog handlers under /api.
func NewRouter(
	cfg *config.Config,
	logger zerolog.Logger,
	categoryHandler *categories.CategoryHandler,
	productHandler *products.ProductHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CorsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}).Handler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, r, http.StatusNotFound, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.HandleGetAll)
			r.Post("/", categoryHandler.HandleCreate)
			r.Get("/{id}", categoryHandler.HandleGet)
			r.Put("/{id}", categoryHandler.HandleUpdate)
			r.Delete("/{id}", categoryHandler.HandleDelete)
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.HandleGetAll)
			r.Post("/", productHandler.HandleCreate)
			r.Get("/{id}", productHandler.HandleGet)
			r.Put("/{id}", productHandler.HandleUpdate)
			r.Delete("/{id}", productHandler.HandleDelete)
		})
	})

	if logger.GetLevel() <= zerolog.DebugLevel {
		_ = chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			logger.Debug().Str("method", method).Str("route", route).Msg("route registered")
			return nil
		})
	}

	return r
}
