package routes

import (
	"net/http"

	"github.com/amacity/storefront/internal/api/handlers"
	"github.com/amacity/storefront/internal/api/middleware"
	"github.com/amacity/storefront/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	storeHandler     *handlers.StoreHandler
	productHandler   *handlers.ProductHandler
	analyticsHandler *handlers.AnalyticsHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	storeHandler *handlers.StoreHandler,
	productHandler *handlers.ProductHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		storeHandler:     storeHandler,
		productHandler:   productHandler,
		analyticsHandler: analyticsHandler,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Store endpoints
	r.mux.HandleFunc("GET /api/stores", r.storeHandler.ListStores)
	r.mux.HandleFunc("GET /api/stores/{id}", r.storeHandler.GetStore)
	r.mux.HandleFunc("GET /api/stores/{id}/products", r.storeHandler.GetStoreProducts)

	// Product endpoints
	r.mux.HandleFunc("GET /api/products", r.productHandler.ListProducts)
	r.mux.HandleFunc("GET /api/products/search", r.productHandler.SearchProducts)
	r.mux.HandleFunc("GET /api/products/suggest", r.productHandler.SuggestProducts)

	// Analytics endpoints
	r.mux.HandleFunc("POST /api/analytics/clicks", r.analyticsHandler.RecordClick)
	r.mux.HandleFunc("GET /api/analytics/popular-products", r.analyticsHandler.GetPopularProducts)
	r.mux.HandleFunc("GET /api/analytics/search-trends", r.analyticsHandler.GetSearchTrends)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so every response gets its headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
