package handlers

import (
	"net/http"
	"strconv"

	"github.com/amacity/storefront/internal/application/services"
	"github.com/amacity/storefront/internal/session"
)

// ProductHandler handles product listing and search HTTP requests
type ProductHandler struct {
	catalog  *services.CatalogService
	search   *services.SearchService
	sessions *session.Manager
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog *services.CatalogService, search *services.SearchService, sessions *session.Manager) *ProductHandler {
	return &ProductHandler{
		catalog:  catalog,
		search:   search,
		sessions: sessions,
	}
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.ListProducts(r.Context())

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// SearchProducts handles GET /api/products/search?q=
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	sess := sessionFromRequest(r, h.sessions)

	products := h.search.Search(r.Context(), sess, query)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// SuggestProducts handles GET /api/products/suggest?q=&limit=
func (h *ProductHandler) SuggestProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	products := h.search.Suggest(r.Context(), query, limit)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// sessionFromRequest resolves analytics attribution: a device that sends its
// own token wins, otherwise the server-side session manager's token is used.
func sessionFromRequest(r *http.Request, sessions *session.Manager) string {
	if sess := r.Header.Get("X-Session-ID"); sess != "" {
		return sess
	}
	return sessions.GetOrCreate(r.Context())
}
