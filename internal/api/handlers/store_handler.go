package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/amacity/storefront/internal/application/services"
)

// StoreHandler handles store-related HTTP requests
type StoreHandler struct {
	catalog *services.CatalogService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(catalog *services.CatalogService) *StoreHandler {
	return &StoreHandler{
		catalog: catalog,
	}
}

// ListStores handles GET /api/stores
func (h *StoreHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores := h.catalog.ListStores(r.Context())

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stores": stores,
		"count":  len(stores),
	})
}

// GetStore handles GET /api/stores/{id}
func (h *StoreHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "store ID must be an integer")
		return
	}

	store := h.catalog.GetStore(r.Context(), id)
	if store == nil {
		respondWithError(w, http.StatusNotFound, "store not found")
		return
	}

	respondWithJSON(w, http.StatusOK, store)
}

// GetStoreProducts handles GET /api/stores/{id}/products
func (h *StoreHandler) GetStoreProducts(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "store ID must be an integer")
		return
	}

	products := h.catalog.ListStoreProducts(r.Context(), id)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
