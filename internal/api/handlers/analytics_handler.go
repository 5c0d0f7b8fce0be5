package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/amacity/storefront/internal/application/services"
	"github.com/amacity/storefront/internal/session"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	analytics *services.AnalyticsService
	sessions  *session.Manager
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *services.AnalyticsService, sessions *session.Manager) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		sessions:  sessions,
	}
}

type clickRequest struct {
	ProductID  int64  `json:"product_id"`
	SearchTerm string `json:"search_term"`
}

// RecordClick handles POST /api/analytics/clicks
func (h *AnalyticsHandler) RecordClick(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == 0 || req.SearchTerm == "" {
		respondWithError(w, http.StatusBadRequest, "product_id and search_term are required")
		return
	}

	sess := sessionFromRequest(r, h.sessions)
	h.analytics.RecordClick(r.Context(), sess, req.ProductID, req.SearchTerm)

	// Recording is fire-and-forget, so the response is always accepted.
	w.WriteHeader(http.StatusAccepted)
}

// GetPopularProducts handles GET /api/analytics/popular-products
func (h *AnalyticsHandler) GetPopularProducts(w http.ResponseWriter, r *http.Request) {
	grouped := h.analytics.PopularProductsByStore(r.Context())

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"popular_products": grouped,
	})
}

// GetSearchTrends handles GET /api/analytics/search-trends?days=
func (h *AnalyticsHandler) GetSearchTrends(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = parsed
	}

	trends := h.analytics.SearchTrends(r.Context(), days)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"trends": trends,
		"count":  len(trends),
	})
}
