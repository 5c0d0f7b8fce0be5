package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amacity/storefront/internal/api/handlers"
	"github.com/amacity/storefront/internal/application/services"
	"github.com/amacity/storefront/internal/domain/entities"
	apperrors "github.com/amacity/storefront/pkg/errors"
)

func newAnalyticsHandler(analyticsRepo *MockAnalyticsRepository, productRepo *MockProductRepository) *handlers.AnalyticsHandler {
	analytics := services.NewAnalyticsService(analyticsRepo, productRepo)
	return handlers.NewAnalyticsHandler(analytics, newTestSessions())
}

func TestAnalyticsHandler_RecordClick(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	productRepo := new(MockProductRepository)
	handler := newAnalyticsHandler(analyticsRepo, productRepo)

	analyticsRepo.On("MarkClicked", mock.Anything, "device-123", int64(42), "martello").Return(nil).Once()
	productRepo.On("IncrementSearchCount", mock.Anything, int64(42)).Return(nil).Once()

	body := `{"product_id": 42, "search_term": "martello"}`
	req := httptest.NewRequest("POST", "/api/analytics/clicks", strings.NewReader(body))
	req.Header.Set("X-Session-ID", "device-123")
	w := httptest.NewRecorder()

	handler.RecordClick(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	analyticsRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestAnalyticsHandler_RecordClick_AcceptedDespiteBackendFailure(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	productRepo := new(MockProductRepository)
	handler := newAnalyticsHandler(analyticsRepo, productRepo)

	analyticsRepo.On("MarkClicked", mock.Anything, mock.Anything, int64(42), "martello").
		Return(apperrors.NewInternalError("db down", assert.AnError))
	productRepo.On("IncrementSearchCount", mock.Anything, int64(42)).
		Return(apperrors.NewInternalError("db down", assert.AnError))

	body := `{"product_id": 42, "search_term": "martello"}`
	req := httptest.NewRequest("POST", "/api/analytics/clicks", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.RecordClick(w, req)

	// Recording is fire-and-forget, backend failures never reach the client
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestAnalyticsHandler_RecordClick_InvalidBody(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	productRepo := new(MockProductRepository)
	handler := newAnalyticsHandler(analyticsRepo, productRepo)

	req := httptest.NewRequest("POST", "/api/analytics/clicks", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	handler.RecordClick(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	analyticsRepo.AssertNotCalled(t, "MarkClicked", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyticsHandler_RecordClick_MissingFields(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	productRepo := new(MockProductRepository)
	handler := newAnalyticsHandler(analyticsRepo, productRepo)

	for _, body := range []string{
		`{"search_term": "martello"}`,
		`{"product_id": 42}`,
		`{}`,
	} {
		req := httptest.NewRequest("POST", "/api/analytics/clicks", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.RecordClick(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestAnalyticsHandler_GetPopularProducts(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	productRepo := new(MockProductRepository)
	handler := newAnalyticsHandler(analyticsRepo, productRepo)

	analyticsRepo.On("PopularByStore", mock.Anything, services.PopularProductsCap).
		Return([]*entities.PopularProduct{
			{StoreID: 1, ProductID: 1, ProductName: "Martello carpentiere 500g", SearchCount: 12},
			{StoreID: 2, ProductID: 4, ProductName: "Vaschetta gelato 750g", SearchCount: 9},
		}, nil)

	req := httptest.NewRequest("GET", "/api/analytics/popular-products", nil)
	w := httptest.NewRecorder()

	handler.GetPopularProducts(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PopularProducts map[string][]entities.PopularProduct `json:"popular_products"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.PopularProducts, 2)
	assert.Equal(t, "Martello carpentiere 500g", resp.PopularProducts["1"][0].ProductName)
}

func TestAnalyticsHandler_GetSearchTrends(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	productRepo := new(MockProductRepository)
	handler := newAnalyticsHandler(analyticsRepo, productRepo)

	day := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	analyticsRepo.On("ListTimestampsSince", mock.Anything, mock.Anything).
		Return([]time.Time{day, day.Add(3 * time.Hour)}, nil)

	req := httptest.NewRequest("GET", "/api/analytics/search-trends?days=7", nil)
	w := httptest.NewRecorder()

	handler.GetSearchTrends(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Trends []entities.SearchTrend `json:"trends"`
		Count  int                    `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Trends, 1)
	assert.Equal(t, "2026-08-27", resp.Trends[0].Date)
	assert.Equal(t, 2, resp.Trends[0].Searches)
}

func TestAnalyticsHandler_GetSearchTrends_InvalidDays(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	productRepo := new(MockProductRepository)
	handler := newAnalyticsHandler(analyticsRepo, productRepo)

	req := httptest.NewRequest("GET", "/api/analytics/search-trends?days=abc", nil)
	w := httptest.NewRecorder()

	handler.GetSearchTrends(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	analyticsRepo.AssertNotCalled(t, "ListTimestampsSince", mock.Anything, mock.Anything)
}
