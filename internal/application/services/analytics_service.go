package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/amacity/storefront/internal/domain/entities"
	"github.com/amacity/storefront/internal/domain/repositories"
)

// timeNow is swapped out in tests
var timeNow = time.Now

// PopularProductsCap limits the raw fetch from the popularity view. The cap
// applies before grouping by store, so a store can receive fewer rows than
// exist for it when the leaderboard overlaps across stores.
const PopularProductsCap = 5

// DefaultTrendWindowDays is the trailing window for search trends.
const DefaultTrendWindowDays = 7

// AnalyticsService records search/click signals and serves the derived
// popularity and trend views. All writes are fire-and-forget: failures are
// logged and dropped, never surfaced, never retried.
type AnalyticsService struct {
	analytics repositories.SearchAnalyticsRepository
	products  repositories.ProductRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(analytics repositories.SearchAnalyticsRepository, products repositories.ProductRepository) *AnalyticsService {
	return &AnalyticsService{
		analytics: analytics,
		products:  products,
	}
}

// RecordSearch appends one analytic row for the session, stamped clicked=false.
func (s *AnalyticsService) RecordSearch(ctx context.Context, session, term string, productID, storeID *int64) {
	analytic := &entities.SearchAnalytic{
		SearchTerm:  term,
		ProductID:   productID,
		StoreID:     storeID,
		UserSession: session,
		Clicked:     false,
	}

	if err := s.analytics.Insert(ctx, analytic); err != nil {
		log.Warn().Err(err).Str("term", term).Msg("failed to record search")
	}
}

// RecordClick marks the most recent matching search row clicked and bumps the
// product's search_count. The two effects are independent: one failing never
// stops the other, and the counter increment happens even when no search row
// matched. Each click is a fresh increment, clicks are not idempotent.
func (s *AnalyticsService) RecordClick(ctx context.Context, session string, productID int64, term string) {
	if err := s.analytics.MarkClicked(ctx, session, productID, term); err != nil {
		log.Warn().Err(err).Int64("product_id", productID).Str("term", term).Msg("failed to mark search clicked")
	}

	if err := s.products.IncrementSearchCount(ctx, productID); err != nil {
		log.Warn().Err(err).Int64("product_id", productID).Msg("failed to increment product search count")
	}
}

// PopularProductsByStore groups the top rows of the popularity view by store.
// Within each store the slice keeps the view's return order. Failure degrades
// to an empty map.
func (s *AnalyticsService) PopularProductsByStore(ctx context.Context) map[int64][]*entities.PopularProduct {
	rows, err := s.analytics.PopularByStore(ctx, PopularProductsCap)
	if err != nil {
		log.Error().Err(err).Msg("failed to get popular products")
		return map[int64][]*entities.PopularProduct{}
	}

	grouped := map[int64][]*entities.PopularProduct{}
	for _, row := range rows {
		grouped[row.StoreID] = append(grouped[row.StoreID], row)
	}

	return grouped
}

// SearchTrends buckets searches from the trailing window by calendar date.
// The repository returns timestamps ascending, so buckets come out in
// ascending date order without a final sort. Failure degrades to empty.
func (s *AnalyticsService) SearchTrends(ctx context.Context, days int) []entities.SearchTrend {
	if days <= 0 {
		days = DefaultTrendWindowDays
	}

	since := timeNow().AddDate(0, 0, -days)
	timestamps, err := s.analytics.ListTimestampsSince(ctx, since)
	if err != nil {
		log.Error().Err(err).Int("days", days).Msg("failed to get search trends")
		return []entities.SearchTrend{}
	}

	counts := map[string]int{}
	var dates []string
	for _, ts := range timestamps {
		date := ts.Format("2006-01-02")
		if _, seen := counts[date]; !seen {
			dates = append(dates, date)
		}
		counts[date]++
	}

	trends := make([]entities.SearchTrend, 0, len(dates))
	for _, date := range dates {
		trends = append(trends, entities.SearchTrend{Date: date, Searches: counts[date]})
	}

	return trends
}
