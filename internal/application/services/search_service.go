package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/amacity/storefront/internal/domain/entities"
	"github.com/amacity/storefront/internal/domain/repositories"
	"github.com/amacity/storefront/internal/infrastructure/observability"
)

// MaxSearchResults is the hard cap on rows a single search can return.
const MaxSearchResults = 20

// SearchRecorder receives the usage signal a completed search emits.
type SearchRecorder interface {
	RecordSearch(ctx context.Context, session, term string, productID, storeID *int64)
}

// SearchService turns free text into ranked product results and records the
// search as an analytics side effect.
type SearchService struct {
	products repositories.ProductRepository
	index    repositories.ProductIndexRepository
	recorder SearchRecorder
	metrics  *observability.Metrics
}

// NewSearchService creates a new search service. index and metrics may be nil.
func NewSearchService(
	products repositories.ProductRepository,
	index repositories.ProductIndexRepository,
	recorder SearchRecorder,
	metrics *observability.Metrics,
) *SearchService {
	return &SearchService{
		products: products,
		index:    index,
		recorder: recorder,
		metrics:  metrics,
	}
}

// Search returns in-stock products matching the query by name, category or
// exact tag, joined with store fields and capped at 20 rows.
//
// A blank query short-circuits: no backend call and no analytics row, so
// "no query" stays distinguishable from "query with no matches". A backend
// failure degrades to an empty slice and skips the analytics row; only a
// completed search is recorded, whether or not it matched anything.
func (s *SearchService) Search(ctx context.Context, session, query string) []*entities.Product {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []*entities.Product{}
	}

	products, err := s.products.Search(ctx, trimmed, MaxSearchResults)
	if err != nil {
		log.Error().Err(err).Str("query", trimmed).Msg("product search failed")
		return []*entities.Product{}
	}

	if s.metrics != nil {
		observability.RecordSearchMetric(ctx, s.metrics, len(products))
	}

	s.recorder.RecordSearch(ctx, session, query, nil, nil)

	return products
}

// Suggest returns typeahead suggestions from the secondary index, falling
// back to the relational search when no index is configured. Suggestions are
// not searches, so nothing is recorded.
func (s *SearchService) Suggest(ctx context.Context, query string, limit int) []*entities.Product {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []*entities.Product{}
	}
	if limit <= 0 || limit > MaxSearchResults {
		limit = MaxSearchResults
	}

	if s.index != nil {
		products, err := s.index.Suggest(ctx, trimmed, limit)
		if err == nil {
			return products
		}
		log.Warn().Err(err).Str("query", trimmed).Msg("index suggest failed, falling back to database")
	}

	products, err := s.products.Search(ctx, trimmed, limit)
	if err != nil {
		log.Error().Err(err).Str("query", trimmed).Msg("suggest fallback failed")
		return []*entities.Product{}
	}
	return products
}
