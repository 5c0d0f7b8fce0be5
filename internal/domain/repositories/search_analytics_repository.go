package repositories

import (
	"context"
	"time"

	"github.com/amacity/storefront/internal/domain/entities"
)

// SearchAnalyticsRepository persists and reads search usage signals.
type SearchAnalyticsRepository interface {
	// Insert appends one analytic row. ID and SearchTimestamp are filled
	// in when zero.
	Insert(ctx context.Context, analytic *entities.SearchAnalytic) error

	// MarkClicked sets clicked=true on the most recent row matching
	// session + productID + term. Zero matching rows is not an error.
	MarkClicked(ctx context.Context, session string, productID int64, term string) error

	// ListTimestampsSince returns the timestamps of all searches at or
	// after since, ascending.
	ListTimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error)

	// PopularByStore reads the precomputed store_popular_products view,
	// capped at limit rows, in view order.
	PopularByStore(ctx context.Context, limit int) ([]*entities.PopularProduct, error)
}
