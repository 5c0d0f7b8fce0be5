package repositories

import (
	"context"

	"github.com/amacity/storefront/internal/domain/entities"
)

// ProductRepository provides read access to product records plus the
// analytics counter increment the click path needs.
type ProductRepository interface {
	// ListInStock returns all in-stock products ordered by name ascending,
	// with the owning store's display fields joined onto each row.
	ListInStock(ctx context.Context) ([]*entities.Product, error)

	// ListByStore returns a store's in-stock products ordered by name
	// ascending. No store join: the caller already knows the store.
	ListByStore(ctx context.Context, storeID int64) ([]*entities.Product, error)

	// Search returns in-stock products whose name or category contains the
	// query (case-insensitive) or whose tag set contains it exactly, joined
	// against the owning store and capped at limit rows. Row order is
	// whatever the backend yields.
	Search(ctx context.Context, query string, limit int) ([]*entities.Product, error)

	// IncrementSearchCount bumps a product's search_count by one as an
	// atomic server-side increment, safe under concurrent clicks.
	IncrementSearchCount(ctx context.Context, id int64) error
}

// ProductIndexRepository is the optional secondary index used for the
// suggestion path. The relational store stays the source of truth.
type ProductIndexRepository interface {
	Index(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id int64) error
	Suggest(ctx context.Context, query string, limit int) ([]*entities.Product, error)
}
