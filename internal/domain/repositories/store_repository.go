package repositories

import (
	"context"

	"github.com/amacity/storefront/internal/domain/entities"
)

// StoreRepository provides read access to store records.
type StoreRepository interface {
	// List returns all stores ordered by name ascending.
	List(ctx context.Context) ([]*entities.Store, error)

	// GetByID returns the store with the given id, or a not-found error.
	GetByID(ctx context.Context, id int64) (*entities.Store, error)
}
