package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/amacity/storefront/internal/domain/entities"
	"github.com/amacity/storefront/internal/domain/repositories"
	apperrors "github.com/amacity/storefront/pkg/errors"
)

// CatalogService handles the store and product read paths. Every read
// degrades to an empty result on backend failure: the presentation layer
// never sees a raw error, the failure is only logged here. Adapters still
// return explicit errors so tests can tell "empty" from "failed".
type CatalogService struct {
	stores   repositories.StoreRepository
	products repositories.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(stores repositories.StoreRepository, products repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		stores:   stores,
		products: products,
	}
}

// ListStores returns all stores ordered by name, or an empty slice on failure
func (s *CatalogService) ListStores(ctx context.Context) []*entities.Store {
	stores, err := s.stores.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list stores")
		return []*entities.Store{}
	}
	return stores
}

// GetStore returns the store with the given id, or nil when absent or on failure
func (s *CatalogService) GetStore(ctx context.Context, id int64) *entities.Store {
	store, err := s.stores.GetByID(ctx, id)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			log.Error().Err(err).Int64("store_id", id).Msg("failed to get store")
		}
		return nil
	}
	return store
}

// ListProducts returns all in-stock products with joined store fields,
// or an empty slice on failure
func (s *CatalogService) ListProducts(ctx context.Context) []*entities.Product {
	products, err := s.products.ListInStock(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		return []*entities.Product{}
	}
	return products
}

// ListStoreProducts returns a store's in-stock products, or an empty slice
// on failure
func (s *CatalogService) ListStoreProducts(ctx context.Context, storeID int64) []*entities.Product {
	products, err := s.products.ListByStore(ctx, storeID)
	if err != nil {
		log.Error().Err(err).Int64("store_id", storeID).Msg("failed to list store products")
		return []*entities.Product{}
	}
	return products
}
