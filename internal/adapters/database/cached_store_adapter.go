package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/amacity/storefront/internal/domain/entities"
	"github.com/amacity/storefront/internal/domain/providers"
	"github.com/amacity/storefront/internal/domain/repositories"
)

// CachedStoreAdapter wraps StoreAdapter with caching. Store records change
// rarely compared to how often listings render them, so short TTLs are enough.
type CachedStoreAdapter struct {
	adapter repositories.StoreRepository
	cache   providers.CacheProvider
}

// NewCachedStoreAdapter creates a new cached store adapter
func NewCachedStoreAdapter(adapter repositories.StoreRepository, cache providers.CacheProvider) repositories.StoreRepository {
	return &CachedStoreAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	storeByIDTTL  = 300
	storesListTTL = 180
)

func storeCacheKey(id int64) string {
	return fmt.Sprintf("store:%d", id)
}

const storesListCacheKey = "stores:list"

// List retrieves all stores with caching
func (a *CachedStoreAdapter) List(ctx context.Context) ([]*entities.Store, error) {
	if cached, err := a.cache.Get(ctx, storesListCacheKey); err == nil {
		var stores []*entities.Store
		if err := json.Unmarshal(cached, &stores); err == nil {
			return stores, nil
		}
		log.Warn().Err(err).Msg("failed to unmarshal cached store list")
	}

	stores, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(stores); err == nil {
			if err := a.cache.Set(bgCtx, storesListCacheKey, data, storesListTTL); err != nil {
				log.Warn().Err(err).Msg("failed to cache store list")
			}
		}
	}()

	return stores, nil
}

// GetByID retrieves a store by ID with caching
func (a *CachedStoreAdapter) GetByID(ctx context.Context, id int64) (*entities.Store, error) {
	cacheKey := storeCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var store entities.Store
		if err := json.Unmarshal(cached, &store); err == nil {
			return &store, nil
		}
		log.Warn().Err(err).Int64("store_id", id).Msg("failed to unmarshal cached store")
	}

	store, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(store); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, storeByIDTTL); err != nil {
				log.Warn().Err(err).Int64("store_id", id).Msg("failed to cache store")
			}
		}
	}()

	return store, nil
}
