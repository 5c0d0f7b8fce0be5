package database_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amacity/storefront/internal/adapters/database"
	"github.com/amacity/storefront/internal/domain/entities"
	apperrors "github.com/amacity/storefront/pkg/errors"
)

type fakeCache struct {
	data     map[string][]byte
	setCalls chan string
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		data:     map[string][]byte{},
		setCalls: make(chan string, 8),
	}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	if data, ok := c.data[key]; ok {
		return data, nil
	}
	return nil, assert.AnError
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.setCalls <- key
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

type fakeStoreRepo struct {
	stores []*entities.Store
	err    error
	calls  int
}

func (r *fakeStoreRepo) List(ctx context.Context) ([]*entities.Store, error) {
	r.calls++
	return r.stores, r.err
}

func (r *fakeStoreRepo) GetByID(ctx context.Context, id int64) (*entities.Store, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	for _, s := range r.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.NewNotFoundError("store not found")
}

func waitForSet(t *testing.T, cache *fakeCache, key string) {
	t.Helper()
	select {
	case got := <-cache.setCalls:
		assert.Equal(t, key, got)
	case <-time.After(time.Second):
		t.Fatalf("cache Set for %q was never called", key)
	}
}

func TestCachedStoreAdapter_List_CacheHit(t *testing.T) {
	stores := []*entities.Store{{ID: 1, Name: "Ferramenta Mazzotti"}}
	data, err := json.Marshal(stores)
	require.NoError(t, err)

	cache := newFakeCache()
	cache.data["stores:list"] = data
	repo := &fakeStoreRepo{}

	adapter := database.NewCachedStoreAdapter(repo, cache)

	got, err := adapter.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ferramenta Mazzotti", got[0].Name)
	assert.Zero(t, repo.calls, "cache hit must not touch the database")
}

func TestCachedStoreAdapter_List_CacheMissPopulates(t *testing.T) {
	cache := newFakeCache()
	repo := &fakeStoreRepo{stores: []*entities.Store{{ID: 1, Name: "Gelateria Dolce Vita"}}}

	adapter := database.NewCachedStoreAdapter(repo, cache)

	got, err := adapter.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, repo.calls)
	waitForSet(t, cache, "stores:list")
}

func TestCachedStoreAdapter_List_PassesThroughError(t *testing.T) {
	cache := newFakeCache()
	repo := &fakeStoreRepo{err: apperrors.NewInternalError("db down", assert.AnError)}

	adapter := database.NewCachedStoreAdapter(repo, cache)

	got, err := adapter.List(context.Background())

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestCachedStoreAdapter_GetByID_CacheHit(t *testing.T) {
	store := &entities.Store{ID: 7, Name: "Libreria Dante"}
	data, err := json.Marshal(store)
	require.NoError(t, err)

	cache := newFakeCache()
	cache.data["store:7"] = data
	repo := &fakeStoreRepo{}

	adapter := database.NewCachedStoreAdapter(repo, cache)

	got, err := adapter.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Libreria Dante", got.Name)
	assert.Zero(t, repo.calls)
}

func TestCachedStoreAdapter_GetByID_CacheMissPopulates(t *testing.T) {
	cache := newFakeCache()
	repo := &fakeStoreRepo{stores: []*entities.Store{{ID: 7, Name: "Libreria Dante"}}}

	adapter := database.NewCachedStoreAdapter(repo, cache)

	got, err := adapter.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	waitForSet(t, cache, "store:7")
}

func TestCachedStoreAdapter_GetByID_NotFoundNotCached(t *testing.T) {
	cache := newFakeCache()
	repo := &fakeStoreRepo{}

	adapter := database.NewCachedStoreAdapter(repo, cache)

	got, err := adapter.GetByID(context.Background(), 99)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, apperrors.IsNotFound(err))

	select {
	case key := <-cache.setCalls:
		t.Fatalf("unexpected cache Set for %q after a miss", key)
	case <-time.After(50 * time.Millisecond):
	}
}
