package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store is the blob-store collaborator holding the device's session token
// under a fixed key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Manager hands out a stable opaque session identifier used to attribute
// analytics events without real auth. It is an explicitly constructed object,
// not a hidden singleton, so independent managers never collide.
type Manager struct {
	store Store
	key   string

	mu     sync.Mutex
	cached string
}

// NewManager creates a session manager persisting under the given key.
func NewManager(store Store, key string) *Manager {
	return &Manager{
		store: store,
		key:   key,
	}
}

// GetOrCreate returns the persisted session identifier, generating and
// persisting a fresh one on first use. It never fails the caller: when the
// blob store is unavailable the generated token lives only in this process,
// which keeps analytics attribution best-effort rather than fatal.
func (m *Manager) GetOrCreate(ctx context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cached != "" {
		return m.cached
	}

	if m.store != nil {
		if existing, err := m.store.Get(ctx, m.key); err == nil && existing != "" {
			m.cached = existing
			return m.cached
		}
	}

	token := uuid.New().String()
	if m.store != nil {
		if err := m.store.Set(ctx, m.key, token); err != nil {
			log.Warn().Err(err).Msg("failed to persist session token, using ephemeral session")
		}
	}

	m.cached = token
	return m.cached
}
