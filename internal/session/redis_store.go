package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	redisclient "github.com/amacity/storefront/internal/infrastructure/clients/redis"
)

// RedisStore persists the session token in Redis. Tokens have no expiry and
// no rotation, matching the one-token-per-device contract.
type RedisStore struct {
	client *redisclient.Client
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redisclient.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Client().Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session token: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Client().Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set session token: %w", err)
	}
	return nil
}

// MemoryStore is an in-process session store used in tests and as a fallback
// when Redis is not configured.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
