// Package cache memoizes raw upstream responses. Implementations are injected
// into the clients that need them.
package cache

//go:generate mockgen -destination=mock/mock_cache.go -package=cachemock github.com/KirkDiggler/poketeam-api/internal/cache Cache

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/pkg/clock"
	"github.com/KirkDiggler/poketeam-api/internal/redis"
)

// Cache stores opaque values by key. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is a process-local cache. A zero ttl never expires.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	clock   clock.Clock
}

// NewMemory creates an empty in-memory cache. A nil clock uses wall time.
func NewMemory(clk clock.Clock) *Memory {
	if clk == nil {
		clk = clock.New()
	}
	return &Memory{
		entries: make(map[string]memoryEntry),
		clock:   clk,
	}
}

// Get returns the value when present and not expired
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && !m.clock.Now().Before(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false, nil
	}
	return entry.value, true, nil
}

// Set stores a copy of value
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = m.clock.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

// RedisConfig configures the Redis-backed cache
type RedisConfig struct {
	Client redis.Client
	Prefix string
}

// Validate checks the configuration
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// Redis shares cached responses across server instances
type Redis struct {
	client redis.Client
	prefix string
}

// NewRedis creates a Redis-backed cache
func NewRedis(cfg *RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid cache config")
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "cache"
	}
	return &Redis{client: cfg.Client, prefix: prefix}, nil
}

func (r *Redis) key(key string) string {
	return r.prefix + ":" + key
}

// Get returns the cached value
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read cache key %s", key)
	}
	return value, true, nil
}

// Set stores the value with an optional expiry
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to write cache key %s", key)
	}
	return nil
}
