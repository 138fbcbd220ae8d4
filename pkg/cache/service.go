package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Service defines the interface for cache operations
type Service interface {
	// Set stores a value with the given key and TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value by key
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a value by key
	Delete(ctx context.Context, key string) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// Clear removes all entries from cache
	Clear(ctx context.Context) error

	// GetStats returns cache statistics
	GetStats(ctx context.Context) (*Stats, error)

	// GetMultiple retrieves multiple values by keys, absent keys are omitted
	GetMultiple(ctx context.Context, keys []string) (map[string][]byte, error)

	// SetMultiple stores multiple key-value pairs
	SetMultiple(ctx context.Context, entries map[string][]byte, ttl time.Duration) error
}

// Stats represents cache statistics
type Stats struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	Keys        int64     `json:"keys"`
	Memory      int64     `json:"memory_bytes"`
	Connections int       `json:"connections"`
	Uptime      time.Time `json:"uptime"`
}

// Remember returns the JSON value cached under key, or calls fetch and caches
// its result. Cache failures other than a miss fall through to fetch.
func Remember[T any](
	ctx context.Context,
	svc Service,
	key string,
	ttl time.Duration,
	fetch func(ctx context.Context) (T, error),
) (T, error) {
	var zero T
	if svc == nil {
		return fetch(ctx)
	}

	if raw, err := svc.Get(ctx, key); err == nil {
		var v T
		if err = json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return zero, fmt.Errorf("error marshalling cache value for %s: %w", key, err)
	}
	_ = svc.Set(ctx, key, raw, ttl)

	return v, nil
}
