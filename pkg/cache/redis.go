package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vladislavprovich/marketplace-sdk/pkg/metrics"
)

const scanBatch = 256

// Redis is a Service shared between processes. Every key is namespaced with
// prefix so Clear never touches foreign keys.
type Redis struct {
	client  redis.UniversalClient
	prefix  string
	hits    atomic.Int64
	misses  atomic.Int64
	started time.Time
}

var _ Service = (*Redis)(nil)

func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	return &Redis{
		client:  client,
		prefix:  prefix,
		started: time.Now(),
	}
}

func (r *Redis) key(k string) string {
	return r.prefix + k
}

func (r *Redis) record(hit bool) {
	if hit {
		r.hits.Add(1)
		metrics.CacheLookups.WithLabelValues("redis", "hit").Inc()
		return
	}
	r.misses.Add(1)
	metrics.CacheLookups.WithLabelValues("redis", "miss").Inc()
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("error setting cache key %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.record(false)
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("error getting cache key %s: %w", key, err)
	}
	r.record(true)
	return v, nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("error deleting cache key %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("error checking cache key %s: %w", key, err)
	}
	return n > 0, nil
}

func (r *Redis) scan(ctx context.Context, fn func(keys []string) error) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("error scanning cache keys: %w", err)
		}
		if len(keys) > 0 {
			if err = fn(keys); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (r *Redis) Clear(ctx context.Context) error {
	return r.scan(ctx, func(keys []string) error {
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("error clearing cache keys: %w", err)
		}
		return nil
	})
}

func (r *Redis) GetStats(ctx context.Context) (*Stats, error) {
	var n int64
	err := r.scan(ctx, func(keys []string) error {
		n += int64(len(keys))
		return nil
	})
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Hits:   r.hits.Load(),
		Misses: r.misses.Load(),
		Keys:   n,
		Uptime: r.started,
	}
	if ps := r.client.PoolStats(); ps != nil {
		stats.Connections = int(ps.TotalConns)
	}
	return stats, nil
}

func (r *Redis) GetMultiple(ctx context.Context, keys []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}

	vals, err := r.client.MGet(ctx, full...).Result()
	if err != nil {
		return nil, fmt.Errorf("error getting cache keys: %w", err)
	}

	for i, v := range vals {
		s, ok := v.(string)
		r.record(ok)
		if ok {
			out[keys[i]] = []byte(s)
		}
	}
	return out, nil
}

func (r *Redis) SetMultiple(ctx context.Context, entries map[string][]byte, ttl time.Duration) error {
	_, err := r.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for k, v := range entries {
			p.Set(ctx, r.key(k), v, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error setting cache keys: %w", err)
	}
	return nil
}
