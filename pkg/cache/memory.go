package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/vladislavprovich/marketplace-sdk/pkg/metrics"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process Service backed by an expirable LRU. The LRU TTL is
// the upper bound, per-entry TTLs shorter than it are honoured on read.
type Memory struct {
	lru     *expirable.LRU[string, entry]
	hits    atomic.Int64
	misses  atomic.Int64
	started time.Time
	now     func() time.Time
}

var _ Service = (*Memory)(nil)

func NewMemory(size int, maxTTL time.Duration) *Memory {
	return &Memory{
		lru:     expirable.NewLRU[string, entry](size, nil, maxTTL),
		started: time.Now(),
		now:     time.Now,
	}
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.lru.Add(key, e)
	return nil
}

func (m *Memory) lookup(key string) ([]byte, bool) {
	e, ok := m.lru.Get(key)
	if ok && !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.lru.Remove(key)
		ok = false
	}
	if !ok {
		m.misses.Add(1)
		metrics.CacheLookups.WithLabelValues("memory", "miss").Inc()
		return nil, false
	}
	m.hits.Add(1)
	metrics.CacheLookups.WithLabelValues("memory", "hit").Inc()
	return e.value, true
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.lookup(key)
	if !ok {
		return nil, ErrMiss
	}
	return v, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.lru.Remove(key)
	return nil
}

func (m *Memory) Exists(_ context.Context, key string) (bool, error) {
	e, ok := m.lru.Peek(key)
	if !ok {
		return false, nil
	}
	return e.expiresAt.IsZero() || m.now().Before(e.expiresAt), nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.lru.Purge()
	return nil
}

func (m *Memory) GetStats(_ context.Context) (*Stats, error) {
	var size int64
	for _, e := range m.lru.Values() {
		size += int64(len(e.value))
	}
	return &Stats{
		Hits:   m.hits.Load(),
		Misses: m.misses.Load(),
		Keys:   int64(m.lru.Len()),
		Memory: size,
		Uptime: m.started,
	}, nil
}

func (m *Memory) GetMultiple(_ context.Context, keys []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := m.lookup(k); ok {
			out[k] = v
		}
	}
	return out, nil
}

func (m *Memory) SetMultiple(ctx context.Context, entries map[string][]byte, ttl time.Duration) error {
	for k, v := range entries {
		if err := m.Set(ctx, k, v, ttl); err != nil {
			return err
		}
	}
	return nil
}
