package inventory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/vladislavprovich/marketplace-sdk/pkg/metrics"
)

const DefaultStateTTL = 10 * time.Minute

type entry struct {
	mu sync.Mutex
	st *state
}

// Store holds inventory state per key. Each key has its own mutex, so page
// requests of one stream are serialised while other keys proceed.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
	ttl     time.Duration
	now     func() time.Time
	drains  singleflight.Group
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	return &Store{
		entries: make(map[Key]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) entry(key Key) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		e = &entry{}
		s.entries[key] = e
	}
	return e
}

// lock returns key's entry with its mutex held. An entry pruned between the
// map lookup and the lock is discarded and looked up again, so every page of
// a stream lands on the entry held by the map.
func (s *Store) lock(key Key) *entry {
	for {
		e := s.entry(key)
		e.mu.Lock()
		if s.live(key, e) {
			return e
		}
		e.mu.Unlock()
	}
}

func (s *Store) live(key Key, e *entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[key] == e
}

func (s *Store) expired(st *state) bool {
	return s.now().Sub(st.createdAt) > s.ttl
}

// ensure returns the entry's state, creating it when absent or, on a stream
// start, replacing it once its TTL has passed. Caller holds e.mu.
func (s *Store) ensure(e *entry, streamStart bool) *state {
	switch {
	case e.st == nil:
		e.st = newState(s.now())
		metrics.InventoryStates.Inc()
	case streamStart && s.expired(e.st):
		e.st = newState(s.now())
	}
	return e.st
}

// Generation reports the generation id of key's current state.
func (s *Store) Generation(key Key) (uuid.UUID, bool) {
	s.mu.Lock()
	e, ok := s.entries[key]
	s.mu.Unlock()
	if !ok {
		return uuid.Nil, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.st == nil {
		return uuid.Nil, false
	}
	return e.st.generation, true
}

// Clear drops the state of one key. A drain in flight for it is discarded.
func (s *Store) Clear(key Key) {
	s.mu.Lock()
	e, ok := s.entries[key]
	s.mu.Unlock()
	if !ok {
		return
	}

	e.mu.Lock()
	if e.st != nil {
		e.st = nil
		metrics.InventoryStates.Dec()
	}
	e.mu.Unlock()
}

// ClearAll drops every key's state.
func (s *Store) ClearAll() {
	s.mu.Lock()
	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.Unlock()

	for _, e := range entries {
		e.mu.Lock()
		if e.st != nil {
			e.st = nil
			metrics.InventoryStates.Dec()
		}
		e.mu.Unlock()
	}
}

// Prune removes idle entries whose state outlived the TTL and returns how
// many were removed. Entries busy serving a page are skipped.
func (s *Store) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.st == nil || s.expired(e.st) {
			if e.st != nil {
				metrics.InventoryStates.Dec()
			}
			e.st = nil
			delete(s.entries, key)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

// Len returns the number of keys with state.
func (s *Store) Len() int {
	s.mu.Lock()
	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.Unlock()

	n := 0
	for _, e := range entries {
		e.mu.Lock()
		if e.st != nil {
			n++
		}
		e.mu.Unlock()
	}
	return n
}
