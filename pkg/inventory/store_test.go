package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/indexer"
)

func balances(ids ...string) []*indexer.TokenBalance {
	out := make([]*indexer.TokenBalance, 0, len(ids))
	for _, id := range ids {
		out = append(out, &indexer.TokenBalance{TokenID: id, Balance: "1"})
	}
	return out
}

func TestStore_EnsureTTL(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStore(time.Minute)
	s.now = func() time.Time { return now }

	e := s.entry(NewKey(1, "0xc", "0xa"))
	first := s.ensure(e, true)
	first.lastPage = 3

	now = now.Add(2 * time.Minute)

	assert.Same(t, first, s.ensure(e, false), "mid-stream pages keep expired state")

	second := s.ensure(e, true)
	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.generation, second.generation)
	assert.Equal(t, 1, second.drainCursor)
}

func TestStore_Prune(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStore(time.Minute)
	s.now = func() time.Time { return now }

	stale := NewKey(1, "0xc", "0xa")
	s.ensure(s.entry(stale), true)

	now = now.Add(30 * time.Second)
	fresh := NewKey(1, "0xc", "0xb")
	s.ensure(s.entry(fresh), true)

	busy := NewKey(1, "0xc", "0xd")
	be := s.entry(busy)
	s.ensure(be, true)
	be.st.createdAt = now.Add(-time.Hour)
	be.mu.Lock()

	now = now.Add(45 * time.Second)

	assert.Equal(t, 1, s.Prune())
	be.mu.Unlock()

	_, ok := s.Generation(stale)
	assert.False(t, ok)
	_, ok = s.Generation(fresh)
	assert.True(t, ok)
	_, ok = s.Generation(busy)
	assert.True(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestStore_LockSkipsPrunedEntry(t *testing.T) {
	s := NewStore(time.Minute)
	key := NewKey(1, "0xc", "0xa")

	orphan := s.entry(key)
	require.Equal(t, 1, s.Prune())

	orphan.mu.Lock()
	assert.False(t, s.live(key, orphan))
	orphan.mu.Unlock()

	e := s.lock(key)
	assert.NotSame(t, orphan, e)
	st := s.ensure(e, true)
	st.seen["1"] = struct{}{}
	st.lastPage = 1
	e.mu.Unlock()

	next := s.lock(key)
	defer next.mu.Unlock()
	assert.Same(t, e, next)
	require.NotNil(t, next.st)
	assert.Equal(t, 1, next.st.lastPage)
	assert.True(t, next.st.isSeen("1"))
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(0)
	k1 := NewKey(1, "0xc", "0xa")
	k2 := NewKey(1, "0xc", "0xb")
	s.ensure(s.entry(k1), true)
	s.ensure(s.entry(k2), true)
	require.Equal(t, 2, s.Len())

	s.Clear(k1)
	assert.Equal(t, 1, s.Len())
	_, ok := s.Generation(k1)
	assert.False(t, ok)

	s.Clear(NewKey(5, "0xunknown", "0xa"))
	assert.Equal(t, 1, s.Len())

	s.ClearAll()
	assert.Equal(t, 0, s.Len())
}

func TestState_MergeIsIdempotent(t *testing.T) {
	st := newState(time.Now())
	page := balances("1", "02", "3")

	st.merge(page)
	st.merge(page)
	st.merge(balances("2"))

	assert.Equal(t, []string{"1", "2", "3"}, st.order)
	assert.Len(t, st.balances, 3)

	st.seen["1"] = struct{}{}
	missing := st.missing(map[string]struct{}{"3": {}})
	require.Len(t, missing, 1)
	assert.Equal(t, "2", missing[0].Metadata.TokenID)
}

func TestState_RestartKeepsBalances(t *testing.T) {
	st := newState(time.Now())
	st.merge(balances("1"))
	st.indexerFetched = true
	st.seen["1"] = struct{}{}
	st.marketFinished = true
	st.finishedAt = 2
	st.lastPage = 4

	st.restart()

	assert.Empty(t, st.seen)
	assert.False(t, st.marketFinished)
	assert.Zero(t, st.finishedAt)
	assert.Zero(t, st.lastPage)
	assert.True(t, st.indexerFetched)
	assert.Len(t, st.balances, 1)
}
