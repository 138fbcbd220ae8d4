package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/marketplace-sdk/pkg/cache"
)

func newRedis(t *testing.T) (*cache.Redis, *miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedis(client, "sdk:"), mr, client
}

func TestRedis_SetGetExpire(t *testing.T) {
	ctx := context.Background()
	c, mr, _ := newRedis(t)

	_, err := c.Get(ctx, "currencies")
	assert.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, c.Set(ctx, "currencies", []byte(`[1,2]`), time.Minute))
	assert.True(t, mr.Exists("sdk:currencies"))

	got, err := c.Get(ctx, "currencies")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), got)

	mr.FastForward(2 * time.Minute)

	ok, err := c.Exists(ctx, "currencies")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_ClearKeepsForeignKeys(t *testing.T) {
	ctx := context.Background()
	c, mr, _ := newRedis(t)

	require.NoError(t, mr.Set("other:key", "x"))
	require.NoError(t, c.SetMultiple(ctx, map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}, 0))

	stats, err := c.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Keys)

	require.NoError(t, c.Clear(ctx))

	assert.False(t, mr.Exists("sdk:a"))
	assert.False(t, mr.Exists("sdk:b"))
	assert.True(t, mr.Exists("other:key"))
}

func TestRedis_GetMultiple(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newRedis(t)

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))

	got, err := c.GetMultiple(ctx, []string{"a", "missing"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": []byte("1")}, got)

	stats, err := c.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestRedis_Delete(t *testing.T) {
	ctx := context.Background()
	c, mr, _ := newRedis(t)

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Delete(ctx, "a"))
	assert.False(t, mr.Exists("sdk:a"))
}
