package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/marketplace-sdk/pkg/cache"
)

type currency struct {
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
}

func TestRemember(t *testing.T) {
	ctx := context.Background()
	svc := cache.NewMemory(8, time.Hour)

	calls := 0
	fetch := func(context.Context) ([]currency, error) {
		calls++
		return []currency{{Address: "0xa", Decimals: 6}}, nil
	}

	first, err := cache.Remember(ctx, svc, "currencies:137", time.Minute, fetch)
	require.NoError(t, err)

	second, err := cache.Remember(ctx, svc, "currencies:137", time.Minute, fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestRemember_FetchErrorNotCached(t *testing.T) {
	ctx := context.Background()
	svc := cache.NewMemory(8, time.Hour)
	boom := errors.New("boom")

	_, err := cache.Remember(ctx, svc, "k", time.Minute, func(context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)

	ok, err := svc.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemember_NilService(t *testing.T) {
	got, err := cache.Remember(context.Background(), nil, "k", time.Minute, func(context.Context) (string, error) {
		return "v", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
