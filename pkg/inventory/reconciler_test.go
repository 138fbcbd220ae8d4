package inventory_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/builder"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/indexer"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/laos"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/metadata"
	"github.com/vladislavprovich/marketplace-sdk/pkg/inventory"
)

const (
	collection = "0x1111111111111111111111111111111111111111"
	account    = "0x2222222222222222222222222222222222222222"
)

type mockMarket struct {
	mock.Mock
}

func (m *mockMarket) ListCollectibles(
	ctx context.Context,
	req *marketplace.ListCollectiblesRequest,
) (*marketplace.ListCollectiblesResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*marketplace.ListCollectiblesResponse)
	return resp, args.Error(1)
}

type mockBalances struct {
	mock.Mock
}

func (m *mockBalances) GetTokenBalances(
	ctx context.Context,
	req *indexer.GetTokenBalancesRequest,
) (*indexer.GetTokenBalancesResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*indexer.GetTokenBalancesResponse)
	return resp, args.Error(1)
}

type mockLAOS struct {
	mock.Mock
}

func (m *mockLAOS) GetTokenBalances(
	ctx context.Context,
	req *laos.GetTokenBalancesRequest,
) (*laos.GetTokenBalancesResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*laos.GetTokenBalancesResponse)
	return resp, args.Error(1)
}

func marketPage(n int) any {
	return mock.MatchedBy(func(req *marketplace.ListCollectiblesRequest) bool {
		return req.Page != nil && req.Page.Page == n
	})
}

func indexerPage(n int) any {
	return mock.MatchedBy(func(req *indexer.GetTokenBalancesRequest) bool {
		return req.Page != nil && req.Page.Page == n
	})
}

func market(more bool, ids ...string) *marketplace.ListCollectiblesResponse {
	resp := &marketplace.ListCollectiblesResponse{Page: &marketplace.Page{More: more}}
	for _, id := range ids {
		resp.Collectibles = append(resp.Collectibles, &marketplace.CollectibleOrder{
			Metadata: &metadata.TokenMetadata{TokenID: id},
			Order:    &marketplace.Order{TokenID: id},
		})
	}
	return resp
}

func holdings(more bool, ids ...string) *indexer.GetTokenBalancesResponse {
	resp := &indexer.GetTokenBalancesResponse{Page: &indexer.Page{More: more}}
	for _, id := range ids {
		resp.Balances = append(resp.Balances, &indexer.TokenBalance{
			TokenID:      id,
			Balance:      "1" + id,
			ContractType: marketplace.ContractTypeERC1155,
		})
	}
	return resp
}

func ids(p *inventory.Page) []string {
	out := make([]string, 0, len(p.Collectibles))
	for _, c := range p.Collectibles {
		out = append(out, c.Metadata.TokenID)
	}
	return out
}

func newReconciler(m *mockMarket, b *mockBalances, mode inventory.Mode) *inventory.Reconciler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return inventory.NewReconciler(
		inventory.NewStore(time.Minute),
		inventory.Deps{
			Market: m,
			Indexer: func(uint64) (inventory.BalanceSource, error) {
				return b, nil
			},
		},
		mode,
		logger,
	)
}

func defaultArgs() inventory.Args {
	return inventory.Args{ChainID: 137, CollectionAddress: collection, AccountAddress: account}
}

func TestReconciler_FullStream(t *testing.T) {
	m := &mockMarket{}
	b := &mockBalances{}
	r := newReconciler(m, b, inventory.ModeReconcile)
	ctx := context.Background()

	b.On("GetTokenBalances", mock.Anything, indexerPage(1)).Return(holdings(true, "1", "2", "3"), nil).Once()
	b.On("GetTokenBalances", mock.Anything, indexerPage(2)).Return(holdings(false, "4", "5"), nil).Once()
	m.On("ListCollectibles", mock.Anything, marketPage(1)).
		Run(func(mock.Arguments) {
			b.AssertNumberOfCalls(t, "GetTokenBalances", 2)
		}).
		Return(market(true, "2", "7"), nil).Once()
	m.On("ListCollectibles", mock.Anything, marketPage(2)).Return(market(false, "03"), nil).Once()

	var (
		all  []string
		more []bool
	)
	for page := 1; page <= 5; page++ {
		res, err := r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: page, PageSize: 2})
		require.NoError(t, err, "page %d", page)
		assert.Equal(t, page, res.Page.Page)
		all = append(all, ids(res)...)
		more = append(more, res.Page.More)
	}

	assert.Equal(t, []string{"2", "7", "03", "1", "4", "5"}, all)
	assert.Equal(t, []bool{true, true, false, false, false}, more)

	m.AssertExpectations(t)
	b.AssertExpectations(t)
}

func TestReconciler_EnrichesMarketCollectibles(t *testing.T) {
	m := &mockMarket{}
	b := &mockBalances{}
	r := newReconciler(m, b, inventory.ModeReconcile)

	b.On("GetTokenBalances", mock.Anything, indexerPage(1)).Return(holdings(false, "2"), nil).Once()
	m.On("ListCollectibles", mock.Anything, mock.MatchedBy(func(req *marketplace.ListCollectiblesRequest) bool {
		return req.Side == marketplace.OrderSideListing &&
			req.ChainID == "137" &&
			req.Filter != nil &&
			assert.ObjectsAreEqual([]string{account}, req.Filter.InAccounts)
	})).Return(market(false, "2", "9"), nil).Once()

	res, err := r.Fetch(context.Background(), defaultArgs(), marketplace.Page{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, res.Collectibles, 2)

	assert.Equal(t, "12", res.Collectibles[0].Balance)
	assert.Equal(t, marketplace.ContractTypeERC1155, res.Collectibles[0].ContractType)
	assert.NotNil(t, res.Collectibles[0].Order)
	assert.Empty(t, res.Collectibles[1].Balance)
	assert.False(t, res.Page.More)

	m.AssertExpectations(t)
}

func TestReconciler_DefaultPageSize(t *testing.T) {
	m := &mockMarket{}
	b := &mockBalances{}
	r := newReconciler(m, b, inventory.ModeReconcile)

	b.On("GetTokenBalances", mock.Anything, indexerPage(1)).Return(holdings(false), nil).Once()
	m.On("ListCollectibles", mock.Anything, mock.MatchedBy(func(req *marketplace.ListCollectiblesRequest) bool {
		return req.Page.Page == 1 && req.Page.PageSize == inventory.DefaultPageSize
	})).Return(market(false), nil).Once()

	res, err := r.Fetch(context.Background(), defaultArgs(), marketplace.Page{})
	require.NoError(t, err)
	assert.Empty(t, res.Collectibles)
	assert.False(t, res.Page.More)
	m.AssertExpectations(t)
}

func TestReconciler_ResumesDrainAfterFailure(t *testing.T) {
	m := &mockMarket{}
	b := &mockBalances{}
	r := newReconciler(m, b, inventory.ModeReconcile)
	ctx := context.Background()

	b.On("GetTokenBalances", mock.Anything, indexerPage(1)).Return(holdings(true, "1"), nil).Once()
	b.On("GetTokenBalances", mock.Anything, indexerPage(2)).Return(nil, errors.New("indexer down")).Once()
	b.On("GetTokenBalances", mock.Anything, indexerPage(2)).Return(holdings(false, "2"), nil).Once()
	m.On("ListCollectibles", mock.Anything, marketPage(1)).Return(market(false), nil).Once()

	_, err := r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: 1, PageSize: 10})
	require.Error(t, err)
	m.AssertNotCalled(t, "ListCollectibles", mock.Anything, mock.Anything)

	res, err := r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(res))

	b.AssertNumberOfCalls(t, "GetTokenBalances", 3)
	b.AssertExpectations(t)
}

func TestReconciler_ConcurrentFirstPageDrainsOnce(t *testing.T) {
	m := &mockMarket{}
	b := &mockBalances{}
	r := newReconciler(m, b, inventory.ModeReconcile)

	b.On("GetTokenBalances", mock.Anything, indexerPage(1)).
		Run(func(mock.Arguments) { time.Sleep(50 * time.Millisecond) }).
		Return(holdings(false, "1", "2"), nil)
	m.On("ListCollectibles", mock.Anything, marketPage(1)).Return(market(false), nil)

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.Fetch(context.Background(), defaultArgs(), marketplace.Page{Page: 1, PageSize: 10})
			if err == nil && len(res.Collectibles) != 2 {
				err = errors.New("unexpected first page")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	b.AssertNumberOfCalls(t, "GetTokenBalances", 1)
	m.AssertNumberOfCalls(t, "ListCollectibles", callers)
}

func TestReconciler_PageOrdering(t *testing.T) {
	m := &mockMarket{}
	b := &mockBalances{}
	r := newReconciler(m, b, inventory.ModeReconcile)
	ctx := context.Background()

	b.On("GetTokenBalances", mock.Anything, indexerPage(1)).Return(holdings(false, "5"), nil).Once()
	m.On("ListCollectibles", mock.Anything, marketPage(1)).Return(market(true, "1"), nil).Times(2)
	m.On("ListCollectibles", mock.Anything, marketPage(2)).Return(market(false, "2"), nil).Once()

	first, err := r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: 1, PageSize: 1})
	require.NoError(t, err)
	_, err = r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: 2, PageSize: 1})
	require.NoError(t, err)

	_, err = r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: 2, PageSize: 1})
	require.ErrorIs(t, err, inventory.ErrPageOutOfOrder)

	restarted, err := r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, ids(first), ids(restarted))

	b.AssertNumberOfCalls(t, "GetTokenBalances", 1)
	m.AssertExpectations(t)
}

func TestReconciler_MarketFailureKeepsState(t *testing.T) {
	m := &mockMarket{}
	b := &mockBalances{}
	r := newReconciler(m, b, inventory.ModeReconcile)
	ctx := context.Background()

	b.On("GetTokenBalances", mock.Anything, indexerPage(1)).Return(holdings(false, "1", "2", "3"), nil).Once()
	m.On("ListCollectibles", mock.Anything, marketPage(1)).Return(market(true, "1"), nil).Once()
	m.On("ListCollectibles", mock.Anything, marketPage(2)).Return(nil, errors.New("market down")).Once()
	m.On("ListCollectibles", mock.Anything, marketPage(2)).Return(market(false), nil).Once()

	_, err := r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: 1, PageSize: 5})
	require.NoError(t, err)

	_, err = r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: 2, PageSize: 5})
	require.Error(t, err)

	res, err := r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, ids(res))
	assert.False(t, res.Page.More)

	m.AssertExpectations(t)
}

func TestReconciler_CanonicalTokenIDs(t *testing.T) {
	m := &mockMarket{}
	b := &mockBalances{}
	r := newReconciler(m, b, inventory.ModeReconcile)

	b.On("GetTokenBalances", mock.Anything, indexerPage(1)).Return(holdings(false, "7", "8"), nil).Once()
	m.On("ListCollectibles", mock.Anything, marketPage(1)).Return(market(false, "007"), nil).Once()

	res, err := r.Fetch(context.Background(), defaultArgs(), marketplace.Page{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"007", "8"}, ids(res))
	assert.Equal(t, "17", res.Collectibles[0].Balance)
}

func TestReconciler_CancelledContextStopsDrain(t *testing.T) {
	m := &mockMarket{}
	b := &mockBalances{}
	r := newReconciler(m, b, inventory.ModeReconcile)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: 1, PageSize: 10})
	require.ErrorIs(t, err, context.Canceled)
	b.AssertNotCalled(t, "GetTokenBalances", mock.Anything, mock.Anything)
	m.AssertNotCalled(t, "ListCollectibles", mock.Anything, mock.Anything)
}

func TestReconciler_ClearResetsKey(t *testing.T) {
	m := &mockMarket{}
	b := &mockBalances{}
	r := newReconciler(m, b, inventory.ModeReconcile)
	ctx := context.Background()

	b.On("GetTokenBalances", mock.Anything, indexerPage(1)).Return(holdings(false, "1"), nil).Twice()
	m.On("ListCollectibles", mock.Anything, marketPage(1)).Return(market(true), nil)
	m.On("ListCollectibles", mock.Anything, marketPage(2)).Return(market(false), nil)

	_, err := r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: 1, PageSize: 10})
	require.NoError(t, err)

	key := defaultArgs().Key()
	gen, ok := r.Store().Generation(key)
	require.True(t, ok)

	r.Store().Clear(key)
	_, ok = r.Store().Generation(key)
	assert.False(t, ok)

	// a cleared key accepts any page and drains again
	res, err := r.Fetch(ctx, defaultArgs(), marketplace.Page{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(res))

	next, ok := r.Store().Generation(key)
	require.True(t, ok)
	assert.NotEqual(t, gen, next)
	b.AssertExpectations(t)
}

func TestReconciler_IsTradable(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *builder.MarketplaceConfig
		cfgErr  error
		want    bool
		wantErr bool
	}{
		{
			name: "configured collection",
			cfg: &builder.MarketplaceConfig{MarketCollections: []*builder.MarketCollection{
				{ChainID: 137, ItemsAddress: "0x1111111111111111111111111111111111111111"},
			}},
			want: true,
		},
		{
			name: "other chain",
			cfg: &builder.MarketplaceConfig{MarketCollections: []*builder.MarketCollection{
				{ChainID: 1, ItemsAddress: collection},
			}},
			want: false,
		},
		{
			name:    "config failure",
			cfgErr:  errors.New("builder down"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockMarket{}
			b := &mockBalances{}
			b.On("GetTokenBalances", mock.Anything, indexerPage(1)).Return(holdings(false), nil).Maybe()
			m.On("ListCollectibles", mock.Anything, marketPage(1)).Return(market(false), nil).Maybe()

			r := inventory.NewReconciler(inventory.NewStore(0), inventory.Deps{
				Market:  m,
				Indexer: func(uint64) (inventory.BalanceSource, error) { return b, nil },
				Config: func(context.Context) (*builder.MarketplaceConfig, error) {
					return tt.cfg, tt.cfgErr
				},
			}, inventory.ModeReconcile, nil)

			args := defaultArgs()
			args.CollectionAddress = "0x1111111111111111111111111111111111111111"

			res, err := r.Fetch(context.Background(), args, marketplace.Page{Page: 1})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.IsTradable)
		})
	}
}

func TestReconciler_IndexerOnly(t *testing.T) {
	m := &mockMarket{}
	b := &mockBalances{}
	r := newReconciler(m, b, inventory.ModeIndexerOnly)

	b.On("GetTokenBalances", mock.Anything, mock.MatchedBy(func(req *indexer.GetTokenBalancesRequest) bool {
		return req.Page.Page == 3 && req.Page.PageSize == 4 && req.IncludeMetadata
	})).Return(holdings(true, "10", "11"), nil).Once()

	res, err := r.Fetch(context.Background(), defaultArgs(), marketplace.Page{Page: 3, PageSize: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "11"}, ids(res))
	assert.True(t, res.Page.More)
	assert.Equal(t, 3, res.Page.Page)

	m.AssertNotCalled(t, "ListCollectibles", mock.Anything, mock.Anything)
	assert.Zero(t, r.Store().Len())
}

func TestReconciler_LAOSCollection(t *testing.T) {
	m := &mockMarket{}
	l := &mockLAOS{}

	l.On("GetTokenBalances", mock.Anything, mock.MatchedBy(func(req *laos.GetTokenBalancesRequest) bool {
		return req.ChainID == "137" && req.AccountAddress == account && req.IncludeMetadata
	})).Return(&laos.GetTokenBalancesResponse{
		Balances: []*indexer.TokenBalance{{TokenID: "42", Balance: "1"}},
	}, nil).Once()
	m.On("ListCollectibles", mock.Anything, marketPage(1)).Return(market(false), nil).Once()

	r := inventory.NewReconciler(inventory.NewStore(0), inventory.Deps{
		Market: m,
		LAOS:   l,
		Indexer: func(uint64) (inventory.BalanceSource, error) {
			return nil, errors.New("indexer must not be used")
		},
	}, inventory.ModeReconcile, nil)

	args := defaultArgs()
	args.ContractType = marketplace.ContractTypeLAOSERC721

	res, err := r.Fetch(context.Background(), args, marketplace.Page{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, ids(res))
	l.AssertExpectations(t)
}
