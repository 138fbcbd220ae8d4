package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/builder"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/indexer"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/laos"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
	"github.com/vladislavprovich/marketplace-sdk/pkg/metrics"
)

const (
	DefaultPageSize = 30
	drainPageSize   = 100
)

var ErrPageOutOfOrder = errors.New("inventory pages must be requested in increasing order")

type Mode int

const (
	// ModeReconcile merges market listings with indexer balances.
	ModeReconcile Mode = iota
	// ModeIndexerOnly serves one indexer balance page per request.
	ModeIndexerOnly
)

type (
	MarketSource interface {
		ListCollectibles(
			ctx context.Context,
			req *marketplace.ListCollectiblesRequest,
		) (*marketplace.ListCollectiblesResponse, error)
	}

	BalanceSource interface {
		GetTokenBalances(ctx context.Context, req *indexer.GetTokenBalancesRequest) (*indexer.GetTokenBalancesResponse, error)
	}

	LAOSSource interface {
		GetTokenBalances(ctx context.Context, req *laos.GetTokenBalancesRequest) (*laos.GetTokenBalancesResponse, error)
	}

	IndexerResolver func(chainID uint64) (BalanceSource, error)

	ConfigSource func(ctx context.Context) (*builder.MarketplaceConfig, error)
)

type Deps struct {
	Market  MarketSource
	Indexer IndexerResolver
	LAOS    LAOSSource
	Config  ConfigSource
}

type Args struct {
	ChainID           uint64
	CollectionAddress string
	AccountAddress    string
	// ContractType selects the LAOS bridge for LAOS-ERC721 collections.
	ContractType marketplace.ContractType
}

func (a Args) Key() Key {
	return NewKey(a.ChainID, a.CollectionAddress, a.AccountAddress)
}

type Page struct {
	Collectibles []*Collectible   `json:"collectibles"`
	Page         marketplace.Page `json:"page"`
	IsTradable   bool             `json:"isTradable"`
}

type Reconciler struct {
	store  *Store
	deps   Deps
	mode   Mode
	logger *slog.Logger
}

func NewReconciler(store *Store, deps Deps, mode Mode, log *slog.Logger) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{
		store:  store,
		deps:   deps,
		mode:   mode,
		logger: log,
	}
}

func (r *Reconciler) Store() *Store {
	return r.store
}

func normalizePage(p marketplace.Page) marketplace.Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	p.More = false
	return p
}

func (r *Reconciler) isTradable(ctx context.Context, args Args) (bool, error) {
	if r.deps.Config == nil {
		return false, nil
	}
	cfg, err := r.deps.Config(ctx)
	if err != nil {
		return false, fmt.Errorf("error fetching marketplace config: %w", err)
	}
	return cfg.IsTradable(args.ChainID, args.CollectionAddress), nil
}

// Fetch returns one page of the account's inventory. Pages of a key must be
// requested in increasing order, page 1 restarts the stream.
func (r *Reconciler) Fetch(ctx context.Context, args Args, page marketplace.Page) (*Page, error) {
	page = normalizePage(page)

	tradable, err := r.isTradable(ctx, args)
	if err != nil {
		return nil, err
	}

	if r.mode == ModeIndexerOnly {
		return r.fetchIndexerOnly(ctx, args, page, tradable)
	}

	key := args.Key()
	e := r.store.lock(key)
	defer func() { e.mu.Unlock() }()

	for {
		st := r.store.ensure(e, page.Page == 1)
		if st.indexerFetched {
			break
		}

		gen := st.generation
		drained := e
		e.mu.Unlock()
		_, err, _ = r.store.drains.Do(key.String()+"/"+gen.String(), func() (any, error) {
			return nil, r.drain(ctx, drained, st, args)
		})
		e = r.store.lock(key)

		if err != nil {
			return nil, err
		}
	}

	st := e.st
	if page.Page <= st.lastPage {
		if page.Page != 1 {
			return nil, fmt.Errorf("page %d after page %d: %w", page.Page, st.lastPage, ErrPageOutOfOrder)
		}
		st.restart()
	}

	var result *Page
	if st.marketFinished {
		result = r.residualPage(st, page)
	} else {
		result, err = r.marketPage(ctx, st, args, page)
		if err != nil {
			return nil, err
		}
	}

	result.IsTradable = tradable
	return result, nil
}

// drain fetches every indexer balance page of the key into st. The cursor
// survives failures, so a retry resumes at the failed page.
func (r *Reconciler) drain(ctx context.Context, e *entry, st *state, args Args) error {
	if args.ContractType == marketplace.ContractTypeLAOSERC721 && r.deps.LAOS != nil {
		return r.drainLAOS(ctx, e, st, args)
	}

	src, err := r.deps.Indexer(args.ChainID)
	if err != nil {
		return fmt.Errorf("error resolving indexer for chain %d: %w", args.ChainID, err)
	}

	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		e.mu.Lock()
		if e.st != st || st.indexerFetched {
			e.mu.Unlock()
			return nil
		}
		cursor := st.drainCursor
		e.mu.Unlock()

		resp, err := src.GetTokenBalances(ctx, &indexer.GetTokenBalancesRequest{
			AccountAddress:  args.AccountAddress,
			ContractAddress: args.CollectionAddress,
			IncludeMetadata: true,
			Page:            &indexer.Page{Page: cursor, PageSize: drainPageSize},
		})
		if err != nil {
			r.logger.ErrorContext(ctx, "indexer drain failed",
				slog.String("key", args.Key().String()),
				slog.Int("page", cursor),
				slog.Any("error", err),
			)
			return fmt.Errorf("error draining indexer balances page %d: %w", cursor, err)
		}
		metrics.InventoryDrainPages.Inc()

		e.mu.Lock()
		if e.st == st {
			st.merge(resp.Balances)
			st.drainCursor = cursor + 1
			if resp.Page == nil || !resp.Page.More {
				st.indexerFetched = true
			}
		}
		e.mu.Unlock()
	}
}

func (r *Reconciler) drainLAOS(ctx context.Context, e *entry, st *state, args Args) error {
	resp, err := r.deps.LAOS.GetTokenBalances(ctx, &laos.GetTokenBalancesRequest{
		ChainID:         strconv.FormatUint(args.ChainID, 10),
		AccountAddress:  args.AccountAddress,
		ContractAddress: args.CollectionAddress,
		IncludeMetadata: true,
	})
	if err != nil {
		return fmt.Errorf("error fetching laos balances: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.st == st {
		st.merge(resp.Balances)
		st.indexerFetched = true
	}
	return nil
}

// marketPage serves one market page while the market has listings. State is
// only updated after the upstream call succeeded.
func (r *Reconciler) marketPage(ctx context.Context, st *state, args Args, page marketplace.Page) (*Page, error) {
	resp, err := r.deps.Market.ListCollectibles(ctx, &marketplace.ListCollectiblesRequest{
		ChainID:         strconv.FormatUint(args.ChainID, 10),
		Side:            marketplace.OrderSideListing,
		ContractAddress: args.CollectionAddress,
		Filter:          &marketplace.CollectiblesFilter{InAccounts: []string{args.AccountAddress}},
		Page:            &page,
	})
	if err != nil {
		return nil, fmt.Errorf("error listing market collectibles page %d: %w", page.Page, err)
	}

	pageSeen := make(map[string]struct{})
	collectibles := make([]*Collectible, 0, len(resp.Collectibles))
	for _, co := range resp.Collectibles {
		if co == nil || co.Metadata == nil {
			continue
		}
		id := CanonicalTokenID(co.Metadata.TokenID)
		if _, dup := pageSeen[id]; dup || st.isSeen(id) {
			continue
		}
		pageSeen[id] = struct{}{}

		c := &Collectible{CollectibleOrder: *co}
		if b, ok := st.balances[id]; ok {
			c.Balance = b.Balance
			c.ContractType = b.ContractType
		}
		collectibles = append(collectibles, c)
	}

	out := &Page{Page: page}

	if resp.Page != nil && resp.Page.More {
		for id := range pageSeen {
			st.seen[id] = struct{}{}
		}
		st.lastPage = page.Page
		out.Collectibles = collectibles
		out.Page.More = true
		metrics.InventoryPagesServed.WithLabelValues("market_active").Inc()
		return out, nil
	}

	missing := st.missing(pageSeen)
	take := min(len(missing), page.PageSize)

	for id := range pageSeen {
		st.seen[id] = struct{}{}
	}
	for _, c := range missing[:take] {
		st.seen[CanonicalTokenID(c.Metadata.TokenID)] = struct{}{}
	}
	st.residual = missing[take:]
	st.marketFinished = true
	st.finishedAt = page.Page
	st.lastPage = page.Page

	out.Collectibles = append(collectibles, missing[:take]...)
	out.Page.More = len(st.residual) > 0
	metrics.InventoryPagesServed.WithLabelValues("transition").Inc()
	return out, nil
}

// residualPage slices the residual array frozen at the transition page.
func (r *Reconciler) residualPage(st *state, page marketplace.Page) *Page {
	start := (page.Page - st.finishedAt - 1) * page.PageSize
	st.lastPage = page.Page

	out := &Page{Page: page, Collectibles: []*Collectible{}}
	metrics.InventoryPagesServed.WithLabelValues("market_finished").Inc()

	if start >= len(st.residual) {
		return out
	}
	end := min(start+page.PageSize, len(st.residual))
	out.Collectibles = st.residual[start:end]
	out.Page.More = end < len(st.residual)
	return out
}

func (r *Reconciler) fetchIndexerOnly(ctx context.Context, args Args, page marketplace.Page, tradable bool) (*Page, error) {
	var (
		balances []*indexer.TokenBalance
		more     bool
	)

	if args.ContractType == marketplace.ContractTypeLAOSERC721 && r.deps.LAOS != nil {
		resp, err := r.deps.LAOS.GetTokenBalances(ctx, &laos.GetTokenBalancesRequest{
			ChainID:         strconv.FormatUint(args.ChainID, 10),
			AccountAddress:  args.AccountAddress,
			ContractAddress: args.CollectionAddress,
			IncludeMetadata: true,
			Page:            &laos.Page{Page: page.Page, PageSize: page.PageSize},
		})
		if err != nil {
			return nil, fmt.Errorf("error fetching laos balances: %w", err)
		}
		balances = resp.Balances
		more = resp.Page != nil && resp.Page.More
	} else {
		src, err := r.deps.Indexer(args.ChainID)
		if err != nil {
			return nil, fmt.Errorf("error resolving indexer for chain %d: %w", args.ChainID, err)
		}
		resp, err := src.GetTokenBalances(ctx, &indexer.GetTokenBalancesRequest{
			AccountAddress:  args.AccountAddress,
			ContractAddress: args.CollectionAddress,
			IncludeMetadata: true,
			Page:            &indexer.Page{Page: page.Page, PageSize: page.PageSize},
		})
		if err != nil {
			return nil, fmt.Errorf("error fetching indexer balances page %d: %w", page.Page, err)
		}
		balances = resp.Balances
		more = resp.Page != nil && resp.Page.More
	}

	out := &Page{
		Page:         page,
		Collectibles: make([]*Collectible, 0, len(balances)),
		IsTradable:   tradable,
	}
	for _, b := range balances {
		if b != nil {
			out.Collectibles = append(out.Collectibles, fromBalance(b))
		}
	}
	out.Page.More = more
	metrics.InventoryPagesServed.WithLabelValues("indexer_only").Inc()
	return out, nil
}
