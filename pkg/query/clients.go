package query

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/vladislavprovich/marketplace-sdk/pkg/cache"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/builder"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/indexer"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/laos"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/metadata"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/webrpc"
	"github.com/vladislavprovich/marketplace-sdk/pkg/config"
	"github.com/vladislavprovich/marketplace-sdk/pkg/inventory"
)

const (
	defaultPageSize = 30
	DefaultCacheTTL = 5 * time.Minute
)

// Clients resolves every service client from one SdkConfig. Indexer clients
// are created lazily per chain.
type Clients struct {
	cfg        *config.SdkConfig
	httpClient *http.Client
	logger     *slog.Logger

	cache    cache.Service
	cacheTTL time.Duration

	Marketplace marketplace.Client
	Metadata    metadata.Client
	Builder     builder.Client
	LAOS        laos.Client

	mu       sync.Mutex
	indexers map[uint64]indexer.Client

	inventory *inventory.Reconciler
}

type Option func(*Clients)

// WithCache memoises lookups such as currency lists in svc.
func WithCache(svc cache.Service, ttl time.Duration) Option {
	return func(c *Clients) {
		c.cache = svc
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithInventory replaces the default reconcile-mode inventory store.
func WithInventory(store *inventory.Store, mode inventory.Mode) Option {
	return func(c *Clients) {
		c.inventory = inventory.NewReconciler(store, c.inventoryDeps(), mode, c.logger)
	}
}

func NewClients(cfg *config.SdkConfig, httpClient *http.Client, log *slog.Logger, opts ...Option) *Clients {
	if log == nil {
		log = slog.Default()
	}

	c := &Clients{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     log,
		cacheTTL:   DefaultCacheTTL,
		indexers:   make(map[uint64]indexer.Client),
	}

	c.Marketplace = marketplace.NewBasicClient(c.transport(cfg.MarketplaceURL(), cfg.MarketplaceAccessKey()))
	c.Metadata = metadata.NewBasicClient(c.transport(cfg.MetadataURL(), cfg.MetadataAccessKey()))
	c.Builder = builder.NewBasicClient(c.transport(cfg.BuilderURL(), cfg.BuilderAccessKey()))
	c.LAOS = laos.NewBasicClient(httpClient, &laos.Config{BaseURL: cfg.LAOSURL(), Timeout: cfg.HTTPTimeout}, log)

	c.inventory = inventory.NewReconciler(inventory.NewStore(inventory.DefaultStateTTL), c.inventoryDeps(), inventory.ModeReconcile, log)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Clients) transport(baseURL, accessKey string) *webrpc.Transport {
	return webrpc.NewTransport(c.httpClient, &webrpc.Config{
		BaseURL:     baseURL,
		AccessKey:   accessKey,
		CallTimeout: c.cfg.HTTPTimeout,
	}, c.logger)
}

func (c *Clients) Config() *config.SdkConfig {
	return c.cfg
}

// Inventory returns the reconciler shared by every inventory query.
func (c *Clients) Inventory() *inventory.Reconciler {
	return c.inventory
}

// Indexer returns the indexer client of chainID.
func (c *Clients) Indexer(chainID uint64) (indexer.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ic, ok := c.indexers[chainID]; ok {
		return ic, nil
	}

	baseURL, err := c.cfg.IndexerURL(chainID)
	if err != nil {
		return nil, fmt.Errorf("error resolving indexer url: %w", err)
	}

	ic := indexer.NewBasicClient(c.transport(baseURL, c.cfg.IndexerAccessKey()))
	c.indexers[chainID] = ic
	return ic, nil
}

// SetIndexer registers the indexer client of chainID.
func (c *Clients) SetIndexer(chainID uint64, ic indexer.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.indexers[chainID] = ic
}

func (c *Clients) inventoryDeps() inventory.Deps {
	return inventory.Deps{
		Market: c.Marketplace,
		LAOS:   c.LAOS,
		Indexer: func(chainID uint64) (inventory.BalanceSource, error) {
			return c.Indexer(chainID)
		},
		Config: c.marketplaceConfig,
	}
}

func (c *Clients) projectID() (uint64, error) {
	id, err := strconv.ParseUint(c.cfg.ProjectID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid project id %q: %w", c.cfg.ProjectID, err)
	}
	return id, nil
}

func (c *Clients) marketplaceConfig(ctx context.Context) (*builder.MarketplaceConfig, error) {
	projectID, err := c.projectID()
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("marketplace-config:%d", projectID)
	return cache.Remember(ctx, c.cache, key, c.cacheTTL, func(ctx context.Context) (*builder.MarketplaceConfig, error) {
		cfg, err := c.Builder.LookupMarketplace(ctx, &builder.LookupMarketplaceRequest{ProjectID: projectID})
		if err != nil {
			return nil, fmt.Errorf("error looking up marketplace config: %w", err)
		}
		return cfg, nil
	})
}
