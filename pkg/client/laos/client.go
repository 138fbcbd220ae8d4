package laos

import (
	"context"
	"log/slog"
	"net/http"
)

// Client reads LAOS bridge token data. LAOS-ERC721 collections are not
// served by the indexer, their balances come from here in a single call.
type Client interface {
	GetTokenBalances(ctx context.Context, req *GetTokenBalancesRequest) (*GetTokenBalancesResponse, error)
	GetTokenSupplies(ctx context.Context, req *GetTokenSuppliesRequest) (*GetTokenSuppliesResponse, error)
}

type BasicClient struct {
	client *http.Client
	logger *slog.Logger
	cfg    *Config
}

var _ Client = (*BasicClient)(nil)

func NewBasicClient(httpClient *http.Client, cfg *Config, log *slog.Logger) *BasicClient {
	return &BasicClient{
		client: httpClient,
		logger: log,
		cfg:    cfg,
	}
}
