package builder

import (
	"context"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/webrpc"
)

const (
	AdminServiceName   = "Admin"
	BuilderServiceName = "Builder"
)

var Schema = webrpc.Schema{Name: "marketplace-builder", Version: "v0.1.0"}

// Client is the MarketplaceService method table, served under /rpc/Builder/.
type Client interface {
	LookupMarketplace(ctx context.Context, req *LookupMarketplaceRequest) (*MarketplaceConfig, error)
	GetMarketplace(ctx context.Context, req *GetMarketplaceRequest) (*MarketplaceConfig, error)
}

type BasicClient struct {
	svc *webrpc.Service
}

var _ Client = (*BasicClient)(nil)

func NewBasicClient(t *webrpc.Transport) *BasicClient {
	return &BasicClient{svc: webrpc.NewService(t, BuilderServiceName, Schema)}
}

func (c *BasicClient) LookupMarketplace(ctx context.Context, req *LookupMarketplaceRequest) (*MarketplaceConfig, error) {
	return webrpc.Invoke[MarketplaceConfig](ctx, c.svc, "LookupMarketplace", req)
}

func (c *BasicClient) GetMarketplace(ctx context.Context, req *GetMarketplaceRequest) (*MarketplaceConfig, error) {
	return webrpc.Invoke[MarketplaceConfig](ctx, c.svc, "GetMarketplace", req)
}
