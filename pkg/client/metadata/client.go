package metadata

import (
	"context"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/webrpc"
)

const ServiceName = "Metadata"

var Schema = webrpc.Schema{Name: "sequence-metadata", Version: "v0.4.0"}

type Client interface {
	GetTokenMetadata(ctx context.Context, req *GetTokenMetadataRequest) (*GetTokenMetadataResponse, error)
	SearchTokenMetadata(ctx context.Context, req *SearchTokenMetadataRequest) (*SearchTokenMetadataResponse, error)
	GetContractInfo(ctx context.Context, req *GetContractInfoRequest) (*GetContractInfoResponse, error)
	TokenCollectionFilters(
		ctx context.Context,
		req *TokenCollectionFiltersRequest,
	) (*TokenCollectionFiltersResponse, error)
}

type BasicClient struct {
	svc *webrpc.Service
}

var _ Client = (*BasicClient)(nil)

func NewBasicClient(t *webrpc.Transport) *BasicClient {
	return &BasicClient{svc: webrpc.NewService(t, ServiceName, Schema)}
}

func (c *BasicClient) GetTokenMetadata(
	ctx context.Context,
	req *GetTokenMetadataRequest,
) (*GetTokenMetadataResponse, error) {
	return webrpc.Invoke[GetTokenMetadataResponse](ctx, c.svc, "GetTokenMetadata", req)
}

func (c *BasicClient) SearchTokenMetadata(
	ctx context.Context,
	req *SearchTokenMetadataRequest,
) (*SearchTokenMetadataResponse, error) {
	return webrpc.Invoke[SearchTokenMetadataResponse](ctx, c.svc, "SearchTokenMetadata", req)
}

func (c *BasicClient) GetContractInfo(
	ctx context.Context,
	req *GetContractInfoRequest,
) (*GetContractInfoResponse, error) {
	return webrpc.Invoke[GetContractInfoResponse](ctx, c.svc, "GetContractInfo", req)
}

func (c *BasicClient) TokenCollectionFilters(
	ctx context.Context,
	req *TokenCollectionFiltersRequest,
) (*TokenCollectionFiltersResponse, error) {
	return webrpc.Invoke[TokenCollectionFiltersResponse](ctx, c.svc, "TokenCollectionFilters", req)
}
