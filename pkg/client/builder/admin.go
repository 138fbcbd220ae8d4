package builder

import (
	"context"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/webrpc"
)

// AdminClient manages collections and currencies of a project.
type AdminClient interface {
	CreateCollection(ctx context.Context, req *CreateCollectionRequest) (*CollectionResponse, error)
	GetCollection(ctx context.Context, req *GetCollectionRequest) (*CollectionResponse, error)
	UpdateCollection(ctx context.Context, req *UpdateCollectionRequest) (*CollectionResponse, error)
	ListCollections(ctx context.Context, req *ListCollectionsRequest) (*ListCollectionsResponse, error)
	DeleteCollection(ctx context.Context, req *DeleteCollectionRequest) (*CollectionResponse, error)
	SyncCollection(ctx context.Context, req *SyncCollectionRequest) (*EmptyResponse, error)
	ListCollectibles(ctx context.Context, req *AdminListCollectiblesRequest) (*AdminListCollectiblesResponse, error)
	AddCurrency(ctx context.Context, req *AddCurrencyRequest) (*CurrencyResponse, error)
	UpdateCurrency(ctx context.Context, req *UpdateCurrencyRequest) (*CurrencyResponse, error)
	ListCurrencies(ctx context.Context, req *AdminListCurrenciesRequest) (*AdminListCurrenciesResponse, error)
	DeleteCurrency(ctx context.Context, req *DeleteCurrencyRequest) (*CurrencyResponse, error)
}

type BasicAdminClient struct {
	svc *webrpc.Service
}

var _ AdminClient = (*BasicAdminClient)(nil)

func NewBasicAdminClient(t *webrpc.Transport) *BasicAdminClient {
	return &BasicAdminClient{svc: webrpc.NewService(t, AdminServiceName, Schema)}
}

func (c *BasicAdminClient) CreateCollection(ctx context.Context, req *CreateCollectionRequest) (*CollectionResponse, error) {
	return webrpc.Invoke[CollectionResponse](ctx, c.svc, "CreateCollection", req)
}

func (c *BasicAdminClient) GetCollection(ctx context.Context, req *GetCollectionRequest) (*CollectionResponse, error) {
	return webrpc.Invoke[CollectionResponse](ctx, c.svc, "GetCollection", req)
}

func (c *BasicAdminClient) UpdateCollection(ctx context.Context, req *UpdateCollectionRequest) (*CollectionResponse, error) {
	return webrpc.Invoke[CollectionResponse](ctx, c.svc, "UpdateCollection", req)
}

func (c *BasicAdminClient) ListCollections(ctx context.Context, req *ListCollectionsRequest) (*ListCollectionsResponse, error) {
	return webrpc.Invoke[ListCollectionsResponse](ctx, c.svc, "ListCollections", req)
}

func (c *BasicAdminClient) DeleteCollection(ctx context.Context, req *DeleteCollectionRequest) (*CollectionResponse, error) {
	return webrpc.Invoke[CollectionResponse](ctx, c.svc, "DeleteCollection", req)
}

func (c *BasicAdminClient) SyncCollection(ctx context.Context, req *SyncCollectionRequest) (*EmptyResponse, error) {
	return webrpc.Invoke[EmptyResponse](ctx, c.svc, "SyncCollection", req)
}

func (c *BasicAdminClient) ListCollectibles(ctx context.Context, req *AdminListCollectiblesRequest) (*AdminListCollectiblesResponse, error) {
	return webrpc.Invoke[AdminListCollectiblesResponse](ctx, c.svc, "ListCollectibles", req)
}

func (c *BasicAdminClient) AddCurrency(ctx context.Context, req *AddCurrencyRequest) (*CurrencyResponse, error) {
	return webrpc.Invoke[CurrencyResponse](ctx, c.svc, "AddCurrency", req)
}

func (c *BasicAdminClient) UpdateCurrency(ctx context.Context, req *UpdateCurrencyRequest) (*CurrencyResponse, error) {
	return webrpc.Invoke[CurrencyResponse](ctx, c.svc, "UpdateCurrency", req)
}

func (c *BasicAdminClient) ListCurrencies(ctx context.Context, req *AdminListCurrenciesRequest) (*AdminListCurrenciesResponse, error) {
	return webrpc.Invoke[AdminListCurrenciesResponse](ctx, c.svc, "ListCurrencies", req)
}

func (c *BasicAdminClient) DeleteCurrency(ctx context.Context, req *DeleteCurrencyRequest) (*CurrencyResponse, error) {
	return webrpc.Invoke[CurrencyResponse](ctx, c.svc, "DeleteCurrency", req)
}
