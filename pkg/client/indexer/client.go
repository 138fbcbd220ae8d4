package indexer

import (
	"context"
	"time"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/webrpc"
)

const ServiceName = "Indexer"

var Schema = webrpc.Schema{Name: "sequence-indexer", Version: "v0.4.0"}

// Client is the Indexer method table of a single chain.
type Client interface {
	GetTokenBalances(ctx context.Context, req *GetTokenBalancesRequest) (*GetTokenBalancesResponse, error)
	GetTokenBalancesDetails(
		ctx context.Context,
		req *GetTokenBalancesDetailsRequest,
	) (*GetTokenBalancesDetailsResponse, error)
	GetTokenSupplies(ctx context.Context, req *GetTokenSuppliesRequest) (*GetTokenSuppliesResponse, error)
	GetTransactionReceipt(
		ctx context.Context,
		req *GetTransactionReceiptRequest,
	) (*GetTransactionReceiptResponse, error)
	SubscribeReceipts(
		ctx context.Context,
		req *SubscribeReceiptsRequest,
	) (*webrpc.Stream[SubscribeReceiptsMessage], error)
	WaitForReceipt(ctx context.Context, txnHash string, timeout time.Duration) (*TransactionReceipt, error)
}

type BasicClient struct {
	svc *webrpc.Service
}

var _ Client = (*BasicClient)(nil)

func NewBasicClient(t *webrpc.Transport) *BasicClient {
	return &BasicClient{svc: webrpc.NewService(t, ServiceName, Schema)}
}

func (c *BasicClient) GetTokenBalances(
	ctx context.Context,
	req *GetTokenBalancesRequest,
) (*GetTokenBalancesResponse, error) {
	return webrpc.Invoke[GetTokenBalancesResponse](ctx, c.svc, "GetTokenBalances", req)
}

func (c *BasicClient) GetTokenBalancesDetails(
	ctx context.Context,
	req *GetTokenBalancesDetailsRequest,
) (*GetTokenBalancesDetailsResponse, error) {
	return webrpc.Invoke[GetTokenBalancesDetailsResponse](ctx, c.svc, "GetTokenBalancesDetails", req)
}

func (c *BasicClient) GetTokenSupplies(
	ctx context.Context,
	req *GetTokenSuppliesRequest,
) (*GetTokenSuppliesResponse, error) {
	return webrpc.Invoke[GetTokenSuppliesResponse](ctx, c.svc, "GetTokenSupplies", req)
}

func (c *BasicClient) GetTransactionReceipt(
	ctx context.Context,
	req *GetTransactionReceiptRequest,
) (*GetTransactionReceiptResponse, error) {
	return webrpc.Invoke[GetTransactionReceiptResponse](ctx, c.svc, "GetTransactionReceipt", req)
}

func (c *BasicClient) SubscribeReceipts(
	ctx context.Context,
	req *SubscribeReceiptsRequest,
) (*webrpc.Stream[SubscribeReceiptsMessage], error) {
	return webrpc.OpenStream[SubscribeReceiptsMessage](ctx, c.svc, "SubscribeReceipts", req)
}
