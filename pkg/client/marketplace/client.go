package marketplace

import (
	"context"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/webrpc"
)

const ServiceName = "Marketplace"

var Schema = webrpc.Schema{Name: "marketplace-api", Version: "v0.0.0-2ad37ba8"}

// Client is the Marketplace service method table.
type Client interface {
	ListCurrencies(ctx context.Context, req *ListCurrenciesRequest) (*ListCurrenciesResponse, error)
	GetCollectionDetail(
		ctx context.Context,
		req *GetCollectionDetailRequest,
	) (*GetCollectionDetailResponse, error)
	GetCollectible(ctx context.Context, req *GetCollectibleRequest) (*GetCollectibleResponse, error)
	GetLowestPriceOfferForCollectible(
		ctx context.Context,
		req *CollectibleOrderRequest,
	) (*OrderResponse, error)
	GetHighestPriceOfferForCollectible(
		ctx context.Context,
		req *CollectibleOrderRequest,
	) (*OrderResponse, error)
	GetLowestPriceListingForCollectible(
		ctx context.Context,
		req *CollectibleOrderRequest,
	) (*OrderResponse, error)
	GetHighestPriceListingForCollectible(
		ctx context.Context,
		req *CollectibleOrderRequest,
	) (*OrderResponse, error)
	ListListingsForCollectible(
		ctx context.Context,
		req *ListOrdersForCollectibleRequest,
	) (*ListListingsResponse, error)
	ListOffersForCollectible(
		ctx context.Context,
		req *ListOrdersForCollectibleRequest,
	) (*ListOffersResponse, error)
	GetCountOfListingsForCollectible(
		ctx context.Context,
		req *CollectibleOrderRequest,
	) (*CountResponse, error)
	GetCountOfOffersForCollectible(ctx context.Context, req *CollectibleOrderRequest) (*CountResponse, error)
	GetCollectibleLowestOffer(ctx context.Context, req *CollectibleOrderRequest) (*OrderResponse, error)
	GetCollectibleHighestOffer(ctx context.Context, req *CollectibleOrderRequest) (*OrderResponse, error)
	GetCollectibleLowestListing(ctx context.Context, req *CollectibleOrderRequest) (*OrderResponse, error)
	GetCollectibleHighestListing(ctx context.Context, req *CollectibleOrderRequest) (*OrderResponse, error)
	ListCollectibleListings(
		ctx context.Context,
		req *ListOrdersForCollectibleRequest,
	) (*ListListingsResponse, error)
	ListCollectibleOffers(
		ctx context.Context,
		req *ListOrdersForCollectibleRequest,
	) (*ListOffersResponse, error)
	GenerateBuyTransaction(ctx context.Context, req *GenerateBuyTransactionRequest) (*StepsResponse, error)
	GenerateSellTransaction(ctx context.Context, req *GenerateSellTransactionRequest) (*StepsResponse, error)
	GenerateListingTransaction(
		ctx context.Context,
		req *GenerateListingTransactionRequest,
	) (*StepsResponse, error)
	GenerateOfferTransaction(
		ctx context.Context,
		req *GenerateOfferTransactionRequest,
	) (*StepsResponse, error)
	GenerateCancelTransaction(
		ctx context.Context,
		req *GenerateCancelTransactionRequest,
	) (*StepsResponse, error)
	Execute(ctx context.Context, req *ExecuteRequest) (*ExecuteResponse, error)
	ListCollectibles(ctx context.Context, req *ListCollectiblesRequest) (*ListCollectiblesResponse, error)
	GetCountOfAllCollectibles(
		ctx context.Context,
		req *GetCountOfAllCollectiblesRequest,
	) (*CountResponse, error)
	GetCountOfFilteredCollectibles(
		ctx context.Context,
		req *GetCountOfFilteredCollectiblesRequest,
	) (*CountResponse, error)
	GetFloorOrder(ctx context.Context, req *GetFloorOrderRequest) (*GetFloorOrderResponse, error)
	ListCollectionActivities(
		ctx context.Context,
		req *ListCollectionActivitiesRequest,
	) (*ListActivitiesResponse, error)
	ListCollectibleActivities(
		ctx context.Context,
		req *ListCollectibleActivitiesRequest,
	) (*ListActivitiesResponse, error)
	ListCollectiblesWithLowestListing(
		ctx context.Context,
		req *ListCollectiblesWithOrderRequest,
	) (*ListCollectiblesResponse, error)
	ListCollectiblesWithHighestOffer(
		ctx context.Context,
		req *ListCollectiblesWithOrderRequest,
	) (*ListCollectiblesResponse, error)
	SyncOrder(ctx context.Context, req *SyncOrderRequest) (*EmptyResponse, error)
	SyncOrders(ctx context.Context, req *SyncOrdersRequest) (*EmptyResponse, error)
	GetOrders(ctx context.Context, req *GetOrdersRequest) (*GetOrdersResponse, error)
	CheckoutOptionsMarketplace(
		ctx context.Context,
		req *CheckoutOptionsMarketplaceRequest,
	) (*CheckoutOptionsResponse, error)
	CheckoutOptionsSalesContract(
		ctx context.Context,
		req *CheckoutOptionsSalesContractRequest,
	) (*CheckoutOptionsResponse, error)
	SupportedMarketplaces(
		ctx context.Context,
		req *SupportedMarketplacesRequest,
	) (*SupportedMarketplacesResponse, error)
	GetPrimarySaleItem(
		ctx context.Context,
		req *GetPrimarySaleItemRequest,
	) (*GetPrimarySaleItemResponse, error)
	ListPrimarySaleItems(
		ctx context.Context,
		req *ListPrimarySaleItemsRequest,
	) (*ListPrimarySaleItemsResponse, error)
	GetCountOfPrimarySaleItems(
		ctx context.Context,
		req *GetCountOfPrimarySaleItemsRequest,
	) (*CountResponse, error)
}

type BasicClient struct {
	svc *webrpc.Service
}

var _ Client = (*BasicClient)(nil)

func NewBasicClient(t *webrpc.Transport) *BasicClient {
	return &BasicClient{svc: webrpc.NewService(t, ServiceName, Schema)}
}

func (c *BasicClient) ListCurrencies(
	ctx context.Context,
	req *ListCurrenciesRequest,
) (*ListCurrenciesResponse, error) {
	return webrpc.Invoke[ListCurrenciesResponse](ctx, c.svc, "ListCurrencies", req)
}

func (c *BasicClient) GetCollectionDetail(
	ctx context.Context,
	req *GetCollectionDetailRequest,
) (*GetCollectionDetailResponse, error) {
	return webrpc.Invoke[GetCollectionDetailResponse](ctx, c.svc, "GetCollectionDetail", req)
}

func (c *BasicClient) GetCollectible(
	ctx context.Context,
	req *GetCollectibleRequest,
) (*GetCollectibleResponse, error) {
	return webrpc.Invoke[GetCollectibleResponse](ctx, c.svc, "GetCollectible", req)
}

func (c *BasicClient) GetLowestPriceOfferForCollectible(
	ctx context.Context,
	req *CollectibleOrderRequest,
) (*OrderResponse, error) {
	return webrpc.Invoke[OrderResponse](ctx, c.svc, "GetLowestPriceOfferForCollectible", req)
}

func (c *BasicClient) GetHighestPriceOfferForCollectible(
	ctx context.Context,
	req *CollectibleOrderRequest,
) (*OrderResponse, error) {
	return webrpc.Invoke[OrderResponse](ctx, c.svc, "GetHighestPriceOfferForCollectible", req)
}

func (c *BasicClient) GetLowestPriceListingForCollectible(
	ctx context.Context,
	req *CollectibleOrderRequest,
) (*OrderResponse, error) {
	return webrpc.Invoke[OrderResponse](ctx, c.svc, "GetLowestPriceListingForCollectible", req)
}

func (c *BasicClient) GetHighestPriceListingForCollectible(
	ctx context.Context,
	req *CollectibleOrderRequest,
) (*OrderResponse, error) {
	return webrpc.Invoke[OrderResponse](ctx, c.svc, "GetHighestPriceListingForCollectible", req)
}

func (c *BasicClient) ListListingsForCollectible(
	ctx context.Context,
	req *ListOrdersForCollectibleRequest,
) (*ListListingsResponse, error) {
	return webrpc.Invoke[ListListingsResponse](ctx, c.svc, "ListListingsForCollectible", req)
}

func (c *BasicClient) ListOffersForCollectible(
	ctx context.Context,
	req *ListOrdersForCollectibleRequest,
) (*ListOffersResponse, error) {
	return webrpc.Invoke[ListOffersResponse](ctx, c.svc, "ListOffersForCollectible", req)
}

func (c *BasicClient) GetCountOfListingsForCollectible(
	ctx context.Context,
	req *CollectibleOrderRequest,
) (*CountResponse, error) {
	return webrpc.Invoke[CountResponse](ctx, c.svc, "GetCountOfListingsForCollectible", req)
}

func (c *BasicClient) GetCountOfOffersForCollectible(
	ctx context.Context,
	req *CollectibleOrderRequest,
) (*CountResponse, error) {
	return webrpc.Invoke[CountResponse](ctx, c.svc, "GetCountOfOffersForCollectible", req)
}

func (c *BasicClient) GetCollectibleLowestOffer(
	ctx context.Context,
	req *CollectibleOrderRequest,
) (*OrderResponse, error) {
	return webrpc.Invoke[OrderResponse](ctx, c.svc, "GetCollectibleLowestOffer", req)
}

func (c *BasicClient) GetCollectibleHighestOffer(
	ctx context.Context,
	req *CollectibleOrderRequest,
) (*OrderResponse, error) {
	return webrpc.Invoke[OrderResponse](ctx, c.svc, "GetCollectibleHighestOffer", req)
}

func (c *BasicClient) GetCollectibleLowestListing(
	ctx context.Context,
	req *CollectibleOrderRequest,
) (*OrderResponse, error) {
	return webrpc.Invoke[OrderResponse](ctx, c.svc, "GetCollectibleLowestListing", req)
}

func (c *BasicClient) GetCollectibleHighestListing(
	ctx context.Context,
	req *CollectibleOrderRequest,
) (*OrderResponse, error) {
	return webrpc.Invoke[OrderResponse](ctx, c.svc, "GetCollectibleHighestListing", req)
}

func (c *BasicClient) ListCollectibleListings(
	ctx context.Context,
	req *ListOrdersForCollectibleRequest,
) (*ListListingsResponse, error) {
	return webrpc.Invoke[ListListingsResponse](ctx, c.svc, "ListCollectibleListings", req)
}

func (c *BasicClient) ListCollectibleOffers(
	ctx context.Context,
	req *ListOrdersForCollectibleRequest,
) (*ListOffersResponse, error) {
	return webrpc.Invoke[ListOffersResponse](ctx, c.svc, "ListCollectibleOffers", req)
}

func (c *BasicClient) GenerateBuyTransaction(
	ctx context.Context,
	req *GenerateBuyTransactionRequest,
) (*StepsResponse, error) {
	return webrpc.Invoke[StepsResponse](ctx, c.svc, "GenerateBuyTransaction", req)
}

func (c *BasicClient) GenerateSellTransaction(
	ctx context.Context,
	req *GenerateSellTransactionRequest,
) (*StepsResponse, error) {
	return webrpc.Invoke[StepsResponse](ctx, c.svc, "GenerateSellTransaction", req)
}

func (c *BasicClient) GenerateListingTransaction(
	ctx context.Context,
	req *GenerateListingTransactionRequest,
) (*StepsResponse, error) {
	return webrpc.Invoke[StepsResponse](ctx, c.svc, "GenerateListingTransaction", req)
}

func (c *BasicClient) GenerateOfferTransaction(
	ctx context.Context,
	req *GenerateOfferTransactionRequest,
) (*StepsResponse, error) {
	return webrpc.Invoke[StepsResponse](ctx, c.svc, "GenerateOfferTransaction", req)
}

func (c *BasicClient) GenerateCancelTransaction(
	ctx context.Context,
	req *GenerateCancelTransactionRequest,
) (*StepsResponse, error) {
	return webrpc.Invoke[StepsResponse](ctx, c.svc, "GenerateCancelTransaction", req)
}

func (c *BasicClient) Execute(
	ctx context.Context,
	req *ExecuteRequest,
) (*ExecuteResponse, error) {
	return webrpc.Invoke[ExecuteResponse](ctx, c.svc, "Execute", req)
}

func (c *BasicClient) ListCollectibles(
	ctx context.Context,
	req *ListCollectiblesRequest,
) (*ListCollectiblesResponse, error) {
	return webrpc.Invoke[ListCollectiblesResponse](ctx, c.svc, "ListCollectibles", req)
}

func (c *BasicClient) GetCountOfAllCollectibles(
	ctx context.Context,
	req *GetCountOfAllCollectiblesRequest,
) (*CountResponse, error) {
	return webrpc.Invoke[CountResponse](ctx, c.svc, "GetCountOfAllCollectibles", req)
}

func (c *BasicClient) GetCountOfFilteredCollectibles(
	ctx context.Context,
	req *GetCountOfFilteredCollectiblesRequest,
) (*CountResponse, error) {
	return webrpc.Invoke[CountResponse](ctx, c.svc, "GetCountOfFilteredCollectibles", req)
}

func (c *BasicClient) GetFloorOrder(
	ctx context.Context,
	req *GetFloorOrderRequest,
) (*GetFloorOrderResponse, error) {
	return webrpc.Invoke[GetFloorOrderResponse](ctx, c.svc, "GetFloorOrder", req)
}

func (c *BasicClient) ListCollectionActivities(
	ctx context.Context,
	req *ListCollectionActivitiesRequest,
) (*ListActivitiesResponse, error) {
	return webrpc.Invoke[ListActivitiesResponse](ctx, c.svc, "ListCollectionActivities", req)
}

func (c *BasicClient) ListCollectibleActivities(
	ctx context.Context,
	req *ListCollectibleActivitiesRequest,
) (*ListActivitiesResponse, error) {
	return webrpc.Invoke[ListActivitiesResponse](ctx, c.svc, "ListCollectibleActivities", req)
}

func (c *BasicClient) ListCollectiblesWithLowestListing(
	ctx context.Context,
	req *ListCollectiblesWithOrderRequest,
) (*ListCollectiblesResponse, error) {
	return webrpc.Invoke[ListCollectiblesResponse](ctx, c.svc, "ListCollectiblesWithLowestListing", req)
}

func (c *BasicClient) ListCollectiblesWithHighestOffer(
	ctx context.Context,
	req *ListCollectiblesWithOrderRequest,
) (*ListCollectiblesResponse, error) {
	return webrpc.Invoke[ListCollectiblesResponse](ctx, c.svc, "ListCollectiblesWithHighestOffer", req)
}

func (c *BasicClient) SyncOrder(
	ctx context.Context,
	req *SyncOrderRequest,
) (*EmptyResponse, error) {
	return webrpc.Invoke[EmptyResponse](ctx, c.svc, "SyncOrder", req)
}

func (c *BasicClient) SyncOrders(
	ctx context.Context,
	req *SyncOrdersRequest,
) (*EmptyResponse, error) {
	return webrpc.Invoke[EmptyResponse](ctx, c.svc, "SyncOrders", req)
}

func (c *BasicClient) GetOrders(
	ctx context.Context,
	req *GetOrdersRequest,
) (*GetOrdersResponse, error) {
	return webrpc.Invoke[GetOrdersResponse](ctx, c.svc, "GetOrders", req)
}

func (c *BasicClient) CheckoutOptionsMarketplace(
	ctx context.Context,
	req *CheckoutOptionsMarketplaceRequest,
) (*CheckoutOptionsResponse, error) {
	return webrpc.Invoke[CheckoutOptionsResponse](ctx, c.svc, "CheckoutOptionsMarketplace", req)
}

func (c *BasicClient) CheckoutOptionsSalesContract(
	ctx context.Context,
	req *CheckoutOptionsSalesContractRequest,
) (*CheckoutOptionsResponse, error) {
	return webrpc.Invoke[CheckoutOptionsResponse](ctx, c.svc, "CheckoutOptionsSalesContract", req)
}

func (c *BasicClient) SupportedMarketplaces(
	ctx context.Context,
	req *SupportedMarketplacesRequest,
) (*SupportedMarketplacesResponse, error) {
	return webrpc.Invoke[SupportedMarketplacesResponse](ctx, c.svc, "SupportedMarketplaces", req)
}

func (c *BasicClient) GetPrimarySaleItem(
	ctx context.Context,
	req *GetPrimarySaleItemRequest,
) (*GetPrimarySaleItemResponse, error) {
	return webrpc.Invoke[GetPrimarySaleItemResponse](ctx, c.svc, "GetPrimarySaleItem", req)
}

func (c *BasicClient) ListPrimarySaleItems(
	ctx context.Context,
	req *ListPrimarySaleItemsRequest,
) (*ListPrimarySaleItemsResponse, error) {
	return webrpc.Invoke[ListPrimarySaleItemsResponse](ctx, c.svc, "ListPrimarySaleItems", req)
}

func (c *BasicClient) GetCountOfPrimarySaleItems(
	ctx context.Context,
	req *GetCountOfPrimarySaleItemsRequest,
) (*CountResponse, error) {
	return webrpc.Invoke[CountResponse](ctx, c.svc, "GetCountOfPrimarySaleItems", req)
}
