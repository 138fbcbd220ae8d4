package marketplace

import "github.com/vladislavprovich/marketplace-sdk/pkg/client/metadata"

type (
	ListCurrenciesRequest struct {
		ChainID string `json:"chainId"`
	}

	ListCurrenciesResponse struct {
		Currencies []*Currency `json:"currencies"`
	}

	GetCollectionDetailRequest struct {
		ChainID         string `json:"chainId"`
		ContractAddress string `json:"contractAddress"`
	}

	GetCollectionDetailResponse struct {
		Collection *Collection `json:"collection"`
	}

	GetCollectibleRequest struct {
		ChainID         string `json:"chainId"`
		ContractAddress string `json:"contractAddress"`
		TokenID         string `json:"tokenId"`
	}

	GetCollectibleResponse struct {
		Metadata *metadata.TokenMetadata `json:"metadata"`
	}

	// CollectibleOrderRequest addresses one collectible with an optional
	// order filter. It is shared by every best-order lookup.
	CollectibleOrderRequest struct {
		ChainID         string       `json:"chainId"`
		ContractAddress string       `json:"contractAddress"`
		TokenID         string       `json:"tokenId"`
		Filter          *OrderFilter `json:"filter,omitempty"`
	}

	OrderResponse struct {
		Order *Order `json:"order"`
	}

	ListOrdersForCollectibleRequest struct {
		ChainID         string       `json:"chainId"`
		ContractAddress string       `json:"contractAddress"`
		TokenID         string       `json:"tokenId"`
		Filter          *OrderFilter `json:"filter,omitempty"`
		Page            *Page        `json:"page,omitempty"`
	}

	ListListingsResponse struct {
		Listings []*Order `json:"listings"`
		Page     *Page    `json:"page,omitempty"`
	}

	ListOffersResponse struct {
		Offers []*Order `json:"offers"`
		Page   *Page    `json:"page,omitempty"`
	}

	CountResponse struct {
		Count uint64 `json:"count"`
	}

	GenerateBuyTransactionRequest struct {
		ChainID           string           `json:"chainId"`
		CollectionAddress string           `json:"collectionAddress"`
		Buyer             string           `json:"buyer"`
		Marketplace       MarketplaceKind  `json:"marketplace"`
		OrdersData        []*OrderData     `json:"ordersData"`
		AdditionalFees    []*AdditionalFee `json:"additionalFees"`
		WalletType        WalletKind       `json:"walletType,omitempty"`
	}

	GenerateSellTransactionRequest struct {
		ChainID           string           `json:"chainId"`
		CollectionAddress string           `json:"collectionAddress"`
		Seller            string           `json:"seller"`
		Marketplace       MarketplaceKind  `json:"marketplace"`
		OrdersData        []*OrderData     `json:"ordersData"`
		AdditionalFees    []*AdditionalFee `json:"additionalFees"`
		WalletType        WalletKind       `json:"walletType,omitempty"`
	}

	GenerateListingTransactionRequest struct {
		ChainID           string        `json:"chainId"`
		CollectionAddress string        `json:"collectionAddress"`
		Owner             string        `json:"owner"`
		ContractType      ContractType  `json:"contractType"`
		Orderbook         OrderbookKind `json:"orderbook"`
		Listing           *CreateReq    `json:"listing"`
		WalletType        WalletKind    `json:"walletType,omitempty"`
	}

	GenerateOfferTransactionRequest struct {
		ChainID           string        `json:"chainId"`
		CollectionAddress string        `json:"collectionAddress"`
		Maker             string        `json:"maker"`
		ContractType      ContractType  `json:"contractType"`
		Orderbook         OrderbookKind `json:"orderbook"`
		Offer             *CreateReq    `json:"offer"`
		WalletType        WalletKind    `json:"walletType,omitempty"`
		OfferType         OfferType     `json:"offerType,omitempty"`
	}

	GenerateCancelTransactionRequest struct {
		ChainID           string          `json:"chainId"`
		CollectionAddress string          `json:"collectionAddress"`
		Maker             string          `json:"maker"`
		Marketplace       MarketplaceKind `json:"marketplace"`
		OrderID           string          `json:"orderId"`
	}

	StepsResponse struct {
		Steps []*Step `json:"steps"`
	}

	ExecuteRequest struct {
		ChainID     string      `json:"chainId"`
		Signature   string      `json:"signature"`
		Method      string      `json:"method"`
		Endpoint    string      `json:"endpoint"`
		ExecuteType ExecuteType `json:"executeType,omitempty"`
		Body        any         `json:"body"`
	}

	ExecuteResponse struct {
		OrderID string `json:"orderId"`
	}

	ListCollectiblesRequest struct {
		ChainID         string              `json:"chainId"`
		Side            OrderSide           `json:"side"`
		ContractAddress string              `json:"contractAddress"`
		Filter          *CollectiblesFilter `json:"filter,omitempty"`
		Page            *Page               `json:"page,omitempty"`
	}

	ListCollectiblesResponse struct {
		Collectibles []*CollectibleOrder `json:"collectibles"`
		Page         *Page               `json:"page,omitempty"`
	}

	GetCountOfAllCollectiblesRequest struct {
		ChainID         string `json:"chainId"`
		ContractAddress string `json:"contractAddress"`
	}

	GetCountOfFilteredCollectiblesRequest struct {
		ChainID         string              `json:"chainId"`
		Side            OrderSide           `json:"side"`
		ContractAddress string              `json:"contractAddress"`
		Filter          *CollectiblesFilter `json:"filter,omitempty"`
	}

	GetFloorOrderRequest struct {
		ChainID         string              `json:"chainId"`
		ContractAddress string              `json:"contractAddress"`
		Filter          *CollectiblesFilter `json:"filter,omitempty"`
	}

	GetFloorOrderResponse struct {
		Collectible *CollectibleOrder `json:"collectible"`
	}

	ListCollectionActivitiesRequest struct {
		ChainID         string `json:"chainId"`
		ContractAddress string `json:"contractAddress"`
		Page            *Page  `json:"page,omitempty"`
	}

	ListCollectibleActivitiesRequest struct {
		ChainID         string `json:"chainId"`
		ContractAddress string `json:"contractAddress"`
		TokenID         string `json:"tokenId"`
		Page            *Page  `json:"page,omitempty"`
	}

	ListActivitiesResponse struct {
		Activities []*Activity `json:"activities"`
		Page       *Page       `json:"page,omitempty"`
	}

	ListCollectiblesWithOrderRequest struct {
		ChainID         string              `json:"chainId"`
		ContractAddress string              `json:"contractAddress"`
		Filter          *CollectiblesFilter `json:"filter,omitempty"`
		Page            *Page               `json:"page,omitempty"`
	}

	SyncOrderRequest struct {
		Order *Order `json:"order"`
	}

	SyncOrdersRequest struct {
		Orders []*Order `json:"orders"`
	}

	EmptyResponse struct{}

	GetOrdersRequest struct {
		ChainID string            `json:"chainId"`
		Input   []*GetOrdersInput `json:"input"`
		Page    *Page             `json:"page,omitempty"`
	}

	GetOrdersResponse struct {
		Orders []*Order `json:"orders"`
		Page   *Page    `json:"page,omitempty"`
	}

	CheckoutOptionsMarketplaceRequest struct {
		ChainID       string                             `json:"chainId"`
		Wallet        string                             `json:"wallet"`
		Orders        []*CheckoutOptionsMarketplaceOrder `json:"orders"`
		AdditionalFee int                                `json:"additionalFee"`
	}

	CheckoutOptionsSalesContractRequest struct {
		ChainID           string                 `json:"chainId"`
		Wallet            string                 `json:"wallet"`
		ContractAddress   string                 `json:"contractAddress"`
		CollectionAddress string                 `json:"collectionAddress"`
		Items             []*CheckoutOptionsItem `json:"items"`
	}

	CheckoutOptionsResponse struct {
		Options *CheckoutOptions `json:"options"`
	}

	SupportedMarketplacesRequest struct {
		ChainID string `json:"chainId"`
	}

	SupportedMarketplacesResponse struct {
		Marketplaces []MarketplaceKind `json:"marketplaces"`
	}

	GetPrimarySaleItemRequest struct {
		ChainID                    string `json:"chainId"`
		PrimarySaleContractAddress string `json:"primarySaleContractAddress"`
		TokenID                    string `json:"tokenId"`
	}

	GetPrimarySaleItemResponse struct {
		Item *CollectiblePrimarySaleItem `json:"item"`
	}

	ListPrimarySaleItemsRequest struct {
		ChainID                    string                  `json:"chainId"`
		PrimarySaleContractAddress string                  `json:"primarySaleContractAddress"`
		Filter                     *PrimarySaleItemsFilter `json:"filter,omitempty"`
		Page                       *Page                   `json:"page,omitempty"`
	}

	ListPrimarySaleItemsResponse struct {
		PrimarySaleItems []*CollectiblePrimarySaleItem `json:"primarySaleItems"`
		Page             *Page                         `json:"page,omitempty"`
	}

	GetCountOfPrimarySaleItemsRequest struct {
		ChainID                    string                  `json:"chainId"`
		PrimarySaleContractAddress string                  `json:"primarySaleContractAddress"`
		Filter                     *PrimarySaleItemsFilter `json:"filter,omitempty"`
	}
)
