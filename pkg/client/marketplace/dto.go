package marketplace

import "github.com/vladislavprovich/marketplace-sdk/pkg/client/metadata"

type (
	SortOrder       string
	OrderSide       string
	OrderStatus     string
	MarketplaceKind string
	ContractType    string
	OrderbookKind   string
	WalletKind      string
	StepType        string
	ExecuteType     string
	OfferType       string
	PropertyType    string
	ActivityAction  string
)

const (
	SortOrderAsc  SortOrder = "ASC"
	SortOrderDesc SortOrder = "DESC"

	OrderSideUnknown OrderSide = "unknown"
	OrderSideListing OrderSide = "listing"
	OrderSideOffer   OrderSide = "offer"

	OrderStatusActive    OrderStatus = "active"
	OrderStatusInactive  OrderStatus = "inactive"
	OrderStatusExpired   OrderStatus = "expired"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusFilled    OrderStatus = "filled"

	MarketplaceSequence MarketplaceKind = "sequence_marketplace_v2"
	MarketplaceOpensea  MarketplaceKind = "opensea"

	ContractTypeERC20      ContractType = "ERC20"
	ContractTypeERC721     ContractType = "ERC721"
	ContractTypeERC1155    ContractType = "ERC1155"
	ContractTypeLAOSERC721 ContractType = "LAOS-ERC721"

	OrderbookSequence OrderbookKind = "sequence_marketplace_v2"

	WalletKindUnknown  WalletKind = "unknown"
	WalletKindSequence WalletKind = "sequence"

	StepTypeTokenApproval StepType = "tokenApproval"
	StepTypeBuy           StepType = "buy"
	StepTypeSell          StepType = "sell"
	StepTypeCreateListing StepType = "createListing"
	StepTypeCreateOffer   StepType = "createOffer"
	StepTypeSignEIP712    StepType = "signEIP712"
	StepTypeSignEIP191    StepType = "signEIP191"
	StepTypeCancel        StepType = "cancel"

	OfferTypeItem       OfferType = "item"
	OfferTypeCollection OfferType = "collection"
)

type (
	SortBy struct {
		Column string    `json:"column"`
		Order  SortOrder `json:"order"`
	}

	// Page is the pagination descriptor shared by every list method. Sort is
	// forwarded to the server unchanged.
	Page struct {
		Page     int       `json:"page"`
		PageSize int       `json:"pageSize"`
		More     bool      `json:"more,omitempty"`
		Sort     []*SortBy `json:"sort,omitempty"`
	}

	Currency struct {
		ID                   uint64  `json:"id"`
		ChainID              uint64  `json:"chainId"`
		ContractAddress      string  `json:"contractAddress"`
		Name                 string  `json:"name"`
		Symbol               string  `json:"symbol"`
		Decimals             uint64  `json:"decimals"`
		ImageURL             string  `json:"imageUrl"`
		ExchangeRate         float64 `json:"exchangeRate"`
		DefaultChainCurrency bool    `json:"defaultChainCurrency"`
		NativeCurrency       bool    `json:"nativeCurrency"`
		CreatedAt            string  `json:"createdAt,omitempty"`
		UpdatedAt            string  `json:"updatedAt,omitempty"`
		DeletedAt            *string `json:"deletedAt,omitempty"`
	}

	FeeBreakdown struct {
		Kind             string `json:"kind"`
		RecipientAddress string `json:"recipientAddress"`
		Bps              uint64 `json:"bps"`
	}

	Order struct {
		ID                         uint64          `json:"id"`
		CollectionID               uint64          `json:"collectionId"`
		CollectibleID              uint64          `json:"collectibleId"`
		OrderID                    string          `json:"orderId"`
		Marketplace                MarketplaceKind `json:"marketplace"`
		Side                       OrderSide       `json:"side"`
		Status                     OrderStatus     `json:"status"`
		ChainID                    uint64          `json:"chainId"`
		OriginName                 string          `json:"originName"`
		CollectionContractAddress  string          `json:"collectionContractAddress"`
		TokenID                    string          `json:"tokenId"`
		CreatedBy                  string          `json:"createdBy"`
		PriceAmount                string          `json:"priceAmount"`
		PriceAmountFormatted       string          `json:"priceAmountFormatted"`
		PriceAmountNet             string          `json:"priceAmountNet"`
		PriceAmountNetFormatted    string          `json:"priceAmountNetFormatted"`
		PriceCurrencyAddress       string          `json:"priceCurrencyAddress"`
		PriceDecimals              uint64          `json:"priceDecimals"`
		PriceUSD                   float64         `json:"priceUSD"`
		PriceUSDFormatted          string          `json:"priceUSDFormatted"`
		QuantityInitial            string          `json:"quantityInitial"`
		QuantityInitialFormatted   string          `json:"quantityInitialFormatted"`
		QuantityRemaining          string          `json:"quantityRemaining"`
		QuantityRemainingFormatted string          `json:"quantityRemainingFormatted"`
		QuantityAvailable          string          `json:"quantityAvailable"`
		QuantityAvailableFormatted string          `json:"quantityAvailableFormatted"`
		QuantityDecimals           uint64          `json:"quantityDecimals"`
		FeeBps                     uint64          `json:"feeBps"`
		FeeBreakdown               []*FeeBreakdown `json:"feeBreakdown"`
		ValidFrom                  string          `json:"validFrom"`
		ValidUntil                 string          `json:"validUntil"`
		BlockNumber                uint64          `json:"blockNumber"`
		CreatedAt                  string          `json:"createdAt"`
		UpdatedAt                  string          `json:"updatedAt"`
	}

	// CollectibleOrder is a token with its best active order, if any.
	CollectibleOrder struct {
		Metadata *metadata.TokenMetadata `json:"metadata"`
		Order    *Order                  `json:"order,omitempty"`
		Listing  *Order                  `json:"listing,omitempty"`
		Offer    *Order                  `json:"offer,omitempty"`
	}

	PropertyFilter struct {
		Name   string       `json:"name"`
		Type   PropertyType `json:"type"`
		Min    *int64       `json:"min,omitempty"`
		Max    *int64       `json:"max,omitempty"`
		Values []any        `json:"values,omitempty"`
	}

	CollectiblesFilter struct {
		IncludeEmpty           bool              `json:"includeEmpty"`
		SearchText             string            `json:"searchText,omitempty"`
		Properties             []*PropertyFilter `json:"properties,omitempty"`
		Marketplaces           []MarketplaceKind `json:"marketplaces,omitempty"`
		InAccounts             []string          `json:"inAccounts,omitempty"`
		NotInAccounts          []string          `json:"notInAccounts,omitempty"`
		OrdersCreatedBy        []string          `json:"ordersCreatedBy,omitempty"`
		OrdersNotCreatedBy     []string          `json:"ordersNotCreatedBy,omitempty"`
		InCurrencyAddresses    []string          `json:"inCurrencyAddresses,omitempty"`
		NotInCurrencyAddresses []string          `json:"notInCurrencyAddresses,omitempty"`
	}

	OrderFilter struct {
		CreatedBy   []string          `json:"createdBy,omitempty"`
		Marketplace []MarketplaceKind `json:"marketplace,omitempty"`
		Currencies  []string          `json:"currencies,omitempty"`
	}

	Collection struct {
		Status                string            `json:"status"`
		ChainID               uint64            `json:"chainId"`
		ContractAddress       string            `json:"contractAddress"`
		ContractType          ContractType      `json:"contractType"`
		TokenQuantityDecimals uint64            `json:"tokenQuantityDecimals"`
		Config                *CollectionConfig `json:"config"`
		CreatedAt             string            `json:"createdAt"`
		UpdatedAt             string            `json:"updatedAt"`
	}

	CollectionConfig struct {
		LastSynced         map[string]*CollectionLastSynced `json:"lastSynced"`
		CollectiblesSynced string                           `json:"collectiblesSynced"`
	}

	CollectionLastSynced struct {
		AllOrders string `json:"allOrders"`
		NewOrders string `json:"newOrders"`
	}

	Activity struct {
		ChainID              uint64          `json:"chainId"`
		ContractAddress      string          `json:"contractAddress"`
		TokenID              string          `json:"tokenId"`
		Action               ActivityAction  `json:"action"`
		TxHash               string          `json:"txHash"`
		From                 string          `json:"from"`
		To                   string          `json:"to,omitempty"`
		Quantity             string          `json:"quantity"`
		QuantityDecimals     uint64          `json:"quantityDecimals"`
		PriceAmount          string          `json:"priceAmount,omitempty"`
		PriceAmountFormatted string          `json:"priceAmountFormatted,omitempty"`
		PriceCurrencyAddress string          `json:"priceCurrencyAddress,omitempty"`
		PriceDecimals        uint64          `json:"priceDecimals,omitempty"`
		ActivityCreatedAt    string          `json:"activityCreatedAt"`
		LogIndex             uint64          `json:"logIndex"`
		UniqueHash           string          `json:"uniqueHash"`
		Marketplace          MarketplaceKind `json:"marketplace,omitempty"`
		CreatedAt            string          `json:"createdAt"`
	}

	Signature struct {
		Domain      *Domain        `json:"domain"`
		Types       map[string]any `json:"types"`
		PrimaryType string         `json:"primaryType"`
		Value       map[string]any `json:"value"`
	}

	Domain struct {
		Name              string `json:"name"`
		Version           string `json:"version"`
		ChainID           uint64 `json:"chainId"`
		VerifyingContract string `json:"verifyingContract"`
	}

	PostRequest struct {
		Endpoint string `json:"endpoint"`
		Method   string `json:"method"`
		Body     any    `json:"body"`
	}

	Step struct {
		ID          StepType     `json:"id"`
		Data        string       `json:"data"`
		To          string       `json:"to"`
		Value       string       `json:"value"`
		Price       string       `json:"price"`
		Signature   *Signature   `json:"signature,omitempty"`
		Post        *PostRequest `json:"post,omitempty"`
		ExecuteType ExecuteType  `json:"executeType,omitempty"`
	}

	OrderData struct {
		OrderID  string `json:"orderId"`
		Quantity string `json:"quantity"`
		TokenID  string `json:"tokenId,omitempty"`
	}

	AdditionalFee struct {
		Amount   string `json:"amount"`
		Receiver string `json:"receiver"`
	}

	CreateReq struct {
		TokenID         string `json:"tokenId"`
		Quantity        string `json:"quantity"`
		Expiry          string `json:"expiry"`
		CurrencyAddress string `json:"currencyAddress"`
		PricePerToken   string `json:"pricePerToken"`
	}

	GetOrdersInput struct {
		ContractAddress string          `json:"contractAddress"`
		OrderID         string          `json:"orderId"`
		Marketplace     MarketplaceKind `json:"marketplace"`
	}

	CheckoutOptionsMarketplaceOrder struct {
		ContractAddress string          `json:"contractAddress"`
		OrderID         string          `json:"orderId"`
		Marketplace     MarketplaceKind `json:"marketplace"`
	}

	CheckoutOptionsItem struct {
		TokenID  string `json:"tokenId"`
		Quantity string `json:"quantity"`
	}

	CheckoutOptions struct {
		Crypto      string   `json:"crypto"`
		Swap        []string `json:"swap"`
		NFTCheckout []string `json:"nftCheckout"`
		OnRamp      []string `json:"onRamp"`
	}

	PrimarySaleItem struct {
		ItemAddress          string       `json:"itemAddress"`
		ContractType         ContractType `json:"contractType"`
		TokenID              string       `json:"tokenId"`
		Currency             string       `json:"currencyAddress"`
		PriceAmount          string       `json:"priceAmount"`
		PriceAmountFormatted string       `json:"priceAmountFormatted"`
		PriceDecimals        uint64       `json:"priceDecimals"`
		Supply               string       `json:"supply"`
		SupplyCap            string       `json:"supplyCap"`
		UnlimitedSupply      bool         `json:"unlimitedSupply"`
		StartDate            string       `json:"startDate"`
		EndDate              string       `json:"endDate"`
	}

	CollectiblePrimarySaleItem struct {
		Metadata        *metadata.TokenMetadata `json:"metadata"`
		PrimarySaleItem *PrimarySaleItem        `json:"primarySaleItem"`
	}

	PrimarySaleItemsFilter struct {
		IncludeEmpty bool              `json:"includeEmpty"`
		SearchText   string            `json:"searchText,omitempty"`
		Properties   []*PropertyFilter `json:"properties,omitempty"`
	}
)
