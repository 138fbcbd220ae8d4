package service

import (
	"time"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
	"github.com/vladislavprovich/marketplace-sdk/pkg/inventory"
	"github.com/vladislavprovich/marketplace-sdk/pkg/query"
)

type ConvectorToQuery struct{}

func NewConvectorToQuery() *ConvectorToQuery {
	return &ConvectorToQuery{}
}

func (c *ConvectorToQuery) ConvertToInventoryArgs(req *InventoryRequest) query.InventoryArgs {
	return query.InventoryArgs{
		ChainID:           req.ChainID,
		CollectionAddress: req.CollectionAddress,
		AccountAddress:    req.AccountAddress,
		ContractType:      req.ContractType,
		Page:              toPage(req.Page, req.PageSize),
	}
}

func (c *ConvectorToQuery) ConvertToInventoryKey(req *ClearInventoryRequest) inventory.Key {
	return inventory.NewKey(req.ChainID, req.CollectionAddress, req.AccountAddress)
}

func (c *ConvectorToQuery) ConvertToMarketCurrenciesArgs(req *CurrenciesRequest) query.MarketCurrenciesArgs {
	return query.MarketCurrenciesArgs{
		ChainID:               req.ChainID,
		CollectionAddress:     req.CollectionAddress,
		IncludeNativeCurrency: req.IncludeNativeCurrency,
	}
}

func (c *ConvectorToQuery) ConvertToPriceArgs(req *ConvertPriceRequest) query.ConvertPriceToUSDArgs {
	return query.ConvertPriceToUSDArgs{
		ChainID:         req.ChainID,
		CurrencyAddress: req.CurrencyAddress,
		Amount:          req.Amount,
	}
}

func (c *ConvectorToQuery) ConvertToListOrdersArgs(req *ListingsRequest) query.ListOrdersArgs {
	return query.ListOrdersArgs{
		CollectibleArgs: query.CollectibleArgs{
			ChainID:           req.ChainID,
			CollectionAddress: req.CollectionAddress,
			TokenID:           req.TokenID,
		},
		Page: toPage(req.Page, req.PageSize),
	}
}

func (c *ConvectorToQuery) ConvertToOrderArgs(req *LowestListingRequest) query.OrderArgs {
	return query.OrderArgs{
		CollectibleArgs: query.CollectibleArgs{
			ChainID:           req.ChainID,
			CollectionAddress: req.CollectionAddress,
			TokenID:           req.TokenID,
		},
	}
}

func (c *ConvectorToQuery) ConvertToReceiptArgs(req *WaitReceiptRequest) query.TransactionReceiptArgs {
	return query.TransactionReceiptArgs{
		ChainID: req.ChainID,
		TxnHash: req.TxnHash,
		Timeout: time.Duration(req.TimeoutSeconds) * time.Second,
	}
}

// Support func toPage.
func toPage(page, size int) *marketplace.Page {
	return &marketplace.Page{Page: page, PageSize: size}
}
