package service

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/vladislavprovich/marketplace-sdk/internal/worker"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/indexer"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
	"github.com/vladislavprovich/marketplace-sdk/pkg/inventory"
	"github.com/vladislavprovich/marketplace-sdk/pkg/query"
)

var ErrInvalidRequest = errors.New("invalid request")

type (
	HealthResponse struct {
		Status int             `json:"status"`
		Worker *worker.Metrics `json:"worker,omitempty"`
	}
)

type (
	InventoryRequest struct {
		ChainID           uint64                   `json:"chainId"`
		CollectionAddress string                   `json:"collectionAddress"`
		AccountAddress    string                   `json:"accountAddress"`
		ContractType      marketplace.ContractType `json:"contractType,omitempty"`
		Page              int                      `json:"page"`
		PageSize          int                      `json:"pageSize"`
	}

	InventoryResponse struct {
		Collectibles []*inventory.Collectible `json:"collectibles"`
		Page         marketplace.Page         `json:"page"`
		IsTradable   bool                     `json:"isTradable"`
	}

	// ClearInventoryRequest resets one key, or every key when All is set.
	ClearInventoryRequest struct {
		ChainID           uint64 `json:"chainId"`
		CollectionAddress string `json:"collectionAddress"`
		AccountAddress    string `json:"accountAddress"`
		All               bool   `json:"all"`
	}

	ClearInventoryResponse struct {
		Cleared bool `json:"cleared"`
	}
)

type (
	CurrenciesRequest struct {
		ChainID               uint64 `json:"chainId"`
		CollectionAddress     string `json:"collectionAddress,omitempty"`
		IncludeNativeCurrency bool   `json:"includeNativeCurrency"`
	}

	CurrenciesResponse struct {
		Currencies []*marketplace.Currency `json:"currencies"`
	}

	ConvertPriceRequest struct {
		ChainID         uint64 `json:"chainId"`
		CurrencyAddress string `json:"currencyAddress"`
		Amount          string `json:"amount"`
	}

	ConvertPriceResponse struct {
		Currency *marketplace.Currency `json:"currency,omitempty"`
		*query.USDPrice
	}
)

type (
	ListingsRequest struct {
		ChainID           uint64 `json:"chainId"`
		CollectionAddress string `json:"collectionAddress"`
		TokenID           string `json:"tokenId"`
		Page              int    `json:"page"`
		PageSize          int    `json:"pageSize"`
	}

	ListingsResponse struct {
		Listings []*marketplace.Order `json:"listings"`
		Page     *marketplace.Page    `json:"page"`
	}

	LowestListingRequest struct {
		ChainID           uint64 `json:"chainId"`
		CollectionAddress string `json:"collectionAddress"`
		TokenID           string `json:"tokenId"`
	}

	LowestListingResponse struct {
		Order *marketplace.Order `json:"order"`
	}
)

type (
	WaitReceiptRequest struct {
		ChainID        uint64 `json:"chainId"`
		TxnHash        string `json:"txnHash"`
		TimeoutSeconds int    `json:"timeoutSeconds,omitempty"`
	}

	WaitReceiptResponse struct {
		Receipt *indexer.TransactionReceipt `json:"receipt"`
	}
)

var (
	addressRule = []validation.Rule{validation.Required, validation.Match(addressPattern)}
	pageRule    = validation.Min(0)
)

func (r *InventoryRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChainID, validation.Required),
		validation.Field(&r.CollectionAddress, addressRule...),
		validation.Field(&r.AccountAddress, addressRule...),
		validation.Field(&r.Page, pageRule),
		validation.Field(&r.PageSize, pageRule, validation.Max(maxPageSize)),
	)
}

func (r *ClearInventoryRequest) ValidateWithContext(ctx context.Context) error {
	if r.All {
		return nil
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChainID, validation.Required),
		validation.Field(&r.CollectionAddress, addressRule...),
		validation.Field(&r.AccountAddress, addressRule...),
	)
}

func (r *CurrenciesRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChainID, validation.Required),
		validation.Field(&r.CollectionAddress, validation.Match(addressPattern)),
	)
}

func (r *ConvertPriceRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChainID, validation.Required),
		validation.Field(&r.CurrencyAddress, addressRule...),
		validation.Field(&r.Amount, validation.Required, is.Digit),
	)
}

func (r *ListingsRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChainID, validation.Required),
		validation.Field(&r.CollectionAddress, addressRule...),
		validation.Field(&r.TokenID, validation.Required),
		validation.Field(&r.Page, pageRule),
		validation.Field(&r.PageSize, pageRule, validation.Max(maxPageSize)),
	)
}

func (r *LowestListingRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChainID, validation.Required),
		validation.Field(&r.CollectionAddress, addressRule...),
		validation.Field(&r.TokenID, validation.Required),
	)
}

func (r *WaitReceiptRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ChainID, validation.Required),
		validation.Field(&r.TxnHash, validation.Required, validation.Match(txnHashPattern)),
		validation.Field(&r.TimeoutSeconds, validation.Min(0), validation.Max(int(maxReceiptTimeout/time.Second))),
	)
}
