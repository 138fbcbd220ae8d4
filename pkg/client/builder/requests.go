package builder

import "github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"

type (
	LookupMarketplaceRequest struct {
		ProjectID   uint64 `json:"projectId,omitempty"`
		Domain      string `json:"domain,omitempty"`
		UserAddress string `json:"userAddress,omitempty"`
	}

	GetMarketplaceRequest struct {
		ProjectID uint64 `json:"projectId"`
	}
)

type (
	CreateCollectionRequest struct {
		ProjectID  uint64      `json:"projectId"`
		Collection *Collection `json:"collection"`
	}

	GetCollectionRequest struct {
		ProjectID       uint64 `json:"projectId"`
		ChainID         uint64 `json:"chainId"`
		ContractAddress string `json:"contractAddress"`
	}

	UpdateCollectionRequest struct {
		Collection *Collection `json:"collection"`
	}

	DeleteCollectionRequest struct {
		ProjectID       uint64 `json:"projectId"`
		ChainID         uint64 `json:"chainId"`
		ContractAddress string `json:"contractAddress"`
	}

	SyncCollectionRequest struct {
		ProjectID       uint64 `json:"projectId"`
		ChainID         uint64 `json:"chainId"`
		ContractAddress string `json:"contractAddress"`
	}

	CollectionResponse struct {
		Collection *Collection `json:"collection"`
	}

	ListCollectionsRequest struct {
		ProjectID uint64 `json:"projectId"`
		Page      *Page  `json:"page,omitempty"`
	}

	ListCollectionsResponse struct {
		Collections []*Collection `json:"collections"`
		Page        *Page         `json:"page,omitempty"`
	}

	AdminListCollectiblesRequest struct {
		ProjectID       uint64 `json:"projectId"`
		ChainID         uint64 `json:"chainId"`
		ContractAddress string `json:"contractAddress"`
		Page            *Page  `json:"page,omitempty"`
	}

	AdminListCollectiblesResponse struct {
		Collectibles []*marketplace.CollectibleOrder `json:"collectibles"`
		Page         *Page                           `json:"page,omitempty"`
	}

	AddCurrencyRequest struct {
		Currency *marketplace.Currency `json:"currency"`
	}

	UpdateCurrencyRequest struct {
		Currency *marketplace.Currency `json:"currency"`
	}

	CurrencyResponse struct {
		Currency *marketplace.Currency `json:"currency"`
	}

	AdminListCurrenciesRequest struct {
		ChainID uint64 `json:"chainId"`
	}

	AdminListCurrenciesResponse struct {
		Currencies []*marketplace.Currency `json:"currencies"`
	}

	DeleteCurrencyRequest struct {
		ChainID         uint64 `json:"chainId"`
		CurrencyAddress string `json:"currencyAddress"`
	}

	EmptyResponse struct{}
)
