package laos

import "github.com/vladislavprovich/marketplace-sdk/pkg/client/indexer"

type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int64  `json:"-"`
}

type (
	SortBy struct {
		Column string `json:"column"`
		Order  string `json:"order"`
	}

	Page struct {
		Sort     []*SortBy `json:"sort,omitempty"`
		PageSize int       `json:"pageSize,omitempty"`
		Page     int       `json:"page,omitempty"`
		More     bool      `json:"more,omitempty"`
	}

	GetTokenBalancesRequest struct {
		ChainID         string `json:"chainId"`
		AccountAddress  string `json:"accountAddress,omitempty"`
		ContractAddress string `json:"contractAddress,omitempty"`
		IncludeMetadata bool   `json:"includeMetadata"`
		Page            *Page  `json:"page,omitempty"`
	}

	GetTokenBalancesResponse struct {
		Page     *Page                   `json:"page"`
		Balances []*indexer.TokenBalance `json:"balances"`
	}

	GetTokenSuppliesRequest struct {
		ChainID         string `json:"chainId"`
		ContractAddress string `json:"contractAddress"`
		IncludeMetadata bool   `json:"includeMetadata"`
		Page            *Page  `json:"page,omitempty"`
	}

	GetTokenSuppliesResponse struct {
		Page         *Page                  `json:"page"`
		ContractType string                 `json:"contractType"`
		TokenIDs     []*indexer.TokenSupply `json:"tokenIDs"`
	}
)
