package builder

import (
	"strings"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
)

type (
	MarketplaceType  string
	CollectionStatus string
)

const (
	MarketplaceTypeMarket MarketplaceType = "market"
	MarketplaceTypeShop   MarketplaceType = "shop"
)

type (
	// MarketplaceConfig is the project's marketplace configuration as served
	// by LookupMarketplace and GetMarketplace.
	MarketplaceConfig struct {
		Marketplace       *Marketplace        `json:"marketplace"`
		MarketCollections []*MarketCollection `json:"marketCollections"`
		ShopCollections   []*ShopCollection   `json:"shopCollections"`
	}

	Marketplace struct {
		ProjectID uint64               `json:"projectId"`
		Settings  *MarketplaceSettings `json:"settings"`
	}

	MarketplaceSettings struct {
		Publisher        string         `json:"publisher"`
		Title            string         `json:"title"`
		ShortDescription string         `json:"shortDescription"`
		Socials          map[string]any `json:"socials,omitempty"`
		FaviconURL       string         `json:"faviconUrl"`
		LandingBannerURL string         `json:"landingBannerUrl,omitempty"`
		LogoURL          string         `json:"logoUrl"`
		FontURL          string         `json:"fontUrl,omitempty"`
		DisableAnalytics bool           `json:"disableAnalytics,omitempty"`
		WalletOptions    []string       `json:"walletOptions,omitempty"`
		Orderbook        string         `json:"orderbook,omitempty"`
	}

	MarketCollection struct {
		ID              uint64                   `json:"id"`
		ProjectID       uint64                   `json:"projectId"`
		ChainID         uint64                   `json:"chainId"`
		ItemsAddress    string                   `json:"itemsAddress"`
		ContractType    marketplace.ContractType `json:"contractType"`
		MarketplaceType MarketplaceType          `json:"marketplaceType"`
		CurrencyOptions []string                 `json:"currencyOptions"`
		FeePercentage   float64                  `json:"feePercentage"`
		BannerURL       string                   `json:"bannerUrl,omitempty"`
		Private         bool                     `json:"private"`
	}

	ShopCollection struct {
		ID              uint64                   `json:"id"`
		ProjectID       uint64                   `json:"projectId"`
		ChainID         uint64                   `json:"chainId"`
		ItemsAddress    string                   `json:"itemsAddress"`
		SaleAddress     string                   `json:"saleAddress"`
		ContractType    marketplace.ContractType `json:"contractType"`
		MarketplaceType MarketplaceType          `json:"marketplaceType"`
		Private         bool                     `json:"private"`
	}

	Collection struct {
		ProjectID       uint64                   `json:"projectId"`
		ChainID         uint64                   `json:"chainId"`
		ContractAddress string                   `json:"contractAddress"`
		ContractType    marketplace.ContractType `json:"contractType"`
		Status          CollectionStatus         `json:"status"`
		CreatedAt       string                   `json:"createdAt,omitempty"`
		UpdatedAt       string                   `json:"updatedAt,omitempty"`
	}

	Page struct {
		Page     int  `json:"page"`
		PageSize int  `json:"pageSize"`
		More     bool `json:"more,omitempty"`
	}
)

// MarketCollection returns the market collection configured for address on
// chainID. Addresses are matched case-insensitively.
func (s *MarketplaceConfig) MarketCollection(chainID uint64, address string) *MarketCollection {
	if s == nil {
		return nil
	}
	for _, c := range s.MarketCollections {
		if c.ChainID == chainID && strings.EqualFold(c.ItemsAddress, address) {
			return c
		}
	}
	return nil
}

// IsTradable reports whether address is listed among the market collections.
func (s *MarketplaceConfig) IsTradable(chainID uint64, address string) bool {
	return s.MarketCollection(chainID, address) != nil
}
