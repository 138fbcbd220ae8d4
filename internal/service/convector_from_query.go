package service

import (
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
	"github.com/vladislavprovich/marketplace-sdk/pkg/inventory"
	"github.com/vladislavprovich/marketplace-sdk/pkg/query"
)

type ConvectorFromQuery struct{}

func NewConvectorFromQuery() *ConvectorFromQuery {
	return &ConvectorFromQuery{}
}

func (c *ConvectorFromQuery) ConvertFromInventoryPage(p *inventory.Page) *InventoryResponse {
	collectibles := p.Collectibles
	if collectibles == nil {
		collectibles = []*inventory.Collectible{}
	}
	return &InventoryResponse{
		Collectibles: collectibles,
		Page:         p.Page,
		IsTradable:   p.IsTradable,
	}
}

func (c *ConvectorFromQuery) ConvertFromCurrencies(currencies []*marketplace.Currency) *CurrenciesResponse {
	if currencies == nil {
		currencies = []*marketplace.Currency{}
	}
	return &CurrenciesResponse{Currencies: currencies}
}

func (c *ConvectorFromQuery) ConvertFromUSDPrice(cur *marketplace.Currency, price *query.USDPrice) *ConvertPriceResponse {
	return &ConvertPriceResponse{
		Currency: cur,
		USDPrice: price,
	}
}

func (c *ConvectorFromQuery) ConvertFromListings(resp *marketplace.ListListingsResponse) *ListingsResponse {
	listings := resp.Listings
	if listings == nil {
		listings = []*marketplace.Order{}
	}
	return &ListingsResponse{
		Listings: listings,
		Page:     resp.Page,
	}
}
