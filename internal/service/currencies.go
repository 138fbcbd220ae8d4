package service

import (
	"context"
	"log/slog"

	"github.com/vladislavprovich/marketplace-sdk/pkg/query"
)

func (s *Service) Currencies(ctx context.Context, req *CurrenciesRequest) (*CurrenciesResponse, error) {
	s.logger.InfoContext(ctx, "Currencies", slog.Any("req", req))
	if err := validate(ctx, req); err != nil {
		return nil, err
	}

	currencies, err := query.MarketCurrencies(s.clients, s.convectorToQuery.ConvertToMarketCurrenciesArgs(req)).Fetch(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "service query.MarketCurrencies", slog.Any("error", err))
		return nil, err
	}

	return s.convectorFromQuery.ConvertFromCurrencies(currencies), nil
}

func (s *Service) ConvertPrice(ctx context.Context, req *ConvertPriceRequest) (*ConvertPriceResponse, error) {
	s.logger.InfoContext(ctx, "ConvertPrice", slog.Any("req", req))
	if err := validate(ctx, req); err != nil {
		return nil, err
	}

	args := s.convectorToQuery.ConvertToPriceArgs(req)

	cur, err := query.Currency(s.clients, query.CurrencyArgs{
		ChainID:         args.ChainID,
		CurrencyAddress: args.CurrencyAddress,
	}).Fetch(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "service query.Currency", slog.Any("error", err))
		return nil, err
	}

	price, err := query.ConvertPriceToUSD(s.clients, args).Fetch(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "service query.ConvertPriceToUSD", slog.Any("error", err))
		return nil, err
	}

	return s.convectorFromQuery.ConvertFromUSDPrice(cur, price), nil
}
