package query

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/vladislavprovich/marketplace-sdk/pkg/cache"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
)

var ErrCurrencyNotFound = errors.New("Currency not found")

// ZeroAddress is the contract address of a chain's native currency.
var ZeroAddress = strings.ToLower(common.Address{}.Hex())

type CurrenciesArgs struct {
	ChainID uint64
	Enabled *bool
}

// Currencies lists the currencies the marketplace accepts on a chain. Native
// currencies are reported under ZeroAddress and every address is lower-cased.
func Currencies(c *Clients, args CurrenciesArgs) Options[[]*marketplace.Currency] {
	return Options[[]*marketplace.Currency]{
		Key:     []any{"currencies", args.ChainID},
		Enabled: enabled(args.Enabled, args.ChainID != 0),
		Fetch: func(ctx context.Context) ([]*marketplace.Currency, error) {
			return listCurrencies(ctx, c, args.ChainID)
		},
	}
}

func listCurrencies(ctx context.Context, c *Clients, chainID uint64) ([]*marketplace.Currency, error) {
	key := fmt.Sprintf("currencies:%d", chainID)
	return cache.Remember(ctx, c.cache, key, c.cacheTTL, func(ctx context.Context) ([]*marketplace.Currency, error) {
		resp, err := c.Marketplace.ListCurrencies(ctx, &marketplace.ListCurrenciesRequest{
			ChainID: strconv.FormatUint(chainID, 10),
		})
		if err != nil {
			return nil, fmt.Errorf("error listing currencies: %w", err)
		}

		out := make([]*marketplace.Currency, 0, len(resp.Currencies))
		for _, cur := range resp.Currencies {
			if cur == nil {
				continue
			}
			cur.ContractAddress = normalizeCurrencyAddress(cur)
			out = append(out, cur)
		}
		return out, nil
	})
}

func normalizeCurrencyAddress(cur *marketplace.Currency) string {
	if cur.NativeCurrency || cur.ContractAddress == "" {
		return ZeroAddress
	}
	if common.IsHexAddress(cur.ContractAddress) {
		return strings.ToLower(common.HexToAddress(cur.ContractAddress).Hex())
	}
	return strings.ToLower(cur.ContractAddress)
}

type MarketCurrenciesArgs struct {
	ChainID               uint64
	CollectionAddress     string
	IncludeNativeCurrency bool
	Enabled               *bool
}

// MarketCurrencies narrows Currencies to what a collection trades in. The
// native currency is kept only when IncludeNativeCurrency is set. Other
// currencies must be in the collection's CurrencyOptions when it has any.
func MarketCurrencies(c *Clients, args MarketCurrenciesArgs) Options[[]*marketplace.Currency] {
	return Options[[]*marketplace.Currency]{
		Key: []any{
			"marketCurrencies",
			args.ChainID,
			strings.ToLower(args.CollectionAddress),
			args.IncludeNativeCurrency,
		},
		Enabled: enabled(args.Enabled, args.ChainID != 0),
		Fetch: func(ctx context.Context) ([]*marketplace.Currency, error) {
			currencies, err := listCurrencies(ctx, c, args.ChainID)
			if err != nil {
				return nil, err
			}

			var allowed map[string]struct{}
			if args.CollectionAddress != "" {
				cfg, err := c.marketplaceConfig(ctx)
				if err != nil {
					return nil, err
				}
				if col := cfg.MarketCollection(args.ChainID, args.CollectionAddress); col != nil && len(col.CurrencyOptions) > 0 {
					allowed = make(map[string]struct{}, len(col.CurrencyOptions))
					for _, addr := range col.CurrencyOptions {
						allowed[strings.ToLower(addr)] = struct{}{}
					}
				}
			}

			return filterMarketCurrencies(currencies, allowed, args.IncludeNativeCurrency), nil
		},
	}
}

func filterMarketCurrencies(
	currencies []*marketplace.Currency,
	allowed map[string]struct{},
	includeNative bool,
) []*marketplace.Currency {
	out := make([]*marketplace.Currency, 0, len(currencies))
	for _, cur := range currencies {
		if cur.NativeCurrency || cur.ContractAddress == ZeroAddress {
			if includeNative {
				out = append(out, cur)
			}
			continue
		}
		if allowed != nil {
			if _, ok := allowed[strings.ToLower(cur.ContractAddress)]; !ok {
				continue
			}
		}
		out = append(out, cur)
	}
	return out
}

type CurrencyArgs struct {
	ChainID         uint64
	CurrencyAddress string
	Enabled         *bool
}

// Currency finds one currency of a chain by contract address.
func Currency(c *Clients, args CurrencyArgs) Options[*marketplace.Currency] {
	return Options[*marketplace.Currency]{
		Key:     []any{"currency", args.ChainID, strings.ToLower(args.CurrencyAddress)},
		Enabled: enabled(args.Enabled, args.ChainID != 0, args.CurrencyAddress != ""),
		Fetch: func(ctx context.Context) (*marketplace.Currency, error) {
			return findCurrency(ctx, c, args.ChainID, args.CurrencyAddress)
		},
	}
}

func findCurrency(ctx context.Context, c *Clients, chainID uint64, address string) (*marketplace.Currency, error) {
	currencies, err := listCurrencies(ctx, c, chainID)
	if err != nil {
		return nil, err
	}
	for _, cur := range currencies {
		if strings.EqualFold(cur.ContractAddress, address) {
			return cur, nil
		}
	}
	return nil, ErrCurrencyNotFound
}

type ConvertPriceToUSDArgs struct {
	ChainID         uint64
	CurrencyAddress string
	// Amount is the raw integer amount in the currency's smallest unit.
	Amount  string
	Enabled *bool
}

type USDPrice struct {
	Amount          string  `json:"amount"`
	USDAmount       float64 `json:"usdAmount"`
	USDAmountString string  `json:"usdAmountString"`
}

// ConvertPriceToUSD prices a raw amount in USD with the currency's exchange
// rate: rate * amount / 10^decimals.
func ConvertPriceToUSD(c *Clients, args ConvertPriceToUSDArgs) Options[*USDPrice] {
	return Options[*USDPrice]{
		Key: []any{"convertPriceToUSD", args.ChainID, strings.ToLower(args.CurrencyAddress), args.Amount},
		Enabled: enabled(args.Enabled,
			args.ChainID != 0,
			args.CurrencyAddress != "",
			args.Amount != "",
		),
		Fetch: func(ctx context.Context) (*USDPrice, error) {
			cur, err := findCurrency(ctx, c, args.ChainID, args.CurrencyAddress)
			if err != nil {
				return nil, err
			}
			return toUSD(args.Amount, cur)
		},
	}
}

func toUSD(amount string, cur *marketplace.Currency) (*USDPrice, error) {
	if cur.Decimals > math.MaxInt32 {
		return nil, fmt.Errorf("currency %s has invalid decimals %d", cur.Symbol, cur.Decimals)
	}

	raw, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	usd := raw.Shift(-int32(cur.Decimals)).Mul(decimal.NewFromFloat(cur.ExchangeRate))
	f, _ := usd.Float64()

	return &USDPrice{
		Amount:          amount,
		USDAmount:       f,
		USDAmountString: usd.StringFixed(2),
	}, nil
}
