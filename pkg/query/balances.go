package query

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/indexer"
)

var ErrCollectionBalanceDetails = errors.New("Failed to fetch collection balance details")

// maxBalanceFetches bounds concurrent per-account indexer calls.
const maxBalanceFetches = 8

type BalanceArgs struct {
	ChainID           uint64
	CollectionAddress string
	TokenID           string
	UserAddress       string
	Enabled           *bool
}

// Balance returns the user's balance of one token, nil when it holds none.
func Balance(c *Clients, args BalanceArgs) Options[*indexer.TokenBalance] {
	return Options[*indexer.TokenBalance]{
		Key: []any{
			"balance",
			args.ChainID,
			strings.ToLower(args.CollectionAddress),
			args.TokenID,
			strings.ToLower(args.UserAddress),
		},
		Enabled: enabled(args.Enabled,
			args.ChainID != 0,
			args.CollectionAddress != "",
			args.TokenID != "",
			args.UserAddress != "",
		),
		Fetch: func(ctx context.Context) (*indexer.TokenBalance, error) {
			ic, err := c.Indexer(args.ChainID)
			if err != nil {
				return nil, err
			}

			resp, err := ic.GetTokenBalances(ctx, &indexer.GetTokenBalancesRequest{
				AccountAddress:  args.UserAddress,
				ContractAddress: args.CollectionAddress,
				TokenID:         args.TokenID,
			})
			if err != nil {
				return nil, fmt.Errorf("error fetching token balance: %w", err)
			}
			if len(resp.Balances) == 0 {
				return nil, nil
			}
			return resp.Balances[0], nil
		},
	}
}

type CollectionBalanceDetailsArgs struct {
	ChainID            uint64
	AccountAddresses   []string
	ContractWhitelist  []string
	OmitNativeBalances bool
	Enabled            *bool
}

// CollectionBalanceDetails fetches balance details of every account
// concurrently and merges them in account order.
func CollectionBalanceDetails(
	c *Clients,
	args CollectionBalanceDetailsArgs,
) Options[*indexer.GetTokenBalancesDetailsResponse] {
	return Options[*indexer.GetTokenBalancesDetailsResponse]{
		Key: []any{
			"collectionBalanceDetails",
			args.ChainID,
			args.AccountAddresses,
			args.ContractWhitelist,
			args.OmitNativeBalances,
		},
		Enabled: enabled(args.Enabled, args.ChainID != 0, len(args.AccountAddresses) > 0),
		Fetch: func(ctx context.Context) (*indexer.GetTokenBalancesDetailsResponse, error) {
			ic, err := c.Indexer(args.ChainID)
			if err != nil {
				return nil, err
			}

			results := make([]*indexer.GetTokenBalancesDetailsResponse, len(args.AccountAddresses))

			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(maxBalanceFetches)
			for i, account := range args.AccountAddresses {
				g.Go(func() error {
					resp, err := ic.GetTokenBalancesDetails(gctx, &indexer.GetTokenBalancesDetailsRequest{
						Filter: &indexer.TokenBalancesFilter{
							AccountAddresses:   []string{account},
							ContractWhitelist:  args.ContractWhitelist,
							OmitNativeBalances: args.OmitNativeBalances,
						},
					})
					if err != nil {
						return fmt.Errorf("error fetching balance details of %s: %w", account, err)
					}
					results[i] = resp
					return nil
				})
			}
			if err = g.Wait(); err != nil {
				return nil, err
			}

			return mergeBalanceDetails(results)
		},
	}
}

func mergeBalanceDetails(results []*indexer.GetTokenBalancesDetailsResponse) (*indexer.GetTokenBalancesDetailsResponse, error) {
	var merged *indexer.GetTokenBalancesDetailsResponse
	for _, r := range results {
		if r == nil {
			continue
		}
		if merged == nil {
			merged = &indexer.GetTokenBalancesDetailsResponse{
				NativeBalances: []*indexer.NativeTokenBalance{},
				Balances:       []*indexer.TokenBalance{},
			}
		}
		merged.Page = r.Page
		merged.NativeBalances = append(merged.NativeBalances, r.NativeBalances...)
		merged.Balances = append(merged.Balances, r.Balances...)
	}
	if merged == nil {
		return nil, ErrCollectionBalanceDetails
	}
	return merged, nil
}
