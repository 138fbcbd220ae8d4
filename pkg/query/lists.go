package query

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
)

type ListOrdersArgs struct {
	CollectibleArgs
	Filter *marketplace.OrderFilter
	Page   *marketplace.Page
}

func (a ListOrdersArgs) request(page marketplace.Page) *marketplace.ListOrdersForCollectibleRequest {
	return &marketplace.ListOrdersForCollectibleRequest{
		ChainID:         strconv.FormatUint(a.ChainID, 10),
		ContractAddress: a.CollectionAddress,
		TokenID:         a.TokenID,
		Filter:          a.Filter,
		Page:            &page,
	}
}

func ListListingsForCollectible(
	c *Clients,
	args ListOrdersArgs,
) InfiniteOptions[*marketplace.ListListingsResponse] {
	return InfiniteOptions[*marketplace.ListListingsResponse]{
		Key:         append(args.key("listListingsForCollectible"), args.Filter),
		Enabled:     enabled(args.Enabled, args.ready()),
		InitialPage: firstPage(args.Page),
		Fetch: func(ctx context.Context, page marketplace.Page) (*marketplace.ListListingsResponse, error) {
			resp, err := c.Marketplace.ListListingsForCollectible(ctx, args.request(page))
			if err != nil {
				return nil, fmt.Errorf("error listing listings: %w", err)
			}
			stamp(&resp.Page, page)
			return resp, nil
		},
		NextPage: func(last *marketplace.ListListingsResponse) (marketplace.Page, bool) {
			return nextAfter(last.Page)
		},
	}
}

func ListOffersForCollectible(
	c *Clients,
	args ListOrdersArgs,
) InfiniteOptions[*marketplace.ListOffersResponse] {
	return InfiniteOptions[*marketplace.ListOffersResponse]{
		Key:         append(args.key("listOffersForCollectible"), args.Filter),
		Enabled:     enabled(args.Enabled, args.ready()),
		InitialPage: firstPage(args.Page),
		Fetch: func(ctx context.Context, page marketplace.Page) (*marketplace.ListOffersResponse, error) {
			resp, err := c.Marketplace.ListOffersForCollectible(ctx, args.request(page))
			if err != nil {
				return nil, fmt.Errorf("error listing offers: %w", err)
			}
			stamp(&resp.Page, page)
			return resp, nil
		},
		NextPage: func(last *marketplace.ListOffersResponse) (marketplace.Page, bool) {
			return nextAfter(last.Page)
		},
	}
}

type ListCollectiblesArgs struct {
	ChainID           uint64
	CollectionAddress string
	Side              marketplace.OrderSide
	Filter            *marketplace.CollectiblesFilter
	Page              *marketplace.Page
	Enabled           *bool
}

func ListCollectibles(
	c *Clients,
	args ListCollectiblesArgs,
) InfiniteOptions[*marketplace.ListCollectiblesResponse] {
	side := args.Side
	if side == "" {
		side = marketplace.OrderSideListing
	}

	return InfiniteOptions[*marketplace.ListCollectiblesResponse]{
		Key: []any{
			"listCollectibles",
			args.ChainID,
			strings.ToLower(args.CollectionAddress),
			side,
			args.Filter,
		},
		Enabled:     enabled(args.Enabled, args.ChainID != 0, args.CollectionAddress != ""),
		InitialPage: firstPage(args.Page),
		Fetch: func(ctx context.Context, page marketplace.Page) (*marketplace.ListCollectiblesResponse, error) {
			resp, err := c.Marketplace.ListCollectibles(ctx, &marketplace.ListCollectiblesRequest{
				ChainID:         strconv.FormatUint(args.ChainID, 10),
				Side:            side,
				ContractAddress: args.CollectionAddress,
				Filter:          args.Filter,
				Page:            &page,
			})
			if err != nil {
				return nil, fmt.Errorf("error listing collectibles: %w", err)
			}
			stamp(&resp.Page, page)
			return resp, nil
		},
		NextPage: func(last *marketplace.ListCollectiblesResponse) (marketplace.Page, bool) {
			return nextAfter(last.Page)
		},
	}
}

type ListActivitiesArgs struct {
	ChainID           uint64
	CollectionAddress string
	// TokenID narrows the feed to one collectible when set.
	TokenID string
	Page    *marketplace.Page
	Enabled *bool
}

func ListCollectionActivities(
	c *Clients,
	args ListActivitiesArgs,
) InfiniteOptions[*marketplace.ListActivitiesResponse] {
	return InfiniteOptions[*marketplace.ListActivitiesResponse]{
		Key:         []any{"listCollectionActivities", args.ChainID, strings.ToLower(args.CollectionAddress)},
		Enabled:     enabled(args.Enabled, args.ChainID != 0, args.CollectionAddress != ""),
		InitialPage: firstPage(args.Page),
		Fetch: func(ctx context.Context, page marketplace.Page) (*marketplace.ListActivitiesResponse, error) {
			resp, err := c.Marketplace.ListCollectionActivities(ctx, &marketplace.ListCollectionActivitiesRequest{
				ChainID:         strconv.FormatUint(args.ChainID, 10),
				ContractAddress: args.CollectionAddress,
				Page:            &page,
			})
			if err != nil {
				return nil, fmt.Errorf("error listing collection activities: %w", err)
			}
			stamp(&resp.Page, page)
			return resp, nil
		},
		NextPage: func(last *marketplace.ListActivitiesResponse) (marketplace.Page, bool) {
			return nextAfter(last.Page)
		},
	}
}

func ListCollectibleActivities(
	c *Clients,
	args ListActivitiesArgs,
) InfiniteOptions[*marketplace.ListActivitiesResponse] {
	return InfiniteOptions[*marketplace.ListActivitiesResponse]{
		Key: []any{
			"listCollectibleActivities",
			args.ChainID,
			strings.ToLower(args.CollectionAddress),
			args.TokenID,
		},
		Enabled:     enabled(args.Enabled, args.ChainID != 0, args.CollectionAddress != "", args.TokenID != ""),
		InitialPage: firstPage(args.Page),
		Fetch: func(ctx context.Context, page marketplace.Page) (*marketplace.ListActivitiesResponse, error) {
			resp, err := c.Marketplace.ListCollectibleActivities(ctx, &marketplace.ListCollectibleActivitiesRequest{
				ChainID:         strconv.FormatUint(args.ChainID, 10),
				ContractAddress: args.CollectionAddress,
				TokenID:         args.TokenID,
				Page:            &page,
			})
			if err != nil {
				return nil, fmt.Errorf("error listing collectible activities: %w", err)
			}
			stamp(&resp.Page, page)
			return resp, nil
		},
		NextPage: func(last *marketplace.ListActivitiesResponse) (marketplace.Page, bool) {
			return nextAfter(last.Page)
		},
	}
}

type ListPrimarySaleItemsArgs struct {
	ChainID                    uint64
	PrimarySaleContractAddress string
	Filter                     *marketplace.PrimarySaleItemsFilter
	Page                       *marketplace.Page
	Enabled                    *bool
}

func ListPrimarySaleItems(
	c *Clients,
	args ListPrimarySaleItemsArgs,
) InfiniteOptions[*marketplace.ListPrimarySaleItemsResponse] {
	return InfiniteOptions[*marketplace.ListPrimarySaleItemsResponse]{
		Key: []any{
			"listPrimarySaleItems",
			args.ChainID,
			strings.ToLower(args.PrimarySaleContractAddress),
			args.Filter,
		},
		Enabled:     enabled(args.Enabled, args.ChainID != 0, args.PrimarySaleContractAddress != ""),
		InitialPage: firstPage(args.Page),
		Fetch: func(ctx context.Context, page marketplace.Page) (*marketplace.ListPrimarySaleItemsResponse, error) {
			resp, err := c.Marketplace.ListPrimarySaleItems(ctx, &marketplace.ListPrimarySaleItemsRequest{
				ChainID:                    strconv.FormatUint(args.ChainID, 10),
				PrimarySaleContractAddress: args.PrimarySaleContractAddress,
				Filter:                     args.Filter,
				Page:                       &page,
			})
			if err != nil {
				return nil, fmt.Errorf("error listing primary sale items: %w", err)
			}
			stamp(&resp.Page, page)
			return resp, nil
		},
		NextPage: func(last *marketplace.ListPrimarySaleItemsResponse) (marketplace.Page, bool) {
			return nextAfter(last.Page)
		},
	}
}
