package query

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/builder"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/metadata"
)

type MarketplaceConfigArgs struct {
	Enabled *bool
}

// MarketplaceConfig looks up the builder configuration of the project.
func MarketplaceConfig(c *Clients, args MarketplaceConfigArgs) Options[*builder.MarketplaceConfig] {
	return Options[*builder.MarketplaceConfig]{
		Key:     []any{"marketplaceConfig", c.cfg.ProjectID},
		Enabled: enabled(args.Enabled, c.cfg.ProjectID != ""),
		Fetch:   c.marketplaceConfig,
	}
}

type CollectionArgs struct {
	ChainID           uint64
	CollectionAddress string
	Enabled           *bool
}

// Collection returns the contract info of a collection.
func Collection(c *Clients, args CollectionArgs) Options[*metadata.ContractInfo] {
	return Options[*metadata.ContractInfo]{
		Key:     []any{"collection", args.ChainID, strings.ToLower(args.CollectionAddress)},
		Enabled: enabled(args.Enabled, args.ChainID != 0, args.CollectionAddress != ""),
		Fetch: func(ctx context.Context) (*metadata.ContractInfo, error) {
			resp, err := c.Metadata.GetContractInfo(ctx, &metadata.GetContractInfoRequest{
				ChainID:         strconv.FormatUint(args.ChainID, 10),
				ContractAddress: args.CollectionAddress,
			})
			if err != nil {
				return nil, fmt.Errorf("error fetching contract info: %w", err)
			}
			return resp.ContractInfo, nil
		},
	}
}

type CollectibleArgs struct {
	ChainID           uint64
	CollectionAddress string
	TokenID           string
	Enabled           *bool
}

func (a CollectibleArgs) ready() bool {
	return a.ChainID != 0 && a.CollectionAddress != "" && a.TokenID != ""
}

func (a CollectibleArgs) key(name string) []any {
	return []any{name, a.ChainID, strings.ToLower(a.CollectionAddress), a.TokenID}
}

func (a CollectibleArgs) orderRequest(filter *marketplace.OrderFilter) *marketplace.CollectibleOrderRequest {
	return &marketplace.CollectibleOrderRequest{
		ChainID:         strconv.FormatUint(a.ChainID, 10),
		ContractAddress: a.CollectionAddress,
		TokenID:         a.TokenID,
		Filter:          filter,
	}
}

// Collectible returns the metadata of one token, nil when the metadata
// service does not know it.
func Collectible(c *Clients, args CollectibleArgs) Options[*metadata.TokenMetadata] {
	return Options[*metadata.TokenMetadata]{
		Key:     args.key("collectible"),
		Enabled: enabled(args.Enabled, args.ready()),
		Fetch: func(ctx context.Context) (*metadata.TokenMetadata, error) {
			resp, err := c.Metadata.GetTokenMetadata(ctx, &metadata.GetTokenMetadataRequest{
				ChainID:         strconv.FormatUint(args.ChainID, 10),
				ContractAddress: args.CollectionAddress,
				TokenIDs:        []string{args.TokenID},
			})
			if err != nil {
				return nil, fmt.Errorf("error fetching token metadata: %w", err)
			}
			if len(resp.TokenMetadata) == 0 {
				return nil, nil
			}
			return resp.TokenMetadata[0], nil
		},
	}
}

type OrderArgs struct {
	CollectibleArgs
	Filter *marketplace.OrderFilter
}

// LowestListing returns the cheapest active listing of a collectible.
func LowestListing(c *Clients, args OrderArgs) Options[*marketplace.Order] {
	return Options[*marketplace.Order]{
		Key:     append(args.key("lowestListing"), args.Filter),
		Enabled: enabled(args.Enabled, args.ready()),
		Fetch: func(ctx context.Context) (*marketplace.Order, error) {
			resp, err := c.Marketplace.GetLowestPriceListingForCollectible(ctx, args.orderRequest(args.Filter))
			if err != nil {
				return nil, fmt.Errorf("error fetching lowest listing: %w", err)
			}
			return resp.Order, nil
		},
	}
}

// HighestOffer returns the best active offer on a collectible.
func HighestOffer(c *Clients, args OrderArgs) Options[*marketplace.Order] {
	return Options[*marketplace.Order]{
		Key:     append(args.key("highestOffer"), args.Filter),
		Enabled: enabled(args.Enabled, args.ready()),
		Fetch: func(ctx context.Context) (*marketplace.Order, error) {
			resp, err := c.Marketplace.GetHighestPriceOfferForCollectible(ctx, args.orderRequest(args.Filter))
			if err != nil {
				return nil, fmt.Errorf("error fetching highest offer: %w", err)
			}
			return resp.Order, nil
		},
	}
}

func CountListingsForCollectible(c *Clients, args OrderArgs) Options[uint64] {
	return Options[uint64]{
		Key:     append(args.key("countListings"), args.Filter),
		Enabled: enabled(args.Enabled, args.ready()),
		Fetch: func(ctx context.Context) (uint64, error) {
			resp, err := c.Marketplace.GetCountOfListingsForCollectible(ctx, args.orderRequest(args.Filter))
			if err != nil {
				return 0, fmt.Errorf("error counting listings: %w", err)
			}
			return resp.Count, nil
		},
	}
}

func CountOffersForCollectible(c *Clients, args OrderArgs) Options[uint64] {
	return Options[uint64]{
		Key:     append(args.key("countOffers"), args.Filter),
		Enabled: enabled(args.Enabled, args.ready()),
		Fetch: func(ctx context.Context) (uint64, error) {
			resp, err := c.Marketplace.GetCountOfOffersForCollectible(ctx, args.orderRequest(args.Filter))
			if err != nil {
				return 0, fmt.Errorf("error counting offers: %w", err)
			}
			return resp.Count, nil
		},
	}
}

type FloorOrderArgs struct {
	ChainID           uint64
	CollectionAddress string
	Filter            *marketplace.CollectiblesFilter
	Enabled           *bool
}

// FloorOrder returns the collectible holding the collection's floor listing.
func FloorOrder(c *Clients, args FloorOrderArgs) Options[*marketplace.CollectibleOrder] {
	return Options[*marketplace.CollectibleOrder]{
		Key:     []any{"floorOrder", args.ChainID, strings.ToLower(args.CollectionAddress), args.Filter},
		Enabled: enabled(args.Enabled, args.ChainID != 0, args.CollectionAddress != ""),
		Fetch: func(ctx context.Context) (*marketplace.CollectibleOrder, error) {
			resp, err := c.Marketplace.GetFloorOrder(ctx, &marketplace.GetFloorOrderRequest{
				ChainID:         strconv.FormatUint(args.ChainID, 10),
				ContractAddress: args.CollectionAddress,
				Filter:          args.Filter,
			})
			if err != nil {
				return nil, fmt.Errorf("error fetching floor order: %w", err)
			}
			return resp.Collectible, nil
		},
	}
}
