package query

import (
	"context"
	"strings"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
	"github.com/vladislavprovich/marketplace-sdk/pkg/inventory"
)

type InventoryArgs struct {
	ChainID           uint64
	CollectionAddress string
	AccountAddress    string
	ContractType      marketplace.ContractType
	Page              *marketplace.Page
	Enabled           *bool
}

// Inventory pages through the account's collectibles of one collection,
// listed ones first, then the rest of its indexer holdings.
func Inventory(c *Clients, args InventoryArgs) InfiniteOptions[*inventory.Page] {
	inv := inventory.Args{
		ChainID:           args.ChainID,
		CollectionAddress: args.CollectionAddress,
		AccountAddress:    args.AccountAddress,
		ContractType:      args.ContractType,
	}

	return InfiniteOptions[*inventory.Page]{
		Key: []any{
			"inventory",
			args.ChainID,
			strings.ToLower(args.CollectionAddress),
			strings.ToLower(args.AccountAddress),
		},
		Enabled: enabled(args.Enabled,
			args.ChainID != 0,
			args.CollectionAddress != "",
			args.AccountAddress != "",
		),
		InitialPage: firstPage(args.Page),
		Fetch: func(ctx context.Context, page marketplace.Page) (*inventory.Page, error) {
			return c.inventory.Fetch(ctx, inv, page)
		},
		NextPage: func(last *inventory.Page) (marketplace.Page, bool) {
			return nextAfter(&last.Page)
		},
	}
}
