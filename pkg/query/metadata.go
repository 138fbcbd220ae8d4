package query

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/vladislavprovich/marketplace-sdk/pkg/cache"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/indexer"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/metadata"
	"github.com/vladislavprovich/marketplace-sdk/pkg/inventory"
)

const supplyPageSize = 1000

type SearchTokenMetadataArgs struct {
	ChainID           uint64
	CollectionAddress string
	Filter            *metadata.Filter
	Page              *marketplace.Page
	Enabled           *bool
}

func (a SearchTokenMetadataArgs) search(
	ctx context.Context,
	c *Clients,
	page marketplace.Page,
) (*metadata.SearchTokenMetadataResponse, error) {
	resp, err := c.Metadata.SearchTokenMetadata(ctx, &metadata.SearchTokenMetadataRequest{
		ChainID:         strconv.FormatUint(a.ChainID, 10),
		ContractAddress: a.CollectionAddress,
		Filter:          a.Filter,
		Page:            &metadata.Page{Page: clampUint32(page.Page), PageSize: clampUint32(page.PageSize)},
	})
	if err != nil {
		return nil, fmt.Errorf("error searching token metadata: %w", err)
	}
	if resp.Page == nil {
		resp.Page = &metadata.Page{}
	}
	if resp.Page.Page == 0 {
		resp.Page.Page = clampUint32(page.Page)
	}
	if resp.Page.PageSize == 0 {
		resp.Page.PageSize = clampUint32(page.PageSize)
	}
	return resp, nil
}

func clampUint32(v int) uint32 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}

func metadataNext(p *metadata.Page) (marketplace.Page, bool) {
	if p == nil || !p.More {
		return marketplace.Page{}, false
	}
	return marketplace.Page{Page: int(p.Page) + 1, PageSize: int(p.PageSize)}, true
}

func SearchTokenMetadata(
	c *Clients,
	args SearchTokenMetadataArgs,
) InfiniteOptions[*metadata.SearchTokenMetadataResponse] {
	return InfiniteOptions[*metadata.SearchTokenMetadataResponse]{
		Key:         []any{"searchTokenMetadata", args.ChainID, strings.ToLower(args.CollectionAddress), args.Filter},
		Enabled:     enabled(args.Enabled, args.ChainID != 0, args.CollectionAddress != ""),
		InitialPage: firstPage(args.Page),
		Fetch: func(ctx context.Context, page marketplace.Page) (*metadata.SearchTokenMetadataResponse, error) {
			return args.search(ctx, c, page)
		},
		NextPage: func(last *metadata.SearchTokenMetadataResponse) (marketplace.Page, bool) {
			return metadataNext(last.Page)
		},
	}
}

// MintedMetadataPage is one page of metadata search results restricted to
// minted tokens.
type MintedMetadataPage struct {
	TokenMetadata []*metadata.TokenMetadata `json:"tokenMetadata"`
	Page          *metadata.Page            `json:"page"`
	// FilteredCount is the number of minted results on this and every
	// earlier page of the same query.
	FilteredCount  int `json:"filteredCount"`
	CandidateCount int `json:"candidateCount"`
}

// SearchMetadataOnlyMinted searches metadata and keeps only tokens that
// have supply. It reports a next page while fewer results than minted
// tokens were found and the metadata search has more pages.
func SearchMetadataOnlyMinted(c *Clients, args SearchTokenMetadataArgs) InfiniteOptions[*MintedMetadataPage] {
	var (
		mu         sync.Mutex
		cumulative = make(map[uint32]int)
	)

	return InfiniteOptions[*MintedMetadataPage]{
		Key: []any{
			"searchMetadataOnlyMinted",
			args.ChainID,
			strings.ToLower(args.CollectionAddress),
			args.Filter,
		},
		Enabled:     enabled(args.Enabled, args.ChainID != 0, args.CollectionAddress != ""),
		InitialPage: firstPage(args.Page),
		Fetch: func(ctx context.Context, page marketplace.Page) (*MintedMetadataPage, error) {
			minted, err := mintedTokenIDs(ctx, c, args.ChainID, args.CollectionAddress)
			if err != nil {
				return nil, err
			}

			resp, err := args.search(ctx, c, page)
			if err != nil {
				return nil, err
			}

			out := &MintedMetadataPage{
				TokenMetadata:  make([]*metadata.TokenMetadata, 0, len(resp.TokenMetadata)),
				Page:           resp.Page,
				CandidateCount: len(minted),
			}
			for _, md := range resp.TokenMetadata {
				if md == nil {
					continue
				}
				if _, ok := minted[inventory.CanonicalTokenID(md.TokenID)]; ok {
					out.TokenMetadata = append(out.TokenMetadata, md)
				}
			}

			mu.Lock()
			out.FilteredCount = cumulative[resp.Page.Page-1] + len(out.TokenMetadata)
			cumulative[resp.Page.Page] = out.FilteredCount
			mu.Unlock()

			return out, nil
		},
		NextPage: func(last *MintedMetadataPage) (marketplace.Page, bool) {
			if last.FilteredCount >= last.CandidateCount {
				return marketplace.Page{}, false
			}
			return metadataNext(last.Page)
		},
	}
}

// mintedTokenIDs drains the collection's token supplies into a set.
func mintedTokenIDs(ctx context.Context, c *Clients, chainID uint64, collection string) (map[string]struct{}, error) {
	key := fmt.Sprintf("token-supplies:%d:%s", chainID, strings.ToLower(collection))

	ids, err := cache.Remember(ctx, c.cache, key, c.cacheTTL, func(ctx context.Context) ([]string, error) {
		ic, err := c.Indexer(chainID)
		if err != nil {
			return nil, err
		}

		var ids []string
		for page := 1; ; page++ {
			if err = ctx.Err(); err != nil {
				return nil, err
			}

			resp, err := ic.GetTokenSupplies(ctx, &indexer.GetTokenSuppliesRequest{
				ContractAddress: collection,
				Page:            &indexer.Page{Page: page, PageSize: supplyPageSize},
			})
			if err != nil {
				return nil, fmt.Errorf("error fetching token supplies page %d: %w", page, err)
			}
			for _, s := range resp.TokenIDs {
				if s != nil {
					ids = append(ids, s.TokenID)
				}
			}
			if resp.Page == nil || !resp.Page.More {
				return ids, nil
			}
		}
	})
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[inventory.CanonicalTokenID(id)] = struct{}{}
	}
	return set, nil
}
