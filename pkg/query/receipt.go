package query

import (
	"context"
	"strings"
	"time"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/indexer"
)

type TransactionReceiptArgs struct {
	ChainID uint64
	TxnHash string
	// Timeout defaults to indexer.DefaultReceiptTimeout.
	Timeout time.Duration
	Enabled *bool
}

// TransactionReceipt waits for the receipt of a submitted transaction.
func TransactionReceipt(c *Clients, args TransactionReceiptArgs) Options[*indexer.TransactionReceipt] {
	return Options[*indexer.TransactionReceipt]{
		Key:     []any{"transactionReceipt", args.ChainID, strings.ToLower(args.TxnHash)},
		Enabled: enabled(args.Enabled, args.ChainID != 0, args.TxnHash != ""),
		Fetch: func(ctx context.Context) (*indexer.TransactionReceipt, error) {
			ic, err := c.Indexer(args.ChainID)
			if err != nil {
				return nil, err
			}
			return ic.WaitForReceipt(ctx, args.TxnHash, args.Timeout)
		},
	}
}
