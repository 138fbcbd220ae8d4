package indexer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/webrpc"
)

const DefaultReceiptTimeout = 3 * time.Minute

// WaitForReceipt subscribes to receipts of txnHash and returns the first one.
// Whichever of the receipt and the deadline loses is cancelled with the
// derived context, which also closes the stream. A zero timeout uses
// DefaultReceiptTimeout; expiry surfaces as a Timeout kind error.
func (c *BasicClient) WaitForReceipt(
	ctx context.Context,
	txnHash string,
	timeout time.Duration,
) (*TransactionReceipt, error) {
	if timeout <= 0 {
		timeout = DefaultReceiptTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	receipts := make(chan *TransactionReceipt, 1)
	errs := make(chan error, 1)

	go func() {
		stream, err := c.SubscribeReceipts(ctx, &SubscribeReceiptsRequest{
			Filter: &TransactionFilter{TxnHash: &txnHash},
		})
		if err != nil {
			errs <- err
			return
		}
		defer stream.Close()

		for {
			msg, err := stream.Recv()
			if err != nil {
				errs <- err
				return
			}
			if msg.Receipt != nil && strings.EqualFold(msg.Receipt.TxnHash, txnHash) {
				receipts <- msg.Receipt
				return
			}
		}
	}()

	select {
	case receipt := <-receipts:
		return receipt, nil
	case err := <-errs:
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, timeoutError(txnHash, ctx.Err())
		}
		return nil, err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, timeoutError(txnHash, ctx.Err())
		}
		return nil, ctx.Err()
	}
}

func timeoutError(txnHash string, err error) error {
	return webrpc.ErrTimeout.WithCause("waiting for receipt of "+txnHash, err)
}
