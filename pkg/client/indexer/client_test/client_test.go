package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/indexer"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/webrpc"
)

func newClient(t *testing.T, h http.HandlerFunc) *indexer.BasicClient {
	t.Helper()

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	tr := webrpc.NewTransport(server.Client(), &webrpc.Config{BaseURL: server.URL}, slog.Default())
	return indexer.NewBasicClient(tr)
}

func TestBasicClient_GetTokenBalances(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rpc/Indexer/GetTokenBalances", r.URL.Path)

		var req indexer.GetTokenBalancesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "0xowner", req.AccountAddress)
		assert.Equal(t, 2, req.Page.Page)

		_, _ = w.Write([]byte(`{
			"page": {"page": 2, "pageSize": 40, "more": false},
			"balances": [{"contractType":"ERC1155","contractAddress":"0xc","accountAddress":"0xowner",
				"tokenID":"5","balance":"340282366920938463463374607431768211455","chainId":137}]
		}`))
	})

	resp, err := client.GetTokenBalances(context.Background(), &indexer.GetTokenBalancesRequest{
		AccountAddress:  "0xowner",
		ContractAddress: "0xc",
		IncludeMetadata: true,
		Page:            &indexer.Page{Page: 2, PageSize: 40},
	})
	require.NoError(t, err)
	require.Len(t, resp.Balances, 1)
	assert.Equal(t, "340282366920938463463374607431768211455", resp.Balances[0].Balance)
	assert.False(t, resp.Page.More)
}

func receiptHandler(t *testing.T, frames ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rpc/Indexer/SubscribeReceipts", r.URL.Path)
		w.Header().Set("Content-Type", "application/x-ndjson")
		for _, f := range frames {
			_, _ = w.Write([]byte(f + "\n"))
			w.(http.Flusher).Flush()
		}
		<-r.Context().Done()
	}
}

func TestBasicClient_WaitForReceipt_ReceiptWins(t *testing.T) {
	client := newClient(t, receiptHandler(t,
		`{}`,
		`{"receipt":{"txnHash":"0xother","txnStatus":"SUCCESSFUL"}}`,
		`{"receipt":{"txnHash":"0xABC","txnStatus":"SUCCESSFUL","blockNumber":99}}`,
	))

	receipt, err := client.WaitForReceipt(context.Background(), "0xabc", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), receipt.BlockNumber)
	assert.Equal(t, "SUCCESSFUL", receipt.TxnStatus)
}

func TestBasicClient_WaitForReceipt_OutlivesHTTPTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-ndjson")
		for i := 0; i < 8; i++ {
			_, _ = w.Write([]byte("{}\n"))
			w.(http.Flusher).Flush()
			time.Sleep(100 * time.Millisecond)
		}
		_, _ = w.Write([]byte(`{"receipt":{"txnHash":"0xabc","txnStatus":"SUCCESSFUL","blockNumber":7}}` + "\n"))
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	httpClient, err := webrpc.NewHTTPClient(webrpc.HTTPClientConfig{Timeout: 200 * time.Millisecond})
	require.NoError(t, err)
	client := indexer.NewBasicClient(webrpc.NewTransport(httpClient, &webrpc.Config{
		BaseURL:     server.URL,
		CallTimeout: 200 * time.Millisecond,
	}, slog.Default()))

	receipt, err := client.WaitForReceipt(context.Background(), "0xabc", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), receipt.BlockNumber)
}

func TestBasicClient_WaitForReceipt_Timeout(t *testing.T) {
	client := newClient(t, receiptHandler(t, `{}`))

	start := time.Now()
	_, err := client.WaitForReceipt(context.Background(), "0xabc", 100*time.Millisecond)
	require.Error(t, err)

	assert.ErrorIs(t, err, webrpc.ErrTimeout)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestBasicClient_WaitForReceipt_StreamError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"webrpcError":{"code":1000}}` + "\n"))
	})

	_, err := client.WaitForReceipt(context.Background(), "0xabc", 5*time.Second)
	assert.ErrorIs(t, err, webrpc.ErrUnauthorized)
}

func TestBasicClient_WaitForReceipt_ParentCanceled(t *testing.T) {
	client := newClient(t, receiptHandler(t, `{}`))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := client.WaitForReceipt(ctx, "0xabc", time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, webrpc.ErrTimeout)
}
