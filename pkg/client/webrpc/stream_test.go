package webrpc_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/webrpc"
)

type receiptFrame struct {
	Receipt struct {
		TxnHash string `json:"txnHash"`
	} `json:"receipt"`
}

func TestStream_SkipsPingsAndFinishes(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-ndjson", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/x-ndjson")
		_, _ = w.Write([]byte("{}\n{\"receipt\":{\"txnHash\":\"0x1\"}}\n{}\n{\"receipt\":{\"txnHash\":\"0x2\"}}\n"))
	})

	stream, err := webrpc.OpenStream[receiptFrame](context.Background(), svc, "SubscribeReceipts", nil)
	require.NoError(t, err)
	defer stream.Close()

	first, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "0x1", first.Receipt.TxnHash)

	second, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "0x2", second.Receipt.TxnHash)

	_, err = stream.Recv()
	assert.ErrorIs(t, err, webrpc.ErrWebrpcStreamFinished)
}

func TestStream_ErrorFrame(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}\n{\"webrpcError\":{\"code\":1002,\"message\":\"session gone\"}}\n"))
	})

	stream, err := webrpc.OpenStream[receiptFrame](context.Background(), svc, "SubscribeReceipts", nil)
	require.NoError(t, err)
	defer stream.Close()

	_, err = stream.Recv()
	require.Error(t, err)
	assert.ErrorIs(t, err, webrpc.ErrSessionExpired)
	assert.Contains(t, err.Error(), "session gone")
}

func TestStream_TruncatedFrameIsStreamLost(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{\"receipt\":{\"txnHash\":"))
	})

	stream, err := webrpc.OpenStream[receiptFrame](context.Background(), svc, "SubscribeReceipts", nil)
	require.NoError(t, err)
	defer stream.Close()

	_, err = stream.Recv()
	assert.ErrorIs(t, err, webrpc.ErrWebrpcStreamLost)
}

func TestStream_OpenErrorStatus(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":1000}`))
	})

	_, err := webrpc.OpenStream[receiptFrame](context.Background(), svc, "SubscribeReceipts", nil)
	assert.ErrorIs(t, err, webrpc.ErrUnauthorized)
}

func TestStream_CancelIsClientDisconnected(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}\n"))
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	stream, err := webrpc.OpenStream[receiptFrame](ctx, svc, "SubscribeReceipts", nil)
	require.NoError(t, err)
	defer stream.Close()

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = stream.Recv()
	assert.ErrorIs(t, err, webrpc.ErrWebrpcClientDisconnected)
	assert.ErrorIs(t, err, context.Canceled)
}
