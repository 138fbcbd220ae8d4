package webrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/vladislavprovich/marketplace-sdk/pkg/metrics"
)

// Stream reads a webrpc server stream: newline-delimited JSON frames where
// "{}" is a keep-alive and {"webrpcError":{...}} terminates with an error.
type Stream[T any] struct {
	ctx    context.Context
	svc    *Service
	method string
	res    *http.Response
	dec    *json.Decoder
}

type streamFrame struct {
	WebrpcError *ErrorPayload `json:"webrpcError"`
}

// OpenStream starts a server stream. The stream is bound to ctx, cancelling it
// closes the connection.
func OpenStream[T any](ctx context.Context, svc *Service, method string, req any, opts ...CallOption) (*Stream[T], error) {
	start := time.Now()
	opts = append(opts, WithHeader("Accept", "application/x-ndjson"))

	res, err := svc.transport.post(ctx, svc.URL(method), svc.schema.header(), req, opts...)
	if err != nil {
		svc.observe(ctx, method, start, err)
		return nil, err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		defer svc.transport.closeBody(ctx, res, method)
		err = decodeResponse(res, nil)
		svc.observe(ctx, method, start, err)
		return nil, err
	}

	return &Stream[T]{
		ctx:    ctx,
		svc:    svc,
		method: method,
		res:    res,
		dec:    json.NewDecoder(res.Body),
	}, nil
}

// Recv blocks until the next message. A clean end of stream returns an error
// of kind WebrpcStreamFinished, a truncated frame WebrpcStreamLost.
func (s *Stream[T]) Recv() (*T, error) {
	for {
		var raw json.RawMessage
		if err := s.dec.Decode(&raw); err != nil {
			return nil, s.decodeErr(err)
		}

		metrics.RPCStreamFrames.WithLabelValues(s.svc.name, s.method).Inc()

		if bytes.Equal(bytes.TrimSpace(raw), []byte("{}")) {
			continue
		}

		var frame streamFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			return nil, newKindError(ErrWebrpcBadResponse, s.res.StatusCode, string(raw), err)
		}
		if frame.WebrpcError != nil {
			return nil, NewError(*frame.WebrpcError, s.res.StatusCode)
		}

		var msg T
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, newKindError(ErrWebrpcBadResponse, s.res.StatusCode, string(raw), err)
		}
		return &msg, nil
	}
}

func (s *Stream[T]) decodeErr(err error) error {
	if ctxErr := s.ctx.Err(); ctxErr != nil {
		return newKindError(ErrWebrpcClientDisconnected, 0, ctxErr.Error(), ctxErr)
	}
	switch {
	case errors.Is(err, io.EOF):
		return newKindError(ErrWebrpcStreamFinished, s.res.StatusCode, "", err)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return newKindError(ErrWebrpcStreamLost, s.res.StatusCode, err.Error(), err)
	default:
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return newKindError(ErrWebrpcBadResponse, s.res.StatusCode, err.Error(), err)
		}
		return newKindError(ErrWebrpcStreamLost, s.res.StatusCode, err.Error(), err)
	}
}

func (s *Stream[T]) Close() error {
	return s.res.Body.Close()
}
