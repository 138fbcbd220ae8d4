package webrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	HeaderWebrpc    = "Webrpc"
	HeaderAccessKey = "X-Access-Key"

	webrpcVersion = "webrpc@v0.22.1"
	genVersion    = "gen-golang@v0.17.0"
)

type Config struct {
	BaseURL   string
	AccessKey string
	// CallTimeout bounds each unary call. Streams are bounded by their
	// context only.
	CallTimeout time.Duration
}

// Transport posts webrpc requests to one host. It is stateless per call and
// safe for concurrent use.
type Transport struct {
	client *http.Client
	logger *slog.Logger
	cfg    *Config
}

func NewTransport(httpClient *http.Client, cfg *Config, log *slog.Logger) *Transport {
	c := *cfg
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	return &Transport{
		client: httpClient,
		logger: log,
		cfg:    &c,
	}
}

func (t *Transport) BaseURL() string {
	return t.cfg.BaseURL
}

type callOptions struct {
	header http.Header
}

type CallOption func(*callOptions)

// WithHeader adds an extra request header to a single call.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) {
		o.header.Set(key, value)
	}
}

func (t *Transport) post(
	ctx context.Context,
	url, schemaHeader string,
	in any,
	opts ...CallOption,
) (*http.Response, error) {
	body := []byte("{}")
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, newKindError(ErrWebrpcBadRequest, 0, err.Error(), err)
		}
		if !bytes.Equal(b, []byte("null")) {
			body = b
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, newKindError(ErrWebrpcRequestFailed, 0, err.Error(), err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(HeaderWebrpc, schemaHeader)
	if t.cfg.AccessKey != "" {
		httpReq.Header.Set(HeaderAccessKey, t.cfg.AccessKey)
	}

	o := callOptions{header: http.Header{}}
	for _, opt := range opts {
		opt(&o)
	}
	for k, vs := range o.header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	res, err := t.client.Do(httpReq)
	if err != nil {
		return nil, newKindError(ErrWebrpcRequestFailed, 0, err.Error(), err)
	}
	return res, nil
}

func (t *Transport) closeBody(ctx context.Context, res *http.Response, method string) {
	if err := res.Body.Close(); err != nil {
		t.logger.ErrorContext(ctx,
			"error closing response body",
			slog.String("method", method),
			slog.Any("error", err),
		)
	}
}

// decodeResponse turns a unary response into out or a typed error.
func decodeResponse(res *http.Response, out any) error {
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return newKindError(ErrWebrpcBadResponse, res.StatusCode,
			fmt.Sprintf("reading response body: %s", err), err)
	}

	if !json.Valid(body) {
		return newKindError(ErrWebrpcBadResponse, res.StatusCode,
			fmt.Sprintf("invalid JSON response: %s", string(body)), nil)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var p ErrorPayload
		if err = json.Unmarshal(body, &p); err != nil {
			return newKindError(ErrWebrpcBadResponse, res.StatusCode,
				fmt.Sprintf("unexpected error body: %s", string(body)), err)
		}
		return NewError(p, res.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(body, out); err != nil {
		return newKindError(ErrWebrpcBadResponse, res.StatusCode,
			fmt.Sprintf("%s: response text: %s", err, string(body)), err)
	}
	return nil
}
