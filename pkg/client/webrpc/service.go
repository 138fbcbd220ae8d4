package webrpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vladislavprovich/marketplace-sdk/pkg/metrics"
)

// Schema identifies the RIDL schema a service was generated from.
type Schema struct {
	Name    string
	Version string
}

func (s Schema) header() string {
	return webrpcVersion + ";" + genVersion + ";" + s.Name + "@" + s.Version
}

// Service binds a Transport to one webrpc service path, e.g. /rpc/Marketplace/.
// Typed clients are method tables over a Service.
type Service struct {
	transport *Transport
	name      string
	path      string
	schema    Schema
}

func NewService(t *Transport, name string, schema Schema) *Service {
	return &Service{
		transport: t,
		name:      name,
		path:      "/rpc/" + name + "/",
		schema:    schema,
	}
}

func (s *Service) Name() string {
	return s.name
}

// URL returns the endpoint of method.
func (s *Service) URL(method string) string {
	return s.transport.cfg.BaseURL + s.path + method
}

// Call posts in to method and decodes the response into out.
func (s *Service) Call(ctx context.Context, method string, in, out any, opts ...CallOption) error {
	start := time.Now()
	err := s.call(ctx, method, in, out, opts...)
	s.observe(ctx, method, start, err)
	return err
}

func (s *Service) call(ctx context.Context, method string, in, out any, opts ...CallOption) error {
	if timeout := s.transport.cfg.CallTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := s.transport.post(ctx, s.URL(method), s.schema.header(), in, opts...)
	if err != nil {
		return err
	}
	defer s.transport.closeBody(ctx, res, method)

	return decodeResponse(res, out)
}

func (s *Service) observe(ctx context.Context, method string, start time.Time, err error) {
	metrics.RPCCallLatency.WithLabelValues(s.name, method).Observe(time.Since(start).Seconds())

	if err == nil {
		metrics.RPCCallsTotal.WithLabelValues(s.name, method, "ok").Inc()
		return
	}

	outcome := string(KindWebrpcError)
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		outcome = string(rpcErr.Kind)
	}
	metrics.RPCCallsTotal.WithLabelValues(s.name, method, outcome).Inc()

	s.transport.logger.ErrorContext(ctx, "webrpc call failed",
		slog.String("service", s.name),
		slog.String("method", method),
		slog.Any("error", err),
	)
}

// Invoke calls method on svc and returns the decoded response.
func Invoke[Resp any](ctx context.Context, svc *Service, method string, req any, opts ...CallOption) (*Resp, error) {
	var resp Resp
	if err := svc.Call(ctx, method, req, &resp, opts...); err != nil {
		return nil, err
	}
	return &resp, nil
}
