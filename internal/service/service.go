package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/vladislavprovich/marketplace-sdk/internal/worker"
	"github.com/vladislavprovich/marketplace-sdk/pkg/query"
)

const (
	maxPageSize       = 100
	maxReceiptTimeout = 5 * time.Minute
)

var (
	addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txnHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

type MarketplaceService interface {
	Health(ctx context.Context) (*HealthResponse, error)
	Inventory(ctx context.Context, req *InventoryRequest) (*InventoryResponse, error)
	ClearInventory(ctx context.Context, req *ClearInventoryRequest) (*ClearInventoryResponse, error)
	Currencies(ctx context.Context, req *CurrenciesRequest) (*CurrenciesResponse, error)
	ConvertPrice(ctx context.Context, req *ConvertPriceRequest) (*ConvertPriceResponse, error)
	Listings(ctx context.Context, req *ListingsRequest) (*ListingsResponse, error)
	LowestListing(ctx context.Context, req *LowestListingRequest) (*LowestListingResponse, error)
	WaitReceipt(ctx context.Context, req *WaitReceiptRequest) (*WaitReceiptResponse, error)
}

// HealthReporter is the part of the maintenance worker Health reports on.
type HealthReporter interface {
	IsHealthy() bool
	GetMetrics() *worker.Metrics
}

type Service struct {
	logger             *slog.Logger
	clients            *query.Clients
	maintenance        HealthReporter
	convectorToQuery   *ConvectorToQuery
	convectorFromQuery *ConvectorFromQuery
}

var _ MarketplaceService = (*Service)(nil)

type Option func(*Service)

func WithMaintenance(w HealthReporter) Option {
	return func(s *Service) {
		s.maintenance = w
	}
}

func NewMarketplaceService(_ context.Context, log *slog.Logger, clients *query.Clients, opts ...Option) *Service {
	s := &Service{
		logger:             log,
		clients:            clients,
		convectorToQuery:   NewConvectorToQuery(),
		convectorFromQuery: NewConvectorFromQuery(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type validatable interface {
	ValidateWithContext(ctx context.Context) error
}

func validate(ctx context.Context, req validatable) error {
	if err := req.ValidateWithContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}
