package service

import (
	"context"
	"log/slog"

	"github.com/vladislavprovich/marketplace-sdk/pkg/query"
)

func (s *Service) Listings(ctx context.Context, req *ListingsRequest) (*ListingsResponse, error) {
	s.logger.InfoContext(ctx, "Listings", slog.Any("req", req))
	if err := validate(ctx, req); err != nil {
		return nil, err
	}

	opts := query.ListListingsForCollectible(s.clients, s.convectorToQuery.ConvertToListOrdersArgs(req))

	resp, err := opts.Fetch(ctx, opts.InitialPage)
	if err != nil {
		s.logger.ErrorContext(ctx, "service query.ListListingsForCollectible", slog.Any("error", err))
		return nil, err
	}

	return s.convectorFromQuery.ConvertFromListings(resp), nil
}

func (s *Service) LowestListing(ctx context.Context, req *LowestListingRequest) (*LowestListingResponse, error) {
	s.logger.InfoContext(ctx, "LowestListing", slog.Any("req", req))
	if err := validate(ctx, req); err != nil {
		return nil, err
	}

	order, err := query.LowestListing(s.clients, s.convectorToQuery.ConvertToOrderArgs(req)).Fetch(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "service query.LowestListing", slog.Any("error", err))
		return nil, err
	}

	return &LowestListingResponse{Order: order}, nil
}
