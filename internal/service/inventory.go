package service

import (
	"context"
	"log/slog"

	"github.com/vladislavprovich/marketplace-sdk/pkg/query"
)

func (s *Service) Inventory(ctx context.Context, req *InventoryRequest) (*InventoryResponse, error) {
	s.logger.InfoContext(ctx, "Inventory", slog.Any("req", req))
	if err := validate(ctx, req); err != nil {
		return nil, err
	}

	opts := query.Inventory(s.clients, s.convectorToQuery.ConvertToInventoryArgs(req))

	page, err := opts.Fetch(ctx, opts.InitialPage)
	if err != nil {
		s.logger.ErrorContext(ctx, "service query.Inventory", slog.Any("error", err))
		return nil, err
	}

	return s.convectorFromQuery.ConvertFromInventoryPage(page), nil
}

func (s *Service) ClearInventory(ctx context.Context, req *ClearInventoryRequest) (*ClearInventoryResponse, error) {
	s.logger.InfoContext(ctx, "ClearInventory", slog.Any("req", req))
	if err := validate(ctx, req); err != nil {
		return nil, err
	}

	store := s.clients.Inventory().Store()
	if req.All {
		store.ClearAll()
	} else {
		store.Clear(s.convectorToQuery.ConvertToInventoryKey(req))
	}

	return &ClearInventoryResponse{Cleared: true}, nil
}
