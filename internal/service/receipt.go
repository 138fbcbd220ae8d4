package service

import (
	"context"
	"log/slog"

	"github.com/vladislavprovich/marketplace-sdk/pkg/query"
)

func (s *Service) WaitReceipt(ctx context.Context, req *WaitReceiptRequest) (*WaitReceiptResponse, error) {
	s.logger.InfoContext(ctx, "WaitReceipt", slog.Any("req", req))
	if err := validate(ctx, req); err != nil {
		return nil, err
	}

	receipt, err := query.TransactionReceipt(s.clients, s.convectorToQuery.ConvertToReceiptArgs(req)).Fetch(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "service query.TransactionReceipt", slog.Any("error", err))
		return nil, err
	}

	return &WaitReceiptResponse{Receipt: receipt}, nil
}
