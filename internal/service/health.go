package service

import (
	"context"
	"net/http"
)

// Health reports 503 while the maintenance worker is stopped or its circuit
// breaker is open.
func (s *Service) Health(_ context.Context) (*HealthResponse, error) {
	resp := &HealthResponse{
		Status: http.StatusOK,
	}

	if s.maintenance != nil {
		resp.Worker = s.maintenance.GetMetrics()
		if !s.maintenance.IsHealthy() {
			resp.Status = http.StatusServiceUnavailable
		}
	}

	return resp, nil
}
