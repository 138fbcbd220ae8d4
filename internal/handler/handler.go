package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/unrolled/render"

	"github.com/vladislavprovich/marketplace-sdk/internal/service"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/laos"
	"github.com/vladislavprovich/marketplace-sdk/pkg/client/webrpc"
	"github.com/vladislavprovich/marketplace-sdk/pkg/inventory"
	"github.com/vladislavprovich/marketplace-sdk/pkg/query"
)

type Handler interface {
	Health(w http.ResponseWriter, r *http.Request)
	Inventory(w http.ResponseWriter, r *http.Request)
	ClearInventory(w http.ResponseWriter, r *http.Request)
	Currencies(w http.ResponseWriter, r *http.Request)
	ConvertPrice(w http.ResponseWriter, r *http.Request)
	Listings(w http.ResponseWriter, r *http.Request)
	LowestListing(w http.ResponseWriter, r *http.Request)
	WaitReceipt(w http.ResponseWriter, r *http.Request)
}

type ServiceHandler struct {
	service service.MarketplaceService
	logger  *slog.Logger
	cfg     *Config
	render  *render.Render
}

var _ Handler = (*ServiceHandler)(nil)

func NewServiceHandler(
	srv service.MarketplaceService,
	logger *slog.Logger,
	cfg *Config,
	render *render.Render,
) *ServiceHandler {
	return &ServiceHandler{
		service: srv,
		logger:  logger,
		cfg:     cfg,
		render:  render,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Code  *int   `json:"code,omitempty"`
}

func (h *ServiceHandler) sendJSON(ctx context.Context, w io.Writer, status int, body any) {
	if err := h.render.JSON(w, status, body); err != nil {
		h.logger.ErrorContext(ctx, "render JSON error", slog.Any("error", err))
	}
}

// decode reads the JSON body into req and answers 400 when it is malformed.
func (h *ServiceHandler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to decode request body", slog.Any("error", err))
		h.sendJSON(r.Context(), w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func (h *ServiceHandler) sendError(ctx context.Context, w io.Writer, op string, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, op+" error", slog.Any("error", err))
	} else {
		h.logger.WarnContext(ctx, op+" rejected", slog.Any("error", err))
	}
	h.sendJSON(ctx, w, status, body)
}

func errorResponse(err error) (int, ErrorResponse) {
	body := ErrorResponse{Error: err.Error()}

	var rpcErr *webrpc.Error
	if errors.As(err, &rpcErr) {
		code := rpcErr.Code
		body.Kind = string(rpcErr.Kind)
		body.Code = &code
		return statusForKind(rpcErr.Kind), body
	}

	var laosErr *laos.APIError
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest, body
	case errors.Is(err, inventory.ErrPageOutOfOrder):
		return http.StatusConflict, body
	case errors.Is(err, query.ErrCurrencyNotFound):
		return http.StatusNotFound, body
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, body
	case errors.As(err, &laosErr):
		return http.StatusBadGateway, body
	default:
		return http.StatusInternalServerError, body
	}
}

func statusForKind(kind webrpc.Kind) int {
	switch kind {
	case webrpc.KindWebrpcBadRequest, webrpc.KindInvalidArgument, webrpc.KindInvalidNetwork:
		return http.StatusBadRequest
	case webrpc.KindUnauthorized, webrpc.KindSessionExpired:
		return http.StatusUnauthorized
	case webrpc.KindPermissionDenied, webrpc.KindFeatureNotIncluded, webrpc.KindServiceDisabled:
		return http.StatusForbidden
	case webrpc.KindNotFound, webrpc.KindUserNotFound, webrpc.KindProjectNotFound:
		return http.StatusNotFound
	case webrpc.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
