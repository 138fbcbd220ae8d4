package handler

import (
	"net/http"

	"github.com/vladislavprovich/marketplace-sdk/internal/service"
)

func (h *ServiceHandler) Currencies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.CurrenciesRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Currencies(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "Currencies", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) ConvertPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.ConvertPriceRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.ConvertPrice(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "ConvertPrice", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}
