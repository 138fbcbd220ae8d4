package handler

import (
	"net/http"

	"github.com/vladislavprovich/marketplace-sdk/internal/service"
)

func (h *ServiceHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.InventoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Inventory(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "Inventory", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) ClearInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.ClearInventoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.ClearInventory(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "ClearInventory", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}
