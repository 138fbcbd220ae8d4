package handler

import (
	"net/http"

	"github.com/vladislavprovich/marketplace-sdk/internal/service"
)

func (h *ServiceHandler) WaitReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.WaitReceiptRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.WaitReceipt(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "WaitReceipt", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}
