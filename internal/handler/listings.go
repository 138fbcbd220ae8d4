package handler

import (
	"net/http"

	"github.com/vladislavprovich/marketplace-sdk/internal/service"
)

func (h *ServiceHandler) Listings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.ListingsRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Listings(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "Listings", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) LowestListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.LowestListingRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.LowestListing(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "LowestListing", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}
