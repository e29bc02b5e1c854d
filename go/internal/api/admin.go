package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mcdev12/faauction/go/internal/bidadmin"
	"github.com/mcdev12/faauction/go/internal/settings"
)

type toggleResponse struct {
	AuctionClosed bool `json:"auction_closed"`
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.apps.Settings.Snapshot(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateAuctionSettingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	snapshot, err := h.apps.Settings.UpdateAuctionSettings(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

type setSettingRequest struct {
	Value string `json:"value"`
}

func (h *Handler) setSetting(w http.ResponseWriter, r *http.Request) {
	var req setSettingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.apps.Settings.Set(r.Context(), chi.URLParam(r, "key"), req.Value); err != nil {
		writeError(w, r, err)
		return
	}
	snapshot, err := h.apps.Settings.Snapshot(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) toggleAuction(w http.ResponseWriter, r *http.Request) {
	closed, err := h.apps.Settings.ToggleAuction(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleResponse{AuctionClosed: closed})
}

func (h *Handler) editBid(w http.ResponseWriter, r *http.Request) {
	bidID, ok := pathUUID(w, r, "bidID")
	if !ok {
		return
	}
	var req bidadmin.EditBidRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	bid, err := h.apps.BidAdmin.EditBid(r.Context(), bidID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bid)
}

func (h *Handler) deleteBid(w http.ResponseWriter, r *http.Request) {
	bidID, ok := pathUUID(w, r, "bidID")
	if !ok {
		return
	}
	if err := h.apps.BidAdmin.DeleteBid(r.Context(), bidID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
