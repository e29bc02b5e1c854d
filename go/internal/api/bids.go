package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/bidding"
	"github.com/shopspring/decimal"
)

type placeBidBody struct {
	TeamID        uuid.UUID       `json:"team_id"`
	MemberID      uuid.UUID       `json:"member_id"`
	AmountPerYear decimal.Decimal `json:"amount_per_year"`
	Years         int             `json:"years"`
}

func (h *Handler) placeBid(w http.ResponseWriter, r *http.Request) {
	playerID, ok := pathUUID(w, r, "playerID")
	if !ok {
		return
	}
	var body placeBidBody
	if !decodeJSON(w, r, &body) {
		return
	}
	if body.TeamID == uuid.Nil || body.MemberID == uuid.Nil {
		writeProblem(w, http.StatusBadRequest, CodeInvalidRequest, "team_id and member_id are required")
		return
	}
	if !h.bidLimiter.Allow(body.MemberID.String()) {
		writeProblem(w, http.StatusTooManyRequests, CodeRateLimited, "too many bids, slow down")
		return
	}

	bid, err := h.apps.Bidding.PlaceBid(r.Context(), bidding.PlaceBidRequest{
		PlayerID:      playerID,
		TeamID:        body.TeamID,
		MemberID:      body.MemberID,
		AmountPerYear: body.AmountPerYear,
		Years:         body.Years,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, bid)
}

func (h *Handler) listPlayerBids(w http.ResponseWriter, r *http.Request) {
	playerID, ok := pathUUID(w, r, "playerID")
	if !ok {
		return
	}
	if _, err := h.apps.Players.GetActive(r.Context(), playerID); err != nil {
		writeError(w, r, err)
		return
	}
	bids, err := h.apps.Bidding.ListPlayerBids(r.Context(), playerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bids)
}

func (h *Handler) getLeadingBid(w http.ResponseWriter, r *http.Request) {
	playerID, ok := pathUUID(w, r, "playerID")
	if !ok {
		return
	}
	if _, err := h.apps.Players.GetActive(r.Context(), playerID); err != nil {
		writeError(w, r, err)
		return
	}
	leader, err := h.apps.Bidding.GetLeadingBid(r.Context(), playerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if leader == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, leader)
}

func (h *Handler) getBidStatus(w http.ResponseWriter, r *http.Request) {
	playerID, ok := pathUUID(w, r, "playerID")
	if !ok {
		return
	}
	teamID, err := uuid.Parse(r.URL.Query().Get("team_id"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, CodeInvalidRequest, "team_id query parameter is required")
		return
	}
	status, err := h.apps.Bidding.GetBidStatus(r.Context(), playerID, teamID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) getAuctionStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.apps.Bidding.AuctionStatus(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
