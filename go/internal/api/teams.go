package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/teams"
	"github.com/shopspring/decimal"
)

type budgetResponse struct {
	TeamID    uuid.UUID       `json:"team_id"`
	Available decimal.Decimal `json:"available"`
}

func (h *Handler) listTeams(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.apps.Teams.ListTeams(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	summary, err := h.apps.Teams.GetTeam(r.Context(), teamID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) getTeamBudget(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	available, err := h.apps.Bidding.GetAvailableBudget(r.Context(), teamID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, budgetResponse{TeamID: teamID, Available: available})
}

func (h *Handler) createTeam(w http.ResponseWriter, r *http.Request) {
	var req teams.CreateTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	team, err := h.apps.Teams.CreateTeam(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, team)
}

func (h *Handler) updateTeam(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	var req teams.UpdateTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	team, err := h.apps.Teams.UpdateTeam(r.Context(), teamID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

func (h *Handler) deleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	if err := h.apps.Teams.DeleteTeam(r.Context(), teamID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.apps.Teams.ListMembers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *Handler) createMember(w http.ResponseWriter, r *http.Request) {
	var req teams.CreateMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	member, err := h.apps.Teams.CreateMember(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *Handler) assignMember(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pathUUID(w, r, "memberID")
	if !ok {
		return
	}
	var req teams.AssignMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	member, err := h.apps.Teams.AssignMember(r.Context(), memberID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}
