package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/mcdev12/faauction/go/internal/player"
)

func (h *Handler) listPlayers(w http.ResponseWriter, r *http.Request) {
	filter := player.ListFilter{Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("position"); raw != "" {
		pos, ok := parsePosition(raw)
		if !ok {
			writeProblem(w, http.StatusBadRequest, CodeInvalidRequest, "unknown position "+raw)
			return
		}
		filter.Position = pos
	}

	entries, err := h.apps.Players.ListActive(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// parsePosition accepts a numeric code or an abbreviation such as "SS".
func parsePosition(raw string) (models.Position, bool) {
	if n, err := strconv.Atoi(raw); err == nil {
		pos := models.Position(n)
		return pos, pos.String() != raw
	}
	return models.ParsePosition(strings.ToUpper(raw))
}

func (h *Handler) getPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := pathUUID(w, r, "playerID")
	if !ok {
		return
	}
	p, err := h.apps.Players.GetActive(r.Context(), playerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) clearActivePool(w http.ResponseWriter, r *http.Request) {
	result, err := h.apps.Players.ClearActivePool(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
