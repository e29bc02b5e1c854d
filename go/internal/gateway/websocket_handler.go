package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler serves the live bid board.
type WebSocketHandler struct {
	connectionManager *ConnectionManager
}

func NewWebSocketHandler(cm *ConnectionManager) *WebSocketHandler {
	return &WebSocketHandler{connectionManager: cm}
}

// HandlePlayerConnection subscribes the client to bids on the player in the path.
func (h *WebSocketHandler) HandlePlayerConnection(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		http.Error(w, "invalid player id", http.StatusBadRequest)
		return
	}

	memberID := r.URL.Query().Get("member_id")
	if memberID == "" {
		memberID = "anonymous"
	}

	if err := h.connectionManager.UpgradeConnection(w, r, memberID, playerID); err != nil {
		// The upgrader has already written the HTTP error.
		log.Error().
			Err(err).
			Str("player_id", playerID.String()).
			Str("member_id", memberID).
			Msg("failed to upgrade websocket connection")
	}
}

func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.connectionManager.Stats()); err != nil {
		log.Error().Err(err).Msg("failed to write connection stats")
	}
}

// RegisterRoutes mounts the websocket routes.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/players/{playerID}", h.HandlePlayerConnection)
	r.Get("/ws/stats", h.HandleConnectionStats)
}
