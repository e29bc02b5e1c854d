package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mcdev12/faauction/go/internal/bidfeed"
	"github.com/rs/zerolog/log"
)

// ConnectionManager fans bid events out to the websocket clients watching each player.
type ConnectionManager struct {
	// Connection pools organized by player ID
	playerConnections map[uuid.UUID]map[*Connection]bool
	mu                sync.RWMutex

	upgrader websocket.Upgrader
	config   ConnectionConfig

	broadcastCh chan BroadcastMessage
}

// Connection is one subscribed websocket client.
type Connection struct {
	ID       string
	MemberID string
	PlayerID uuid.UUID
	Conn     *websocket.Conn
	Send     chan []byte
	Manager  *ConnectionManager

	ConnectedAt time.Time
	LastPing    time.Time
}

type ConnectionConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	SendBuffer      int
	CheckOrigin     func(r *http.Request) bool
}

type BroadcastMessage struct {
	PlayerID uuid.UUID
	Event    *BidEvent
}

func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		SendBuffer:      256,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

func NewConnectionManager(config ConnectionConfig) *ConnectionManager {
	return &ConnectionManager{
		playerConnections: make(map[uuid.UUID]map[*Connection]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config:      config,
		broadcastCh: make(chan BroadcastMessage, 1000),
	}
}

// Start processes broadcasts until ctx is done.
func (cm *ConnectionManager) Start(ctx context.Context) {
	log.Info().Msg("connection manager started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("connection manager shutting down")
			return
		case message := <-cm.broadcastCh:
			cm.handleBroadcast(message)
		}
	}
}

// UpgradeConnection upgrades the request and subscribes the client to playerID.
func (cm *ConnectionManager) UpgradeConnection(w http.ResponseWriter, r *http.Request, memberID string, playerID uuid.UUID) error {
	conn, err := cm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade connection: %w", err)
	}

	now := time.Now()
	connection := &Connection{
		ID:          uuid.New().String(),
		MemberID:    memberID,
		PlayerID:    playerID,
		Conn:        conn,
		Send:        make(chan []byte, cm.config.SendBuffer),
		Manager:     cm,
		ConnectedAt: now,
		LastPing:    now,
	}

	cm.registerConnection(connection)

	go connection.writePump()
	go connection.readPump()

	log.Info().
		Str("connection_id", connection.ID).
		Str("member_id", memberID).
		Str("player_id", playerID.String()).
		Msg("websocket connection established")
	return nil
}

func (cm *ConnectionManager) registerConnection(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.playerConnections[conn.PlayerID] == nil {
		cm.playerConnections[conn.PlayerID] = make(map[*Connection]bool)
	}
	cm.playerConnections[conn.PlayerID][conn] = true

	log.Debug().
		Str("connection_id", conn.ID).
		Str("player_id", conn.PlayerID.String()).
		Int("total_connections", len(cm.playerConnections[conn.PlayerID])).
		Msg("connection registered")
}

func (cm *ConnectionManager) unregisterConnection(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	connections, exists := cm.playerConnections[conn.PlayerID]
	if !exists {
		return
	}
	if _, exists := connections[conn]; !exists {
		return
	}
	delete(connections, conn)
	close(conn.Send)

	if len(connections) == 0 {
		delete(cm.playerConnections, conn.PlayerID)
	}

	log.Info().
		Str("connection_id", conn.ID).
		Str("member_id", conn.MemberID).
		Str("player_id", conn.PlayerID.String()).
		Msg("connection unregistered")
}

// BroadcastBid queues a placed bid for the clients watching its player. It never blocks;
// when the queue is full the event is dropped and clients catch up from the bid list.
func (cm *ConnectionManager) BroadcastBid(event bidfeed.BidPlacedEvent) {
	select {
	case cm.broadcastCh <- BroadcastMessage{PlayerID: event.PlayerID, Event: newBidEvent(event)}:
	default:
		log.Warn().Str("player_id", event.PlayerID.String()).Msg("broadcast channel full, dropping message")
	}
}

// handleBroadcast sends under the read lock: unregisterConnection closes Send under the
// write lock, so a send never races the close.
func (cm *ConnectionManager) handleBroadcast(message BroadcastMessage) {
	data, err := json.Marshal(message.Event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal event for broadcast")
		return
	}

	cm.mu.RLock()
	connections := cm.playerConnections[message.PlayerID]
	delivered := len(connections)
	var slow []*Connection
	for conn := range connections {
		select {
		case conn.Send <- data:
		default:
			slow = append(slow, conn)
		}
	}
	cm.mu.RUnlock()

	for _, conn := range slow {
		log.Warn().
			Str("connection_id", conn.ID).
			Str("member_id", conn.MemberID).
			Msg("connection send buffer full, closing connection")
		cm.unregisterConnection(conn)
		conn.Conn.Close()
	}

	if delivered > 0 {
		log.Debug().
			Str("event_type", string(message.Event.Type)).
			Str("player_id", message.PlayerID.String()).
			Int("connections", delivered-len(slow)).
			Msg("event broadcasted")
	}
}

// ConnectionStats counts open connections.
type ConnectionStats struct {
	TotalConnections int            `json:"total_connections"`
	WatchedPlayers   int            `json:"watched_players"`
	PerPlayer        map[string]int `json:"per_player"`
}

func (cm *ConnectionManager) Stats() ConnectionStats {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	stats := ConnectionStats{
		WatchedPlayers: len(cm.playerConnections),
		PerPlayer:      make(map[string]int, len(cm.playerConnections)),
	}
	for playerID, connections := range cm.playerConnections {
		stats.TotalConnections += len(connections)
		stats.PerPlayer[playerID.String()] = len(connections)
	}
	return stats
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(c.Manager.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
		c.Manager.unregisterConnection(c)
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error().Err(err).Str("connection_id", c.ID).Msg("failed to write message to websocket")
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Error().Err(err).Str("connection_id", c.ID).Msg("failed to send ping")
				return
			}
		}
	}
}

// readPump keeps the read deadline fresh and drains client frames. Clients have nothing to
// say; anything they send is logged and discarded.
func (c *Connection) readPump() {
	defer func() {
		c.Manager.unregisterConnection(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(c.Manager.config.MaxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Str("connection_id", c.ID).Msg("unexpected websocket close error")
			}
			return
		}
		log.Debug().
			Str("connection_id", c.ID).
			Int("bytes", len(message)).
			Msg("ignoring client message")
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	}
}
