package gateway

import (
	"time"

	"github.com/mcdev12/faauction/go/internal/bidfeed"
)

type EventType string

const EventTypeBidPlaced EventType = "bid_placed"

// BidEvent is the frame sent to websocket clients.
type BidEvent struct {
	ID        string                 `json:"id"`
	PlayerID  string                 `json:"player_id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      bidfeed.BidPlacedEvent `json:"data"`
}

func newBidEvent(e bidfeed.BidPlacedEvent) *BidEvent {
	return &BidEvent{
		ID:        e.EventID.String(),
		PlayerID:  e.PlayerID.String(),
		Type:      EventTypeBidPlaced,
		Timestamp: e.PlacedAt,
		Data:      e,
	}
}
