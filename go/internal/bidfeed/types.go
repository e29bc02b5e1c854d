package bidfeed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventTypeBidPlaced is the only event the feed emits.
const EventTypeBidPlaced = "BidPlaced"

// BidPlacedEvent is published once per stored bid.
type BidPlacedEvent struct {
	EventID       uuid.UUID       `json:"event_id"`
	EventType     string          `json:"event_type"`
	Seq           int64           `json:"seq"`
	PlayerID      uuid.UUID       `json:"player_id"`
	PlayerName    string          `json:"player_name"`
	TeamID        uuid.UUID       `json:"team_id"`
	TeamName      string          `json:"team_name"`
	AmountPerYear decimal.Decimal `json:"amount_per_year"`
	Years         int             `json:"years"`
	TotalValue    decimal.Decimal `json:"total_value"`
	IsOpeningBid  bool            `json:"is_opening_bid"`
	PlacedAt      time.Time       `json:"placed_at"`
}

// Subject returns the NATS subject for bids on one player.
func Subject(prefix string, playerID uuid.UUID) string {
	return fmt.Sprintf("%s.placed.%s", prefix, playerID)
}
