package player

import (
	"errors"

	"github.com/mcdev12/faauction/go/internal/models"
)

// ErrPlayerNotFound is returned for unknown or archived players.
var ErrPlayerNotFound = errors.New("player not found")

// ListFilter narrows the active pool listing. Zero values match everything.
type ListFilter struct {
	Position models.Position
	Search   string
}

// PoolEntry is an active player with the current state of bidding on them.
type PoolEntry struct {
	models.Player
	LeadingBid *models.BidDetail `json:"leading_bid,omitempty"`
	BidCount   int               `json:"bid_count"`
}

// ClearResult reports what ClearActivePool removed.
type ClearResult struct {
	PlayersDeleted int64 `json:"players_deleted"`
	BidsDeleted    int64 `json:"bids_deleted"`
}
