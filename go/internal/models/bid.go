package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bid is an immutable contract offer. Seq is the insertion order assigned by the database.
type Bid struct {
	ID            uuid.UUID       `json:"id"`
	Seq           int64           `json:"seq"`
	PlayerID      uuid.UUID       `json:"player_id"`
	TeamID        uuid.UUID       `json:"team_id"`
	MemberID      uuid.UUID       `json:"member_id"`
	AmountPerYear decimal.Decimal `json:"amount_per_year"`
	Years         int             `json:"years"`
	TotalValue    decimal.Decimal `json:"total_value"`
	IsOpeningBid  bool            `json:"is_opening_bid"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BidDetail is a bid joined with the names shown on bid boards.
type BidDetail struct {
	Bid
	TeamName   string `json:"team_name"`
	MemberName string `json:"member_name"`
}
