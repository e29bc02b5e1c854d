package bidding

import (
	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/auction"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/shopspring/decimal"
)

// PlaceBidRequest is a team's contract offer for a player.
type PlaceBidRequest struct {
	PlayerID      uuid.UUID       `json:"player_id"`
	TeamID        uuid.UUID       `json:"team_id"`
	MemberID      uuid.UUID       `json:"member_id"`
	AmountPerYear decimal.Decimal `json:"amount_per_year"`
	Years         int             `json:"years"`
}

// BidStatus is one team's view of the bidding on a player.
type BidStatus struct {
	PlayerID         uuid.UUID          `json:"player_id"`
	TeamID           uuid.UUID          `json:"team_id"`
	Gate             auction.GateStatus `json:"gate"`
	LeadingBid       *models.BidDetail  `json:"leading_bid,omitempty"`
	TeamIsLeading    bool               `json:"team_is_leading"`
	NextIsOpening    bool               `json:"next_is_opening"`
	BidsPlaced       int                `json:"bids_placed"`
	BidsRemaining    int                `json:"bids_remaining"`
	MinimumTotal     *decimal.Decimal   `json:"minimum_total,omitempty"`
	IncrementPercent decimal.Decimal    `json:"increment_percent"`
	MaxContractYears int                `json:"max_contract_years"`
	AvailableBudget  decimal.Decimal    `json:"available_budget"`
}
