package settings

import (
	"time"

	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/shopspring/decimal"
)

// UpdateAuctionSettingsRequest holds the admin-editable settings. Nil fields are left unchanged.
type UpdateAuctionSettingsRequest struct {
	MinBidIncrementPercent *decimal.Decimal     `json:"min_bid_increment_percent,omitempty"`
	MaxContractYears       *int                 `json:"max_contract_years,omitempty"`
	MaxBidsPerPlayer       *int                 `json:"max_bids_per_player,omitempty"`
	DeadlineType           *models.DeadlineType `json:"deadline_type,omitempty"`
	Deadline               *time.Time           `json:"deadline,omitempty"`
	AuctionClosed          *bool                `json:"auction_closed,omitempty"`
}
