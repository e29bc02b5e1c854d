package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeadlineType selects how the auction gate decides whether bidding is open.
type DeadlineType string

const (
	DeadlineTypeManual   DeadlineType = "manual"
	DeadlineTypeDatetime DeadlineType = "datetime"
)

// Setting keys persisted in the settings table.
const (
	SettingMinBidIncrementPercent = "min_bid_increment_percent"
	SettingMaxContractYears       = "max_contract_years"
	SettingMaxBidsPerPlayer       = "max_bids_per_player"
	SettingDeadlineType           = "deadline_type"
	SettingDeadlineDatetime       = "deadline_datetime"
	SettingAuctionClosed          = "auction_closed"
)

// Defaults applied when a setting is absent.
const (
	DefaultMinBidIncrementPercent = 5
	DefaultMaxContractYears       = 5
	DefaultMaxBidsPerPlayer       = 3
)

// AuctionSettings is a point-in-time snapshot of the rules governing bidding.
// A single snapshot is used for the whole of a bid placement.
type AuctionSettings struct {
	MinBidIncrementPercent decimal.Decimal `json:"min_bid_increment_percent"`
	MaxContractYears       int             `json:"max_contract_years"`
	MaxBidsPerPlayer       int             `json:"max_bids_per_player"`
	DeadlineType           DeadlineType    `json:"deadline_type"`
	AuctionClosed          bool            `json:"auction_closed"`
	Deadline               *time.Time      `json:"deadline,omitempty"`
}

// DefaultAuctionSettings returns the settings used on a fresh install.
func DefaultAuctionSettings() AuctionSettings {
	return AuctionSettings{
		MinBidIncrementPercent: decimal.NewFromInt(DefaultMinBidIncrementPercent),
		MaxContractYears:       DefaultMaxContractYears,
		MaxBidsPerPlayer:       DefaultMaxBidsPerPlayer,
		DeadlineType:           DeadlineTypeManual,
	}
}
