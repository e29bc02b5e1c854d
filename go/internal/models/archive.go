package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Archive is a closed auction season snapshot.
type Archive struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	PlayerCount int             `json:"player_count"`
	BidCount    int             `json:"bid_count"`
	CreatedBy   *uuid.UUID      `json:"created_by,omitempty"`
	Results     []ArchiveResult `json:"results,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ArchiveResult records the winning bid for one player at archive time.
type ArchiveResult struct {
	PlayerID      uuid.UUID       `json:"player_id"`
	PlayerName    string          `json:"player_name"`
	Position      string          `json:"position"`
	TeamID        uuid.UUID       `json:"team_id"`
	TeamName      string          `json:"team_name"`
	AmountPerYear decimal.Decimal `json:"amount_per_year"`
	Years         int             `json:"years"`
	TotalValue    decimal.Decimal `json:"total_value"`
}
