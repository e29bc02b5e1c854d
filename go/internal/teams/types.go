package teams

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrTeamHasBids is returned when deleting a team that has bid history.
	ErrTeamHasBids = errors.New("team has bids and cannot be deleted")
	// ErrBudgetBelowCommitments is returned when a budget cut would leave the team
	// owing more than its new budget.
	ErrBudgetBelowCommitments = errors.New("budget is below the team's current commitments")
	// ErrTeamNotFound is returned for an unknown team id.
	ErrTeamNotFound = errors.New("team not found")
	// ErrMemberNotFound is returned for an unknown member id.
	ErrMemberNotFound = errors.New("member not found")
)

// CreateTeamRequest holds the fields for a new team.
type CreateTeamRequest struct {
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
}

// UpdateTeamRequest holds optional team changes.
type UpdateTeamRequest struct {
	Name   *string          `json:"name,omitempty"`
	Budget *decimal.Decimal `json:"budget,omitempty"`
}

// TeamSummary is a team with its live budget position.
type TeamSummary struct {
	models.Team
	Committed decimal.Decimal `json:"committed"`
	Available decimal.Decimal `json:"available"`
}

// CreateMemberRequest holds the fields for a new member.
type CreateMemberRequest struct {
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	TeamID  *uuid.UUID `json:"team_id,omitempty"`
	IsAdmin bool       `json:"is_admin"`
}

// AssignMemberRequest moves a member between teams or deactivates them.
type AssignMemberRequest struct {
	TeamID   *uuid.UUID `json:"team_id,omitempty"`
	IsActive bool       `json:"is_active"`
}
