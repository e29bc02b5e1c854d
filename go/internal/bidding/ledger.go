package bidding

import (
	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/shopspring/decimal"
)

// Committed sums the per-year amounts of the bids teamID currently leads.
// bids must contain every bid on each player considered, restricted to the active pool,
// otherwise a player's leader cannot be decided.
func Committed(teamID uuid.UUID, bids []models.Bid) decimal.Decimal {
	total := decimal.Zero
	for _, leader := range LeadersByPlayer(bids) {
		if leader.TeamID == teamID {
			total = total.Add(leader.AmountPerYear)
		}
	}
	return total
}

// Available is the team's budget minus its current commitments.
func Available(team models.Team, bids []models.Bid) decimal.Decimal {
	return team.Budget.Sub(Committed(team.ID, bids))
}
