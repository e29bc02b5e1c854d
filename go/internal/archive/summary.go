package archive

import (
	"sort"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/bidding"
	"github.com/mcdev12/faauction/go/internal/models"
)

// buildResults picks the winning bid per player, ordered by player name.
func buildResults(rows []resultBid) []models.ArchiveResult {
	bids := make([]models.Bid, len(rows))
	byID := make(map[uuid.UUID]resultBid, len(rows))
	for i, r := range rows {
		bids[i] = r.Bid
		byID[r.ID] = r
	}

	leaders := bidding.LeadersByPlayer(bids)
	results := make([]models.ArchiveResult, 0, len(leaders))
	for _, leader := range leaders {
		r := byID[leader.ID]
		results = append(results, models.ArchiveResult{
			PlayerID:      leader.PlayerID,
			PlayerName:    r.PlayerName,
			Position:      r.Position.String(),
			TeamID:        leader.TeamID,
			TeamName:      r.TeamName,
			AmountPerYear: leader.AmountPerYear,
			Years:         leader.Years,
			TotalValue:    leader.TotalValue,
		})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].PlayerName != results[j].PlayerName {
			return results[i].PlayerName < results[j].PlayerName
		}
		return results[i].PlayerID.String() < results[j].PlayerID.String()
	})
	return results
}
