package bidding

import (
	"sort"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
)

// Outranks reports whether a stands ahead of b for the same player.
// Higher total value wins. Equal totals go to the earlier bid, and equal timestamps to the
// lower insertion sequence, so the order is total.
func Outranks(a, b models.Bid) bool {
	if c := a.TotalValue.Cmp(b.TotalValue); c != 0 {
		return c > 0
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.Seq < b.Seq
}

// SortByStanding orders bids on one player from leading to last.
func SortByStanding(bids []models.Bid) {
	sort.SliceStable(bids, func(i, j int) bool {
		return Outranks(bids[i], bids[j])
	})
}

// SortDetailsByStanding is SortByStanding for joined bid rows.
func SortDetailsByStanding(bids []models.BidDetail) {
	sort.SliceStable(bids, func(i, j int) bool {
		return Outranks(bids[i].Bid, bids[j].Bid)
	})
}

// LeadingBid returns the bid currently winning the player, or nil when there are no bids.
func LeadingBid(bids []models.Bid) *models.Bid {
	var leader *models.Bid
	for i := range bids {
		if leader == nil || Outranks(bids[i], *leader) {
			leader = &bids[i]
		}
	}
	return leader
}

// LeadingDetail is LeadingBid for joined bid rows.
func LeadingDetail(bids []models.BidDetail) *models.BidDetail {
	var leader *models.BidDetail
	for i := range bids {
		if leader == nil || Outranks(bids[i].Bid, leader.Bid) {
			leader = &bids[i]
		}
	}
	return leader
}

// LeadersByPlayer groups bids by player and returns each player's leading bid.
func LeadersByPlayer(bids []models.Bid) map[uuid.UUID]models.Bid {
	leaders := make(map[uuid.UUID]models.Bid)
	for _, b := range bids {
		if cur, ok := leaders[b.PlayerID]; !ok || Outranks(b, cur) {
			leaders[b.PlayerID] = b
		}
	}
	return leaders
}
