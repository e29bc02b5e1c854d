package bidfeed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/bidfeed/db"
	"github.com/mcdev12/faauction/go/internal/sqlutil"
)

// Repository reads the bid outbox the insert trigger fills.
type Repository struct {
	queries *db.Queries
}

// NewRepository creates a new bid feed repository
func NewRepository(queries *db.Queries) *Repository {
	return &Repository{queries: queries}
}

func (r *Repository) FetchUnsentBids(ctx context.Context, limit int) ([]BidPlacedEvent, error) {
	rows, err := r.queries.ListUnsentBids(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent bids: %w", err)
	}

	events := make([]BidPlacedEvent, len(rows))
	for i, row := range rows {
		amount, err := sqlutil.FromNumeric(row.AmountPerYear)
		if err != nil {
			return nil, err
		}
		total, err := sqlutil.FromNumeric(row.TotalValue)
		if err != nil {
			return nil, err
		}
		events[i] = BidPlacedEvent{
			EventID:       row.ID,
			EventType:     EventTypeBidPlaced,
			Seq:           row.Seq,
			PlayerID:      row.PlayerID,
			PlayerName:    row.FirstName + " " + row.LastName,
			TeamID:        row.TeamID,
			TeamName:      row.TeamName,
			AmountPerYear: amount,
			Years:         int(row.Years),
			TotalValue:    total,
			IsOpeningBid:  row.IsOpeningBid,
			PlacedAt:      row.CreatedAt,
		}
	}
	return events, nil
}

func (r *Repository) MarkBidSent(ctx context.Context, bidID uuid.UUID) error {
	if err := r.queries.MarkBidSent(ctx, bidID); err != nil {
		return fmt.Errorf("failed to mark bid %s sent: %w", bidID, err)
	}
	return nil
}

func (r *Repository) CountUnsentBids(ctx context.Context) (int64, error) {
	count, err := r.queries.CountUnsentBids(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unsent bids: %w", err)
	}
	return count, nil
}
