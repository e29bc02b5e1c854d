package bidadmin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/bidadmin/db"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/mcdev12/faauction/go/internal/sqlutil"
	"github.com/shopspring/decimal"
)

// Repository implements bid correction data access
type Repository struct {
	queries *db.Queries
}

// NewRepository creates a new bid admin repository
func NewRepository(queries *db.Queries) *Repository {
	return &Repository{queries: queries}
}

// GetBid retrieves a bid by ID
func (r *Repository) GetBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	row, err := r.queries.GetBid(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBidNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bid: %w", err)
	}
	return dbBidToModel(row)
}

// UpdateBidTerms overwrites a bid's contract terms
func (r *Repository) UpdateBidTerms(ctx context.Context, id uuid.UUID, amount decimal.Decimal, years int, total decimal.Decimal) (*models.Bid, error) {
	row, err := r.queries.UpdateBidTerms(ctx, db.UpdateBidTermsParams{
		ID:            id,
		AmountPerYear: sqlutil.ToNumeric(amount),
		Years:         int32(years),
		TotalValue:    sqlutil.ToNumeric(total),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBidNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update bid: %w", err)
	}
	return dbBidToModel(row)
}

// DeleteBid removes a bid
func (r *Repository) DeleteBid(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteBid(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete bid: %w", err)
	}
	if n == 0 {
		return ErrBidNotFound
	}
	return nil
}

func dbBidToModel(row db.Bid) (*models.Bid, error) {
	amount, err := sqlutil.FromNumeric(row.AmountPerYear)
	if err != nil {
		return nil, err
	}
	total, err := sqlutil.FromNumeric(row.TotalValue)
	if err != nil {
		return nil, err
	}
	return &models.Bid{
		ID:            row.ID,
		Seq:           row.Seq,
		PlayerID:      row.PlayerID,
		TeamID:        row.TeamID,
		MemberID:      row.MemberID,
		AmountPerYear: amount,
		Years:         int(row.Years),
		TotalValue:    total,
		IsOpeningBid:  row.IsOpeningBid,
		CreatedAt:     row.CreatedAt,
	}, nil
}
