package bidadmin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/bidding"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ErrBidNotFound is returned for an unknown bid id.
var ErrBidNotFound = errors.New("bid not found")

// MaxEditYears bounds corrected terms so the total value still fits its column.
// Edits skip the auction's contract limit.
const MaxEditYears = 99

// EditBidRequest holds corrected contract terms.
type EditBidRequest struct {
	AmountPerYear decimal.Decimal `json:"amount_per_year"`
	Years         int             `json:"years"`
}

// BidRepository defines what the app layer needs from the repository
type BidRepository interface {
	GetBid(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	UpdateBidTerms(ctx context.Context, id uuid.UUID, amount decimal.Decimal, years int, total decimal.Decimal) (*models.Bid, error)
	DeleteBid(ctx context.Context, id uuid.UUID) error
}

// App lets administrators correct bids. Edits bypass the auction rules entirely: no
// deadline, increment, bid-limit or budget checks are applied.
type App struct {
	repo BidRepository
}

// NewApp creates a new bid admin App
func NewApp(repo BidRepository) *App {
	return &App{repo: repo}
}

// EditBid replaces a bid's amount and term and recomputes its total value
func (a *App) EditBid(ctx context.Context, id uuid.UUID, req EditBidRequest) (*models.Bid, error) {
	if err := a.validateEditBidRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidRequest, err)
	}

	before, err := a.repo.GetBid(ctx, id)
	if err != nil {
		return nil, err
	}

	total := bidding.TotalValue(req.AmountPerYear, req.Years)
	after, err := a.repo.UpdateBidTerms(ctx, id, req.AmountPerYear, req.Years, total)
	if err != nil {
		return nil, err
	}

	log.Warn().
		Str("bid_id", id.String()).
		Str("player_id", after.PlayerID.String()).
		Str("team_id", after.TeamID.String()).
		Str("old_amount_per_year", before.AmountPerYear.StringFixed(2)).
		Int("old_years", before.Years).
		Str("new_amount_per_year", after.AmountPerYear.StringFixed(2)).
		Int("new_years", after.Years).
		Msg("bid edited by admin")
	return after, nil
}

// DeleteBid removes a bid
func (a *App) DeleteBid(ctx context.Context, id uuid.UUID) error {
	bid, err := a.repo.GetBid(ctx, id)
	if err != nil {
		return err
	}
	if err := a.repo.DeleteBid(ctx, id); err != nil {
		return err
	}

	log.Warn().
		Str("bid_id", id.String()).
		Str("player_id", bid.PlayerID.String()).
		Str("team_id", bid.TeamID.String()).
		Str("amount_per_year", bid.AmountPerYear.StringFixed(2)).
		Int("years", bid.Years).
		Msg("bid deleted by admin")
	return nil
}

func (a *App) validateEditBidRequest(req EditBidRequest) error {
	if !req.AmountPerYear.IsPositive() {
		return fmt.Errorf("amount_per_year must be positive")
	}
	if !req.AmountPerYear.Equal(req.AmountPerYear.Round(2)) {
		return fmt.Errorf("amount_per_year must have at most 2 decimal places")
	}
	if req.AmountPerYear.GreaterThan(bidding.MaxAmountPerYear) {
		return fmt.Errorf("amount_per_year must not exceed %s", bidding.MaxAmountPerYear.StringFixed(2))
	}
	if req.Years < 1 || req.Years > MaxEditYears {
		return fmt.Errorf("years must be between 1 and %d", MaxEditYears)
	}
	return nil
}
