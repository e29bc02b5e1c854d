package bidding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/faauction/go/internal/auction"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ReadStore holds the reads the engine performs, inside or outside a transaction.
type ReadStore interface {
	LoadSettings(ctx context.Context) (models.AuctionSettings, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetActivePlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	// ListPlayerBids returns every bid on the player in standing order.
	ListPlayerBids(ctx context.Context, playerID uuid.UUID) ([]models.BidDetail, error)
	CountFollowUpBids(ctx context.Context, teamID, playerID uuid.UUID) (int, error)
	// ListBidsContestedByTeam returns all bids on active players the team has bid on.
	ListBidsContestedByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Bid, error)
}

// TxStore is the view of the store inside a placement transaction.
type TxStore interface {
	ReadStore
	LockTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	LockActivePlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error)
	InsertBid(ctx context.Context, bid models.Bid) (*models.Bid, error)
}

// Store defines what the engine needs from the repository.
type Store interface {
	ReadStore
	InTx(ctx context.Context, fn func(tx TxStore) error) error
}

// App is the bidding engine.
type App struct {
	store   Store
	clock   clockwork.Clock
	metrics MetricsCollector
}

// Option configures an App.
type Option func(*App)

// WithClock replaces the real clock.
func WithClock(c clockwork.Clock) Option {
	return func(a *App) { a.clock = c }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(a *App) { a.metrics = m }
}

// NewApp creates a new bidding App
func NewApp(store Store, opts ...Option) *App {
	a := &App{
		store:   store,
		clock:   clockwork.NewRealClock(),
		metrics: NoOpMetricsCollector{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// PlaceBid validates the offer against the auction rules and stores it.
// All checks and the insert run in one transaction holding row locks on the team and the
// player, so concurrent offers on the same player or by the same team are serialized.
// Rule violations are returned as Rejection errors and nothing is written.
func (a *App) PlaceBid(ctx context.Context, req PlaceBidRequest) (*models.Bid, error) {
	start := a.clock.Now()

	var placed *models.Bid
	err := a.store.InTx(ctx, func(tx TxStore) error {
		settings, err := tx.LoadSettings(ctx)
		if err != nil {
			return fmt.Errorf("failed to load auction settings: %w", err)
		}
		placed, err = a.placeBid(ctx, tx, settings, req)
		return err
	})

	if err != nil {
		logger := log.With().
			Str("player_id", req.PlayerID.String()).
			Str("team_id", req.TeamID.String()).
			Str("amount_per_year", req.AmountPerYear.String()).
			Int("years", req.Years).
			Logger()
		if rej, ok := AsRejection(err); ok {
			a.metrics.RecordBidRejected(rej.Reason())
			logger.Info().Str("reason", string(rej.Reason())).Msg(rej.Error())
			return nil, err
		}
		a.metrics.RecordPlacementFailure()
		logger.Error().Err(err).Msg("bid placement failed")
		return nil, fmt.Errorf("failed to place bid: %w", err)
	}

	a.metrics.RecordBidPlaced(placed.IsOpeningBid, a.clock.Since(start))
	log.Info().
		Str("bid_id", placed.ID.String()).
		Str("player_id", placed.PlayerID.String()).
		Str("team_id", placed.TeamID.String()).
		Str("amount_per_year", placed.AmountPerYear.StringFixed(2)).
		Int("years", placed.Years).
		Bool("opening", placed.IsOpeningBid).
		Msg("bid placed")
	return placed, nil
}

func (a *App) placeBid(ctx context.Context, tx TxStore, settings models.AuctionSettings, req PlaceBidRequest) (*models.Bid, error) {
	if !auction.IsOpen(settings, a.clock.Now()) {
		return nil, &AuctionClosedError{DeadlineType: settings.DeadlineType, Deadline: settings.Deadline}
	}
	if err := validateAmount(req.AmountPerYear); err != nil {
		return nil, err
	}
	if err := validateTerm(req.Years, settings.MaxContractYears); err != nil {
		return nil, err
	}

	// Lock order is team then player.
	team, err := tx.LockTeam(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}
	if _, err := tx.LockActivePlayer(ctx, req.PlayerID); err != nil {
		return nil, err
	}
	if err := a.checkMember(ctx, tx, req.MemberID, team.ID); err != nil {
		return nil, err
	}

	details, err := tx.ListPlayerBids(ctx, req.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list player bids: %w", err)
	}
	bids := plainBids(details)

	isOpening := len(bids) == 0
	offered := TotalValue(req.AmountPerYear, req.Years)

	var leader *models.Bid
	if !isOpening {
		placedCount, err := tx.CountFollowUpBids(ctx, team.ID, req.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("failed to count team bids: %w", err)
		}
		if placedCount >= settings.MaxBidsPerPlayer {
			return nil, &BidLimitExceededError{Limit: settings.MaxBidsPerPlayer, Placed: placedCount}
		}

		leader = LeadingBid(bids)
		if err := checkIncrement(*leader, offered, settings.MinBidIncrementPercent, req.Years); err != nil {
			return nil, err
		}
	}

	contested, err := tx.ListBidsContestedByTeam(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team commitments: %w", err)
	}
	available := Available(*team, contested)
	needed := BudgetDelta(team.ID, req.AmountPerYear, leader)
	if needed.GreaterThan(available) {
		return nil, &InsufficientBudgetError{Needed: needed, Available: available}
	}

	bid, err := tx.InsertBid(ctx, models.Bid{
		ID:            uuid.New(),
		PlayerID:      req.PlayerID,
		TeamID:        team.ID,
		MemberID:      req.MemberID,
		AmountPerYear: req.AmountPerYear,
		Years:         req.Years,
		TotalValue:    offered,
		IsOpeningBid:  isOpening,
		CreatedAt:     a.clock.Now().UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert bid: %w", err)
	}
	return bid, nil
}

func (a *App) checkMember(ctx context.Context, tx TxStore, memberID, teamID uuid.UUID) error {
	member, err := tx.GetMember(ctx, memberID)
	if err != nil {
		return err
	}
	if !member.IsActive {
		return &NotFoundError{Entity: "member", ID: memberID, Detail: "member is inactive"}
	}
	if member.TeamID == nil || *member.TeamID != teamID {
		return &NotFoundError{Entity: "member", ID: memberID, Detail: "not a member of team " + teamID.String()}
	}
	return nil
}

// GetAvailableBudget returns the team's budget minus the per-year amounts of the bids it
// currently leads in the active pool.
func (a *App) GetAvailableBudget(ctx context.Context, teamID uuid.UUID) (decimal.Decimal, error) {
	team, err := a.store.GetTeam(ctx, teamID)
	if err != nil {
		return decimal.Zero, err
	}
	contested, err := a.store.ListBidsContestedByTeam(ctx, teamID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load team commitments: %w", err)
	}
	return Available(*team, contested), nil
}

// GetLeadingBid returns the bid currently winning the player, or nil when it has no bids.
func (a *App) GetLeadingBid(ctx context.Context, playerID uuid.UUID) (*models.BidDetail, error) {
	bids, err := a.ListPlayerBids(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return LeadingDetail(bids), nil
}

// ListPlayerBids returns all bids on a player, leader first.
func (a *App) ListPlayerBids(ctx context.Context, playerID uuid.UUID) ([]models.BidDetail, error) {
	bids, err := a.store.ListPlayerBids(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list player bids: %w", err)
	}
	SortDetailsByStanding(bids)
	return bids, nil
}

// IsAuctionOpen evaluates the gate against freshly loaded settings.
func (a *App) IsAuctionOpen(ctx context.Context) (bool, error) {
	status, err := a.AuctionStatus(ctx)
	if err != nil {
		return false, err
	}
	return status.Open, nil
}

// AuctionStatus is IsAuctionOpen with deadline details.
func (a *App) AuctionStatus(ctx context.Context) (auction.GateStatus, error) {
	settings, err := a.store.LoadSettings(ctx)
	if err != nil {
		return auction.GateStatus{}, fmt.Errorf("failed to load auction settings: %w", err)
	}
	return auction.Status(settings, a.clock.Now()), nil
}

// GetBidStatus summarizes what teamID may bid on playerID right now.
func (a *App) GetBidStatus(ctx context.Context, playerID, teamID uuid.UUID) (*BidStatus, error) {
	settings, err := a.store.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load auction settings: %w", err)
	}
	if _, err := a.store.GetActivePlayer(ctx, playerID); err != nil {
		return nil, err
	}
	available, err := a.GetAvailableBudget(ctx, teamID)
	if err != nil {
		return nil, err
	}
	bids, err := a.ListPlayerBids(ctx, playerID)
	if err != nil {
		return nil, err
	}
	placedCount, err := a.store.CountFollowUpBids(ctx, teamID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count team bids: %w", err)
	}

	status := &BidStatus{
		PlayerID:         playerID,
		TeamID:           teamID,
		Gate:             auction.Status(settings, a.clock.Now()),
		NextIsOpening:    len(bids) == 0,
		BidsPlaced:       placedCount,
		BidsRemaining:    max(settings.MaxBidsPerPlayer-placedCount, 0),
		IncrementPercent: settings.MinBidIncrementPercent,
		MaxContractYears: settings.MaxContractYears,
		AvailableBudget:  available,
	}
	if leader := LeadingDetail(bids); leader != nil {
		status.LeadingBid = leader
		status.TeamIsLeading = leader.TeamID == teamID
		minimum := DisplayMinimum(leader.TotalValue, settings.MinBidIncrementPercent)
		status.MinimumTotal = &minimum
	}
	return status, nil
}

func plainBids(details []models.BidDetail) []models.Bid {
	bids := make([]models.Bid, len(details))
	for i, d := range details {
		bids[i] = d.Bid
	}
	return bids
}
