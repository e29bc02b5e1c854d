package player

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/bidding"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/rs/zerolog/log"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	ListActivePlayers(ctx context.Context, filter ListFilter) ([]models.Player, error)
	GetActivePlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListActivePoolBids(ctx context.Context) ([]models.BidDetail, error)
	ClearActivePool(ctx context.Context) (ClearResult, error)
}

// App handles the active free-agent pool
type App struct {
	repo PlayerRepository
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository) *App {
	return &App{repo: repo}
}

// ListActive returns the active pool with each player's leading bid
func (a *App) ListActive(ctx context.Context, filter ListFilter) ([]PoolEntry, error) {
	filter.Search = strings.TrimSpace(filter.Search)

	players, err := a.repo.ListActivePlayers(ctx, filter)
	if err != nil {
		return nil, err
	}
	bids, err := a.repo.ListActivePoolBids(ctx)
	if err != nil {
		return nil, err
	}

	byPlayer := make(map[uuid.UUID][]models.BidDetail)
	for _, b := range bids {
		byPlayer[b.PlayerID] = append(byPlayer[b.PlayerID], b)
	}

	entries := make([]PoolEntry, len(players))
	for i, p := range players {
		entries[i] = PoolEntry{
			Player:     p,
			LeadingBid: bidding.LeadingDetail(byPlayer[p.ID]),
			BidCount:   len(byPlayer[p.ID]),
		}
	}
	return entries, nil
}

// GetActive returns one active player
func (a *App) GetActive(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	return a.repo.GetActivePlayer(ctx, id)
}

// ClearActivePool removes the whole active pool along with its bids
func (a *App) ClearActivePool(ctx context.Context) (ClearResult, error) {
	result, err := a.repo.ClearActivePool(ctx)
	if err != nil {
		return ClearResult{}, err
	}

	log.Warn().
		Int64("players_deleted", result.PlayersDeleted).
		Int64("bids_deleted", result.BidsDeleted).
		Msg("active player pool cleared")
	return result, nil
}
