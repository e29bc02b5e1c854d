package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/mcdev12/faauction/go/internal/player/db"
	"github.com/mcdev12/faauction/go/internal/sqlutil"
)

// Repository implements player data access
type Repository struct {
	queries *db.Queries
	sqlDB   *sql.DB
}

// NewRepository creates a new player repository
func NewRepository(queries *db.Queries, sqlDB *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		sqlDB:   sqlDB,
	}
}

// ListActivePlayers retrieves active players matching the filter
func (r *Repository) ListActivePlayers(ctx context.Context, filter ListFilter) ([]models.Player, error) {
	rows, err := r.queries.ListActivePlayers(ctx, db.ListActivePlayersParams{
		Position: int16(filter.Position),
		Search:   filter.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	players := make([]models.Player, len(rows))
	for i, row := range rows {
		players[i] = *dbPlayerToModel(row)
	}
	return players, nil
}

// GetActivePlayer retrieves an active player by ID
func (r *Repository) GetActivePlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	row, err := r.queries.GetActivePlayer(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return dbPlayerToModel(row), nil
}

// ListActivePoolBids retrieves every bid on an active player
func (r *Repository) ListActivePoolBids(ctx context.Context) ([]models.BidDetail, error) {
	rows, err := r.queries.ListActivePoolBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pool bids: %w", err)
	}

	bids := make([]models.BidDetail, len(rows))
	for i, row := range rows {
		amount, err := sqlutil.FromNumeric(row.AmountPerYear)
		if err != nil {
			return nil, err
		}
		total, err := sqlutil.FromNumeric(row.TotalValue)
		if err != nil {
			return nil, err
		}
		bids[i] = models.BidDetail{
			Bid: models.Bid{
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
			},
			TeamName:   row.TeamName,
			MemberName: row.MemberName,
		}
	}
	return bids, nil
}

// ClearActivePool deletes every active player and their bids in one transaction
func (r *Repository) ClearActivePool(ctx context.Context) (ClearResult, error) {
	var result ClearResult
	err := sqlutil.Run(ctx, r.sqlDB, func(tx *sql.Tx) *db.Queries {
		return r.queries.WithTx(tx)
	}, func(q *db.Queries) error {
		bids, err := q.DeleteActivePoolBids(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete bids: %w", err)
		}
		players, err := q.DeleteActivePlayers(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete players: %w", err)
		}
		result = ClearResult{PlayersDeleted: players, BidsDeleted: bids}
		return nil
	})
	return result, err
}

func dbPlayerToModel(row db.Player) *models.Player {
	return &models.Player{
		ID:           row.ID,
		ArchiveID:    sqlutil.FromNullUUID(row.ArchiveID),
		PlayerNumber: row.PlayerNumber,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Nickname:     sqlutil.FromSqlStringPtr(row.Nickname),
		Position:     models.Position(row.Position),
		BirthDay:     sqlutil.FromSqlInt16(row.BirthDay),
		BirthMonth:   sqlutil.FromSqlInt16(row.BirthMonth),
		BirthYear:    sqlutil.FromSqlInt16(row.BirthYear),
		CreatedAt:    row.CreatedAt,
	}
}
