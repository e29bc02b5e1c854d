package bidding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/bidding/db"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/mcdev12/faauction/go/internal/settings"
	"github.com/mcdev12/faauction/go/internal/sqlutil"
)

// Repository implements Store on Postgres.
type Repository struct {
	queryStore
	sqlDB *sql.DB
}

// NewRepository creates a new bidding repository
func NewRepository(queries *db.Queries, sqlDB *sql.DB) *Repository {
	return &Repository{
		queryStore: queryStore{queries: queries},
		sqlDB:      sqlDB,
	}
}

// InTx runs fn in a read-committed transaction. Row locks taken through the TxStore are
// held until fn returns.
func (r *Repository) InTx(ctx context.Context, fn func(tx TxStore) error) error {
	return sqlutil.RunWithOptions(ctx, r.sqlDB, &sql.TxOptions{Isolation: sql.LevelReadCommitted},
		func(tx *sql.Tx) *db.Queries {
			return r.queries.WithTx(tx)
		},
		func(q *db.Queries) error {
			return fn(&queryStore{queries: q})
		},
	)
}

// queryStore adapts sqlc queries, bound to the pool or to a tx, to the engine's interfaces.
type queryStore struct {
	queries *db.Queries
}

func (s *queryStore) LoadSettings(ctx context.Context) (models.AuctionSettings, error) {
	rows, err := s.queries.ListSettings(ctx)
	if err != nil {
		return models.AuctionSettings{}, fmt.Errorf("failed to list settings: %w", err)
	}
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.SettingKey] = row.SettingValue
	}
	return settings.ParseSnapshot(values), nil
}

func (s *queryStore) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	row, err := s.queries.GetTeam(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "team", id, "failed to get team")
	}
	return dbTeamToModel(row)
}

func (s *queryStore) LockTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	row, err := s.queries.GetTeamForUpdate(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "team", id, "failed to lock team")
	}
	return dbTeamToModel(row)
}

func (s *queryStore) GetActivePlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	row, err := s.queries.GetActivePlayer(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "player", id, "failed to get player")
	}
	return dbPlayerToModel(row), nil
}

func (s *queryStore) LockActivePlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	row, err := s.queries.GetActivePlayerForUpdate(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "player", id, "failed to lock player")
	}
	return dbPlayerToModel(row), nil
}

func (s *queryStore) GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	row, err := s.queries.GetMember(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "member", id, "failed to get member")
	}
	return &models.Member{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		TeamID:    sqlutil.FromNullUUID(row.TeamID),
		IsAdmin:   row.IsAdmin,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (s *queryStore) ListPlayerBids(ctx context.Context, playerID uuid.UUID) ([]models.BidDetail, error) {
	rows, err := s.queries.ListPlayerBids(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list player bids: %w", err)
	}

	bids := make([]models.BidDetail, len(rows))
	for i, row := range rows {
		bid, err := dbBidToModel(db.Bid{
			ID:            row.ID,
			Seq:           row.Seq,
			PlayerID:      row.PlayerID,
			TeamID:        row.TeamID,
			MemberID:      row.MemberID,
			AmountPerYear: row.AmountPerYear,
			Years:         row.Years,
			TotalValue:    row.TotalValue,
			IsOpeningBid:  row.IsOpeningBid,
			CreatedAt:     row.CreatedAt,
		})
		if err != nil {
			return nil, err
		}
		bids[i] = models.BidDetail{Bid: *bid, TeamName: row.TeamName, MemberName: row.MemberName}
	}
	return bids, nil
}

func (s *queryStore) CountFollowUpBids(ctx context.Context, teamID, playerID uuid.UUID) (int, error) {
	count, err := s.queries.CountFollowUpBids(ctx, db.CountFollowUpBidsParams{
		TeamID:   teamID,
		PlayerID: playerID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count follow-up bids: %w", err)
	}
	return int(count), nil
}

func (s *queryStore) ListBidsContestedByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Bid, error) {
	rows, err := s.queries.ListBidsContestedByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contested bids: %w", err)
	}

	bids := make([]models.Bid, len(rows))
	for i, row := range rows {
		bid, err := dbBidToModel(row)
		if err != nil {
			return nil, err
		}
		bids[i] = *bid
	}
	return bids, nil
}

func (s *queryStore) InsertBid(ctx context.Context, bid models.Bid) (*models.Bid, error) {
	row, err := s.queries.InsertBid(ctx, db.InsertBidParams{
		ID:            bid.ID,
		PlayerID:      bid.PlayerID,
		TeamID:        bid.TeamID,
		MemberID:      bid.MemberID,
		AmountPerYear: sqlutil.ToNumeric(bid.AmountPerYear),
		Years:         int32(bid.Years),
		TotalValue:    sqlutil.ToNumeric(bid.TotalValue),
		IsOpeningBid:  bid.IsOpeningBid,
		CreatedAt:     bid.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert bid: %w", err)
	}
	return dbBidToModel(row)
}

func notFoundOr(err error, entity string, id uuid.UUID, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func dbTeamToModel(row db.Team) (*models.Team, error) {
	budget, err := sqlutil.FromNumeric(row.Budget)
	if err != nil {
		return nil, err
	}
	return &models.Team{
		ID:        row.ID,
		Name:      row.Name,
		Budget:    budget,
		CreatedAt: row.CreatedAt,
	}, nil
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
