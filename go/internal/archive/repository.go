package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/archive/db"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/mcdev12/faauction/go/internal/sqlutil"
	"github.com/sqlc-dev/pqtype"
)

// Repository implements archive data access
type Repository struct {
	queries *db.Queries
	sqlDB   *sql.DB
}

// NewRepository creates a new archive repository
func NewRepository(queries *db.Queries, sqlDB *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		sqlDB:   sqlDB,
	}
}

// CreateArchive moves the whole active pool into a new archive. Reassigning the players
// takes their row locks, so bids placed concurrently either land before the summary is
// computed or fail to find an active player.
func (r *Repository) CreateArchive(ctx context.Context, req CreateArchiveRequest) (*models.Archive, error) {
	var archive *models.Archive
	err := sqlutil.Run(ctx, r.sqlDB, func(tx *sql.Tx) *db.Queries {
		return r.queries.WithTx(tx)
	}, func(q *db.Queries) error {
		id := uuid.New()
		if _, err := q.CreateArchive(ctx, db.CreateArchiveParams{
			ID:          id,
			Name:        req.Name,
			Description: sqlutil.ToSqlString(req.Description),
			CreatedBy:   sqlutil.ToNullUUID(req.CreatedBy),
		}); err != nil {
			return fmt.Errorf("failed to create archive: %w", err)
		}

		archiveID := uuid.NullUUID{UUID: id, Valid: true}
		players, err := q.AssignActivePlayersToArchive(ctx, archiveID)
		if err != nil {
			return fmt.Errorf("failed to archive players: %w", err)
		}
		if players == 0 {
			return ErrNothingToArchive
		}

		bids, err := q.CountArchiveBids(ctx, archiveID)
		if err != nil {
			return fmt.Errorf("failed to count archived bids: %w", err)
		}
		rows, err := q.ListArchiveResultBids(ctx, archiveID)
		if err != nil {
			return fmt.Errorf("failed to list archived bids: %w", err)
		}
		resultBids, err := dbResultBidsToModel(rows)
		if err != nil {
			return err
		}
		summary, err := json.Marshal(buildResults(resultBids))
		if err != nil {
			return fmt.Errorf("failed to marshal archive summary: %w", err)
		}

		row, err := q.FinalizeArchive(ctx, db.FinalizeArchiveParams{
			ID:          id,
			PlayerCount: int32(players),
			BidCount:    int32(bids),
			Summary:     pqtype.NullRawMessage{RawMessage: summary, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("failed to finalize archive: %w", err)
		}
		archive, err = dbArchiveToModel(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return archive, nil
}

// ListArchives retrieves all archives, newest first, without their results
func (r *Repository) ListArchives(ctx context.Context) ([]models.Archive, error) {
	rows, err := r.queries.ListArchives(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list archives: %w", err)
	}

	archives := make([]models.Archive, len(rows))
	for i, row := range rows {
		row.Summary = pqtype.NullRawMessage{}
		a, err := dbArchiveToModel(row)
		if err != nil {
			return nil, err
		}
		archives[i] = *a
	}
	return archives, nil
}

// GetArchive retrieves an archive with its results
func (r *Repository) GetArchive(ctx context.Context, id uuid.UUID) (*models.Archive, error) {
	row, err := r.queries.GetArchive(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArchiveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get archive: %w", err)
	}
	return dbArchiveToModel(row)
}

// DeleteArchive removes an archive; its players and their bids cascade
func (r *Repository) DeleteArchive(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteArchive(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete archive: %w", err)
	}
	if n == 0 {
		return ErrArchiveNotFound
	}
	return nil
}

// ListArchivePlayers retrieves one page of an archive's players
func (r *Repository) ListArchivePlayers(ctx context.Context, id uuid.UUID, page Page) ([]models.Player, error) {
	rows, err := r.queries.ListArchivePlayers(ctx, db.ListArchivePlayersParams{
		ArchiveID: uuid.NullUUID{UUID: id, Valid: true},
		Limit:     int32(page.Limit),
		Offset:    int32(page.Offset),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list archive players: %w", err)
	}

	players := make([]models.Player, len(rows))
	for i, row := range rows {
		players[i] = models.Player{
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
	return players, nil
}

// ListArchiveBids retrieves one page of an archive's bids, grouped by player in standing order
func (r *Repository) ListArchiveBids(ctx context.Context, id uuid.UUID, page Page) ([]ArchivedBid, error) {
	rows, err := r.queries.ListArchiveBids(ctx, db.ListArchiveBidsParams{
		ArchiveID: uuid.NullUUID{UUID: id, Valid: true},
		Limit:     int32(page.Limit),
		Offset:    int32(page.Offset),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list archive bids: %w", err)
	}

	bids := make([]ArchivedBid, len(rows))
	for i, row := range rows {
		amount, err := sqlutil.FromNumeric(row.AmountPerYear)
		if err != nil {
			return nil, err
		}
		total, err := sqlutil.FromNumeric(row.TotalValue)
		if err != nil {
			return nil, err
		}
		bids[i] = ArchivedBid{
			BidDetail: models.BidDetail{
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
			},
			PlayerName: row.FirstName + " " + row.LastName,
		}
	}
	return bids, nil
}

func dbResultBidsToModel(rows []db.ListArchiveResultBidsRow) ([]resultBid, error) {
	out := make([]resultBid, len(rows))
	for i, row := range rows {
		amount, err := sqlutil.FromNumeric(row.AmountPerYear)
		if err != nil {
			return nil, err
		}
		total, err := sqlutil.FromNumeric(row.TotalValue)
		if err != nil {
			return nil, err
		}
		out[i] = resultBid{
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
			PlayerName: row.FirstName + " " + row.LastName,
			Position:   models.Position(row.Position),
			TeamName:   row.TeamName,
		}
	}
	return out, nil
}

func dbArchiveToModel(row db.Archive) (*models.Archive, error) {
	a := &models.Archive{
		ID:          row.ID,
		Name:        row.Name,
		Description: sqlutil.FromSqlStringPtr(row.Description),
		PlayerCount: int(row.PlayerCount),
		BidCount:    int(row.BidCount),
		CreatedBy:   sqlutil.FromNullUUID(row.CreatedBy),
		CreatedAt:   row.CreatedAt,
	}
	if row.Summary.Valid {
		if err := json.Unmarshal(row.Summary.RawMessage, &a.Results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal archive summary: %w", err)
		}
	}
	return a, nil
}
