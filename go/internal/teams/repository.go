package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/mcdev12/faauction/go/internal/sqlutil"
	"github.com/mcdev12/faauction/go/internal/teams/db"
)

// Repository implements team and member data access
type Repository struct {
	queries *db.Queries
	sqlDB   *sql.DB
}

// NewRepository creates a new teams repository
func NewRepository(queries *db.Queries, sqlDB *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		sqlDB:   sqlDB,
	}
}

// CreateTeam creates a new team
func (r *Repository) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	row, err := r.queries.CreateTeam(ctx, db.CreateTeamParams{
		ID:     uuid.New(),
		Name:   req.Name,
		Budget: sqlutil.ToNumeric(req.Budget),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return dbTeamToModel(row)
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	row, err := r.queries.GetTeam(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return dbTeamToModel(row)
}

// ListTeams retrieves all teams ordered by name
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	rows, err := r.queries.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]models.Team, len(rows))
	for i, row := range rows {
		team, err := dbTeamToModel(row)
		if err != nil {
			return nil, err
		}
		teams[i] = *team
	}
	return teams, nil
}

// UpdateTeam writes the full team record
func (r *Repository) UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	row, err := r.queries.UpdateTeam(ctx, db.UpdateTeamParams{
		ID:     team.ID,
		Name:   team.Name,
		Budget: sqlutil.ToNumeric(team.Budget),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return dbTeamToModel(row)
}

// DeleteTeamWithoutBids removes a team and detaches its members, refusing when the team
// has any bids.
func (r *Repository) DeleteTeamWithoutBids(ctx context.Context, id uuid.UUID) error {
	return sqlutil.Run(ctx, r.sqlDB, func(tx *sql.Tx) *db.Queries {
		return r.queries.WithTx(tx)
	}, func(q *db.Queries) error {
		count, err := q.CountTeamBids(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count team bids: %w", err)
		}
		if count > 0 {
			return ErrTeamHasBids
		}
		if err := q.DetachTeamMembers(ctx, uuid.NullUUID{UUID: id, Valid: true}); err != nil {
			return fmt.Errorf("failed to detach members: %w", err)
		}
		if err := q.DeleteTeam(ctx, id); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return nil
	})
}

// CreateMember creates a new member
func (r *Repository) CreateMember(ctx context.Context, req CreateMemberRequest) (*models.Member, error) {
	row, err := r.queries.CreateMember(ctx, db.CreateMemberParams{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		TeamID:  sqlutil.ToNullUUID(req.TeamID),
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return dbMemberToModel(row), nil
}

// GetMember retrieves a member by ID
func (r *Repository) GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	row, err := r.queries.GetMember(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return dbMemberToModel(row), nil
}

// ListMembers retrieves all members ordered by name
func (r *Repository) ListMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := r.queries.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	members := make([]models.Member, len(rows))
	for i, row := range rows {
		members[i] = *dbMemberToModel(row)
	}
	return members, nil
}

// AssignMember updates a member's team and active flag
func (r *Repository) AssignMember(ctx context.Context, id uuid.UUID, req AssignMemberRequest) (*models.Member, error) {
	row, err := r.queries.UpdateMemberAssignment(ctx, db.UpdateMemberAssignmentParams{
		ID:       id,
		TeamID:   sqlutil.ToNullUUID(req.TeamID),
		IsActive: req.IsActive,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to assign member: %w", err)
	}
	return dbMemberToModel(row), nil
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

func dbMemberToModel(row db.Member) *models.Member {
	return &models.Member{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		TeamID:    sqlutil.FromNullUUID(row.TeamID),
		IsAdmin:   row.IsAdmin,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}
