package teams

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	teams   map[uuid.UUID]models.Team
	members map[uuid.UUID]models.Member
	bids    map[uuid.UUID]int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		teams:   map[uuid.UUID]models.Team{},
		members: map[uuid.UUID]models.Member{},
		bids:    map[uuid.UUID]int{},
	}
}

func (m *memoryRepo) CreateTeam(_ context.Context, req CreateTeamRequest) (*models.Team, error) {
	team := models.Team{ID: uuid.New(), Name: req.Name, Budget: req.Budget}
	m.teams[team.ID] = team
	return &team, nil
}

func (m *memoryRepo) GetTeam(_ context.Context, id uuid.UUID) (*models.Team, error) {
	team, ok := m.teams[id]
	if !ok {
		return nil, ErrTeamNotFound
	}
	return &team, nil
}

func (m *memoryRepo) ListTeams(context.Context) ([]models.Team, error) {
	var out []models.Team
	for _, t := range m.teams {
		out = append(out, t)
	}
	return out, nil
}

func (m *memoryRepo) UpdateTeam(_ context.Context, team models.Team) (*models.Team, error) {
	if _, ok := m.teams[team.ID]; !ok {
		return nil, ErrTeamNotFound
	}
	m.teams[team.ID] = team
	return &team, nil
}

func (m *memoryRepo) DeleteTeamWithoutBids(_ context.Context, id uuid.UUID) error {
	if m.bids[id] > 0 {
		return ErrTeamHasBids
	}
	delete(m.teams, id)
	for mid, mem := range m.members {
		if mem.TeamID != nil && *mem.TeamID == id {
			mem.TeamID = nil
			m.members[mid] = mem
		}
	}
	return nil
}

func (m *memoryRepo) CreateMember(_ context.Context, req CreateMemberRequest) (*models.Member, error) {
	mem := models.Member{ID: uuid.New(), Name: req.Name, Email: req.Email, TeamID: req.TeamID, IsAdmin: req.IsAdmin, IsActive: true}
	m.members[mem.ID] = mem
	return &mem, nil
}

func (m *memoryRepo) GetMember(_ context.Context, id uuid.UUID) (*models.Member, error) {
	mem, ok := m.members[id]
	if !ok {
		return nil, ErrMemberNotFound
	}
	return &mem, nil
}

func (m *memoryRepo) ListMembers(context.Context) ([]models.Member, error) {
	var out []models.Member
	for _, mem := range m.members {
		out = append(out, mem)
	}
	return out, nil
}

func (m *memoryRepo) AssignMember(_ context.Context, id uuid.UUID, req AssignMemberRequest) (*models.Member, error) {
	mem := m.members[id]
	mem.TeamID = req.TeamID
	mem.IsActive = req.IsActive
	m.members[id] = mem
	return &mem, nil
}

// fixedBudgets reports budget minus a fixed commitment per team.
type fixedBudgets struct {
	repo      *memoryRepo
	committed map[uuid.UUID]decimal.Decimal
	err       error
}

func (f *fixedBudgets) GetAvailableBudget(_ context.Context, teamID uuid.UUID) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	return f.repo.teams[teamID].Budget.Sub(f.committed[teamID]), nil
}

func newTestApp() (*App, *memoryRepo, *fixedBudgets) {
	repo := newMemoryRepo()
	budgets := &fixedBudgets{repo: repo, committed: map[uuid.UUID]decimal.Decimal{}}
	return NewApp(repo, budgets), repo, budgets
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApp_CreateTeam(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateTeamRequest
		wantErr string
	}{
		{name: "valid", req: CreateTeamRequest{Name: "  Aces ", Budget: d("100000000")}},
		{name: "zero budget", req: CreateTeamRequest{Name: "Bears", Budget: decimal.Zero}},
		{name: "missing name", req: CreateTeamRequest{Name: "   ", Budget: d("1")}, wantErr: "name is required"},
		{name: "negative budget", req: CreateTeamRequest{Name: "Cubs", Budget: d("-1")}, wantErr: "budget cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp()
			team, err := app.CreateTeam(context.Background(), tt.req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, team.Name, " ")
		})
	}
}

func TestApp_GetTeamSummary(t *testing.T) {
	app, _, budgets := newTestApp()
	ctx := context.Background()

	team, err := app.CreateTeam(ctx, CreateTeamRequest{Name: "Aces", Budget: d("10000000")})
	require.NoError(t, err)
	budgets.committed[team.ID] = d("2500000")

	summary, err := app.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.True(t, summary.Available.Equal(d("7500000")))
	assert.True(t, summary.Committed.Equal(d("2500000")))

	budgets.err = errors.New("db down")
	_, err = app.ListTeams(ctx)
	require.Error(t, err)
}

func TestApp_UpdateTeamBudget(t *testing.T) {
	app, _, budgets := newTestApp()
	ctx := context.Background()

	team, err := app.CreateTeam(ctx, CreateTeamRequest{Name: "Aces", Budget: d("10000000")})
	require.NoError(t, err)
	budgets.committed[team.ID] = d("4000000")

	tooLow := d("3999999.99")
	_, err = app.UpdateTeam(ctx, team.ID, UpdateTeamRequest{Budget: &tooLow})
	assert.ErrorIs(t, err, ErrBudgetBelowCommitments)

	exact := d("4000000")
	name := "Aces II"
	updated, err := app.UpdateTeam(ctx, team.ID, UpdateTeamRequest{Name: &name, Budget: &exact})
	require.NoError(t, err)
	assert.Equal(t, "Aces II", updated.Name)
	assert.True(t, updated.Budget.Equal(exact))

	blank := " "
	_, err = app.UpdateTeam(ctx, team.ID, UpdateTeamRequest{Name: &blank})
	assert.Error(t, err)

	_, err = app.UpdateTeam(ctx, uuid.New(), UpdateTeamRequest{Name: &name})
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestApp_DeleteTeam(t *testing.T) {
	app, repo, _ := newTestApp()
	ctx := context.Background()

	team, err := app.CreateTeam(ctx, CreateTeamRequest{Name: "Aces", Budget: d("1000")})
	require.NoError(t, err)
	member, err := app.CreateMember(ctx, CreateMemberRequest{Name: "Pat", Email: "Pat@Example.com", TeamID: &team.ID})
	require.NoError(t, err)
	assert.Equal(t, "pat@example.com", member.Email)

	repo.bids[team.ID] = 2
	assert.ErrorIs(t, app.DeleteTeam(ctx, team.ID), ErrTeamHasBids)

	repo.bids[team.ID] = 0
	require.NoError(t, app.DeleteTeam(ctx, team.ID))
	assert.Nil(t, repo.members[member.ID].TeamID)

	assert.ErrorIs(t, app.DeleteTeam(ctx, team.ID), ErrTeamNotFound)
}

func TestApp_Members(t *testing.T) {
	app, _, _ := newTestApp()
	ctx := context.Background()

	_, err := app.CreateMember(ctx, CreateMemberRequest{Name: "Sam", Email: "not-an-email"})
	assert.Error(t, err)

	missing := uuid.New()
	_, err = app.CreateMember(ctx, CreateMemberRequest{Name: "Sam", Email: "sam@example.com", TeamID: &missing})
	assert.ErrorIs(t, err, ErrTeamNotFound)

	team, err := app.CreateTeam(ctx, CreateTeamRequest{Name: "Aces", Budget: d("1000")})
	require.NoError(t, err)
	member, err := app.CreateMember(ctx, CreateMemberRequest{Name: "Sam", Email: "sam@example.com"})
	require.NoError(t, err)
	assert.Nil(t, member.TeamID)

	assigned, err := app.AssignMember(ctx, member.ID, AssignMemberRequest{TeamID: &team.ID, IsActive: true})
	require.NoError(t, err)
	require.NotNil(t, assigned.TeamID)
	assert.Equal(t, team.ID, *assigned.TeamID)

	_, err = app.AssignMember(ctx, uuid.New(), AssignMemberRequest{IsActive: true})
	assert.ErrorIs(t, err, ErrMemberNotFound)

	members, err := app.ListMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}
