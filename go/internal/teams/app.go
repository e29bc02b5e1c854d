package teams

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error)
	DeleteTeamWithoutBids(ctx context.Context, id uuid.UUID) error
	CreateMember(ctx context.Context, req CreateMemberRequest) (*models.Member, error)
	GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error)
	ListMembers(ctx context.Context) ([]models.Member, error)
	AssignMember(ctx context.Context, id uuid.UUID, req AssignMemberRequest) (*models.Member, error)
}

// BudgetReader reports a team's available budget.
type BudgetReader interface {
	GetAvailableBudget(ctx context.Context, teamID uuid.UUID) (decimal.Decimal, error)
}

// App handles teams business logic
type App struct {
	repo    TeamsRepository
	budgets BudgetReader
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, budgets BudgetReader) *App {
	return &App{
		repo:    repo,
		budgets: budgets,
	}
}

// CreateTeam creates a new team with validation
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := a.validateCreateTeamRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidRequest, err)
	}

	team, err := a.repo.CreateTeam(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().Str("team_id", team.ID.String()).Str("name", team.Name).Str("budget", team.Budget.StringFixed(2)).Msg("team created")
	return team, nil
}

// GetTeam returns a team with its budget position
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*TeamSummary, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.summarize(ctx, *team)
}

// ListTeams returns every team with its budget position
func (a *App) ListTeams(ctx context.Context) ([]TeamSummary, error) {
	teams, err := a.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]TeamSummary, 0, len(teams))
	for _, team := range teams {
		summary, err := a.summarize(ctx, team)
		if err != nil {
			return nil, err
		}
		out = append(out, *summary)
	}
	return out, nil
}

// UpdateTeam renames a team or changes its budget. A budget may not drop below what the
// team has already committed through leading bids.
func (a *App) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	if err := a.validateUpdateTeamRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidRequest, err)
	}

	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = strings.TrimSpace(*req.Name)
	}
	if req.Budget != nil {
		summary, err := a.summarize(ctx, *team)
		if err != nil {
			return nil, err
		}
		if req.Budget.LessThan(summary.Committed) {
			return nil, fmt.Errorf("%w: committed %s", ErrBudgetBelowCommitments, summary.Committed.StringFixed(2))
		}
		team.Budget = *req.Budget
	}

	updated, err := a.repo.UpdateTeam(ctx, *team)
	if err != nil {
		return nil, err
	}

	log.Info().Str("team_id", updated.ID.String()).Str("name", updated.Name).Str("budget", updated.Budget.StringFixed(2)).Msg("team updated")
	return updated, nil
}

// DeleteTeam deletes a team that has never bid
func (a *App) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return err
	}
	if err := a.repo.DeleteTeamWithoutBids(ctx, id); err != nil {
		return err
	}

	log.Info().Str("team_id", id.String()).Str("name", team.Name).Msg("team deleted")
	return nil
}

// CreateMember creates a member, optionally attached to a team
func (a *App) CreateMember(ctx context.Context, req CreateMemberRequest) (*models.Member, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := a.validateCreateMemberRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidRequest, err)
	}
	if req.TeamID != nil {
		if _, err := a.repo.GetTeam(ctx, *req.TeamID); err != nil {
			return nil, err
		}
	}

	member, err := a.repo.CreateMember(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().Str("member_id", member.ID.String()).Str("email", member.Email).Msg("member created")
	return member, nil
}

// ListMembers returns all members
func (a *App) ListMembers(ctx context.Context) ([]models.Member, error) {
	return a.repo.ListMembers(ctx)
}

// AssignMember moves a member to a team (or none) and sets whether they may act for it
func (a *App) AssignMember(ctx context.Context, id uuid.UUID, req AssignMemberRequest) (*models.Member, error) {
	if _, err := a.repo.GetMember(ctx, id); err != nil {
		return nil, err
	}
	if req.TeamID != nil {
		if _, err := a.repo.GetTeam(ctx, *req.TeamID); err != nil {
			return nil, err
		}
	}

	member, err := a.repo.AssignMember(ctx, id, req)
	if err != nil {
		return nil, err
	}

	log.Info().Str("member_id", id.String()).Bool("is_active", member.IsActive).Msg("member assignment updated")
	return member, nil
}

func (a *App) summarize(ctx context.Context, team models.Team) (*TeamSummary, error) {
	available, err := a.budgets.GetAvailableBudget(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get available budget: %w", err)
	}
	return &TeamSummary{
		Team:      team,
		Committed: team.Budget.Sub(available),
		Available: available,
	}, nil
}

func (a *App) validateCreateTeamRequest(req CreateTeamRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.Budget.IsNegative() {
		return fmt.Errorf("budget cannot be negative")
	}
	return nil
}

func (a *App) validateUpdateTeamRequest(req UpdateTeamRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if req.Budget != nil && req.Budget.IsNegative() {
		return fmt.Errorf("budget cannot be negative")
	}
	return nil
}

func (a *App) validateCreateMemberRequest(req CreateMemberRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("email is invalid")
	}
	return nil
}
