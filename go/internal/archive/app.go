package archive

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/rs/zerolog/log"
)

// ArchiveRepository defines what the app layer needs from the repository
type ArchiveRepository interface {
	CreateArchive(ctx context.Context, req CreateArchiveRequest) (*models.Archive, error)
	ListArchives(ctx context.Context) ([]models.Archive, error)
	GetArchive(ctx context.Context, id uuid.UUID) (*models.Archive, error)
	DeleteArchive(ctx context.Context, id uuid.UUID) error
	ListArchivePlayers(ctx context.Context, id uuid.UUID, page Page) ([]models.Player, error)
	ListArchiveBids(ctx context.Context, id uuid.UUID, page Page) ([]ArchivedBid, error)
}

// App handles season archives
type App struct {
	repo ArchiveRepository
}

// NewApp creates a new archive App
func NewApp(repo ArchiveRepository) *App {
	return &App{repo: repo}
}

// Create closes the current season: every active player and their bids move into a new
// archive and the active pool starts empty.
func (a *App) Create(ctx context.Context, req CreateArchiveRequest) (*models.Archive, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		req.Description = &desc
		if desc == "" {
			req.Description = nil
		}
	}
	if err := a.validateCreateArchiveRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidRequest, err)
	}

	archive, err := a.repo.CreateArchive(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("archive_id", archive.ID.String()).
		Str("name", archive.Name).
		Int("player_count", archive.PlayerCount).
		Int("bid_count", archive.BidCount).
		Msg("auction archived")
	return archive, nil
}

// List returns all archives, newest first
func (a *App) List(ctx context.Context) ([]models.Archive, error) {
	return a.repo.ListArchives(ctx)
}

// Get returns an archive with the winning bid per player
func (a *App) Get(ctx context.Context, id uuid.UUID) (*models.Archive, error) {
	return a.repo.GetArchive(ctx, id)
}

// ListPlayers returns one page of an archive's players
func (a *App) ListPlayers(ctx context.Context, id uuid.UUID, page Page) ([]models.Player, error) {
	if _, err := a.repo.GetArchive(ctx, id); err != nil {
		return nil, err
	}
	return a.repo.ListArchivePlayers(ctx, id, page.normalize())
}

// ListBids returns one page of an archive's bids
func (a *App) ListBids(ctx context.Context, id uuid.UUID, page Page) ([]ArchivedBid, error) {
	if _, err := a.repo.GetArchive(ctx, id); err != nil {
		return nil, err
	}
	return a.repo.ListArchiveBids(ctx, id, page.normalize())
}

// Delete removes an archive along with its players and bids
func (a *App) Delete(ctx context.Context, id uuid.UUID) error {
	if err := a.repo.DeleteArchive(ctx, id); err != nil {
		return err
	}

	log.Warn().Str("archive_id", id.String()).Msg("archive deleted")
	return nil
}

func (a *App) validateCreateArchiveRequest(req CreateArchiveRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(req.Name) > 200 {
		return fmt.Errorf("name must be at most 200 characters")
	}
	return nil
}
