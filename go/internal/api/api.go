// Package api serves the auction over JSON HTTP.
package api

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/archive"
	"github.com/mcdev12/faauction/go/internal/auction"
	"github.com/mcdev12/faauction/go/internal/bidadmin"
	"github.com/mcdev12/faauction/go/internal/bidding"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/mcdev12/faauction/go/internal/player"
	"github.com/mcdev12/faauction/go/internal/settings"
	"github.com/mcdev12/faauction/go/internal/teams"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// BiddingApp defines what the API needs from the bidding engine
type BiddingApp interface {
	PlaceBid(ctx context.Context, req bidding.PlaceBidRequest) (*models.Bid, error)
	GetAvailableBudget(ctx context.Context, teamID uuid.UUID) (decimal.Decimal, error)
	GetLeadingBid(ctx context.Context, playerID uuid.UUID) (*models.BidDetail, error)
	ListPlayerBids(ctx context.Context, playerID uuid.UUID) ([]models.BidDetail, error)
	AuctionStatus(ctx context.Context) (auction.GateStatus, error)
	GetBidStatus(ctx context.Context, playerID, teamID uuid.UUID) (*bidding.BidStatus, error)
}

type PlayersApp interface {
	ListActive(ctx context.Context, filter player.ListFilter) ([]player.PoolEntry, error)
	GetActive(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ClearActivePool(ctx context.Context) (player.ClearResult, error)
}

type TeamsApp interface {
	CreateTeam(ctx context.Context, req teams.CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*teams.TeamSummary, error)
	ListTeams(ctx context.Context) ([]teams.TeamSummary, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req teams.UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	CreateMember(ctx context.Context, req teams.CreateMemberRequest) (*models.Member, error)
	ListMembers(ctx context.Context) ([]models.Member, error)
	AssignMember(ctx context.Context, id uuid.UUID, req teams.AssignMemberRequest) (*models.Member, error)
}

type ArchivesApp interface {
	Create(ctx context.Context, req archive.CreateArchiveRequest) (*models.Archive, error)
	List(ctx context.Context) ([]models.Archive, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Archive, error)
	ListPlayers(ctx context.Context, id uuid.UUID, page archive.Page) ([]models.Player, error)
	ListBids(ctx context.Context, id uuid.UUID, page archive.Page) ([]archive.ArchivedBid, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExportXLSX(ctx context.Context, id uuid.UUID, w io.Writer) error
}

type SettingsApp interface {
	Snapshot(ctx context.Context) (models.AuctionSettings, error)
	UpdateAuctionSettings(ctx context.Context, req settings.UpdateAuctionSettingsRequest) (models.AuctionSettings, error)
	ToggleAuction(ctx context.Context) (bool, error)
	Set(ctx context.Context, key, value string) error
}

type BidAdminApp interface {
	EditBid(ctx context.Context, id uuid.UUID, req bidadmin.EditBidRequest) (*models.Bid, error)
	DeleteBid(ctx context.Context, id uuid.UUID) error
}

// Apps groups the application layer the handlers delegate to.
type Apps struct {
	Bidding  BiddingApp
	Players  PlayersApp
	Teams    TeamsApp
	Archives ArchivesApp
	Settings SettingsApp
	BidAdmin BidAdminApp
}

type Config struct {
	// AdminToken guards /api/admin. An empty token disables the admin routes.
	AdminToken string
	// BidRate and BidBurst limit bid submissions per member.
	BidRate  rate.Limit
	BidBurst int
}

func DefaultConfig() Config {
	return Config{
		BidRate:  rate.Limit(2),
		BidBurst: 5,
	}
}

// Handler holds the HTTP handlers.
type Handler struct {
	apps       Apps
	config     Config
	bidLimiter *KeyedRateLimiter
}

func NewHandler(apps Apps, config Config) *Handler {
	return &Handler{
		apps:       apps,
		config:     config,
		bidLimiter: NewKeyedRateLimiter(config.BidRate, config.BidBurst),
	}
}
