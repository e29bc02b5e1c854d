package api

import (
	"context"
	"errors"
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
)

var errNotStubbed = errors.New("not stubbed")

type fakeBidding struct {
	PlaceBidFn           func(ctx context.Context, req bidding.PlaceBidRequest) (*models.Bid, error)
	GetAvailableBudgetFn func(ctx context.Context, teamID uuid.UUID) (decimal.Decimal, error)
	GetLeadingBidFn      func(ctx context.Context, playerID uuid.UUID) (*models.BidDetail, error)
	ListPlayerBidsFn     func(ctx context.Context, playerID uuid.UUID) ([]models.BidDetail, error)
	AuctionStatusFn      func(ctx context.Context) (auction.GateStatus, error)
	GetBidStatusFn       func(ctx context.Context, playerID, teamID uuid.UUID) (*bidding.BidStatus, error)
}

func (f *fakeBidding) PlaceBid(ctx context.Context, req bidding.PlaceBidRequest) (*models.Bid, error) {
	if f.PlaceBidFn == nil {
		return nil, errNotStubbed
	}
	return f.PlaceBidFn(ctx, req)
}

func (f *fakeBidding) GetAvailableBudget(ctx context.Context, teamID uuid.UUID) (decimal.Decimal, error) {
	if f.GetAvailableBudgetFn == nil {
		return decimal.Zero, errNotStubbed
	}
	return f.GetAvailableBudgetFn(ctx, teamID)
}

func (f *fakeBidding) GetLeadingBid(ctx context.Context, playerID uuid.UUID) (*models.BidDetail, error) {
	if f.GetLeadingBidFn == nil {
		return nil, errNotStubbed
	}
	return f.GetLeadingBidFn(ctx, playerID)
}

func (f *fakeBidding) ListPlayerBids(ctx context.Context, playerID uuid.UUID) ([]models.BidDetail, error) {
	if f.ListPlayerBidsFn == nil {
		return nil, errNotStubbed
	}
	return f.ListPlayerBidsFn(ctx, playerID)
}

func (f *fakeBidding) AuctionStatus(ctx context.Context) (auction.GateStatus, error) {
	if f.AuctionStatusFn == nil {
		return auction.GateStatus{}, errNotStubbed
	}
	return f.AuctionStatusFn(ctx)
}

func (f *fakeBidding) GetBidStatus(ctx context.Context, playerID, teamID uuid.UUID) (*bidding.BidStatus, error) {
	if f.GetBidStatusFn == nil {
		return nil, errNotStubbed
	}
	return f.GetBidStatusFn(ctx, playerID, teamID)
}

type fakePlayers struct {
	ListActiveFn      func(ctx context.Context, filter player.ListFilter) ([]player.PoolEntry, error)
	GetActiveFn       func(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ClearActivePoolFn func(ctx context.Context) (player.ClearResult, error)
}

func (f *fakePlayers) ListActive(ctx context.Context, filter player.ListFilter) ([]player.PoolEntry, error) {
	if f.ListActiveFn == nil {
		return nil, errNotStubbed
	}
	return f.ListActiveFn(ctx, filter)
}

func (f *fakePlayers) GetActive(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	if f.GetActiveFn == nil {
		return &models.Player{ID: id}, nil
	}
	return f.GetActiveFn(ctx, id)
}

func (f *fakePlayers) ClearActivePool(ctx context.Context) (player.ClearResult, error) {
	if f.ClearActivePoolFn == nil {
		return player.ClearResult{}, errNotStubbed
	}
	return f.ClearActivePoolFn(ctx)
}

type fakeTeams struct {
	CreateTeamFn   func(ctx context.Context, req teams.CreateTeamRequest) (*models.Team, error)
	GetTeamFn      func(ctx context.Context, id uuid.UUID) (*teams.TeamSummary, error)
	ListTeamsFn    func(ctx context.Context) ([]teams.TeamSummary, error)
	UpdateTeamFn   func(ctx context.Context, id uuid.UUID, req teams.UpdateTeamRequest) (*models.Team, error)
	DeleteTeamFn   func(ctx context.Context, id uuid.UUID) error
	CreateMemberFn func(ctx context.Context, req teams.CreateMemberRequest) (*models.Member, error)
	ListMembersFn  func(ctx context.Context) ([]models.Member, error)
	AssignMemberFn func(ctx context.Context, id uuid.UUID, req teams.AssignMemberRequest) (*models.Member, error)
}

func (f *fakeTeams) CreateTeam(ctx context.Context, req teams.CreateTeamRequest) (*models.Team, error) {
	if f.CreateTeamFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateTeamFn(ctx, req)
}

func (f *fakeTeams) GetTeam(ctx context.Context, id uuid.UUID) (*teams.TeamSummary, error) {
	if f.GetTeamFn == nil {
		return nil, errNotStubbed
	}
	return f.GetTeamFn(ctx, id)
}

func (f *fakeTeams) ListTeams(ctx context.Context) ([]teams.TeamSummary, error) {
	if f.ListTeamsFn == nil {
		return nil, errNotStubbed
	}
	return f.ListTeamsFn(ctx)
}

func (f *fakeTeams) UpdateTeam(ctx context.Context, id uuid.UUID, req teams.UpdateTeamRequest) (*models.Team, error) {
	if f.UpdateTeamFn == nil {
		return nil, errNotStubbed
	}
	return f.UpdateTeamFn(ctx, id, req)
}

func (f *fakeTeams) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if f.DeleteTeamFn == nil {
		return errNotStubbed
	}
	return f.DeleteTeamFn(ctx, id)
}

func (f *fakeTeams) CreateMember(ctx context.Context, req teams.CreateMemberRequest) (*models.Member, error) {
	if f.CreateMemberFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateMemberFn(ctx, req)
}

func (f *fakeTeams) ListMembers(ctx context.Context) ([]models.Member, error) {
	if f.ListMembersFn == nil {
		return nil, errNotStubbed
	}
	return f.ListMembersFn(ctx)
}

func (f *fakeTeams) AssignMember(ctx context.Context, id uuid.UUID, req teams.AssignMemberRequest) (*models.Member, error) {
	if f.AssignMemberFn == nil {
		return nil, errNotStubbed
	}
	return f.AssignMemberFn(ctx, id, req)
}

type fakeArchives struct {
	CreateFn      func(ctx context.Context, req archive.CreateArchiveRequest) (*models.Archive, error)
	ListFn        func(ctx context.Context) ([]models.Archive, error)
	GetFn         func(ctx context.Context, id uuid.UUID) (*models.Archive, error)
	ListPlayersFn func(ctx context.Context, id uuid.UUID, page archive.Page) ([]models.Player, error)
	ListBidsFn    func(ctx context.Context, id uuid.UUID, page archive.Page) ([]archive.ArchivedBid, error)
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
	ExportXLSXFn  func(ctx context.Context, id uuid.UUID, w io.Writer) error
}

func (f *fakeArchives) Create(ctx context.Context, req archive.CreateArchiveRequest) (*models.Archive, error) {
	if f.CreateFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateFn(ctx, req)
}

func (f *fakeArchives) List(ctx context.Context) ([]models.Archive, error) {
	if f.ListFn == nil {
		return nil, errNotStubbed
	}
	return f.ListFn(ctx)
}

func (f *fakeArchives) Get(ctx context.Context, id uuid.UUID) (*models.Archive, error) {
	if f.GetFn == nil {
		return nil, errNotStubbed
	}
	return f.GetFn(ctx, id)
}

func (f *fakeArchives) ListPlayers(ctx context.Context, id uuid.UUID, page archive.Page) ([]models.Player, error) {
	if f.ListPlayersFn == nil {
		return nil, errNotStubbed
	}
	return f.ListPlayersFn(ctx, id, page)
}

func (f *fakeArchives) ListBids(ctx context.Context, id uuid.UUID, page archive.Page) ([]archive.ArchivedBid, error) {
	if f.ListBidsFn == nil {
		return nil, errNotStubbed
	}
	return f.ListBidsFn(ctx, id, page)
}

func (f *fakeArchives) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn == nil {
		return errNotStubbed
	}
	return f.DeleteFn(ctx, id)
}

func (f *fakeArchives) ExportXLSX(ctx context.Context, id uuid.UUID, w io.Writer) error {
	if f.ExportXLSXFn == nil {
		return errNotStubbed
	}
	return f.ExportXLSXFn(ctx, id, w)
}

type fakeSettings struct {
	SnapshotFn              func(ctx context.Context) (models.AuctionSettings, error)
	UpdateAuctionSettingsFn func(ctx context.Context, req settings.UpdateAuctionSettingsRequest) (models.AuctionSettings, error)
	ToggleAuctionFn         func(ctx context.Context) (bool, error)
	SetFn                   func(ctx context.Context, key, value string) error
}

func (f *fakeSettings) Snapshot(ctx context.Context) (models.AuctionSettings, error) {
	if f.SnapshotFn == nil {
		return models.AuctionSettings{}, errNotStubbed
	}
	return f.SnapshotFn(ctx)
}

func (f *fakeSettings) UpdateAuctionSettings(ctx context.Context, req settings.UpdateAuctionSettingsRequest) (models.AuctionSettings, error) {
	if f.UpdateAuctionSettingsFn == nil {
		return models.AuctionSettings{}, errNotStubbed
	}
	return f.UpdateAuctionSettingsFn(ctx, req)
}

func (f *fakeSettings) ToggleAuction(ctx context.Context) (bool, error) {
	if f.ToggleAuctionFn == nil {
		return false, errNotStubbed
	}
	return f.ToggleAuctionFn(ctx)
}

func (f *fakeSettings) Set(ctx context.Context, key, value string) error {
	if f.SetFn == nil {
		return errNotStubbed
	}
	return f.SetFn(ctx, key, value)
}

type fakeBidAdmin struct {
	EditBidFn   func(ctx context.Context, id uuid.UUID, req bidadmin.EditBidRequest) (*models.Bid, error)
	DeleteBidFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeBidAdmin) EditBid(ctx context.Context, id uuid.UUID, req bidadmin.EditBidRequest) (*models.Bid, error) {
	if f.EditBidFn == nil {
		return nil, errNotStubbed
	}
	return f.EditBidFn(ctx, id, req)
}

func (f *fakeBidAdmin) DeleteBid(ctx context.Context, id uuid.UUID) error {
	if f.DeleteBidFn == nil {
		return errNotStubbed
	}
	return f.DeleteBidFn(ctx, id)
}

type fakes struct {
	bidding  *fakeBidding
	players  *fakePlayers
	teams    *fakeTeams
	archives *fakeArchives
	settings *fakeSettings
	bidAdmin *fakeBidAdmin
}

func newFakes() *fakes {
	return &fakes{
		bidding:  &fakeBidding{},
		players:  &fakePlayers{},
		teams:    &fakeTeams{},
		archives: &fakeArchives{},
		settings: &fakeSettings{},
		bidAdmin: &fakeBidAdmin{},
	}
}

func (f *fakes) apps() Apps {
	return Apps{
		Bidding:  f.bidding,
		Players:  f.players,
		Teams:    f.teams,
		Archives: f.archives,
		Settings: f.settings,
		BidAdmin: f.bidAdmin,
	}
}
