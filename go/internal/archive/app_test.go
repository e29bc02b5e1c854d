package archive

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeRepo struct {
	archives map[uuid.UUID]models.Archive
	players  map[uuid.UUID][]models.Player
	bids     map[uuid.UUID][]ArchivedBid
	created  *CreateArchiveRequest
	pages    []Page
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		archives: map[uuid.UUID]models.Archive{},
		players:  map[uuid.UUID][]models.Player{},
		bids:     map[uuid.UUID][]ArchivedBid{},
	}
}

func (f *fakeRepo) CreateArchive(_ context.Context, req CreateArchiveRequest) (*models.Archive, error) {
	f.created = &req
	a := models.Archive{ID: uuid.New(), Name: req.Name, Description: req.Description, PlayerCount: 1}
	f.archives[a.ID] = a
	return &a, nil
}

func (f *fakeRepo) ListArchives(context.Context) ([]models.Archive, error) {
	var out []models.Archive
	for _, a := range f.archives {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) GetArchive(_ context.Context, id uuid.UUID) (*models.Archive, error) {
	a, ok := f.archives[id]
	if !ok {
		return nil, ErrArchiveNotFound
	}
	return &a, nil
}

func (f *fakeRepo) DeleteArchive(_ context.Context, id uuid.UUID) error {
	if _, ok := f.archives[id]; !ok {
		return ErrArchiveNotFound
	}
	delete(f.archives, id)
	return nil
}

func (f *fakeRepo) ListArchivePlayers(_ context.Context, id uuid.UUID, page Page) ([]models.Player, error) {
	f.pages = append(f.pages, page)
	return window(f.players[id], page), nil
}

func (f *fakeRepo) ListArchiveBids(_ context.Context, id uuid.UUID, page Page) ([]ArchivedBid, error) {
	return window(f.bids[id], page), nil
}

func window[T any](items []T, page Page) []T {
	if page.Offset >= len(items) {
		return nil
	}
	end := min(page.Offset+page.Limit, len(items))
	return items[page.Offset:end]
}

func TestApp_Create(t *testing.T) {
	repo := newFakeRepo()
	app := NewApp(repo)
	ctx := context.Background()

	_, err := app.Create(ctx, CreateArchiveRequest{Name: "   "})
	require.Error(t, err)
	assert.Nil(t, repo.created)

	blank := "  "
	archive, err := app.Create(ctx, CreateArchiveRequest{Name: " 2026 Offseason ", Description: &blank})
	require.NoError(t, err)
	assert.Equal(t, "2026 Offseason", archive.Name)
	assert.Nil(t, repo.created.Description)
}

func TestApp_ListPagesAreNormalized(t *testing.T) {
	repo := newFakeRepo()
	app := NewApp(repo)
	ctx := context.Background()
	a := models.Archive{ID: uuid.New(), Name: "2025"}
	repo.archives[a.ID] = a

	_, err := app.ListPlayers(ctx, a.ID, Page{})
	require.NoError(t, err)
	_, err = app.ListPlayers(ctx, a.ID, Page{Limit: 10_000, Offset: -4})
	require.NoError(t, err)

	assert.Equal(t, []Page{{Limit: DefaultPageSize}, {Limit: MaxPageSize}}, repo.pages)

	_, err = app.ListBids(ctx, uuid.New(), Page{})
	assert.ErrorIs(t, err, ErrArchiveNotFound)
}

func TestApp_Delete(t *testing.T) {
	repo := newFakeRepo()
	app := NewApp(repo)
	a := models.Archive{ID: uuid.New(), Name: "2025"}
	repo.archives[a.ID] = a

	require.NoError(t, app.Delete(context.Background(), a.ID))
	assert.ErrorIs(t, app.Delete(context.Background(), a.ID), ErrArchiveNotFound)
}

func TestApp_ExportXLSX(t *testing.T) {
	repo := newFakeRepo()
	app := NewApp(repo)

	won := models.Player{ID: uuid.New(), PlayerNumber: "7", FirstName: "Bo", LastName: "Bichette", Position: models.PositionShortstop}
	unsold := models.Player{ID: uuid.New(), PlayerNumber: "9", FirstName: "Al", LastName: "Kirk", Position: models.PositionCatcher}
	a := models.Archive{
		ID:   uuid.New(),
		Name: "2025",
		Results: []models.ArchiveResult{{
			PlayerID:      won.ID,
			PlayerName:    won.FullName(),
			TeamName:      "Aces",
			AmountPerYear: decimal.RequireFromString("1500000"),
			Years:         3,
			TotalValue:    decimal.RequireFromString("4500000"),
		}},
	}
	repo.archives[a.ID] = a

	// more players than one export page
	players := []models.Player{won, unsold}
	for i := 0; i < MaxPageSize; i++ {
		players = append(players, models.Player{ID: uuid.New(), PlayerNumber: "100", FirstName: "Depth", LastName: "Guy"})
	}
	repo.players[a.ID] = players
	repo.bids[a.ID] = []ArchivedBid{{
		BidDetail: models.BidDetail{
			Bid: models.Bid{
				PlayerID:      won.ID,
				AmountPerYear: decimal.RequireFromString("1500000"),
				Years:         3,
				TotalValue:    decimal.RequireFromString("4500000"),
				IsOpeningBid:  true,
				CreatedAt:     time.Date(2026, 1, 3, 9, 30, 0, 0, time.UTC),
			},
			TeamName:   "Aces",
			MemberName: "Pat",
		},
		PlayerName: won.FullName(),
	}}

	var buf bytes.Buffer
	require.NoError(t, app.ExportXLSX(context.Background(), a.ID, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{playersSheet, bidsSheet}, f.GetSheetList())

	rows, err := f.GetRows(playersSheet)
	require.NoError(t, err)
	require.Len(t, rows, len(players)+1)
	assert.Equal(t, "Winning Team", rows[0][3])
	assert.Equal(t, []string{"7", "Bo Bichette", "SS", "Aces", "1500000", "3", "4500000"}, rows[1])
	assert.Equal(t, []string{"9", "Al Kirk", "C"}, rows[2])

	bidRows, err := f.GetRows(bidsSheet)
	require.NoError(t, err)
	require.Len(t, bidRows, 2)
	assert.Equal(t, "Bo Bichette", bidRows[1][0])
	assert.Equal(t, "TRUE", bidRows[1][6])

	err = app.ExportXLSX(context.Background(), uuid.New(), &buf)
	assert.ErrorIs(t, err, ErrArchiveNotFound)
}
