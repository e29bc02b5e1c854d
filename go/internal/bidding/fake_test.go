package bidding

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/mcdev12/faauction/go/internal/settings"
)

// memoryData is the unsynchronized state shared by memoryStore and memoryTx.
type memoryData struct {
	settings map[string]string
	teams    map[uuid.UUID]models.Team
	players  map[uuid.UUID]models.Player
	members  map[uuid.UUID]models.Member
	bids     []models.Bid
	seq      int64

	settingsErr error
	insertErr   error
}

func (d *memoryData) loadSettings() (models.AuctionSettings, error) {
	if d.settingsErr != nil {
		return models.AuctionSettings{}, d.settingsErr
	}
	return settings.ParseSnapshot(d.settings), nil
}

func (d *memoryData) team(id uuid.UUID) (*models.Team, error) {
	t, ok := d.teams[id]
	if !ok {
		return nil, &NotFoundError{Entity: "team", ID: id}
	}
	return &t, nil
}

func (d *memoryData) activePlayer(id uuid.UUID) (*models.Player, error) {
	p, ok := d.players[id]
	if !ok || !p.IsActive() {
		return nil, &NotFoundError{Entity: "player", ID: id}
	}
	return &p, nil
}

func (d *memoryData) playerBids(playerID uuid.UUID) []models.BidDetail {
	var out []models.BidDetail
	for _, b := range d.bids {
		if b.PlayerID == playerID {
			out = append(out, models.BidDetail{
				Bid:        b,
				TeamName:   d.teams[b.TeamID].Name,
				MemberName: d.members[b.MemberID].Name,
			})
		}
	}
	return out
}

func (d *memoryData) countFollowUps(teamID, playerID uuid.UUID) int {
	n := 0
	for _, b := range d.bids {
		if b.TeamID == teamID && b.PlayerID == playerID && !b.IsOpeningBid {
			n++
		}
	}
	return n
}

func (d *memoryData) contestedBy(teamID uuid.UUID) []models.Bid {
	touched := make(map[uuid.UUID]bool)
	for _, b := range d.bids {
		if b.TeamID == teamID && d.players[b.PlayerID].IsActive() {
			touched[b.PlayerID] = true
		}
	}
	var out []models.Bid
	for _, b := range d.bids {
		if touched[b.PlayerID] {
			out = append(out, b)
		}
	}
	return out
}

// memoryStore is an in-memory Store. InTx holds the store mutex for the whole callback,
// which stands in for the row locks the Postgres repository takes.
type memoryStore struct {
	mu   sync.Mutex
	data *memoryData
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: &memoryData{
		settings: map[string]string{},
		teams:    map[uuid.UUID]models.Team{},
		players:  map[uuid.UUID]models.Player{},
		members:  map[uuid.UUID]models.Member{},
	}}
}

func (m *memoryStore) InTx(_ context.Context, fn func(tx TxStore) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := len(m.data.bids)
	seq := m.data.seq
	if err := fn(&memoryTx{data: m.data}); err != nil {
		m.data.bids = m.data.bids[:before]
		m.data.seq = seq
		return err
	}
	return nil
}

func (m *memoryStore) LoadSettings(context.Context) (models.AuctionSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.loadSettings()
}

func (m *memoryStore) GetTeam(_ context.Context, id uuid.UUID) (*models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.team(id)
}

func (m *memoryStore) GetActivePlayer(_ context.Context, id uuid.UUID) (*models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.activePlayer(id)
}

func (m *memoryStore) ListPlayerBids(_ context.Context, playerID uuid.UUID) ([]models.BidDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.playerBids(playerID), nil
}

func (m *memoryStore) CountFollowUpBids(_ context.Context, teamID, playerID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.countFollowUps(teamID, playerID), nil
}

func (m *memoryStore) ListBidsContestedByTeam(_ context.Context, teamID uuid.UUID) ([]models.Bid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.contestedBy(teamID), nil
}

func (m *memoryStore) bidCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data.bids)
}

type memoryTx struct {
	data *memoryData
}

func (t *memoryTx) LoadSettings(context.Context) (models.AuctionSettings, error) {
	return t.data.loadSettings()
}

func (t *memoryTx) GetTeam(_ context.Context, id uuid.UUID) (*models.Team, error) {
	return t.data.team(id)
}

func (t *memoryTx) LockTeam(_ context.Context, id uuid.UUID) (*models.Team, error) {
	return t.data.team(id)
}

func (t *memoryTx) GetActivePlayer(_ context.Context, id uuid.UUID) (*models.Player, error) {
	return t.data.activePlayer(id)
}

func (t *memoryTx) LockActivePlayer(_ context.Context, id uuid.UUID) (*models.Player, error) {
	return t.data.activePlayer(id)
}

func (t *memoryTx) GetMember(_ context.Context, id uuid.UUID) (*models.Member, error) {
	mem, ok := t.data.members[id]
	if !ok {
		return nil, &NotFoundError{Entity: "member", ID: id}
	}
	return &mem, nil
}

func (t *memoryTx) ListPlayerBids(_ context.Context, playerID uuid.UUID) ([]models.BidDetail, error) {
	return t.data.playerBids(playerID), nil
}

func (t *memoryTx) CountFollowUpBids(_ context.Context, teamID, playerID uuid.UUID) (int, error) {
	return t.data.countFollowUps(teamID, playerID), nil
}

func (t *memoryTx) ListBidsContestedByTeam(_ context.Context, teamID uuid.UUID) ([]models.Bid, error) {
	return t.data.contestedBy(teamID), nil
}

func (t *memoryTx) InsertBid(_ context.Context, bid models.Bid) (*models.Bid, error) {
	if t.data.insertErr != nil {
		return nil, t.data.insertErr
	}
	t.data.seq++
	bid.Seq = t.data.seq
	t.data.bids = append(t.data.bids, bid)
	return &bid, nil
}
