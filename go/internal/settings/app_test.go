package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	values  map[string]string
	listErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{values: map[string]string{}}
}

func (m *memoryRepo) GetSetting(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryRepo) ListSettings(_ context.Context) (map[string]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *memoryRepo) SetSettings(_ context.Context, values map[string]string) error {
	for k, v := range values {
		m.values[k] = v
	}
	return nil
}

func TestUpdateAuctionSettings_Clamps(t *testing.T) {
	repo := newMemoryRepo()
	app := NewApp(repo)

	pct := decimal.NewFromInt(0)
	years := 40
	bids := 0
	got, err := app.UpdateAuctionSettings(context.Background(), UpdateAuctionSettingsRequest{
		MinBidIncrementPercent: &pct,
		MaxContractYears:       &years,
		MaxBidsPerPlayer:       &bids,
	})
	require.NoError(t, err)

	assert.Equal(t, "1", repo.values[models.SettingMinBidIncrementPercent])
	assert.Equal(t, "15", repo.values[models.SettingMaxContractYears])
	assert.Equal(t, "1", repo.values[models.SettingMaxBidsPerPlayer])
	assert.Equal(t, 15, got.MaxContractYears)
	assert.Equal(t, 1, got.MaxBidsPerPlayer)
}

func TestUpdateAuctionSettings_Deadline(t *testing.T) {
	repo := newMemoryRepo()
	app := NewApp(repo)

	mode := models.DeadlineTypeDatetime
	deadline := time.Date(2026, 4, 2, 12, 0, 0, 0, time.FixedZone("EDT", -4*3600))
	got, err := app.UpdateAuctionSettings(context.Background(), UpdateAuctionSettingsRequest{
		DeadlineType: &mode,
		Deadline:     &deadline,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-04-02T16:00:00Z", repo.values[models.SettingDeadlineDatetime])
	require.NotNil(t, got.Deadline)
	assert.True(t, got.Deadline.Equal(deadline))
}

func TestUpdateAuctionSettings_RejectsUnknownMode(t *testing.T) {
	app := NewApp(newMemoryRepo())

	mode := models.DeadlineType("hourly")
	_, err := app.UpdateAuctionSettings(context.Background(), UpdateAuctionSettingsRequest{DeadlineType: &mode})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadline_type")
}

func TestToggleAuction(t *testing.T) {
	repo := newMemoryRepo()
	app := NewApp(repo)
	ctx := context.Background()

	closed, err := app.ToggleAuction(ctx)
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Equal(t, "1", repo.values[models.SettingAuctionClosed])

	closed, err = app.ToggleAuction(ctx)
	require.NoError(t, err)
	assert.False(t, closed)
	assert.Equal(t, "0", repo.values[models.SettingAuctionClosed])
}

func TestSet_NormalizesAuctionKeys(t *testing.T) {
	tests := []struct {
		key    string
		value  string
		stored string
	}{
		{key: models.SettingAuctionClosed, value: "true", stored: "1"},
		{key: models.SettingAuctionClosed, value: " FALSE ", stored: "0"},
		{key: models.SettingMaxContractYears, value: " 7", stored: "7"},
		{key: models.SettingMinBidIncrementPercent, value: "2.5", stored: "2.5"},
		{key: models.SettingDeadlineType, value: "datetime", stored: "datetime"},
		{key: "site_name", value: "Winter League ", stored: "Winter League"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			repo := newMemoryRepo()
			require.NoError(t, NewApp(repo).Set(context.Background(), tt.key, tt.value))
			assert.Equal(t, tt.stored, repo.values[tt.key])
		})
	}
}

func TestSet_ClosedFlagClosesAuction(t *testing.T) {
	app := NewApp(newMemoryRepo())
	ctx := context.Background()

	require.NoError(t, app.Set(ctx, models.SettingAuctionClosed, "true"))
	got, err := app.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, got.AuctionClosed)

	closed, err := app.ToggleAuction(ctx)
	require.NoError(t, err)
	assert.False(t, closed)
}

func TestSet_RejectsMalformedValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: models.SettingAuctionClosed, value: "closed"},
		{key: models.SettingMaxBidsPerPlayer, value: "three"},
		{key: models.SettingMinBidIncrementPercent, value: "5%"},
		{key: models.SettingDeadlineType, value: "hourly"},
		{key: models.SettingDeadlineDatetime, value: "next friday"},
		{key: "", value: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			repo := newMemoryRepo()
			err := NewApp(repo).Set(context.Background(), tt.key, tt.value)
			require.ErrorIs(t, err, models.ErrInvalidRequest)
			assert.Empty(t, repo.values)
		})
	}
}

func TestSnapshot_PropagatesStoreFailure(t *testing.T) {
	repo := newMemoryRepo()
	repo.listErr = errors.New("connection reset")

	_, err := NewApp(repo).Snapshot(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.listErr)
}
