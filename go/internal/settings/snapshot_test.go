package settings

import (
	"testing"
	"time"

	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnapshot_Defaults(t *testing.T) {
	s := ParseSnapshot(map[string]string{})

	assert.True(t, s.MinBidIncrementPercent.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, 5, s.MaxContractYears)
	assert.Equal(t, 3, s.MaxBidsPerPlayer)
	assert.Equal(t, models.DeadlineTypeManual, s.DeadlineType)
	assert.False(t, s.AuctionClosed)
	assert.Nil(t, s.Deadline)
}

func TestParseSnapshot_Values(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		check  func(t *testing.T, s models.AuctionSettings)
	}{
		{
			name:   "fractional increment",
			values: map[string]string{models.SettingMinBidIncrementPercent: "7.5"},
			check: func(t *testing.T, s models.AuctionSettings) {
				assert.Equal(t, "7.5", s.MinBidIncrementPercent.String())
			},
		},
		{
			name:   "increment clamped high",
			values: map[string]string{models.SettingMinBidIncrementPercent: "250"},
			check: func(t *testing.T, s models.AuctionSettings) {
				assert.Equal(t, "100", s.MinBidIncrementPercent.String())
			},
		},
		{
			name:   "years clamped low",
			values: map[string]string{models.SettingMaxContractYears: "1"},
			check: func(t *testing.T, s models.AuctionSettings) {
				assert.Equal(t, MinContractYears, s.MaxContractYears)
			},
		},
		{
			name:   "bids clamped high",
			values: map[string]string{models.SettingMaxBidsPerPlayer: "500"},
			check: func(t *testing.T, s models.AuctionSettings) {
				assert.Equal(t, MaxBidsPerPlayer, s.MaxBidsPerPlayer)
			},
		},
		{
			name:   "garbage number keeps default",
			values: map[string]string{models.SettingMaxBidsPerPlayer: "lots"},
			check: func(t *testing.T, s models.AuctionSettings) {
				assert.Equal(t, models.DefaultMaxBidsPerPlayer, s.MaxBidsPerPlayer)
			},
		},
		{
			name:   "closed flag",
			values: map[string]string{models.SettingAuctionClosed: "1"},
			check: func(t *testing.T, s models.AuctionSettings) {
				assert.True(t, s.AuctionClosed)
			},
		},
		{
			name:   "closed flag spelled out",
			values: map[string]string{models.SettingAuctionClosed: "true"},
			check: func(t *testing.T, s models.AuctionSettings) {
				assert.True(t, s.AuctionClosed)
			},
		},
		{
			name:   "unreadable closed flag is open",
			values: map[string]string{models.SettingAuctionClosed: "maybe"},
			check: func(t *testing.T, s models.AuctionSettings) {
				assert.False(t, s.AuctionClosed)
			},
		},
		{
			name:   "unknown deadline type is manual",
			values: map[string]string{models.SettingDeadlineType: "weekly"},
			check: func(t *testing.T, s models.AuctionSettings) {
				assert.Equal(t, models.DeadlineTypeManual, s.DeadlineType)
			},
		},
		{
			name: "datetime deadline",
			values: map[string]string{
				models.SettingDeadlineType:     "datetime",
				models.SettingDeadlineDatetime: "2026-03-01T18:00:00Z",
			},
			check: func(t *testing.T, s models.AuctionSettings) {
				assert.Equal(t, models.DeadlineTypeDatetime, s.DeadlineType)
				require.NotNil(t, s.Deadline)
				assert.True(t, s.Deadline.Equal(time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ParseSnapshot(tt.values))
		})
	}
}

func TestParseDeadline(t *testing.T) {
	want := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)

	for _, raw := range []string{"2026-03-01T18:30:00Z", "2026-03-01T18:30", "2026-03-01 18:30:00"} {
		got := ParseDeadline(raw)
		require.NotNil(t, got, raw)
		assert.True(t, got.Equal(want), raw)
	}

	assert.Nil(t, ParseDeadline(""))
	assert.Nil(t, ParseDeadline("next friday"))
}
