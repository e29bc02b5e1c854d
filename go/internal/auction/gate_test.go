package auction

import (
	"testing"
	"time"

	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOpen(t *testing.T) {
	deadline := time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		settings models.AuctionSettings
		now      time.Time
		want     bool
	}{
		{
			name:     "manual open",
			settings: models.AuctionSettings{DeadlineType: models.DeadlineTypeManual},
			now:      deadline,
			want:     true,
		},
		{
			name:     "manual closed",
			settings: models.AuctionSettings{DeadlineType: models.DeadlineTypeManual, AuctionClosed: true},
			now:      deadline,
			want:     false,
		},
		{
			name:     "empty mode behaves as manual",
			settings: models.AuctionSettings{},
			now:      deadline,
			want:     true,
		},
		{
			name:     "datetime before deadline",
			settings: models.AuctionSettings{DeadlineType: models.DeadlineTypeDatetime, Deadline: &deadline},
			now:      deadline.Add(-time.Second),
			want:     true,
		},
		{
			name:     "datetime exactly at deadline",
			settings: models.AuctionSettings{DeadlineType: models.DeadlineTypeDatetime, Deadline: &deadline},
			now:      deadline,
			want:     false,
		},
		{
			name:     "datetime after deadline",
			settings: models.AuctionSettings{DeadlineType: models.DeadlineTypeDatetime, Deadline: &deadline},
			now:      deadline.Add(time.Minute),
			want:     false,
		},
		{
			name: "datetime ignores manual flag",
			settings: models.AuctionSettings{
				DeadlineType:  models.DeadlineTypeDatetime,
				Deadline:      &deadline,
				AuctionClosed: true,
			},
			now:  deadline.Add(-time.Hour),
			want: true,
		},
		{
			name:     "datetime without deadline",
			settings: models.AuctionSettings{DeadlineType: models.DeadlineTypeDatetime},
			now:      deadline,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOpen(tt.settings, tt.now))
		})
	}
}

func TestStatus_Remaining(t *testing.T) {
	deadline := time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)
	settings := models.AuctionSettings{DeadlineType: models.DeadlineTypeDatetime, Deadline: &deadline}

	open := Status(settings, deadline.Add(-90*time.Minute))
	assert.True(t, open.Open)
	require.NotNil(t, open.Remaining)
	assert.Equal(t, 90*time.Minute, *open.Remaining)

	closed := Status(settings, deadline.Add(time.Minute))
	assert.False(t, closed.Open)
	assert.Nil(t, closed.Remaining)
	assert.Equal(t, &deadline, closed.Deadline)
}
