//go:build integration

package bidfeed

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/bidfeed/db"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/mcdev12/faauction/go/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertBid = `INSERT INTO bids (id, player_id, team_id, member_id, amount_per_year, years, total_value, is_opening_bid, created_at)
VALUES ($1, $2, $3, $4, '1000.00', 1, '1000.00', TRUE, now())`

func TestPostgres_BidCommittedAfterLaterSeqIsPublished(t *testing.T) {
	sqlDB, _ := testutil.StartPostgres(t)
	ctx := context.Background()

	slowTeam, slowMember := testutil.SeedTeam(t, sqlDB, "Slow", "10000000")
	fastTeam, fastMember := testutil.SeedTeam(t, sqlDB, "Fast", "10000000")
	first := testutil.SeedPlayer(t, sqlDB, "301", "Tony", "Gwynn", int(models.PositionRightField))
	second := testutil.SeedPlayer(t, sqlDB, "302", "Greg", "Maddux", int(models.PositionStarter))

	store := NewRepository(db.New(sqlDB))
	pub := &recordingPublisher{}
	relay := NewRelay(store, pub, newChanNotifier(), DefaultRelayConfig())

	slow, err := sqlDB.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer slow.Rollback()
	_, err = slow.ExecContext(ctx, insertBid, uuid.New(), first, slowTeam, slowMember)
	require.NoError(t, err)

	_, err = sqlDB.ExecContext(ctx, insertBid, uuid.New(), second, fastTeam, fastMember)
	require.NoError(t, err)

	require.NoError(t, relay.drain(ctx))
	require.Len(t, pub.seqs(), 1)

	require.NoError(t, slow.Commit())
	require.NoError(t, relay.drain(ctx))

	seqs := pub.seqs()
	require.Len(t, seqs, 2)
	assert.Less(t, seqs[1], seqs[0], "the lower seq is sent once its transaction commits")

	unsent, err := store.CountUnsentBids(ctx)
	require.NoError(t, err)
	assert.Zero(t, unsent)
}

func TestPostgres_DeletedBidLeavesOutbox(t *testing.T) {
	sqlDB, _ := testutil.StartPostgres(t)
	ctx := context.Background()

	team, member := testutil.SeedTeam(t, sqlDB, "Cleanup", "10000000")
	player := testutil.SeedPlayer(t, sqlDB, "303", "Ken", "Griffey", int(models.PositionCenterField))

	bidID := uuid.New()
	_, err := sqlDB.ExecContext(ctx, insertBid, bidID, player, team, member)
	require.NoError(t, err)

	store := NewRepository(db.New(sqlDB))
	unsent, err := store.CountUnsentBids(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unsent)

	_, err = sqlDB.ExecContext(ctx, `DELETE FROM bids WHERE id = $1`, bidID)
	require.NoError(t, err)
	unsent, err = store.CountUnsentBids(ctx)
	require.NoError(t, err)
	assert.Zero(t, unsent)
}
