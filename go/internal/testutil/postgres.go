//go:build integration

// Package testutil starts throwaway Postgres databases for integration tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/mcdev12/faauction/go/internal/migrations"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const postgresImage = "postgres:16-alpine"

// StartPostgres runs a migrated Postgres container for the lifetime of the test.
func StartPostgres(t *testing.T) (*sql.DB, string) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase("faauction_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(45*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, migrations.Up(dsn))

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(32)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.PingContext(ctx))

	return db, dsn
}

// SeedTeam inserts a team with one active member and returns both ids.
func SeedTeam(t *testing.T, db *sql.DB, name, budget string) (teamID, memberID uuid.UUID) {
	t.Helper()
	teamID, memberID = uuid.New(), uuid.New()

	_, err := db.Exec(`INSERT INTO teams (id, name, budget) VALUES ($1, $2, $3)`, teamID, name, budget)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO members (id, name, email, team_id) VALUES ($1, $2, $3, $4)`,
		memberID, name+" GM", memberID.String()+"@example.com", teamID)
	require.NoError(t, err)
	return teamID, memberID
}

// SeedPlayer inserts an active player.
func SeedPlayer(t *testing.T, db *sql.DB, number, first, last string, position int) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(`INSERT INTO players (id, player_number, first_name, last_name, position) VALUES ($1, $2, $3, $4, $5)`,
		id, number, first, last, position)
	require.NoError(t, err)
	return id
}

// SetSetting overwrites one auction setting.
func SetSetting(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO settings (setting_key, setting_value) VALUES ($1, $2)
		ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value`, key, value)
	require.NoError(t, err)
}
