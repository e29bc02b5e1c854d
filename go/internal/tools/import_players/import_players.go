package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/mcdev12/faauction/go/internal/dbconfig"
	"github.com/mcdev12/faauction/go/internal/player"
)

const upsertPlayer = `
INSERT INTO players (
  id, player_number, first_name, last_name, nickname, position,
  birth_day, birth_month, birth_year
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (player_number) WHERE archive_id IS NULL DO UPDATE SET
  first_name  = EXCLUDED.first_name,
  last_name   = EXCLUDED.last_name,
  nickname    = EXCLUDED.nickname,
  position    = EXCLUDED.position,
  birth_day   = EXCLUDED.birth_day,
  birth_month = EXCLUDED.birth_month,
  birth_year  = EXCLUDED.birth_year
`

func main() {
	file := flag.String("file", "", "roster CSV export to import")
	clearPool := flag.Bool("clear", false, "delete the active pool and its bids before importing")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: import_players -file roster.csv [-clear]")
		os.Exit(2)
	}
	_ = godotenv.Load()
	ctx := context.Background()

	// 1) Parse the roster
	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open roster: %v\n", err)
		os.Exit(1)
	}
	rows, skips, err := player.ParseRosterCSV(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse roster: %v\n", err)
		os.Exit(1)
	}
	for _, s := range skips {
		fmt.Fprintf(os.Stderr, "line %d skipped: %s\n", s.Line, s.Reason)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Upsert in one transaction
	var deleted int64
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if *clearPool {
			if _, err := tx.Exec(ctx, `DELETE FROM bids WHERE player_id IN (SELECT id FROM players WHERE archive_id IS NULL)`); err != nil {
				return fmt.Errorf("clear bids: %w", err)
			}
			tag, err := tx.Exec(ctx, `DELETE FROM players WHERE archive_id IS NULL`)
			if err != nil {
				return fmt.Errorf("clear players: %w", err)
			}
			deleted = tag.RowsAffected()
		}

		batch := &pgx.Batch{}
		for _, r := range rows {
			batch.Queue(upsertPlayer,
				uuid.New(), r.PlayerNumber, r.FirstName, r.LastName, r.Nickname, int16(r.Position),
				r.BirthDay, r.BirthMonth, r.BirthYear,
			)
		}
		results := tx.SendBatch(ctx, batch)
		for _, r := range rows {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("upsert player %s (line %d): %w", r.PlayerNumber, r.Line, err)
			}
		}
		return results.Close()
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}

	// 4) Print summary
	fmt.Printf(
		"Players import complete: %d imported, %d skipped, %d cleared\n",
		len(rows), len(skips), deleted,
	)
}
