package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/mcdev12/faauction/go/internal/dbconfig"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Team mirrors one entry of the seed file
type Team struct {
	Name    string          `yaml:"name"`
	Budget  decimal.Decimal `yaml:"budget"`
	Members []Member        `yaml:"members"`
}

// Member is a person who bids for a team
type Member struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	IsAdmin bool   `yaml:"is_admin"`
}

type seedFile struct {
	Teams []Team `yaml:"teams"`
}

func main() {
	path := flag.String("file", "teams.yaml", "team seed file")
	flag.Parse()
	_ = godotenv.Load()
	ctx := context.Background()

	// 1) Load the seed file
	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read seed file: %v\n", err)
		os.Exit(1)
	}
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal seed file: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Upsert and count
	var (
		total    = len(seed.Teams)
		inserted int
		members  int
		errs     int
	)

	for _, t := range seed.Teams {
		var teamID uuid.UUID
		err := pool.QueryRow(ctx, `
            INSERT INTO teams (id, name, budget)
            VALUES ($1, $2, $3)
            ON CONFLICT (name) DO UPDATE SET budget = EXCLUDED.budget
            RETURNING id
        `, uuid.New(), t.Name, t.Budget.StringFixed(2)).Scan(&teamID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error upserting team %s: %v\n", t.Name, err)
			errs++
			continue
		}
		inserted++

		for _, m := range t.Members {
			_, err := pool.Exec(ctx, `
                INSERT INTO members (id, name, email, team_id, is_admin)
                VALUES ($1, $2, $3, $4, $5)
                ON CONFLICT (email) DO UPDATE SET
                  name = EXCLUDED.name, team_id = EXCLUDED.team_id, is_admin = EXCLUDED.is_admin
            `, uuid.New(), m.Name, strings.ToLower(m.Email), teamID, m.IsAdmin)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error upserting member %s: %v\n", m.Email, err)
				errs++
				continue
			}
			members++
		}
	}

	// 4) Print summary
	fmt.Printf(
		"Teams seed complete: %d total, %d upserted, %d members, %d errors\n",
		total, inserted, members, errs,
	)
}
