package main

import (
	"database/sql"

	"github.com/mcdev12/faauction/go/internal/api"
	"github.com/mcdev12/faauction/go/internal/archive"
	archivedb "github.com/mcdev12/faauction/go/internal/archive/db"
	"github.com/mcdev12/faauction/go/internal/bidadmin"
	bidadmindb "github.com/mcdev12/faauction/go/internal/bidadmin/db"
	"github.com/mcdev12/faauction/go/internal/bidding"
	biddingdb "github.com/mcdev12/faauction/go/internal/bidding/db"
	"github.com/mcdev12/faauction/go/internal/player"
	playerdb "github.com/mcdev12/faauction/go/internal/player/db"
	"github.com/mcdev12/faauction/go/internal/settings"
	settingsdb "github.com/mcdev12/faauction/go/internal/settings/db"
	"github.com/mcdev12/faauction/go/internal/teams"
	teamsdb "github.com/mcdev12/faauction/go/internal/teams/db"
	"github.com/prometheus/client_golang/prometheus"
)

func setupServices(database *sql.DB, reg prometheus.Registerer) api.Apps {
	// Database layer → Repository layer → App layer

	// Bidding
	biddingRepo := bidding.NewRepository(biddingdb.New(database), database)
	biddingApp := bidding.NewApp(biddingRepo, bidding.WithMetrics(bidding.NewPrometheusMetrics(reg)))

	// Settings
	settingsRepo := settings.NewRepository(settingsdb.New(database), database)
	settingsApp := settings.NewApp(settingsRepo)

	// Teams
	teamsRepo := teams.NewRepository(teamsdb.New(database), database)
	teamsApp := teams.NewApp(teamsRepo, biddingApp)

	// Players
	playerRepo := player.NewRepository(playerdb.New(database), database)
	playerApp := player.NewApp(playerRepo)

	// Archives
	archiveRepo := archive.NewRepository(archivedb.New(database), database)
	archiveApp := archive.NewApp(archiveRepo)

	// Bid corrections
	bidAdminRepo := bidadmin.NewRepository(bidadmindb.New(database))
	bidAdminApp := bidadmin.NewApp(bidAdminRepo)

	return api.Apps{
		Bidding:  biddingApp,
		Players:  playerApp,
		Teams:    teamsApp,
		Archives: archiveApp,
		Settings: settingsApp,
		BidAdmin: bidAdminApp,
	}
}
