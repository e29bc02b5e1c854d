package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mcdev12/faauction/go/internal/bidfeed"
	bidfeeddb "github.com/mcdev12/faauction/go/internal/bidfeed/db"
	"github.com/mcdev12/faauction/go/internal/dbconfig"
	"github.com/mcdev12/faauction/go/internal/gateway"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	config, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(config.Log.Level, config.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := dbconfig.NewConfigFromEnv()
	database, err := setupDatabase(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up database")
	}
	defer database.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	apps := setupServices(database, reg)
	g, gctx := errgroup.WithContext(ctx)

	streamConfig := bidfeed.DefaultJetStreamConfig()
	streamConfig.URL = config.Feed.NatsURL

	if config.Feed.Enabled {
		relay, publisher, err := setupRelay(gctx, config, streamConfig, dbConfig, database, reg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up bid feed")
		}
		defer publisher.Close()
		g.Go(func() error { return relay.Start(gctx) })
	}

	var cm *gateway.ConnectionManager
	if config.Gateway.Enabled {
		cm = gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
		consumerConfig := gateway.DefaultJetStreamConsumerConfig()
		consumerConfig.Stream = streamConfig
		consumerConfig.ConsumerName = config.Gateway.ConsumerName

		consumer, err := gateway.NewEventConsumer(gctx, cm, consumerConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up gateway consumer")
		}
		defer consumer.Stop()

		g.Go(func() error {
			cm.Start(gctx)
			return nil
		})
		g.Go(func() error { return consumer.Start(gctx) })
	}

	server := setupServer(config, apps, database, cm, reg)
	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func setupRelay(ctx context.Context, config *Config, streamConfig bidfeed.JetStreamConfig, dbConfig dbconfig.Config, database *sql.DB, reg prometheus.Registerer) (*bidfeed.Relay, *bidfeed.JetStreamPublisher, error) {
	publisher, err := bidfeed.NewJetStreamPublisher(ctx, streamConfig)
	if err != nil {
		return nil, nil, err
	}

	listener, err := bidfeed.NewPQListener(dbConfig.DSN())
	if err != nil {
		publisher.Close()
		return nil, nil, err
	}

	relayConfig := bidfeed.DefaultRelayConfig()
	relayConfig.FallbackInterval = config.Feed.FallbackInterval
	relayConfig.BatchSize = config.Feed.BatchSize

	store := bidfeed.NewRepository(bidfeeddb.New(database))
	relay := bidfeed.NewRelay(store, publisher, listener, relayConfig,
		bidfeed.WithRelayMetrics(bidfeed.NewPrometheusMetrics(reg)),
	)
	return relay, publisher, nil
}
