package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mcdev12/faauction/go/internal/api"
	"github.com/mcdev12/faauction/go/internal/gateway"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/time/rate"
)

func setupServer(config *Config, apps api.Apps, database *sql.DB, cm *gateway.ConnectionManager, gatherer prometheus.Gatherer) *http.Server {
	r := chi.NewRouter()

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: config.Server.AllowedOrigins,
		AllowedHeaders: []string{"*"},
	})

	apiConfig := api.DefaultConfig()
	apiConfig.AdminToken = config.Server.AdminToken
	apiConfig.BidRate = rate.Limit(config.Server.BidRatePerSecond)
	apiConfig.BidBurst = config.Server.BidBurst
	if apiConfig.AdminToken == "" {
		log.Warn().Msg("ADMIN_TOKEN is not set, admin routes are disabled")
	}
	api.NewHandler(apps, apiConfig).Routes(r)

	if cm != nil {
		gateway.NewWebSocketHandler(cm).RegisterRoutes(r)
	}

	setupHealthCheck(r, database)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	handler := c.Handler(r)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", config.Server.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func setupHealthCheck(r chi.Router, database *sql.DB) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := database.PingContext(r.Context()); err != nil {
			log.Error().Err(err).Msg("health check failed")
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
