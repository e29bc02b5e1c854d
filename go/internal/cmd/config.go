package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port             string   `yaml:"port"`
		AllowedOrigins   []string `yaml:"allowed_origins"`
		AdminToken       string   `yaml:"admin_token"`
		BidRatePerSecond float64  `yaml:"bid_rate_per_second"`
		BidBurst         int      `yaml:"bid_burst"`
	} `yaml:"server"`
	Feed struct {
		Enabled          bool          `yaml:"enabled"`
		NatsURL          string        `yaml:"nats_url"`
		FallbackInterval time.Duration `yaml:"fallback_interval"`
		BatchSize        int           `yaml:"batch_size"`
	} `yaml:"feed"`
	Gateway struct {
		Enabled      bool   `yaml:"enabled"`
		ConsumerName string `yaml:"consumer_name"`
	} `yaml:"gateway"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func defaultConfig() *Config {
	var c Config
	c.Server.Port = "8080"
	c.Server.AllowedOrigins = []string{"*"}
	c.Server.BidRatePerSecond = 2
	c.Server.BidBurst = 5
	c.Feed.Enabled = true
	c.Feed.NatsURL = "nats://127.0.0.1:4222"
	c.Feed.FallbackInterval = 30 * time.Second
	c.Feed.BatchSize = 100
	c.Gateway.Enabled = true
	c.Gateway.ConsumerName = "auction-gateway"
	c.Log.Level = "info"
	c.Log.Format = "json"
	return &c
}

// loadConfig reads the yaml file over the defaults and then applies environment
// overrides. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("path", path).Msg("config file not found, using defaults")
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Server.Port = getEnv("PORT", config.Server.Port)
	config.Server.AdminToken = getEnv("ADMIN_TOKEN", config.Server.AdminToken)
	config.Feed.NatsURL = getEnv("NATS_URL", config.Feed.NatsURL)
	config.Feed.Enabled = getEnvAsBool("FEED_ENABLED", config.Feed.Enabled)
	config.Gateway.Enabled = getEnvAsBool("GATEWAY_ENABLED", config.Gateway.Enabled)
	config.Log.Level = getEnv("LOG_LEVEL", config.Log.Level)
	config.Log.Format = getEnv("LOG_FORMAT", config.Log.Format)

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
