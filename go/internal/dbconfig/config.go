// Package dbconfig reads Postgres connection and pool settings from the environment.
package dbconfig

import (
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds Postgres connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// URL, when set from DATABASE_URL, is used as-is and the fields above only feed logs.
	URL string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
}

// NewConfigFromEnv reads DATABASE_URL or the DB_* variables, with defaults.
func NewConfigFromEnv() Config {
	cfg := Config{
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            getEnvAsInt("DB_PORT", 5432),
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", "postgres"),
		Database:        getEnv("DB_NAME", "faauction"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
	}

	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		cfg.URL = raw
		if u, err := url.Parse(raw); err == nil {
			cfg.Host = u.Hostname()
			if port, err := strconv.Atoi(u.Port()); err == nil {
				cfg.Port = port
			}
			cfg.User = u.User.Username()
			if len(u.Path) > 1 {
				cfg.Database = u.Path[1:]
			}
		}
	}
	return cfg
}

// DSN returns the Postgres connection URL. Credentials are escaped, so passwords may
// contain URL metacharacters.
func (c Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}
