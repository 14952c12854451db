package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config collects everything main needs to wire the application. Values come
// from the environment (a .env file is loaded when present); every field has
// a default so the server starts with no configuration at all.
type Config struct {
	Addr        string
	StorePath   string
	TokenSecret string
	TokenTTL    time.Duration
	Latency     time.Duration
	EventStart  time.Time
	EventEnd    time.Time
}

const (
	defaultAddr      = ":8080"
	defaultStorePath = "startup-weekend.db"
	defaultTokenTTL  = 24 * time.Hour
	defaultLatency   = 500 * time.Millisecond

	// The next event runs Oct 30 - Nov 1 2025, Gulf Standard Time.
	defaultEventStart = "2025-10-30T09:00:00+04:00"
	defaultEventEnd   = "2025-11-01T18:00:00+04:00"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:        envOr("SERVER_ADDRESS", defaultAddr),
		StorePath:   envOr("STORE_PATH", defaultStorePath),
		TokenSecret: os.Getenv("TOKEN_AUTH_SECRET"),
		TokenTTL:    defaultTokenTTL,
		Latency:     defaultLatency,
	}

	var err error
	if cfg.TokenTTL, err = durationOr("TOKEN_TTL", defaultTokenTTL); err != nil {
		return nil, err
	}
	if cfg.Latency, err = durationOr("SIMULATED_LATENCY", defaultLatency); err != nil {
		return nil, err
	}
	if cfg.EventStart, err = timeOr("EVENT_START", defaultEventStart); err != nil {
		return nil, err
	}
	if cfg.EventEnd, err = timeOr("EVENT_END", defaultEventEnd); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	return d, nil
}

func timeOr(key, fallback string) (time.Time, error) {
	v := os.Getenv(key)
	if v == "" {
		v = fallback
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse %s", key)
	}
	return t, nil
}
