// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultMinBet     = 5
	defaultMaxBet     = 500
	defaultHistoryDSN = ":memory:"
)

// Config holds the table settings.
type Config struct {
	MinBet     int
	MaxBet     int
	ShoeSeed   string
	HistoryDSN string
}

// FromEnv builds a Config from TWENTYONE_* environment variables, falling
// back to the house defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ShoeSeed:   os.Getenv("TWENTYONE_SHOE_SEED"),
		HistoryDSN: defaultHistoryDSN,
	}
	if v := os.Getenv("TWENTYONE_HISTORY_DSN"); v != "" {
		cfg.HistoryDSN = v
	}

	var err error
	if cfg.MinBet, err = intEnv("TWENTYONE_MIN_BET", defaultMinBet); err != nil {
		return nil, err
	}
	if cfg.MaxBet, err = intEnv("TWENTYONE_MAX_BET", defaultMaxBet); err != nil {
		return nil, err
	}

	if cfg.MinBet <= 0 {
		return nil, fmt.Errorf("minimum bet must be positive, got %d", cfg.MinBet)
	}
	if cfg.MaxBet < cfg.MinBet {
		return nil, fmt.Errorf("maximum bet %d is below minimum bet %d", cfg.MaxBet, cfg.MinBet)
	}
	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
