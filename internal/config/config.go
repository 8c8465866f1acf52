package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries the environment-driven defaults for the CLI. Flags override
// these per invocation; nothing here is consumed by the core library.
type Config struct {
	Simulations      int
	Trials           int
	Seed             int64
	UpperStdDevBound float64
	StepSize         int
	Workers          int
}

// Load reads configuration from NEWSVENDOR_* environment variables, applying
// the documented defaults for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Simulations:      1,
		Trials:           1_000_000,
		Seed:             0,
		UpperStdDevBound: 3,
		StepSize:         10,
		Workers:          1,
	}

	var err error
	if cfg.Simulations, err = getEnvInt("NEWSVENDOR_SIMULATIONS", cfg.Simulations); err != nil {
		return nil, err
	}
	if cfg.Trials, err = getEnvInt("NEWSVENDOR_TRIALS", cfg.Trials); err != nil {
		return nil, err
	}
	if cfg.Seed, err = getEnvInt64("NEWSVENDOR_SEED", cfg.Seed); err != nil {
		return nil, err
	}
	if cfg.UpperStdDevBound, err = getEnvFloat("NEWSVENDOR_UPPER_SD_BOUND", cfg.UpperStdDevBound); err != nil {
		return nil, err
	}
	if cfg.StepSize, err = getEnvInt("NEWSVENDOR_STEP_SIZE", cfg.StepSize); err != nil {
		return nil, err
	}
	if cfg.Workers, err = getEnvInt("NEWSVENDOR_WORKERS", cfg.Workers); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, raw, err)
	}
	return v, nil
}
