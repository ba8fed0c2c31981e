// Package config loads runtime configuration from the environment, with an
// optional .env file for local overrides.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultGridRows = 5
	defaultGridCols = 8
)

// Config holds every tunable the application reads at startup.
type Config struct {
	DataDir  string // directory holding the JSON record collections
	LogFile  string // zap log output, kept out of the terminal UI
	GridRows int    // default seat grid height for new showtimes
	GridCols int    // default seat grid width for new showtimes
}

// Load reads CINEPLEX_* variables, consulting a .env file first when present.
// Every value has a working default so a fresh install needs no setup.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DataDir:  os.Getenv("CINEPLEX_DATA_DIR"),
		LogFile:  os.Getenv("CINEPLEX_LOG_FILE"),
		GridRows: intEnv("CINEPLEX_GRID_ROWS", defaultGridRows),
		GridCols: intEnv("CINEPLEX_GRID_COLS", defaultGridCols),
	}

	if cfg.DataDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = filepath.Join(dir, "cineplex-booking-cli")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "cineplex.log")
	}
	return cfg, nil
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
