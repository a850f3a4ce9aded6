package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds everything the app reads from the environment.
type Config struct {
	DBFilename   string
	LogFilename  string
	GeminiAPIKey string
}

// Load reads configuration from the environment, after loading a .env
// file when one is present. Data lives under ANIMA_DATA_DIR, defaulting
// to ~/.anima-planner; the directory is created if needed.
func Load() (*Config, error) {
	// a missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	dataDir := os.Getenv("ANIMA_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("error finding home directory: %w", err)
		}

		dataDir = filepath.Join(home, ".anima-planner")
	}

	dirPerms := 0o755
	if err := os.MkdirAll(dataDir, os.FileMode(dirPerms)); err != nil {
		return nil, fmt.Errorf("error creating data dir %s: %w", dataDir, err)
	}

	return &Config{
		DBFilename:   filepath.Join(dataDir, "planner.sqlite"),
		LogFilename:  filepath.Join(dataDir, "debug.log"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}, nil
}
