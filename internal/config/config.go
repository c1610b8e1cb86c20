// Package config resolves runtime settings from the environment. main loads
// an optional .env file first, so a local file can override defaults
// without flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultServerURL is the portal the client talks to unless overridden.
	DefaultServerURL = "https://nda.example.com"

	envServerURL = "NDASIGN_SERVER_URL"
	envDataDir   = "NDASIGN_DATA_DIR"
)

type Config struct {
	// ServerURL is the base URL of the NDA portal server.
	ServerURL string
	// DataDir holds the local audit log.
	DataDir string
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerURL: DefaultServerURL,
	}
	if v := os.Getenv(envServerURL); v != "" {
		cfg.ServerURL = v
	}

	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".ndasign")
	}

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return cfg, nil
}
