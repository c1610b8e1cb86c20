package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	t.Setenv("NDASIGN_SERVER_URL", "")
	t.Setenv("NDASIGN_DATA_DIR", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want default", cfg.ServerURL)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data dir not created: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NDASIGN_SERVER_URL", "http://localhost:9000")
	t.Setenv("NDASIGN_DATA_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "http://localhost:9000" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
}
