package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CubePack/internal/model"
)

func TestSaveLoadAppConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultPieceSet = "Classic"
	cfg.DefaultMaxAttempts = 500000
	cfg.Theme = "dark"
	cfg.AddRecentProject("/tmp/a.json")
	cfg.AddRecentProject("/tmp/b.json")

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultPieceSet != "Classic" {
		t.Errorf("DefaultPieceSet = %q", loaded.DefaultPieceSet)
	}
	if loaded.DefaultMaxAttempts != 500000 {
		t.Errorf("DefaultMaxAttempts = %d", loaded.DefaultMaxAttempts)
	}
	if loaded.Theme != "dark" {
		t.Errorf("Theme = %q", loaded.Theme)
	}
	if len(loaded.RecentProjects) != 2 || loaded.RecentProjects[0] != "/tmp/b.json" {
		t.Errorf("RecentProjects = %v", loaded.RecentProjects)
	}
}

func TestLoadAppConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("missing config should not be an error, got %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultPieceSet != defaults.DefaultPieceSet {
		t.Errorf("DefaultPieceSet = %q, want %q", cfg.DefaultPieceSet, defaults.DefaultPieceSet)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should never be nil")
	}
}

func TestLoadAppConfig_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected an error for a corrupt config file")
	}
}

func TestSaveAppConfig_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}
