package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Users != 100 {
		t.Errorf("expected 100 users, got %d", cfg.Users)
	}
	if cfg.Products != 50 {
		t.Errorf("expected 50 products, got %d", cfg.Products)
	}
	if cfg.JourneysPerHour != 5 {
		t.Errorf("expected 5 journeys per hour, got %d", cfg.JourneysPerHour)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
	if cfg.OutputPath != "app.json" {
		t.Errorf("expected output app.json, got %s", cfg.OutputPath)
	}
	if cfg.LogMode != "dev" {
		t.Errorf("expected dev log mode, got %s", cfg.LogMode)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "users: 10\nproducts: 7\noutput_path: out.json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Users != 10 {
		t.Errorf("expected 10 users, got %d", cfg.Users)
	}
	if cfg.Products != 7 {
		t.Errorf("expected 7 products, got %d", cfg.Products)
	}
	if cfg.OutputPath != "out.json" {
		t.Errorf("expected output out.json, got %s", cfg.OutputPath)
	}
	// untouched fields keep their defaults
	if cfg.JourneysPerHour != 5 {
		t.Errorf("expected 5 journeys per hour, got %d", cfg.JourneysPerHour)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("users: 10\n"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("INDUSLOG_USERS", "3")
	t.Setenv("INDUSLOG_SEED", "42")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Users != 3 {
		t.Errorf("expected env override to 3 users, got %d", cfg.Users)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file, got nil")
	}
}

func TestLoadEmptyPathSkipsFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Users != 100 {
		t.Errorf("expected defaults, got %d users", cfg.Users)
	}
}
