package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("first-run load: %v", err)
	}
	if cfg.TickSeconds != 60 {
		t.Fatalf("expected 60s default tick, got %d", cfg.TickSeconds)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file written: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 perms, got %o", perm)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := DefaultConfig()
	in.DBPath = "/tmp/custom.db"
	in.TickSeconds = 30
	in.DesktopNotifications = true
	in.Gemini.Model = "gemini-3-flash-preview"
	if err := Save(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.DBPath != "/tmp/custom.db" || out.TickSeconds != 30 || !out.DesktopNotifications {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.TickInterval() != 30*time.Second {
		t.Fatalf("unexpected tick interval: %s", out.TickInterval())
	}
}

func TestNormalizeFillsZeroValues(t *testing.T) {
	cfg := &Config{TickSeconds: -5}
	cfg.Normalize()
	if cfg.TickSeconds != 60 || cfg.SchedulerBuffer != 64 || cfg.DBPath == "" {
		t.Fatalf("normalize left bad values: %+v", cfg)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("ZENFLOW_DB_PATH", "/tmp/env.db")
	t.Setenv("ZENFLOW_TICK_SECONDS", "15")
	t.Setenv("ZENFLOW_DESKTOP_NOTIFICATIONS", "yes")
	t.Setenv("ZENFLOW_GEMINI_API_KEY", "zen-key")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	if cfg.DBPath != "/tmp/env.db" || cfg.TickSeconds != 15 || !cfg.DesktopNotifications {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Gemini.APIKey != "zen-key" {
		t.Fatalf("expected env api key, got %q", cfg.Gemini.APIKey)
	}
}

func TestApplyEnvGeminiFallbackKey(t *testing.T) {
	t.Setenv("ZENFLOW_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "bare-key")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	if cfg.Gemini.APIKey != "bare-key" {
		t.Fatalf("expected fallback key, got %q", cfg.Gemini.APIKey)
	}
}
