package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "poll_interval_ms: 100\nclose_to_tray: false\nlog_level: debug\nprofile_dir: /tmp/profiles\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if cfg.PollIntervalMS != 100 {
		t.Errorf("Expected poll interval 100, got %d", cfg.PollIntervalMS)
	}
	if cfg.CloseToTray {
		t.Error("Expected close_to_tray false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected debug level, got %q", cfg.LogLevel)
	}
	if cfg.ProfileDir != "/tmp/profiles" {
		t.Errorf("Expected profile dir override, got %q", cfg.ProfileDir)
	}
	if cfg.PollInterval() != 100*time.Millisecond {
		t.Errorf("Expected 100ms, got %v", cfg.PollInterval())
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected warn, got %q", cfg.LogLevel)
	}
	if cfg.PollIntervalMS != DefaultPollMS {
		t.Errorf("Expected default poll interval, got %d", cfg.PollIntervalMS)
	}
	if !cfg.CloseToTray {
		t.Error("Expected close_to_tray to stay default true")
	}
}

func TestLoadBrokenFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\t not yaml ["), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Error("Expected an error for broken yaml")
	}
	if cfg != Default() {
		t.Errorf("Expected defaults on failure, got %+v", cfg)
	}
}

func TestSanitize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("poll_interval_ms: 1\nlog_level: loud\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PollIntervalMS != MinPollMS {
		t.Errorf("Expected poll interval clamped to %d, got %d", MinPollMS, cfg.PollIntervalMS)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected unknown level to fall back to info, got %q", cfg.LogLevel)
	}
}
