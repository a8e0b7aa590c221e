package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.IntervalSeconds != DefaultIntervalSeconds {
		t.Errorf("interval = %d, want %d", cfg.IntervalSeconds, DefaultIntervalSeconds)
	}
	if cfg.LogFile != "" {
		t.Errorf("logfile = %q, want empty (resolved by caller)", cfg.LogFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AIWATCH_INTERVAL_SECONDS", "30")
	t.Setenv("AIWATCH_LOGFILE", "/tmp/aiwatch-test.jsonl")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IntervalSeconds != 30 {
		t.Errorf("interval = %d, want 30", cfg.IntervalSeconds)
	}
	if cfg.LogFile != "/tmp/aiwatch-test.jsonl" {
		t.Errorf("logfile = %q", cfg.LogFile)
	}
}

func TestLoadFileWinsOverEnv(t *testing.T) {
	t.Setenv("AIWATCH_INTERVAL_SECONDS", "30")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "interval_seconds: 60\nlogfile: /var/lib/aiwatch/events.jsonl\nsignatures: /etc/aiwatch/rules.yaml\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IntervalSeconds != 60 {
		t.Errorf("interval = %d, want 60", cfg.IntervalSeconds)
	}
	if cfg.LogFile != "/var/lib/aiwatch/events.jsonl" {
		t.Errorf("logfile = %q", cfg.LogFile)
	}
	if cfg.Signatures != "/etc/aiwatch/rules.yaml" {
		t.Errorf("signatures = %q", cfg.Signatures)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("interval_seconds: 0\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IntervalSeconds != DefaultIntervalSeconds {
		t.Errorf("interval = %d, want default %d", cfg.IntervalSeconds, DefaultIntervalSeconds)
	}
}
