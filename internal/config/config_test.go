package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.OutputPath != "report.json" || cfg.Logging.Level != "info" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qp.yaml")
	raw := []byte("output_path: out/analysis.json\ncache_path: cache.db\nstyle: screenplay\nlogging:\n  level: debug\n  format: json\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputPath != "out/analysis.json" || cfg.CachePath != "cache.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Style != "screenplay" || cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestEnvOverridesWin(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvCachePath, "/tmp/override.db")
	t.Setenv(EnvDebounce, "900")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Fatalf("expected env log level, got %q", cfg.Logging.Level)
	}
	if cfg.CachePath != "/tmp/override.db" {
		t.Fatalf("expected env cache path, got %q", cfg.CachePath)
	}
	if cfg.WatchDebounce != 900*time.Millisecond {
		t.Fatalf("expected env debounce, got %v", cfg.WatchDebounce)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("output_path: [unclosed"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
