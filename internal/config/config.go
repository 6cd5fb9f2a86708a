// Package config loads the CLI's YAML configuration with environment
// overrides. The analysis engine takes its thresholds as fixed constants;
// only consumer-side knobs live here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type Config struct {
	OutputPath    string        `yaml:"output_path"`
	CachePath     string        `yaml:"cache_path"`
	Style         string        `yaml:"style"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Env var overrides, applied after file load.
const (
	EnvCachePath = "QP_CACHE_PATH"
	EnvLogLevel  = "QP_LOG_LEVEL"
	EnvLogFormat = "QP_LOG_FORMAT"
	EnvLogFile   = "QP_LOG_FILE"
	EnvDebounce  = "QP_WATCH_DEBOUNCE_MS"
)

func Defaults() Config {
	return Config{
		OutputPath:    "report.json",
		CachePath:     "",
		Style:         "",
		WatchDebounce: 400 * time.Millisecond,
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads the YAML file at path when it exists, then applies env
// overrides. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvCachePath)); v != "" {
		cfg.CachePath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDebounce)); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.WatchDebounce = time.Duration(ms) * time.Millisecond
		}
	}
}
