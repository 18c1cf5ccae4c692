package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

// GameConfig holds the run settings read from YAML
type GameConfig struct {
	Seed           int64  `yaml:"seed"`
	Architect      string `yaml:"architect"`
	FinalLevel     int    `yaml:"final_level"`
	Templates      string `yaml:"templates"`
	WatchTemplates bool   `yaml:"watch_templates"`
	LogLevel       string `yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() GameConfig {
	cfg, err := parse("default.yaml", defaultConfig)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads a config file. An empty path returns the built-in default;
// keys missing from the file keep their default values.
func Load(path string) (GameConfig, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return parse(path, raw)
}

func parse(name string, raw []byte) (GameConfig, error) {
	var cfg GameConfig
	if name != "default.yaml" {
		cfg = Default()
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("config: unmarshal %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside a run
func (c GameConfig) Validate() error {
	if c.FinalLevel < 0 {
		return fmt.Errorf("final_level must be >= 0, got %d", c.FinalLevel)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts LogLevel for the slog handler
func (c GameConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("bad log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
