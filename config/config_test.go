package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.FinalLevel != 2 || cfg.Architect != "random" || cfg.Seed != 0 {
		t.Fatalf("unexpected default %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("seed: 1234\narchitect: rooms\nlog_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 1234 || cfg.Architect != "rooms" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.FinalLevel != 2 {
		t.Fatalf("missing key lost its default: %+v", cfg)
	}
	if level, _ := cfg.SlogLevel(); level != slog.LevelDebug {
		t.Fatalf("log level %v", level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"negative level": "final_level: -1\n",
		"bad log level":  "log_level: loud\n",
		"not yaml":       "seed: [\n",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
