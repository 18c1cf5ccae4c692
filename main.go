package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"dungeon-crawl/config"
	"dungeon-crawl/data"
	"dungeon-crawl/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default: built-in)")
	seed := flag.Int64("seed", 0, "run seed, overrides the config file when non-zero")
	architect := flag.String("architect", "", "map builder: random, empty, rooms, cellular or drunkard")
	flag.Parse()

	if err := run(*configPath, *seed, *architect); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, architect string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if architect != "" {
		cfg.Architect = architect
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	templates, err := data.LoadTemplates(cfg.Templates)
	if err != nil {
		return err
	}
	themes, err := data.LoadThemes()
	if err != nil {
		return err
	}
	opts, err := game.OptionsFromConfig(cfg, templates)
	if err != nil {
		return err
	}
	state, err := game.NewState(opts)
	if err != nil {
		return err
	}

	var watcher *data.Watcher
	if cfg.WatchTemplates && cfg.Templates != "" {
		if watcher, err = data.NewWatcher(cfg.Templates); err != nil {
			return fmt.Errorf("watch %s: %w", cfg.Templates, err)
		}
		defer watcher.Close()
		slog.Info("watching templates", "path", cfg.Templates)
	}

	ebiten.SetWindowSize(config.GetScreenDimensions())
	ebiten.SetWindowTitle("Dungeon Crawl")
	return ebiten.RunGame(NewGame(state, themes, opts.Seed, watcher))
}
