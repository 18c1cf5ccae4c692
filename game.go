package main

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"dungeon-crawl/config"
	"dungeon-crawl/data"
	"dungeon-crawl/game"
	"dungeon-crawl/screens"
)

// Game implements ebiten.Game interface.
type Game struct {
	state   *game.State
	glyphs  *screens.Glyphs
	themes  *data.Themes
	screens *screens.ScreenStack
	watcher *data.Watcher
}

// NewGame creates a new game instance showing the title menu
func NewGame(state *game.State, themes *data.Themes, seed int64, watcher *data.Watcher) *Game {
	glyphs := screens.NewGlyphs(config.TileSize)
	stack := screens.NewScreenStack()
	stack.Push(screens.NewStartScreen(glyphs, seed))
	return &Game{
		state:   state,
		glyphs:  glyphs,
		themes:  themes,
		screens: stack,
		watcher: watcher,
	}
}

// Update updates the game state.
func (g *Game) Update() error {
	g.pollTemplates()

	err := g.screens.Update()
	switch {
	case errors.Is(err, screens.ErrNewGame):
		g.screens.Replace(screens.NewGameScreen(g.state, g.glyphs, g.themes))
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	case err != nil:
		return err
	}
	return nil
}

// pollTemplates swaps in an edited template file. A file that fails to
// load is logged and the current set kept.
func (g *Game) pollTemplates() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			return
		}
		templates, err := data.LoadTemplates(path)
		if err != nil {
			slog.Warn("template reload failed", "path", path, "err", err)
			return
		}
		g.state.SetTemplates(templates)
		slog.Info("templates reloaded", "path", path, "entities", len(templates.Entities))
	case err, ok := <-g.watcher.Errors:
		if ok {
			slog.Warn("template watcher", "err", err)
		}
	default:
	}
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screens.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
