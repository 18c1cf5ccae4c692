package screens

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dungeon-crawl/config"
	"dungeon-crawl/data"
	"dungeon-crawl/game"
	"dungeon-crawl/systems"
)

const logScreenLines = 100

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	state    *game.State
	glyphs   *Glyphs
	renderer *Renderer
	// log and help windows; while one is open the game does not tick
	overlays *ScreenStack
	ending   *EndScreen
}

// NewGameScreen creates a new game screen
func NewGameScreen(state *game.State, glyphs *Glyphs, themes *data.Themes) *GameScreen {
	s := &GameScreen{
		BaseScreen: NewBaseScreen(),
		state:      state,
		glyphs:     glyphs,
		renderer:   NewRenderer(glyphs, themes),
		overlays:   NewScreenStack(),
	}
	s.syncEnding()
	return s
}

// Update reads this frame's command and ticks the simulation once
func (s *GameScreen) Update() error {
	if s.overlays.Len() > 0 {
		return s.overlays.Update()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.overlays.Push(NewLogScreen(s.glyphs, func() []string {
			return s.state.Messages(logScreenLines)
		}))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) {
		s.overlays.Push(NewModalScreen(s.glyphs, "CONTROLS", HelpText, config.WindowWidth*3/4, 160))
		return nil
	}

	action := readAction()
	if s.ending != nil {
		if err := s.ending.Update(); errors.Is(err, ErrRestart) {
			action = &systems.Action{Kind: systems.ActionRestart}
		}
	}

	cx, cy := ebiten.CursorPosition()
	before := s.state.TurnState()
	s.state.Tick(action, screenToMap(cx, cy, s.state.Camera()))
	if after := s.state.TurnState(); after != before {
		slog.Debug("turn state", "from", before.String(), "to", after.String())
	}
	s.syncEnding()
	return nil
}

// syncEnding shows the end panel while the run is over
func (s *GameScreen) syncEnding() {
	switch s.state.TurnState() {
	case systems.GameOver, systems.Victory:
		if s.ending == nil {
			s.ending = NewEndScreen(s.glyphs, s.state.TurnState() == systems.Victory)
		}
	default:
		s.ending = nil
	}
}

// Draw draws the game screen
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderer.Draw(s.state, screen)
	if s.ending != nil {
		s.ending.Draw(screen)
	}
	s.overlays.Draw(screen)
}
