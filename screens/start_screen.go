package screens

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StartScreen is the title menu
type StartScreen struct {
	*BaseScreen
	ui     *ebitenui.UI
	choice error
}

// NewStartScreen creates the title menu. seed is shown so a run can be
// replayed.
func NewStartScreen(glyphs *Glyphs, seed int64) *StartScreen {
	s := &StartScreen{BaseScreen: NewBaseScreen()}
	s.ui = newPanelUI(glyphs.Face(),
		[]panelLine{
			{"Dungeon Crawl", color.RGBA{255, 230, 150, 255}},
			{"Find the Amulet of Yala at the bottom of the dungeon.", color.RGBA{200, 200, 200, 255}},
			{fmt.Sprintf("Seed %d", seed), color.RGBA{150, 150, 150, 255}},
		},
		[]panelButton{
			{"New Game (Enter)", func() { s.choice = ErrNewGame }},
			{"Quit (Esc)", func() { s.choice = ErrQuit }},
		},
	)
	return s
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	s.ui.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ErrNewGame
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	choice := s.choice
	s.choice = nil
	return choice
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 40, 255})
	s.ui.Draw(screen)
}
