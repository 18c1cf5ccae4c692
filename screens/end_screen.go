package screens

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
)

// EndScreen is drawn over the map once the run is won or lost
type EndScreen struct {
	*BaseScreen
	ui      *ebitenui.UI
	restart bool
}

// NewEndScreen creates the game over or victory panel
func NewEndScreen(glyphs *Glyphs, victory bool) *EndScreen {
	s := &EndScreen{BaseScreen: NewBaseScreen()}
	white := color.RGBA{255, 255, 255, 255}
	lines := []panelLine{
		{"Your quest has ended.", color.RGBA{255, 80, 80, 255}},
		{"A monster got the better of you.", white},
		{"The Amulet of Yala is still down there.", white},
	}
	if victory {
		lines = []panelLine{
			{"You have won!", color.RGBA{120, 255, 120, 255}},
			{"The Amulet of Yala is yours.", white},
			{"Your town is safe once more.", white},
		}
	}
	s.ui = newPanelUI(glyphs.Face(), lines, []panelButton{
		{"Play again (R)", func() { s.restart = true }},
	})
	return s
}

// Update returns ErrRestart once the button is clicked. The R key goes
// through the regular key bindings.
func (s *EndScreen) Update() error {
	s.ui.Update()
	if s.restart {
		s.restart = false
		return ErrRestart
	}
	return nil
}

// Draw draws the panel
func (s *EndScreen) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
}
