package screens

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HelpText lists the key bindings
const HelpText = `Arrows / hjkl  move or attack
G              pick up
1-9            use item
Space / .      wait a turn
F1             message log
R              play again (after the run)
Esc            close this window`

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	*BaseScreen
	glyphs     *Glyphs
	title      string
	content    string
	width      int
	height     int
	background color.Color
	textColor  color.Color
}

// NewModalScreen creates a new modal screen
func NewModalScreen(glyphs *Glyphs, title, content string, width, height int) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		glyphs:     glyphs,
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
		textColor:  color.White,
	}
}

// Update closes the modal on Escape
func (s *ModalScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	return nil
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (screenWidth - s.width) / 2
	y := (screenHeight - s.height) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), 1, s.textColor, false)

	s.glyphs.DrawStringAt(screen, s.title, x+(s.width-StringWidth(s.title))/2, y+10, s.textColor)
	for i, line := range strings.Split(s.content, "\n") {
		s.glyphs.DrawStringAt(screen, line, x+10, y+30+i*16, s.textColor)
	}
}
