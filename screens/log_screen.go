package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeon-crawl/config"
)

// LogScreen shows the whole message log in a scrollable window
type LogScreen struct {
	*BaseScreen
	glyphs       *Glyphs
	messages     func() []string
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

// NewLogScreen creates a log window. messages returns the log, newest
// first.
func NewLogScreen(glyphs *Glyphs, messages func() []string) *LogScreen {
	return &LogScreen{
		BaseScreen: NewBaseScreen(),
		glyphs:     glyphs,
		messages:   messages,
		width:      config.WindowWidth - 40,
		height:     config.WindowHeight - 60,
		background: color.RGBA{0, 0, 0, 255}, // Solid black
		textColor:  color.White,
	}
}

// Update handles scrolling; Escape or F1 closes the window
func (s *LogScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < len(s.messages())-1 {
		s.scrollOffset++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}
	return nil
}

// Draw renders the log window
func (s *LogScreen) Draw(screen *ebiten.Image) {
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := float32((screenWidth - s.width) / 2)
	y := float32((screenHeight - s.height) / 2)

	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 2, s.textColor, false)

	title := "MESSAGE LOG"
	s.glyphs.DrawStringAt(screen, title, int(x)+(s.width-StringWidth(title))/2, int(y)+8, s.textColor)

	messages := s.messages()
	startY := int(y) + 30
	lineHeight := 16
	maxLines := (s.height - 50) / lineHeight

	startIdx := min(s.scrollOffset, max(len(messages)-maxLines, 0))
	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		s.glyphs.DrawStringAt(screen, messages[startIdx+i], int(x)+10, startY+i*lineHeight, color.RGBA{200, 200, 200, 255})
	}

	controls := "Up/Down: Scroll  Esc: Close"
	s.glyphs.DrawStringAt(screen, controls, int(x)+10, int(y)+s.height-20, s.textColor)
}
