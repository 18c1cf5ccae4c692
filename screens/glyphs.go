package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// basicfont.Face7x13 cell size
const (
	glyphWidth  = 7
	glyphHeight = 13
)

// Glyphs draws characters on a grid of square tiles using the built-in
// 7x13 bitmap font
type Glyphs struct {
	face     text.Face
	TileSize int
}

// NewGlyphs creates a glyph drawer for tiles of tileSize pixels
func NewGlyphs(tileSize int) *Glyphs {
	return &Glyphs{
		face:     text.NewGoXFace(basicfont.Face7x13),
		TileSize: tileSize,
	}
}

// Face returns the font face, for widgets that need one
func (g *Glyphs) Face() text.Face {
	return g.face
}

// DrawTile draws one character centred in tile (x, y)
func (g *Glyphs) DrawTile(target *ebiten.Image, char rune, x, y int, clr color.Color) {
	if char == ' ' {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(
		float64(x*g.TileSize+(g.TileSize-glyphWidth)/2),
		float64(y*g.TileSize+(g.TileSize-glyphHeight)/2),
	)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(target, string(char), g.face, op)
}

// FillTile paints the background of tile (x, y)
func (g *Glyphs) FillTile(target *ebiten.Image, x, y int, clr color.Color) {
	vector.DrawFilledRect(target,
		float32(x*g.TileSize), float32(y*g.TileSize),
		float32(g.TileSize), float32(g.TileSize),
		clr, false)
}

// DrawString draws text with the font's own advance, starting at the top
// left of tile (x, y)
func (g *Glyphs) DrawString(target *ebiten.Image, s string, x, y int, clr color.Color) {
	g.DrawStringAt(target, s, x*g.TileSize+2, y*g.TileSize+(g.TileSize-glyphHeight)/2, clr)
}

// DrawStringAt draws text at a pixel position
func (g *Glyphs) DrawStringAt(target *ebiten.Image, s string, px, py int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(px), float64(py))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(target, s, g.face, op)
}

// StringWidth returns the width of s in pixels
func StringWidth(s string) int {
	return len([]rune(s)) * glyphWidth
}
