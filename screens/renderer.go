package screens

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/data"
	"dungeon-crawl/game"
)

var (
	panelBorder   = color.RGBA{200, 200, 200, 255}
	headingColor  = color.RGBA{255, 230, 150, 255} // Gold
	tooltipBorder = color.RGBA{255, 255, 255, 255}
	tooltipFill   = color.RGBA{0, 0, 0, 220}
)

// Renderer draws the current level, its entities and the HUD
type Renderer struct {
	glyphs *Glyphs
	themes *data.Themes
}

// NewRenderer creates a renderer drawing with glyphs. Each level's tiles
// use the look of its theme.
func NewRenderer(glyphs *Glyphs, themes *data.Themes) *Renderer {
	return &Renderer{glyphs: glyphs, themes: themes}
}

// Draw renders the whole game view
func (r *Renderer) Draw(state *game.State, screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	camera := state.Camera()
	r.drawMap(state, screen, camera)
	r.drawEntities(state, screen, camera)
	r.drawStatsPanel(state, screen)
	r.drawMessagesPanel(state, screen)
	r.drawTooltip(state, screen)
}

// tileAppearance returns how a map tile is drawn. Tiles the player has
// never seen are not drawn at all.
func tileAppearance(theme *data.ThemeDefinition, t components.TileType, visible, revealed bool) (rune, color.Color, bool) {
	if !visible && !revealed {
		return 0, nil, false
	}
	look := theme.Floor
	switch t {
	case components.TileWall:
		look = theme.Wall
	case components.TileExit:
		look = theme.Exit
	}
	if !visible {
		return look.Rune(), theme.RememberedRGBA(), true
	}
	return look.Rune(), look.RGBA(), true
}

// drawMap draws the tiles inside the camera viewport
func (r *Renderer) drawMap(state *game.State, screen *ebiten.Image, camera components.Camera) {
	m := state.Map()
	theme := r.themes.Get(state.Level().Theme)
	for y := 0; y < config.DisplayHeight; y++ {
		for x := 0; x < config.DisplayWidth; x++ {
			pt := components.Point{X: camera.Left + x, Y: camera.Top + y}
			if !m.InBounds(pt) {
				continue
			}
			glyph, fg, ok := tileAppearance(theme, m.Tile(pt), state.PlayerCanSee(pt), m.IsRevealed(pt))
			if !ok {
				continue
			}
			r.glyphs.DrawTile(screen, glyph, x, y, fg)
		}
	}
}

// drawEntities draws the entities the player can currently see
func (r *Renderer) drawEntities(state *game.State, screen *ebiten.Image, camera components.Camera) {
	for _, e := range state.Renderables() {
		if !camera.Contains(e.Point) || !state.PlayerCanSee(e.Point) {
			continue
		}
		x, y := e.Point.X-camera.Left, e.Point.Y-camera.Top
		// Blank the floor glyph under the entity
		r.glyphs.FillTile(screen, x, y, color.Black)
		r.glyphs.DrawTile(screen, e.Glyph, x, y, e.Color)
	}
}

// drawStatsPanel draws health, depth and inventory on the first HUD rows
func (r *Renderer) drawStatsPanel(state *game.State, screen *ebiten.Image) {
	top := config.DisplayHeight
	tile := float32(r.glyphs.TileSize)
	vector.DrawFilledRect(screen, 0, float32(top)*tile, float32(config.WindowWidth), 1, panelBorder, false)

	health := state.PlayerHealth()
	healthText := fmt.Sprintf("Health: %d/%d", health.Current, health.Max)
	r.glyphs.DrawString(screen, healthText, 0, top, color.RGBA{255, 200, 200, 255})

	// Health bar
	barX := float32(StringWidth(healthText) + 12)
	barWidth := tile * 10
	fraction := float32(0)
	if health.Max > 0 {
		fraction = float32(max(health.Current, 0)) / float32(health.Max)
	}
	barY := float32(top)*tile + 4
	vector.DrawFilledRect(screen, barX, barY, barWidth, tile-8, color.RGBA{100, 0, 0, 255}, false)
	vector.DrawFilledRect(screen, barX, barY, barWidth*fraction, tile-8, color.RGBA{200, 0, 0, 255}, false)

	depth := fmt.Sprintf("Dungeon level: %d/%d", state.MapLevel()+1, state.FinalLevel()+1)
	r.glyphs.DrawStringAt(screen, depth, config.WindowWidth-StringWidth(depth)-4, top*r.glyphs.TileSize+1, headingColor)

	items := state.CarriedItemNames()
	parts := make([]string, 0, len(items))
	for i, name := range items {
		parts = append(parts, fmt.Sprintf("%d) %s", i+1, name))
	}
	inventory := "Inventory: (empty)"
	if len(parts) > 0 {
		inventory = "Inventory: " + strings.Join(parts, "  ")
	}
	r.glyphs.DrawString(screen, inventory, 0, top+1, color.RGBA{200, 200, 255, 255})
}

// drawMessagesPanel draws the most recent log lines, newest on top
func (r *Renderer) drawMessagesPanel(state *game.State, screen *ebiten.Image) {
	first := config.DisplayHeight + 2
	for i, msg := range state.ColoredMessages(config.HUDHeight - 2) {
		r.glyphs.DrawString(screen, msg.Text, 0, first+i, msg.Color())
	}
}

// drawTooltip names the entity under the pointer, if the player can see it
func (r *Renderer) drawTooltip(state *game.State, screen *ebiten.Image) {
	tip, ok := state.TooltipAt(state.Pointer())
	if !ok {
		return
	}
	camera := state.Camera()
	px := (state.Pointer().X - camera.Left + 1) * r.glyphs.TileSize
	py := (state.Pointer().Y - camera.Top) * r.glyphs.TileSize
	w := StringWidth(tip) + 8
	if px+w > config.WindowWidth {
		px = config.WindowWidth - w
	}
	vector.DrawFilledRect(screen, float32(px), float32(py), float32(w), float32(r.glyphs.TileSize), tooltipFill, false)
	vector.StrokeRect(screen, float32(px), float32(py), float32(w), float32(r.glyphs.TileSize), 1, tooltipBorder, false)
	r.glyphs.DrawStringAt(screen, tip, px+4, py+(r.glyphs.TileSize-glyphHeight)/2, color.White)
}
