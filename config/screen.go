package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 16

	// Dungeon dimensions in tiles
	MapWidth  = 80
	MapHeight = 50

	// Viewport dimensions in tiles; the camera keeps the player centred
	DisplayWidth  = MapWidth / 2
	DisplayHeight = MapHeight / 2

	// Rows below the viewport reserved for the HUD
	HUDHeight = 6

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = DisplayWidth * TileSize
	WindowHeight = (DisplayHeight + HUDHeight) * TileSize
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}
