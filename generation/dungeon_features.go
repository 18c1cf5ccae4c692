package generation

import (
	"log/slog"
	"strings"

	"dungeon-crawl/components"
	"dungeon-crawl/navigation"
)

// Vault layout: '#' wall, '-' floor, 'M' floor with a monster.
const fortressLayout = `
------------
---######---
---#----#---
---#-M--#---
-###----###-
--M------M--
-###----###-
---#----#---
---#----#---
---######---
------------
`

const (
	fortressWidth    = 12
	fortressHeight   = 11
	maxVaultAttempts = 10
	// A vault tile must be farther than this from the player
	vaultMinDistance = 20
	vaultMaxDistance = 2000
)

// fortressRows is the layout split into rows of exactly fortressWidth
func fortressRows() []string {
	return strings.Fields(fortressLayout)
}

// applyFortress tries to stamp the fortress vault somewhere away from the
// player. It never covers the player or the amulet, and it is undone if it
// cuts the amulet off. Not finding a spot is fine.
func (g *DungeonGenerator) applyFortress(level *Level) {
	m := level.Map
	if m.Width <= fortressWidth || m.Height <= fortressHeight {
		return
	}
	field := navigation.New(m, []components.Point{level.PlayerStart}, distanceCutoff)

	for attempt := 0; attempt < maxVaultAttempts; attempt++ {
		area := NewRoom(
			g.rng.Range(0, m.Width-fortressWidth),
			g.rng.Range(0, m.Height-fortressHeight),
			fortressWidth,
			fortressHeight,
		)
		if area.Contains(level.PlayerStart) || area.Contains(level.AmuletStart) {
			continue
		}

		canPlace := false
		area.Each(func(pt components.Point) {
			d := field.At(pt)
			if d > vaultMinDistance && d < vaultMaxDistance {
				canPlace = true
			}
		})
		if !canPlace {
			continue
		}

		saved := g.stampFortress(m, area)
		check := navigation.New(m, []components.Point{level.PlayerStart}, distanceCutoff)
		if !check.Reachable(level.AmuletStart) {
			for i, pt := range saved.points {
				m.SetTile(pt, saved.tiles[i])
			}
			continue
		}

		var spawns []components.Point
		for _, pt := range level.SpawnPoints {
			if !area.Contains(pt) {
				spawns = append(spawns, pt)
			}
		}
		level.SpawnPoints = append(spawns, saved.monsters...)
		level.Vault = &area
		slog.Debug("fortress placed", "x", area.X1, "y", area.Y1, "attempt", attempt+1)
		return
	}
	slog.Debug("no room for fortress", "attempts", maxVaultAttempts)
}

type stampResult struct {
	points   []components.Point
	tiles    []components.TileType
	monsters []components.Point
}

// stampFortress writes the layout into area and returns the overwritten
// tiles plus the monster points
func (g *DungeonGenerator) stampFortress(m *components.Map, area Room) stampResult {
	var res stampResult
	for dy, row := range fortressRows() {
		for dx, c := range row {
			pt := components.Point{X: area.X1 + dx, Y: area.Y1 + dy}
			res.points = append(res.points, pt)
			res.tiles = append(res.tiles, m.Tile(pt))
			switch c {
			case '#':
				m.SetTile(pt, components.TileWall)
			case 'M':
				m.SetTile(pt, components.TileFloor)
				res.monsters = append(res.monsters, pt)
			default:
				m.SetTile(pt, components.TileFloor)
			}
		}
	}
	return res
}
