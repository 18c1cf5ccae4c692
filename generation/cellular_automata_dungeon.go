package generation

import (
	"dungeon-crawl/components"
)

const (
	cellularIterations = 10
	// A noise roll in [0,100) above this becomes floor
	cellularFloorRoll = 55
)

// buildCellularAutomata grows caves from random noise
func (g *DungeonGenerator) buildCellularAutomata(level *Level) {
	m := level.Map
	g.randomNoiseMap(m)
	for i := 0; i < cellularIterations; i++ {
		SmoothCellularAutomata(m)
	}
	level.PlayerStart = findStart(m)
	level.SpawnPoints = g.spawnMonsters(m, level.PlayerStart)
}

// randomNoiseMap seeds every tile independently
func (g *DungeonGenerator) randomNoiseMap(m *components.Map) {
	for i := range m.Tiles {
		if g.rng.Range(0, 100) > cellularFloorRoll {
			m.Tiles[i] = components.TileFloor
		} else {
			m.Tiles[i] = components.TileWall
		}
	}
}

// SmoothCellularAutomata runs one pass of the majority rule over the
// interior of m. A tile with more than four wall neighbours, or none at all,
// becomes wall; anything else becomes floor. The border ring is untouched.
func SmoothCellularAutomata(m *components.Map) {
	next := make([]components.TileType, len(m.Tiles))
	copy(next, m.Tiles)
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			walls := countAdjacentWalls(m, x, y)
			idx := m.Idx(x, y)
			if walls > 4 || walls == 0 {
				next[idx] = components.TileWall
			} else {
				next[idx] = components.TileFloor
			}
		}
	}
	m.Tiles = next
}

// findStart picks the floor tile closest to the map centre
func findStart(m *components.Map) components.Point {
	center := m.Center()
	best, bestDist := -1, 0.0
	for idx, t := range m.Tiles {
		if t != components.TileFloor {
			continue
		}
		d := pythagoras(center, m.PointAt(idx))
		if best < 0 || d < bestDist {
			best, bestDist = idx, d
		}
	}
	if best < 0 {
		panic(&ExhaustedError{Architect: ArchitectCellularAutomata, What: "floor tile for player start", Attempts: 1})
	}
	return m.PointAt(best)
}
