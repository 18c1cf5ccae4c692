package generation

import (
	"math"

	"dungeon-crawl/components"
)

// minSpawnDistance keeps cave monsters away from the player start
const minSpawnDistance = 10.0

// countAdjacentWalls counts wall tiles among the 8 neighbours of (x, y)
func countAdjacentWalls(m *components.Map, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if m.Tile(components.Point{X: x + dx, Y: y + dy}) == components.TileWall {
				count++
			}
		}
	}
	return count
}

// pythagoras is the straight-line distance between two tiles
func pythagoras(a, b components.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// spawnMonsters samples up to numMonsterPoints distinct floor tiles that
// are not too close to start
func (g *DungeonGenerator) spawnMonsters(m *components.Map, start components.Point) []components.Point {
	var spawnable []components.Point
	for idx, t := range m.Tiles {
		pt := m.PointAt(idx)
		if t == components.TileFloor && pythagoras(start, pt) > minSpawnDistance {
			spawnable = append(spawnable, pt)
		}
	}

	spawns := make([]components.Point, 0, numMonsterPoints)
	for i := 0; i < numMonsterPoints; i++ {
		idx, ok := g.rng.RandomIndex(len(spawnable))
		if !ok {
			break
		}
		spawns = append(spawns, spawnable[idx])
		spawnable = append(spawnable[:idx], spawnable[idx+1:]...)
	}
	return spawns
}
