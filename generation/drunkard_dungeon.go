package generation

import (
	"dungeon-crawl/components"
	"dungeon-crawl/navigation"
)

const (
	staggerDistance = 400
	maxDrunkards    = 10000
)

// buildDrunkardsWalk carves caves with random walkers until a third of the
// map is floor. Walks that end up disconnected from the centre are walled
// off again.
func (g *DungeonGenerator) buildDrunkardsWalk(level *Level) {
	m := level.Map
	m.Fill(components.TileWall)
	center := m.Center()
	g.drunkard(m, center)

	desiredFloor := len(m.Tiles) / 3
	walkers := 0
	for m.CountTiles(components.TileFloor) < desiredFloor {
		walkers++
		if walkers > maxDrunkards {
			panic(&ExhaustedError{Architect: ArchitectDrunkardsWalk, What: "floor coverage", Attempts: maxDrunkards})
		}

		g.drunkard(m, components.Point{
			X: g.rng.Range(0, m.Width),
			Y: g.rng.Range(0, m.Height),
		})

		field := navigation.New(m, []components.Point{center}, distanceCutoff)
		for idx, d := range field.Distances {
			if d == navigation.Unreachable {
				m.Tiles[idx] = components.TileWall
			}
		}
	}

	level.PlayerStart = center
	level.SpawnPoints = g.spawnMonsters(m, center)
}

// drunkard carves floor along one random walk
func (g *DungeonGenerator) drunkard(m *components.Map, start components.Point) {
	pos := start
	staggered := 0
	for {
		m.SetTile(pos, components.TileFloor)
		switch g.rng.Range(0, 4) {
		case 0:
			pos.X--
		case 1:
			pos.X++
		case 2:
			pos.Y--
		default:
			pos.Y++
		}
		if !m.InBounds(pos) {
			break
		}
		staggered++
		if staggered > staggerDistance {
			break
		}
	}
}
