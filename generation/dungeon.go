package generation

import (
	"fmt"
	"log/slog"
	"sort"

	"dungeon-crawl/components"
	"dungeon-crawl/navigation"
	"dungeon-crawl/rng"
)

const (
	numRooms         = 20
	maxRoomAttempts  = 10000
	distanceCutoff   = 1024
	numMonsterPoints = 50
)

// DungeonGenerator handles procedural generation of dungeon layouts
type DungeonGenerator struct {
	rng    *rng.RandomNumberGenerator
	width  int
	height int
}

// NewDungeonGenerator creates a generator for width x height maps drawing
// from r
func NewDungeonGenerator(r *rng.RandomNumberGenerator, width, height int) *DungeonGenerator {
	return &DungeonGenerator{
		rng:    r,
		width:  width,
		height: height,
	}
}

// Generate builds a seeded level. Two calls with the same seed and
// architect return identical levels.
func Generate(seed int64, architect Architect, width, height int) *Level {
	return NewDungeonGenerator(rng.New(seed), width, height).Generate(architect)
}

// Generate builds one level with the given architect. It panics with an
// *ExhaustedError when a builder cannot finish.
func (g *DungeonGenerator) Generate(architect Architect) *Level {
	if architect == ArchitectRandom {
		switch g.rng.Range(0, 3) {
		case 0:
			architect = ArchitectDrunkardsWalk
		case 1:
			architect = ArchitectRooms
		default:
			architect = ArchitectCellularAutomata
		}
	}

	level := &Level{
		Architect: architect,
		Map:       components.NewMap(g.width, g.height),
	}
	switch architect {
	case ArchitectEmpty:
		g.buildEmpty(level)
	case ArchitectRooms:
		g.buildRooms(level)
	case ArchitectCellularAutomata:
		g.buildCellularAutomata(level)
	case ArchitectDrunkardsWalk:
		g.buildDrunkardsWalk(level)
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownArchitect, int(architect)))
	}

	amulet, ok := g.findMostDistant(level.Map, level.PlayerStart)
	if !ok {
		panic(&ExhaustedError{Architect: architect, What: "reachable amulet tile", Attempts: 1})
	}
	level.AmuletStart = amulet

	g.applyFortress(level)
	level.Theme = levelThemes[g.rng.Range(0, len(levelThemes))]

	slog.Debug("level generated",
		"architect", architect.String(),
		"theme", level.Theme,
		"rooms", len(level.Rooms),
		"spawns", len(level.SpawnPoints),
		"vault", level.Vault != nil,
	)
	return level
}

// findMostDistant returns the reachable tile farthest from start
func (g *DungeonGenerator) findMostDistant(m *components.Map, start components.Point) (components.Point, bool) {
	field := navigation.New(m, []components.Point{start}, distanceCutoff)
	return field.MostDistant()
}

// Room is an axis-aligned rectangle; X2 and Y2 are exclusive
type Room struct {
	X1, Y1, X2, Y2 int
}

// NewRoom creates a room from its top-left corner and size
func NewRoom(x, y, width, height int) Room {
	return Room{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Center returns the middle tile of the room
func (r Room) Center() components.Point {
	return components.Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether two rooms overlap or touch
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether pt lies inside the room
func (r Room) Contains(pt components.Point) bool {
	return pt.X >= r.X1 && pt.X < r.X2 && pt.Y >= r.Y1 && pt.Y < r.Y2
}

// Each calls fn for every tile of the room, row by row
func (r Room) Each(fn func(pt components.Point)) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			fn(components.Point{X: x, Y: y})
		}
	}
}

// buildRooms scatters non-overlapping rooms and joins them with corridors
func (g *DungeonGenerator) buildRooms(level *Level) {
	m := level.Map
	m.Fill(components.TileWall)

	attempts := 0
	for len(level.Rooms) < numRooms {
		attempts++
		if attempts > maxRoomAttempts {
			panic(&ExhaustedError{Architect: ArchitectRooms, What: "room placement", Attempts: maxRoomAttempts})
		}

		room := NewRoom(
			g.rng.Range(1, m.Width-10),
			g.rng.Range(1, m.Height-10),
			g.rng.Range(2, 10),
			g.rng.Range(2, 10),
		)
		overlap := false
		for _, r := range level.Rooms {
			if r.Intersects(room) {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}

		room.Each(func(pt components.Point) {
			if pt.X > 0 && pt.X < m.Width && pt.Y > 0 && pt.Y < m.Height {
				m.SetTile(pt, components.TileFloor)
			}
		})
		level.Rooms = append(level.Rooms, room)
	}

	g.buildCorridors(m, level.Rooms)

	level.PlayerStart = level.Rooms[0].Center()
	for _, room := range level.Rooms[1:] {
		level.SpawnPoints = append(level.SpawnPoints, room.Center())
	}
}

// buildCorridors joins rooms left to right with L-shaped corridors
func (g *DungeonGenerator) buildCorridors(m *components.Map, rooms []Room) {
	sorted := make([]Room, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Center().X < sorted[j].Center().X
	})

	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1].Center()
		next := sorted[i].Center()
		g.CreateCorridor(m, prev.X, prev.Y, next.X, next.Y)
	}
}

// CreateCorridor carves an L-shaped corridor between two points, picking
// at random whether the horizontal or vertical leg comes first
func (g *DungeonGenerator) CreateCorridor(m *components.Map, x1, y1, x2, y2 int) {
	if g.rng.Range(0, 2) == 1 {
		g.createHorizontalCorridor(m, x1, x2, y1)
		g.createVerticalCorridor(m, y1, y2, x2)
	} else {
		g.createVerticalCorridor(m, y1, y2, x1)
		g.createHorizontalCorridor(m, x1, x2, y2)
	}
}

// createHorizontalCorridor creates a horizontal corridor
func (g *DungeonGenerator) createHorizontalCorridor(m *components.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetTile(components.Point{X: x, Y: y}, components.TileFloor)
	}
}

// createVerticalCorridor creates a vertical corridor
func (g *DungeonGenerator) createVerticalCorridor(m *components.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetTile(components.Point{X: x, Y: y}, components.TileFloor)
	}
}

// buildEmpty opens the whole map and scatters spawn points uniformly
func (g *DungeonGenerator) buildEmpty(level *Level) {
	m := level.Map
	m.Fill(components.TileFloor)
	level.PlayerStart = m.Center()
	for i := 0; i < numMonsterPoints; i++ {
		level.SpawnPoints = append(level.SpawnPoints, components.Point{
			X: g.rng.Range(1, m.Width),
			Y: g.rng.Range(1, m.Height),
		})
	}
}
