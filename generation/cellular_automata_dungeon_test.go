package generation

import (
	"reflect"
	"testing"

	"dungeon-crawl/components"
	"dungeon-crawl/rng"
)

// corridorMap is walls with a two-row corridor running the full width.
// Every interior tile already satisfies the majority rule.
func corridorMap() *components.Map {
	m := components.NewMap(12, 10)
	for x := 0; x < m.Width; x++ {
		m.SetTile(components.Point{X: x, Y: 2}, components.TileFloor)
		m.SetTile(components.Point{X: x, Y: 3}, components.TileFloor)
	}
	return m
}

func TestSmoothingStableGridIsFixedPoint(t *testing.T) {
	tests := []struct {
		name string
		m    *components.Map
	}{
		{"solid rock", components.NewMap(10, 10)},
		{"corridor", corridorMap()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]components.TileType(nil), tt.m.Tiles...)
			SmoothCellularAutomata(tt.m)
			SmoothCellularAutomata(tt.m)
			if !reflect.DeepEqual(before, tt.m.Tiles) {
				t.Fatalf("stable grid changed under smoothing")
			}
		})
	}
}

func TestSmoothingLeavesBorderAlone(t *testing.T) {
	m := components.NewMap(8, 8)
	m.Fill(components.TileFloor)
	SmoothCellularAutomata(m)
	for x := 0; x < m.Width; x++ {
		if m.Tile(components.Point{X: x}) != components.TileFloor {
			t.Fatalf("border tile (%d,0) rewritten", x)
		}
	}
	// Open floor has no wall neighbours, so the interior fills in.
	if m.Tile(components.Point{X: 4, Y: 4}) != components.TileWall {
		t.Fatalf("isolated interior floor survived")
	}
}

func TestCaveSpawnsAwayFromStart(t *testing.T) {
	g := NewDungeonGenerator(rng.New(8), testWidth, testHeight)
	level := &Level{Map: components.NewMap(testWidth, testHeight)}
	g.buildCellularAutomata(level)

	seen := map[components.Point]bool{}
	for _, pt := range level.SpawnPoints {
		if seen[pt] {
			t.Fatalf("spawn point %v sampled twice", pt)
		}
		seen[pt] = true
		if level.Map.Tile(pt) != components.TileFloor {
			t.Fatalf("spawn point %v not on floor", pt)
		}
		if pythagoras(pt, level.PlayerStart) <= minSpawnDistance {
			t.Fatalf("spawn point %v too close to start %v", pt, level.PlayerStart)
		}
	}
	if len(level.SpawnPoints) > numMonsterPoints {
		t.Fatalf("%d spawn points", len(level.SpawnPoints))
	}
}
