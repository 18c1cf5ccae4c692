package generation

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"dungeon-crawl/components"
	"dungeon-crawl/navigation"
	"dungeon-crawl/rng"
)

const (
	testWidth  = 80
	testHeight = 50
)

func TestEveryArchitectKeepsAmuletReachable(t *testing.T) {
	architects := []Architect{
		ArchitectEmpty,
		ArchitectRooms,
		ArchitectCellularAutomata,
		ArchitectDrunkardsWalk,
		ArchitectRandom,
	}
	for _, a := range architects {
		for seed := int64(1); seed <= 8; seed++ {
			t.Run(fmt.Sprintf("%s/seed=%d", a, seed), func(t *testing.T) {
				level := Generate(seed, a, testWidth, testHeight)
				m := level.Map
				if m.Width != testWidth || m.Height != testHeight {
					t.Fatalf("map is %dx%d", m.Width, m.Height)
				}
				if m.Tile(level.PlayerStart) != components.TileFloor {
					t.Fatalf("player start %v is not floor", level.PlayerStart)
				}
				field := navigation.New(m, []components.Point{level.PlayerStart}, distanceCutoff)
				if !field.Reachable(level.AmuletStart) {
					t.Fatalf("amulet %v unreachable from %v", level.AmuletStart, level.PlayerStart)
				}
				if a != ArchitectRandom && level.Architect != a {
					t.Fatalf("level built by %s", level.Architect)
				}
			})
		}
	}
}

func TestRoomsAreReproducible(t *testing.T) {
	a := Generate(99, ArchitectRooms, testWidth, testHeight)
	b := Generate(99, ArchitectRooms, testWidth, testHeight)
	if !reflect.DeepEqual(a.Rooms, b.Rooms) {
		t.Fatalf("room lists differ for the same seed")
	}
	if !reflect.DeepEqual(a.Map.Tiles, b.Map.Tiles) {
		t.Fatalf("corridor layout differs for the same seed")
	}
	c := Generate(100, ArchitectRooms, testWidth, testHeight)
	if reflect.DeepEqual(a.Rooms, c.Rooms) {
		t.Fatalf("different seeds produced identical rooms")
	}
}

func TestRoomsDoNotOverlap(t *testing.T) {
	g := NewDungeonGenerator(rng.New(5), testWidth, testHeight)
	level := &Level{Map: components.NewMap(testWidth, testHeight)}
	g.buildRooms(level)

	if len(level.Rooms) != numRooms {
		t.Fatalf("built %d rooms, want %d", len(level.Rooms), numRooms)
	}
	for i, a := range level.Rooms {
		for j, b := range level.Rooms {
			if i != j && a.Intersects(b) {
				t.Fatalf("rooms %d and %d overlap: %+v %+v", i, j, a, b)
			}
		}
	}
	if level.PlayerStart != level.Rooms[0].Center() {
		t.Fatalf("player not in first room")
	}
	if len(level.SpawnPoints) != numRooms-1 {
		t.Fatalf("%d spawn points, want one per remaining room", len(level.SpawnPoints))
	}

	// Corridors connect every room.
	field := navigation.New(level.Map, []components.Point{level.PlayerStart}, distanceCutoff)
	for _, r := range level.Rooms {
		if !field.Reachable(r.Center()) {
			t.Fatalf("room at %v not connected", r.Center())
		}
	}
}

func TestRoomsExhaustionPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		var exhausted *ExhaustedError
		if !errors.As(err, &exhausted) || exhausted.Architect != ArchitectRooms {
			t.Fatalf("unexpected panic %v", err)
		}
	}()
	// Every room origin lands on (1,1), so only one room ever fits.
	NewDungeonGenerator(rng.New(1), 12, 12).Generate(ArchitectRooms)
}

func TestDrunkardsWalkStaysConnected(t *testing.T) {
	g := NewDungeonGenerator(rng.New(3), testWidth, testHeight)
	level := &Level{Map: components.NewMap(testWidth, testHeight)}
	g.buildDrunkardsWalk(level)

	m := level.Map
	if floor := m.CountTiles(components.TileFloor); floor < len(m.Tiles)/3 {
		t.Fatalf("only %d floor tiles", floor)
	}
	field := navigation.New(m, []components.Point{m.Center()}, distanceCutoff)
	for idx, tile := range m.Tiles {
		if tile == components.TileFloor && field.Distances[idx] == navigation.Unreachable {
			t.Fatalf("floor tile %v cut off from centre", m.PointAt(idx))
		}
	}
}

func TestEmptySpawnPointsInBounds(t *testing.T) {
	level := Generate(11, ArchitectEmpty, testWidth, testHeight)
	if level.PlayerStart != level.Map.Center() {
		t.Fatalf("player start %v", level.PlayerStart)
	}
	if len(level.SpawnPoints) == 0 {
		t.Fatalf("no spawn points")
	}
	for _, pt := range level.SpawnPoints {
		if !level.Map.InBounds(pt) || pt.X < 1 || pt.Y < 1 {
			t.Fatalf("spawn point %v out of range", pt)
		}
	}
}

func TestParseArchitect(t *testing.T) {
	tests := []struct {
		in      string
		want    Architect
		wantErr bool
	}{
		{"", ArchitectRandom, false},
		{"rooms", ArchitectRooms, false},
		{" Cellular ", ArchitectCellularAutomata, false},
		{"drunkard", ArchitectDrunkardsWalk, false},
		{"bsp", ArchitectRandom, true},
	}
	for _, tt := range tests {
		got, err := ParseArchitect(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseArchitect(%q) err = %v", tt.in, err)
		}
		if err != nil && !errors.Is(err, ErrUnknownArchitect) {
			t.Fatalf("error %v does not wrap ErrUnknownArchitect", err)
		}
		if got != tt.want {
			t.Fatalf("ParseArchitect(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLevelThemes(t *testing.T) {
	seen := map[string]bool{}
	for seed := int64(1); seed <= 32; seed++ {
		level := Generate(seed, ArchitectEmpty, testWidth, testHeight)
		if level.Theme != ThemeDungeon && level.Theme != ThemeForest {
			t.Fatalf("seed %d: unexpected theme %q", seed, level.Theme)
		}
		seen[level.Theme] = true
		if again := Generate(seed, ArchitectEmpty, testWidth, testHeight); again.Theme != level.Theme {
			t.Fatalf("seed %d: theme %q then %q", seed, level.Theme, again.Theme)
		}
	}
	if len(seen) != 2 {
		t.Fatalf("32 seeds only produced themes %v", seen)
	}
}
