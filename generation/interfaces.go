package generation

import (
	"errors"
	"fmt"
	"strings"

	"dungeon-crawl/components"
)

// Architect identifies a map generation strategy
type Architect int

const (
	// ArchitectRandom picks one of the cave/room builders per level
	ArchitectRandom Architect = iota
	ArchitectEmpty
	ArchitectRooms
	ArchitectCellularAutomata
	ArchitectDrunkardsWalk
)

// ErrUnknownArchitect is returned by ParseArchitect for unrecognised names
var ErrUnknownArchitect = errors.New("generation: unknown architect")

var architectNames = map[Architect]string{
	ArchitectRandom:           "random",
	ArchitectEmpty:            "empty",
	ArchitectRooms:            "rooms",
	ArchitectCellularAutomata: "cellular",
	ArchitectDrunkardsWalk:    "drunkard",
}

func (a Architect) String() string {
	if name, ok := architectNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Architect(%d)", int(a))
}

// ParseArchitect maps a config name to an Architect
func ParseArchitect(name string) (Architect, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ArchitectRandom, nil
	}
	for a, n := range architectNames {
		if n == name {
			return a, nil
		}
	}
	return ArchitectRandom, fmt.Errorf("%w: %q", ErrUnknownArchitect, name)
}

// Level is everything a builder produces for one dungeon floor. The spawn
// glue turns it into entities.
type Level struct {
	Architect   Architect
	Map         *components.Map
	Rooms       []Room
	PlayerStart components.Point
	// AmuletStart holds the amulet on the final level and the exit on
	// every other level
	AmuletStart components.Point
	SpawnPoints []components.Point
	// Vault is the area covered by the fortress overlay, nil when none fit
	Vault *Room
	// Theme is the id of the look the level is drawn with
	Theme string
}

// Theme ids a level can be given
const (
	ThemeDungeon = "dungeon"
	ThemeForest  = "forest"
)

var levelThemes = []string{ThemeDungeon, ThemeForest}

// ExhaustedError is the panic value raised when a builder runs out of
// attempts. Hitting it means the map size or constants cannot work.
type ExhaustedError struct {
	Architect Architect
	What      string
	Attempts  int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("generation: %s builder gave up on %s after %d attempts", e.Architect, e.What, e.Attempts)
}
