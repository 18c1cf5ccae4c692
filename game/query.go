package game

import (
	"fmt"
	"image/color"
	"sort"

	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
	"dungeon-crawl/generation"
	"dungeon-crawl/systems"
)

// Renderable is one drawable entity on the map
type Renderable struct {
	ID    ecs.EntityID
	Point components.Point
	Glyph rune
	Color color.Color
}

// TurnState returns the current phase
func (s *State) TurnState() systems.TurnState {
	return s.res.TurnState
}

// Map returns the current tile grid and its revealed memory. Callers must
// not modify it.
func (s *State) Map() *components.Map {
	return s.res.Map
}

// Level returns what the generator produced for the current level
func (s *State) Level() *generation.Level {
	return s.level
}

// Player returns the player entity
func (s *State) Player() ecs.EntityID {
	return systems.FindPlayer(s.world)
}

// Renderables lists every entity with a position and a glyph, ordered by
// entity id
func (s *State) Renderables() []Renderable {
	ids := s.world.Query(components.Position, components.Renderable)
	out := make([]Renderable, 0, len(ids))
	for _, id := range ids {
		posComp, _ := s.world.GetComponent(id, components.Position)
		renderComp, _ := s.world.GetComponent(id, components.Renderable)
		r := renderComp.(*components.RenderableComponent)
		out = append(out, Renderable{
			ID:    id,
			Point: posComp.(*components.PositionComponent).Point(),
			Glyph: r.Char,
			Color: r.FG,
		})
	}
	return out
}

// PlayerVisibleTiles returns the player's field of view in row-major order
func (s *State) PlayerVisibleTiles() []components.Point {
	fov := s.playerFOV()
	if fov == nil {
		return nil
	}
	tiles := make([]components.Point, 0, fov.VisibleTiles.Size())
	fov.VisibleTiles.Each(func(pt components.Point) {
		tiles = append(tiles, pt)
	})
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Y != tiles[j].Y {
			return tiles[i].Y < tiles[j].Y
		}
		return tiles[i].X < tiles[j].X
	})
	return tiles
}

// PlayerCanSee reports whether pt is in the player's field of view
func (s *State) PlayerCanSee(pt components.Point) bool {
	fov := s.playerFOV()
	return fov != nil && fov.CanSee(pt)
}

func (s *State) playerFOV() *components.FOVComponent {
	comp, ok := s.world.GetComponent(s.Player(), components.FOV)
	if !ok {
		return nil
	}
	return comp.(*components.FOVComponent)
}

// PlayerHealth returns a copy of the player's health
func (s *State) PlayerHealth() components.HealthComponent {
	comp, ok := s.world.GetComponent(s.Player(), components.Health)
	if !ok {
		return components.HealthComponent{}
	}
	return *comp.(*components.HealthComponent)
}

// CarriedItemNames lists the player's inventory in slot order
func (s *State) CarriedItemNames() []string {
	var names []string
	for _, item := range systems.CarriedBy(s.world, s.Player()) {
		if comp, ok := s.world.GetComponent(item, components.Name); ok {
			names = append(names, comp.(*components.NameComponent).Name)
		}
	}
	return names
}

// MapLevel returns the zero-based dungeon depth
func (s *State) MapLevel() int {
	comp, ok := s.world.GetComponent(s.Player(), components.Player)
	if !ok {
		return 0
	}
	return comp.(*components.PlayerComponent).MapLevel
}

// FinalLevel returns the depth that holds the amulet
func (s *State) FinalLevel() int {
	return s.res.FinalLevel
}

// Messages returns the n most recent log lines, newest first
func (s *State) Messages(n int) []string {
	return s.res.Log.RecentMessages(n)
}

// ColoredMessages is Messages with each line's kind
func (s *State) ColoredMessages(n int) []systems.ColoredMessage {
	return s.res.Log.RecentColored(n)
}

// Camera returns the current viewport
func (s *State) Camera() components.Camera {
	return *s.res.Camera
}

// Pointer returns the map tile under the pointer as of the last Tick
func (s *State) Pointer() components.Point {
	return s.res.Pointer
}

// TooltipAt describes the named entity on pt, if the player can see it.
// Creatures include their health.
func (s *State) TooltipAt(pt components.Point) (string, bool) {
	if !s.PlayerCanSee(pt) {
		return "", false
	}
	for _, id := range s.world.Query(components.Position, components.Name) {
		posComp, _ := s.world.GetComponent(id, components.Position)
		if posComp.(*components.PositionComponent).Point() != pt {
			continue
		}
		nameComp, _ := s.world.GetComponent(id, components.Name)
		name := nameComp.(*components.NameComponent).Name
		if hComp, ok := s.world.GetComponent(id, components.Health); ok {
			h := hComp.(*components.HealthComponent)
			return fmt.Sprintf("%s: %d hp", name, h.Current), true
		}
		return name, true
	}
	return "", false
}
