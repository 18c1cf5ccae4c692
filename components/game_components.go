package components

import (
	"image/color"

	"github.com/zyedidia/generic/mapset"

	"dungeon-crawl/ecs"
)

// PositionComponent stores entity position
type PositionComponent struct {
	X, Y int
}

// Point returns the position as a grid point
func (p *PositionComponent) Point() Point {
	return Point{p.X, p.Y}
}

// NewPositionComponent creates a position at the given point
func NewPositionComponent(pt Point) *PositionComponent {
	return &PositionComponent{X: pt.X, Y: pt.Y}
}

// RenderableComponent stores rendering information
type RenderableComponent struct {
	Char rune
	FG   color.Color
}

// NewRenderableComponent creates a renderable component using a character code
func NewRenderableComponent(glyph rune, fg color.Color) *RenderableComponent {
	return &RenderableComponent{
		Char: glyph,
		FG:   fg,
	}
}

// NameComponent stores the display name for entities
type NameComponent struct {
	Name string
}

// NewNameComponent creates a new name component
func NewNameComponent(name string) *NameComponent {
	return &NameComponent{Name: name}
}

// HealthComponent tracks hit points. Current can drop below 1 for the
// rest of the pass that killed the entity.
type HealthComponent struct {
	Current int
	Max     int
}

// NewHealthComponent creates a health component at full health
func NewHealthComponent(max int) *HealthComponent {
	return &HealthComponent{Current: max, Max: max}
}

// Heal restores up to amount, never above Max
func (h *HealthComponent) Heal(amount int) {
	h.Current = min(h.Max, h.Current+amount)
}

// FOVComponent represents an entity's field of vision capabilities
type FOVComponent struct {
	Range        int
	VisibleTiles mapset.Set[Point]
	// Dirty forces a recompute on the next visibility pass
	Dirty bool
}

// NewFOVComponent creates a new FOV component with the specified range.
// It starts dirty so the first visibility pass fills it in.
func NewFOVComponent(visionRange int) *FOVComponent {
	return &FOVComponent{
		Range:        visionRange,
		VisibleTiles: mapset.New[Point](),
		Dirty:        true,
	}
}

// CanSee reports whether pt was visible at the last recompute
func (f *FOVComponent) CanSee(pt Point) bool {
	return f.VisibleTiles.Has(pt)
}

// DamageComponent is the damage dealt by an attacker, or the bonus a
// carried weapon adds
type DamageComponent struct {
	Amount int
}

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct {
	MapLevel int
}

// CarriedComponent marks an item as held by Owner
type CarriedComponent struct {
	Owner ecs.EntityID
}

// ProvidesHealingComponent restores Amount health when used
type ProvidesHealingComponent struct {
	Amount int
}

// WantsToMoveComponent asks the movement system to move Entity
type WantsToMoveComponent struct {
	Entity      ecs.EntityID
	Destination Point
}

// WantsToAttackComponent asks the combat system to resolve one attack
type WantsToAttackComponent struct {
	Attacker ecs.EntityID
	Victim   ecs.EntityID
}

// ActivateItemComponent asks the item system to use Item on behalf of User
type ActivateItemComponent struct {
	User ecs.EntityID
	Item ecs.EntityID
}

// Camera is the viewport window into the map, centred on the player
type Camera struct {
	Left, Right, Top, Bottom int
	width, height            int
}

// NewCamera creates a camera of the given viewport size centred on pt
func NewCamera(pt Point, width, height int) *Camera {
	c := &Camera{width: width, height: height}
	c.OnPlayerMove(pt)
	return c
}

// OnPlayerMove recentres the viewport on pt
func (c *Camera) OnPlayerMove(pt Point) {
	c.Left = pt.X - c.width/2
	c.Right = pt.X + c.width/2
	c.Top = pt.Y - c.height/2
	c.Bottom = pt.Y + c.height/2
}

// Contains reports whether pt falls inside the viewport
func (c Camera) Contains(pt Point) bool {
	return pt.X >= c.Left && pt.X < c.Right && pt.Y >= c.Top && pt.Y < c.Bottom
}
