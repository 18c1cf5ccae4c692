package systems

import (
	"github.com/zyedidia/generic/mapset"

	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

// FOVSystem handles field of vision calculations
type FOVSystem struct{}

// NewFOVSystem creates a new FOV system
func NewFOVSystem() *FOVSystem {
	return &FOVSystem{}
}

// Update recomputes every dirty field of view. The player's recompute also
// marks its visible tiles as revealed on the map.
func (s *FOVSystem) Update(world *ecs.World, res *Resources, commands *ecs.CommandBuffer) {
	for _, id := range world.Query(components.Position, components.FOV) {
		fovComp, _ := world.GetComponent(id, components.FOV)
		fov := fovComp.(*components.FOVComponent)
		if !fov.Dirty {
			continue
		}
		pos, _ := positionOf(world, id)

		fov.VisibleTiles = CalculateFOV(res.Map, pos.Point(), fov.Range)
		fov.Dirty = false

		if isPlayer(world, id) {
			fov.VisibleTiles.Each(res.Map.Reveal)
		}
	}
}

// CalculateFOV returns the tiles visible from origin within radius. Rays
// run from origin to every tile on the edge of the bounding square; a ray
// stops after the first wall it meets, so walls are visible but what lies
// behind them is not.
func CalculateFOV(m *components.Map, origin components.Point, radius int) mapset.Set[components.Point] {
	visible := mapset.New[components.Point]()
	if !m.InBounds(origin) {
		return visible
	}
	// The origin is always visible
	visible.Put(origin)

	for d := -radius; d <= radius; d++ {
		castRay(m, visible, origin, components.Point{X: origin.X + d, Y: origin.Y - radius}, radius)
		castRay(m, visible, origin, components.Point{X: origin.X + d, Y: origin.Y + radius}, radius)
		castRay(m, visible, origin, components.Point{X: origin.X - radius, Y: origin.Y + d}, radius)
		castRay(m, visible, origin, components.Point{X: origin.X + radius, Y: origin.Y + d}, radius)
	}
	return visible
}

// castRay walks the line from origin towards target and marks tiles it
// passes through as visible
func castRay(m *components.Map, visible mapset.Set[components.Point], origin, target components.Point, radius int) {
	dx := target.X - origin.X
	dy := target.Y - origin.Y
	steps := max(abs(dx), abs(dy))
	for i := 1; i <= steps; i++ {
		pt := components.Point{
			X: origin.X + divRound(dx*i, steps),
			Y: origin.Y + divRound(dy*i, steps),
		}
		if !m.InBounds(pt) {
			return
		}
		ox, oy := pt.X-origin.X, pt.Y-origin.Y
		if ox*ox+oy*oy > radius*radius {
			return
		}
		visible.Put(pt)
		if m.IsOpaque(pt) {
			return
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// divRound divides rounding halves away from zero; n must be positive
func divRound(a, n int) int {
	if a >= 0 {
		return (2*a + n) / (2 * n)
	}
	return -((-2*a + n) / (2 * n))
}
