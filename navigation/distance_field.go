package navigation

import (
	"math"

	"dungeon-crawl/components"
)

// Unreachable is the distance of tiles that no source reaches within the
// cutoff
const Unreachable = math.MaxInt32

// neighbors is the fixed expansion and tie-break order: west, east, north,
// south
var neighbors = [4]components.Point{
	{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1},
}

// DistanceField holds, for every tile, the number of 4-directional steps to
// the nearest source. All steps cost 1, so a breadth-first sweep gives the
// same result as Dijkstra.
type DistanceField struct {
	Width     int
	Height    int
	Cutoff    int
	Distances []int
	passable  func(idx int) bool
}

// New builds a field over m from the given sources, treating tiles an
// entity can enter as passable
func New(m *components.Map, sources []components.Point, cutoff int) *DistanceField {
	idxs := make([]int, 0, len(sources))
	for _, s := range sources {
		if idx, ok := m.TryIdx(s); ok {
			idxs = append(idxs, idx)
		}
	}
	return NewWithPredicate(m.Width, m.Height, idxs, m.CanEnterIdx, cutoff)
}

// NewWithPredicate builds a field over a width x height grid. Sources are
// row-major indices and always get distance 0, passable or not. Tiles
// farther than cutoff are left Unreachable.
func NewWithPredicate(width, height int, sources []int, passable func(idx int) bool, cutoff int) *DistanceField {
	f := &DistanceField{
		Width:     width,
		Height:    height,
		Cutoff:    cutoff,
		Distances: make([]int, width*height),
		passable:  passable,
	}
	for i := range f.Distances {
		f.Distances[i] = Unreachable
	}

	queue := make([]int, 0, len(sources))
	for _, s := range sources {
		if s < 0 || s >= len(f.Distances) || f.Distances[s] == 0 {
			continue
		}
		f.Distances[s] = 0
		queue = append(queue, s)
	}

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		next := f.Distances[idx] + 1
		if next > cutoff {
			continue
		}
		for _, n := range f.exits(idx) {
			if f.Distances[n] == Unreachable {
				f.Distances[n] = next
				queue = append(queue, n)
			}
		}
	}
	return f
}

// exits lists the passable neighbours of idx in tie-break order
func (f *DistanceField) exits(idx int) []int {
	x, y := idx%f.Width, idx/f.Width
	out := make([]int, 0, 4)
	for _, d := range neighbors {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= f.Width || ny < 0 || ny >= f.Height {
			continue
		}
		n := ny*f.Width + nx
		if f.passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// At returns the distance at pt, Unreachable when off the grid
func (f *DistanceField) At(pt components.Point) int {
	if pt.X < 0 || pt.X >= f.Width || pt.Y < 0 || pt.Y >= f.Height {
		return Unreachable
	}
	return f.Distances[pt.Y*f.Width+pt.X]
}

// Reachable reports whether pt has a finite distance
func (f *DistanceField) Reachable(pt components.Point) bool {
	return f.At(pt) != Unreachable
}

// MostDistant returns the reachable tile with the largest distance. On ties
// the highest index wins.
func (f *DistanceField) MostDistant() (components.Point, bool) {
	best, bestDist := -1, -1
	for idx, d := range f.Distances {
		if d != Unreachable && d >= bestDist {
			best, bestDist = idx, d
		}
	}
	if best < 0 {
		return components.Point{}, false
	}
	return components.Point{X: best % f.Width, Y: best / f.Width}, true
}

// LowestExit returns the passable neighbour of pt closest to a source,
// i.e. one step along a shortest path. The first neighbour in west, east,
// north, south order wins ties. It reports false when no neighbour has a
// finite distance.
func (f *DistanceField) LowestExit(pt components.Point) (components.Point, bool) {
	if pt.X < 0 || pt.X >= f.Width || pt.Y < 0 || pt.Y >= f.Height {
		return components.Point{}, false
	}
	best, bestDist := -1, Unreachable
	for _, n := range f.exits(pt.Y*f.Width + pt.X) {
		if f.Distances[n] < bestDist {
			best, bestDist = n, f.Distances[n]
		}
	}
	if best < 0 {
		return components.Point{}, false
	}
	return components.Point{X: best % f.Width, Y: best / f.Width}, true
}
