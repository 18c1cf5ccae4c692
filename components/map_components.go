package components

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// Add returns p shifted by d
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// TileType is the contents of one map cell
type TileType int

// Tile types
const (
	TileWall TileType = iota
	TileFloor
	TileExit
)

// Map stores one dungeon level: a fixed-size, row-major tile grid plus the
// tiles the player has ever seen on it.
type Map struct {
	Width    int
	Height   int
	Tiles    []TileType
	Revealed []bool
}

// NewMap creates a new map with the given dimensions, walls everywhere
func NewMap(width, height int) *Map {
	m := &Map{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileType, width*height),
		Revealed: make([]bool, width*height),
	}
	m.Fill(TileWall)
	return m
}

// Idx converts a point to its row-major index. The point must be in bounds.
func (m *Map) Idx(x, y int) int {
	return y*m.Width + x
}

// PointAt converts an index back to a point
func (m *Map) PointAt(idx int) Point {
	return Point{idx % m.Width, idx / m.Width}
}

// Center returns the middle tile
func (m *Map) Center() Point {
	return Point{m.Width / 2, m.Height / 2}
}

// InBounds reports whether pt lies on the grid
func (m *Map) InBounds(pt Point) bool {
	return pt.X >= 0 && pt.X < m.Width && pt.Y >= 0 && pt.Y < m.Height
}

// TryIdx returns the index of pt, or false when it is off the grid
func (m *Map) TryIdx(pt Point) (int, bool) {
	if !m.InBounds(pt) {
		return 0, false
	}
	return m.Idx(pt.X, pt.Y), true
}

// Tile returns the tile at pt; off-grid reads as wall
func (m *Map) Tile(pt Point) TileType {
	idx, ok := m.TryIdx(pt)
	if !ok {
		return TileWall
	}
	return m.Tiles[idx]
}

// SetTile sets the tile at the given position
func (m *Map) SetTile(pt Point, t TileType) {
	if idx, ok := m.TryIdx(pt); ok {
		m.Tiles[idx] = t
	}
}

// Fill sets every tile to t
func (m *Map) Fill(t TileType) {
	for i := range m.Tiles {
		m.Tiles[i] = t
	}
}

// CanEnterTile reports whether an entity may stand on pt
func (m *Map) CanEnterTile(pt Point) bool {
	t := m.Tile(pt)
	return m.InBounds(pt) && (t == TileFloor || t == TileExit)
}

// CanEnterIdx is CanEnterTile for an in-bounds index
func (m *Map) CanEnterIdx(idx int) bool {
	t := m.Tiles[idx]
	return t == TileFloor || t == TileExit
}

// IsOpaque reports whether pt blocks sight
func (m *Map) IsOpaque(pt Point) bool {
	return m.Tile(pt) == TileWall
}

// CountTiles returns how many tiles equal t
func (m *Map) CountTiles(t TileType) int {
	n := 0
	for _, tile := range m.Tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Reveal marks pt as seen. Revealed tiles stay revealed for the life of
// the map.
func (m *Map) Reveal(pt Point) {
	if idx, ok := m.TryIdx(pt); ok {
		m.Revealed[idx] = true
	}
}

// RevealAll marks the whole map as seen
func (m *Map) RevealAll() {
	for i := range m.Revealed {
		m.Revealed[i] = true
	}
}

// IsRevealed reports whether the player has seen pt
func (m *Map) IsRevealed(pt Point) bool {
	idx, ok := m.TryIdx(pt)
	return ok && m.Revealed[idx]
}
