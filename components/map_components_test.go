package components

import "testing"

func TestMapPassability(t *testing.T) {
	m := NewMap(5, 4)
	m.SetTile(Point{1, 1}, TileFloor)
	m.SetTile(Point{2, 1}, TileExit)

	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"floor", Point{1, 1}, true},
		{"exit", Point{2, 1}, true},
		{"wall", Point{3, 1}, false},
		{"left of grid", Point{-1, 1}, false},
		{"below grid", Point{1, 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.CanEnterTile(tt.pt); got != tt.want {
				t.Fatalf("CanEnterTile(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}

	if !m.IsOpaque(Point{-3, 0}) {
		t.Errorf("off-grid tiles should block sight")
	}
}

func TestMapIndexRoundTrip(t *testing.T) {
	m := NewMap(7, 3)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx, ok := m.TryIdx(Point{x, y})
			if !ok {
				t.Fatalf("TryIdx(%d,%d) out of bounds", x, y)
			}
			if got := m.PointAt(idx); got != (Point{x, y}) {
				t.Fatalf("PointAt(%d) = %v, want (%d,%d)", idx, got, x, y)
			}
		}
	}
	if _, ok := m.TryIdx(Point{7, 0}); ok {
		t.Fatalf("TryIdx accepted x == width")
	}
}

func TestRevealIsSticky(t *testing.T) {
	m := NewMap(4, 4)
	m.Reveal(Point{2, 2})
	m.SetTile(Point{2, 2}, TileFloor)
	if !m.IsRevealed(Point{2, 2}) {
		t.Fatalf("tile forgot it was revealed")
	}
	m.RevealAll()
	for i, r := range m.Revealed {
		if !r {
			t.Fatalf("index %d not revealed after RevealAll", i)
		}
	}
}

func TestHealClamps(t *testing.T) {
	h := &HealthComponent{Current: 6, Max: 10}
	h.Heal(4)
	if h.Current != 10 {
		t.Fatalf("Heal(4) on 6/10 = %d", h.Current)
	}
	h.Heal(5)
	if h.Current != 10 {
		t.Fatalf("Heal overflowed max: %d", h.Current)
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	c := NewCamera(Point{40, 25}, 40, 25)
	if c.Left != 20 || c.Right != 60 || c.Top != 13 || c.Bottom != 37 {
		t.Fatalf("unexpected camera %+v", *c)
	}
	c.OnPlayerMove(Point{10, 10})
	if !c.Contains(Point{10, 10}) {
		t.Fatalf("camera does not contain player after move")
	}
}

func TestCameraCopyContains(t *testing.T) {
	snapshot := func() Camera { return *NewCamera(Point{40, 25}, 40, 25) }
	tests := []struct {
		pt   Point
		want bool
	}{
		{Point{20, 13}, true},
		{Point{59, 36}, true},
		{Point{60, 25}, false},
		{Point{40, 12}, false},
	}
	for _, tt := range tests {
		if got := snapshot().Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}
