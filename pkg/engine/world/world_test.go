package world

import "testing"

func TestRect_Intersects(t *testing.T) {
	r1 := Rect{0, 0, 10, 10}
	r2 := Rect{5, 5, 10, 10} // overlaps
	r3 := Rect{20, 20, 5, 5} // far away
	r4 := Rect{10, 0, 5, 5}  // touches r1's right edge, shares no cell

	if !r1.Intersects(r2) {
		t.Error("r1.Intersects(r2) = false, want true")
	}
	if r1.Intersects(r3) {
		t.Error("r1.Intersects(r3) = true, want false")
	}
	if r1.Intersects(r4) {
		t.Error("r1.Intersects(r4) = true, want false (adjacent, not overlapping)")
	}
	if !r1.Pad(1).Intersects(r4.Pad(1)) {
		t.Error("padded adjacent rects should intersect")
	}
}

func TestRect_PadAndCenter(t *testing.T) {
	r := Rect{30, 20, 8, 6}
	p := r.Pad(2)
	if p != (Rect{28, 18, 12, 10}) {
		t.Errorf("Pad(2) = %+v, want {28 18 12 10}", p)
	}
	x, y := r.Center()
	if x != 34 || y != 23 {
		t.Errorf("Center() = (%d,%d), want (34,23)", x, y)
	}
}

func TestRect_OnBorder(t *testing.T) {
	r := Rect{0, 0, 4, 3}
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{1, 1, false},
		{2, 1, false},
		{4, 1, false}, // outside
	}
	for _, tt := range tests {
		if got := r.OnBorder(tt.x, tt.y); got != tt.want {
			t.Errorf("OnBorder(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestChebyshev(t *testing.T) {
	if got := Chebyshev(0, 0, 3, -1); got != 3 {
		t.Errorf("Chebyshev = %d, want 3", got)
	}
	if got := Chebyshev(5, 5, 4, 6); got != 1 {
		t.Errorf("Chebyshev = %d, want 1", got)
	}
}

func TestTilemap_Bounds(t *testing.T) {
	tm := NewTilemap(4, 3)
	if len(tm.Cells) != 3 || len(tm.Cells[0]) != 4 {
		t.Fatalf("tilemap shape = %dx%d, want 3 rows of 4", len(tm.Cells), len(tm.Cells[0]))
	}
	if !tm.Set(3, 2, CellWall) {
		t.Error("Set(3,2) = false, want true")
	}
	if tm.Set(4, 0, CellWall) {
		t.Error("Set(4,0) = true, want false (out of bounds)")
	}
	if tm.Get(-1, 0) != CellEmpty {
		t.Error("Get out of bounds should be CellEmpty")
	}
	if tm.Count(CellWall) != 1 {
		t.Errorf("Count(CellWall) = %d, want 1", tm.Count(CellWall))
	}
	if e := NewTilemap(-2, 5); e.Width != 0 || len(e.Cells) != 5 {
		t.Errorf("NewTilemap(-2,5) = %dx%d, want 0 width", e.Width, len(e.Cells))
	}
}

func TestDirection_Basics(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() != %v", d, d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v delta not mirrored by opposite", d)
		}
	}
	if North.String() != "North" || Direction(9).String() != "Unknown" {
		t.Error("unexpected direction names")
	}
}

func TestDominantDirection(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   Direction
	}{
		{5, 1, East},
		{-5, 1, West},
		{1, 5, South},
		{1, -5, North},
		{3, 3, East},
		{0, 0, East},
	}
	for _, tt := range tests {
		if got := DominantDirection(tt.dx, tt.dy); got != tt.want {
			t.Errorf("DominantDirection(%v,%v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}
