// Package world provides generic 2D grid primitives: rectangles, tilemaps,
// directions and pixel-space points. Game-specific records live in pkg/game/world.
package world

// Rect is an axis-aligned rectangle in grid cells. X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Center returns the centre cell, rounding towards the top-left
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Pad returns the rectangle grown by margin cells on every side
func (r Rect) Pad(margin int) Rect {
	return Rect{
		X: r.X - margin,
		Y: r.Y - margin,
		W: r.W + 2*margin,
		H: r.H + 2*margin,
	}
}

// Intersects reports whether the two rectangles share at least one cell
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W &&
		r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// OnBorder reports whether (x, y) is inside the rectangle and on its outermost ring
func (r Rect) OnBorder(x, y int) bool {
	if !r.Contains(x, y) {
		return false
	}
	return x == r.X || x == r.X+r.W-1 || y == r.Y || y == r.Y+r.H-1
}

// Point is a position in pixel space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Chebyshev returns the chessboard distance between two cells
func Chebyshev(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
