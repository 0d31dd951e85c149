// Package core provides fundamental types and utilities for the career arcade.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// FieldMin and FieldMax bound the percentage space shared by every play-field.
const (
	FieldMin = 0.0
	FieldMax = 100.0
)

// Vec is a point or velocity in play-field percentage space.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Dist returns the euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Box is an axis-aligned box in percentage space.
// Edges are exclusive: touching boxes do not overlap.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxAround builds a box from a point and the extents on each side of it.
func BoxAround(p Vec, left, right, up, down float64) Box {
	return Box{MinX: p.X - left, MaxX: p.X + right, MinY: p.Y - up, MaxY: p.Y + down}
}

// Overlaps reports whether two boxes share interior area.
// A degenerate box (a point) overlaps when it lies strictly inside the other.
func (b Box) Overlaps(o Box) bool {
	return b.MinX < o.MaxX && o.MinX < b.MaxX && b.MinY < o.MaxY && o.MinY < b.MaxY
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ToCell maps a percentage-space point onto a cell inside the rectangle.
func (r Rect) ToCell(p Vec) (int, int) {
	x := r.X + int(math.Round(p.X/FieldMax*float64(r.W-1)))
	y := r.Y + int(math.Round(p.Y/FieldMax*float64(r.H-1)))
	return x, y
}

// ToPercent maps a cell onto percentage space relative to the rectangle.
// Cells outside the rectangle map outside [0, 100]; callers clamp.
func (r Rect) ToPercent(x, y int) Vec {
	w := float64(Max(r.W-1, 1))
	h := float64(Max(r.H-1, 1))
	return Vec{
		X: float64(x-r.X) / w * FieldMax,
		Y: float64(y-r.Y) / h * FieldMax,
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
// NaN clamps to lo so a bad random input can never escape the field.
func ClampF(val, lo, hi float64) float64 {
	if math.IsNaN(val) || val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
