// Package core provides fundamental types and utilities for the slide platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Point is a position in screen cells. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect represents an axis-aligned box with exclusive right and bottom edges.
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

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Moved returns the rectangle translated by (dx, dy).
func (r Rect) Moved(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Bounds is an inclusive rectangle: both Min and Max corners are inside.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether p lies inside the bounds, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
