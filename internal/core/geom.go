// Package core provides fundamental types and utilities for the cube arcade.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or extent in world units.
// World space has its origin at the field center and Y pointing up.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s on both axes.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Overlaps reports whether two axis-aligned boxes given by center and
// half-extent intersect. Touching edges do not count as overlap.
func Overlaps(centerA, halfA, centerB, halfB Vec2) bool {
	return math.Abs(centerA.X-centerB.X) < halfA.X+halfB.X &&
		math.Abs(centerA.Y-centerB.Y) < halfA.Y+halfB.Y
}

// ToView maps a world position onto a w by h view of a field of the given
// size. The view origin is the top-left corner with Y pointing down, so the
// field center lands in the middle of the view.
func ToView(v, field Vec2, w, h float64) (x, y float64) {
	x = (v.X + field.X/2) / field.X * w
	y = (field.Y/2 - v.Y) / field.Y * h
	return x, y
}

// Rect represents an axis-aligned box in screen cells, used for drawing.
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
