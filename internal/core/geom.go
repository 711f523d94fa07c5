// Package core provides fundamental types and utilities for the tennis platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is an immutable 2D vector in board units.
// Used for positions, velocities and sizes.
type Vec2 struct {
	X, Y float64
}

// V creates a new vector.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// FromAngle returns the unit vector (cos a, sin a).
// The angle may be any magnitude; no wraparound is required.
func FromAngle(a float64) Vec2 {
	return Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

// Box is an axis-aligned rectangle described by its center and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// Left returns the x-coordinate of the left face.
func (b Box) Left() float64 {
	return b.Center.X - b.Size.X/2
}

// Right returns the x-coordinate of the right face.
func (b Box) Right() float64 {
	return b.Center.X + b.Size.X/2
}

// Top returns the y-coordinate of the top edge (y grows downwards).
func (b Box) Top() float64 {
	return b.Center.Y - b.Size.Y/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Center.Y + b.Size.Y/2
}

// Circle is a disc described by its center and radius.
type Circle struct {
	Center Vec2
	Radius float64
}

// Left returns the leftmost x of the circle.
func (c Circle) Left() float64 {
	return c.Center.X - c.Radius
}

// Right returns the rightmost x of the circle.
func (c Circle) Right() float64 {
	return c.Center.X + c.Radius
}

// Top returns the topmost y of the circle.
func (c Circle) Top() float64 {
	return c.Center.Y - c.Radius
}

// Bottom returns the bottommost y of the circle.
func (c Circle) Bottom() float64 {
	return c.Center.Y + c.Radius
}

// OverlapsVertically reports whether the circle's vertical extent intersects
// the box's vertical extent. Touching edges count as overlap.
func (c Circle) OverlapsVertically(b Box) bool {
	return c.Bottom() >= b.Top() && c.Top() <= b.Bottom()
}

// Rect represents an integer cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
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
