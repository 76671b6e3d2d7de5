// Package math provides the vector and matrix types used by the tessellator and the
// transform pipeline.
package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle returns atan2(y, x). The zero vector has angle 0.
func (v Vec2) Angle() float32 {
	return math32.Atan2(v.Y, v.X)
}

// Array returns the components as an array (for buffer and export code).
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}
