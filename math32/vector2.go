// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector2 is a 2D vector with X and Y components, used for
// texture (UV) coordinates.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// Add adds the other given vector to this one and returns the result.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Lerp returns the linear interpolation between this vector and the other
// vector at parameter t.
func (v Vector2) Lerp(other Vector2, t float32) Vector2 {
	return Vec2(v.X+(other.X-v.X)*t, v.Y+(other.Y-v.Y)*t)
}

// FromArray sets this vector's components from the given array,
// starting at the given offset.
func (v *Vector2) FromArray(array []float32, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
}

// ToArray copies this vector's components to the given array,
// starting at the given offset.
func (v Vector2) ToArray(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
}
