// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// ArrayF32 is a slice of float32 holding packed vector data,
// such as XYZ vertex positions or UV texture coordinates.
type ArrayF32 []float32

// NewArrayF32 returns a new [ArrayF32] with the given length.
func NewArrayF32(size int) ArrayF32 {
	return make(ArrayF32, size)
}

// Clone returns a copy of this array.
func (a ArrayF32) Clone() ArrayF32 {
	c := make(ArrayF32, len(a))
	copy(c, a)
	return c
}

// NumVector3 returns the number of [Vector3] elements in this array.
func (a ArrayF32) NumVector3() int {
	return len(a) / 3
}

// Vector3 returns the [Vector3] starting at element index i (i-th vector,
// not float offset).
func (a ArrayF32) Vector3(i int) Vector3 {
	var v Vector3
	v.FromArray(a, i*3)
	return v
}

// SetVector3 sets the [Vector3] at element index i.
func (a ArrayF32) SetVector3(i int, v Vector3) {
	v.ToArray(a, i*3)
}

// AppendVector3 appends the given vectors and returns the extended array.
func (a ArrayF32) AppendVector3(vs ...Vector3) ArrayF32 {
	for _, v := range vs {
		a = append(a, v.X, v.Y, v.Z)
	}
	return a
}

// Vector2 returns the [Vector2] starting at element index i.
func (a ArrayF32) Vector2(i int) Vector2 {
	var v Vector2
	v.FromArray(a, i*2)
	return v
}

// SetVector2 sets the [Vector2] at element index i.
func (a ArrayF32) SetVector2(i int, v Vector2) {
	v.ToArray(a, i*2)
}

// AppendVector2 appends the given vectors and returns the extended array.
func (a ArrayF32) AppendVector2(vs ...Vector2) ArrayF32 {
	for _, v := range vs {
		a = append(a, v.X, v.Y)
	}
	return a
}

// ArrayU32 is a slice of uint32 holding triangle vertex indices.
type ArrayU32 []uint32

// NewArrayU32 returns a new [ArrayU32] with the given length.
func NewArrayU32(size int) ArrayU32 {
	return make(ArrayU32, size)
}

// Clone returns a copy of this array.
func (a ArrayU32) Clone() ArrayU32 {
	c := make(ArrayU32, len(a))
	copy(c, a)
	return c
}
