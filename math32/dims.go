// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims is a list of dimension indexes for 3D vectors.
type Dims int32

const (
	X Dims = iota
	Y
	Z
)

// String returns the name of the dimension.
func (d Dims) String() string {
	switch d {
	case X:
		return "X"
	case Y:
		return "Y"
	default:
		return "Z"
	}
}
