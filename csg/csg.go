// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

import "github.com/zos-apps/zmodel/logx"

// Operation names a boolean set operation on two solids.
type Operation int32

const (
	// Union keeps everything in either solid.
	Union Operation = iota

	// Difference keeps the first solid minus the second.
	Difference

	// Intersect keeps only the overlap of the two solids.
	Intersect
)

// String returns the name of the operation.
func (op Operation) String() string {
	switch op {
	case Difference:
		return "difference"
	case Intersect:
		return "intersect"
	}
	return "union"
}

// Combine applies the given boolean operation to the two world-space
// polygon lists and returns the resulting polygon soup. The inputs are
// not modified.
func Combine(op Operation, a, b []Polygon) []Polygon {
	ta := NewBSP(a)
	tb := NewBSP(b)
	var out []Polygon
	switch op {
	case Difference:
		ta.Invert()
		ta.ClipTo(tb)
		tb.ClipTo(ta)
		tb.Invert()
		tb.ClipTo(ta)
		tb.Invert()
		ta.Build(tb.AllPolygons())
		ta.Invert()
		out = ta.AllPolygons()
	case Intersect:
		ta.Invert()
		tb.ClipTo(ta)
		tb.Invert()
		ta.ClipTo(tb)
		tb.ClipTo(ta)
		ta.Build(tb.AllPolygons())
		ta.Invert()
		out = ta.AllPolygons()
	default:
		ta.ClipTo(tb)
		tb.ClipTo(ta)
		tb.Invert()
		tb.ClipTo(ta)
		tb.Invert()
		ta.Build(tb.AllPolygons())
		out = ta.AllPolygons()
	}
	logx.Debug("csg combine", "op", op.String(), "inA", len(a), "inB", len(b), "out", len(out))
	return out
}
