// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zos-apps/zmodel/base/tolassert"
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
	"github.com/zos-apps/zmodel/shape"
)

func TestArraySingleCopyIsNoop(t *testing.T) {
	m := boxMesh()
	out := Array(m, ArrayOptions{Count: 1, Offset: math32.Vec3(5, 0, 0)})
	assert.Equal(t, m.Geometry.Vertices, out.Geometry.Vertices)
	assert.Equal(t, m.Geometry.Indices, out.Geometry.Indices)
}

func TestArrayConstant(t *testing.T) {
	m := boxMesh()
	out := Array(m, ArrayOptions{Count: 3, Offset: math32.Vec3(2, 0, 0)})
	g := out.Geometry
	checkInvariants(t, g)
	assert.Equal(t, 24*3, g.VertexCount)
	assert.Equal(t, 12*3, g.NumTriangles())

	bb := g.BoundingBox()
	tolassert.EqualTol(t, -0.5, bb.Min.X, 1e-6)
	tolassert.EqualTol(t, 4.5, bb.Max.X, 1e-6)
}

func TestArrayRelative(t *testing.T) {
	m := mesh.NewMesh("box", shape.Box(2, 1, 1))
	// relative offset of one box-length along X per copy
	out := Array(m, ArrayOptions{Count: 2, Mode: OffsetRelative, Offset: math32.Vec3(1, 0, 0)})
	bb := out.Geometry.BoundingBox()
	tolassert.EqualTol(t, 3, bb.Max.X, 1e-6)
}

func TestArrayMergeVertices(t *testing.T) {
	// copies of a unit quad offset by exactly its width share a border
	m := mesh.NewMesh("quad", shape.Plane(1, 1, 1, 1))
	out := Array(m, ArrayOptions{
		Count:         2,
		Offset:        math32.Vec3(1, 0, 0),
		MergeVertices: true,
	})
	g := out.Geometry
	checkInvariants(t, g)
	// 2 shared border vertices merge away
	assert.Equal(t, 6, g.VertexCount)
	assert.Equal(t, 4, g.NumTriangles())
}
