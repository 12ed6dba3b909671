// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zos-apps/zmodel/mesh"
	"github.com/zos-apps/zmodel/shape"
)

func TestDecimateNoop(t *testing.T) {
	m := boxMesh()
	out := Decimate(m, DecimateOptions{Ratio: 1})
	assert.Equal(t, m.Geometry.Vertices, out.Geometry.Vertices)
	assert.Equal(t, m.Geometry.Indices, out.Geometry.Indices)
}

func TestDecimateHalf(t *testing.T) {
	m := mesh.NewMesh("sphere", shape.Sphere(1, 12, 8))
	before := m.Geometry.NumTriangles()
	out := Decimate(m, DecimateOptions{Ratio: 0.5})
	g := out.Geometry
	checkInvariants(t, g)
	assert.LessOrEqual(t, g.NumTriangles(), before/2)
	assert.GreaterOrEqual(t, g.NumTriangles(), 4)
	// the input is untouched
	assert.Equal(t, before, m.Geometry.NumTriangles())
}

func TestDecimateFloor(t *testing.T) {
	m := mesh.NewMesh("sphere", shape.Sphere(1, 8, 6))
	out := Decimate(m, DecimateOptions{Ratio: 0})
	g := out.Geometry
	assert.NoError(t, g.Validate())
	assert.Equal(t, 4, g.NumTriangles())
}

func TestDecimateModesAccepted(t *testing.T) {
	m := mesh.NewMesh("sphere", shape.Sphere(1, 8, 6))
	for _, mode := range []DecimateMode{DecimateCollapse, DecimatePlanar, DecimateUnsubdivide} {
		out := Decimate(m, DecimateOptions{Ratio: 0.5, Mode: mode})
		assert.NoError(t, out.Geometry.Validate())
		assert.Greater(t, out.Geometry.NumTriangles(), 0)
	}
}

func TestDecimatePreservesFlatness(t *testing.T) {
	// decimating a flat grid keeps every vertex in the plane: the
	// midpoint collapse of a planar edge stays planar
	m := mesh.NewMesh("grid", shape.Plane(2, 2, 4, 4))
	out := Decimate(m, DecimateOptions{Ratio: 0.5})
	g := out.Geometry
	checkInvariants(t, g)
	for i := 0; i < g.VertexCount; i++ {
		assert.InDelta(t, 0, float64(g.Vertex(i).Y), 1e-6)
	}
}
