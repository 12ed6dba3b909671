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

// checkInvariants asserts the output contract every operator must
// satisfy: consistent buffer lengths, in-range indices, a canonical
// derived edge set, and unit (or zero) normals.
func checkInvariants(t *testing.T, g *mesh.Geometry) {
	t.Helper()
	assert.NoError(t, g.Validate())

	want := make(map[mesh.Edge]bool)
	for ti := 0; ti < g.NumTriangles(); ti++ {
		for _, e := range triangleEdges(g.Indices, ti) {
			want[e] = true
		}
	}
	got := make(map[mesh.Edge]bool, len(g.Edges))
	for _, e := range g.Edges {
		assert.Less(t, e.A, e.B)
		assert.False(t, got[e], "duplicate edge")
		got[e] = true
	}
	assert.Equal(t, want, got)

	// orientation: two triangles sharing an edge must traverse it in
	// opposite directions, or one of them is wound the wrong way.
	// Edges used more than twice are non-manifold and skipped.
	dirCount := make(map[[2]uint32]int)
	for ti := 0; ti < g.NumTriangles(); ti++ {
		for _, de := range directedEdges(g.Indices, ti) {
			dirCount[de]++
		}
	}
	for _, e := range g.Edges {
		fwd := dirCount[[2]uint32{e.A, e.B}]
		rev := dirCount[[2]uint32{e.B, e.A}]
		if fwd+rev == 2 {
			assert.Equal(t, 1, fwd,
				"edge (%d,%d) traversed twice in the same direction", e.A, e.B)
		}
	}

	for i := 0; i < g.VertexCount; i++ {
		l := g.Normal(i).Length()
		if l != 0 {
			tolassert.EqualTol(t, 1, l, 1e-5)
		}
	}
}

// totalArea sums the area of every triangle.
func totalArea(g *mesh.Geometry) float32 {
	var sum float32
	for ti := 0; ti < g.NumTriangles(); ti++ {
		tri := math32.NewTriangle(
			g.Vertex(int(g.Indices[ti*3])),
			g.Vertex(int(g.Indices[ti*3+1])),
			g.Vertex(int(g.Indices[ti*3+2])),
		)
		sum += tri.Area()
	}
	return sum
}

func boxMesh() *mesh.Mesh {
	return mesh.NewMesh("box", shape.Box(1, 1, 1))
}

func TestExtrude(t *testing.T) {
	m := boxMesh()
	// the +z face of the unit box is triangles 0 and 1
	out := Extrude(m, []int{0, 1}, ExtrudeOptions{Distance: 0.5})
	g := out.Geometry
	checkInvariants(t, g)

	// 4 cloned vertices, 8 side triangles on the 4 boundary edges
	assert.Equal(t, 24+4, g.VertexCount)
	assert.Equal(t, 12+8, g.NumTriangles())

	// the extruded face moved out along +z
	bb := g.BoundingBox()
	tolassert.EqualTol(t, 1.0, bb.Max.Z, 1e-6)

	// the input is untouched
	assert.Equal(t, 24, m.Geometry.VertexCount)
}

func TestExtrudeEmptySelection(t *testing.T) {
	m := boxMesh()
	out := Extrude(m, nil, ExtrudeOptions{Distance: 1})
	assert.Equal(t, m.Geometry.Vertices, out.Geometry.Vertices)
	assert.Equal(t, m.Geometry.Indices, out.Geometry.Indices)
	assert.NotSame(t, m.Geometry, out.Geometry)
}

func TestExtrudeUseNormals(t *testing.T) {
	m := boxMesh()
	out := Extrude(m, []int{0, 1}, ExtrudeOptions{Distance: 0.5, UseNormals: true})
	checkInvariants(t, out.Geometry)
	// +z face vertex normals are +z, so the result matches the average path
	tolassert.EqualTol(t, 1.0, out.Geometry.BoundingBox().Max.Z, 1e-6)
}

func TestExtrudeSideWinding(t *testing.T) {
	// extrude a shared-vertex quad upward: the side walls must face
	// away from the extrusion axis, which only happens when the side
	// quads follow each face's own edge direction
	m := mesh.NewMesh("quad", shape.Plane(1, 1, 1, 1))
	out := Extrude(m, []int{0, 1}, ExtrudeOptions{Distance: 0.5})
	g := out.Geometry
	checkInvariants(t, g)
	assert.Equal(t, 2+8, g.NumTriangles())

	sides := 0
	for ti := 0; ti < g.NumTriangles(); ti++ {
		fn := g.FaceNormal(ti)
		if math32.Abs(fn.Y) > 1e-4 {
			continue
		}
		sides++
		centroid := math32.Vector3{}
		for k := 0; k < 3; k++ {
			centroid.SetAdd(g.Vertex(int(g.Indices[ti*3+k])))
		}
		centroid = centroid.DivScalar(3)
		centroid.Y = 0
		assert.Greater(t, fn.Dot(centroid.Normal()), float32(0),
			"side triangle %d faces inward", ti)
	}
	assert.Equal(t, 8, sides)
}

func TestSubdivide(t *testing.T) {
	m := boxMesh()
	out := Subdivide(m, SubdivideOptions{Iterations: 1})
	g := out.Geometry
	checkInvariants(t, g)

	// 12 triangles become 48; each face contributes 5 shared midpoints
	assert.Equal(t, 48, g.NumTriangles())
	assert.Equal(t, 24+6*5, g.VertexCount)

	// area of the box surface is unchanged by the flat split
	tolassert.EqualTol(t, totalArea(m.Geometry), totalArea(g), 1e-4)
}

func TestSubdivideIterations(t *testing.T) {
	m := boxMesh()
	out := Subdivide(m, SubdivideOptions{Iterations: 2})
	checkInvariants(t, out.Geometry)
	assert.Equal(t, 12*16, out.Geometry.NumTriangles())

	// zero iterations is a no-op
	same := Subdivide(m, SubdivideOptions{})
	assert.Equal(t, m.Geometry.Vertices, same.Geometry.Vertices)
	assert.Equal(t, m.Geometry.Indices, same.Geometry.Indices)
}

func TestSubdivideSmooth(t *testing.T) {
	m := boxMesh()
	out := Subdivide(m, SubdivideOptions{Iterations: 1, Smooth: true})
	g := out.Geometry
	checkInvariants(t, g)
	assert.Equal(t, 48, g.NumTriangles())

	// original corners get pulled inward, midpoints stay put
	bb := g.BoundingBox()
	assert.Less(t, bb.Max.X, float32(0.5+1e-6))
	corner := g.Vertex(0).Length()
	assert.Less(t, corner, math32.Vec3(0.5, 0.5, 0.5).Length())
}
