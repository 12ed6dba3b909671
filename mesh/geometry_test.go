// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zos-apps/zmodel/base/tolassert"
	"github.com/zos-apps/zmodel/math32"
)

// twoTriangles is a quad in the XY plane split along the diagonal.
func twoTriangles() *Geometry {
	vertices := math32.ArrayF32{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
	}
	normals := math32.ArrayF32{
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
	}
	uvs := math32.ArrayF32{0, 0, 1, 0, 1, 1, 0, 1}
	indices := math32.ArrayU32{0, 1, 2, 0, 2, 3}
	return NewGeometry(vertices, normals, uvs, indices)
}

func TestNewGeometry(t *testing.T) {
	g := twoTriangles()
	assert.NoError(t, g.Validate())
	assert.Equal(t, 4, g.VertexCount)
	assert.Equal(t, 2, g.NumTriangles())

	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {0, 2}, {2, 3}, {0, 3}}, g.Edges)
	assert.Equal(t, 2, len(g.Faces))
	assert.Equal(t, [3]uint32{0, 2, 3}, g.Faces[1].Vertices)
	for _, e := range g.Edges {
		assert.Less(t, e.A, e.B)
	}
}

func TestEdge(t *testing.T) {
	assert.Equal(t, Edge{1, 5}, NewEdge(5, 1))
	assert.Equal(t, uint32(5), NewEdge(5, 1).Other(1))
	assert.True(t, NewEdge(5, 1).Has(5))
	assert.False(t, NewEdge(5, 1).Has(2))
}

func TestRebuildDropsDegenerates(t *testing.T) {
	g := twoTriangles()
	g.Indices = math32.ArrayU32{0, 1, 2, 1, 1, 3}
	g.RebuildEdgesAndFaces()
	assert.Equal(t, 1, g.NumTriangles())
	assert.Equal(t, math32.ArrayU32{0, 1, 2}, g.Indices)
}

func TestRecomputeNormals(t *testing.T) {
	g := twoTriangles()
	for i := 0; i < g.VertexCount; i++ {
		g.SetNormal(i, math32.Vec3(1, 0, 0)) // scramble
	}
	g.RecomputeNormals()
	for i := 0; i < g.VertexCount; i++ {
		n := g.Normal(i)
		assert.Equal(t, math32.Vec3(0, 0, 1), n)
	}
}

func TestRecomputeNormalsIsolatedVertex(t *testing.T) {
	g := twoTriangles()
	g.Vertices = g.Vertices.AppendVector3(math32.Vec3(5, 5, 5))
	g.Normals = g.Normals.AppendVector3(math32.Vec3(0, 1, 0))
	g.UVs = g.UVs.AppendVector2(math32.Vec2(0, 0))
	g.VertexCount++
	g.RecomputeNormals()
	assert.Equal(t, math32.Vector3{}, g.Normal(4))
}

func TestBoundaryEdges(t *testing.T) {
	g := twoTriangles()
	boundary := g.BoundaryEdges()
	// every edge except the shared diagonal (0,2)
	assert.Equal(t, 4, len(boundary))
	for _, e := range boundary {
		assert.NotEqual(t, Edge{0, 2}, e)
	}
}

func TestValidateErrors(t *testing.T) {
	g := twoTriangles()
	g.VertexCount = 5
	assert.Error(t, g.Validate())

	g = twoTriangles()
	g.Indices = append(g.Indices, 0, 1)
	assert.Error(t, g.Validate())

	g = twoTriangles()
	g.Indices[0] = 9
	assert.Error(t, g.Validate())
}

func TestBoundingBox(t *testing.T) {
	g := twoTriangles()
	bb := g.BoundingBox()
	assert.Equal(t, math32.Vec3(0, 0, 0), bb.Min)
	assert.Equal(t, math32.Vec3(1, 1, 0), bb.Max)
}

func TestClone(t *testing.T) {
	g := twoTriangles()
	c := g.Clone()
	c.SetVertex(0, math32.Vec3(9, 9, 9))
	c.Indices[0] = 3
	assert.Equal(t, math32.Vec3(0, 0, 0), g.Vertex(0))
	assert.Equal(t, uint32(0), g.Indices[0])
}

func TestTransformApply(t *testing.T) {
	tr := IdentityTransform()
	assert.True(t, tr.IsIdentity())
	assert.Equal(t, math32.Vec3(1, 2, 3), tr.Apply(math32.Vec3(1, 2, 3)))

	tr.Position = math32.Vec3(1, 0, 0)
	tr.Scale = math32.Vec3(2, 2, 2)
	assert.Equal(t, math32.Vec3(3, 4, 6), tr.Apply(math32.Vec3(1, 2, 3)))

	// quarter turn about Z maps +X to +Y
	tr = IdentityTransform()
	tr.Rotation.Z = math32.Pi / 2
	got := tr.Apply(math32.Vec3(1, 0, 0))
	tolassert.EqualTol(t, 0, got.X, 1e-6)
	tolassert.EqualTol(t, 1, got.Y, 1e-6)

	// scale, rotate, translate compose in that order and invert cleanly
	tr = Transform{
		Position: math32.Vec3(1, 2, 3),
		Rotation: math32.Vec3(0.3, -0.7, 1.1),
		Scale:    math32.Vec3(2, 3, 4),
	}
	p := math32.Vec3(0.5, -0.25, 0.75)
	back := tr.ApplyInverse(tr.Apply(p))
	tolassert.EqualTol(t, p.X, back.X, 1e-5)
	tolassert.EqualTol(t, p.Y, back.Y, 1e-5)
	tolassert.EqualTol(t, p.Z, back.Z, 1e-5)
}

func TestMeshClone(t *testing.T) {
	m := NewMesh("quad", twoTriangles())
	c := m.Clone()
	assert.Equal(t, m.ID, c.ID)
	c.Geometry.SetVertex(0, math32.Vec3(9, 9, 9))
	assert.Equal(t, math32.Vector3{}, m.Geometry.Vertex(0))
}

func TestMergeCloseVertices(t *testing.T) {
	// two triangles with duplicated shared-edge vertices
	vertices := math32.ArrayF32{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 0, 0,
		1, 1, 0,
		0, 1, 0,
	}
	normals := math32.ArrayF32{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1}
	uvs := math32.ArrayF32{0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1}
	indices := math32.ArrayU32{0, 1, 2, 3, 4, 5}
	g := NewGeometry(vertices, normals, uvs, indices)

	merged := MergeCloseVertices(g, 1e-4)
	assert.NoError(t, merged.Validate())
	assert.Equal(t, 4, merged.VertexCount)
	assert.Equal(t, 2, merged.NumTriangles())
	assert.Equal(t, math32.ArrayU32{0, 1, 2, 0, 2, 3}, merged.Indices)
}
