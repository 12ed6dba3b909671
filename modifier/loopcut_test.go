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

func TestLoopCutNoop(t *testing.T) {
	m := boxMesh()
	out := LoopCut(m, []mesh.Edge{{A: 0, B: 1}}, LoopCutOptions{})
	assert.Equal(t, m.Geometry.Indices, out.Geometry.Indices)

	out = LoopCut(m, nil, LoopCutOptions{NumberOfCuts: 2})
	assert.Equal(t, m.Geometry.Indices, out.Geometry.Indices)
}

func TestLoopCutSingleEdge(t *testing.T) {
	m := mesh.NewMesh("quad", shape.Plane(1, 1, 1, 1))
	g := m.Geometry
	// cut an edge used by exactly one triangle
	var target mesh.Edge
	for _, e := range g.BoundaryEdges() {
		target = e
		break
	}
	k := 3
	out := LoopCut(m, []mesh.Edge{target}, LoopCutOptions{NumberOfCuts: k})
	og := out.Geometry
	checkInvariants(t, og)
	assert.Equal(t, g.VertexCount+k, og.VertexCount)
	// one triangle fans into k+1, the other is untouched
	assert.Equal(t, 1+(k+1), og.NumTriangles())
	tolassert.EqualTol(t, totalArea(g), totalArea(og), 1e-5)
}

func TestLoopCutTwoEdges(t *testing.T) {
	// one triangle with two cut edges sharing a corner
	vertices := math32.ArrayF32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	normals := math32.ArrayF32{0, 0, 1, 0, 0, 1, 0, 0, 1}
	uvs := math32.ArrayF32{0, 0, 1, 0, 0, 1}
	g := mesh.NewGeometry(vertices, normals, uvs, math32.ArrayU32{0, 1, 2})
	m := mesh.NewMesh("tri", g)

	k := 2
	out := LoopCut(m, []mesh.Edge{{A: 0, B: 1}, {A: 0, B: 2}}, LoopCutOptions{NumberOfCuts: k})
	og := out.Geometry
	checkInvariants(t, og)
	assert.Equal(t, 3+2*k, og.VertexCount)
	// tip + (k-1) strip quads + base band = 1 + 2(k-1) + 2 triangles
	assert.Equal(t, 1+2*(k-1)+2, og.NumTriangles())
	tolassert.EqualTol(t, totalArea(g), totalArea(og), 1e-5)
}

func TestLoopCutThreeEdgesKeepsTriangle(t *testing.T) {
	vertices := math32.ArrayF32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	normals := math32.ArrayF32{0, 0, 1, 0, 0, 1, 0, 0, 1}
	uvs := math32.ArrayF32{0, 0, 1, 0, 0, 1}
	g := mesh.NewGeometry(vertices, normals, uvs, math32.ArrayU32{0, 1, 2})
	m := mesh.NewMesh("tri", g)

	out := LoopCut(m, []mesh.Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 2}},
		LoopCutOptions{NumberOfCuts: 1})
	og := out.Geometry
	// cut vertices are created but the triangle keeps its shape
	assert.Equal(t, 1, og.NumTriangles())
	assert.Equal(t, [3]uint32{0, 1, 2}, og.Faces[0].Vertices)
}

func TestLoopCutSharedEdge(t *testing.T) {
	m := mesh.NewMesh("quad", shape.Plane(1, 1, 1, 1))
	g := m.Geometry
	// the diagonal is the only non-boundary edge; cutting it splits
	// both adjacent triangles with shared cut vertices
	boundary := make(map[mesh.Edge]bool)
	for _, e := range g.BoundaryEdges() {
		boundary[e] = true
	}
	var diagonal mesh.Edge
	for _, e := range g.Edges {
		if !boundary[e] {
			diagonal = e
		}
	}
	out := LoopCut(m, []mesh.Edge{diagonal}, LoopCutOptions{NumberOfCuts: 1})
	og := out.Geometry
	checkInvariants(t, og)
	assert.Equal(t, g.VertexCount+1, og.VertexCount)
	assert.Equal(t, 4, og.NumTriangles())
}
