// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the indexed triangle mesh data model of the
// kernel: flat vertex, normal, UV, and index buffers with derived edge
// and face lists, plus the transform and material records that travel
// with a mesh through the modifier operators.
package mesh

import (
	"fmt"

	"github.com/zos-apps/zmodel/math32"
)

// Edge is an unordered pair of vertex indices appearing as a triangle
// side, stored in canonical order with A < B.
type Edge struct {
	A uint32
	B uint32
}

// NewEdge returns the canonical [Edge] for the given two vertex indices,
// with the smaller index first.
func NewEdge(a, b uint32) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// Other returns the endpoint of the edge that is not the given index.
func (e Edge) Other(v uint32) uint32 {
	if e.A == v {
		return e.B
	}
	return e.A
}

// Has returns whether the edge has the given vertex index as an endpoint.
func (e Edge) Has(v uint32) bool {
	return e.A == v || e.B == v
}

// Face is the derived record for one triangle of the index buffer:
// its three vertex indices and a display normal.
type Face struct {
	Vertices [3]uint32
	Normal   math32.Vector3
}

// Geometry holds the flat buffers of an indexed triangle mesh.
// Vertices and Normals are packed XYZ (3 floats per vertex), UVs are
// packed UV (2 floats per vertex), and Indices holds counterclockwise
// front-facing triangle index triples. Edges and Faces are derived from
// Indices by [Geometry.RebuildEdgesAndFaces].
type Geometry struct {
	Vertices    math32.ArrayF32
	Normals     math32.ArrayF32
	UVs         math32.ArrayF32
	Indices     math32.ArrayU32
	VertexCount int

	// Edges is the derived set of deduplicated unordered edges.
	Edges []Edge

	// Faces is the derived per-triangle face list.
	Faces []Face
}

// NewGeometry returns a new [Geometry] from the given flat buffers,
// with the derived edge and face lists built.
func NewGeometry(vertices, normals, uvs math32.ArrayF32, indices math32.ArrayU32) *Geometry {
	g := &Geometry{
		Vertices:    vertices,
		Normals:     normals,
		UVs:         uvs,
		Indices:     indices,
		VertexCount: len(vertices) / 3,
	}
	g.RebuildEdgesAndFaces()
	return g
}

// Clone returns a deep copy of this geometry.
func (g *Geometry) Clone() *Geometry {
	c := &Geometry{
		Vertices:    g.Vertices.Clone(),
		Normals:     g.Normals.Clone(),
		UVs:         g.UVs.Clone(),
		Indices:     g.Indices.Clone(),
		VertexCount: g.VertexCount,
	}
	c.Edges = make([]Edge, len(g.Edges))
	copy(c.Edges, g.Edges)
	c.Faces = make([]Face, len(g.Faces))
	copy(c.Faces, g.Faces)
	return c
}

// NumTriangles returns the number of triangles in the index buffer.
func (g *Geometry) NumTriangles() int {
	return len(g.Indices) / 3
}

// Vertex returns the position of the vertex at the given index.
func (g *Geometry) Vertex(i int) math32.Vector3 {
	return g.Vertices.Vector3(i)
}

// SetVertex sets the position of the vertex at the given index.
func (g *Geometry) SetVertex(i int, v math32.Vector3) {
	g.Vertices.SetVector3(i, v)
}

// Normal returns the normal of the vertex at the given index.
func (g *Geometry) Normal(i int) math32.Vector3 {
	return g.Normals.Vector3(i)
}

// SetNormal sets the normal of the vertex at the given index.
func (g *Geometry) SetNormal(i int, v math32.Vector3) {
	g.Normals.SetVector3(i, v)
}

// UV returns the texture coordinate of the vertex at the given index.
func (g *Geometry) UV(i int) math32.Vector2 {
	return g.UVs.Vector2(i)
}

// SetUV sets the texture coordinate of the vertex at the given index.
func (g *Geometry) SetUV(i int, v math32.Vector2) {
	g.UVs.SetVector2(i, v)
}

// FaceNormal returns the geometric normal of triangle t, computed from
// the current vertex positions.
func (g *Geometry) FaceNormal(t int) math32.Vector3 {
	a := g.Vertex(int(g.Indices[t*3]))
	b := g.Vertex(int(g.Indices[t*3+1]))
	c := g.Vertex(int(g.Indices[t*3+2]))
	return math32.Normal(a, b, c)
}

// BoundingBox returns the axis-aligned bounding box of the vertex
// positions. An empty geometry yields an empty box.
func (g *Geometry) BoundingBox() math32.Box3 {
	bb := math32.B3Empty()
	for i := 0; i < g.VertexCount; i++ {
		bb.ExpandByPoint(g.Vertex(i))
	}
	return bb
}

// Validate checks the structural invariants of the geometry buffers:
// consistent buffer lengths, index buffer length divisible by three,
// and all indices in range. A violation is a programming error in the
// producer of the geometry; operators assume Validate passes.
func (g *Geometry) Validate() error {
	if g.VertexCount*3 != len(g.Vertices) {
		return fmt.Errorf("mesh.Geometry: VertexCount %d does not match %d position floats", g.VertexCount, len(g.Vertices))
	}
	if len(g.Normals) != len(g.Vertices) {
		return fmt.Errorf("mesh.Geometry: %d normal floats for %d position floats", len(g.Normals), len(g.Vertices))
	}
	if len(g.UVs) != g.VertexCount*2 {
		return fmt.Errorf("mesh.Geometry: %d uv floats for %d vertices", len(g.UVs), g.VertexCount)
	}
	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("mesh.Geometry: index buffer length %d is not divisible by 3", len(g.Indices))
	}
	for i, ix := range g.Indices {
		if int(ix) >= g.VertexCount {
			return fmt.Errorf("mesh.Geometry: index %d at %d exceeds vertex count %d", ix, i, g.VertexCount)
		}
	}
	return nil
}
