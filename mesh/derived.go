// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/zos-apps/zmodel/math32"

// BuildEdgesAndFaces derives the canonical edge set and the per-triangle
// face list from the given index buffer. Each edge appearing as a
// triangle side is emitted exactly once in canonical (A < B) order.
// The face normal is taken from the vertex normal of the first triangle
// vertex, a cheap display proxy; operators that need accurate normals
// recompute from positions.
func BuildEdgesAndFaces(indices math32.ArrayU32, normals math32.ArrayF32) ([]Edge, []Face) {
	nt := len(indices) / 3
	edges := make([]Edge, 0, nt*3/2)
	seen := make(map[Edge]struct{}, nt*3/2)
	faces := make([]Face, 0, nt)
	for t := 0; t < nt; t++ {
		i0 := indices[t*3]
		i1 := indices[t*3+1]
		i2 := indices[t*3+2]
		for _, e := range [3]Edge{NewEdge(i0, i1), NewEdge(i1, i2), NewEdge(i2, i0)} {
			if _, ok := seen[e]; !ok {
				seen[e] = struct{}{}
				edges = append(edges, e)
			}
		}
		var norm math32.Vector3
		if int(i0)*3+2 < len(normals) {
			norm = normals.Vector3(int(i0))
		}
		faces = append(faces, Face{Vertices: [3]uint32{i0, i1, i2}, Normal: norm})
	}
	return edges, faces
}

// RebuildEdgesAndFaces drops triangles with repeated indices from the
// index buffer and rebuilds the derived Edges and Faces lists. Every
// operator calls this on its output geometry.
func (g *Geometry) RebuildEdgesAndFaces() {
	kept := g.Indices[:0]
	for t := 0; t*3 < len(g.Indices); t++ {
		i0 := g.Indices[t*3]
		i1 := g.Indices[t*3+1]
		i2 := g.Indices[t*3+2]
		if i0 == i1 || i1 == i2 || i2 == i0 {
			continue
		}
		kept = append(kept, i0, i1, i2)
	}
	g.Indices = kept
	g.Edges, g.Faces = BuildEdgesAndFaces(g.Indices, g.Normals)
}

// RecomputeNormals recomputes all per-vertex normals from the current
// positions by accumulating area-weighted face normals and
// renormalising. Isolated vertices with no incident triangle get a
// zero normal. The derived face normals are refreshed as well.
func (g *Geometry) RecomputeNormals() {
	acc := make([]math32.Vector3, g.VertexCount)
	for t := 0; t < g.NumTriangles(); t++ {
		i0 := int(g.Indices[t*3])
		i1 := int(g.Indices[t*3+1])
		i2 := int(g.Indices[t*3+2])
		a := g.Vertex(i0)
		b := g.Vertex(i1)
		c := g.Vertex(i2)
		// cross product length is twice the area, so this is the
		// area-weighted normal without an explicit normalise
		fn := b.Sub(a).Cross(c.Sub(a))
		acc[i0].SetAdd(fn)
		acc[i1].SetAdd(fn)
		acc[i2].SetAdd(fn)
	}
	for i, n := range acc {
		g.SetNormal(i, n.Normal())
	}
	for fi := range g.Faces {
		g.Faces[fi].Normal = g.Normal(int(g.Faces[fi].Vertices[0]))
	}
}

// BoundaryEdges returns the edges that appear in exactly one triangle
// of the index buffer, in canonical order.
func (g *Geometry) BoundaryEdges() []Edge {
	count := make(map[Edge]int, len(g.Edges))
	for t := 0; t < g.NumTriangles(); t++ {
		i0 := g.Indices[t*3]
		i1 := g.Indices[t*3+1]
		i2 := g.Indices[t*3+2]
		count[NewEdge(i0, i1)]++
		count[NewEdge(i1, i2)]++
		count[NewEdge(i2, i0)]++
	}
	var boundary []Edge
	for _, e := range g.Edges {
		if count[e] == 1 {
			boundary = append(boundary, e)
		}
	}
	return boundary
}
