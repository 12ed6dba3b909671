// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"github.com/zos-apps/zmodel/mesh"
)

// BevelOptions controls the [Bevel] operator.
type BevelOptions struct {
	// Amount is the chamfer offset distance.
	Amount float32

	// Segments is accepted for API compatibility; the kernel always
	// produces a single chamfer ring, a known simplification.
	Segments int
}

// Bevel chamfers the selected edges. For every adjacent face of a
// selected edge, the edge endpoints are cloned and pushed sideways
// within the face plane; triangles that referenced an endpoint are
// rerouted to its first clone and ribbon quads bridge the originals to
// the clones. An empty selection is a no-op.
func Bevel(m *mesh.Mesh, edges []mesh.Edge, opts BevelOptions) *mesh.Mesh {
	if len(edges) == 0 || opts.Amount == 0 {
		return unchanged(m)
	}
	g := m.Geometry

	selected := make(map[mesh.Edge]bool, len(edges))
	for _, raw := range edges {
		e := mesh.NewEdge(raw.A, raw.B)
		if int(e.A) < g.VertexCount && int(e.B) < g.VertexCount {
			selected[e] = true
		}
	}
	if len(selected) == 0 {
		return unchanged(m)
	}

	// adjacent sides per selected edge, keeping each face's own
	// traversal direction of the edge
	type bevelSide struct {
		a, b uint32
		face int
	}
	adjacent := make(map[mesh.Edge][]bevelSide, len(selected))
	for t := 0; t < g.NumTriangles(); t++ {
		for _, de := range directedEdges(g.Indices, t) {
			key := mesh.NewEdge(de[0], de[1])
			if selected[key] {
				adjacent[key] = append(adjacent[key], bevelSide{a: de[0], b: de[1], face: t})
			}
		}
	}

	vertices, normals, uvs := cloneBuffers(g)

	type cloneKey struct {
		vertex uint32
		face   int
	}
	clones := make(map[cloneKey]uint32)
	firstClone := make(map[uint32]uint32)

	for _, sides := range adjacent {
		for _, side := range sides {
			edgeDir := g.Vertex(int(side.b)).Sub(g.Vertex(int(side.a))).Normal()
			// in-plane direction into the face, so the clones vacate a
			// chamfer strip along the edge
			perp := g.FaceNormal(side.face).Cross(edgeDir).Normal()
			offset := perp.MulScalar(opts.Amount)
			for _, vi := range [2]uint32{side.a, side.b} {
				key := cloneKey{vertex: vi, face: side.face}
				if _, ok := clones[key]; ok {
					continue
				}
				ci := uint32(len(vertices) / 3)
				clones[key] = ci
				vertices = vertices.AppendVector3(g.Vertex(int(vi)).Add(offset))
				normals = normals.AppendVector3(g.Normal(int(vi)))
				uvs = uvs.AppendVector2(g.UV(int(vi)))
				if _, ok := firstClone[vi]; !ok {
					firstClone[vi] = ci
				}
			}
		}
	}

	// reroute triangles referencing a beveled endpoint to its first clone
	indices := g.Indices.Clone()
	for i, ix := range indices {
		if ci, ok := firstClone[ix]; ok {
			indices[i] = ci
		}
	}

	// ribbon quads covering the vacated strip, wound with the owning
	// face so they face the same way it does
	for _, sides := range adjacent {
		for _, side := range sides {
			ac := clones[cloneKey{vertex: side.a, face: side.face}]
			bc := clones[cloneKey{vertex: side.b, face: side.face}]
			indices = append(indices,
				side.a, side.b, bc,
				side.a, bc, ac,
			)
		}
	}

	return m.WithGeometry(mesh.NewGeometry(vertices, normals, uvs, indices))
}
