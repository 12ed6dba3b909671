// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// ExtrudeOptions controls the [Extrude] operator.
type ExtrudeOptions struct {
	// Distance is how far the selection is pushed out.
	Distance float32

	// UseNormals displaces each vertex along its own normal instead of
	// the averaged selection normal.
	UseNormals bool
}

// Extrude pushes the given faces out of the mesh: the selected
// vertices are cloned and displaced, the selected triangles are
// remapped onto the clones, and side quads are built along the
// boundary edges of the selection. An empty selection is a no-op.
func Extrude(m *mesh.Mesh, faces []int, opts ExtrudeOptions) *mesh.Mesh {
	g := m.Geometry
	selected := make(map[int]bool, len(faces))
	for _, f := range faces {
		if f >= 0 && f < len(g.Faces) {
			selected[f] = true
		}
	}
	if len(selected) == 0 {
		return unchanged(m)
	}

	// union of selected vertices and the averaged selection normal
	selVerts := make(map[uint32]bool)
	var avg math32.Vector3
	for f := range selected {
		face := g.Faces[f]
		for _, vi := range face.Vertices {
			selVerts[vi] = true
		}
		avg.SetAdd(face.Normal)
	}
	avg = avg.Normal()

	vertices, normals, uvs := cloneBuffers(g)
	clones := make(map[uint32]uint32, len(selVerts))
	for vi := range selVerts {
		n := avg
		if opts.UseNormals {
			n = g.Normal(int(vi))
		}
		pos := g.Vertex(int(vi)).Add(n.MulScalar(opts.Distance))
		clones[vi] = uint32(len(vertices) / 3)
		vertices = vertices.AppendVector3(pos)
		normals = normals.AppendVector3(g.Normal(int(vi)))
		uvs = uvs.AppendVector2(g.UV(int(vi)))
	}

	indices := g.Indices.Clone()
	for f := range selected {
		for k := 0; k < 3; k++ {
			indices[f*3+k] = clones[indices[f*3+k]]
		}
	}

	// boundary edges of the selection: edges of a selected face not
	// shared with another selected face. The side quad follows the
	// owning face's winding direction so it faces outward.
	type boundaryEdge struct {
		a, b  uint32
		count int
	}
	edgeCount := make(map[mesh.Edge]*boundaryEdge)
	for f := range selected {
		for _, de := range directedEdges(g.Indices, f) {
			key := mesh.NewEdge(de[0], de[1])
			be := edgeCount[key]
			if be == nil {
				be = &boundaryEdge{a: de[0], b: de[1]}
				edgeCount[key] = be
			}
			be.count++
		}
	}
	for _, be := range edgeCount {
		if be.count != 1 {
			continue
		}
		a, b := be.a, be.b
		ac, bc := clones[a], clones[b]
		indices = append(indices,
			a, b, bc,
			a, bc, ac,
		)
	}

	return m.WithGeometry(mesh.NewGeometry(vertices, normals, uvs, indices))
}
