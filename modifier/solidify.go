// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// SolidifyOptions controls the [Solidify] operator.
type SolidifyOptions struct {
	// Thickness is the distance between the outer and inner shells.
	Thickness float32

	// Offset in [-1, 1] shifts where the original surface sits between
	// the shells: 0 centers it, 1 keeps the inner shell on it.
	Offset float32

	// EvenThickness displaces along normals recomputed from incident
	// face normals instead of the stored vertex normals.
	EvenThickness bool

	// FillRim closes the gap between the shells along boundary edges.
	FillRim bool
}

// Solidify gives an open surface a thickness by emitting an outer and
// an inner shell, the inner with reversed winding and negated normals,
// and optionally rim quads along the boundary edges.
func Solidify(m *mesh.Mesh, opts SolidifyOptions) *mesh.Mesh {
	g := m.Geometry
	n := g.VertexCount

	dirs := make([]math32.Vector3, n)
	if opts.EvenThickness {
		for t := 0; t < g.NumTriangles(); t++ {
			fn := g.FaceNormal(t)
			for k := 0; k < 3; k++ {
				dirs[g.Indices[t*3+k]].SetAdd(fn)
			}
		}
		for i := range dirs {
			dirs[i] = dirs[i].Normal()
		}
	} else {
		for i := 0; i < n; i++ {
			dirs[i] = g.Normal(i)
		}
	}

	outerShift := opts.Thickness * (opts.Offset + 1) / 2
	innerShift := opts.Thickness * (opts.Offset - 1) / 2

	var vertices, normals, uvs math32.ArrayF32
	var indices math32.ArrayU32

	// outer shell keeps the original orientation
	for i := 0; i < n; i++ {
		vertices = vertices.AppendVector3(g.Vertex(i).Add(dirs[i].MulScalar(outerShift)))
		normals = normals.AppendVector3(g.Normal(i))
		uvs = uvs.AppendVector2(g.UV(i))
	}
	indices = append(indices, g.Indices...)

	// inner shell faces the other way
	innerBase := uint32(n)
	for i := 0; i < n; i++ {
		vertices = vertices.AppendVector3(g.Vertex(i).Add(dirs[i].MulScalar(innerShift)))
		normals = normals.AppendVector3(g.Normal(i).Negate())
		uvs = uvs.AppendVector2(g.UV(i))
	}
	for t := 0; t < g.NumTriangles(); t++ {
		indices = append(indices,
			innerBase+g.Indices[t*3],
			innerBase+g.Indices[t*3+2],
			innerBase+g.Indices[t*3+1],
		)
	}

	if opts.FillRim {
		// the one adjacent face of each boundary edge supplies both
		// the rim direction and the edge's true winding order
		type rimSide struct {
			a, b uint32
			face int
		}
		adjacent := make(map[mesh.Edge]rimSide)
		for t := 0; t < g.NumTriangles(); t++ {
			for _, de := range directedEdges(g.Indices, t) {
				key := mesh.NewEdge(de[0], de[1])
				if _, ok := adjacent[key]; !ok {
					adjacent[key] = rimSide{a: de[0], b: de[1], face: t}
				}
			}
		}
		for _, e := range g.BoundaryEdges() {
			rs := adjacent[e]
			a, b := int(rs.a), int(rs.b)
			edgeDir := g.Vertex(b).Sub(g.Vertex(a)).Normal()
			rimNormal := edgeDir.Cross(g.FaceNormal(rs.face)).Normal()

			oa := g.Vertex(a).Add(dirs[a].MulScalar(outerShift))
			ob := g.Vertex(b).Add(dirs[b].MulScalar(outerShift))
			ia := g.Vertex(a).Add(dirs[a].MulScalar(innerShift))
			ib := g.Vertex(b).Add(dirs[b].MulScalar(innerShift))

			base := uint32(len(vertices) / 3)
			vertices = vertices.AppendVector3(oa, ob, ib, ia)
			normals = normals.AppendVector3(rimNormal, rimNormal, rimNormal, rimNormal)
			uvs = uvs.AppendVector2(
				math32.Vec2(0, 0), math32.Vec2(1, 0),
				math32.Vec2(1, 1), math32.Vec2(0, 1),
			)
			// the rim traverses the outer edge opposite to the outer
			// shell, keeping the quad facing along rimNormal
			indices = append(indices,
				base+1, base, base+3,
				base+1, base+3, base+2,
			)
		}
	}

	return m.WithGeometry(mesh.NewGeometry(vertices, normals, uvs, indices))
}
