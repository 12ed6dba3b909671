// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"github.com/zos-apps/zmodel/csg"
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// BooleanOperation names a boolean CSG operation.
type BooleanOperation = csg.Operation

// The boolean operations.
const (
	BooleanUnion      = csg.Union
	BooleanDifference = csg.Difference
	BooleanIntersect  = csg.Intersect
)

// Boolean combines the two meshes with the given CSG operation. Both
// meshes are baked into world space first, so the output mesh carries
// an identity transform; its identity, material, and display state
// come from the first operand. Texture coordinates do not survive CSG
// and are reset to (0, 0), a known limitation.
func Boolean(a, b *mesh.Mesh, op BooleanOperation) *mesh.Mesh {
	polysA := bakePolygons(a)
	polysB := bakePolygons(b)
	combined := csg.Combine(op, polysA, polysB)

	var vertices, normals, uvs math32.ArrayF32
	var indices math32.ArrayU32
	for _, poly := range combined {
		base := uint32(len(vertices) / 3)
		for _, v := range poly.Vertices {
			vertices = vertices.AppendVector3(v.Pos)
			normals = normals.AppendVector3(v.Normal)
			uvs = uvs.AppendVector2(math32.Vector2{})
		}
		// fan-triangulate the polygon ring
		for k := 2; k < len(poly.Vertices); k++ {
			indices = append(indices, base, base+uint32(k-1), base+uint32(k))
		}
	}

	out := a.WithGeometry(mesh.NewGeometry(vertices, normals, uvs, indices))
	out.Transform = mesh.IdentityTransform()
	return out
}

// bakePolygons converts each triangle of the mesh into a world-space
// CSG polygon, applying the mesh transform to positions and normals.
// Degenerate triangles are skipped.
func bakePolygons(m *mesh.Mesh) []csg.Polygon {
	g := m.Geometry
	world := m.WorldVertices()
	polys := make([]csg.Polygon, 0, g.NumTriangles())
	for t := 0; t < g.NumTriangles(); t++ {
		var vs [3]csg.Vertex
		for k := 0; k < 3; k++ {
			vi := int(g.Indices[t*3+k])
			vs[k] = csg.Vertex{
				Pos:    world.Vector3(vi),
				Normal: m.Transform.ApplyNormal(g.Normal(vi)),
				UV:     g.UV(vi),
			}
		}
		poly := csg.NewPolygon(vs[0], vs[1], vs[2])
		if !poly.Plane.OK() {
			continue
		}
		polys = append(polys, poly)
	}
	return polys
}
