// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package modifier implements the mesh operators of the modeler:
// extrude, subdivide, loop cut, bevel, mirror, array, solidify, knife,
// bridge, decimate, and boolean CSG. Every operator is a pure function
// from a mesh plus an options record to a new mesh with freshly
// allocated buffers and rebuilt derived data; the input is never
// modified. Preconditions that remove all work (empty selections,
// single-copy arrays, and so on) make the operator return an
// unmodified copy of the input.
package modifier

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// unchanged returns a value-equal copy of the input mesh, used when a
// precondition removes all work.
func unchanged(m *mesh.Mesh) *mesh.Mesh {
	return m.WithGeometry(m.Geometry.Clone())
}

// cloneBuffers returns copies of the vertex, normal, and UV buffers
// for operators that append to them.
func cloneBuffers(g *mesh.Geometry) (vertices, normals, uvs math32.ArrayF32) {
	return g.Vertices.Clone(), g.Normals.Clone(), g.UVs.Clone()
}

// triangleEdges returns the three canonical edges of triangle t.
func triangleEdges(indices math32.ArrayU32, t int) [3]mesh.Edge {
	i0 := indices[t*3]
	i1 := indices[t*3+1]
	i2 := indices[t*3+2]
	return [3]mesh.Edge{mesh.NewEdge(i0, i1), mesh.NewEdge(i1, i2), mesh.NewEdge(i2, i0)}
}

// directedEdges returns the three edges of triangle t in the order the
// triangle's winding traverses them. Canonicalising an edge loses this
// direction, so operators that emit new faces along an existing edge
// must take the direction from here, not from [mesh.NewEdge].
func directedEdges(indices math32.ArrayU32, t int) [3][2]uint32 {
	i0 := indices[t*3]
	i1 := indices[t*3+1]
	i2 := indices[t*3+2]
	return [3][2]uint32{{i0, i1}, {i1, i2}, {i2, i0}}
}
