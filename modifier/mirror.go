// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// MirrorOptions controls the [Mirror] operator.
type MirrorOptions struct {
	// Axis selects which world-axis plane to mirror across.
	Axis math32.Dims

	// Merge reuses vertices lying within MergeThreshold of the mirror
	// plane instead of duplicating them.
	Merge bool

	// MergeThreshold is the near-plane distance for Merge.
	MergeThreshold float32

	// FlipNormals negates the mirrored component of duplicated normals.
	FlipNormals bool
}

// Mirror duplicates the mesh across the chosen axis plane. Mirrored
// triangles have their winding flipped so they stay front-facing, and
// mirroring across X flips the U texture coordinate. With Merge on,
// vertices on the plane are shared between the two halves.
func Mirror(m *mesh.Mesh, opts MirrorOptions) *mesh.Mesh {
	g := m.Geometry
	axis := int(opts.Axis)
	vertices, normals, uvs := cloneBuffers(g)

	mirrored := make([]uint32, g.VertexCount)
	for i := 0; i < g.VertexCount; i++ {
		pos := g.Vertex(i)
		if opts.Merge && math32.Abs(pos.Dim(axis)) < opts.MergeThreshold {
			// the mirror of a near-plane vertex is itself
			mirrored[i] = uint32(i)
			continue
		}
		pos.SetDim(axis, -pos.Dim(axis))
		norm := g.Normal(i)
		if opts.FlipNormals {
			norm.SetDim(axis, -norm.Dim(axis))
		}
		uv := g.UV(i)
		if opts.Axis == math32.X {
			uv.X = 1 - uv.X
		}
		mirrored[i] = uint32(len(vertices) / 3)
		vertices = vertices.AppendVector3(pos)
		normals = normals.AppendVector3(norm)
		uvs = uvs.AppendVector2(uv)
	}

	indices := g.Indices.Clone()
	for t := 0; t < g.NumTriangles(); t++ {
		i0 := g.Indices[t*3]
		i1 := g.Indices[t*3+1]
		i2 := g.Indices[t*3+2]
		// swap two corners to flip the winding of the mirrored copy
		indices = append(indices, mirrored[i0], mirrored[i2], mirrored[i1])
	}

	return m.WithGeometry(mesh.NewGeometry(vertices, normals, uvs, indices))
}
