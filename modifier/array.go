// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// OffsetMode selects how the per-copy offset of [Array] is computed.
type OffsetMode int32

const (
	// OffsetConstant applies the literal offset per step.
	OffsetConstant OffsetMode = iota

	// OffsetRelative scales the offset by the bounding-box size of the
	// input, per component.
	OffsetRelative

	// OffsetObject behaves as OffsetConstant in the kernel; resolving
	// another object's transform is the host's concern.
	OffsetObject
)

// ArrayOptions controls the [Array] operator.
type ArrayOptions struct {
	Count  int
	Mode   OffsetMode
	Offset math32.Vector3

	// MergeVertices merges coincident vertices of adjacent copies.
	MergeVertices bool
}

// Array produces Count rigid copies of the input geometry, each offset
// by a multiple of the per-step offset, concatenated into one mesh.
// Count of one or less is a no-op.
func Array(m *mesh.Mesh, opts ArrayOptions) *mesh.Mesh {
	if opts.Count <= 1 {
		return unchanged(m)
	}
	g := m.Geometry

	step := opts.Offset
	if opts.Mode == OffsetRelative {
		step = opts.Offset.Mul(g.BoundingBox().Size())
	}

	var vertices, normals, uvs math32.ArrayF32
	var indices math32.ArrayU32
	for c := 0; c < opts.Count; c++ {
		offset := step.MulScalar(float32(c))
		base := uint32(len(vertices) / 3)
		for i := 0; i < g.VertexCount; i++ {
			vertices = vertices.AppendVector3(g.Vertex(i).Add(offset))
			normals = normals.AppendVector3(g.Normal(i))
			uvs = uvs.AppendVector2(g.UV(i))
		}
		for _, ix := range g.Indices {
			indices = append(indices, base+ix)
		}
	}

	out := mesh.NewGeometry(vertices, normals, uvs, indices)
	if opts.MergeVertices {
		out = mesh.MergeCloseVertices(out, 1e-4)
	}
	return m.WithGeometry(out)
}
