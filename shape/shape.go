// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates the canonical primitive geometries the
// modeler starts from: box, plane, and UV sphere. Each generator
// returns a fresh [mesh.Geometry] with per-face or smooth normals and
// unit-square UVs, ready for the modifier operators.
package shape

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// builder accumulates flat buffers while a generator emits vertices
// and triangles.
type builder struct {
	vertices math32.ArrayF32
	normals  math32.ArrayF32
	uvs      math32.ArrayF32
	indices  math32.ArrayU32
}

// vertex appends one vertex and returns its index.
func (b *builder) vertex(pos, norm math32.Vector3, uv math32.Vector2) uint32 {
	i := uint32(len(b.vertices) / 3)
	b.vertices = b.vertices.AppendVector3(pos)
	b.normals = b.normals.AppendVector3(norm)
	b.uvs = b.uvs.AppendVector2(uv)
	return i
}

// triangle appends one triangle.
func (b *builder) triangle(i0, i1, i2 uint32) {
	b.indices = append(b.indices, i0, i1, i2)
}

// quad appends a quad as two triangles, with vertices given in
// counterclockwise order.
func (b *builder) quad(i0, i1, i2, i3 uint32) {
	b.triangle(i0, i1, i2)
	b.triangle(i0, i2, i3)
}

func (b *builder) geometry() *mesh.Geometry {
	return mesh.NewGeometry(b.vertices, b.normals, b.uvs, b.indices)
}
