// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// Box returns a cuboid centered on the origin with the given size along
// each dimension. Each of the six faces has its own four vertices with
// the face normal and unit-square UVs, so the box has 24 vertices and
// 12 triangles and faces share no vertices.
func Box(width, height, depth float32) *mesh.Geometry {
	hx, hy, hz := width/2, height/2, depth/2
	b := &builder{}

	// u and v are the in-plane half extents; each face is emitted
	// counterclockwise as seen from outside along its normal
	face := func(norm, du, dv math32.Vector3) {
		center := norm.Mul(math32.Vec3(hx, hy, hz))
		u := du.Mul(math32.Vec3(hx, hy, hz))
		v := dv.Mul(math32.Vec3(hx, hy, hz))
		i0 := b.vertex(center.Sub(u).Sub(v), norm, math32.Vec2(0, 0))
		i1 := b.vertex(center.Add(u).Sub(v), norm, math32.Vec2(1, 0))
		i2 := b.vertex(center.Add(u).Add(v), norm, math32.Vec2(1, 1))
		i3 := b.vertex(center.Sub(u).Add(v), norm, math32.Vec2(0, 1))
		b.quad(i0, i1, i2, i3)
	}

	face(math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0))   // +z
	face(math32.Vec3(0, 0, -1), math32.Vec3(-1, 0, 0), math32.Vec3(0, 1, 0)) // -z
	face(math32.Vec3(1, 0, 0), math32.Vec3(0, 0, -1), math32.Vec3(0, 1, 0))  // +x
	face(math32.Vec3(-1, 0, 0), math32.Vec3(0, 0, 1), math32.Vec3(0, 1, 0))  // -x
	face(math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, -1))  // +y
	face(math32.Vec3(0, -1, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1))  // -y

	return b.geometry()
}
