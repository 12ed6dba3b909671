// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// Plane returns a flat grid in the XZ plane at y = 0, centered on the
// origin, with its normal along +Y. Segments below 1 are clamped to 1.
func Plane(width, depth float32, widthSegs, depthSegs int) *mesh.Geometry {
	if widthSegs < 1 {
		widthSegs = 1
	}
	if depthSegs < 1 {
		depthSegs = 1
	}
	b := &builder{}
	norm := math32.Vec3(0, 1, 0)
	for dz := 0; dz <= depthSegs; dz++ {
		tz := float32(dz) / float32(depthSegs)
		for dx := 0; dx <= widthSegs; dx++ {
			tx := float32(dx) / float32(widthSegs)
			pos := math32.Vec3((tx-0.5)*width, 0, (tz-0.5)*depth)
			b.vertex(pos, norm, math32.Vec2(tx, 1-tz))
		}
	}
	stride := uint32(widthSegs + 1)
	for dz := 0; dz < depthSegs; dz++ {
		for dx := 0; dx < widthSegs; dx++ {
			i0 := uint32(dz)*stride + uint32(dx)
			i1 := i0 + 1
			i2 := i0 + stride + 1
			i3 := i0 + stride
			// +y is up, so wind counterclockwise seen from above
			b.quad(i0, i3, i2, i1)
		}
	}
	return b.geometry()
}
