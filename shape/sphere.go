// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// Sphere returns a UV sphere of the given radius centered on the
// origin, with widthSegs longitudinal and heightSegs latitudinal
// segments (clamped to at least 3 and 2). The poles are rings of
// coincident points, as in the standard lat-long parameterisation.
// Normals are smooth (radial).
func Sphere(radius float32, widthSegs, heightSegs int) *mesh.Geometry {
	if widthSegs < 3 {
		widthSegs = 3
	}
	if heightSegs < 2 {
		heightSegs = 2
	}
	b := &builder{}
	for h := 0; h <= heightSegs; h++ {
		tv := float32(h) / float32(heightSegs)
		theta := tv * math32.Pi // 0 at north pole (+y)
		sinT, cosT := math32.Sin(theta), math32.Cos(theta)
		for w := 0; w <= widthSegs; w++ {
			tu := float32(w) / float32(widthSegs)
			phi := tu * 2 * math32.Pi
			sinP, cosP := math32.Sin(phi), math32.Cos(phi)
			norm := math32.Vec3(sinT*cosP, cosT, sinT*sinP)
			b.vertex(norm.MulScalar(radius), norm, math32.Vec2(tu, 1-tv))
		}
	}
	stride := uint32(widthSegs + 1)
	for h := 0; h < heightSegs; h++ {
		for w := 0; w < widthSegs; w++ {
			i0 := uint32(h)*stride + uint32(w)
			i1 := i0 + 1
			i2 := i0 + stride + 1
			i3 := i0 + stride
			if h > 0 { // top-row pair is degenerate at the north pole
				b.triangle(i0, i1, i2)
			}
			if h < heightSegs-1 { // bottom-row pair is degenerate at the south pole
				b.triangle(i0, i2, i3)
			}
		}
	}
	return b.geometry()
}
