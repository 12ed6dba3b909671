// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import "github.com/zos-apps/zmodel/math32"

// Epsilon is the tolerance used by ray/triangle intersection to reject
// parallel rays and hits behind the origin.
const Epsilon = 1e-6

// Ray is a world-space ray with a unit direction.
type Ray struct {
	Origin math32.Vector3
	Dir    math32.Vector3
}

// At returns the point along the ray at parameter t.
func (r Ray) At(t float32) math32.Vector3 {
	return r.Origin.Add(r.Dir.MulScalar(t))
}

// IntersectTriangle intersects the ray with the triangle (a, b, c)
// using the Möller–Trumbore algorithm. It returns the ray parameter t
// and the barycentric coordinates (u, v) of the hit, and reports
// whether there is one. Only hits with t > [Epsilon], u >= 0, v >= 0,
// and u+v <= 1 are accepted; edge and vertex grazes count as hits.
func (r Ray) IntersectTriangle(a, b, c math32.Vector3) (t, u, v float32, ok bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if math32.Abs(det) < Epsilon {
		return 0, 0, 0, false
	}
	invDet := 1 / det
	tv := r.Origin.Sub(a)
	u = tv.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}
	q := tv.Cross(e1)
	v = r.Dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}
	t = e2.Dot(q) * invDet
	if t <= Epsilon {
		return 0, 0, 0, false
	}
	return t, u, v, true
}
