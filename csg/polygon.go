// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csg implements boolean constructive solid geometry on
// world-space polygon soups using a BSP tree. Polygons may be
// non-triangular while inside the CSG pipeline; callers triangulate
// only when emitting final geometry.
package csg

import "github.com/zos-apps/zmodel/math32"

// Epsilon is the plane-side classification tolerance.
const Epsilon = 1e-5

// Vertex is one corner of a CSG polygon, carrying the interpolatable
// per-vertex attributes.
type Vertex struct {
	Pos    math32.Vector3
	Normal math32.Vector3
	UV     math32.Vector2
}

// Interpolate returns the vertex linearly interpolated between this
// vertex and the other at parameter t.
func (v Vertex) Interpolate(other Vertex, t float32) Vertex {
	return Vertex{
		Pos:    v.Pos.Lerp(other.Pos, t),
		Normal: v.Normal.Lerp(other.Normal, t),
		UV:     v.UV.Lerp(other.UV, t),
	}
}

// Flipped returns the vertex with its normal negated.
func (v Vertex) Flipped() Vertex {
	v.Normal = v.Normal.Negate()
	return v
}

// Plane is an oriented plane in normal/offset form: a point p lies on
// the plane when Normal·p == W.
type Plane struct {
	Normal math32.Vector3
	W      float32
}

// PlaneFromPoints returns the plane through the three given points,
// with the normal following counterclockwise winding.
func PlaneFromPoints(a, b, c math32.Vector3) Plane {
	n := math32.Normal(a, b, c)
	return Plane{Normal: n, W: n.Dot(a)}
}

// OK reports whether the plane is well formed (non-degenerate normal).
func (p Plane) OK() bool {
	return p.Normal.LengthSquared() > 0
}

// Flipped returns the plane facing the opposite direction.
func (p Plane) Flipped() Plane {
	return Plane{Normal: p.Normal.Negate(), W: -p.W}
}

// Polygon is a coplanar counterclockwise vertex ring with its plane.
type Polygon struct {
	Vertices []Vertex
	Plane    Plane
}

// NewPolygon returns a polygon over the given vertices, deriving the
// plane from the first three.
func NewPolygon(vertices ...Vertex) Polygon {
	return Polygon{
		Vertices: vertices,
		Plane:    PlaneFromPoints(vertices[0].Pos, vertices[1].Pos, vertices[2].Pos),
	}
}

// Flipped returns the polygon with reversed winding, each vertex
// normal negated, and the plane flipped.
func (p Polygon) Flipped() Polygon {
	vs := make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		vs[len(vs)-1-i] = v.Flipped()
	}
	return Polygon{Vertices: vs, Plane: p.Plane.Flipped()}
}

// Vertex classification relative to a plane.
const (
	coplanar = 0
	front    = 1
	back     = 2
	spanning = 3
)

// Split classifies the given polygon against this plane and appends it
// to the matching output list. Coplanar polygons go to coplanarFront
// or coplanarBack by the sign of the normal agreement; spanning
// polygons are split at each plane crossing, emitting one polygon of
// at least three vertices per side.
func (p Plane) Split(poly Polygon, coplanarFront, coplanarBack, frontOut, backOut *[]Polygon) {
	polyType := 0
	types := make([]int, len(poly.Vertices))
	for i, v := range poly.Vertices {
		t := p.Normal.Dot(v.Pos) - p.W
		typ := coplanar
		if t < -Epsilon {
			typ = back
		} else if t > Epsilon {
			typ = front
		}
		types[i] = typ
		polyType |= typ
	}

	switch polyType {
	case coplanar:
		if p.Normal.Dot(poly.Plane.Normal) > 0 {
			*coplanarFront = append(*coplanarFront, poly)
		} else {
			*coplanarBack = append(*coplanarBack, poly)
		}
	case front:
		*frontOut = append(*frontOut, poly)
	case back:
		*backOut = append(*backOut, poly)
	case spanning:
		var f, b []Vertex
		n := len(poly.Vertices)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ti, tj := types[i], types[j]
			vi, vj := poly.Vertices[i], poly.Vertices[j]
			if ti != back {
				f = append(f, vi)
			}
			if ti != front {
				b = append(b, vi)
			}
			if (ti | tj) == spanning {
				t := (p.W - p.Normal.Dot(vi.Pos)) / p.Normal.Dot(vj.Pos.Sub(vi.Pos))
				mid := vi.Interpolate(vj, t)
				f = append(f, mid)
				b = append(b, mid)
			}
		}
		if len(f) >= 3 {
			*frontOut = append(*frontOut, Polygon{Vertices: f, Plane: poly.Plane})
		}
		if len(b) >= 3 {
			*backOut = append(*backOut, Polygon{Vertices: b, Plane: poly.Plane})
		}
	}
}
