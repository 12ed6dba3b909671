// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// Hit is the result of a successful raycast: the mesh that was hit,
// the triangle index within it, the world-space hit point, and the ray
// parameter (distance for unit-direction rays).
type Hit struct {
	Mesh     *mesh.Mesh
	Face     int
	Point    math32.Vector3
	Distance float32
}

// RaycastMesh intersects the ray with every triangle of the given mesh
// after transforming its vertices into world space, returning the hit
// with the smallest positive t, or nil if the ray misses.
func RaycastMesh(r Ray, m *mesh.Mesh) *Hit {
	g := m.Geometry
	world := m.WorldVertices()
	var best *Hit
	for t := 0; t < g.NumTriangles(); t++ {
		a := world.Vector3(int(g.Indices[t*3]))
		b := world.Vector3(int(g.Indices[t*3+1]))
		c := world.Vector3(int(g.Indices[t*3+2]))
		dist, _, _, ok := r.IntersectTriangle(a, b, c)
		if !ok {
			continue
		}
		if best == nil || dist < best.Distance {
			best = &Hit{Mesh: m, Face: t, Point: r.At(dist), Distance: dist}
		}
	}
	return best
}

// Raycast intersects the ray with every visible mesh in the given
// slice, returning the closest hit over all of them, or nil if the ray
// misses everything.
func Raycast(r Ray, meshes []*mesh.Mesh) *Hit {
	var best *Hit
	for _, m := range meshes {
		if m == nil || !m.Visible {
			continue
		}
		hit := RaycastMesh(r, m)
		if hit == nil {
			continue
		}
		if best == nil || hit.Distance < best.Distance {
			best = hit
		}
	}
	return best
}

// ClosestVertex returns the index of the mesh vertex whose world-space
// position is closest to the given point, or -1 for an empty mesh.
func ClosestVertex(m *mesh.Mesh, point math32.Vector3) int {
	world := m.WorldVertices()
	best := -1
	bestSq := math32.Infinity
	for i := 0; i < m.Geometry.VertexCount; i++ {
		dsq := point.DistanceToSquared(world.Vector3(i))
		if dsq < bestSq {
			bestSq = dsq
			best = i
		}
	}
	return best
}

// PointNearEdge reports whether the given world-space point is within
// threshold of edge edgeIndex of the mesh, measured to the closest
// point on the transformed segment.
func PointNearEdge(m *mesh.Mesh, point math32.Vector3, edgeIndex int, threshold float32) bool {
	if edgeIndex < 0 || edgeIndex >= len(m.Geometry.Edges) {
		return false
	}
	e := m.Geometry.Edges[edgeIndex]
	a := m.Transform.Apply(m.Geometry.Vertex(int(e.A)))
	b := m.Transform.Apply(m.Geometry.Vertex(int(e.B)))
	ab := b.Sub(a)
	lsq := ab.LengthSquared()
	t := float32(0)
	if lsq > 0 {
		t = math32.Clamp(point.Sub(a).Dot(ab)/lsq, 0, 1)
	}
	closest := a.Add(ab.MulScalar(t))
	return point.DistanceTo(closest) <= threshold
}
