// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"github.com/zos-apps/zmodel/logx"
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// DecimateMode selects the decimation strategy.
type DecimateMode int32

const (
	// DecimateCollapse performs quadric-error edge collapses.
	DecimateCollapse DecimateMode = iota

	// DecimatePlanar is accepted and currently delegates to collapse.
	DecimatePlanar

	// DecimateUnsubdivide is accepted and currently delegates to collapse.
	DecimateUnsubdivide
)

// DecimateOptions controls the [Decimate] operator.
type DecimateOptions struct {
	// Ratio is the target fraction of the input triangle count, with a
	// floor of four triangles. A ratio of 1 or more is a no-op.
	Ratio float32

	Mode DecimateMode
}

// minTriangles is the decimation floor.
const minTriangles = 4

// quadric is a symmetric 4x4 error matrix stored as its ten distinct
// scalars: xx, xy, xz, xw, yy, yz, yw, zz, zw, ww.
type quadric [10]float32

// addPlane accumulates the outer product of the homogeneous plane
// equation (a, b, c, d).
func (q *quadric) addPlane(a, b, c, d float32) {
	q[0] += a * a
	q[1] += a * b
	q[2] += a * c
	q[3] += a * d
	q[4] += b * b
	q[5] += b * c
	q[6] += b * d
	q[7] += c * c
	q[8] += c * d
	q[9] += d * d
}

// add accumulates another quadric.
func (q *quadric) add(other quadric) {
	for i := range q {
		q[i] += other[i]
	}
}

// errorAt evaluates v'Qv at the given position.
func (q quadric) errorAt(v math32.Vector3) float32 {
	return q[0]*v.X*v.X + 2*q[1]*v.X*v.Y + 2*q[2]*v.X*v.Z + 2*q[3]*v.X +
		q[4]*v.Y*v.Y + 2*q[5]*v.Y*v.Z + 2*q[6]*v.Y +
		q[7]*v.Z*v.Z + 2*q[8]*v.Z +
		q[9]
}

func hasVertex(v [3]uint32, x uint32) bool {
	return v[0] == x || v[1] == x || v[2] == x
}

// Decimate reduces the triangle count to ratio times the input count
// (never below four triangles) by repeatedly collapsing the edge with
// the smallest quadric error, evaluated at the edge midpoint. Vertex
// normals are recomputed from the surviving faces. The planar and
// unsubdivide modes are accepted aliases of collapse.
func Decimate(m *mesh.Mesh, opts DecimateOptions) *mesh.Mesh {
	g := m.Geometry
	if opts.Ratio >= 1 || g.NumTriangles() <= minTriangles {
		return unchanged(m)
	}
	target := int(math32.Floor(float32(g.NumTriangles()) * opts.Ratio))
	if target < minTriangles {
		target = minTriangles
	}

	positions := make([]math32.Vector3, g.VertexCount)
	quadrics := make([]quadric, g.VertexCount)
	for i := range positions {
		positions[i] = g.Vertex(i)
	}

	type tri struct {
		v     [3]uint32
		alive bool
	}
	tris := make([]tri, g.NumTriangles())
	for t := range tris {
		tris[t] = tri{v: [3]uint32{g.Indices[t*3], g.Indices[t*3+1], g.Indices[t*3+2]}, alive: true}
		a := positions[tris[t].v[0]]
		b := positions[tris[t].v[1]]
		c := positions[tris[t].v[2]]
		n := math32.Normal(a, b, c)
		d := -n.Dot(a)
		for _, vi := range tris[t].v {
			quadrics[vi].addPlane(n.X, n.Y, n.Z, d)
		}
	}

	edges := make(map[mesh.Edge]bool, len(g.Edges))
	for _, e := range g.Edges {
		edges[e] = true
	}

	aliveTris := len(tris)
	collapses := 0
	for aliveTris > target {
		// cheapest surviving edge by midpoint quadric error
		var bestEdge mesh.Edge
		bestErr := math32.Infinity
		found := false
		for e := range edges {
			mid := positions[e.A].Lerp(positions[e.B], 0.5)
			q := quadrics[e.A]
			q.add(quadrics[e.B])
			err := q.errorAt(mid)
			if err < bestErr {
				bestErr = err
				bestEdge = e
				found = true
			}
		}
		if !found {
			break
		}

		v1, v2 := bestEdge.A, bestEdge.B

		// faces containing both endpoints degenerate on collapse;
		// never overshoot below the floor
		removed := 0
		for t := range tris {
			if tris[t].alive && hasVertex(tris[t].v, v1) && hasVertex(tris[t].v, v2) {
				removed++
			}
		}
		if aliveTris-removed < minTriangles {
			delete(edges, bestEdge)
			continue
		}
		positions[v1] = positions[v1].Lerp(positions[v2], 0.5)
		quadrics[v1].add(quadrics[v2])
		delete(edges, bestEdge)

		for t := range tris {
			if !tris[t].alive {
				continue
			}
			changed := false
			for k := 0; k < 3; k++ {
				if tris[t].v[k] == v2 {
					tris[t].v[k] = v1
					changed = true
				}
			}
			if !changed {
				continue
			}
			v := tris[t].v
			if v[0] == v[1] || v[1] == v[2] || v[2] == v[0] {
				tris[t].alive = false
				aliveTris--
			}
		}

		// reroute surviving edges of v2 onto v1
		for e := range edges {
			if !e.Has(v2) {
				continue
			}
			delete(edges, e)
			other := e.Other(v2)
			if other != v1 {
				edges[mesh.NewEdge(v1, other)] = true
			}
		}
		collapses++
	}
	logx.Debug("decimate", "mode", opts.Mode, "collapses", collapses,
		"trianglesIn", len(tris), "trianglesOut", aliveTris)

	// compact surviving vertices and faces
	remap := make([]uint32, g.VertexCount)
	used := make([]bool, g.VertexCount)
	for t := range tris {
		if tris[t].alive {
			for _, vi := range tris[t].v {
				used[vi] = true
			}
		}
	}
	var vertices, normals, uvs math32.ArrayF32
	next := uint32(0)
	for i := 0; i < g.VertexCount; i++ {
		if !used[i] {
			continue
		}
		remap[i] = next
		vertices = vertices.AppendVector3(positions[i])
		normals = normals.AppendVector3(g.Normal(i))
		uvs = uvs.AppendVector2(g.UV(i))
		next++
	}
	var indices math32.ArrayU32
	for t := range tris {
		if tris[t].alive {
			indices = append(indices, remap[tris[t].v[0]], remap[tris[t].v[1]], remap[tris[t].v[2]])
		}
	}

	out := mesh.NewGeometry(vertices, normals, uvs, indices)
	out.RecomputeNormals()
	return m.WithGeometry(out)
}
