// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// SubdivideOptions controls the [Subdivide] operator.
type SubdivideOptions struct {
	// Iterations is how many full subdivision passes to run.
	Iterations int

	// Smooth blends the original vertices toward their adjacency
	// centroid after each split, giving a Catmull-Clark flavoured
	// rounding.
	Smooth bool
}

// Subdivide splits every triangle into four by inserting edge
// midpoints, memoised so triangles sharing an edge share its midpoint
// vertex. Midpoint attributes are interpolated at t = 0.5 with the
// normal renormalised. Zero iterations is a no-op.
func Subdivide(m *mesh.Mesh, opts SubdivideOptions) *mesh.Mesh {
	if opts.Iterations <= 0 {
		return unchanged(m)
	}
	g := m.Geometry.Clone()
	for it := 0; it < opts.Iterations; it++ {
		g = subdivideOnce(g, opts.Smooth)
	}
	return m.WithGeometry(g)
}

func subdivideOnce(g *mesh.Geometry, smooth bool) *mesh.Geometry {
	vertices, normals, uvs := cloneBuffers(g)
	originalCount := g.VertexCount

	midpoints := make(map[mesh.Edge]uint32)
	midpoint := func(a, b uint32) uint32 {
		e := mesh.NewEdge(a, b)
		if mi, ok := midpoints[e]; ok {
			return mi
		}
		mi := uint32(len(vertices) / 3)
		midpoints[e] = mi
		vertices = vertices.AppendVector3(g.Vertex(int(a)).Lerp(g.Vertex(int(b)), 0.5))
		normals = normals.AppendVector3(g.Normal(int(a)).Lerp(g.Normal(int(b)), 0.5).Normal())
		uvs = uvs.AppendVector2(g.UV(int(a)).Lerp(g.UV(int(b)), 0.5))
		return mi
	}

	indices := math32.ArrayU32{}
	for t := 0; t < g.NumTriangles(); t++ {
		v0 := g.Indices[t*3]
		v1 := g.Indices[t*3+1]
		v2 := g.Indices[t*3+2]
		m01 := midpoint(v0, v1)
		m12 := midpoint(v1, v2)
		m20 := midpoint(v2, v0)
		indices = append(indices,
			v0, m01, m20,
			v1, m12, m01,
			v2, m20, m12,
			m01, m12, m20,
		)
	}

	out := mesh.NewGeometry(vertices, normals, uvs, indices)
	if smooth {
		smoothOriginals(out, originalCount)
	}
	return out
}

// smoothOriginals moves each original vertex toward the centroid of
// its adjacent vertices in the subdivided topology, blended at 0.25.
// Midpoint vertices stay where interpolation put them.
func smoothOriginals(g *mesh.Geometry, originalCount int) {
	adj := make(map[uint32]map[uint32]bool)
	for _, e := range g.Edges {
		if adj[e.A] == nil {
			adj[e.A] = make(map[uint32]bool)
		}
		if adj[e.B] == nil {
			adj[e.B] = make(map[uint32]bool)
		}
		adj[e.A][e.B] = true
		adj[e.B][e.A] = true
	}
	for vi := 0; vi < originalCount; vi++ {
		neighbors := adj[uint32(vi)]
		if len(neighbors) == 0 {
			continue
		}
		var centroid math32.Vector3
		for ni := range neighbors {
			centroid.SetAdd(g.Vertex(int(ni)))
		}
		centroid = centroid.DivScalar(float32(len(neighbors)))
		g.SetVertex(vi, g.Vertex(vi).Lerp(centroid, 0.25))
	}
}
