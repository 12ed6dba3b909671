// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// BlendMode shapes the interpolation parameter of [Bridge].
type BlendMode int32

const (
	// BlendLinear interpolates at the raw parameter.
	BlendLinear BlendMode = iota

	// BlendSmooth applies the smoothstep curve 3t²−2t³.
	BlendSmooth

	// BlendSphere bulges the parameter along a half circle.
	BlendSphere
)

// BridgeOptions controls the [Bridge] operator.
type BridgeOptions struct {
	// Twist rotates the pairing between the two loops by this many
	// steps. With equal-size loops and zero twist, the pairing offset
	// minimising total span length is chosen automatically.
	Twist int

	// Segments is the number of quad rings to insert, at least 1.
	Segments int

	// Smoothness in [0, 1] bulges intermediate loops outward along
	// the averaged loop normals.
	Smoothness float32

	// Blend is the interpolation curve between the loops.
	Blend BlendMode
}

func blendParam(mode BlendMode, t float32) float32 {
	switch mode {
	case BlendSmooth:
		return 3*t*t - 2*t*t*t
	case BlendSphere:
		x := 2*t - 1
		return 0.5*math32.Sqrt(1-x*x) + 0.5
	}
	return t
}

// Bridge connects two vertex loops of the mesh with a tube of quads,
// optionally inserting intermediate loops shaped by the blend curve
// and a smoothness bulge. Loops with fewer than three vertices are a
// no-op.
func Bridge(m *mesh.Mesh, loop1, loop2 []int, opts BridgeOptions) *mesh.Mesh {
	if len(loop1) < 3 || len(loop2) < 3 {
		return unchanged(m)
	}
	g := m.Geometry
	segments := opts.Segments
	if segments < 1 {
		segments = 1
	}

	offset := opts.Twist
	if len(loop1) == len(loop2) && opts.Twist == 0 {
		offset = bestAlignment(g, loop1, loop2)
	}

	n := len(loop1)
	pair := func(i int) int {
		j := (i + offset) % len(loop2)
		if j < 0 {
			j += len(loop2)
		}
		return loop2[j]
	}

	vertices, normals, uvs := cloneBuffers(g)

	// rings[s][i] is the vertex index of ring s at loop position i;
	// ring 0 is loop1 and ring segments is the paired loop2
	rings := make([][]uint32, segments+1)
	rings[0] = make([]uint32, n)
	rings[segments] = make([]uint32, n)
	for i := 0; i < n; i++ {
		rings[0][i] = uint32(loop1[i])
		rings[segments][i] = uint32(pair(i))
	}
	for s := 1; s < segments; s++ {
		t := float32(s) / float32(segments)
		tb := blendParam(opts.Blend, t)
		ring := make([]uint32, n)
		for i := 0; i < n; i++ {
			i1 := loop1[i]
			i2 := pair(i)
			p1 := g.Vertex(i1)
			p2 := g.Vertex(i2)
			pos := p1.Lerp(p2, tb)
			if opts.Smoothness > 0 {
				bulgeDir := g.Normal(i1).Add(g.Normal(i2)).Normal()
				bulge := math32.Sin(math32.Pi*t) * opts.Smoothness * p1.DistanceTo(p2) * 0.25
				pos = pos.Add(bulgeDir.MulScalar(bulge))
			}
			ring[i] = uint32(len(vertices) / 3)
			vertices = vertices.AppendVector3(pos)
			normals = normals.AppendVector3(g.Normal(i1).Lerp(g.Normal(i2), tb).Normal())
			uvs = uvs.AppendVector2(g.UV(i1).Lerp(g.UV(i2), tb))
		}
		rings[s] = ring
	}

	indices := g.Indices.Clone()
	for s := 0; s < segments; s++ {
		r0 := rings[s]
		r1 := rings[s+1]
		for i := 0; i < n; i++ {
			i1 := (i + 1) % n
			indices = append(indices,
				r0[i], r1[i], r1[i1],
				r0[i], r1[i1], r0[i1],
			)
		}
	}

	return m.WithGeometry(mesh.NewGeometry(vertices, normals, uvs, indices))
}

// bestAlignment picks the loop2 rotation minimising the total length
// of the spans between paired vertices.
func bestAlignment(g *mesh.Geometry, loop1, loop2 []int) int {
	best := 0
	bestSum := math32.Infinity
	for off := 0; off < len(loop2); off++ {
		sum := float32(0)
		for i := range loop1 {
			p1 := g.Vertex(loop1[i])
			p2 := g.Vertex(loop2[(i+off)%len(loop2)])
			sum += p1.DistanceTo(p2)
		}
		if sum < bestSum {
			bestSum = sum
			best = off
		}
	}
	return best
}

// DetectEdgeLoops groups the given selected edges into closed loops of
// at least three vertices by walking unvisited neighbours in the
// adjacency they induce. An open chain ends the walk without emitting a
// loop. At a vertex with more than two selected neighbours the walk
// follows the first listed neighbour other than the one it came from.
func DetectEdgeLoops(edges []mesh.Edge) [][]int {
	adj := make(map[uint32][]uint32)
	for _, e := range edges {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}

	visited := make(map[uint32]bool)
	var loops [][]int
	for _, e := range edges {
		start := e.A
		if visited[start] {
			continue
		}
		loop := []int{int(start)}
		visited[start] = true
		prev := start
		cur := e.B
		closed := false
		for !visited[cur] {
			visited[cur] = true
			loop = append(loop, int(cur))
			next, ok := nextNeighbor(adj, cur, prev)
			if !ok {
				break
			}
			prev, cur = cur, next
		}
		if cur == start && len(loop) >= 3 {
			closed = true
		}
		if closed {
			loops = append(loops, loop)
		}
	}
	return loops
}

// nextNeighbor returns the neighbour of cur that is not prev.
func nextNeighbor(adj map[uint32][]uint32, cur, prev uint32) (uint32, bool) {
	for _, nb := range adj[cur] {
		if nb != prev {
			return nb, true
		}
	}
	return 0, false
}
