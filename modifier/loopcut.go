// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// LoopCutOptions controls the [LoopCut] operator.
type LoopCutOptions struct {
	// NumberOfCuts is how many evenly spaced cut vertices to insert
	// on each selected edge.
	NumberOfCuts int
}

// LoopCut inserts evenly spaced cut vertices on each selected edge and
// retriangulates the adjacent triangles. Cut vertices are memoised per
// canonical edge so neighbouring triangles share them. A triangle with
// all three edges selected keeps its original triangulation, a known
// limitation. No cuts or no edges is a no-op.
func LoopCut(m *mesh.Mesh, edges []mesh.Edge, opts LoopCutOptions) *mesh.Mesh {
	k := opts.NumberOfCuts
	if k <= 0 || len(edges) == 0 {
		return unchanged(m)
	}
	g := m.Geometry
	vertices, normals, uvs := cloneBuffers(g)

	// cut vertices per canonical edge, ordered from Edge.A to Edge.B
	cuts := make(map[mesh.Edge][]uint32, len(edges))
	for _, raw := range edges {
		e := mesh.NewEdge(raw.A, raw.B)
		if _, done := cuts[e]; done || int(e.A) >= g.VertexCount || int(e.B) >= g.VertexCount {
			continue
		}
		list := make([]uint32, 0, k)
		for c := 1; c <= k; c++ {
			t := float32(c) / float32(k+1)
			list = append(list, uint32(len(vertices)/3))
			vertices = vertices.AppendVector3(g.Vertex(int(e.A)).Lerp(g.Vertex(int(e.B)), t))
			normals = normals.AppendVector3(g.Normal(int(e.A)).Lerp(g.Normal(int(e.B)), t).Normal())
			uvs = uvs.AppendVector2(g.UV(int(e.A)).Lerp(g.UV(int(e.B)), t))
		}
		cuts[e] = list
	}
	if len(cuts) == 0 {
		return unchanged(m)
	}

	// cutsFrom returns the cut vertices of edge (from, to) ordered
	// outward from the from endpoint, or nil if the edge is not cut.
	cutsFrom := func(from, to uint32) []uint32 {
		e := mesh.NewEdge(from, to)
		list, ok := cuts[e]
		if !ok {
			return nil
		}
		if from == e.A {
			return list
		}
		rev := make([]uint32, len(list))
		for i, c := range list {
			rev[len(list)-1-i] = c
		}
		return rev
	}

	indices := math32.ArrayU32{}
	for t := 0; t < g.NumTriangles(); t++ {
		tri := [3]uint32{g.Indices[t*3], g.Indices[t*3+1], g.Indices[t*3+2]}
		cut := [3][]uint32{
			cutsFrom(tri[0], tri[1]),
			cutsFrom(tri[1], tri[2]),
			cutsFrom(tri[2], tri[0]),
		}
		numCut := 0
		for _, c := range cut {
			if c != nil {
				numCut++
			}
		}
		switch numCut {
		case 1:
			var ei int
			for i, c := range cut {
				if c != nil {
					ei = i
				}
			}
			a := tri[ei]
			b := tri[(ei+1)%3]
			opp := tri[(ei+2)%3]
			// fan from the opposite vertex through [a, cuts..., b]
			seq := append(append([]uint32{a}, cut[ei]...), b)
			for i := 0; i+1 < len(seq); i++ {
				indices = append(indices, opp, seq[i], seq[i+1])
			}
		case 2:
			// the two cut edges share a corner s; walk both edge cut
			// lists outward from s, finding the corner whose two
			// incident edges are both cut
			var s, o1, o2 uint32
			var cutsA, cutsB []uint32
			for i := 0; i < 3; i++ {
				out := cut[i]      // edge tri[i] -> tri[i+1]
				in := cut[(i+2)%3] // edge tri[i+2] -> tri[i]
				if out != nil && in != nil {
					s = tri[i]
					o1 = tri[(i+1)%3]
					o2 = tri[(i+2)%3]
					cutsA = cutsFrom(s, o1)
					cutsB = cutsFrom(s, o2)
					break
				}
			}
			if cutsA == nil || cutsB == nil {
				indices = append(indices, tri[0], tri[1], tri[2])
				continue
			}
			// tip triangle at the shared corner
			indices = append(indices, s, cutsA[0], cutsB[0])
			// quad strip through corresponding cut pairs
			for i := 0; i+1 < len(cutsA); i++ {
				indices = append(indices,
					cutsA[i], cutsA[i+1], cutsB[i+1],
					cutsA[i], cutsB[i+1], cutsB[i],
				)
			}
			// base band joining the last cuts to the far vertices
			last := len(cutsA) - 1
			indices = append(indices,
				cutsA[last], o1, o2,
				cutsA[last], o2, cutsB[last],
			)
		default:
			// 0 cuts, or 3 cuts which is kept as-is
			indices = append(indices, tri[0], tri[1], tri[2])
		}
	}

	return m.WithGeometry(mesh.NewGeometry(vertices, normals, uvs, indices))
}
