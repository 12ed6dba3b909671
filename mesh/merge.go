// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/zos-apps/zmodel/math32"

// mergeBucket quantises a position to four decimal digits per
// component, so vertices that agree to that precision land in the
// same bucket.
type mergeBucket struct {
	x, y, z int32
}

func bucketFor(v math32.Vector3) mergeBucket {
	return mergeBucket{
		x: int32(math32.Round(v.X * 10000)),
		y: int32(math32.Round(v.Y * 10000)),
		z: int32(math32.Round(v.Z * 10000)),
	}
}

// MergeCloseVertices merges vertices whose positions agree within the
// given threshold, remapping the index buffer onto the surviving
// vertices and compacting the buffers. Candidates are bucketed by
// position rounded to four decimal digits, then compared by distance
// against the threshold within the bucket; close vertices that round
// into different buckets are not merged. The first vertex of each merged group keeps its normal and
// UV. Returns a new geometry with rebuilt derived data.
func MergeCloseVertices(g *Geometry, threshold float32) *Geometry {
	if threshold <= 0 {
		threshold = 1e-4
	}
	thrSq := threshold * threshold

	buckets := make(map[mergeBucket][]int, g.VertexCount)
	remap := make([]uint32, g.VertexCount)
	var vertices, normals, uvs math32.ArrayF32
	next := uint32(0)

	for i := 0; i < g.VertexCount; i++ {
		v := g.Vertex(i)
		bk := bucketFor(v)
		merged := false
		for _, j := range buckets[bk] {
			if v.DistanceToSquared(vertices.Vector3(j)) <= thrSq {
				remap[i] = uint32(j)
				merged = true
				break
			}
		}
		if merged {
			continue
		}
		remap[i] = next
		buckets[bk] = append(buckets[bk], int(next))
		vertices = vertices.AppendVector3(v)
		normals = normals.AppendVector3(g.Normal(i))
		uvs = uvs.AppendVector2(g.UV(i))
		next++
	}

	indices := math32.NewArrayU32(len(g.Indices))
	for i, ix := range g.Indices {
		indices[i] = remap[ix]
	}
	return NewGeometry(vertices, normals, uvs, indices)
}
