// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// KnifeOptions controls the [Knife] operator.
type KnifeOptions struct {
	// ThroughCut extends every path segment far beyond its endpoints
	// so the cut passes through the whole mesh.
	ThroughCut bool

	// AngleConstraint is carried for hosts that snap the path while
	// drawing; the kernel stores it but does not enforce it.
	AngleConstraint float32
}

// knifeEps rejects intersections too close to a segment endpoint and
// parallel segment/triangle pairs.
const knifeEps = 1e-6

// nearVertexBary is the barycentric coordinate above which a hit
// counts as grazing a vertex and is not turned into an edge split.
const nearVertexBary = 0.95

// Knife cuts the mesh along the polyline given in the mesh's
// coordinate space. Each path segment is intersected with every
// triangle; each intersection splits the triangle edge it lands
// closest to, and the triangle is retriangulated around the new
// vertices. Triangles collecting more than two cuts keep their
// original shape, a known limitation. Fewer than two path points is a
// no-op.
func Knife(m *mesh.Mesh, path []math32.Vector3, opts KnifeOptions) *mesh.Mesh {
	if len(path) < 2 {
		return unchanged(m)
	}
	g := m.Geometry
	vertices, normals, uvs := cloneBuffers(g)

	// edge splits are shared across the two triangles of an edge
	splitVertex := make(map[mesh.Edge]uint32)
	// per triangle: cut vertex per local edge (0,1,2), or nil
	cuts := make([][3]*uint32, g.NumTriangles())

	addCut := func(t, localEdge int, from, to uint32, s float32) {
		if cuts[t][localEdge] != nil {
			return
		}
		e := mesh.NewEdge(from, to)
		ci, ok := splitVertex[e]
		if !ok {
			ci = uint32(len(vertices) / 3)
			splitVertex[e] = ci
			vertices = vertices.AppendVector3(g.Vertex(int(from)).Lerp(g.Vertex(int(to)), s))
			normals = normals.AppendVector3(g.Normal(int(from)).Lerp(g.Normal(int(to)), s).Normal())
			uvs = uvs.AppendVector2(g.UV(int(from)).Lerp(g.UV(int(to)), s))
		}
		cuts[t][localEdge] = &ci
	}

	for seg := 0; seg+1 < len(path); seg++ {
		p1 := path[seg]
		p2 := path[seg+1]
		if opts.ThroughCut {
			dir := p2.Sub(p1).Normal()
			p1 = p1.Sub(dir.MulScalar(1000))
			p2 = p2.Add(dir.MulScalar(1000))
		}
		dir := p2.Sub(p1)

		for t := 0; t < g.NumTriangles(); t++ {
			tri := [3]uint32{g.Indices[t*3], g.Indices[t*3+1], g.Indices[t*3+2]}
			v0 := g.Vertex(int(tri[0]))
			v1 := g.Vertex(int(tri[1]))
			v2 := g.Vertex(int(tri[2]))

			// segment/triangle Möller–Trumbore: t is the segment
			// parameter and must stay within [0, 1]
			e1 := v1.Sub(v0)
			e2 := v2.Sub(v0)
			h := dir.Cross(e2)
			det := e1.Dot(h)
			if math32.Abs(det) < knifeEps {
				// a segment lying in the triangle's plane cannot be
				// intersected point-wise; cut crossing edges with the
				// plane spanned by the segment and the face normal
				cutCoplanar(g, t, tri, p1, dir, addCut)
				continue
			}
			invDet := 1 / det
			sv := p1.Sub(v0)
			u := sv.Dot(h) * invDet
			if u < 0 || u > 1 {
				continue
			}
			q := sv.Cross(e1)
			v := dir.Dot(q) * invDet
			if v < 0 || u+v > 1 {
				continue
			}
			st := e2.Dot(q) * invDet
			if st < knifeEps || st > 1-knifeEps {
				continue
			}

			bary := [3]float32{1 - u - v, u, v}
			if bary[0] > nearVertexBary || bary[1] > nearVertexBary || bary[2] > nearVertexBary {
				continue
			}
			// split the edge opposite the smallest barycentric
			// coordinate; local edge k runs tri[k] -> tri[k+1]
			opp := 0
			if bary[1] < bary[opp] {
				opp = 1
			}
			if bary[2] < bary[opp] {
				opp = 2
			}
			localEdge := (opp + 1) % 3
			i := localEdge
			j := (localEdge + 1) % 3
			s := bary[j] / (bary[i] + bary[j])
			addCut(t, localEdge, tri[i], tri[j], s)
		}
	}

	indices := math32.ArrayU32{}
	for t := 0; t < g.NumTriangles(); t++ {
		tri := [3]uint32{g.Indices[t*3], g.Indices[t*3+1], g.Indices[t*3+2]}
		numCut := 0
		for _, c := range cuts[t] {
			if c != nil {
				numCut++
			}
		}
		switch numCut {
		case 1:
			var ei int
			for i, c := range cuts[t] {
				if c != nil {
					ei = i
				}
			}
			a := tri[ei]
			b := tri[(ei+1)%3]
			opp := tri[(ei+2)%3]
			c := *cuts[t][ei]
			indices = append(indices,
				opp, a, c,
				opp, c, b,
			)
		case 2:
			// the cut edges meet at a shared corner s
			done := false
			for i := 0; i < 3 && !done; i++ {
				out := cuts[t][i]
				in := cuts[t][(i+2)%3]
				if out == nil || in == nil {
					continue
				}
				s := tri[i]
				o1 := tri[(i+1)%3]
				o2 := tri[(i+2)%3]
				indices = append(indices,
					s, *out, *in,
					*out, o1, o2,
					*out, o2, *in,
				)
				done = true
			}
			if !done {
				indices = append(indices, tri[0], tri[1], tri[2])
			}
		default:
			// 0 cuts, or 3+ which is kept as-is
			indices = append(indices, tri[0], tri[1], tri[2])
		}
	}

	return m.WithGeometry(mesh.NewGeometry(vertices, normals, uvs, indices))
}

// cutCoplanar handles a knife segment coplanar with triangle t: the
// cutting plane contains the segment and the face normal, and every
// triangle edge crossing it within the segment's extent is split.
func cutCoplanar(g *mesh.Geometry, t int, tri [3]uint32, p1, dir math32.Vector3,
	addCut func(t, localEdge int, from, to uint32, s float32)) {
	faceNormal := g.FaceNormal(t)
	planeNormal := dir.Cross(faceNormal).Normal()
	if planeNormal.LengthSquared() == 0 {
		return
	}
	// the segment must actually lie in the triangle's plane
	if math32.Abs(p1.Sub(g.Vertex(int(tri[0]))).Dot(faceNormal)) > 1e-4 {
		return
	}
	w := planeNormal.Dot(p1)
	lenSq := dir.LengthSquared()
	for k := 0; k < 3; k++ {
		from := tri[k]
		to := tri[(k+1)%3]
		a := g.Vertex(int(from))
		b := g.Vertex(int(to))
		da := planeNormal.Dot(a) - w
		db := planeNormal.Dot(b) - w
		if (da > 0) == (db > 0) || da == db {
			continue
		}
		s := da / (da - db)
		if s <= knifeEps || s >= 1-knifeEps {
			continue
		}
		// clamp to the segment's extent along its direction
		hit := a.Lerp(b, s)
		st := hit.Sub(p1).Dot(dir) / lenSq
		if st < 0 || st > 1 {
			continue
		}
		addCut(t, k, from, to, s)
	}
}

// KnifeProject flattens the edges of the projected mesh into a
// world-space polyline and cuts the target mesh along it with a
// through cut.
func KnifeProject(m *mesh.Mesh, projected *mesh.Mesh) *mesh.Mesh {
	pg := projected.Geometry
	path := make([]math32.Vector3, 0, len(pg.Edges)*2)
	for _, e := range pg.Edges {
		path = append(path,
			projected.Transform.Apply(pg.Vertex(int(e.A))),
			projected.Transform.Apply(pg.Vertex(int(e.B))),
		)
	}
	return Knife(m, path, KnifeOptions{ThroughCut: true})
}
