// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

// The BSP tree is stored as an arena of nodes indexed by position,
// with -1 meaning no child. Nothing recurses natively, since tree depth
// is unbounded on pathological input: Build and ClipPolygons use
// explicit work stacks, and Invert, ClipTo and AllPolygons walk the
// arena in a flat loop.

const noChild = int32(-1)

type node struct {
	plane    Plane
	polygons []Polygon
	front    int32
	back     int32
}

// BSP is a binary space partitioning tree of polygons. The zero value
// is not usable; use [NewBSP].
type BSP struct {
	nodes []node
}

// NewBSP returns a BSP tree built from the given polygons. An empty
// polygon list yields a valid empty tree.
func NewBSP(polygons []Polygon) *BSP {
	b := &BSP{}
	b.newNode()
	b.Build(polygons)
	return b
}

func (b *BSP) newNode() int32 {
	b.nodes = append(b.nodes, node{front: noChild, back: noChild})
	return int32(len(b.nodes) - 1)
}

type buildWork struct {
	id       int32
	polygons []Polygon
}

// Build inserts the given polygons into the tree. Each new node takes
// the plane of the first polygon that reaches it as its split plane.
func (b *BSP) Build(polygons []Polygon) {
	if len(polygons) == 0 {
		return
	}
	stack := []buildWork{{id: 0, polygons: polygons}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(w.polygons) == 0 {
			continue
		}
		nd := &b.nodes[w.id]
		if !nd.plane.OK() {
			nd.plane = w.polygons[0].Plane
		}
		var frontPolys, backPolys []Polygon
		for _, p := range w.polygons {
			// coplanar polygons stay at this node
			nd.plane.Split(p, &nd.polygons, &nd.polygons, &frontPolys, &backPolys)
		}
		if len(frontPolys) > 0 {
			if nd.front == noChild {
				id := b.newNode()
				nd = &b.nodes[w.id] // newNode may have moved the arena
				nd.front = id
			}
			stack = append(stack, buildWork{id: nd.front, polygons: frontPolys})
		}
		if len(backPolys) > 0 {
			if nd.back == noChild {
				id := b.newNode()
				nd = &b.nodes[w.id]
				nd.back = id
			}
			stack = append(stack, buildWork{id: nd.back, polygons: backPolys})
		}
	}
}

// Invert converts the tree to represent the complement of its solid:
// every polygon and plane is flipped and the front/back children of
// every node are swapped.
func (b *BSP) Invert() {
	for i := range b.nodes {
		nd := &b.nodes[i]
		for pi := range nd.polygons {
			nd.polygons[pi] = nd.polygons[pi].Flipped()
		}
		if nd.plane.OK() {
			nd.plane = nd.plane.Flipped()
		}
		nd.front, nd.back = nd.back, nd.front
	}
}

// ClipPolygons returns the subset of the given polygons that is not
// inside the solid represented by this tree, splitting spanning
// polygons as needed. Polygons that reach a missing back subtree are
// inside the solid and are discarded; those that reach a missing front
// subtree are kept.
func (b *BSP) ClipPolygons(polygons []Polygon) []Polygon {
	var result []Polygon
	stack := []buildWork{{id: 0, polygons: polygons}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &b.nodes[w.id]
		if !nd.plane.OK() {
			result = append(result, w.polygons...)
			continue
		}
		var frontPolys, backPolys []Polygon
		for _, p := range w.polygons {
			nd.plane.Split(p, &frontPolys, &backPolys, &frontPolys, &backPolys)
		}
		if nd.front != noChild {
			stack = append(stack, buildWork{id: nd.front, polygons: frontPolys})
		} else {
			result = append(result, frontPolys...)
		}
		if nd.back != noChild && len(backPolys) > 0 {
			stack = append(stack, buildWork{id: nd.back, polygons: backPolys})
		}
	}
	return result
}

// ClipTo removes every polygon of this tree that is inside the solid
// of the other tree.
func (b *BSP) ClipTo(other *BSP) {
	for i := range b.nodes {
		b.nodes[i].polygons = other.ClipPolygons(b.nodes[i].polygons)
	}
}

// AllPolygons returns every polygon stored in the tree.
func (b *BSP) AllPolygons() []Polygon {
	var all []Polygon
	for i := range b.nodes {
		all = append(all, b.nodes[i].polygons...)
	}
	return all
}
