// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sculpt

import (
	"math/rand"

	"github.com/zos-apps/zmodel/logx"
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
)

// Engine applies brush strokes to one bound mesh, mutating its vertex
// positions in place. The mesh is exclusively owned by the engine
// between [Engine.SetMesh] calls; pointer events must arrive from a
// single goroutine.
type Engine struct {
	mesh      *mesh.Mesh
	brush     BrushSettings
	symmetry  [3]bool
	snapshot  math32.ArrayF32
	neighbors [][]uint32
	touched   map[int]bool
	stroking  bool
	rand      *rand.Rand
}

// NewEngine returns an engine with the default brush and no bound mesh.
func NewEngine() *Engine {
	return &Engine{
		brush: DefaultBrush(),
		rand:  rand.New(rand.NewSource(1)),
	}
}

// SetMesh binds the given mesh to the engine, releasing any previous
// one. Any in-progress stroke is discarded.
func (e *Engine) SetMesh(m *mesh.Mesh) {
	e.mesh = m
	e.snapshot = nil
	e.touched = nil
	e.stroking = false
	e.neighbors = nil
	if m != nil {
		e.buildNeighbors()
	}
}

// SetBrush replaces the active brush settings.
func (e *Engine) SetBrush(bs BrushSettings) {
	e.brush = bs
}

// Brush returns the active brush settings.
func (e *Engine) Brush() BrushSettings {
	return e.brush
}

// SetSymmetry enables or disables stroke mirroring across the given
// world-axis plane.
func (e *Engine) SetSymmetry(axis math32.Dims, on bool) {
	e.symmetry[axis] = on
}

// buildNeighbors caches the 1-ring adjacency from the mesh edge list,
// used by the smooth brush and auto-smooth.
func (e *Engine) buildNeighbors() {
	g := e.mesh.Geometry
	e.neighbors = make([][]uint32, g.VertexCount)
	for _, edge := range g.Edges {
		e.neighbors[edge.A] = append(e.neighbors[edge.A], edge.B)
		e.neighbors[edge.B] = append(e.neighbors[edge.B], edge.A)
	}
}

// BeginStroke snapshots the vertex positions so the stroke can be
// undone, and starts accepting pointer moves.
func (e *Engine) BeginStroke(hit math32.Vector3) {
	if e.mesh == nil {
		return
	}
	e.snapshot = e.mesh.Geometry.Vertices.Clone()
	e.touched = make(map[int]bool)
	e.stroking = true
	logx.Debug("sculpt stroke begin", "brush", e.brush.Type.String(), "hit", hit)
}

// UpdateStroke applies one pointer-move step of the active brush at
// the given world-space hit point with the given pointer delta, then
// replays the step across every enabled symmetry plane. Calling it
// without a stroke in progress is a no-op.
func (e *Engine) UpdateStroke(hit, delta math32.Vector3) {
	if !e.stroking || e.mesh == nil {
		return
	}
	e.applyStep(hit, delta)
	for axis := math32.X; axis <= math32.Z; axis++ {
		if !e.symmetry[axis] {
			continue
		}
		rh := hit
		rh.SetDim(int(axis), -rh.Dim(int(axis)))
		rd := delta
		rd.SetDim(int(axis), -rd.Dim(int(axis)))
		e.applyStep(rh, rd)
	}
}

// applyStep runs the collect-weight-displace cycle once.
func (e *Engine) applyStep(hit, delta math32.Vector3) {
	g := e.mesh.Geometry
	tr := e.mesh.Transform
	strength := e.brush.Strength
	if e.brush.Invert {
		strength = -strength
	}

	// affected vertices and their weights, in world space
	affected := make([]int, 0, 64)
	weights := make([]float32, 0, 64)
	world := make([]math32.Vector3, 0, 64)
	for i := 0; i < g.VertexCount; i++ {
		wp := tr.Apply(g.Vertex(i))
		d := wp.DistanceTo(hit)
		if d > e.brush.Radius {
			continue
		}
		w := falloff(e.brush.Falloff, d, e.brush.Radius, e.rand.Float32()) * strength
		if w == 0 {
			continue
		}
		affected = append(affected, i)
		weights = append(weights, w)
		world = append(world, wp)
	}
	if len(affected) == 0 {
		return
	}

	// flatten works against the average normal plane through the hit
	var avgNormal math32.Vector3
	if e.brush.Type == Flatten {
		for _, i := range affected {
			avgNormal.SetAdd(tr.ApplyNormal(g.Normal(i)))
		}
		avgNormal = avgNormal.Normal()
	}

	for k, i := range affected {
		w := weights[k]
		v := world[k]
		n := tr.ApplyNormal(g.Normal(i))

		var offset math32.Vector3
		switch e.brush.Type {
		case Smooth:
			nbs := e.neighbors[i]
			if len(nbs) == 0 {
				continue
			}
			var mean math32.Vector3
			for _, nb := range nbs {
				mean.SetAdd(tr.Apply(g.Vertex(int(nb))))
			}
			mean = mean.DivScalar(float32(len(nbs)))
			offset = mean.Sub(v).MulScalar(w)
		case Clay:
			offset = n.MulScalar(w * 0.3 * e.brush.Radius)
		case Crease:
			dir := hit.Sub(v).MulScalar(0.5).Sub(n.MulScalar(0.5))
			offset = dir.MulScalar(0.3 * w)
		case Inflate:
			offset = n.MulScalar(w * 0.2 * e.brush.Radius)
		case Flatten:
			dist := v.Sub(hit).Dot(avgNormal)
			offset = avgNormal.MulScalar(-dist * w)
		case Pinch:
			offset = hit.Sub(v).MulScalar(0.2 * w)
		default: // Grab
			offset = delta.MulScalar(w)
		}

		g.SetVertex(i, tr.ApplyInverse(v.Add(offset)))
		e.touched[i] = true
	}
}

// EndStroke finishes the stroke: an optional auto-smooth pass over the
// touched vertices, then a full normal recomputation, then the stroke
// state is cleared. The snapshot is kept so [Engine.UndoStroke] can
// still restore the pre-stroke positions.
func (e *Engine) EndStroke() {
	if !e.stroking || e.mesh == nil {
		return
	}
	g := e.mesh.Geometry
	if e.brush.AutoSmooth > 0 {
		for i := range e.touched {
			nbs := e.neighbors[i]
			if len(nbs) == 0 {
				continue
			}
			var mean math32.Vector3
			for _, nb := range nbs {
				mean.SetAdd(g.Vertex(int(nb)))
			}
			mean = mean.DivScalar(float32(len(nbs)))
			g.SetVertex(i, g.Vertex(i).Lerp(mean, e.brush.AutoSmooth))
		}
	}
	e.recomputeNormals()
	e.stroking = false
	logx.Debug("sculpt stroke end", "touched", len(e.touched))
}

// UndoStroke restores the vertex positions snapshotted at
// [Engine.BeginStroke] and recomputes normals.
func (e *Engine) UndoStroke() {
	if e.mesh == nil || e.snapshot == nil {
		return
	}
	copy(e.mesh.Geometry.Vertices, e.snapshot)
	e.recomputeNormals()
	e.stroking = false
	e.touched = nil
}

// recomputeNormals rebuilds all vertex normals from the unweighted sum
// of incident face normals.
func (e *Engine) recomputeNormals() {
	g := e.mesh.Geometry
	acc := make([]math32.Vector3, g.VertexCount)
	for t := 0; t < g.NumTriangles(); t++ {
		fn := g.FaceNormal(t)
		for k := 0; k < 3; k++ {
			acc[g.Indices[t*3+k]].SetAdd(fn)
		}
	}
	for i, n := range acc {
		g.SetNormal(i, n.Normal())
	}
	for fi := range g.Faces {
		g.Faces[fi].Normal = g.Normal(int(g.Faces[fi].Vertices[0]))
	}
}
