// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sculpt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zos-apps/zmodel/base/tolassert"
	"github.com/zos-apps/zmodel/math32"
	"github.com/zos-apps/zmodel/mesh"
	"github.com/zos-apps/zmodel/shape"
)

func sphereMesh() *mesh.Mesh {
	return mesh.NewMesh("sphere", shape.Sphere(1, 12, 8))
}

func TestGrabAtNorthPole(t *testing.T) {
	m := sphereMesh()
	e := NewEngine()
	e.SetMesh(m)
	e.SetBrush(BrushSettings{Type: Grab, Radius: 0.3, Strength: 1, Falloff: FalloffLinear})

	pole := math32.Vec3(0, 1, 0)
	delta := math32.Vec3(0, 0.1, 0)
	before := m.Geometry.Vertices.Clone()

	e.BeginStroke(pole)
	e.UpdateStroke(pole, delta)
	e.EndStroke()

	g := m.Geometry
	for i := 0; i < g.VertexCount; i++ {
		orig := before.Vector3(i)
		d := orig.DistanceTo(pole)
		got := g.Vertex(i)
		if d > 0.3 {
			assert.Equal(t, orig, got, "vertex %d outside the radius moved", i)
			continue
		}
		// linear falloff moves the vertex up by exactly (1 - d/r) * 0.1
		want := orig.Add(delta.MulScalar(1 - d/0.3))
		tolassert.EqualTol(t, want.X, got.X, 1e-6)
		tolassert.EqualTol(t, want.Y, got.Y, 1e-6)
		tolassert.EqualTol(t, want.Z, got.Z, 1e-6)
	}

	// normals are renormalised after the stroke
	for i := 0; i < g.VertexCount; i++ {
		n := g.Normal(i)
		if n.Length() != 0 {
			tolassert.EqualTol(t, 1, n.Length(), 1e-5)
		}
	}
}

func TestUndoStrokeRestoresExactly(t *testing.T) {
	m := sphereMesh()
	before := m.Geometry.Vertices.Clone()

	e := NewEngine()
	e.SetMesh(m)
	e.SetBrush(BrushSettings{Type: Inflate, Radius: 0.5, Strength: 1, Falloff: FalloffSmooth})
	e.BeginStroke(math32.Vec3(0, 1, 0))
	e.UpdateStroke(math32.Vec3(0, 1, 0), math32.Vector3{})
	e.UpdateStroke(math32.Vec3(0.1, 0.99, 0), math32.Vector3{})
	assert.NotEqual(t, before, m.Geometry.Vertices)

	e.UndoStroke()
	assert.Equal(t, before, m.Geometry.Vertices)
}

func TestUpdateBeforeBeginIsNoop(t *testing.T) {
	m := sphereMesh()
	before := m.Geometry.Vertices.Clone()
	e := NewEngine()
	e.SetMesh(m)
	e.UpdateStroke(math32.Vec3(0, 1, 0), math32.Vec3(1, 1, 1))
	assert.Equal(t, before, m.Geometry.Vertices)
}

func TestSymmetry(t *testing.T) {
	m := sphereMesh()
	e := NewEngine()
	e.SetMesh(m)
	e.SetBrush(BrushSettings{Type: Grab, Radius: 0.4, Strength: 1, Falloff: FalloffLinear})
	e.SetSymmetry(math32.X, true)

	hit := math32.Vec3(1, 0, 0)
	e.BeginStroke(hit)
	e.UpdateStroke(hit, math32.Vec3(0.2, 0, 0))
	e.EndStroke()

	bb := m.Geometry.BoundingBox()
	// the +x bump is mirrored to -x with the delta reflected
	tolassert.EqualTol(t, bb.Max.X, -bb.Min.X, 1e-5)
	assert.Greater(t, bb.Max.X, float32(1.1))
}

func TestInflateAndInvert(t *testing.T) {
	m := sphereMesh()
	e := NewEngine()
	e.SetMesh(m)

	pole := math32.Vec3(0, 1, 0)
	e.SetBrush(BrushSettings{Type: Inflate, Radius: 0.5, Strength: 1, Falloff: FalloffConstant})
	e.BeginStroke(pole)
	e.UpdateStroke(pole, math32.Vector3{})
	e.EndStroke()
	assert.Greater(t, m.Geometry.BoundingBox().Max.Y, float32(1.05))

	// inverted, the same brush carves inward
	m2 := sphereMesh()
	e.SetMesh(m2)
	e.SetBrush(BrushSettings{Type: Inflate, Radius: 0.5, Strength: 1, Falloff: FalloffConstant, Invert: true})
	e.BeginStroke(pole)
	e.UpdateStroke(pole, math32.Vector3{})
	e.EndStroke()
	assert.Less(t, m2.Geometry.BoundingBox().Max.Y, float32(1))
}

func TestSmoothBrushRelaxes(t *testing.T) {
	m := sphereMesh()
	e := NewEngine()
	e.SetMesh(m)

	// pull one spike out, then smooth it back down
	pole := math32.Vec3(0, 1, 0)
	e.SetBrush(BrushSettings{Type: Grab, Radius: 0.2, Strength: 1, Falloff: FalloffSharp})
	e.BeginStroke(pole)
	e.UpdateStroke(pole, math32.Vec3(0, 0.5, 0))
	e.EndStroke()
	spiked := surfaceMaxY(m.Geometry)

	top := math32.Vec3(0, spiked, 0)
	e.SetBrush(BrushSettings{Type: Smooth, Radius: 0.6, Strength: 1, Falloff: FalloffSmooth})
	e.BeginStroke(top)
	e.UpdateStroke(top, math32.Vector3{})
	e.UpdateStroke(top, math32.Vector3{})
	e.EndStroke()
	assert.Less(t, surfaceMaxY(m.Geometry), spiked)
}

// surfaceMaxY is the largest Y among vertices referenced by a triangle.
// The sphere's seam duplicate at each pole belongs to no triangle, so it
// has no edge neighbours and smoothing leaves it where grab put it.
func surfaceMaxY(g *mesh.Geometry) float32 {
	top := g.Vertex(int(g.Indices[0])).Y
	for _, ix := range g.Indices {
		if y := g.Vertex(int(ix)).Y; y > top {
			top = y
		}
	}
	return top
}

func TestFlattenPullsToPlane(t *testing.T) {
	m := sphereMesh()
	e := NewEngine()
	e.SetMesh(m)
	pole := math32.Vec3(0, 1, 0)
	e.SetBrush(BrushSettings{Type: Flatten, Radius: 0.5, Strength: 1, Falloff: FalloffConstant})
	e.BeginStroke(pole)
	e.UpdateStroke(pole, math32.Vector3{})
	e.EndStroke()
	// with full strength and constant falloff the cap lands on the
	// plane through the hit point (the seam duplicate tilts the
	// average normal slightly off +y)
	tolassert.EqualTol(t, 1, m.Geometry.BoundingBox().Max.Y, 0.02)
}

func TestAutoSmooth(t *testing.T) {
	m := sphereMesh()
	e := NewEngine()
	e.SetMesh(m)
	pole := math32.Vec3(0, 1, 0)
	e.SetBrush(BrushSettings{
		Type: Grab, Radius: 0.3, Strength: 1,
		Falloff: FalloffSharp, AutoSmooth: 0.5,
	})
	e.BeginStroke(pole)
	e.UpdateStroke(pole, math32.Vec3(0, 0.4, 0))

	raw := surfaceMaxY(m.Geometry)
	e.EndStroke()
	// auto-smooth relaxes the spike on stroke end
	assert.Less(t, surfaceMaxY(m.Geometry), raw)
}

func TestFalloffCurves(t *testing.T) {
	r := float32(1)
	// all curves are full strength at the center and fade to zero at
	// the rim, except constant which stays at one inside
	for _, ft := range []FalloffType{
		FalloffSmooth, FalloffSphere, FalloffRoot, FalloffInverseSquare,
		FalloffSharp, FalloffLinear,
	} {
		tolassert.EqualTol(t, 1, falloff(ft, 0, r, 1), 1e-6)
		assert.Equal(t, float32(0), falloff(ft, 1, r, 1), ft.String())
		mid := falloff(ft, 0.5, r, 1)
		assert.Greater(t, mid, float32(0), ft.String())
		assert.Less(t, mid, float32(1), ft.String())
	}
	assert.Equal(t, float32(1), falloff(FalloffConstant, 0.99, r, 1))
	assert.Equal(t, float32(0), falloff(FalloffConstant, 1, r, 1))
	// random jitter scales the linear curve
	assert.Equal(t, float32(0.25), falloff(FalloffRandom, 0.5, r, 0.5))

	tolassert.EqualTol(t, 0.5, falloff(FalloffSmooth, 0.5, r, 1), 1e-6)
	tolassert.EqualTol(t, 0.125, falloff(FalloffSharp, 0.5, r, 1), 1e-6)
}

func TestPresetsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "brushes.toml")

	p := DefaultPresets()
	assert.NoError(t, SavePresets(p, fn))

	got, err := OpenPresets(fn)
	assert.NoError(t, err)
	assert.Equal(t, p, got)
}
