// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"sync/atomic"

	"github.com/jinzhu/copier"

	"github.com/zos-apps/zmodel/logx"
	"github.com/zos-apps/zmodel/math32"
)

// Color is an RGBA color with RGB components in [0, 255] and
// alpha in [0, 1].
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// Material carries the Phong shading parameters of a mesh. The kernel
// treats it as opaque: every operator passes it through unchanged.
type Material struct {
	Color       Color
	Specular    Color
	Shininess   float32
	Opacity     float32
	Wireframe   bool
	FlatShading bool
}

// DefaultMaterial returns the standard gray material new meshes get.
func DefaultMaterial() Material {
	return Material{
		Color:     Color{R: 180, G: 180, B: 180, A: 1},
		Specular:  Color{R: 255, G: 255, B: 255, A: 1},
		Shininess: 30,
		Opacity:   1,
	}
}

// Mesh wraps a [Geometry] with identity, placement, and display state.
// For kernel operators only Geometry and Transform are meaningful; the
// remaining fields travel through unchanged so host state can correlate
// versions of the same mesh.
type Mesh struct {
	ID        string
	Name      string
	Geometry  *Geometry
	Material  Material
	Transform Transform
	Visible   bool
	Locked    bool
	ParentID  string
}

var meshCounter atomic.Uint64

// NewMesh returns a new [Mesh] with the given name and geometry, a
// fresh ID, default material, and identity transform.
func NewMesh(name string, g *Geometry) *Mesh {
	return &Mesh{
		ID:        fmt.Sprintf("mesh-%d", meshCounter.Add(1)),
		Name:      name,
		Geometry:  g,
		Material:  DefaultMaterial(),
		Transform: IdentityTransform(),
		Visible:   true,
	}
}

// Clone returns a deep copy of this mesh, sharing nothing with the
// original. The ID is preserved so host state can correlate versions.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{}
	err := copier.CopyWithOption(c, m, copier.Option{DeepCopy: true})
	if err != nil { // only on reflection breakage, not data
		logx.Error(err)
		return nil
	}
	return c
}

// WithGeometry returns a copy of this mesh carrying the given geometry
// in place of the current one, preserving ID, name, material,
// transform, and display state. This is how operators publish results.
func (m *Mesh) WithGeometry(g *Geometry) *Mesh {
	out := *m
	out.Geometry = g
	return &out
}

// WorldVertices returns the mesh's vertex positions transformed into
// world space.
func (m *Mesh) WorldVertices() math32.ArrayF32 {
	return m.Transform.ApplyAll(m.Geometry.Vertices)
}
