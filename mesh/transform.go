// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/zos-apps/zmodel/math32"

// Transform is the rigid-plus-scale placement of a mesh in world space.
// It is applied in the order scale, rotate X, rotate Y, rotate Z,
// translate. Rotation is Euler XYZ in radians. This ordering is part of
// the kernel contract for picking, sculpt hit tests, and CSG baking.
type Transform struct {
	Position math32.Vector3
	Rotation math32.Vector3
	Scale    math32.Vector3
}

// IdentityTransform returns the identity [Transform], with unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: math32.Vec3(1, 1, 1)}
}

// IsIdentity returns whether this transform has no effect.
func (t Transform) IsIdentity() bool {
	return t.Position == (math32.Vector3{}) &&
		t.Rotation == (math32.Vector3{}) &&
		t.Scale == math32.Vec3(1, 1, 1)
}

// Apply transforms the given local-space point into world space.
func (t Transform) Apply(p math32.Vector3) math32.Vector3 {
	v := p.Mul(t.Scale)
	if t.Rotation.X != 0 {
		sin, cos := math32.Sin(t.Rotation.X), math32.Cos(t.Rotation.X)
		v = math32.Vec3(v.X, v.Y*cos-v.Z*sin, v.Y*sin+v.Z*cos)
	}
	if t.Rotation.Y != 0 {
		sin, cos := math32.Sin(t.Rotation.Y), math32.Cos(t.Rotation.Y)
		v = math32.Vec3(v.X*cos+v.Z*sin, v.Y, -v.X*sin+v.Z*cos)
	}
	if t.Rotation.Z != 0 {
		sin, cos := math32.Sin(t.Rotation.Z), math32.Cos(t.Rotation.Z)
		v = math32.Vec3(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos, v.Z)
	}
	return v.Add(t.Position)
}

// ApplyNormal transforms the given local-space direction into world
// space, applying rotation only, and renormalises. Non-uniform scale is
// not compensated; callers needing exact world normals recompute from
// transformed positions.
func (t Transform) ApplyNormal(n math32.Vector3) math32.Vector3 {
	r := t
	r.Scale = math32.Vec3(1, 1, 1)
	r.Position = math32.Vector3{}
	return r.Apply(n).Normal()
}

// ApplyInverse transforms the given world-space point back into local
// space, undoing translate, the rotations in reverse order, and scale.
// Zero scale components are left undivided.
func (t Transform) ApplyInverse(p math32.Vector3) math32.Vector3 {
	v := p.Sub(t.Position)
	if t.Rotation.Z != 0 {
		sin, cos := math32.Sin(-t.Rotation.Z), math32.Cos(-t.Rotation.Z)
		v = math32.Vec3(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos, v.Z)
	}
	if t.Rotation.Y != 0 {
		sin, cos := math32.Sin(-t.Rotation.Y), math32.Cos(-t.Rotation.Y)
		v = math32.Vec3(v.X*cos+v.Z*sin, v.Y, -v.X*sin+v.Z*cos)
	}
	if t.Rotation.X != 0 {
		sin, cos := math32.Sin(-t.Rotation.X), math32.Cos(-t.Rotation.X)
		v = math32.Vec3(v.X, v.Y*cos-v.Z*sin, v.Y*sin+v.Z*cos)
	}
	if t.Scale.X != 0 {
		v.X /= t.Scale.X
	}
	if t.Scale.Y != 0 {
		v.Y /= t.Scale.Y
	}
	if t.Scale.Z != 0 {
		v.Z /= t.Scale.Z
	}
	return v
}

// ApplyAll transforms every packed XYZ point of the given array into
// world space, returning a new array.
func (t Transform) ApplyAll(src math32.ArrayF32) math32.ArrayF32 {
	out := math32.NewArrayF32(len(src))
	n := src.NumVector3()
	for i := 0; i < n; i++ {
		out.SetVector3(i, t.Apply(src.Vector3(i)))
	}
	return out
}
