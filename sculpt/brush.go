// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sculpt implements the brush-driven sculpting engine: the
// only stateful component of the kernel. One engine instance owns one
// bound mesh and mutates its vertex and normal buffers in place across
// a stroke; callers serialise pointer events onto it.
package sculpt

import "github.com/zos-apps/zmodel/math32"

// BrushType names a per-vertex displacement rule.
type BrushType int32

const (
	// Grab drags affected vertices along the pointer delta.
	Grab BrushType = iota

	// Smooth moves each vertex toward the mean of its edge neighbours.
	Smooth

	// Clay builds material up along the vertex normal.
	Clay

	// Crease pulls vertices toward the hit point and inward along the
	// normal, forming a sharp valley.
	Crease

	// Inflate pushes vertices out along their own normals.
	Inflate

	// Flatten projects vertices toward the plane through the hit point
	// perpendicular to the average normal.
	Flatten

	// Pinch draws vertices toward the hit point.
	Pinch
)

// String returns the name of the brush type.
func (bt BrushType) String() string {
	switch bt {
	case Smooth:
		return "smooth"
	case Clay:
		return "clay"
	case Crease:
		return "crease"
	case Inflate:
		return "inflate"
	case Flatten:
		return "flatten"
	case Pinch:
		return "pinch"
	}
	return "grab"
}

// FalloffType names the curve that fades brush influence from the
// center of the brush to its radius.
type FalloffType int32

const (
	// FalloffSmooth is the inverse smoothstep curve.
	FalloffSmooth FalloffType = iota

	// FalloffSphere follows a quarter circle.
	FalloffSphere

	// FalloffRoot falls off as one minus the square root.
	FalloffRoot

	// FalloffInverseSquare falls off with the squared parameter.
	FalloffInverseSquare

	// FalloffSharp is the cubed linear falloff.
	FalloffSharp

	// FalloffLinear is the plain linear falloff.
	FalloffLinear

	// FalloffConstant is full strength across the whole radius.
	FalloffConstant

	// FalloffRandom jitters the linear falloff per vertex.
	FalloffRandom
)

// String returns the name of the falloff type.
func (ft FalloffType) String() string {
	switch ft {
	case FalloffSphere:
		return "sphere"
	case FalloffRoot:
		return "root"
	case FalloffInverseSquare:
		return "inverseSquare"
	case FalloffSharp:
		return "sharp"
	case FalloffLinear:
		return "linear"
	case FalloffConstant:
		return "constant"
	case FalloffRandom:
		return "random"
	}
	return "smooth"
}

// BrushSettings is the active brush configuration of an [Engine].
type BrushSettings struct {
	Type     BrushType
	Radius   float32
	Strength float32
	Falloff  FalloffType
	Invert   bool

	// AutoSmooth, when positive, runs a smoothing pass at this
	// strength when the stroke ends.
	AutoSmooth float32
}

// DefaultBrush returns the brush an engine starts with.
func DefaultBrush() BrushSettings {
	return BrushSettings{
		Type:     Grab,
		Radius:   0.5,
		Strength: 0.5,
		Falloff:  FalloffSmooth,
	}
}

// falloff returns the influence weight for a vertex at distance d from
// the brush center with radius r. The random curve receives a caller
// supplied jitter in [0, 1).
func falloff(ft FalloffType, d, r, jitter float32) float32 {
	if r <= 0 || d >= r {
		return 0
	}
	t := math32.Clamp(d/r, 0, 1)
	switch ft {
	case FalloffSphere:
		return math32.Sqrt(1 - t*t)
	case FalloffRoot:
		return 1 - math32.Sqrt(t)
	case FalloffInverseSquare:
		return 1 - t*t
	case FalloffSharp:
		c := 1 - t
		return c * c * c
	case FalloffLinear:
		return 1 - t
	case FalloffConstant:
		return 1
	case FalloffRandom:
		return (1 - t) * jitter
	}
	return 1 - (3*t*t - 2*t*t*t)
}
