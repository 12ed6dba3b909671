// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pick converts screen coordinates into world-space rays and
// intersects them with transformed meshes: the picking kernel of the
// modeler. Raycasting never errors; a miss is a nil hit.
package pick

import "github.com/zos-apps/zmodel/math32"

// CameraType is the projection type of a [Camera].
type CameraType int32

const (
	// Perspective projects along diverging rays from the camera position.
	Perspective CameraType = iota

	// Orthographic projects along parallel rays.
	Orthographic
)

// String returns the name of the camera type.
func (ct CameraType) String() string {
	if ct == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Camera describes the viewpoint rays are cast from. FOV is the
// vertical field of view in radians and applies to perspective
// cameras; Zoom is the orthographic half-height.
type Camera struct {
	Type     CameraType
	Position math32.Vector3
	Target   math32.Vector3
	Up       math32.Vector3
	FOV      float32
	Zoom     float32
	Near     float32
	Far      float32
}

// Basis returns the orthonormal camera basis: forward toward the
// target, right, and the recomputed up vector.
func (cm *Camera) Basis() (forward, right, up math32.Vector3) {
	forward = cm.Target.Sub(cm.Position).Normal()
	right = forward.Cross(cm.Up).Normal()
	up = right.Cross(forward)
	return
}

// RayFromMouse builds the world-space ray under the mouse position
// (x, y) in canvas pixels for a canvas of size (w, h) viewed through
// the given camera.
func RayFromMouse(x, y, w, h float32, cm *Camera) Ray {
	forward, right, up := cm.Basis()
	ndcX := 2*x/w - 1
	ndcY := 1 - 2*y/h
	aspect := w / h

	if cm.Type == Orthographic {
		origin := cm.Position.
			Add(right.MulScalar(ndcX * cm.Zoom * aspect)).
			Add(up.MulScalar(ndcY * cm.Zoom))
		return Ray{Origin: origin, Dir: forward}
	}

	halfTan := math32.Tan(cm.FOV / 2)
	dir := forward.
		Add(right.MulScalar(ndcX * halfTan * aspect)).
		Add(up.MulScalar(ndcY * halfTan)).
		Normal()
	return Ray{Origin: cm.Position, Dir: dir}
}
