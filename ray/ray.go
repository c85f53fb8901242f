// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ray provides a ray with an origin and a direction.
package ray

import "cogentcore.org/raytrace/vector"

// Ray represents an oriented 3D line segment defined by an origin point
// and a direction vector. The direction need not be normalized.
type Ray struct {
	Origin vector.Vector3f
	Dir    vector.Vector3f
}

// New returns a new ray with the given origin and direction.
func New(origin, dir vector.Vector3f) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point reached by travelling t along the direction
// from the origin: Origin + Dir*t.
func (r Ray) At(t float32) vector.Vector3f {
	return r.Origin.Add(r.Dir.MulScalar(t))
}
