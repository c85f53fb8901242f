// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "gonum.org/v1/gonum/spatial/r3"

// ToR3 converts v to a gonum [r3.Vec], for use with the
// gonum spatial packages.
func ToR3[T Number](v Vector3[T]) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromR3 converts a gonum [r3.Vec] to a [Vector3] using native conversion.
func FromR3[T Number](v r3.Vec) Vector3[T] {
	return Vector3[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z)}
}
