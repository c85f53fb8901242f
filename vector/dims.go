// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import (
	"fmt"

	"cogentcore.org/raytrace/base/errors"
)

// Dims is a list of vector dimension (component) indexes.
// It is unsigned, so a negative index converted to Dims
// is simply a large out-of-range index.
type Dims uint

const (
	X Dims = iota
	Y
	Z

	// DimsN is the number of dimensions.
	DimsN
)

// String returns the lowercase component name, or the index
// number if it is out of range.
func (d Dims) String() string {
	switch d {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Dims(%d)", uint(d))
}

// ErrIndexRange is the error matched by [errors.Is] for all
// out-of-range component accesses.
var ErrIndexRange = errors.New("vector: index out of range")

// IndexError is returned by [Vector3.Dim], [Vector3.SetDim] and
// [Vector3.Ptr] when the index is not X, Y or Z.
type IndexError struct {
	Index Dims
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0, %d)", uint(e.Index), uint(DimsN))
}

func (e *IndexError) Unwrap() error {
	return ErrIndexRange
}
