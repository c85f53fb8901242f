// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Convert returns v with each component converted to type U using
// Go's native numeric conversion: float to integer truncates toward
// zero. Components must be representable in U; out of range float
// to integer conversions are implementation-defined in Go.
// Use [ConvertClamp] when that cannot be guaranteed.
func Convert[U, T Number](v Vector3[T]) Vector3[U] {
	return Vector3[U]{U(v.X), U(v.Y), U(v.Z)}
}

// ConvertClamp returns v with each component converted to type U,
// saturating at the range of U when U is an integer type.
// NaN converts to 0. Float targets use native conversion.
func ConvertClamp[U, T Number](v Vector3[T]) Vector3[U] {
	lim := limitsOf[U]()
	return Vector3[U]{
		X: convertClamp(v.X, lim),
		Y: convertClamp(v.Y, lim),
		Z: convertClamp(v.Z, lim),
	}
}

// limits holds the representable range of an integer type,
// both as float64 bounds for comparison and as exact values.
type limits[U Number] struct {
	integer  bool
	unsigned bool
	lo, hi   float64
	min      U
	max      U
}

// numberKind reports whether T is an integer type, and if so
// whether it is unsigned.
func numberKind[T Number]() (integer, unsigned bool) {
	var zero T
	half := 0.5
	if T(half) != zero {
		return false, false
	}
	return true, zero-1 > zero
}

func limitsOf[U Number]() limits[U] {
	var zero U
	integer, unsigned := numberKind[U]()
	if !integer {
		return limits[U]{}
	}
	bits := float64(unsafe.Sizeof(zero) * 8)
	if unsigned {
		return limits[U]{integer: true, unsigned: true, lo: 0, hi: math.Exp2(bits) - 1, min: zero, max: zero - 1}
	}
	lo := -math.Exp2(bits - 1)
	mn := U(lo)
	return limits[U]{integer: true, lo: lo, hi: -lo - 1, min: mn, max: -(mn + 1)}
}

func convertClamp[U, T Number](c T, lim limits[U]) U {
	if !lim.integer {
		return U(c)
	}
	if integer, unsigned := numberKind[T](); integer {
		return convertClampInt(c, unsigned, lim)
	}
	f := float64(c)
	switch {
	case math.IsNaN(f):
		return 0
	case f <= lim.lo:
		return lim.min
	case f >= lim.hi:
		return lim.max
	}
	return U(c)
}

// convertClampInt clamps the integer c to the integer limits of U,
// comparing exactly through int64 and uint64.
func convertClampInt[U, T Number](c T, unsigned bool, lim limits[U]) U {
	if unsigned {
		u := uint64(c)
		if lim.unsigned && u > uint64(lim.max) || !lim.unsigned && u > uint64(int64(lim.max)) {
			return lim.max
		}
		return U(c)
	}
	i := int64(c)
	if lim.unsigned {
		switch {
		case i < 0:
			return lim.min
		case uint64(i) > uint64(lim.max):
			return lim.max
		}
		return U(c)
	}
	switch {
	case i < int64(lim.min):
		return lim.min
	case i > int64(lim.max):
		return lim.max
	}
	return U(c)
}

// AddSat returns a + b for integer vectors, saturating each
// component at the range of T instead of wrapping.
func AddSat[T constraints.Integer](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{addSat(a.X, b.X), addSat(a.Y, b.Y), addSat(a.Z, b.Z)}
}

// SubSat returns a - b for integer vectors, saturating each
// component at the range of T instead of wrapping.
func SubSat[T constraints.Integer](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{subSat(a.X, b.X), subSat(a.Y, b.Y), subSat(a.Z, b.Z)}
}

func intRange[T constraints.Integer]() (lo, hi T) {
	var zero T
	if ^zero > zero {
		return zero, ^zero
	}
	bits := unsafe.Sizeof(zero) * 8
	lo = T(1) << (bits - 1)
	return lo, ^lo
}

func addSat[T constraints.Integer](a, b T) T {
	s := a + b
	lo, hi := intRange[T]()
	switch {
	case b > 0 && s < a:
		return hi
	case b < 0 && s > a:
		return lo
	}
	return s
}

func subSat[T constraints.Integer](a, b T) T {
	s := a - b
	lo, hi := intRange[T]()
	switch {
	case b > 0 && s > a:
		return lo
	case b < 0 && s < a:
		return hi
	}
	return s
}
