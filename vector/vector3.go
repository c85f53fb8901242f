// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vector provides a 3D vector type that is generic over
// its numeric component type, used for geometry (float32) and
// display colors (uint8).
//
// All arithmetic follows native Go semantics for the component type:
// integer overflow wraps, integer division by zero panics, and float
// division by zero yields Inf or NaN. Callers are responsible for
// non-zero divisors on integer vectors and for non-zero lengths when
// normalizing. [AddSat], [SubSat] and [ConvertClamp] provide explicit
// saturating alternatives.
package vector

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of component types a [Vector3] may hold.
// Using any other type is a compile error.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector3 is a 3D vector/point with X, Y and Z components.
// The zero value is the zero vector.
type Vector3[T Number] struct {
	X T
	Y T
	Z T
}

// Vector3f is a float32 vector, used for geometry and linear colors.
type Vector3f = Vector3[float32]

// Color is a display color with 8-bit red, green and blue channels.
type Color = Vector3[uint8]

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar[T Number](s T) Vector3[T] {
	return Vector3[T]{X: s, Y: s, Z: s}
}

// Set sets this vector X, Y and Z components.
func (v *Vector3[T]) Set(x, y, z T) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector X, Y and Z components to same scalar value.
func (v *Vector3[T]) SetScalar(s T) {
	v.X = s
	v.Y = s
	v.Z = s
}

// SetZero sets this vector X, Y and Z components to be zero.
func (v *Vector3[T]) SetZero() {
	*v = Vector3[T]{}
}

// Dim returns this vector component by dimension index.
// It returns an [*IndexError] for any index other than [X], [Y] or [Z].
func (v Vector3[T]) Dim(dim Dims) (T, error) {
	switch dim {
	case X:
		return v.X, nil
	case Y:
		return v.Y, nil
	case Z:
		return v.Z, nil
	}
	var zero T
	return zero, &IndexError{Index: dim}
}

// SetDim sets this vector component value by dimension index.
func (v *Vector3[T]) SetDim(dim Dims, value T) error {
	p, err := v.Ptr(dim)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Ptr returns a pointer to this vector component by dimension index,
// which can be used to modify the component in place.
func (v *Vector3[T]) Ptr(dim Dims) (*T, error) {
	switch dim {
	case X:
		return &v.X, nil
	case Y:
		return &v.Y, nil
	case Z:
		return &v.Z, nil
	}
	return nil, &IndexError{Index: dim}
}

// FromArray sets this vector's components from the specified array and offset
func (v *Vector3[T]) FromArray(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
}

// ToArray copies this vector's components to array starting at offset.
func (v Vector3[T]) ToArray(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
}

// String returns the vector formatted as (x, y, z).
func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Pos returns the vector unchanged (unary plus).
func (v Vector3[T]) Pos() Vector3[T] {
	return v
}

// Negate returns vector with each component negated.
func (v Vector3[T]) Negate() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// SetNegate negates each of this vector's components.
func (v *Vector3[T]) SetNegate() {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{v.X + s, v.Y + s, v.Z + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3[T]) SetAdd(other Vector3[T]) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector3[T]) SetAddScalar(s T) {
	v.X += s
	v.Y += s
	v.Z += s
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	return Vector3[T]{v.X - s, v.Y - s, v.Z - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector3[T]) SetSub(other Vector3[T]) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector3[T]) SetSubScalar(s T) {
	v.X -= s
	v.Y -= s
	v.Z -= s
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// ScalarMul returns s * v, which is the same as v.MulScalar(s).
func ScalarMul[T Number](s T, v Vector3[T]) Vector3[T] {
	return v.MulScalar(s)
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector3[T]) SetMul(other Vector3[T]) {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector3[T]) SetMulScalar(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector. For integer vectors, all components of other
// must be non-zero.
func (v Vector3[T]) Div(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// For integer vectors, s must be non-zero.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	return Vector3[T]{v.X / s, v.Y / s, v.Z / s}
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector3[T]) SetDiv(other Vector3[T]) {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
}

// SetDivScalar sets this to division by scalar.
func (v *Vector3[T]) SetDivScalar(s T) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// Min returns min of this vector components vs. other vector.
func (v Vector3[T]) Min(other Vector3[T]) Vector3[T] {
	return Vector3[T]{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns max of this vector components vs. other vector.
func (v Vector3[T]) Max(other Vector3[T]) Vector3[T] {
	return Vector3[T]{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// Clamp sets this vector components to be no less than the corresponding components of min
// and not greater than the corresponding component of max.
// Assumes min < max, if this assumption isn't true it will not operate correctly.
func (v *Vector3[T]) Clamp(min, max Vector3[T]) {
	v.X = clamp(v.X, min.X, max.X)
	v.Y = clamp(v.Y, min.Y, max.Y)
	v.Z = clamp(v.Z, min.Z, max.Z)
}

// ClampScalar sets this vector components to be no less than minVal and not greater than maxVal.
func (v *Vector3[T]) ClampScalar(minVal, maxVal T) {
	v.Clamp(Vector3Scalar(minVal), Vector3Scalar(maxVal))
}

func clamp[T Number](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// IsEqual returns if this vector is exactly equal to other.
// There is no tolerance: all three components must compare equal.
func (v Vector3[T]) IsEqual(other Vector3[T]) bool {
	return (other.X == v.X) && (other.Y == v.Y) && (other.Z == v.Z)
}

// NotEqual returns if any component differs from other.
func (v Vector3[T]) NotEqual(other Vector3[T]) bool {
	return !v.IsEqual(other)
}

///////////////////////////////////////////////////////////////////////
//  Geometry

// LengthSquared returns the length squared of this vector,
// computed in float64. LengthSquared can be used to compare
// the lengths of vectors without the need to perform a square root.
func (v Vector3[T]) LengthSquared() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return x*x + y*y + z*z
}

// Length returns the length (Euclidean norm) of this vector,
// always as a float64 regardless of the component type.
func (v Vector3[T]) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize divides each component by the length of this vector,
// so that it has a length of 1. The length must be non-zero:
// a zero-length float vector becomes NaN.
// Integer vectors are truncated toward zero after the division.
func (v *Vector3[T]) Normalize() {
	l := v.Length()
	v.X = T(float64(v.X) / l)
	v.Y = T(float64(v.Y) / l)
	v.Z = T(float64(v.Z) / l)
}

// Normal returns this vector divided by its length, leaving this
// vector unchanged. The same zero-length precondition as [Vector3.Normalize] applies.
func (v Vector3[T]) Normal() Vector3[T] {
	v.Normalize()
	return v
}

// Dot returns the dot product of this vector with other.
func (v Vector3[T]) Dot(other Vector3[T]) float64 {
	return Dot(v, other)
}

// Cross returns the cross product of this vector with other.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Cross(v, other)
}

// Lerp returns the linear interpolation between this vector
// (at t = 0) and other (at t = 1), computed in float64.
func (v Vector3[T]) Lerp(other Vector3[T], t float64) Vector3[T] {
	return Vector3[T]{
		X: T(float64(v.X) + (float64(other.X)-float64(v.X))*t),
		Y: T(float64(v.Y) + (float64(other.Y)-float64(v.Y))*t),
		Z: T(float64(v.Z) + (float64(other.Z)-float64(v.Z))*t),
	}
}

// Dot returns the dot product of a and b: the sum of the
// component-wise products, accumulated in float64.
func Dot[T Number](a, b Vector3[T]) float64 {
	return float64(a.X)*float64(b.X) + float64(a.Y)*float64(b.Y) + float64(a.Z)*float64(b.Z)
}

// Cross returns the cross product of a and b.
func Cross[T Number](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
