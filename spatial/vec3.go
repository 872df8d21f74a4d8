// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spatial implements the spatial-algebra primitives the rest of
// the module builds on: three-vectors, 3x3 rotation matrices, Featherstone
// six-component spatial vectors/matrices partitioned into angular and
// linear halves, rigid transforms, and the parent-to-child shift operator.
package spatial

import "math"

// Scalar is the floating point kind used throughout the dynamics core.
// The companion lapack package supports four scalar kinds independently;
// the core itself is fixed at double precision, matching the numerical
// tolerances in the package's testable properties (1e-10, 1e-12).
type Scalar = float64

// Vec3 is a 3-component vector used for positions, translations, angular
// velocities and the like.
type Vec3 struct {
	X, Y, Z Scalar
}

// NewVec3 returns a new Vec3 with the given components.
func NewVec3(x, y, z Scalar) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Add returns v+u.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns v-u.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s Scalar) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the scalar product of v and u.
func (v Vec3) Dot(u Vec3) Scalar {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns v x u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() Scalar {
	return math.Sqrt(v.Dot(v))
}

// Skew returns the 3x3 antisymmetric cross-product matrix of v, such
// that Skew(v).MulVec(u) == v.Cross(u) for all u.
func (v Vec3) Skew() Mat33 {
	return Mat33{
		{0, -v.Z, v.Y},
		{v.Z, 0, -v.X},
		{-v.Y, v.X, 0},
	}
}

// Array returns the vector as a fixed-size array, for use in generic
// coordinate-vector packing.
func (v Vec3) Array() [3]Scalar {
	return [3]Scalar{v.X, v.Y, v.Z}
}
