// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

// SpatialVec is a Featherstone six-component spatial vector, partitioned
// into an angular (rotational) and a linear (translational) half. The
// same type represents spatial velocities, accelerations and forces;
// which one it is is a matter of context, not of the Go type.
type SpatialVec struct {
	Angular Vec3
	Linear  Vec3
}

// NewSpatialVec builds a SpatialVec from its angular and linear halves.
func NewSpatialVec(angular, linear Vec3) SpatialVec {
	return SpatialVec{Angular: angular, Linear: linear}
}

// Add returns v+u.
func (v SpatialVec) Add(u SpatialVec) SpatialVec {
	return SpatialVec{v.Angular.Add(u.Angular), v.Linear.Add(u.Linear)}
}

// Sub returns v-u.
func (v SpatialVec) Sub(u SpatialVec) SpatialVec {
	return SpatialVec{v.Angular.Sub(u.Angular), v.Linear.Sub(u.Linear)}
}

// Scale returns v scaled by s.
func (v SpatialVec) Scale(s Scalar) SpatialVec {
	return SpatialVec{v.Angular.Scale(s), v.Linear.Scale(s)}
}

// Neg returns -v.
func (v SpatialVec) Neg() SpatialVec {
	return SpatialVec{v.Angular.Scale(-1), v.Linear.Scale(-1)}
}

// Dot returns the spatial inner product of v and u: Angular.Dot(Angular) +
// Linear.Dot(Linear). Used for kinetic energy and generalized-force
// contractions.
func (v SpatialVec) Dot(u SpatialVec) Scalar {
	return v.Angular.Dot(u.Angular) + v.Linear.Dot(u.Linear)
}
