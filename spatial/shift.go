// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

// ShiftOp is the spatial shift operator Φ(r) translating spatial
// quantities between a parent frame and a child frame offset from it
// by r (expressed in the common, ground-aligned frame both sides use).
//
// As a 6x6 block operator, Φ = [ I  skew(r) ; 0  I ]. ShiftForce applies
// Φ directly (child force -> parent force, moment picks up r x f).
// ShiftMotion applies Φᵀ (parent motion -> child motion, linear part
// picks up ω x r). Conjugate applies Φ · (·) · Φᵀ, the operation used
// to translate an articulated-body inertia from a child's frame into
// its parent's frame.
type ShiftOp struct {
	R Vec3
}

// NewShiftOp builds the shift operator for an offset r from parent
// origin to child origin, both expressed in ground.
func NewShiftOp(r Vec3) ShiftOp {
	return ShiftOp{R: r}
}

// Matrix returns Φ as an explicit 6x6 block operator.
func (s ShiftOp) Matrix() SpatialMat {
	return SpatialMat{
		TL: Identity3(),
		TR: s.R.Skew(),
		BL: Zero33(),
		BR: Identity3(),
	}
}

// ShiftMotion shifts a spatial velocity or acceleration from the
// parent frame to the child frame: Φᵀ · v_parent.
func (s ShiftOp) ShiftMotion(vParent SpatialVec) SpatialVec {
	return SpatialVec{
		Angular: vParent.Angular,
		Linear:  vParent.Linear.Add(vParent.Angular.Cross(s.R)),
	}
}

// ShiftForce shifts a spatial force from the child frame to the
// parent frame: Φ · f_child.
func (s ShiftOp) ShiftForce(fChild SpatialVec) SpatialVec {
	return SpatialVec{
		Angular: fChild.Angular.Add(s.R.Cross(fChild.Linear)),
		Linear:  fChild.Linear,
	}
}

// Conjugate translates a spatial matrix (typically an articulated-body
// inertia) from the child frame into the parent frame: Φ · m · Φᵀ.
func (s ShiftOp) Conjugate(m SpatialMat) SpatialMat {
	phi := s.Matrix()
	return phi.Mul(m).Mul(phi.Transpose())
}
