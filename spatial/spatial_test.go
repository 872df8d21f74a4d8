// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"math"
	"testing"
)

func approxEq(t *testing.T, got, want, tol Scalar, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %v want %v", what, got, want)
	}
}

func TestVec3CrossSkew(t *testing.T) {
	v := NewVec3(1, 2, 3)
	u := NewVec3(4, 5, 6)
	want := v.Cross(u)
	got := v.Skew().MulVec(u)
	approxEq(t, got.X, want.X, 1e-12, "X")
	approxEq(t, got.Y, want.Y, 1e-12, "Y")
	approxEq(t, got.Z, want.Z, 1e-12, "Z")
}

func TestMat33OrthoTransformIdentity(t *testing.T) {
	m := Mat33{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	got := OrthoTransform(m, Identity3())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			approxEq(t, got[i][j], m[i][j], 1e-12, "ortho identity")
		}
	}
}

func TestRotationXPreservesLength(t *testing.T) {
	r := RotationX(0.37)
	v := NewVec3(1, 2, 3)
	got := r.MulVec(v)
	approxEq(t, got.Length(), v.Length(), 1e-10, "rotation preserves length")
}

func TestShiftOpMotionForceConsistency(t *testing.T) {
	s := NewShiftOp(NewVec3(1, 0, 0))
	vParent := SpatialVec{Angular: NewVec3(0, 0, 2), Linear: NewVec3(1, 0, 0)}
	vChild := s.ShiftMotion(vParent)
	// ω=2 about z, r=(1,0,0): linear picks up ω x r = (0,2,0)
	approxEq(t, vChild.Linear.Y, 2, 1e-12, "shift motion linear Y")

	fChild := SpatialVec{Angular: Zero3(), Linear: NewVec3(0, 1, 0)}
	fParent := s.ShiftForce(fChild)
	// moment picks up r x f = (1,0,0) x (0,1,0) = (0,0,1)
	approxEq(t, fParent.Angular.Z, 1, 1e-12, "shift force moment Z")
}

func TestShiftOpConjugateOfIdentityLeavesBRUnchanged(t *testing.T) {
	s := NewShiftOp(NewVec3(2, 0, 0))
	m := SpatialMat{TL: Identity3(), TR: Zero33(), BL: Zero33(), BR: Identity3()}
	out := s.Conjugate(m)
	// Φ*I*Φᵀ for r along x should leave BR untouched (still I)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			approxEq(t, out.BR[i][j], Identity3()[i][j], 1e-10, "conjugate BR")
		}
	}
}
