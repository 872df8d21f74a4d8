// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package joint implements the per-family joint kinematics: one
// variant per joint family (ground, translate, torsion,
// U-joint, ball/rotate3, diatom, free), each owning its generalized
// coordinates and the joint transition matrix H. Two variants (rotate3,
// free) delegate orientation bookkeeping to a contained Ball component
// (ball.go) that switches between a 3-parameter Euler and a 4-parameter
// quaternion representation.
package joint

import "github.com/m576f167/simbody/spatial"

// hStore holds the joint transition matrix H (DOF x 6, cached from the
// most recent position-pass call) and the internal generalized force,
// common to every joint family regardless of how it stores θ.
type hStore struct {
	dof    int
	tauInt []spatial.Scalar
	h      [][]spatial.Scalar // DOF x 6, [angular(3) | linear(3)] per row
}

func newHStore(dof int) hStore {
	return hStore{dof: dof, tauInt: make([]spatial.Scalar, dof), h: newMatrix(dof, 6)}
}

func newMatrix(rows, cols int) [][]spatial.Scalar {
	m := make([][]spatial.Scalar, rows)
	for i := range m {
		m[i] = make([]spatial.Scalar, cols)
	}
	return m
}

func (b *hStore) DOF() int { return b.dof }
func (b *hStore) H() [][]spatial.Scalar { return b.h }

func (b *hStore) GetInternalForce(tau []spatial.Scalar) { copy(tau, b.tauInt) }
func (b *hStore) SetInternalForce(tau []spatial.Scalar) { copy(b.tauInt, tau) }
func (b *hStore) AddInternalForce(delta []spatial.Scalar) {
	for i := range b.tauInt {
		b.tauInt[i] += delta[i]
	}
}

// setHRow writes a DOF row of H from an angular and linear 3-vector.
func (b *hStore) setHRow(row int, angular, linear spatial.Vec3) {
	b.h[row][0], b.h[row][1], b.h[row][2] = angular.X, angular.Y, angular.Z
	b.h[row][3], b.h[row][4], b.h[row][5] = linear.X, linear.Y, linear.Z
}

// hRow reads a DOF row of H back out as angular/linear 3-vectors.
func (b *hStore) hRow(row int) (angular, linear spatial.Vec3) {
	r := b.h[row]
	return spatial.NewVec3(r[0], r[1], r[2]), spatial.NewVec3(r[3], r[4], r[5])
}

// base additionally holds the generalized-coordinate/velocity/
// acceleration storage used by every joint family EXCEPT the ball-based
// ones (rotate3, free), which hold that state inside their contained
// Ball component instead (ball.go) because a ball joint's coordinate
// count and its DOF count can differ.
type base struct {
	hStore
	dim       int
	theta     []spatial.Scalar
	thetaDot  []spatial.Scalar
	thetaDDot []spatial.Scalar
}

func newBase(dim, dof int) base {
	return base{
		hStore:    newHStore(dof),
		dim:       dim,
		theta:     make([]spatial.Scalar, dim),
		thetaDot:  make([]spatial.Scalar, dof),
		thetaDDot: make([]spatial.Scalar, dof),
	}
}

func (b *base) Dim() int { return b.dim }

func (b *base) SetPos(theta []spatial.Scalar)       { copy(b.theta, theta) }
func (b *base) GetPos(theta []spatial.Scalar)       { copy(theta, b.theta) }
func (b *base) SetVel(thetaDot []spatial.Scalar)    { copy(b.thetaDot, thetaDot) }
func (b *base) GetVel(thetaDot []spatial.Scalar)    { copy(thetaDot, b.thetaDot) }
func (b *base) GetAccel(thetaDDot []spatial.Scalar) { copy(thetaDDot, b.thetaDDot) }
func (b *base) SetAccel(thetaDDot []spatial.Scalar) { copy(b.thetaDDot, thetaDDot) }

func (b *base) EnforceConstraints() {}

// kinematicsVelFromH computes V_PB_G = Hᵀ·θ̇ from the cached H and the
// current θ̇.
func (b *base) kinematicsVelFromH() spatial.SpatialVec {
	return hTransposeTimes(b.hStore, b.thetaDot)
}

func (b *base) KinematicsVel() spatial.SpatialVec {
	return b.kinematicsVelFromH()
}

// hTransposeTimes computes Hᵀ·v for an arbitrary DOF-sized v against a
// shared hStore. Defined at package scope so the ball-based joints
// (which keep θ̇ as a Vec3 inside Ball rather than a []Scalar) can
// reuse it via an explicit 3-slice conversion.
func hTransposeTimes(h hStore, thetaDot []spatial.Scalar) spatial.SpatialVec {
	var v spatial.SpatialVec
	for row := 0; row < h.dof; row++ {
		angular, linear := h.hRow(row)
		v.Angular = v.Angular.Add(angular.Scale(thetaDot[row]))
		v.Linear = v.Linear.Add(linear.Scale(thetaDot[row]))
	}
	return v
}
