// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package joint

import "github.com/m576f167/simbody/spatial"

// Ball is the contained ball-joint component shared by the rotate3 and
// free joint families.
// It switches between a 3-parameter Euler (3-2-1 body-three) and a
// 4-parameter unit-quaternion orientation representation, chosen once
// at construction via UseEuler.
//
// Euler mode stores θ = (Φ, Θ, Ψ) in radians internally but its
// coordinate interface is in degrees: callers pass degrees, Ball
// converts through DEG2RAD. This is the one joint family whose
// coordinates are not radians.
// Quaternion mode stores q = (w, x, y, z).
type Ball struct {
	UseEuler bool

	// Euler state (radians).
	phi, theta, psi spatial.Scalar

	// Quaternion state.
	q   [4]spatial.Scalar // w, x, y, z
	qd  [4]spatial.Scalar
	qdd [4]spatial.Scalar

	omega    spatial.Vec3 // motion-space angular velocity (3 DOF, always)
	omegaDot spatial.Vec3
}

// NewBall constructs a Ball in the Euler (3 DOF) or quaternion (4 coord,
// 3 DOF) representation, initialized to the identity orientation.
func NewBall(useEuler bool) *Ball {
	b := &Ball{UseEuler: useEuler}
	b.q = [4]spatial.Scalar{1, 0, 0, 0}
	return b
}

// Dim is 3 for Euler, 4 for quaternion.
func (b *Ball) Dim() int {
	if b.UseEuler {
		return 3
	}
	return 4
}

// DOF is always 3: three rotational motion degrees of freedom
// regardless of coordinate representation.
func (b *Ball) DOF() int { return 3 }

// SetBallPos sets the orientation coordinates: (Φ,Θ,Ψ) in degrees for
// Euler mode, (w,x,y,z) for quaternion mode.
func (b *Ball) SetBallPos(theta []spatial.Scalar) {
	if b.UseEuler {
		b.phi = theta[0] * DEG2RAD
		b.theta = theta[1] * DEG2RAD
		b.psi = theta[2] * DEG2RAD
		return
	}
	copy(b.q[:], theta)
}

// GetBallPos reads the orientation coordinates back out, in the same
// units SetBallPos accepts.
func (b *Ball) GetBallPos(theta []spatial.Scalar) {
	if b.UseEuler {
		theta[0] = b.phi / DEG2RAD
		theta[1] = b.theta / DEG2RAD
		theta[2] = b.psi / DEG2RAD
		return
	}
	copy(theta, b.q[:])
}

// SetBallVel sets the 3-DOF motion-space angular velocity ω: the
// generalized velocity is always a 3-vector, regardless of whether the
// orientation is stored as 3 Euler angles or a 4-parameter quaternion
// (H is [R_GPᵀ, 0] either way). In quaternion mode q̇ is rederived
// from ω on every set.
func (b *Ball) SetBallVel(omega spatial.Vec3) {
	b.omega = omega
	if !b.UseEuler {
		b.setQuatDerivsFromOmega()
	}
}

// GetBallVel returns the current 3-DOF motion-space angular velocity.
func (b *Ball) GetBallVel() spatial.Vec3 { return b.omega }

// SetBallAccel stores the 3-DOF motion-space angular acceleration ω̇
// produced by the acceleration pass and, in quaternion mode, derives q̈.
func (b *Ball) SetBallAccel(omegaDot spatial.Vec3) {
	b.omegaDot = omegaDot
	if !b.UseEuler {
		b.calcBallAccel()
	}
}

// GetBallAccel returns the 3-DOF motion-space angular acceleration.
func (b *Ball) GetBallAccel() spatial.Vec3 { return b.omegaDot }

// QuatDot returns the current quaternion derivative q̇ = (ẇ,ẋ,ẏ,ż),
// valid only in quaternion mode. Exposed for the tangent-constraint
// testable property.
func (b *Ball) QuatDot() [4]spatial.Scalar { return b.qd }

// Quat returns the current orientation quaternion (w,x,y,z).
func (b *Ball) Quat() [4]spatial.Scalar { return b.q }

// CalcR_PB returns the body-in-parent rotation matrix for the current
// orientation coordinates.
func (b *Ball) CalcR_PB() spatial.Mat33 {
	if b.UseEuler {
		return eulerBodyThree(b.phi, b.theta, b.psi)
	}
	return quatToMatrix(b.q)
}

// gMatrix returns the 3x4 matrix M(q) such that ω = 2·M(q)·q̇.
func gMatrix(q [4]spatial.Scalar) [3][4]spatial.Scalar {
	w, x, y, z := q[0], q[1], q[2], q[3]
	return [3][4]spatial.Scalar{
		{-x, w, z, -y},
		{-y, -z, w, x},
		{-z, y, -x, w},
	}
}

func (b *Ball) setQuatDerivsFromOmega() {
	// q̇ = ½·M(q)ᵀ·ω
	g := gMatrix(b.q)
	omega := [3]spatial.Scalar{b.omega.X, b.omega.Y, b.omega.Z}
	for i := 0; i < 4; i++ {
		var sum spatial.Scalar
		for k := 0; k < 3; k++ {
			sum += g[k][i] * omega[k]
		}
		b.qd[i] = 0.5 * sum
	}
}

// calcBallAccel computes q̈ from the currently stored ω and ω̇.
func (b *Ball) calcBallAccel() {
	// q̈ = ½·(Ṁ(q)·ω + M(q)·ω̇). Ṁ(q) is M evaluated at q̇ (M is
	// linear in q), since each entry of M is a linear function of q.
	g := gMatrix(b.q)
	gDot := gMatrix(b.qd)
	omega := [3]spatial.Scalar{b.omega.X, b.omega.Y, b.omega.Z}
	omegaDot := [3]spatial.Scalar{b.omegaDot.X, b.omegaDot.Y, b.omegaDot.Z}
	var qdd [4]spatial.Scalar
	for i := 0; i < 4; i++ {
		var sum spatial.Scalar
		for k := 0; k < 3; k++ {
			sum += gDot[k][i]*omega[k] + g[k][i]*omegaDot[k]
		}
		qdd[i] = 0.5 * sum
	}
	b.qdd = qdd
}

// EnforceBallConstraints normalizes q to unit length and projects q̇ so
// that q·q̇ = 0, keeping the quaternion derivative tangent to the unit
// sphere.
func (b *Ball) EnforceBallConstraints() {
	if b.UseEuler {
		return
	}
	n := quatNorm(b.q)
	if n > 0 {
		for i := range b.q {
			b.q[i] /= n
		}
	}
	var dot spatial.Scalar
	for i := range b.q {
		dot += b.q[i] * b.qd[i]
	}
	for i := range b.qd {
		b.qd[i] -= dot * b.q[i]
	}
}

// GetBallInternalForce maps a body-frame torque back to generalized
// force. In Euler mode this is the standard body-three inverse
// Jacobian; in quaternion mode it is the identity map
// (the 3 motion-space torques already are the generalized force).
func (b *Ball) GetBallInternalForce(torque spatial.Vec3) spatial.Vec3 {
	if !b.UseEuler {
		return torque
	}
	sp, cp := sinCos(b.phi)
	st, ct := sinCos(b.theta)
	tauPhi := torque.Z * DEG2RAD
	tauTheta := (-sp*torque.X + cp*torque.Y) * DEG2RAD
	tauPsi := (cp*ct*torque.X + sp*ct*torque.Y - st*torque.Z) * DEG2RAD
	return spatial.NewVec3(tauPhi, tauTheta, tauPsi)
}

func quatNorm(q [4]spatial.Scalar) spatial.Scalar {
	var s spatial.Scalar
	for _, v := range q {
		s += v * v
	}
	return sqrt(s)
}

func quatToMatrix(q [4]spatial.Scalar) spatial.Mat33 {
	w, x, y, z := q[0], q[1], q[2], q[3]
	return spatial.Mat33{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}
}

// eulerBodyThree assembles R_PB for a 3-2-1 body-three rotation: Φ
// about z, then Θ about the once-rotated y', then Ψ about the
// twice-rotated x''. R_PB maps body-frame vectors into the parent
// frame (v_P = R_PB·v_B); with only Φ=π/2 set, body ê_y lands on
// parent ê_x.
func eulerBodyThree(phi, theta, psi spatial.Scalar) spatial.Mat33 {
	sp, cp := sinCos(phi)
	st, ct := sinCos(theta)
	ss, cs := sinCos(psi)
	return spatial.Mat33{
		{cp * ct, sp * ct, -st},
		{cp*st*ss - sp*cs, sp*st*ss + cp*cs, ct * ss},
		{cp*st*cs + sp*ss, sp*st*cs - cp*ss, ct * cs},
	}
}
