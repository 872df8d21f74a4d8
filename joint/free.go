// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package joint

import "github.com/m576f167/simbody/spatial"

// Free is the 6-motion-DOF free joint: a ball orientation plus an unconstrained 3-DOF
// translation, giving 7-or-6 generalized coordinates (quaternion or
// Euler) and 6 motion DOF. Generalized coordinates and velocities are
// ordered (orientation, translation); H's rows follow the same order,
// the first three with a zero linear block ([R_GPᵀ, 0]) and the last
// three with a zero angular block ([0, R_GPᵀ]).
type Free struct {
	hStore
	Ball   *Ball
	Offset spatial.Vec3 // fixed parent-frame mounting offset, added to the translation

	trans     spatial.Vec3
	transDot  spatial.Vec3
	transDDot spatial.Vec3
}

// NewFree builds a free joint with its translation measured relative
// to the given fixed mounting offset, in either Euler or quaternion
// orientation representation.
func NewFree(useEuler bool, offset spatial.Vec3) *Free {
	return &Free{
		hStore: newHStore(6),
		Ball:   NewBall(useEuler),
		Offset: offset,
	}
}

func (j *Free) Dim() int { return j.Ball.Dim() + 3 }

func (j *Free) SetPos(theta []spatial.Scalar) {
	n := j.Ball.Dim()
	j.Ball.SetBallPos(theta[:n])
	j.trans = spatial.NewVec3(theta[n], theta[n+1], theta[n+2])
}

func (j *Free) GetPos(theta []spatial.Scalar) {
	n := j.Ball.Dim()
	j.Ball.GetBallPos(theta[:n])
	theta[n], theta[n+1], theta[n+2] = j.trans.X, j.trans.Y, j.trans.Z
}

func (j *Free) SetVel(thetaDot []spatial.Scalar) {
	j.Ball.SetBallVel(spatial.NewVec3(thetaDot[0], thetaDot[1], thetaDot[2]))
	j.transDot = spatial.NewVec3(thetaDot[3], thetaDot[4], thetaDot[5])
}

func (j *Free) GetVel(thetaDot []spatial.Scalar) {
	omega := j.Ball.GetBallVel()
	thetaDot[0], thetaDot[1], thetaDot[2] = omega.X, omega.Y, omega.Z
	thetaDot[3], thetaDot[4], thetaDot[5] = j.transDot.X, j.transDot.Y, j.transDot.Z
}

func (j *Free) SetAccel(thetaDDot []spatial.Scalar) {
	j.Ball.SetBallAccel(spatial.NewVec3(thetaDDot[0], thetaDDot[1], thetaDDot[2]))
	j.transDDot = spatial.NewVec3(thetaDDot[3], thetaDDot[4], thetaDDot[5])
}

func (j *Free) GetAccel(thetaDDot []spatial.Scalar) {
	omegaDot := j.Ball.GetBallAccel()
	thetaDDot[0], thetaDDot[1], thetaDDot[2] = omegaDot.X, omegaDot.Y, omegaDot.Z
	thetaDDot[3], thetaDDot[4], thetaDDot[5] = j.transDDot.X, j.transDDot.Y, j.transDDot.Z
}

func (j *Free) GetInternalForce(tau []spatial.Scalar) { j.hStore.GetInternalForce(tau) }
func (j *Free) SetInternalForce(tau []spatial.Scalar) { j.hStore.SetInternalForce(tau) }
func (j *Free) AddInternalForce(delta []spatial.Scalar) {
	j.hStore.AddInternalForce(delta)
}

func (j *Free) KinematicsPos(rGP spatial.Mat33) (spatial.Mat33, spatial.Vec3) {
	rPG := rGP.Transpose()
	j.setHRow(0, rowToVec3(rPG[0]), spatial.Zero3())
	j.setHRow(1, rowToVec3(rPG[1]), spatial.Zero3())
	j.setHRow(2, rowToVec3(rPG[2]), spatial.Zero3())
	for row := 0; row < 3; row++ {
		j.setHRow(3+row, spatial.Zero3(), rowToVec3(rPG[row]))
	}

	rPB := j.Ball.CalcR_PB()
	oBP := j.trans.Add(j.Offset)
	return rPB, oBP
}

func (j *Free) KinematicsVel() spatial.SpatialVec {
	omega := j.Ball.GetBallVel()
	thetaDot := []spatial.Scalar{
		omega.X, omega.Y, omega.Z,
		j.transDot.X, j.transDot.Y, j.transDot.Z,
	}
	return hTransposeTimes(j.hStore, thetaDot)
}

func (j *Free) EnforceConstraints() { j.Ball.EnforceBallConstraints() }
