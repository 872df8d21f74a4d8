// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package joint

import "github.com/m576f167/simbody/spatial"

// Rotate3 is the 3-motion-DOF ball joint: 4 or 3 coordinates
// depending on representation, 3 motion DOF, H structure [R_GPᵀ, 0].
// All orientation bookkeeping is delegated to
// the contained Ball component; Rotate3 itself only owns H and the
// internal-force cache.
type Rotate3 struct {
	hStore
	Ball   *Ball
	Offset spatial.Vec3
}

// NewRotate3 builds a ball joint with its body origin fixed at offset
// in the parent frame, in either Euler or quaternion representation.
func NewRotate3(useEuler bool, offset spatial.Vec3) *Rotate3 {
	return &Rotate3{
		hStore: newHStore(3),
		Ball:   NewBall(useEuler),
		Offset: offset,
	}
}

func (j *Rotate3) Dim() int { return j.Ball.Dim() }

func (j *Rotate3) SetPos(theta []spatial.Scalar) { j.Ball.SetBallPos(theta) }
func (j *Rotate3) GetPos(theta []spatial.Scalar) { j.Ball.GetBallPos(theta) }

func (j *Rotate3) SetVel(thetaDot []spatial.Scalar) {
	j.Ball.SetBallVel(spatial.NewVec3(thetaDot[0], thetaDot[1], thetaDot[2]))
}

func (j *Rotate3) GetVel(thetaDot []spatial.Scalar) {
	omega := j.Ball.GetBallVel()
	thetaDot[0], thetaDot[1], thetaDot[2] = omega.X, omega.Y, omega.Z
}

func (j *Rotate3) SetAccel(thetaDDot []spatial.Scalar) {
	j.Ball.SetBallAccel(spatial.NewVec3(thetaDDot[0], thetaDDot[1], thetaDDot[2]))
}

func (j *Rotate3) GetAccel(thetaDDot []spatial.Scalar) {
	omegaDot := j.Ball.GetBallAccel()
	thetaDDot[0], thetaDDot[1], thetaDDot[2] = omegaDot.X, omegaDot.Y, omegaDot.Z
}

func (j *Rotate3) GetInternalForce(tau []spatial.Scalar) { j.hStore.GetInternalForce(tau) }
func (j *Rotate3) SetInternalForce(tau []spatial.Scalar) { j.hStore.SetInternalForce(tau) }
func (j *Rotate3) AddInternalForce(delta []spatial.Scalar) {
	j.hStore.AddInternalForce(delta)
}

// KinematicsPos computes R_PB from the ball's current orientation
// coordinates and populates H's three rows with R_GPᵀ.
func (j *Rotate3) KinematicsPos(rGP spatial.Mat33) (spatial.Mat33, spatial.Vec3) {
	rPG := rGP.Transpose()
	j.setHRow(0, rowToVec3(rPG[0]), spatial.Zero3())
	j.setHRow(1, rowToVec3(rPG[1]), spatial.Zero3())
	j.setHRow(2, rowToVec3(rPG[2]), spatial.Zero3())
	return j.Ball.CalcR_PB(), j.Offset
}

func (j *Rotate3) KinematicsVel() spatial.SpatialVec {
	omega := j.Ball.GetBallVel()
	return hTransposeTimes(j.hStore, []spatial.Scalar{omega.X, omega.Y, omega.Z})
}

func (j *Rotate3) EnforceConstraints() { j.Ball.EnforceBallConstraints() }

func rowToVec3(r [3]spatial.Scalar) spatial.Vec3 { return spatial.NewVec3(r[0], r[1], r[2]) }
