// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package joint

import "github.com/m576f167/simbody/spatial"

// UJoint is the 2-DOF rotate2 joint: two Euler angles, the first about
// a fixed parent-embedded axis AxisX, the second about AxisY as carried
// along by the first rotation. H's rows are the current
// ground-frame x and y joint axes; the linear block is always zero.
type UJoint struct {
	base
	AxisX, AxisY spatial.Vec3 // unit axes, expressed in the parent frame
	Offset       spatial.Vec3
}

// NewUJoint builds a U-joint (universal joint) about the two given
// (not necessarily normalized, but necessarily non-parallel) axes.
func NewUJoint(axisX, axisY, offset spatial.Vec3) *UJoint {
	return &UJoint{
		base:   newBase(2, 2),
		AxisX:  normalize(axisX),
		AxisY:  normalize(axisY),
		Offset: offset,
	}
}

func normalize(v spatial.Vec3) spatial.Vec3 {
	n := v.Length()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

func (j *UJoint) KinematicsPos(rGP spatial.Mat33) (spatial.Mat33, spatial.Vec3) {
	r1 := rodrigues(j.AxisX, j.theta[0])
	axisYRotated := r1.MulVec(j.AxisY)
	rPB := r1.Mul(rodrigues(j.AxisY, j.theta[1]))

	j.setHRow(0, rGP.MulVec(j.AxisX), spatial.Zero3())
	j.setHRow(1, rGP.MulVec(axisYRotated), spatial.Zero3())

	return rPB, j.Offset
}
