// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package joint

import "github.com/m576f167/simbody/spatial"

// FreeLine is the 5-DOF diatom joint: a rotate2 (U-joint) orientation
// stacked over a 3-DOF translation. Generalized coordinates are ordered
// (rotate2 angle 0, rotate2 angle 1, translate x, y, z); H's rows
// follow the same order, rotational rows with a zero linear block and
// translational rows with a zero angular block.
type FreeLine struct {
	base
	AxisX, AxisY spatial.Vec3 // unit rotate2 axes, expressed in the parent frame
	Offset       spatial.Vec3 // fixed parent-frame mounting offset, added to the translation
}

// NewFreeLine builds a diatom joint rotating about the given two axes
// and translating relative to offset.
func NewFreeLine(axisX, axisY, offset spatial.Vec3) *FreeLine {
	return &FreeLine{
		base:   newBase(5, 5),
		AxisX:  normalize(axisX),
		AxisY:  normalize(axisY),
		Offset: offset,
	}
}

func (j *FreeLine) KinematicsPos(rGP spatial.Mat33) (spatial.Mat33, spatial.Vec3) {
	r1 := rodrigues(j.AxisX, j.theta[0])
	axisYRotated := r1.MulVec(j.AxisY)
	rPB := r1.Mul(rodrigues(j.AxisY, j.theta[1]))

	j.setHRow(0, rGP.MulVec(j.AxisX), spatial.Zero3())
	j.setHRow(1, rGP.MulVec(axisYRotated), spatial.Zero3())

	oBP := spatial.NewVec3(j.theta[2], j.theta[3], j.theta[4]).Add(j.Offset)
	rGPT := rGP.Transpose()
	for row := 0; row < 3; row++ {
		j.setHRow(2+row, spatial.Zero3(), rowToVec3(rGPT[row]))
	}

	return rPB, oBP
}
