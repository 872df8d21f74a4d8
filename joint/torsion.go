// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package joint

import "github.com/m576f167/simbody/spatial"

// Torsion is the 1-DOF joint rotating the body about a fixed axis
// embedded in the parent frame. θ is in radians.
type Torsion struct {
	base
	Axis   spatial.Vec3 // unit axis, expressed in the parent frame
	Offset spatial.Vec3 // fixed parent-frame origin offset (O_BP)
}

// NewTorsion builds a torsion joint about the given (not necessarily
// normalized) axis, with the body origin fixed at offset in the
// parent frame.
func NewTorsion(axis, offset spatial.Vec3) *Torsion {
	n := axis.Length()
	if n > 0 {
		axis = axis.Scale(1 / n)
	}
	return &Torsion{base: newBase(1, 1), Axis: axis, Offset: offset}
}

func (j *Torsion) KinematicsPos(rGP spatial.Mat33) (spatial.Mat33, spatial.Vec3) {
	rPB := rodrigues(j.Axis, j.theta[0])
	axisG := rGP.MulVec(j.Axis)
	j.setHRow(0, axisG, spatial.Zero3())
	return rPB, j.Offset
}

// rodrigues returns the rotation matrix for a rotation of angle a
// about the unit vector axis.
func rodrigues(axis spatial.Vec3, a spatial.Scalar) spatial.Mat33 {
	s, c := sinCos(a)
	k := axis.Skew()
	k2 := k.Mul(k)
	return spatial.Identity3().Add(k.Scale(s)).Add(k2.Scale(1 - c))
}
