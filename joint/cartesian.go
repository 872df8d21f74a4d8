// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package joint

import "github.com/m576f167/simbody/spatial"

// Cartesian is the 3-DOF translate joint: θ is the parent-frame
// translation of the body relative to an optional fixed mounting
// offset. H = [0, R_GPᵀ] (linear only).
type Cartesian struct {
	base
	Offset spatial.Vec3 // fixed parent-frame mounting offset, added to θ
}

// NewCartesian builds a translate joint with the given fixed mounting
// offset (zero is the common case: the body's parent-frame position is
// exactly its generalized coordinates).
func NewCartesian(offset spatial.Vec3) *Cartesian {
	return &Cartesian{base: newBase(3, 3), Offset: offset}
}

func (j *Cartesian) KinematicsPos(rGP spatial.Mat33) (spatial.Mat33, spatial.Vec3) {
	oBP := spatial.NewVec3(j.theta[0], j.theta[1], j.theta[2]).Add(j.Offset)
	rGPT := rGP.Transpose()
	for row := 0; row < 3; row++ {
		j.setHRow(row, spatial.Zero3(), spatial.NewVec3(rGPT[row][0], rGPT[row][1], rGPT[row][2]))
	}
	return spatial.Identity3(), oBP
}
