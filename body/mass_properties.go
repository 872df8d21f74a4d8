// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package body implements the rigid-body tree: per-node mass properties,
// ground-frame configuration, spatial inertia, and the articulated-body
// scratch state that the dynamics package's recursive passes read and
// write. It owns no algorithm of its own beyond the joint-independent
// spatial-inertia refresh; the recursion lives in package dynamics.
package body

import "github.com/m576f167/simbody/spatial"

// MassProperties holds a body's invariant, body-frame mass distribution:
// total mass, the center-of-mass station, and the inertia tensor about
// the body origin, both expressed in the body frame.
type MassProperties struct {
	Mass       spatial.Scalar
	ComStation spatial.Vec3 // s_B, center of mass in body frame
	InertiaOB  spatial.Mat33 // I_OB_B, inertia about body origin, body frame
}

// SpatialInertia computes the spatial inertia M_k about the body origin,
// expressed in ground, given the body's current orientation R_GB:
//
//	M_k = [ I_OB_G        ,  m·skew(s_G) ]
//	      [ -m·skew(s_G)  ,  m·Identity  ]
//
// where I_OB_G = R_GB·I_OB_B·R_GBᵀ and s_G = R_GB·s_B.
func (mp MassProperties) SpatialInertia(rGB spatial.Mat33) spatial.SpatialMat {
	sG := rGB.MulVec(mp.ComStation)
	iOBG := spatial.OrthoTransform(mp.InertiaOB, rGB)
	skew := sG.Skew()
	return spatial.SpatialMat{
		TL: iOBG,
		TR: skew.Scale(mp.Mass),
		BL: skew.Scale(-mp.Mass),
		BR: spatial.Identity3().Scale(mp.Mass),
	}
}
