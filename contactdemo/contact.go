// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contactdemo

import "math"

// regularizationSpeed is v_t in the regularized Coulomb friction
// model: the sliding speed below which friction is blended
// smoothly toward zero instead of switching discontinuously at v=0.
const regularizationSpeed = 1e-3

// NormalForce evaluates the Hunt-Crossley penalty force for a contact
// of depth d (positive when interpenetrating) closing at normal speed
// v (positive when the gap is closing), given the pair's combined
// stiffness/dissipation:
//
//	f_n  = (4/3)*k*d*sqrt(r*k*d)          (d>0, v=0)
//	f_n' = max(0, f_n*(1 + 1.5*c*v))      (d>0, general v)
//
// r is the local radius of curvature at the contact point (the
// sphere's radius for a sphere-on-plane contact). NormalForce returns
// 0 for any non-penetrating depth (d<=0).
func NormalForce(p ContactPair, r, d, v float64) float64 {
	if d <= 0 {
		return 0
	}
	k := p.Stiffness()
	c := p.Dissipation()

	fn := (4.0 / 3.0) * k * d * math.Sqrt(r*k*d)
	fn *= 1 + 1.5*c*v
	if fn < 0 {
		return 0
	}
	return fn
}

// TangentialForce evaluates the regularized Coulomb friction force
// opposing a sliding contact, given the pair's combined friction
// coefficients, the contact's current normal force fn and the
// tangential (sliding) speed v, signed in the sliding direction:
//
//	f_t = -sign(v)*fn*( min(|v|/v_t, 1) *
//	          (mu_d + 2*(mu_s-mu_d)/(1+(|v|/v_t)^2)) + mu_v*|v| )
//
// with v_t = 1e-3. At v=0 the blend factor
// min(|v|/v_t,1) vanishes and TangentialForce returns 0, avoiding the
// static/dynamic discontinuity a plain Coulomb model has at rest.
func TangentialForce(p ContactPair, fn, v float64) float64 {
	if fn <= 0 {
		return 0
	}
	absV := math.Abs(v)
	if absV == 0 {
		return 0
	}
	ratio := absV / regularizationSpeed
	blend := ratio
	if blend > 1 {
		blend = 1
	}

	muS, muD, muV := p.StaticFriction(), p.DynamicFriction(), p.ViscousFriction()
	coulomb := blend * (muD + 2*(muS-muD)/(1+ratio*ratio))
	viscous := muV * absV

	sign := 1.0
	if v < 0 {
		sign = -1
	}
	return -sign * fn * (coulomb + viscous)
}
