// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contactdemo is a sphere-on-half-space reference driver for
// the articulated-body core: Hunt-Crossley normal contact plus
// regularized Coulomb friction, integrated with semi-implicit Euler.
// It shows how an outer application drives the core's forward-dynamics
// solve; the core itself knows nothing about contact or time
// integration. It is the only package in this module that integrates
// over time or logs.
package contactdemo

import "math"

// Material is one body's contact-relevant surface parameters: the two
// Hunt-Crossley stiffness/dissipation coefficients and three friction
// coefficients (static, dynamic, viscous), combined pairwise with
// another Material's before a contact is resolved.
type Material struct {
	Name string

	Stiffness   float64 // b_i, entering the contact as k_i = b_i^(2/3)
	Dissipation float64 // c_i

	StaticFriction  float64 // mu_s,i
	DynamicFriction float64 // mu_d,i
	ViscousFriction float64 // mu_v,i
}

// EffectiveStiffness returns k_i = b_i^(2/3), the per-material term
// combined into a pair's effective stiffness k.
func (m Material) EffectiveStiffness() float64 {
	return math.Pow(m.Stiffness, 2.0/3.0)
}

// ContactPair is a combined pair of Materials: the pairwise
// Hunt-Crossley and friction coefficients are derived once per
// contacting pair rather than per step.
type ContactPair struct {
	A, B Material
}

// Stiffness returns the pairwise effective stiffness
// k = k1*k2/(k1+k2) with k_i = b_i^(2/3).
func (p ContactPair) Stiffness() float64 {
	k1, k2 := p.A.EffectiveStiffness(), p.B.EffectiveStiffness()
	return k1 * k2 / (k1 + k2)
}

// Dissipation returns the pairwise effective dissipation
// c = (c1*k2 + c2*k1) / (k1+k2).
func (p ContactPair) Dissipation() float64 {
	k1, k2 := p.A.EffectiveStiffness(), p.B.EffectiveStiffness()
	c1, c2 := p.A.Dissipation, p.B.Dissipation
	return (c1*k2 + c2*k1) / (k1 + k2)
}

// harmonicPair returns 2*x1*x2/(x1+x2), the combination rule shared
// by mu_s, mu_d and mu_v.
func harmonicPair(x1, x2 float64) float64 {
	if x1+x2 == 0 {
		return 0
	}
	return 2 * x1 * x2 / (x1 + x2)
}

// StaticFriction, DynamicFriction and ViscousFriction return the
// pairwise effective friction coefficients
// mu = 2*mu_1*mu_2/(mu_1+mu_2).
func (p ContactPair) StaticFriction() float64  { return harmonicPair(p.A.StaticFriction, p.B.StaticFriction) }
func (p ContactPair) DynamicFriction() float64 { return harmonicPair(p.A.DynamicFriction, p.B.DynamicFriction) }
func (p ContactPair) ViscousFriction() float64 { return harmonicPair(p.A.ViscousFriction, p.B.ViscousFriction) }
