// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contactdemo

import (
	"math"
	"testing"
)

// referencePair is the Hunt-Crossley reference scenario's materials: a unit-mass sphere (b1=1, c1=0.5) on a half-space
// (b2=2, c2=1.0).
func referencePair() ContactPair {
	return ContactPair{
		A: Material{Name: "sphere", Stiffness: 1, Dissipation: 0.5, StaticFriction: 0.8, DynamicFriction: 0.5, ViscousFriction: 0.01},
		B: Material{Name: "halfspace", Stiffness: 2, Dissipation: 1.0, StaticFriction: 0.6, DynamicFriction: 0.4, ViscousFriction: 0.02},
	}
}

func TestNormalForceZeroBelowSurface(t *testing.T) {
	p := referencePair()
	if f := NormalForce(p, 0.8, 0, 0); f != 0 {
		t.Fatalf("NormalForce at d=0 = %v, want 0", f)
	}
	if f := NormalForce(p, 0.8, -0.1, 0); f != 0 {
		t.Fatalf("NormalForce at d<0 = %v, want 0", f)
	}
}

// TestNormalForceMatchesReferenceFormula recomputes the closed-form
// Hunt-Crossley expression independently (k=k1*k2/(k1+k2)
// with ki=bi^(2/3), c=(c1*k2+c2*k1)/(k1+k2),
// f_n = (4/3)*k*d*sqrt(r*k*d), f_n' = max(0, f_n*(1+1.5*c*v))) and
// checks NormalForce agrees to within 1e-10.
func TestNormalForceMatchesReferenceFormula(t *testing.T) {
	p := referencePair()
	r := 0.8
	k1 := math.Pow(1, 2.0/3.0)
	k2 := math.Pow(2, 2.0/3.0)
	k := k1 * k2 / (k1 + k2)
	c := (0.5*k2 + 1.0*k1) / (k1 + k2)

	cases := []struct{ d, v float64 }{
		{0.1, 0},
		{0.05, 0.2},
		{0.3, -0.5},
	}
	for _, tc := range cases {
		fn := (4.0 / 3.0) * k * tc.d * math.Sqrt(r*k*tc.d)
		fn *= 1 + 1.5*c*tc.v
		if fn < 0 {
			fn = 0
		}
		got := NormalForce(p, r, tc.d, tc.v)
		if math.Abs(got-fn) > 1e-10 {
			t.Fatalf("NormalForce(d=%v, v=%v) = %v, want %v", tc.d, tc.v, got, fn)
		}
	}
}

func TestNormalForceClampedToZeroWhenSeparating(t *testing.T) {
	p := referencePair()
	// A strongly negative (separating) velocity drives f_n*(1+1.5*c*v)
	// below zero; it must clamp to 0, not go negative.
	f := NormalForce(p, 0.8, 0.1, -100)
	if f != 0 {
		t.Fatalf("NormalForce under strong separation = %v, want 0", f)
	}
}

func TestTangentialForceZeroAtRest(t *testing.T) {
	p := referencePair()
	if f := TangentialForce(p, 10, 0); f != 0 {
		t.Fatalf("TangentialForce at v=0 = %v, want 0", f)
	}
}

func TestTangentialForceZeroWithoutNormalForce(t *testing.T) {
	p := referencePair()
	if f := TangentialForce(p, 0, 1.0); f != 0 {
		t.Fatalf("TangentialForce with fn=0 = %v, want 0", f)
	}
}

// TestTangentialForceMatchesReferenceFormula recomputes the
// regularized Coulomb friction expression independently and checks
// TangentialForce agrees to within 1e-9, including the sign flip
// between sliding directions.
func TestTangentialForceMatchesReferenceFormula(t *testing.T) {
	p := referencePair()
	muS := 2 * 0.8 * 0.6 / (0.8 + 0.6)
	muD := 2 * 0.5 * 0.4 / (0.5 + 0.4)
	muV := 2 * 0.01 * 0.02 / (0.01 + 0.02)
	const vt = 1e-3
	fn := 5.0

	for _, v := range []float64{2e-3, -2e-3, 1e-4, 5.0, -5.0} {
		absV := math.Abs(v)
		ratio := absV / vt
		blend := ratio
		if blend > 1 {
			blend = 1
		}
		want := -math.Copysign(1, v) * fn * (blend*(muD+2*(muS-muD)/(1+ratio*ratio)) + muV*absV)
		got := TangentialForce(p, fn, v)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("TangentialForce(v=%v) = %v, want %v", v, got, want)
		}
	}
}

func TestContactPairCombinationsAreSymmetric(t *testing.T) {
	p := referencePair()
	swapped := ContactPair{A: p.B, B: p.A}
	if math.Abs(p.Stiffness()-swapped.Stiffness()) > 1e-12 {
		t.Fatalf("Stiffness not symmetric: %v vs %v", p.Stiffness(), swapped.Stiffness())
	}
	if math.Abs(p.StaticFriction()-swapped.StaticFriction()) > 1e-12 {
		t.Fatalf("StaticFriction not symmetric: %v vs %v", p.StaticFriction(), swapped.StaticFriction())
	}
}
