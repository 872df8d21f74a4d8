// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"math"
	"testing"

	"github.com/m576f167/simbody/dynamics"
	"github.com/m576f167/simbody/spatial"
)

const pendulumYAML = `
nodes:
  - parent: -1
    joint: torsion
    axisx: [0, 0, 1]
    mass: 1
    comstation: [0, -1, 0]
    inertiaob: [[2, 0, 0], [0, 2, 0], [0, 0, 2]]
`

func TestBuildTorsionPendulumFromYAML(t *testing.T) {
	desc, err := Parse(pendulumYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(desc.Nodes) != 1 {
		t.Fatalf("len(desc.Nodes) = %d, want 1", len(desc.Nodes))
	}

	sys, err := Build(desc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(sys.Nodes) != 2 {
		t.Fatalf("len(sys.Nodes) = %d, want 2 (ground + one body)", len(sys.Nodes))
	}

	q := make([]spatial.Scalar, sys.NumCoords())
	qd := make([]spatial.Scalar, sys.NumDOF())
	q[0] = 0.01
	sys.SetPos(q)
	sys.SetVel(qd)

	// Gravity acts at the center of mass, so expressed about the body
	// origin it carries the moment ComG x F as well as the linear force;
	// the position pass fills ComG.
	dynamics.Position(sys)
	gravity := spatial.NewVec3(0, -9.8, 0)
	fExt := make([]spatial.SpatialVec, len(sys.Nodes))
	fExt[1] = spatial.SpatialVec{Angular: sys.Nodes[1].ComG.Cross(gravity), Linear: gravity}
	if err := dynamics.Step(sys, fExt); err != nil {
		t.Fatalf("Step: %v", err)
	}

	accel := make([]spatial.Scalar, sys.NumDOF())
	sys.GetAccel(accel)
	want := -(1.0 * 9.8 * 1.0 / 2.0) * q[0]
	if math.Abs(accel[0]-want) > 1e-6 {
		t.Fatalf("theta_ddot = %v, want %v", accel[0], want)
	}
}

func TestBuildRejectsUnknownJoint(t *testing.T) {
	desc := &Description{Nodes: []nodeDesc{{Parent: -1, Joint: "hinge-of-no-such-kind"}}}
	if _, err := Build(desc); err == nil {
		t.Fatal("expected an error for an unknown joint keyword")
	}
}

func TestBuildRejectsForwardParentReference(t *testing.T) {
	desc := &Description{Nodes: []nodeDesc{
		{Parent: 1, Joint: "cartesian"},
		{Parent: -1, Joint: "cartesian"},
	}}
	if _, err := Build(desc); err == nil {
		t.Fatal("expected an error for a forward parent reference")
	}
}
