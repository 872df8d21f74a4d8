// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import (
	"math"
	"testing"

	"github.com/m576f167/simbody/spatial"
)

func approxEq(a, b, tol spatial.Scalar) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

type stubJoint struct {
	dim, dof int
}

func (s stubJoint) Dim() int                                          { return s.dim }
func (s stubJoint) DOF() int                                          { return s.dof }
func (s stubJoint) SetPos([]spatial.Scalar)                           {}
func (s stubJoint) GetPos([]spatial.Scalar)                           {}
func (s stubJoint) SetVel([]spatial.Scalar)                           {}
func (s stubJoint) GetVel([]spatial.Scalar)                           {}
func (s stubJoint) GetAccel([]spatial.Scalar)                         {}
func (s stubJoint) GetInternalForce([]spatial.Scalar)                 {}
func (s stubJoint) SetInternalForce([]spatial.Scalar)                 {}
func (s stubJoint) AddInternalForce([]spatial.Scalar)                 {}
func (s stubJoint) KinematicsPos(spatial.Mat33) (spatial.Mat33, spatial.Vec3) {
	return spatial.Identity3(), spatial.Zero3()
}
func (s stubJoint) H() [][]spatial.Scalar             { return make([][]spatial.Scalar, s.dof) }
func (s stubJoint) KinematicsVel() spatial.SpatialVec { return spatial.SpatialVec{} }
func (s stubJoint) SetAccel([]spatial.Scalar)         {}
func (s stubJoint) EnforceConstraints()               {}

func TestNewSystemHasOnlyGround(t *testing.T) {
	sys := NewSystem()
	if len(sys.Nodes) != 1 {
		t.Fatalf("expected only the ground node, got %d nodes", len(sys.Nodes))
	}
	if sys.Nodes[0].Parent != NoParent {
		t.Fatalf("ground node must have no parent")
	}
}

func TestAppendNodeRejectsUnknownParent(t *testing.T) {
	sys := NewSystem()
	_, err := sys.AppendNode(5, MassProperties{}, JointKindInfo{}, stubJoint{dim: 1, dof: 1})
	if err == nil {
		t.Fatal("expected a precondition error for a nonexistent parent")
	}
}

func TestAppendNodeBuildsChildChain(t *testing.T) {
	sys := NewSystem()
	idx1, err := sys.AppendNode(0, MassProperties{}, JointKindInfo{}, stubJoint{dim: 1, dof: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx2, err := sys.AppendNode(idx1, MassProperties{}, JointKindInfo{}, stubJoint{dim: 3, dof: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx1 != 1 || idx2 != 2 {
		t.Fatalf("expected sequential indices 1,2, got %d,%d", idx1, idx2)
	}
	if sys.NumCoords() != 4 || sys.NumDOF() != 4 {
		t.Fatalf("expected 4 coords/dof total, got coords=%d dof=%d", sys.NumCoords(), sys.NumDOF())
	}
	if len(sys.Nodes[0].Children) != 1 || sys.Nodes[0].Children[0] != idx1 {
		t.Fatalf("ground should have exactly one child, idx1")
	}
}

func TestSpatialInertiaBlockStructure(t *testing.T) {
	mp := MassProperties{
		Mass:       2,
		ComStation: spatial.NewVec3(1, 0, 0),
		InertiaOB:  spatial.Identity3(),
	}
	mk := mp.SpatialInertia(spatial.Identity3())
	if !approxEq(mk.BR.Trace(), 6, 1e-12) {
		t.Fatalf("BR should be m*Identity, trace 6, got %v", mk.BR.Trace())
	}
	sG := spatial.NewVec3(1, 0, 0)
	wantTR := sG.Skew().Scale(2)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !approxEq(mk.TR[i][j], wantTR[i][j], 1e-12) {
				t.Fatalf("TR[%d][%d] = %v, want %v", i, j, mk.TR[i][j], wantTR[i][j])
			}
		}
	}
}

func TestKineticEnergyIsHalfVMv(t *testing.T) {
	n := &Node{
		Mk:   spatial.SpatialMat{TL: spatial.Identity3(), BR: spatial.Identity3().Scale(2)},
		SVel: spatial.SpatialVec{Angular: spatial.NewVec3(1, 0, 0), Linear: spatial.NewVec3(0, 1, 0)},
	}
	want := 0.5 * (1*1 + 2*1)
	if !approxEq(n.KineticEnergy(), want, 1e-12) {
		t.Fatalf("KineticEnergy() = %v, want %v", n.KineticEnergy(), want)
	}
}
