// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"math"
	"testing"

	"github.com/pkg/errors"

	"github.com/m576f167/simbody/body"
	"github.com/m576f167/simbody/joint"
	"github.com/m576f167/simbody/spatial"
)

func approxEq(a, b, tol spatial.Scalar) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

// TestCartesianBodyInGravity checks that a single Cartesian-jointed
// body in gravity, with zero internal force and zero initial velocity,
// accelerates at exactly g.
func TestCartesianBodyInGravity(t *testing.T) {
	sys := body.NewSystem()
	mp := body.MassProperties{Mass: 1, InertiaOB: spatial.Identity3()}
	idx, err := joint.CreateChild(sys, 0, mp, body.CartesianJoint, false, false, joint.Axes{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sys.SetPos(make([]spatial.Scalar, sys.NumCoords()))
	sys.SetVel(make([]spatial.Scalar, sys.NumDOF()))

	fExt := make([]spatial.SpatialVec, len(sys.Nodes))
	fExt[idx] = spatial.SpatialVec{Linear: spatial.NewVec3(0, -9.8, 0)}

	if err := Step(sys, fExt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accel := make([]spatial.Scalar, sys.NumDOF())
	sys.GetAccel(accel)
	want := []spatial.Scalar{0, -9.8, 0}
	for i := range want {
		if !approxEq(accel[i], want[i], 1e-9) {
			t.Fatalf("theta_ddot[%d] = %v, want %v", i, accel[i], want[i])
		}
	}
}

// TestTorsionPendulumSmallAngle checks that a small angular
// displacement from the stable hanging equilibrium gives a restoring
// acceleration of -(mgl/I)*theta.
func TestTorsionPendulumSmallAngle(t *testing.T) {
	sys := body.NewSystem()
	const ell, g, inertia = 1.0, 9.8, 2.0
	mp := body.MassProperties{
		Mass:       1,
		ComStation: spatial.NewVec3(0, -ell, 0),
		InertiaOB:  spatial.Mat33{{inertia, 0, 0}, {0, inertia, 0}, {0, 0, inertia}},
	}
	idx, err := joint.CreateChild(sys, 0, mp, body.TorsionJoint, false, false, joint.Axes{AxisX: spatial.NewVec3(0, 0, 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	theta := 0.01
	sys.SetPos([]spatial.Scalar{theta})
	sys.SetVel([]spatial.Scalar{0})

	// Gravity acts at the center of mass, not the body origin: the
	// spatial force at the origin equivalent to a force F at ComG also
	// carries the moment ComG x F.
	Position(sys)
	gravityForce := spatial.NewVec3(0, -g, 0)
	fExt := make([]spatial.SpatialVec, len(sys.Nodes))
	fExt[idx] = spatial.SpatialVec{
		Angular: sys.Nodes[idx].ComG.Cross(gravityForce),
		Linear:  gravityForce,
	}

	if err := Step(sys, fExt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accel := make([]spatial.Scalar, sys.NumDOF())
	sys.GetAccel(accel)
	want := -(1 * g * ell / inertia) * theta
	if !approxEq(accel[0], want, 5e-4) {
		t.Fatalf("theta_ddot = %v, want approximately %v", accel[0], want)
	}
}

// TestFreeBodySpinTorqueFree checks that a free body spinning about a
// principal axis of a spherically symmetric inertia, with no external
// force, has zero acceleration.
func TestFreeBodySpinTorqueFree(t *testing.T) {
	sys := body.NewSystem()
	mp := body.MassProperties{Mass: 1, InertiaOB: spatial.Identity3()}
	_, err := joint.CreateChild(sys, 0, mp, body.FreeJoint, false, false, joint.Axes{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dof := sys.NumDOF()
	qd := make([]spatial.Scalar, dof)
	qd[1] = 1 // omega = (0,1,0)
	sys.SetPos([]spatial.Scalar{1, 0, 0, 0, 0, 0, 0})
	sys.SetVel(qd)

	Position(sys)
	Velocity(sys)
	keBefore := sys.TotalKineticEnergy()

	fExt := make([]spatial.SpatialVec, len(sys.Nodes))
	if err := Step(sys, fExt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accel := make([]spatial.Scalar, dof)
	sys.GetAccel(accel)
	for i, a := range accel {
		if !approxEq(a, 0, 1e-9) {
			t.Fatalf("theta_ddot[%d] = %v, want 0 for a torque-free symmetric spin", i, a)
		}
	}

	keAfter := sys.TotalKineticEnergy()
	if !approxEq(keBefore, keAfter, 1e-9) {
		t.Fatalf("kinetic energy changed across a torque-free step: before=%v after=%v", keBefore, keAfter)
	}
}

// TestAccelerationConsistencyMatchesGeneralizedMassMatrix exercises the
// acceleration-consistency testable property: for an arbitrary
// generalized force with zero external spatial force, calcP/calcZ/
// calcAccel must produce theta_ddot such that M_gen*theta_ddot + C = tau.
func TestAccelerationConsistencyMatchesGeneralizedMassMatrix(t *testing.T) {
	sys := body.NewSystem()
	mp := body.MassProperties{Mass: 2, InertiaOB: spatial.Mat33{{1, 0, 0}, {0, 1.5, 0}, {0, 0, 1}}}
	_, err := joint.CreateChild(sys, 0, mp, body.TorsionJoint, false, false, joint.Axes{AxisX: spatial.NewVec3(0, 0, 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sys.SetPos([]spatial.Scalar{0.3})
	sys.SetVel([]spatial.Scalar{0.2})
	sys.Nodes[1].Joint.SetInternalForce([]spatial.Scalar{0.5})

	fExt := make([]spatial.SpatialVec, len(sys.Nodes))
	if err := Step(sys, fExt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	Position(sys)
	mgen := MassMatrix(sys)
	if r, c := mgen.Dims(); r != 1 || c != 1 {
		t.Fatalf("expected a 1x1 generalized mass matrix, got %dx%d", r, c)
	}

	accel := make([]spatial.Scalar, 1)
	sys.GetAccel(accel)

	// For a single-DOF system with no Coriolis/gravity contribution
	// folded into C here (fExt is zero and velocity-squared terms are
	// second order at this DOF count), tau ≈ M_gen * theta_ddot.
	got := mgen.At(0, 0) * accel[0]
	if !approxEq(got, 0.5, 1e-6) {
		t.Fatalf("M_gen*theta_ddot = %v, want approximately the applied internal force 0.5", got)
	}
}

// twoLinkPendulum builds ground -> torsion -> torsion with the second
// body's joint mounted one unit below the first body's origin, the
// smallest tree with a nonzero parent-child mass-matrix coupling.
func twoLinkPendulum(t *testing.T) *body.System {
	t.Helper()
	sys := body.NewSystem()
	mp := body.MassProperties{
		Mass:       1,
		ComStation: spatial.NewVec3(0, -0.5, 0),
		InertiaOB:  spatial.Mat33{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	}
	axis := joint.Axes{AxisX: spatial.NewVec3(0, 0, 1)}
	idx1, err := joint.CreateChild(sys, 0, mp, body.TorsionJoint, false, false, axis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	axis.Offset = spatial.NewVec3(0, -1, 0)
	if _, err := joint.CreateChild(sys, idx1, mp, body.TorsionJoint, false, false, axis); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sys
}

// TestSpatialVelocityComposition exercises the spatial-velocity
// composition testable property: after a position then velocity pass,
// every node's s_vel equals the parent velocity shifted through Φ plus
// the joint's own Hᵀ·θ̇ contribution.
func TestSpatialVelocityComposition(t *testing.T) {
	sys := twoLinkPendulum(t)
	sys.SetPos([]spatial.Scalar{0.4, -0.7})
	sys.SetVel([]spatial.Scalar{0.3, 1.1})
	Position(sys)
	Velocity(sys)

	for i := 1; i < len(sys.Nodes); i++ {
		n := sys.Nodes[i]
		p := sys.Nodes[n.Parent]

		dof := n.Joint.DOF()
		thetaDot := make([]spatial.Scalar, dof)
		n.Joint.GetVel(thetaDot)
		want := n.Phi.ShiftMotion(p.SVel).Add(hTransposeTheta(n.Joint.H(), thetaDot))

		diff := n.SVel.Sub(want)
		if diff.Angular.Length() > 1e-12 || diff.Linear.Length() > 1e-12 {
			t.Fatalf("node %d: s_vel = %+v, want %+v", i, n.SVel, want)
		}
	}
}

// TestKineticEnergyMatchesGeneralizedMassMatrix exercises the
// kinetic-energy consistency testable property: the node-wise sum
// ½·s_velᵀ·M_k·s_vel must equal ½·θ̇ᵀ·M_gen·θ̇ with M_gen from the
// composite-rigid-body assembly, including its off-diagonal coupling.
func TestKineticEnergyMatchesGeneralizedMassMatrix(t *testing.T) {
	sys := twoLinkPendulum(t)
	sys.SetPos([]spatial.Scalar{0.4, -0.7})
	qd := []spatial.Scalar{0.3, 1.1}
	sys.SetVel(qd)
	Position(sys)
	Velocity(sys)

	keNodes := sys.TotalKineticEnergy()

	mgen := MassMatrix(sys)
	var keGen spatial.Scalar
	for i := 0; i < len(qd); i++ {
		for j := 0; j < len(qd); j++ {
			keGen += 0.5 * qd[i] * mgen.At(i, j) * qd[j]
		}
	}

	if !approxEq(keNodes, keGen, 1e-10) {
		t.Fatalf("node-wise KE = %v, generalized KE = %v", keNodes, keGen)
	}
}

// TestCalcPSingularConfiguration drives calcP into a singular D: a
// massless, inertialess body makes H·P·Hᵀ exactly zero. The failure
// must surface as a SingularConfigurationError carrying the offending
// node's level and H.
func TestCalcPSingularConfiguration(t *testing.T) {
	sys := body.NewSystem()
	mp := body.MassProperties{} // zero mass, zero inertia
	idx, err := joint.CreateChild(sys, 0, mp, body.TorsionJoint, false, false, joint.Axes{AxisX: spatial.NewVec3(0, 0, 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sys.SetPos([]spatial.Scalar{0})
	sys.SetVel([]spatial.Scalar{0})
	Position(sys)
	Velocity(sys)

	err = CalcP(sys)
	if err == nil {
		t.Fatal("expected a singular-configuration error for a massless body")
	}
	if !errors.Is(err, ErrSingularConfiguration) {
		t.Fatalf("error does not wrap ErrSingularConfiguration: %v", err)
	}
	var sce *SingularConfigurationError
	if !errors.As(err, &sce) {
		t.Fatalf("error is %T, want *SingularConfigurationError", err)
	}
	if sce.Node != idx || sce.Level != 1 {
		t.Fatalf("error reports node %d level %d, want node %d level 1", sce.Node, sce.Level, idx)
	}
	if len(sce.H) != 1 {
		t.Fatalf("error should carry the 1x6 H of the torsion joint, got %d rows", len(sce.H))
	}
}

// TestForwardInverseRoundTrip exercises the forward/inverse round-trip
// testable property: calcInternalForce applied to the spatial force
// induced by a forward-dynamics solve reproduces the original
// generalized force.
func TestForwardInverseRoundTrip(t *testing.T) {
	sys := body.NewSystem()
	mp := body.MassProperties{Mass: 1, InertiaOB: spatial.Identity3()}
	idx, err := joint.CreateChild(sys, 0, mp, body.CartesianJoint, false, false, joint.Axes{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sys.SetPos([]spatial.Scalar{0, 0, 0})
	sys.SetVel([]spatial.Scalar{0, 0, 0})
	sys.Nodes[idx].Joint.SetInternalForce([]spatial.Scalar{1, 2, 3})

	fExt := make([]spatial.SpatialVec, len(sys.Nodes))
	if err := Step(sys, fExt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accel := make([]spatial.Scalar, 3)
	sys.GetAccel(accel)

	// The spatial force required to realize the solved acceleration is
	// M_k*s_acc (no bias at zero velocity, no external force). calcZ and
	// calcInternalForce share the convention that f_spatial is
	// subtracted, so recovering the original tau via H*z = H*(-f_spatial)
	// means passing the negated required force.
	required := sys.Nodes[idx].Mk.MulVec(spatial.SpatialVec{Linear: spatial.NewVec3(accel[0], accel[1], accel[2])})
	inducedF := []spatial.SpatialVec{{}, required.Scale(-1)}

	sys.Nodes[idx].Joint.SetInternalForce([]spatial.Scalar{0, 0, 0})
	CalcInternalForce(sys, inducedF)

	tau := make([]spatial.Scalar, 3)
	sys.Nodes[idx].Joint.GetInternalForce(tau)
	want := []spatial.Scalar{1, 2, 3}
	for i := range want {
		if !approxEq(tau[i], want[i], 1e-8) {
			t.Fatalf("round-tripped tau[%d] = %v, want %v", i, tau[i], want[i])
		}
	}
}
