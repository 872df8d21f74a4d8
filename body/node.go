// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import "github.com/m576f167/simbody/spatial"

// Index identifies a node's position in a System's base-first node
// order. Ground is always index 0; every other node's parent has a
// strictly lower index.
type Index int

// NoParent marks the ground node, which has no parent.
const NoParent Index = -1

// Joint is the interface a joint-family implementation (package joint)
// presents to a Node. It owns the joint's generalized coordinates and
// the joint-specific kinematic map; Node and the dynamics package own
// everything that is common to all joint families.
type Joint interface {
	// Dim is the number of generalized-coordinate slots the joint
	// consumes in the tree-wide position vector (equal to DOF except
	// for ball-style joints, where a quaternion consumes 4 slots for
	// 3 motion DOF).
	Dim() int
	// DOF is the number of generalized-velocity/acceleration slots
	// and the row count of H.
	DOF() int

	SetPos(theta []spatial.Scalar)
	GetPos(theta []spatial.Scalar)
	SetVel(thetaDot []spatial.Scalar)
	GetVel(thetaDot []spatial.Scalar)
	GetAccel(thetaDDot []spatial.Scalar)
	GetInternalForce(tau []spatial.Scalar)
	SetInternalForce(tau []spatial.Scalar)
	AddInternalForce(delta []spatial.Scalar)

	// KinematicsPos recomputes R_PB, O_BP and H from the joint's
	// current θ and the parent's ground-frame orientation R_GP. It is
	// called once per node per position pass.
	KinematicsPos(rGP spatial.Mat33) (rPB spatial.Mat33, oBP spatial.Vec3)
	// H returns the joint transition matrix (DOF x 6) computed by the
	// most recent KinematicsPos call, in the order [angular | linear].
	H() [][]spatial.Scalar

	// KinematicsVel returns V_PB_G = Hᵀ·θ̇ using the joint's current
	// θ̇ and H.
	KinematicsVel() spatial.SpatialVec

	// SetAccel stores θ̈ computed by the acceleration pass.
	SetAccel(thetaDDot []spatial.Scalar)

	// EnforceConstraints re-normalizes and projects the joint's
	// internal representation, a no-op except for quaternion ball
	// joints.
	EnforceConstraints()
}

// Node is one member of the rigid-body tree.
type Node struct {
	Index  Index
	Parent Index

	// Invariants.
	Mass      MassProperties
	JointKind JointKindInfo
	Joint     Joint
	Children  []Index

	// Position state, refreshed by the position pass.
	RPB        spatial.Mat33  // body orientation in parent
	OBP        spatial.Vec3   // body origin in parent
	RGB        spatial.Mat33  // body orientation in ground
	OBG        spatial.Vec3   // body origin in ground
	Phi        spatial.ShiftOp
	InertiaOBG spatial.Mat33 // inertia about body origin, ground frame
	ComG       spatial.Vec3  // center of mass relative to body origin, ground frame
	Mk         spatial.SpatialMat

	// Velocity state.
	VPBG spatial.SpatialVec // velocity of B in P, expressed in G
	SVel spatial.SpatialVec // spatial velocity of B in G
	B    spatial.SpatialVec // gyroscopic bias
	A    spatial.SpatialVec // Coriolis/centripetal bias

	// Acceleration state.
	SAcc spatial.SpatialVec

	// Articulated-body scratch state (transient within a force solve).
	P    spatial.SpatialMat
	D    [][]spatial.Scalar   // DOF x DOF
	DI   [][]spatial.Scalar   // D inverse, DOF x DOF
	G    []spatial.SpatialVec // 6 x DOF, stored as DOF columns each a 6-vector
	Tau  spatial.SpatialMat   // I - G*H
	PsiT spatial.SpatialMat   // τᵀ·Φᵀ
	Z    spatial.SpatialVec
	Eps  []spatial.Scalar
	Nu   []spatial.Scalar
	GEps spatial.SpatialVec
	Y    spatial.SpatialMat
}

// JointKindInfo records the joint family tag and its configuration,
// kept on the node for diagnostics and for the scene loader.
type JointKindInfo struct {
	Kind     JointType
	UseEuler bool
}

// JointType enumerates the supported joint families.
type JointType int

const (
	Ground JointType = iota
	CartesianJoint
	TorsionJoint
	UJoint
	OrientationJoint // rotate3 / ball
	FreeLineJoint    // diatom: translate + rotate2
	FreeJoint
)

// KineticEnergy returns ½·s_velᵀ·M_k·s_vel.
func (n *Node) KineticEnergy() spatial.Scalar {
	return 0.5 * n.SVel.Dot(n.Mk.MulVec(n.SVel))
}
