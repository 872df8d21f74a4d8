// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import "github.com/m576f167/simbody/spatial"

// System is the whole kinematic tree: an ordered node sequence with
// ground at index 0, and every other node's parent at a strictly lower
// index. The order is a topological sort of the tree; the dynamics
// package's recursive passes iterate it low-to-high (base->tip) or
// high-to-low (tip->base).
type System struct {
	Nodes []*Node
}

// NewSystem creates a system containing only the ground node.
func NewSystem() *System {
	ground := &Node{
		Index:  0,
		Parent: NoParent,
		Joint:  groundJoint{},
		RGB:    spatial.Identity3(),
		RPB:    spatial.Identity3(),
	}
	return &System{Nodes: []*Node{ground}}
}

// groundJoint is the zero-DOF joint implicitly owned by node 0.
type groundJoint struct{}

func (groundJoint) Dim() int                                      { return 0 }
func (groundJoint) DOF() int                                      { return 0 }
func (groundJoint) SetPos([]spatial.Scalar)                       {}
func (groundJoint) GetPos([]spatial.Scalar)                       {}
func (groundJoint) SetVel([]spatial.Scalar)                       {}
func (groundJoint) GetVel([]spatial.Scalar)                       {}
func (groundJoint) GetAccel([]spatial.Scalar)                     {}
func (groundJoint) GetInternalForce([]spatial.Scalar)              {}
func (groundJoint) SetInternalForce([]spatial.Scalar)              {}
func (groundJoint) AddInternalForce([]spatial.Scalar)              {}
func (groundJoint) KinematicsPos(spatial.Mat33) (spatial.Mat33, spatial.Vec3) {
	return spatial.Identity3(), spatial.Zero3()
}
func (groundJoint) H() [][]spatial.Scalar           { return nil }
func (groundJoint) KinematicsVel() spatial.SpatialVec { return spatial.SpatialVec{} }
func (groundJoint) SetAccel([]spatial.Scalar)       {}
func (groundJoint) EnforceConstraints()             {}

// AppendNode appends a fully constructed node (built by package joint's
// assembly helper) to the system, assigning it the next index and
// validating the topology precondition: parent must already exist.
func (s *System) AppendNode(parent Index, mp MassProperties, kind JointKindInfo, j Joint) (Index, error) {
	if parent < 0 || int(parent) >= len(s.Nodes) {
		return 0, PreconditionError("parent node does not exist at a strictly lower index")
	}
	idx := Index(len(s.Nodes))
	n := &Node{
		Index:     idx,
		Parent:    parent,
		Mass:      mp,
		JointKind: kind,
		Joint:     j,
	}
	s.Nodes = append(s.Nodes, n)
	s.Nodes[parent].Children = append(s.Nodes[parent].Children, idx)
	return idx, nil
}

// NumCoords returns the total length of the tree-wide generalized
// coordinate vector (sum of each node's joint Dim()).
func (s *System) NumCoords() int {
	n := 0
	for _, node := range s.Nodes {
		n += node.Joint.Dim()
	}
	return n
}

// NumDOF returns the total length of the tree-wide generalized
// velocity/acceleration/internal-force vectors.
func (s *System) NumDOF() int {
	n := 0
	for _, node := range s.Nodes {
		n += node.Joint.DOF()
	}
	return n
}

// forEachCoord walks the nodes in base-first order invoking fn with
// each node's slice of the position-sized vector.
func (s *System) forEachCoord(q []spatial.Scalar, fn func(n *Node, slice []spatial.Scalar)) {
	off := 0
	for _, n := range s.Nodes {
		d := n.Joint.Dim()
		fn(n, q[off:off+d])
		off += d
	}
}

// forEachDOF walks the nodes in base-first order invoking fn with each
// node's slice of a DOF-sized vector (velocity/acceleration/force).
func (s *System) forEachDOF(v []spatial.Scalar, fn func(n *Node, slice []spatial.Scalar)) {
	off := 0
	for _, n := range s.Nodes {
		d := n.Joint.DOF()
		fn(n, v[off:off+d])
		off += d
	}
}

// SetPos unpacks the tree-wide coordinate vector into each node's joint
// and does NOT itself run the position pass (see package dynamics).
func (s *System) SetPos(q []spatial.Scalar) {
	s.forEachCoord(q, func(n *Node, slice []spatial.Scalar) { n.Joint.SetPos(slice) })
}

// GetPos packs each node's joint coordinates into q.
func (s *System) GetPos(q []spatial.Scalar) {
	s.forEachCoord(q, func(n *Node, slice []spatial.Scalar) { n.Joint.GetPos(slice) })
}

// SetVel unpacks the tree-wide velocity vector into each node's joint.
func (s *System) SetVel(qd []spatial.Scalar) {
	s.forEachDOF(qd, func(n *Node, slice []spatial.Scalar) { n.Joint.SetVel(slice) })
}

// GetVel packs each node's joint velocities into qd.
func (s *System) GetVel(qd []spatial.Scalar) {
	s.forEachDOF(qd, func(n *Node, slice []spatial.Scalar) { n.Joint.GetVel(slice) })
}

// GetAccel packs each node's joint accelerations into qdd.
func (s *System) GetAccel(qdd []spatial.Scalar) {
	s.forEachDOF(qdd, func(n *Node, slice []spatial.Scalar) { n.Joint.GetAccel(slice) })
}

// GetInternalForce packs each node's internal generalized force into tau.
func (s *System) GetInternalForce(tau []spatial.Scalar) {
	s.forEachDOF(tau, func(n *Node, slice []spatial.Scalar) { n.Joint.GetInternalForce(slice) })
}

// TotalMomentum sums each node's spatial momentum M_k·s_vel, expressed
// in ground.
func (s *System) TotalMomentum() spatial.SpatialVec {
	var total spatial.SpatialVec
	for _, n := range s.Nodes {
		total = total.Add(n.Mk.MulVec(n.SVel))
	}
	return total
}

// TotalKineticEnergy sums ½·s_velᵀ·M_k·s_vel over all nodes.
func (s *System) TotalKineticEnergy() spatial.Scalar {
	var total spatial.Scalar
	for _, n := range s.Nodes {
		total += n.KineticEnergy()
	}
	return total
}
