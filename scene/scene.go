// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene is a YAML fixture loader for the articulated-body
// core's tests: it externalizes a tree-of-bodies *description*
// (joint types, mass properties, frame offsets) so dynamics tests can
// be written as data rather than hand-built Go literals.
//
// It is a description loader only: no notion of simulation stepping,
// time integration, or contact geometry. Callers still drive the
// position/velocity/articulated-body passes themselves via package
// dynamics.
package scene

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/m576f167/simbody/body"
	"github.com/m576f167/simbody/joint"
	"github.com/m576f167/simbody/spatial"
)

// nodeDesc is one entry in a YAML body-tree description. Parent is an
// index into the description slice that precedes it (ground is
// implicit at index -1 and never listed); children are recorded
// implicitly by each entry's Parent field. Every non-ground node has a
// strictly lower-indexed parent, so a flat parent-index list is the
// natural YAML shape for a kinematic tree.
type nodeDesc struct {
	Parent int     // index into the preceding entries, -1 for ground's direct child
	Joint  string   // one of: cartesian, torsion, ujoint, ball, freeline, free
	Euler  bool     // ball/free only: use Euler angles instead of quaternion
	Offset [3]float64
	AxisX  [3]float64
	AxisY  [3]float64

	Mass       float64
	ComStation [3]float64
	InertiaOB  [3][3]float64
}

// Description is the parsed form of a scene YAML document: a flat,
// base-first list of body descriptions.
type Description struct {
	Nodes []nodeDesc
}

// ErrUnknownJoint is returned by Build for a Joint field that doesn't
// name one of the recognized joint-family keywords.
var ErrUnknownJoint = errors.New("scene: unknown joint keyword")

var jointKeywords = map[string]body.JointType{
	"cartesian": body.CartesianJoint,
	"torsion":   body.TorsionJoint,
	"ujoint":    body.UJoint,
	"ball":      body.OrientationJoint,
	"freeline":  body.FreeLineJoint,
	"free":      body.FreeJoint,
}

// Parse parses a YAML scene description.
func Parse(yamlDoc string) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal([]byte(yamlDoc), &desc); err != nil {
		return nil, errors.Wrap(err, "scene: parsing YAML")
	}
	return &desc, nil
}

// Build constructs a *body.System from a parsed Description, one
// joint.CreateChild call per entry in base-first order. Entry i's
// Parent field of -1 means "ground" (body.Index 0); any other value
// refers to the body.Index assigned to entry Parent (entries are
// appended in order, so an entry's Parent must be an earlier index in
// the slice).
func Build(desc *Description) (*body.System, error) {
	sys := body.NewSystem()
	indices := make([]body.Index, len(desc.Nodes))

	for i, n := range desc.Nodes {
		parent := body.Index(0)
		if n.Parent >= 0 {
			if n.Parent >= i {
				return nil, errors.Errorf("scene: node %d references parent %d, which has not been built yet", i, n.Parent)
			}
			parent = indices[n.Parent]
		}

		kind, ok := jointKeywords[n.Joint]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownJoint, "node %d: %q", i, n.Joint)
		}

		mp := body.MassProperties{
			Mass:       n.Mass,
			ComStation: toVec3(n.ComStation),
			InertiaOB:  toMat33(n.InertiaOB),
		}
		axes := joint.Axes{
			Offset: toVec3(n.Offset),
			AxisX:  toVec3(n.AxisX),
			AxisY:  toVec3(n.AxisY),
		}

		idx, err := joint.CreateChild(sys, parent, mp, kind, n.Euler, false, axes)
		if err != nil {
			return nil, errors.Wrapf(err, "node %d", i)
		}
		indices[i] = idx
	}
	return sys, nil
}

func toVec3(a [3]float64) spatial.Vec3 {
	return spatial.NewVec3(a[0], a[1], a[2])
}

func toMat33(a [3][3]float64) spatial.Mat33 {
	return spatial.Mat33{
		{a[0][0], a[0][1], a[0][2]},
		{a[1][0], a[1][1], a[1][2]},
		{a[2][0], a[2][1], a[2][2]},
	}
}
