// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package joint

import (
	"github.com/m576f167/simbody/body"
	"github.com/m576f167/simbody/spatial"
)

// ErrUnknownJointType is returned by CreateChild for a body.JointType
// value outside the enumerated set. It wraps body.ErrPreconditionViolated.
var ErrUnknownJointType = body.PreconditionError("joint: unknown joint type")

// ErrReversedUnsupported is returned by CreateChild when reversed is
// true: reversed (tip-to-base) joint mounting is not implemented. It
// wraps body.ErrPreconditionViolated.
var ErrReversedUnsupported = body.PreconditionError("joint: reversed joint mounting is not supported")

// Axes bundles the joint-family-specific construction parameters that
// vary by body.JointType: a fixed mounting offset used by every family,
// and up to two rotation axes used by Torsion, UJoint and FreeLine.
// Unused fields are ignored for joint families that don't need them.
type Axes struct {
	Offset       spatial.Vec3
	AxisX, AxisY spatial.Vec3
}

// CreateChild builds the joint implementation for kind, appends a new
// node to sys as a child of parent, and returns its index. useEuler selects the 3-parameter Euler representation
// for ball-based joints (OrientationJoint, FreeJoint); it is ignored
// otherwise. reversed must be false.
func CreateChild(sys *body.System, parent body.Index, mp body.MassProperties, kind body.JointType, useEuler, reversed bool, axes Axes) (body.Index, error) {
	if reversed {
		return 0, ErrReversedUnsupported
	}

	var j body.Joint
	switch kind {
	case body.CartesianJoint:
		j = NewCartesian(axes.Offset)
	case body.TorsionJoint:
		j = NewTorsion(axes.AxisX, axes.Offset)
	case body.UJoint:
		j = NewUJoint(axes.AxisX, axes.AxisY, axes.Offset)
	case body.OrientationJoint:
		j = NewRotate3(useEuler, axes.Offset)
	case body.FreeLineJoint:
		j = NewFreeLine(axes.AxisX, axes.AxisY, axes.Offset)
	case body.FreeJoint:
		j = NewFree(useEuler, axes.Offset)
	default:
		return 0, ErrUnknownJointType
	}

	return sys.AppendNode(parent, mp, body.JointKindInfo{Kind: kind, UseEuler: useEuler}, j)
}
