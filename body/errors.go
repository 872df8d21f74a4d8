// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import "github.com/pkg/errors"

// ErrPreconditionViolated is returned for ill-formed assembly: a child
// indexed before its parent, an unknown joint type, or a reversed-joint
// request (reversed joints are not currently supported).
var ErrPreconditionViolated = errors.New("precondition violated")

// PreconditionError wraps ErrPreconditionViolated with a human-readable
// reason so callers using errors.Is still get a useful %+v trace.
func PreconditionError(reason string) error {
	return errors.Wrap(ErrPreconditionViolated, reason)
}
