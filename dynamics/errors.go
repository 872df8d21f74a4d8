// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/m576f167/simbody/body"
)

// ErrSingularConfiguration is the sentinel wrapped by
// SingularConfigurationError, checkable with errors.Is.
var ErrSingularConfiguration = errors.New("singular configuration")

// SingularConfigurationError reports that D = H·P·Hᵀ was not invertible
// during calcP, with the offending node's index, tree level and H
// exposed for diagnostics.
type SingularConfigurationError struct {
	Node  body.Index
	Level int
	H     [][]float64
	cause error
}

func (e *SingularConfigurationError) Error() string {
	return fmt.Sprintf("dynamics: singular configuration at node %d (level %d): %v", e.Node, e.Level, e.cause)
}

func (e *SingularConfigurationError) Unwrap() error { return ErrSingularConfiguration }

func newSingularConfigurationError(node body.Index, level int, h [][]float64, cause error) error {
	return &SingularConfigurationError{Node: node, Level: level, H: h, cause: cause}
}
