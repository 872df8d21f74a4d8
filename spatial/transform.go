// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

// Transform is a rigid pose: a rotation and a translation.
type Transform struct {
	R Mat33
	O Vec3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{R: Identity3(), O: Zero3()}
}

// Compose returns the transform that first applies t, then u: a point
// p in t's frame maps to u.R*(t.R*p + t.O) + u.O in u's outer frame.
func (t Transform) Compose(u Transform) Transform {
	return Transform{
		R: u.R.Mul(t.R),
		O: u.O.Add(u.R.MulVec(t.O)),
	}
}

// Apply maps a point p expressed in t's frame into t's outer frame.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.O.Add(t.R.MulVec(p))
}
