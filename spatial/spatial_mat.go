// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

// SpatialMat is a 6x6 operator on SpatialVecs, viewed as four 3x3 blocks:
//
//	[ TL  TR ]
//	[ BL  BR ]
//
// acting on [Angular; Linear] the same way a block-partitioned matrix
// acts on a partitioned vector.
type SpatialMat struct {
	TL, TR, BL, BR Mat33
}

// ZeroSpatial returns the 6x6 zero operator.
func ZeroSpatial() SpatialMat {
	return SpatialMat{}
}

// IdentitySpatial returns the 6x6 identity operator.
func IdentitySpatial() SpatialMat {
	return SpatialMat{TL: Identity3(), BR: Identity3()}
}

// Add returns m+n.
func (m SpatialMat) Add(n SpatialMat) SpatialMat {
	return SpatialMat{
		TL: m.TL.Add(n.TL),
		TR: m.TR.Add(n.TR),
		BL: m.BL.Add(n.BL),
		BR: m.BR.Add(n.BR),
	}
}

// Sub returns m-n.
func (m SpatialMat) Sub(n SpatialMat) SpatialMat {
	return SpatialMat{
		TL: m.TL.Sub(n.TL),
		TR: m.TR.Sub(n.TR),
		BL: m.BL.Sub(n.BL),
		BR: m.BR.Sub(n.BR),
	}
}

// MulVec applies m to a spatial vector.
func (m SpatialMat) MulVec(v SpatialVec) SpatialVec {
	return SpatialVec{
		Angular: m.TL.MulVec(v.Angular).Add(m.TR.MulVec(v.Linear)),
		Linear:  m.BL.MulVec(v.Angular).Add(m.BR.MulVec(v.Linear)),
	}
}

// Mul returns the block matrix product m*n.
func (m SpatialMat) Mul(n SpatialMat) SpatialMat {
	return SpatialMat{
		TL: m.TL.Mul(n.TL).Add(m.TR.Mul(n.BL)),
		TR: m.TL.Mul(n.TR).Add(m.TR.Mul(n.BR)),
		BL: m.BL.Mul(n.TL).Add(m.BR.Mul(n.BL)),
		BR: m.BL.Mul(n.TR).Add(m.BR.Mul(n.BR)),
	}
}

// Transpose returns the block transpose of m.
func (m SpatialMat) Transpose() SpatialMat {
	return SpatialMat{
		TL: m.TL.Transpose(),
		TR: m.BL.Transpose(),
		BL: m.TR.Transpose(),
		BR: m.BR.Transpose(),
	}
}
