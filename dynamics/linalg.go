// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/m576f167/simbody/spatial"
)

// spatialMatToDense packs a SpatialMat's four 3x3 blocks into a dense
// 6x6 matrix in [angular|linear] order, for the small linear-algebra
// steps of calcP (H·P·Hᵀ and its inverse) that don't fit the fixed
// block-2x2 shape spatial.SpatialMat itself operates on.
func spatialMatToDense(m spatial.SpatialMat) *mat.Dense {
	d := mat.NewDense(6, 6, nil)
	set33 := func(rowOff, colOff int, b spatial.Mat33) {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				d.Set(rowOff+i, colOff+j, b[i][j])
			}
		}
	}
	set33(0, 0, m.TL)
	set33(0, 3, m.TR)
	set33(3, 0, m.BL)
	set33(3, 3, m.BR)
	return d
}

// hToDense packs a joint's DOF x 6 transition matrix (as returned by
// Joint.H, rows already in [angular|linear] order) into a dense matrix.
func hToDense(h [][]spatial.Scalar) *mat.Dense {
	dof := len(h)
	d := mat.NewDense(dof, 6, nil)
	for i := 0; i < dof; i++ {
		for j := 0; j < 6; j++ {
			d.Set(i, j, h[i][j])
		}
	}
	return d
}

// denseColsToSpatialVecs reinterprets a 6 x dof dense matrix as dof
// SpatialVec columns, the representation package body.Node.G uses.
func denseColsToSpatialVecs(m *mat.Dense) []spatial.SpatialVec {
	_, dof := m.Dims()
	cols := make([]spatial.SpatialVec, dof)
	for k := 0; k < dof; k++ {
		cols[k] = spatial.SpatialVec{
			Angular: spatial.NewVec3(m.At(0, k), m.At(1, k), m.At(2, k)),
			Linear:  spatial.NewVec3(m.At(3, k), m.At(4, k), m.At(5, k)),
		}
	}
	return cols
}

// denseToSpatialMat unpacks a dense 6x6 matrix back into a SpatialMat.
func denseToSpatialMat(m *mat.Dense) spatial.SpatialMat {
	get33 := func(rowOff, colOff int) spatial.Mat33 {
		var b spatial.Mat33
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				b[i][j] = m.At(rowOff+i, colOff+j)
			}
		}
		return b
	}
	return spatial.SpatialMat{
		TL: get33(0, 0),
		TR: get33(0, 3),
		BL: get33(3, 0),
		BR: get33(3, 3),
	}
}

// denseToRows converts a dof x dof dense matrix into [][]Scalar, the
// representation package body.Node.D and DI use.
func denseToRows(m *mat.Dense) [][]spatial.Scalar {
	r, c := m.Dims()
	rows := make([][]spatial.Scalar, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]spatial.Scalar, c)
		for j := 0; j < c; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

// hTransposeDIH computes Hᵀ·DI·H as a 6x6 SpatialMat, the first term of
// calcY's orthoTransform(DI, Hᵀ).
func hTransposeDIH(h [][]spatial.Scalar, di [][]spatial.Scalar) spatial.SpatialMat {
	dof := len(h)
	var hd mat.Dense
	hDense := hToDense(h)
	diDense := mat.NewDense(dof, dof, nil)
	for i := 0; i < dof; i++ {
		copy(diDense.RawRowView(i), di[i])
	}
	hd.Mul(hDense.T(), diDense)
	var result mat.Dense
	result.Mul(&hd, hDense)
	return denseToSpatialMat(&result)
}
