// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lapack

import (
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/gonum"
)

// NonSymEig is a real non-symmetric matrix's eigendecomposition, with
// LAPACK's real/conjugate-pair vector convention already re-expanded
// into explicit complex eigenvectors.
type NonSymEig struct {
	Values  []complex128
	Vectors [][]complex128 // Vectors[i] is the i-th eigenvector
}

// Geev computes the eigenvalues and right eigenvectors of a real
// non-symmetric n x n matrix a (row-major), dispatching to gonum's
// Dgeev and then repacking its real/conjugate-pair vector layout into
// explicit complex columns: for a real eigenvalue the column is taken
// verbatim with zero imaginary part, for a conjugate pair at columns
// j, j+1 the complex columns are vr[:,j] ± i*vr[:,j+1].
func Geev(n int, a []float64) (*NonSymEig, error) {
	impl := gonum.Implementation{}

	wr := make([]float64, n)
	wi := make([]float64, n)
	vr := make([]float64, n*n)

	// Scoped two-call workspace query: probe with lwork=-1 to read the
	// recommended size, then allocate and re-invoke, releasing the
	// scratch buffer on return.
	aCopy := append([]float64(nil), a...)
	ws := newWorkspace(func(work []float64, lwork int) int {
		impl.Dgeev(lapack.LeftEVNone, lapack.RightEVCompute, n, aCopy, n, wr, wi, nil, 1, vr, n, work, lwork)
		return 0
	})
	defer ws.release()

	impl.Dgeev(lapack.LeftEVNone, lapack.RightEVCompute, n, aCopy, n, wr, wi, nil, 1, vr, n, ws.buf, len(ws.buf))

	values := make([]complex128, n)
	vectors := make([][]complex128, n)
	for i := 0; i < n; i++ {
		values[i] = complex(wr[i], wi[i])
	}

	// vr is row-major with eigenvector j in column j (or the real part
	// of a conjugate pair starting at column j).
	col := func(j int) []float64 {
		c := make([]float64, n)
		for i := 0; i < n; i++ {
			c[i] = vr[i*n+j]
		}
		return c
	}

	for j := 0; j < n; j++ {
		if wi[j] == 0 {
			// Real eigenvalue: column taken verbatim, zero imaginary
			// part.
			re := col(j)
			vec := make([]complex128, n)
			for i := range vec {
				vec[i] = complex(re[i], 0)
			}
			vectors[j] = vec
		} else if wi[j] > 0 {
			// Conjugate pair at columns j, j+1: complex columns are
			// vr[:,j] +/- i*vr[:,j+1].
			re := col(j)
			im := col(j + 1)
			vecPlus := make([]complex128, n)
			vecMinus := make([]complex128, n)
			for i := 0; i < n; i++ {
				vecPlus[i] = complex(re[i], im[i])
				vecMinus[i] = complex(re[i], -im[i])
			}
			vectors[j] = vecPlus
			vectors[j+1] = vecMinus
		}
		// wi[j] < 0 is the second half of a pair already handled above.
	}

	return &NonSymEig{Values: values, Vectors: vectors}, nil
}
