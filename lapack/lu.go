// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lapack

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack/gonum"
)

// ErrSingular is returned by a factorization when the matrix is
// numerically singular (a zero pivot was encountered), the LAPACK
// "info > 0" case.
var ErrSingular = errors.New("lapack: matrix is singular to working precision")

// LU is a row-major n x n matrix's LU factorization with partial
// pivoting: A = P·L·U, stored in place the way LAPACK's *getrf does
// (L below the diagonal, U on and above it). Pivots is the 0-based row
// permutation: Pivots[i] is the original row of A now in row i.
type LU[T Numeric] struct {
	N      int
	A      []T // row-major n*n, factored in place
	Pivots []int
}

// Getrf factors a in place (row-major, n x n) via partial-pivoted
// Gaussian elimination, the generic parity path used for Float32,
// Complex64 and Complex128. For Float64, SolveGeneral dispatches to
// gonum's LAPACK binding instead of this function.
func Getrf[T Numeric](n int, a []T) (*LU[T], error) {
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	at := func(i, j int) int { return i*n + j }

	for k := 0; k < n; k++ {
		// Partial pivot: find the largest-magnitude entry in column k
		// at or below row k.
		maxRow, maxVal := k, absVal(a[at(k, k)])
		for i := k + 1; i < n; i++ {
			v := absVal(a[at(i, k)])
			if v > maxVal {
				maxRow, maxVal = i, v
			}
		}
		if maxVal == 0 {
			return nil, ErrSingular
		}
		if maxRow != k {
			for j := 0; j < n; j++ {
				a[at(k, j)], a[at(maxRow, j)] = a[at(maxRow, j)], a[at(k, j)]
			}
			piv[k], piv[maxRow] = piv[maxRow], piv[k]
		}

		pivot := a[at(k, k)]
		for i := k + 1; i < n; i++ {
			factor := a[at(i, k)] / pivot
			a[at(i, k)] = factor
			for j := k + 1; j < n; j++ {
				a[at(i, j)] -= factor * a[at(k, j)]
			}
		}
	}
	return &LU[T]{N: n, A: a, Pivots: piv}, nil
}

// Getrs solves A·x = b (A already factored by Getrf) for one or more
// right-hand-side columns stored row-major in b (n x nrhs), in place.
func (f *LU[T]) Getrs(b []T, nrhs int) {
	n := f.N
	bt := func(i, j int) int { return i*nrhs + j }
	at := func(i, j int) int { return i*n + j }

	// Apply the row permutation recorded during factorization: Getrf
	// accumulated its swaps into a single permutation, so row i of the
	// permuted b is row Pivots[i] of the original b.
	perm := make([]int, n)
	copy(perm, f.Pivots)
	rhsPerm := make([]T, n*nrhs)
	for i := 0; i < n; i++ {
		for j := 0; j < nrhs; j++ {
			rhsPerm[bt(i, j)] = b[bt(perm[i], j)]
		}
	}
	copy(b, rhsPerm)

	// Forward substitution with L (unit diagonal).
	for col := 0; col < nrhs; col++ {
		for i := 1; i < n; i++ {
			var sum T
			for k := 0; k < i; k++ {
				sum += f.A[at(i, k)] * b[bt(k, col)]
			}
			b[bt(i, col)] -= sum
		}
		// Back substitution with U.
		for i := n - 1; i >= 0; i-- {
			var sum T
			for k := i + 1; k < n; k++ {
				sum += f.A[at(i, k)] * b[bt(k, col)]
			}
			b[bt(i, col)] = (b[bt(i, col)] - sum) / f.A[at(i, i)]
		}
	}
}

// SolveGeneral solves A·x = b for a square system, the thin generic
// wrapper over the four per-kind entry points: double-real data goes
// through gonum's LAPACK binding, every other kind through the generic
// Getrf/Getrs pair at its own precision. kind must agree with T (a
// Float64 tag over non-float64 data falls through to the generic path
// so the element type is always honored). A and b are left unmodified;
// the solution is returned as a fresh slice.
func SolveGeneral[T Numeric](kind Kind, n int, a, b []T) ([]T, error) {
	if kind == Float64 {
		if af, ok := any(a).([]float64); ok {
			x, err := solveGeneralFloat64(n, af, any(b).([]float64))
			if err != nil {
				return nil, err
			}
			return any(x).([]T), nil
		}
	}
	return solveGeneralGeneric(n, a, b)
}

// solveGeneralFloat64 dispatches to gonum's pure-Go LAPACK binding
// (gonum.org/v1/gonum/lapack/gonum), the FORTRAN-equivalent path for
// the one scalar kind with a complete binding.
func solveGeneralFloat64(n int, a, b []float64) ([]float64, error) {
	impl := gonum.Implementation{}
	aCopy := append([]float64(nil), a...)
	ipiv := make([]int, n)
	ok := impl.Dgetrf(n, n, aCopy, n, ipiv)
	if !ok {
		return nil, ErrSingular
	}
	x := append([]float64(nil), b...)
	impl.Dgetrs(blas.NoTrans, n, 1, aCopy, n, ipiv, x, 1)
	return x, nil
}

// solveGeneralGeneric is the hand-rolled parity path used for the
// non-float64 scalar kinds (see package doc).
func solveGeneralGeneric[T Numeric](n int, a, b []T) ([]T, error) {
	aCopy := append([]T(nil), a...)
	f, err := Getrf(n, aCopy)
	if err != nil {
		return nil, err
	}
	x := append([]T(nil), b...)
	f.Getrs(x, 1)
	return x, nil
}

// Tridiagonal solves a tridiagonal system given its sub-, main- and
// super-diagonals (each length n, n, n-1 respectively padded with a
// leading/trailing unused zero for sub/super) via the Thomas
// algorithm, the *gtsv specialization of banded LU.
func Tridiagonal[T Numeric](sub, diag, super []T, rhs []T) ([]T, error) {
	n := len(diag)
	cp := make([]T, n)
	dp := make([]T, n)
	if absVal(diag[0]) == 0 {
		return nil, ErrSingular
	}
	cp[0] = super[0] / diag[0]
	dp[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		denom := diag[i] - sub[i]*cp[i-1]
		if absVal(denom) == 0 {
			return nil, ErrSingular
		}
		if i < n-1 {
			cp[i] = super[i] / denom
		}
		dp[i] = (rhs[i] - sub[i]*dp[i-1]) / denom
	}
	x := make([]T, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x, nil
}
