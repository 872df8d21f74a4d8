// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lapack

import "math"

// QRResult is a column-pivoted QR factorization A*P = Q*R: R is stored explicitly (upper
// triangular, m x n), the Householder reflectors that form Q are kept
// as Reflectors (one per column, *geqp3's compact representation),
// and Jpvt is the column permutation (Jpvt[k] is the original-column
// index now at position k).
type QRResult struct {
	M, N       int
	R          []float64 // row-major m x n, upper triangular part valid
	Reflectors [][]float64
	Taus       []float64
	Jpvt       []int
}

// Geqp3 factors a (row-major, m x n) via Householder QR with column
// pivoting: at each step the remaining column of largest norm is
// brought into position before reflecting it to zero.
func Geqp3(m, n int, a []float64) *QRResult {
	A := make([][]float64, m)
	for i := 0; i < m; i++ {
		A[i] = append([]float64(nil), a[i*n:i*n+n]...)
	}
	jpvt := make([]int, n)
	for j := range jpvt {
		jpvt[j] = j
	}
	reflectors := make([][]float64, 0, n)
	taus := make([]float64, 0, n)

	colNorm := func(col int, from int) float64 {
		var s float64
		for i := from; i < m; i++ {
			s += A[i][col] * A[i][col]
		}
		return math.Sqrt(s)
	}

	limit := n
	if m < n {
		limit = m
	}
	for k := 0; k < limit; k++ {
		// Pivot: bring the remaining column of largest trailing norm
		// into position k.
		best, bestNorm := k, colNorm(k, k)
		for j := k + 1; j < n; j++ {
			nrm := colNorm(j, k)
			if nrm > bestNorm {
				best, bestNorm = j, nrm
			}
		}
		if best != k {
			for i := 0; i < m; i++ {
				A[i][k], A[i][best] = A[i][best], A[i][k]
			}
			jpvt[k], jpvt[best] = jpvt[best], jpvt[k]
		}

		// Householder reflector zeroing A[k+1:,k].
		alpha := A[k][k]
		normX := colNorm(k, k)
		if normX == 0 {
			reflectors = append(reflectors, make([]float64, m-k))
			taus = append(taus, 0)
			continue
		}
		sign := 1.0
		if alpha > 0 {
			sign = -1
		}
		v := make([]float64, m-k)
		v[0] = alpha - sign*normX
		for i := k + 1; i < m; i++ {
			v[i-k] = A[i][k]
		}
		vNorm := 0.0
		for _, e := range v {
			vNorm += e * e
		}
		vNorm = math.Sqrt(vNorm)
		if vNorm > 0 {
			for i := range v {
				v[i] /= vNorm
			}
		}
		tau := 2.0

		for j := k; j < n; j++ {
			var dot float64
			for i := k; i < m; i++ {
				dot += v[i-k] * A[i][j]
			}
			for i := k; i < m; i++ {
				A[i][j] -= tau * v[i-k] * dot
			}
		}
		reflectors = append(reflectors, v)
		taus = append(taus, tau)
	}

	r := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if i <= j {
				r[i*n+j] = A[i][j]
			}
		}
	}
	return &QRResult{M: m, N: n, R: r, Reflectors: reflectors, Taus: taus, Jpvt: jpvt}
}

// Orgqr forms Q explicitly (m x m) by applying the stored Householder
// reflectors to the identity, the *orgqr / *ormqr reflector-product
// primitive.
func (qr *QRResult) Orgqr() [][]float64 {
	m := qr.M
	Q := make([][]float64, m)
	for i := range Q {
		Q[i] = make([]float64, m)
		Q[i][i] = 1
	}
	// Apply reflectors in reverse order, as *orgqr does, so the result
	// is exactly the product of Householder matrices used in Geqp3.
	for k := len(qr.Reflectors) - 1; k >= 0; k-- {
		v := qr.Reflectors[k]
		tau := qr.Taus[k]
		if tau == 0 {
			continue
		}
		for col := 0; col < m; col++ {
			var dot float64
			for i := k; i < m; i++ {
				dot += v[i-k] * Q[i][col]
			}
			for i := k; i < m; i++ {
				Q[i][col] -= tau * v[i-k] * dot
			}
		}
	}
	return Q
}

// TriSolve solves a triangular system T*x = b (T row-major n x n,
// upper if upper is true else lower), the *trtrs primitive.
func TriSolve(n int, t []float64, upper bool, b []float64) []float64 {
	x := append([]float64(nil), b...)
	at := func(i, j int) float64 { return t[i*n+j] }
	if upper {
		for i := n - 1; i >= 0; i-- {
			var sum float64
			for j := i + 1; j < n; j++ {
				sum += at(i, j) * x[j]
			}
			x[i] = (x[i] - sum) / at(i, i)
		}
	} else {
		for i := 0; i < n; i++ {
			var sum float64
			for j := 0; j < i; j++ {
				sum += at(i, j) * x[j]
			}
			x[i] = (x[i] - sum) / at(i, i)
		}
	}
	return x
}

// IncrementalConditionEstimate extends an existing triangular factor's
// condition-number estimate by one row/column, in the style of the
// *laic1 auxiliary estimators. Given the current
// estimated smallest singular value sMin of an (n-1) x (n-1) upper
// triangular R, the new row w (length n-1) and new diagonal gamma, it
// returns the updated estimate for the n x n triangular matrix
// [[R, w]; [0, gamma]] without refactoring from scratch.
func IncrementalConditionEstimate(sMin float64, w []float64, gamma float64) float64 {
	var wNorm float64
	for _, e := range w {
		wNorm += e * e
	}
	wNorm = math.Sqrt(wNorm)

	alpha := math.Abs(gamma)
	beta := wNorm

	// Two-by-two worst-case mixing of the existing estimate with the
	// new row/diagonal: the smallest singular value of
	// [[sMin, 0]; [‖w‖, |gamma|]], from its determinant sMin·|gamma| and
	// its squared Frobenius norm t = σmin² + σmax².
	t := sMin*sMin + beta*beta + alpha*alpha
	d := sMin * alpha
	disc := math.Sqrt(math.Max(t*t-4*d*d, 0))
	if t+disc == 0 {
		return 0
	}
	return d / math.Sqrt((t+disc)/2)
}
