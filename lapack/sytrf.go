// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lapack

import "math"

// bunchKaufmanAlpha is the pivot-selection threshold (1+sqrt(17))/8
// used by *sytrf to bound element growth while choosing between 1x1
// and 2x2 diagonal pivot blocks.
var bunchKaufmanAlpha = (1 + math.Sqrt(17)) / 8

// LDL is a symmetric (complex-symmetric for the complex kinds, as in
// *sytrf, not Hermitian) indefinite factorization P·A·Pᵀ = L·D·Lᵀ with
// Bunch-Kaufman diagonal pivoting: L unit lower triangular, D block
// diagonal with 1x1 and 2x2 blocks.
type LDL[T Numeric] struct {
	N int
	A []T // row-major n*n; L below the block diagonal, D on it
	// Perm is the accumulated symmetric permutation: row/column i of
	// the factored matrix corresponds to row/column Perm[i] of the
	// original. Block2 marks the first column of each 2x2 D block.
	Perm   []int
	Block2 []bool
}

// Sytrf factors a (row-major, n x n, symmetric; only the lower
// triangle is read) with Bunch-Kaufman partial pivoting. Returns
// ErrSingular when a diagonal block is exactly singular, LAPACK's
// info>0 case for *sytrf.
func Sytrf[T Numeric](n int, a []T) (*LDL[T], error) {
	w := make([]T, n*n)
	at := func(i, j int) int { return i*n + j }
	// Work on a symmetrized copy so row and column swaps stay cheap.
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			w[at(i, j)] = a[at(i, j)]
			w[at(j, i)] = a[at(i, j)]
		}
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	block2 := make([]bool, n)

	swap := func(p, q int) {
		if p == q {
			return
		}
		for j := 0; j < n; j++ {
			w[at(p, j)], w[at(q, j)] = w[at(q, j)], w[at(p, j)]
		}
		for i := 0; i < n; i++ {
			w[at(i, p)], w[at(i, q)] = w[at(i, q)], w[at(i, p)]
		}
		perm[p], perm[q] = perm[q], perm[p]
	}

	k := 0
	for k < n {
		absakk := absVal(w[at(k, k)])

		// Largest off-diagonal magnitude in column k at or below k+1.
		imax, colmax := k, 0.0
		for i := k + 1; i < n; i++ {
			if v := absVal(w[at(i, k)]); v > colmax {
				imax, colmax = i, v
			}
		}
		if absakk == 0 && colmax == 0 {
			return nil, ErrSingular
		}

		kstep := 1
		if absakk < bunchKaufmanAlpha*colmax {
			// Largest magnitude in row imax outside the diagonal,
			// restricted to columns k..n-1 (the active submatrix).
			rowmax := 0.0
			for j := k; j < n; j++ {
				if j == imax {
					continue
				}
				if v := absVal(w[at(imax, j)]); v > rowmax {
					rowmax = v
				}
			}
			switch {
			case absakk*rowmax >= bunchKaufmanAlpha*colmax*colmax:
				// 1x1 pivot at k without interchange.
			case absVal(w[at(imax, imax)]) >= bunchKaufmanAlpha*rowmax:
				swap(k, imax)
			default:
				kstep = 2
				swap(k+1, imax)
			}
		}

		if kstep == 1 {
			d := w[at(k, k)]
			if absVal(d) == 0 {
				return nil, ErrSingular
			}
			// Snapshot the pivot column before it is overwritten with
			// multipliers: the rank-1 update needs the original values.
			colK := make([]T, n)
			for i := k + 1; i < n; i++ {
				colK[i] = w[at(i, k)]
			}
			for i := k + 1; i < n; i++ {
				l := colK[i] / d
				for j := k + 1; j <= i; j++ {
					w[at(i, j)] -= l * colK[j]
					w[at(j, i)] = w[at(i, j)]
				}
				w[at(i, k)] = l
				w[at(k, i)] = l
			}
			k++
		} else {
			da, db, dc := w[at(k, k)], w[at(k+1, k)], w[at(k+1, k+1)]
			det := da*dc - db*db
			if absVal(det) == 0 {
				return nil, ErrSingular
			}
			colK := make([]T, n)
			colK1 := make([]T, n)
			for i := k + 2; i < n; i++ {
				colK[i] = w[at(i, k)]
				colK1[i] = w[at(i, k+1)]
			}
			for i := k + 2; i < n; i++ {
				l1 := (dc*colK[i] - db*colK1[i]) / det
				l2 := (da*colK1[i] - db*colK[i]) / det
				for j := k + 2; j <= i; j++ {
					w[at(i, j)] -= l1*colK[j] + l2*colK1[j]
					w[at(j, i)] = w[at(i, j)]
				}
				w[at(i, k)], w[at(k, i)] = l1, l1
				w[at(i, k+1)], w[at(k+1, i)] = l2, l2
			}
			block2[k] = true
			k += 2
		}
	}
	return &LDL[T]{N: n, A: w, Perm: perm, Block2: block2}, nil
}

// Sytrs solves A·x = b given A's Bunch-Kaufman factorization, via the
// permuted forward substitution, block-diagonal solve and back
// substitution *sytrs performs.
func (f *LDL[T]) Sytrs(b []T) []T {
	n := f.N
	at := func(i, j int) int { return i*n + j }

	y := make([]T, n)
	for i := 0; i < n; i++ {
		y[i] = b[f.Perm[i]]
	}

	// Forward: L·u = P·b. L is unit lower; inside a 2x2 block the
	// stored sub-diagonal entry belongs to D, not L, so it is skipped.
	for i := 0; i < n; i++ {
		var sum T
		for j := 0; j < i; j++ {
			if f.Block2[j] && i == j+1 {
				continue
			}
			sum += f.A[at(i, j)] * y[j]
		}
		y[i] -= sum
	}

	// Block diagonal: D·v = u.
	for k := 0; k < n; {
		if f.Block2[k] {
			da, db, dc := f.A[at(k, k)], f.A[at(k+1, k)], f.A[at(k+1, k+1)]
			det := da*dc - db*db
			u0, u1 := y[k], y[k+1]
			y[k] = (dc*u0 - db*u1) / det
			y[k+1] = (da*u1 - db*u0) / det
			k += 2
		} else {
			y[k] /= f.A[at(k, k)]
			k++
		}
	}

	// Back: Lᵀ·w = v, with the same D-entry skip as the forward pass.
	for i := n - 1; i >= 0; i-- {
		var sum T
		for j := i + 1; j < n; j++ {
			if f.Block2[i] && j == i+1 {
				continue
			}
			sum += f.A[at(j, i)] * y[j]
		}
		y[i] -= sum
	}

	x := make([]T, n)
	for i := 0; i < n; i++ {
		x[f.Perm[i]] = y[i]
	}
	return x
}
