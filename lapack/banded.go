// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lapack

// Gbsv solves A·x = b for a banded n x n matrix with kl sub-diagonals
// and ku super-diagonals, the general-band companion to Tridiagonal.
// a is passed dense row-major with everything outside the band zero;
// the factorization is banded LU with partial pivoting, which (as in
// *gbtrf) widens the upper bandwidth to at most kl+ku through
// pivot-induced fill.
func Gbsv[T Numeric](n, kl, ku int, a []T, b []T) ([]T, error) {
	at := func(i, j int) int { return i*n + j }
	w := append([]T(nil), a...)
	x := append([]T(nil), b...)

	// Fill spreads at most kl columns past the original upper band.
	kw := kl + ku

	for k := 0; k < n; k++ {
		// Partial pivot within the kl rows the band permits.
		last := k + kl
		if last > n-1 {
			last = n - 1
		}
		maxRow, maxVal := k, absVal(w[at(k, k)])
		for i := k + 1; i <= last; i++ {
			if v := absVal(w[at(i, k)]); v > maxVal {
				maxRow, maxVal = i, v
			}
		}
		if maxVal == 0 {
			return nil, ErrSingular
		}
		if maxRow != k {
			hi := k + kw
			if hi > n-1 {
				hi = n - 1
			}
			for j := k; j <= hi; j++ {
				w[at(k, j)], w[at(maxRow, j)] = w[at(maxRow, j)], w[at(k, j)]
			}
			x[k], x[maxRow] = x[maxRow], x[k]
		}

		pivot := w[at(k, k)]
		hi := k + kw
		if hi > n-1 {
			hi = n - 1
		}
		for i := k + 1; i <= last; i++ {
			factor := w[at(i, k)] / pivot
			for j := k + 1; j <= hi; j++ {
				w[at(i, j)] -= factor * w[at(k, j)]
			}
			x[i] -= factor * x[k]
		}
	}

	// Back substitution against the band-limited U.
	for i := n - 1; i >= 0; i-- {
		hi := i + kw
		if hi > n-1 {
			hi = n - 1
		}
		var sum T
		for j := i + 1; j <= hi; j++ {
			sum += w[at(i, j)] * x[j]
		}
		x[i] = (x[i] - sum) / w[at(i, i)]
	}
	return x, nil
}
