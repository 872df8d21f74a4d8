// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lapack

import "math"

// SymEig is a real symmetric matrix's full eigendecomposition: values
// ascending and the matching orthonormal eigenvectors as rows of
// Vectors.
type SymEig struct {
	Values  []float64
	Vectors [][]float64 // Vectors[i] is the i-th eigenvector
}

// Syev computes the full eigendecomposition of a real symmetric n x n
// matrix a (row-major) via the cyclic Jacobi rotation method, the
// classical hand-rollable alternative to *syev's tridiagonalize-then-
// QL/QR approach; both converge to the same decomposition for a
// genuinely symmetric input.
func Syev(n int, a []float64) *SymEig {
	A := make([][]float64, n)
	V := make([][]float64, n)
	for i := 0; i < n; i++ {
		A[i] = append([]float64(nil), a[i*n:i*n+n]...)
		V[i] = make([]float64, n)
		V[i][i] = 1
	}

	const maxSweeps = 100
	for sweep := 0; sweep < maxSweeps; sweep++ {
		off := offDiagonalNorm(A)
		if off < 1e-14 {
			break
		}
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				if math.Abs(A[p][q]) < 1e-300 {
					continue
				}
				theta := (A[q][q] - A[p][p]) / (2 * A[p][q])
				t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				c := 1 / math.Sqrt(t*t+1)
				s := t * c
				applyJacobiRotation(A, V, p, q, c, s)
			}
		}
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = A[i][i]
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if values[order[j]] < values[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}
	sortedValues := make([]float64, n)
	sortedVectors := make([][]float64, n)
	for i, idx := range order {
		sortedValues[i] = values[idx]
		vec := make([]float64, n)
		for r := 0; r < n; r++ {
			vec[r] = V[r][idx]
		}
		sortedVectors[i] = vec
	}
	return &SymEig{Values: sortedValues, Vectors: sortedVectors}
}

// SyevSelective returns only the eigenvalues/vectors whose rank (in
// ascending order) falls within [lo, hi], the *syevx-style selective
// variant of the full decomposition.
func SyevSelective(n int, a []float64, lo, hi int) *SymEig {
	full := Syev(n, a)
	return &SymEig{
		Values:  append([]float64(nil), full.Values[lo:hi+1]...),
		Vectors: append([][]float64(nil), full.Vectors[lo:hi+1]...),
	}
}

func offDiagonalNorm(a [][]float64) float64 {
	var sum float64
	n := len(a)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += a[i][j] * a[i][j]
		}
	}
	return math.Sqrt(2 * sum)
}

func applyJacobiRotation(a, v [][]float64, p, q int, c, s float64) {
	n := len(a)
	for i := 0; i < n; i++ {
		aip, aiq := a[i][p], a[i][q]
		a[i][p] = c*aip - s*aiq
		a[i][q] = s*aip + c*aiq
	}
	for j := 0; j < n; j++ {
		apj, aqj := a[p][j], a[q][j]
		a[p][j] = c*apj - s*aqj
		a[q][j] = s*apj + c*aqj
	}
	for i := 0; i < n; i++ {
		vip, viq := v[i][p], v[i][q]
		v[i][p] = c*vip - s*viq
		v[i][q] = s*vip + c*viq
	}
}
