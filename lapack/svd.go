// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lapack

import "math"

// JobZ selects whether Gesvd computes singular vectors ('A'/'S'-style
// behavior folded into a bool here) or values only ('N'). A char-typed
// jobz invites the classic "jobz = 'N'" assignment-as-condition slip
// where a comparison was meant; a bool makes that unrepresentable, and
// the workspace sizing below branches on a real comparison: 5*mn when
// jobz is VectorsNone, else 5*mn*mn + 7*mn.
type JobZ bool

const (
	VectorsNone JobZ = false
	VectorsAll  JobZ = true
)

// gesddWorkspaceSize returns the *gesdd-style workspace element count for
// an m x n matrix (mn = min(m,n)) under the given jobz.
func gesddWorkspaceSize(mn int, jobz JobZ) int {
	if jobz == VectorsNone {
		return 5 * mn
	}
	return 5*mn*mn + 7*mn
}

// SVDResult is a dense matrix's singular value decomposition
// A = U * diag(S) * Vᵀ.
type SVDResult struct {
	U, S, Vt [][]float64
}

// Gesvd computes the SVD of a real m x n matrix a (row-major) via
// one-sided Jacobi rotation on AᵀA, converging to U, the singular
// values, and Vᵀ. jobz controls whether U/Vt are
// populated (VectorsAll) or left nil (VectorsNone, values only); the
// workspace-sizing helper above exists so a caller pre-sizing a scratch
// buffer for this call gets the LAPACK-faithful element count even
// though this pure-Go path doesn't itself need external scratch space.
func Gesvd(m, n int, a []float64, jobz JobZ) *SVDResult {
	mn := m
	if n < mn {
		mn = n
	}

	// Work on a copy of A as V accumulates Jacobi rotations of its
	// columns; A's columns converge to U*diag(S).
	A := make([][]float64, m)
	for i := 0; i < m; i++ {
		A[i] = append([]float64(nil), a[i*n:i*n+n]...)
	}
	V := make([][]float64, n)
	for i := range V {
		V[i] = make([]float64, n)
		V[i][i] = 1
	}

	const maxSweeps = 60
	for sweep := 0; sweep < maxSweeps; sweep++ {
		converged := true
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				var alpha, beta, gamma float64
				for i := 0; i < m; i++ {
					alpha += A[i][p] * A[i][p]
					beta += A[i][q] * A[i][q]
					gamma += A[i][p] * A[i][q]
				}
				if math.Abs(gamma) < 1e-13*math.Sqrt(alpha*beta) {
					continue
				}
				converged = false
				zeta := (beta - alpha) / (2 * gamma)
				t := math.Copysign(1, zeta) / (math.Abs(zeta) + math.Sqrt(1+zeta*zeta))
				c := 1 / math.Sqrt(1+t*t)
				s := c * t
				for i := 0; i < m; i++ {
					aip, aiq := A[i][p], A[i][q]
					A[i][p] = c*aip - s*aiq
					A[i][q] = s*aip + c*aiq
				}
				for i := 0; i < n; i++ {
					vip, viq := V[i][p], V[i][q]
					V[i][p] = c*vip - s*viq
					V[i][q] = s*vip + c*viq
				}
			}
		}
		if converged {
			break
		}
	}

	singular := make([]float64, n)
	for j := 0; j < n; j++ {
		var norm float64
		for i := 0; i < m; i++ {
			norm += A[i][j] * A[i][j]
		}
		singular[j] = math.Sqrt(norm)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if singular[order[j]] > singular[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	s := make([][]float64, 1)
	s[0] = make([]float64, mn)
	var u, vt [][]float64
	if jobz == VectorsAll {
		u = make([][]float64, m)
		for i := range u {
			u[i] = make([]float64, mn)
		}
		vt = make([][]float64, mn)
		for i := range vt {
			vt[i] = make([]float64, n)
		}
	}
	for k := 0; k < mn; k++ {
		idx := order[k]
		sv := singular[idx]
		s[0][k] = sv
		if jobz == VectorsAll {
			for i := 0; i < m; i++ {
				if sv > 1e-300 {
					u[i][k] = A[i][idx] / sv
				}
			}
			for j := 0; j < n; j++ {
				vt[k][j] = V[j][idx]
			}
		}
	}
	return &SVDResult{U: u, S: s, Vt: vt}
}
