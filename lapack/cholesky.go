// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lapack

import "math"

// Cholesky is the lower-triangular factor L of A = L·Lᴴ for a
// symmetric/Hermitian positive-definite A, stored row-major n x n with
// the strict upper triangle left zero.
type Cholesky[T Numeric] struct {
	N int
	L []T
}

// Potrf factors a (row-major, n x n, symmetric/Hermitian positive
// definite) in place into its lower Cholesky factor. Returns ErrSingular
// if a diagonal pivot is not positive, LAPACK's info>0 convention for
// *potrf.
func Potrf[T Numeric](n int, a []T) (*Cholesky[T], error) {
	l := make([]T, n*n)
	at := func(i, j int) int { return i*n + j }

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			var sum T
			for k := 0; k < j; k++ {
				sum += l[at(i, k)] * conjVal(l[at(j, k)])
			}
			if i == j {
				diag := a[at(i, i)] - sum
				d := realPart(diag)
				if d <= 0 {
					return nil, ErrSingular
				}
				l[at(i, i)] = sqrtReal[T](d)
			} else {
				l[at(i, j)] = (a[at(i, j)] - sum) / l[at(j, j)]
			}
		}
	}
	return &Cholesky[T]{N: n, L: l}, nil
}

// Potrs solves A·x = b given A's Cholesky factor, via forward then
// back substitution against L and Lᴴ.
func (c *Cholesky[T]) Potrs(b []T) []T {
	n := c.N
	at := func(i, j int) int { return i*n + j }
	y := make([]T, n)
	for i := 0; i < n; i++ {
		var sum T
		for k := 0; k < i; k++ {
			sum += c.L[at(i, k)] * y[k]
		}
		y[i] = (b[i] - sum) / c.L[at(i, i)]
	}
	x := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		var sum T
		for k := i + 1; k < n; k++ {
			sum += conjVal(c.L[at(k, i)]) * x[k]
		}
		x[i] = (y[i] - sum) / c.L[at(i, i)]
	}
	return x
}

func realPart[T Numeric](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case complex64:
		return float64(real(v))
	case complex128:
		return real(v)
	default:
		return 0
	}
}

func sqrtReal[T Numeric](d float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(any(float32(sqrt64(d))).(T))
	case float64:
		return T(any(sqrt64(d)).(T))
	case complex64:
		return T(any(complex64(complex(sqrt64(d), 0))).(T))
	case complex128:
		return T(any(complex(sqrt64(d), 0)).(T))
	default:
		return zero
	}
}

func sqrt64(d float64) float64 {
	return math.Sqrt(d)
}
