// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lapack is a thin LAPACK/BLAS dispatch layer: type-dispatched
// wrappers presenting a uniform interface over single/double real and
// single/double complex linear-algebra primitives. The articulated-body
// core's small per-joint inverses do not need it; the rest of a
// dynamics stack (mass-matrix conditioning, sensitivity studies) does.
//
// Only two routines call gonum's pure-Go LAPACK
// (gonum.org/v1/gonum/lapack/gonum): SolveGeneral for Float64 and
// Geev. Getrf/Getrs, Potrf, Sytrf, Gbsv and the tridiagonal solver are
// generic code in this package used for every Numeric kind. Syev,
// Gesvd, Geqp3, TriSolve and IncrementalConditionEstimate are
// in-package float64-only code: there is no single-real or complex
// variant of them. The in-package algorithms are partial-pivoted
// Gaussian elimination, Householder QR with column pivoting, cyclic
// Jacobi eigendecomposition and one-sided Jacobi SVD; the Jacobi
// methods are not the algorithms LAPACK's *syev and *gesdd use.
package lapack

import "math"

// Kind selects one of the four scalar kinds covered by this package's
// generic kernels.
type Kind int

const (
	Float32 Kind = iota
	Float64
	Complex64
	Complex128
)

func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// Numeric is the scalar constraint every generic kernel in this
// package is instantiated over: the four kinds named above, expressed
// as Go's built-in numeric types since complex64/complex128 carry
// native arithmetic (no separate real/imaginary bookkeeping needed).
type Numeric interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// absVal returns |x| as a float64 for any Numeric kind, the common
// magnitude comparison every pivoting and convergence test needs.
func absVal[T Numeric](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return math.Abs(float64(v))
	case float64:
		return math.Abs(v)
	case complex64:
		return complex128Abs(complex128(v))
	case complex128:
		return complex128Abs(v)
	default:
		return 0
	}
}

func complex128Abs(z complex128) float64 {
	re, im := real(z), imag(z)
	return math.Sqrt(re*re + im*im)
}

// conjVal returns the complex conjugate of x for complex kinds, or x
// unchanged for real kinds (real Numeric values are their own
// conjugate), used by Cholesky/Hermitian-transpose style operations.
func conjVal[T Numeric](x T) T {
	switch v := any(x).(type) {
	case complex64:
		r := T(any(complex(real(v), -imag(v))).(T))
		return r
	case complex128:
		r := T(any(complex(real(v), -imag(v))).(T))
		return r
	default:
		return x
	}
}

// Eps returns the machine epsilon for kind: the spacing 2^-(p-1)
// between 1 and the next representable value, for a p-bit significand.
func Eps(kind Kind) float64 {
	switch kind {
	case Float32, Complex64:
		return float64frexpEps(24) // float32 has a 24-bit significand (1 implicit + 23 stored)
	default:
		return float64frexpEps(53) // float64/complex128: 53-bit significand
	}
}

func float64frexpEps(bits int) float64 {
	return math.Ldexp(1, -(bits - 1))
}

// Copy copies n elements of x (stride incX) into y (stride incY), the
// BLAS-style _copy primitive.
func Copy[T Numeric](n int, x []T, incX int, y []T, incY int) {
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		y[iy] = x[ix]
		ix += incX
		iy += incY
	}
}

// Scale multiplies n elements of x (stride incX) by alpha in place,
// the BLAS-style _scal primitive.
func Scale[T Numeric](n int, alpha T, x []T, incX int) {
	ix := 0
	for i := 0; i < n; i++ {
		x[ix] *= alpha
		ix += incX
	}
}

// Norm2 returns the Euclidean (2-)norm of n elements of x (stride
// incX), the BLAS-style _nrm2 primitive.
func Norm2[T Numeric](n int, x []T, incX int) float64 {
	var sum float64
	ix := 0
	for i := 0; i < n; i++ {
		a := absVal(x[ix])
		sum += a * a
		ix += incX
	}
	return math.Sqrt(sum)
}
