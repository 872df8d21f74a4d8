// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

// Mat33 is a 3x3 matrix stored row-major as [row][col].
type Mat33 [3][3]Scalar

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat33 {
	return Mat33{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Zero33 returns the 3x3 zero matrix.
func Zero33() Mat33 {
	return Mat33{}
}

// Add returns m+n.
func (m Mat33) Add(n Mat33) Mat33 {
	var r Mat33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] + n[i][j]
		}
	}
	return r
}

// Sub returns m-n.
func (m Mat33) Sub(n Mat33) Mat33 {
	var r Mat33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] - n[i][j]
		}
	}
	return r
}

// Scale returns m scaled by s.
func (m Mat33) Scale(s Scalar) Mat33 {
	var r Mat33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] * s
		}
	}
	return r
}

// Mul returns the matrix product m*n.
func (m Mat33) Mul(n Mat33) Mat33 {
	var r Mat33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum Scalar
			for k := 0; k < 3; k++ {
				sum += m[i][k] * n[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// MulVec returns m*v.
func (m Mat33) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transpose of m.
func (m Mat33) Transpose() Mat33 {
	var r Mat33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

// OrthoTransform computes R*M*Rᵀ, used to express inertias and
// covariance-like quantities under a rotation R.
func OrthoTransform(m, r Mat33) Mat33 {
	return r.Mul(m).Mul(r.Transpose())
}

// Trace returns the sum of the diagonal entries.
func (m Mat33) Trace() Scalar {
	return m[0][0] + m[1][1] + m[2][2]
}

// RotationX returns a rotation matrix about the X axis by angle a (radians).
func RotationX(a Scalar) Mat33 {
	c, s := cos(a), sin(a)
	return Mat33{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns a rotation matrix about the Y axis by angle a (radians).
func RotationY(a Scalar) Mat33 {
	c, s := cos(a), sin(a)
	return Mat33{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns a rotation matrix about the Z axis by angle a (radians).
func RotationZ(a Scalar) Mat33 {
	c, s := cos(a), sin(a)
	return Mat33{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}
