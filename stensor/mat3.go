// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stensor

import "math"

// Vec3 is a vector of the three dimensional space
type Vec3 [3]float64

// Mat3 is a 3x3 matrix. Eigenvectors are stored as columns
type Mat3 [3][3]float64

// Dot returns u·v
func (u Vec3) Dot(v Vec3) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// Norm returns |u|
func (u Vec3) Norm() float64 {
	return math.Sqrt(u.Dot(u))
}

// Scale returns α u
func (u Vec3) Scale(α float64) Vec3 {
	return Vec3{α * u[0], α * u[1], α * u[2]}
}

// Cross returns u × v
func (u Vec3) Cross(v Vec3) Vec3 {
	return Vec3{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// Normalised returns u/|u|; the null vector is returned unchanged
func (u Vec3) Normalised() Vec3 {
	l := u.Norm()
	if l == 0 {
		return u
	}
	return u.Scale(1.0 / l)
}

// Identity3 returns the identity matrix
func Identity3() (m Mat3) {
	m[0][0], m[1][1], m[2][2] = 1, 1, 1
	return
}

// Col returns the j-th column
func (m Mat3) Col(j int) Vec3 {
	return Vec3{m[0][j], m[1][j], m[2][j]}
}

// SetCol sets the j-th column
func (m *Mat3) SetCol(j int, v Vec3) {
	m[0][j], m[1][j], m[2][j] = v[0], v[1], v[2]
}

// Mul returns m·b
func (m Mat3) Mul(b Mat3) (r Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*b[0][j] + m[i][1]*b[1][j] + m[i][2]*b[2][j]
		}
	}
	return
}

// Transpose returns mᵀ
func (m Mat3) Transpose() (r Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return
}

// MulVec returns m·v
func (m Mat3) MulVec(v Vec3) (r Vec3) {
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return
}

// Det returns the determinant
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// MaxAbs returns the largest absolute value of the entries
func (m Mat3) MaxAbs() (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res = math.Max(res, math.Abs(m[i][j]))
		}
	}
	return
}
