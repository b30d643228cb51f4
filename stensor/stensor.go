// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stensor implements symmetric second order tensors and linear maps between them
//  Components are stored in a normalised basis:
//    a = {a_xx, a_yy, a_zz, √2 a_xy, √2 a_xz, √2 a_yz}
//  such that the Euclidean dot product of the components equals a:b
package stensor

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	SQ2  = math.Sqrt2       // √2
	ISQ2 = 1.0 / math.Sqrt2 // 1/√2
)

// Size returns the number of components of a symmetric tensor in the given space dimension
func Size(n int) int {
	switch n {
	case 1:
		return 3
	case 2:
		return 4
	case 3:
		return 6
	}
	chk.Panic("space dimension %d is invalid; options are 1, 2 or 3", n)
	return 0
}

// Stensor holds a symmetric second order tensor
type Stensor struct {
	N int        // space dimension
	C [6]float64 // components; only the first Size(N) ones are meaningful
}

// New returns a new tensor with the given components. Missing components are zero
func New(n int, c ...float64) (o Stensor) {
	o.N = n
	m := Size(n)
	if len(c) > m {
		chk.Panic("stensor: %d components given but dimension %d allows at most %d", len(c), n, m)
	}
	copy(o.C[:], c)
	return
}

// Zero returns the null tensor
func Zero(n int) Stensor {
	return Stensor{N: n}
}

// Id returns the identity tensor
func Id(n int) (o Stensor) {
	o.N = n
	o.C[0], o.C[1], o.C[2] = 1, 1, 1
	return
}

// Size returns the number of meaningful components
func (o Stensor) Size() int {
	return Size(o.N)
}

// Slice returns a copy of the meaningful components (flat layout)
func (o Stensor) Slice() []float64 {
	res := make([]float64, Size(o.N))
	copy(res, o.C[:])
	return res
}

// Add returns o + b
func (o Stensor) Add(b Stensor) Stensor {
	for i := 0; i < 6; i++ {
		o.C[i] += b.C[i]
	}
	return o
}

// Sub returns o - b
func (o Stensor) Sub(b Stensor) Stensor {
	for i := 0; i < 6; i++ {
		o.C[i] -= b.C[i]
	}
	return o
}

// Scale returns α * o
func (o Stensor) Scale(α float64) Stensor {
	for i := 0; i < 6; i++ {
		o.C[i] *= α
	}
	return o
}

// AddScaled returns o + α * b
func (o Stensor) AddScaled(α float64, b Stensor) Stensor {
	for i := 0; i < 6; i++ {
		o.C[i] += α * b.C[i]
	}
	return o
}

// Dot returns o : b
func (o Stensor) Dot(b Stensor) (res float64) {
	for i := 0; i < 6; i++ {
		res += o.C[i] * b.C[i]
	}
	return
}

// Norm returns sqrt(o : o)
func (o Stensor) Norm() float64 {
	return math.Sqrt(o.Dot(o))
}

// MaxAbs returns the largest absolute value of the components
func (o Stensor) MaxAbs() (res float64) {
	for i := 0; i < 6; i++ {
		res = math.Max(res, math.Abs(o.C[i]))
	}
	return
}

// Trace returns tr(o)
func (o Stensor) Trace() float64 {
	return o.C[0] + o.C[1] + o.C[2]
}

// Dev returns the deviatoric part: o - tr(o)/3 I
func (o Stensor) Dev() Stensor {
	m := o.Trace() / 3.0
	o.C[0] -= m
	o.C[1] -= m
	o.C[2] -= m
	return o
}

// Det returns the determinant
func (o Stensor) Det() float64 {
	c := o.C
	return c[0]*c[1]*c[2] + c[3]*c[4]*c[5]*ISQ2 - (c[2]*c[3]*c[3]+c[1]*c[4]*c[4]+c[0]*c[5]*c[5])/2.0
}

// Square returns o·o
func (o Stensor) Square() Stensor {
	m := o.ToMat3()
	return FromMat3(o.N, m.Mul(m))
}

// ToMat3 converts o to a full 3x3 matrix
func (o Stensor) ToMat3() (m Mat3) {
	m[0][0] = o.C[0]
	m[1][1] = o.C[1]
	m[2][2] = o.C[2]
	m[0][1] = o.C[3] * ISQ2
	m[0][2] = o.C[4] * ISQ2
	m[1][2] = o.C[5] * ISQ2
	m[1][0] = m[0][1]
	m[2][0] = m[0][2]
	m[2][1] = m[1][2]
	return
}

// FromMat3 returns the symmetric part of m with components truncated to dimension n
func FromMat3(n int, m Mat3) (o Stensor) {
	o.N = n
	o.C[0] = m[0][0]
	o.C[1] = m[1][1]
	o.C[2] = m[2][2]
	switch n {
	case 2:
		o.C[3] = (m[0][1] + m[1][0]) * ISQ2
	case 3:
		o.C[3] = (m[0][1] + m[1][0]) * ISQ2
		o.C[4] = (m[0][2] + m[2][0]) * ISQ2
		o.C[5] = (m[1][2] + m[2][1]) * ISQ2
	}
	return
}

// FromVectors returns sym(u⊗v) = (u⊗v + v⊗u)/2 truncated to dimension n
func FromVectors(n int, u, v Vec3) (o Stensor) {
	o.N = n
	o.C[0] = u[0] * v[0]
	o.C[1] = u[1] * v[1]
	o.C[2] = u[2] * v[2]
	switch n {
	case 2:
		o.C[3] = (u[0]*v[1] + u[1]*v[0]) * ISQ2
	case 3:
		o.C[3] = (u[0]*v[1] + u[1]*v[0]) * ISQ2
		o.C[4] = (u[0]*v[2] + u[2]*v[0]) * ISQ2
		o.C[5] = (u[1]*v[2] + u[2]*v[1]) * ISQ2
	}
	return
}

// Basis returns the k-th unit tensor of the normalised basis
func Basis(n, k int) (o Stensor) {
	o.N = n
	o.C[k] = 1
	return
}

// Truncate returns the tensor restricted to dimension n
func (o Stensor) Truncate(n int) (r Stensor) {
	r.N = n
	copy(r.C[:Size(n)], o.C[:])
	return
}
