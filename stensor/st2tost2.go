// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stensor

import "math"

// St2toSt2 holds a linear map between symmetric tensors (fourth order tensor) as a row-major
// dense matrix of size Size(N) x Size(N)
type St2toSt2 struct {
	N int           // space dimension
	C [6][6]float64 // components; only the leading Size(N) x Size(N) block is meaningful
}

// Zero4 returns the null operator
func Zero4(n int) St2toSt2 {
	return St2toSt2{N: n}
}

// Id4 returns the identity map
func Id4(n int) (o St2toSt2) {
	o.N = n
	for i := 0; i < Size(n); i++ {
		o.C[i][i] = 1
	}
	return
}

// IxI returns I⊗I
func IxI(n int) (o St2toSt2) {
	o.N = n
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.C[i][j] = 1
		}
	}
	return
}

// K returns the deviatoric projector: Id4 - I⊗I/3
func K(n int) St2toSt2 {
	return Id4(n).AddScaled(-1.0/3.0, IxI(n))
}

// Dyad returns a⊗b; i.e. (a⊗b):h = a (b:h)
func Dyad(a, b Stensor) (o St2toSt2) {
	o.N = a.N
	m := Size(a.N)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			o.C[i][j] = a.C[i] * b.C[j]
		}
	}
	return
}

// FromLinearMap returns the operator of a linear map acting on full matrices
func FromLinearMap(n int, f func(e Mat3) Mat3) (o St2toSt2) {
	o.N = n
	for k := 0; k < Size(n); k++ {
		col := FromMat3(n, f(Basis(n, k).ToMat3()))
		for i := 0; i < 6; i++ {
			o.C[i][k] = col.C[i]
		}
	}
	return
}

// Dsquare returns the derivative of s·s with respect to s
func Dsquare(s Stensor) St2toSt2 {
	m := s.ToMat3()
	return FromLinearMap(s.N, func(e Mat3) Mat3 {
		a, b := m.Mul(e), e.Mul(m)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				a[i][j] += b[i][j]
			}
		}
		return a
	})
}

// Size returns the number of rows (and columns)
func (o St2toSt2) Size() int {
	return Size(o.N)
}

// Rows returns a row-major copy of the meaningful components
func (o St2toSt2) Rows() [][]float64 {
	m := Size(o.N)
	res := make([][]float64, m)
	for i := 0; i < m; i++ {
		res[i] = make([]float64, m)
		copy(res[i], o.C[i][:m])
	}
	return res
}

// MatVec returns o:h
func (o St2toSt2) MatVec(h Stensor) (r Stensor) {
	r.N = o.N
	m := Size(o.N)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			r.C[i] += o.C[i][j] * h.C[j]
		}
	}
	return
}

// TMatVec returns oᵀ:h, i.e. h:o
func (o St2toSt2) TMatVec(h Stensor) (r Stensor) {
	r.N = o.N
	m := Size(o.N)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			r.C[i] += o.C[j][i] * h.C[j]
		}
	}
	return
}

// Mul returns o·b (composition: (o·b):h = o:(b:h))
func (o St2toSt2) Mul(b St2toSt2) (r St2toSt2) {
	r.N = o.N
	m := Size(o.N)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			for k := 0; k < m; k++ {
				r.C[i][j] += o.C[i][k] * b.C[k][j]
			}
		}
	}
	return
}

// Transpose returns oᵀ
func (o St2toSt2) Transpose() (r St2toSt2) {
	r.N = o.N
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			r.C[i][j] = o.C[j][i]
		}
	}
	return
}

// Add returns o + b
func (o St2toSt2) Add(b St2toSt2) St2toSt2 {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			o.C[i][j] += b.C[i][j]
		}
	}
	return o
}

// Sub returns o - b
func (o St2toSt2) Sub(b St2toSt2) St2toSt2 {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			o.C[i][j] -= b.C[i][j]
		}
	}
	return o
}

// Scale returns α o
func (o St2toSt2) Scale(α float64) St2toSt2 {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			o.C[i][j] *= α
		}
	}
	return o
}

// AddScaled returns o + α b
func (o St2toSt2) AddScaled(α float64, b St2toSt2) St2toSt2 {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			o.C[i][j] += α * b.C[i][j]
		}
	}
	return o
}

// AddDyad returns o + α a⊗b
func (o St2toSt2) AddDyad(α float64, a, b Stensor) St2toSt2 {
	m := Size(o.N)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			o.C[i][j] += α * a.C[i] * b.C[j]
		}
	}
	return o
}

// MaxAbs returns the largest absolute value of the components
func (o St2toSt2) MaxAbs() (res float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			res = math.Max(res, math.Abs(o.C[i][j]))
		}
	}
	return
}

// Permute returns P·o·Pᵀ where P maps the component i to perm[i]
func (o St2toSt2) Permute(perm [6]int) (r St2toSt2) {
	r.N = o.N
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			r.C[perm[i]][perm[j]] = o.C[i][j]
		}
	}
	return
}

// Truncate returns the operator restricted to dimension n
func (o St2toSt2) Truncate(n int) (r St2toSt2) {
	r.N = n
	m := Size(n)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			r.C[i][j] = o.C[i][j]
		}
	}
	return
}
