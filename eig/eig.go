// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eig implements eigensolvers for symmetric second order tensors
package eig

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/thelfer/tfel-sub004/stensor"
)

// Kind selects an eigensolver
type Kind int

// eigensolvers
const (
	Analytic  Kind = iota // trigonometric root of the characteristic polynomial + 2x2 deflation
	Jacobi                // cyclic Jacobi rotations
	QL                    // tridiagonalisation + implicit QL
	Cuppen                // tridiagonalisation + divide-and-conquer
	GenericQR             // LAPACK symmetric QR (gonum)
	Hybrid                // analytic with fallback to Jacobi
	Harari                // closed-form roots through atan2 of the discriminant
)

// Kinds lists all solvers
var Kinds = []Kind{Analytic, Jacobi, QL, Cuppen, GenericQR, Hybrid, Harari}

var kindNames = map[Kind]string{
	Analytic:  "analytic",
	Jacobi:    "jacobi",
	QL:        "ql",
	Cuppen:    "cuppen",
	GenericQR: "qr",
	Hybrid:    "hybrid",
	Harari:    "harari",
}

// String returns the name of the solver
func (o Kind) String() string {
	if s, ok := kindNames[o]; ok {
		return s
	}
	return "unknown"
}

// ParseKind returns the solver corresponding to name
func ParseKind(name string) (Kind, error) {
	for k, s := range kindNames {
		if s == strings.ToLower(name) {
			return k, nil
		}
	}
	return 0, chk.Err("eigensolver %q is not available", name)
}

// Order defines how eigenvalues are sorted
type Order int

// ordering policies
const (
	Undefined  Order = iota // solver natural order
	Ascending               // λ0 ≤ λ1 ≤ λ2
	Descending              // λ0 ≥ λ1 ≥ λ2
)

// Decomposition holds eigenvalues and eigenvectors. Vecs[:,i] is associated with Vals[i]
type Decomposition struct {
	Vals stensor.Vec3 // eigenvalues
	Vecs stensor.Mat3 // eigenvectors (columns)
}

// Solver computes the eigen-decomposition of a symmetric 3x3 matrix
type Solver interface {
	Solve(a stensor.Mat3) Decomposition
}

// New returns the solver of the given kind
func New(kind Kind) Solver {
	switch kind {
	case Analytic:
		return analytic{}
	case Jacobi:
		return jacobi{}
	case QL:
		return ql{}
	case Cuppen:
		return cuppen{}
	case GenericQR:
		return genericQR{}
	case Hybrid:
		return hybrid{fast: analytic{}, safe: jacobi{}}
	case Harari:
		return harari{}
	}
	chk.Panic("eigensolver kind %d is invalid", kind)
	return nil
}

// Compute computes the eigen-decomposition of t
//  For t.N < 3, the out-of-plane eigenvalues are the corresponding diagonal components with
//  eigenvectors aligned with the axes
func Compute(t stensor.Stensor, kind Kind, order Order) (d Decomposition) {
	switch t.N {
	case 1:
		d.Vals = stensor.Vec3{t.C[0], t.C[1], t.C[2]}
		d.Vecs = stensor.Identity3()
	case 2:
		l0, l1, c, s := Sym2(t.C[0], t.C[3]*stensor.ISQ2, t.C[1])
		d.Vals = stensor.Vec3{l0, l1, t.C[2]}
		d.Vecs = stensor.Mat3{
			{c, s, 0},
			{-s, c, 0},
			{0, 0, 1},
		}
	default:
		d = New(kind).Solve(t.ToMat3())
	}
	return d.Sorted(order)
}

// Sorted returns a copy with (value, vector) pairs permuted according to order
func (o Decomposition) Sorted(order Order) (r Decomposition) {
	if order == Undefined {
		return o
	}
	idx := []int{0, 1, 2}
	sort.SliceStable(idx, func(a, b int) bool {
		if order == Ascending {
			return o.Vals[idx[a]] < o.Vals[idx[b]]
		}
		return o.Vals[idx[a]] > o.Vals[idx[b]]
	})
	for j, k := range idx {
		r.Vals[j] = o.Vals[k]
		r.Vecs.SetCol(j, o.Vecs.Col(k))
	}
	return
}

// Rebuild returns Σ λi vi⊗vi
func (o Decomposition) Rebuild() (m stensor.Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				m[i][j] += o.Vals[k] * o.Vecs[i][k] * o.Vecs[j][k]
			}
		}
	}
	return
}

// Residual returns max|a - Σ λi vi⊗vi| and max|VᵀV - I|
func (o Decomposition) Residual(a stensor.Mat3) (rebuild, ortho float64) {
	m := o.Rebuild()
	vtv := o.Vecs.Transpose().Mul(o.Vecs)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rebuild = math.Max(rebuild, math.Abs(a[i][j]-m[i][j]))
			δ := 0.0
			if i == j {
				δ = 1
			}
			ortho = math.Max(ortho, math.Abs(vtv[i][j]-δ))
		}
	}
	return
}

// Sym2 computes the eigenvalues of [[a, b], [b, c]] with a stable Jacobi rotation
//  The eigenvectors are (cs, -sn) for l0 and (sn, cs) for l1
func Sym2(a, b, c float64) (l0, l1, cs, sn float64) {
	if b == 0 {
		return a, c, 1, 0
	}
	τ := (c - a) / (2.0 * b)
	var t float64
	if math.Abs(τ) > 1e150 {
		t = 0.5 / τ
	} else {
		t = 1.0 / (math.Abs(τ) + math.Sqrt(1.0+τ*τ))
		if τ < 0 {
			t = -t
		}
	}
	cs = 1.0 / math.Sqrt(1.0+t*t)
	sn = t * cs
	l0 = a - t*b
	l1 = c + t*b
	return
}

// scaled returns a/scale with scale = max|aij|
func scaled(a stensor.Mat3) (b stensor.Mat3, scale float64) {
	scale = a.MaxAbs()
	if scale == 0 {
		return a, 0
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = a[i][j] / scale
		}
	}
	return
}

// trivial returns the decomposition of a diagonal matrix
func trivial(a stensor.Mat3) Decomposition {
	return Decomposition{
		Vals: stensor.Vec3{a[0][0], a[1][1], a[2][2]},
		Vecs: stensor.Identity3(),
	}
}

// isDiagonal tells whether all off-diagonal entries are zero
func isDiagonal(a stensor.Mat3) bool {
	return a[0][1] == 0 && a[0][2] == 0 && a[1][2] == 0
}
