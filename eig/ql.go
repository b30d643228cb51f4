// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"math"

	"github.com/thelfer/tfel-sub004/stensor"
)

// QLMaxIt is the maximum number of implicit QL iterations per eigenvalue
var QLMaxIt = 30

// ql reduces the matrix to tridiagonal form and applies the implicit shifted QL algorithm
type ql struct{}

func (ql) Solve(a stensor.Mat3) (d Decomposition) {
	z, diag, e := tridiagonalise(a)
	implicitQL(&diag, &e, &z)
	d.Vals = diag
	d.Vecs = z
	return
}

// tridiagonalise computes zᵀ a z = T with z a plane rotation about the first axis
//  diag -- diagonal of T
//  e    -- e[0] = T01, e[1] = T12, e[2] = 0
func tridiagonalise(a stensor.Mat3) (z stensor.Mat3, diag, e stensor.Vec3) {
	z = stensor.Identity3()
	r := math.Hypot(a[0][1], a[0][2])
	if r > 0 && a[0][2] != 0 {
		c, s := a[0][1]/r, a[0][2]/r
		z[1][1], z[1][2] = c, -s
		z[2][1], z[2][2] = s, c
		a = z.Transpose().Mul(a).Mul(z)
		a[0][2], a[2][0] = 0, 0
	}
	diag = stensor.Vec3{a[0][0], a[1][1], a[2][2]}
	e = stensor.Vec3{a[0][1], a[1][2], 0}
	return
}

// implicitQL computes the eigenvalues (in d) and accumulates the rotations in z
func implicitQL(d, e *stensor.Vec3, z *stensor.Mat3) {
	const n = 3
	for l := 0; l < n; l++ {
		for iter := 0; ; iter++ {
			m := l
			for ; m < n-1; m++ {
				dd := math.Abs(d[m]) + math.Abs(d[m+1])
				if math.Abs(e[m]) <= 1e-300 || math.Abs(e[m]) <= 2.2e-16*dd {
					break
				}
			}
			if m == l || iter == QLMaxIt {
				break
			}
			g := (d[l+1] - d[l]) / (2.0 * e[l])
			r := math.Hypot(g, 1.0)
			g = d[m] - d[l] + e[l]/(g+math.Copysign(r, g))
			s, c, p := 1.0, 1.0, 0.0
			i := m - 1
			for ; i >= l; i-- {
				f := s * e[i]
				b := c * e[i]
				r = math.Hypot(f, g)
				e[i+1] = r
				if r == 0 {
					d[i+1] -= p
					e[m] = 0
					break
				}
				s = f / r
				c = g / r
				g = d[i+1] - p
				r = (d[i]-g)*s + 2.0*c*b
				p = s * r
				d[i+1] = g + p
				g = c*r - b
				for k := 0; k < n; k++ {
					f = z[k][i+1]
					z[k][i+1] = s*z[k][i] + c*f
					z[k][i] = c*z[k][i] - s*f
				}
			}
			if r == 0 && i >= l {
				continue
			}
			d[l] -= p
			e[l] = g
			e[m] = 0
		}
	}
}
