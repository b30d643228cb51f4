// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"math"

	"github.com/thelfer/tfel-sub004/stensor"
)

// analytic computes the eigenvalue that is the farthest from the other two with the
// trigonometric solution of the characteristic polynomial of the deviator. Its eigenvector is
// obtained from the rows of (a - λ I); the remaining pair comes from the exact solution of the
// 2x2 problem projected onto the orthogonal complement
type analytic struct{}

func (analytic) Solve(a stensor.Mat3) Decomposition {
	if isDiagonal(a) {
		return trivial(a)
	}
	b, scale := scaled(a)
	s, j2, j3 := deviator(b)
	if j2 == 0 {
		return trivial(a)
	}
	r := j3 / 2.0 * math.Pow(3.0/j2, 1.5)
	r = math.Max(-1, math.Min(1, r))
	θ := math.Acos(r) / 3.0
	ρ := 2.0 * math.Sqrt(j2/3.0)
	λf := ρ * math.Cos(θ) // largest
	if r < 0 {
		λf = ρ * math.Cos(θ+2.0*math.Pi/3.0) // smallest
	}
	v0 := nullVector(s, λf)
	return deflate(b, v0, scale)
}

// deviator returns the deviator of b and its invariants J2 and J3
func deviator(b stensor.Mat3) (s stensor.Mat3, j2, j3 float64) {
	m := (b[0][0] + b[1][1] + b[2][2]) / 3.0
	s = b
	s[0][0] -= m
	s[1][1] -= m
	s[2][2] -= m
	j2 = (s[0][0]*s[0][0]+s[1][1]*s[1][1]+s[2][2]*s[2][2])/2.0 + s[0][1]*s[0][1] + s[0][2]*s[0][2] + s[1][2]*s[1][2]
	j3 = s.Det()
	return
}

// nullVector returns the unit vector spanning the null space of (s - λ I) assuming λ is a
// simple eigenvalue: the largest cross product of two rows
func nullVector(s stensor.Mat3, λ float64) stensor.Vec3 {
	r0 := stensor.Vec3{s[0][0] - λ, s[0][1], s[0][2]}
	r1 := stensor.Vec3{s[1][0], s[1][1] - λ, s[1][2]}
	r2 := stensor.Vec3{s[2][0], s[2][1], s[2][2] - λ}
	c := [3]stensor.Vec3{r0.Cross(r1), r0.Cross(r2), r1.Cross(r2)}
	imax, dmax := 0, -1.0
	for i := 0; i < 3; i++ {
		if d := c[i].Dot(c[i]); d > dmax {
			imax, dmax = i, d
		}
	}
	if dmax == 0 {
		return stensor.Vec3{1, 0, 0}
	}
	return c[imax].Scale(1.0 / math.Sqrt(dmax))
}

// complement returns unit vectors u and v such that (w, u, v) is a right-handed orthonormal basis
func complement(w stensor.Vec3) (u, v stensor.Vec3) {
	if math.Abs(w[0]) > math.Abs(w[1]) {
		inv := 1.0 / math.Sqrt(w[0]*w[0]+w[2]*w[2])
		u = stensor.Vec3{-w[2] * inv, 0, w[0] * inv}
	} else {
		inv := 1.0 / math.Sqrt(w[1]*w[1]+w[2]*w[2])
		u = stensor.Vec3{0, w[2] * inv, -w[1] * inv}
	}
	v = w.Cross(u)
	return
}

// deflate completes the decomposition of b given one of its eigenvectors
func deflate(b stensor.Mat3, v0 stensor.Vec3, scale float64) (d Decomposition) {
	u, v := complement(v0)
	bu, bv := b.MulVec(u), b.MulVec(v)
	l1, l2, cs, sn := Sym2(u.Dot(bu), u.Dot(bv), v.Dot(bv))
	v1 := stensor.Vec3{cs*u[0] - sn*v[0], cs*u[1] - sn*v[1], cs*u[2] - sn*v[2]}
	v2 := stensor.Vec3{sn*u[0] + cs*v[0], sn*u[1] + cs*v[1], sn*u[2] + cs*v[2]}
	d.Vals = stensor.Vec3{v0.Dot(b.MulVec(v0)) * scale, l1 * scale, l2 * scale}
	d.Vecs.SetCol(0, v0)
	d.Vecs.SetCol(1, v1)
	d.Vecs.SetCol(2, v2)
	return
}
