// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"math"
	"sort"

	"github.com/thelfer/tfel-sub004/stensor"
)

// cuppen implements the divide-and-conquer method on the tridiagonal form
//  T = [ T1  0 ] + ρ v vᵀ   with v = {0, 1, 1} and ρ = T12
//      [ 0  T2 ]
//  T1 (2x2) and T2 (1x1) are solved directly; the rank-one update is solved with the secular
//  equation  1 + ρ Σ zi²/(di - λ) = 0
type cuppen struct{}

func (cuppen) Solve(a stensor.Mat3) Decomposition {
	z, diag, e := tridiagonalise(a)
	ρ := e[1]

	// subproblems
	l0, l1, cs, sn := Sym2(diag[0], e[0], diag[1]-ρ)
	D := stensor.Vec3{l0, l1, diag[2] - ρ}
	q1 := stensor.Mat3{ // eigenvectors of the torn tridiagonal matrix
		{cs, sn, 0},
		{-sn, cs, 0},
		{0, 0, 1},
	}
	w := stensor.Vec3{q1[1][0], q1[1][1], 1} // q1ᵀ v

	// rank-one update
	_, qd := rankOneUpdate(D, w, ρ)

	// eigenvectors of a
	vecs := z.Mul(q1).Mul(qd)
	orthonormalise(&vecs)

	// refine eigenvalues with Rayleigh quotients
	var d Decomposition
	d.Vecs = vecs
	for i := 0; i < 3; i++ {
		v := vecs.Col(i)
		d.Vals[i] = v.Dot(a.MulVec(v))
	}
	return d
}

// rankOneUpdate solves diag(d) + ρ z zᵀ = q diag(λ) qᵀ
func rankOneUpdate(d, z stensor.Vec3, ρ float64) (λ stensor.Vec3, q stensor.Mat3) {
	q = stensor.Identity3()
	λ = d
	znorm := z.Norm()
	scale := math.Max(math.Max(math.Abs(d[0]), math.Abs(d[1])), math.Abs(d[2])) + math.Abs(ρ)*znorm*znorm
	if scale == 0 {
		return
	}
	tol := 8.0 * 2.2e-16 * scale

	// deflation: negligible coupling
	var active []int
	for i := 0; i < 3; i++ {
		if math.Abs(ρ)*math.Abs(z[i])*znorm > tol {
			active = append(active, i)
		} else {
			z[i] = 0
		}
	}

	// deflation: (nearly) equal poles
	for a := 0; a < len(active); a++ {
		for b := a + 1; b < len(active); b++ {
			i, j := active[a], active[b]
			if math.Abs(d[i]-d[j]) > tol {
				continue
			}
			r := math.Hypot(z[i], z[j])
			c, s := z[i]/r, z[j]/r
			qi, qj := q.Col(i), q.Col(j)
			q.SetCol(i, stensor.Vec3{c*qi[0] + s*qj[0], c*qi[1] + s*qj[1], c*qi[2] + s*qj[2]})
			q.SetCol(j, stensor.Vec3{-s*qi[0] + c*qj[0], -s*qi[1] + c*qj[1], -s*qi[2] + c*qj[2]})
			z[i], z[j] = r, 0
			active = append(active[:b], active[b+1:]...)
			b--
		}
	}

	switch len(active) {
	case 0:
		return
	case 1:
		i := active[0]
		λ[i] = d[i] + ρ*z[i]*z[i]
		return
	}

	// secular equation. Each root is computed as an offset τ from its closest pole so that the
	// differences di - λ entering the eigenvectors keep their relative accuracy
	sort.Slice(active, func(a, b int) bool { return d[active[a]] < d[active[b]] })
	secular := func(org int) func(τ float64) float64 {
		return func(τ float64) (res float64) {
			res = 1
			for _, i := range active {
				res += ρ * z[i] * z[i] / ((d[i] - d[org]) - τ)
			}
			return
		}
	}
	var zz float64
	for _, i := range active {
		zz += z[i] * z[i]
	}
	k := len(active)
	orgs := make([]int, k)
	taus := make([]float64, k)
	for m := 0; m < k; m++ {
		org := active[m]
		var lo, hi float64
		if ρ > 0 {
			lo = d[org]
			if m < k-1 {
				hi = d[active[m+1]]
				if secular(org)((hi-lo)/2.0) < 0 {
					org = active[m+1]
				}
			} else {
				hi = d[org] + ρ*zz
			}
		} else {
			hi = d[org]
			if m > 0 {
				lo = d[active[m-1]]
				if secular(org)(-(hi-lo)/2.0) < 0 {
					org = active[m-1]
				}
			} else {
				lo = d[org] + ρ*zz
			}
		}
		orgs[m] = org
		taus[m] = bisect(secular(org), lo-d[org], hi-d[org], ρ > 0)
	}

	// eigenvectors: (D - λ I)⁻¹ z
	newq := q
	for m := 0; m < k; m++ {
		org, τ := orgs[m], taus[m]
		var v stensor.Vec3
		for _, i := range active {
			δ := (d[i] - d[org]) - τ
			if δ == 0 {
				δ = tol
			}
			c := z[i] / δ
			qi := q.Col(i)
			v[0] += c * qi[0]
			v[1] += c * qi[1]
			v[2] += c * qi[2]
		}
		col := active[m]
		λ[col] = d[org] + τ
		newq.SetCol(col, v.Normalised())
	}
	q = newq
	return
}

// bisect finds the root of the monotonic function f in the open interval (lo, hi)
func bisect(f func(x float64) float64, lo, hi float64, increasing bool) float64 {
	for it := 0; it < 200; it++ {
		mid := lo + (hi-lo)/2.0
		if mid == lo || mid == hi {
			return mid
		}
		if (f(mid) < 0) == increasing {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2.0
}

// orthonormalise applies the modified Gram-Schmidt process to the columns of v
func orthonormalise(v *stensor.Mat3) {
	for j := 0; j < 3; j++ {
		c := v.Col(j)
		for k := 0; k < j; k++ {
			p := v.Col(k)
			α := c.Dot(p)
			c = stensor.Vec3{c[0] - α*p[0], c[1] - α*p[1], c[2] - α*p[2]}
		}
		if c.Norm() == 0 {
			c = v.Col((j + 1) % 3).Cross(v.Col((j + 2) % 3))
		}
		v.SetCol(j, c.Normalised())
	}
}
