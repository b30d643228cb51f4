// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crit

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/thelfer/tfel-sub004/eig"
	"github.com/thelfer/tfel-sub004/isof"
	"github.com/thelfer/tfel-sub004/stensor"
)

// hosfordPotential computes the Hosford stress
//   Φ = (½ Σ_{i<j} |vpi - vpj|^a)^(1/a)
// and, depending on order, its derivatives with respect to the eigenvalues vp.
// The eigenvalues are normalised by their largest difference. ok is false if this
// difference is below eps
func hosfordPotential(vp stensor.Vec3, a, eps float64, order int) (Φ float64, g stensor.Vec3, H [3][3]float64, ok bool) {
	scale := math.Max(math.Max(math.Abs(vp[0]-vp[1]), math.Abs(vp[0]-vp[2])), math.Abs(vp[1]-vp[2]))
	if scale < eps {
		return
	}
	ok = true
	x := vp.Scale(1.0 / scale)
	var ψ float64
	var dψ stensor.Vec3
	var d2ψ [3][3]float64
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			d := x[i] - x[j]
			ψ += absPow(d, a) / 2.0
			if order < 1 {
				continue
			}
			pm2 := absPowm2(d, a, eps/scale)
			dψ[i] += a * pm2 * d / 2.0
			dψ[j] -= a * pm2 * d / 2.0
			if order < 2 {
				continue
			}
			c := a * (a - 1) * pm2 / 2.0
			d2ψ[i][i] += c
			d2ψ[j][j] += c
			d2ψ[i][j] -= c
			d2ψ[j][i] -= c
		}
	}
	Φ = scale * math.Pow(ψ, 1.0/a)
	if order < 1 {
		return
	}
	c1 := math.Pow(ψ, 1.0/a-1) / a
	g = dψ.Scale(c1)
	if order < 2 {
		return
	}
	c2 := (1.0/a - 1) * math.Pow(ψ, 1.0/a-2) / a
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			H[i][j] = (c2*dψ[i]*dψ[j] + c1*d2ψ[i][j]) / scale
		}
	}
	return
}

// HosfordStress computes the Hosford equivalent stress
//   Φ = (½ (|s1-s2|^a + |s1-s3|^a + |s2-s3|^a))^(1/a)
//  where s1, s2 and s3 are the eigenvalues of s. Φ = 0 if the eigenvalues are all within eps
func HosfordStress(s stensor.Stensor, a, eps float64, kind eig.Kind) float64 {
	d := eig.Compute(s, kind, eig.Undefined)
	Φ, _, _, _ := hosfordPotential(d.Vals, a, eps, 0)
	return Φ
}

// HosfordStressNormal computes the Hosford stress and its derivative dΦ/ds
func HosfordStressNormal(s stensor.Stensor, a, eps float64, kind eig.Kind) (Φ float64, n stensor.Stensor) {
	n.N = s.N
	d := eig.Compute(s, kind, eig.Undefined)
	Φ, g, _, ok := hosfordPotential(d.Vals, a, eps, 1)
	if !ok {
		return
	}
	n = isof.FromValues(d, s.N, g)
	return
}

// HosfordStressSecondDerivative computes the Hosford stress, its derivative dΦ/ds and its second
// derivative d²Φ/ds²
func HosfordStressSecondDerivative(s stensor.Stensor, a, eps float64, kind eig.Kind) (Φ float64, n stensor.Stensor, dn stensor.St2toSt2) {
	n.N, dn.N = s.N, s.N
	d := eig.Compute(s, kind, eig.Undefined)
	Φ, g, H, ok := hosfordPotential(d.Vals, a, eps, 2)
	if !ok {
		return
	}
	n = isof.FromValues(d, s.N, g)
	dn = isof.SpectralDerivative(d, g, H, eps, s.N)
	return
}

// Hosford implements the Hosford criterion
type Hosford struct {
	A      float64  // exponent
	Eps    float64  // numerical floor
	Solver eig.Kind // eigensolver
}

// add criterion to factory
func init() {
	allocators["hosford"] = func() Criterion { return new(Hosford) }
}

// Init initialises criterion
//  Parameters: a, eps and solver (index in eig.Kinds)
func (o *Hosford) Init(ndim int, prms dbf.Params) (err error) {
	o.A, o.Eps, o.Solver = 8, DefaultEps, DefaultSolver
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "eps":
			o.Eps = p.V
		case "solver":
			if o.Solver, err = solverPrm(p); err != nil {
				return
			}
		default:
			return chk.Err("hosford: parameter named %q is invalid", p.N)
		}
	}
	if o.A < 1 {
		return chk.Err("hosford: exponent must be greater than or equal to 1. a = %g is invalid", o.A)
	}
	return
}

// Stress computes Φ
func (o Hosford) Stress(s stensor.Stensor) float64 {
	return HosfordStress(s, o.A, o.Eps, o.Solver)
}

// Normal computes Φ and dΦ/ds
func (o Hosford) Normal(s stensor.Stensor) (float64, stensor.Stensor) {
	return HosfordStressNormal(s, o.A, o.Eps, o.Solver)
}

// SecondDerivative computes Φ, dΦ/ds and d²Φ/ds²
func (o Hosford) SecondDerivative(s stensor.Stensor) (float64, stensor.Stensor, stensor.St2toSt2) {
	return HosfordStressSecondDerivative(s, o.A, o.Eps, o.Solver)
}
