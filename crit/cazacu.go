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

// cazacuNorm returns ((2/3)(1-k))^a + 2((1/3)(1+k))^a such that Φ = σ in uniaxial tension
// when L = K
func cazacuNorm(a, k float64) float64 {
	return math.Pow(2.0*(1-k)/3.0, a) + 2.0*math.Pow((1+k)/3.0, a)
}

// cazacuPotential computes
//   Φ = (Σ_i (|Σi| - k Σi)^a / norm)^(1/a)
// and its derivatives with respect to the eigenvalues Σ. ok is false if max|Σi| < eps
func cazacuPotential(vp stensor.Vec3, a, k, eps float64, order int) (Φ float64, g stensor.Vec3, H [3][3]float64, ok bool) {
	scale := math.Max(math.Max(math.Abs(vp[0]), math.Abs(vp[1])), math.Abs(vp[2]))
	if scale < eps {
		return
	}
	norm := cazacuNorm(a, k)
	x := vp.Scale(1.0 / scale)
	var ψ float64
	var dψ, d2ψ stensor.Vec3
	for i := 0; i < 3; i++ {
		sg := 1.0
		if x[i] < 0 {
			sg = -1
		}
		y := math.Abs(x[i]) - k*x[i]
		ψ += math.Pow(y, a)
		dψ[i] = a * math.Pow(y, a-1) * (sg - k)
		d2ψ[i] = a * (a - 1) * absPowm2(y, a, eps/scale) * (sg - k) * (sg - k)
	}
	if ψ <= 0 {
		return
	}
	ok = true
	ψ /= norm
	dψ = dψ.Scale(1.0 / norm)
	d2ψ = d2ψ.Scale(1.0 / norm)
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
			H[i][j] = c2 * dψ[i] * dψ[j] / scale
		}
		H[i][i] += c1 * d2ψ[i] / scale
	}
	return
}

// CazacuStress computes the Cazacu-Plunkett-Barlat (2006) equivalent stress
//   Φ = (Σ_i (|Σi| - k Σi)^a / norm)^(1/a)
//  where Σi are the eigenvalues of L:s. The parameter k (|k| ≤ 1) controls the asymmetry between
//  tension and compression. With L = K, Φ equals the stress in uniaxial tension
func CazacuStress(s stensor.Stensor, l stensor.St2toSt2, a, k, eps float64, kind eig.Kind) float64 {
	d := eig.Compute(l.MatVec(s), kind, eig.Undefined)
	Φ, _, _, _ := cazacuPotential(d.Vals, a, k, eps, 0)
	return Φ
}

// CazacuStressNormal computes the Cazacu stress and its derivative
func CazacuStressNormal(s stensor.Stensor, l stensor.St2toSt2, a, k, eps float64, kind eig.Kind) (Φ float64, n stensor.Stensor) {
	n.N = s.N
	d := eig.Compute(l.MatVec(s), kind, eig.Undefined)
	Φ, g, _, ok := cazacuPotential(d.Vals, a, k, eps, 1)
	if !ok {
		return
	}
	n = l.TMatVec(isof.FromValues(d, s.N, g))
	return
}

// CazacuStressSecondDerivative computes the Cazacu stress, its derivative and its second
// derivative
func CazacuStressSecondDerivative(s stensor.Stensor, l stensor.St2toSt2, a, k, eps float64, kind eig.Kind) (Φ float64, n stensor.Stensor, dn stensor.St2toSt2) {
	n.N, dn.N = s.N, s.N
	d := eig.Compute(l.MatVec(s), kind, eig.Undefined)
	Φ, g, H, ok := cazacuPotential(d.Vals, a, k, eps, 2)
	if !ok {
		return
	}
	n = l.TMatVec(isof.FromValues(d, s.N, g))
	dn = l.Transpose().Mul(isof.SpectralDerivative(d, g, H, eps, s.N)).Mul(l)
	return
}

// Cazacu implements the Cazacu-Plunkett-Barlat criterion
type Cazacu struct {
	L      stensor.St2toSt2 // linear transformation
	A      float64          // exponent
	K      float64          // asymmetry parameter
	Eps    float64          // numerical floor
	Solver eig.Kind         // eigensolver
}

// add criterion to factory
func init() {
	allocators["cazacu"] = func() Criterion { return new(Cazacu) }
}

// Init initialises criterion
//  Parameters: a, k, eps, solver, c12, c21, ..., c66 and pipe. Missing coefficients are equal to 1
func (o *Cazacu) Init(ndim int, prms dbf.Params) (err error) {
	o.A, o.K, o.Eps, o.Solver = 2, 0, DefaultEps, DefaultSolver
	c := UnitBarlatCoefficients()
	conv := Default
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "k":
			o.K = p.V
		case "eps":
			o.Eps = p.V
		case "solver":
			if o.Solver, err = solverPrm(p); err != nil {
				return
			}
		case "pipe":
			if p.V > 0 {
				conv = Pipe
			}
		default:
			found := false
			for i, name := range barlatNames {
				if p.N == "c"+name {
					c[i], found = p.V, true
				}
			}
			if !found {
				return chk.Err("cazacu: parameter named %q is invalid", p.N)
			}
		}
	}
	if o.A < 1 {
		return chk.Err("cazacu: exponent must be greater than or equal to 1. a = %g is invalid", o.A)
	}
	if math.Abs(o.K) > 1 {
		return chk.Err("cazacu: asymmetry parameter must satisfy |k| ≤ 1. k = %g is invalid", o.K)
	}
	h := Tridimensional
	switch ndim {
	case 1:
		h = AxisymmetricalGeneralisedPlaneStrain
	case 2:
		h = PlaneStrain
	}
	o.L = MakeBarlatLinearTransformationWithConvention(h, conv, c)
	return
}

// Stress computes Φ
func (o Cazacu) Stress(s stensor.Stensor) float64 {
	return CazacuStress(s, o.L, o.A, o.K, o.Eps, o.Solver)
}

// Normal computes Φ and dΦ/ds
func (o Cazacu) Normal(s stensor.Stensor) (float64, stensor.Stensor) {
	return CazacuStressNormal(s, o.L, o.A, o.K, o.Eps, o.Solver)
}

// SecondDerivative computes Φ, dΦ/ds and d²Φ/ds²
func (o Cazacu) SecondDerivative(s stensor.Stensor) (float64, stensor.Stensor, stensor.St2toSt2) {
	return CazacuStressSecondDerivative(s, o.L, o.A, o.K, o.Eps, o.Solver)
}
