// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isof

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/thelfer/tfel-sub004/eig"
	"github.com/thelfer/tfel-sub004/invs"
	"github.com/thelfer/tfel-sub004/stensor"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// rotated returns R·diag(λ)·Rᵀ with R = Rz(α)·Rx(β)
func rotated(λ stensor.Vec3, α, β float64) stensor.Stensor {
	ca, sa := math.Cos(α), math.Sin(α)
	cb, sb := math.Cos(β), math.Sin(β)
	rz := stensor.Mat3{{ca, -sa, 0}, {sa, ca, 0}, {0, 0, 1}}
	rx := stensor.Mat3{{1, 0, 0}, {0, cb, -sb}, {0, sb, cb}}
	r := rz.Mul(rx)
	d := stensor.Mat3{{λ[0], 0, 0}, {0, λ[1], 0}, {0, 0, λ[2]}}
	return stensor.FromMat3(3, r.Mul(d).Mul(r.Transpose()))
}

var mixed = []stensor.Stensor{
	rotated(stensor.Vec3{2, -1, 0.5}, 0.3, 0.7),
	rotated(stensor.Vec3{-0.4, 1.2, -2}, 1.1, -0.2),
	stensor.New(2, 2, -1, 0.5, 0.7),
	stensor.New(1, 3, -2, 1),
}

var spd = []stensor.Stensor{
	rotated(stensor.Vec3{2, 1, 0.5}, 0.3, 0.7),
	stensor.New(3, 1.27453824166446, 0.77207083708966, 0.24525337568425, -1.7790370858361e-4, 3.613971630283e-3, -1.7873236537153e-2),
	stensor.New(2, 1.5, 0.8, 1.1, 0.3),
}

func Test_isof01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isof01. positive and negative parts")

	for _, kind := range eig.Kinds {
		for k, t := range mixed {
			msg := io.Sf("%v/%d", kind, k)
			p, dp := PositivePartWithDerivative(t, 1e-12, kind)
			n, dn := NegativePartWithDerivative(t, 1e-12, kind)
			stensor.CheckStensor(tst, "p+n "+msg, 1e-13, p.Add(n), t)
			stensor.CheckSt2toSt2(tst, "dp+dn "+msg, 1e-13, dp.Add(dn), stensor.Id4(t.N))
			stensor.CheckStensor(tst, "p "+msg, 1e-14, PositivePart(t, kind), p)
			stensor.CheckStensor(tst, "n "+msg, 1e-14, NegativePart(t, kind), n)
			stensor.CheckSt2toSt2(tst, "dp "+msg, 1e-14, PositivePartDerivative(t, 1e-12, kind), dp)
			stensor.CheckSt2toSt2(tst, "dn "+msg, 1e-14, NegativePartDerivative(t, 1e-12, kind), dn)

			// p:n = 0
			chk.Float64(tst, "p:n "+msg, 1e-13, p.Dot(n), 0)
		}
	}

	// derivatives
	for k, t := range mixed {
		msg := io.Sf("%d", k)
		stensor.CheckDeriv2(tst, "dp "+msg, 1e-7, PositivePartDerivative(t, 1e-12, eig.Jacobi), t, 1e-6, chk.Verbose, func(s stensor.Stensor) stensor.Stensor {
			return PositivePart(s, eig.Jacobi)
		})
		stensor.CheckDeriv2(tst, "dn "+msg, 1e-7, NegativePartDerivative(t, 1e-12, eig.Jacobi), t, 1e-6, chk.Verbose, func(s stensor.Stensor) stensor.Stensor {
			return NegativePart(s, eig.Jacobi)
		})
	}

	// step value at zero
	chk.Float64(tst, "H(0)", 1e-17, Heaviside(0), 0.5)
	dp := PositivePartDerivative(stensor.Zero(3), 1e-12, eig.Analytic)
	stensor.CheckSt2toSt2(tst, "dp(0)", 1e-15, dp, stensor.Id4(3).Scale(0.5))
}

func Test_isof02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isof02. exp and log")

	e := math.Exp(1)
	for _, n := range []int{1, 2, 3} {
		ex, dex := ExpWithDerivative(stensor.Id(n), 1e-10, eig.Analytic)
		stensor.CheckStensor(tst, "exp(I)", 1e-15, ex, stensor.Id(n).Scale(e))
		stensor.CheckSt2toSt2(tst, "dexp(I)", 1e-14, dex, stensor.Id4(n).Scale(e))
	}

	for _, kind := range []eig.Kind{eig.Analytic, eig.Jacobi, eig.QL, eig.Cuppen} {
		for k, t := range spd {
			msg := io.Sf("%v/%d", kind, k)
			ex, dex := ExpWithDerivative(t, 1e-10, kind)
			stensor.CheckDeriv2(tst, "dexp "+msg, 1e-7, dex, t, 1e-6, chk.Verbose, func(s stensor.Stensor) stensor.Stensor {
				return Exp(s, kind)
			})
			lg, dlg := LogWithDerivative(t, 1e-10, kind)
			stensor.CheckDeriv2(tst, "dlog "+msg, 1e-7, dlg, t, 1e-6, chk.Verbose, func(s stensor.Stensor) stensor.Stensor {
				return Log(s, kind)
			})

			// log(exp(t)) = t and det(exp(t)) = exp(tr(t))
			stensor.CheckStensor(tst, "log(exp) "+msg, 1e-13, Log(ex, kind), t)
			chk.Float64(tst, "det(exp) "+msg, 1e-12, invs.I3(ex), math.Exp(t.Trace()))
			chk.Float64(tst, "tr(log) "+msg, 1e-13, lg.Trace(), math.Log(t.Det()))

			// sqrt(t)·sqrt(t) = t
			r := Sqrt(t, kind)
			stensor.CheckStensor(tst, "sqrt² "+msg, 1e-13, r.Square(), t)
			stensor.CheckStensor(tst, "pow "+msg, 1e-13, Pow(t, 0.5, kind), r)
			stensor.CheckStensor(tst, "hencky "+msg, 1e-13, HenckyStrain(t, kind), lg.Scale(0.5))
		}
	}
}

func Test_isof03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isof03. spectral derivative")

	// G(t) = Σ gi ni⊗ni with gi = ∂φ/∂λi and φ = λ0 λ1 λ2 = det(t) gives the second
	// derivative of the determinant
	for k, t := range append(spd, mixed...) {
		d := eig.Compute(t, eig.Jacobi, eig.Undefined)
		λ := d.Vals
		g := stensor.Vec3{λ[1] * λ[2], λ[0] * λ[2], λ[0] * λ[1]}
		H := [3][3]float64{
			{0, λ[2], λ[1]},
			{λ[2], 0, λ[0]},
			{λ[1], λ[0], 0},
		}
		msg := io.Sf("%d", k)
		stensor.CheckStensor(tst, "ddet "+msg, 1e-13, FromValues(d, t.N, g), invs.DeterminantDerivative(t))
		stensor.CheckSt2toSt2(tst, "d²det "+msg, 1e-12, SpectralDerivative(d, g, H, 1e-10, t.N), invs.DeterminantSecondDerivative(t))
	}

	// degenerate: identity
	d := eig.Compute(stensor.Id(3), eig.Analytic, eig.Undefined)
	g := stensor.Vec3{1, 1, 1}
	H := [3][3]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}
	stensor.CheckSt2toSt2(tst, "d²det(I)", 1e-15, SpectralDerivative(d, g, H, 1e-10, 3), invs.DeterminantSecondDerivative(stensor.Id(3)))
}

func Test_isof04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isof04. derivative at repeated eigenvalues")

	square := func(x float64) float64 { return x * x }
	twice := func(x float64) float64 { return 2 * x }
	points := []stensor.Stensor{
		stensor.New(3, 1, 1, 2),
		rotated(stensor.Vec3{1, 1, 2}, 0.3, 0.7),
		stensor.Id(3),
	}
	for k, t := range points {
		msg := io.Sf("%d", k)

		// Jacobi against finite differences
		dex := ComputeDerivative(t, math.Exp, math.Exp, 1e-10, eig.Jacobi)
		stensor.CheckDeriv2(tst, "dexp "+msg, 1e-7, dex, t, 1e-6, chk.Verbose, func(s stensor.Stensor) stensor.Stensor {
			return Compute(s, math.Exp, eig.Jacobi)
		})
		dsq := ComputeDerivative(t, square, twice, 1e-10, eig.Jacobi)
		stensor.CheckDeriv2(tst, "dsq "+msg, 1e-7, dsq, t, 1e-6, chk.Verbose, func(s stensor.Stensor) stensor.Stensor {
			return Compute(s, square, eig.Jacobi)
		})

		// other solvers against Jacobi
		for _, kind := range eig.Kinds {
			_, d := ComputeWithDerivative(t, math.Exp, math.Exp, 1e-10, kind)
			stensor.CheckSt2toSt2(tst, io.Sf("dexp %v/%s", kind, msg), 1e-8, d, dex)
			stensor.CheckSt2toSt2(tst, io.Sf("dsq %v/%s", kind, msg), 1e-8, ComputeDerivative(t, square, twice, 1e-10, kind), dsq)
		}
	}

	// exact values at diag(1,1,2): d(t²)/dt = t⊗̄I + I⊗̄t reduces to 2λ on the normal components
	dsq := ComputeDerivative(stensor.New(3, 1, 1, 2), square, twice, 1e-10, eig.Analytic)
	chk.Float64(tst, "dsq[0][0]", 1e-14, dsq.C[0][0], 2)
	chk.Float64(tst, "dsq[2][2]", 1e-14, dsq.C[2][2], 4)
	chk.Float64(tst, "dsq[3][3]", 1e-14, dsq.C[3][3], 2)
	chk.Float64(tst, "dsq[4][4]", 1e-14, dsq.C[4][4], 3)
	chk.Float64(tst, "dsq[5][5]", 1e-14, dsq.C[5][5], 3)
	chk.Float64(tst, "dsq[0][2]", 1e-14, dsq.C[0][2], 0)
}
