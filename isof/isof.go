// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package isof implements isotropic functions of symmetric tensors
//   F(T) = Σ f(λi) ni⊗ni
// and their derivatives
package isof

import (
	"math"

	"github.com/thelfer/tfel-sub004/eig"
	"github.com/thelfer/tfel-sub004/stensor"
)

// Func defines a scalar function
type Func func(x float64) float64

// Compute returns F(t) = Σ f(λi) ni⊗ni
func Compute(t stensor.Stensor, f Func, kind eig.Kind) stensor.Stensor {
	return FromDecomposition(eig.Compute(t, kind, eig.Undefined), t.N, f)
}

// FromDecomposition returns Σ f(λi) ni⊗ni given an eigen-decomposition
func FromDecomposition(d eig.Decomposition, n int, f Func) stensor.Stensor {
	return FromValues(d, n, stensor.Vec3{f(d.Vals[0]), f(d.Vals[1]), f(d.Vals[2])})
}

// FromValues returns Σ gi ni⊗ni
func FromValues(d eig.Decomposition, n int, g stensor.Vec3) (res stensor.Stensor) {
	res.N = n
	for i, p := range eig.Eigenprojectors(d, n) {
		res = res.AddScaled(g[i], p)
	}
	return
}

// ComputeDerivative returns dF/dt
func ComputeDerivative(t stensor.Stensor, f, df Func, eps float64, kind eig.Kind) stensor.St2toSt2 {
	return DerivativeFromDecomposition(eig.Compute(t, kind, eig.Undefined), t.N, f, df, eps)
}

// ComputeWithDerivative returns F(t) and dF/dt with a single diagonalisation
func ComputeWithDerivative(t stensor.Stensor, f, df Func, eps float64, kind eig.Kind) (stensor.Stensor, stensor.St2toSt2) {
	d := eig.Compute(t, kind, eig.Undefined)
	return FromDecomposition(d, t.N, f), DerivativeFromDecomposition(d, t.N, f, df, eps)
}

// DerivativeFromDecomposition returns dF/dt given an eigen-decomposition
//  If |λi - λj| < eps, the divided difference (f(λi)-f(λj))/(λi-λj) is replaced by
//  (df(λi)+df(λj))/2
func DerivativeFromDecomposition(d eig.Decomposition, n int, f, df Func, eps float64) stensor.St2toSt2 {
	var g stensor.Vec3
	var H [3][3]float64
	for i := 0; i < 3; i++ {
		g[i] = f(d.Vals[i])
		H[i][i] = df(d.Vals[i])
	}
	return SpectralDerivative(d, g, H, eps, n)
}

// SpectralDerivative returns the derivative of G(t) = Σ gi(λ) ni⊗ni where the functions gi
// depend on the three eigenvalues with Hij = ∂gi/∂λj:
//   dG/dt = Σ_ij Hij Ni⊗Nj + Σ_{i<j} 2 cij Mij⊗Mij
//  with Mij = sym(ni⊗nj) and cij = (gi-gj)/(λi-λj), or (Hii+Hjj)/2 - Hij if |λi-λj| < eps
func SpectralDerivative(d eig.Decomposition, g stensor.Vec3, H [3][3]float64, eps float64, n int) (res stensor.St2toSt2) {
	res.N = n
	N := eig.Eigenprojectors(d, n)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if H[i][j] != 0 {
				res = res.AddDyad(H[i][j], N[i], N[j])
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			var c float64
			if δ := d.Vals[i] - d.Vals[j]; math.Abs(δ) < eps {
				c = (H[i][i]+H[j][j])/2.0 - (H[i][j]+H[j][i])/2.0
			} else {
				c = (g[i] - g[j]) / δ
			}
			m := eig.Mij(d, n, i, j)
			res = res.AddDyad(2.0*c, m, m)
		}
	}
	return
}
