// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"math"

	"github.com/thelfer/tfel-sub004/stensor"
)

// Eigenprojectors returns Ni = ni⊗ni in dimension n
func Eigenprojectors(d Decomposition, n int) (res [3]stensor.Stensor) {
	for i := 0; i < 3; i++ {
		v := d.Vecs.Col(i)
		res[i] = stensor.FromVectors(n, v, v)
	}
	return
}

// EigenValuesDerivatives returns dλi/dT = ni⊗ni
func EigenValuesDerivatives(d Decomposition, n int) [3]stensor.Stensor {
	return Eigenprojectors(d, n)
}

// Mij returns sym(ni⊗nj) in dimension n
func Mij(d Decomposition, n, i, j int) stensor.Stensor {
	return stensor.FromVectors(n, d.Vecs.Col(i), d.Vecs.Col(j))
}

// EigenTensorsDerivatives returns dNi/dT = Σ_{j≠i} 2/(λi-λj) Mij⊗Mij
//  When |λi-λj| < eps, the difference is replaced by ±eps keeping the antisymmetry in (i,j), so
//  that Σi dNi/dT = 0 still holds
func EigenTensorsDerivatives(d Decomposition, n int, eps float64) (res [3]stensor.St2toSt2) {
	for i := 0; i < 3; i++ {
		res[i].N = n
		for j := 0; j < 3; j++ {
			if j == i {
				continue
			}
			δ := d.Vals[i] - d.Vals[j]
			if math.Abs(δ) < eps {
				if δ > 0 || (δ == 0 && i < j) {
					δ = eps
				} else {
					δ = -eps
				}
			}
			m := Mij(d, n, i, j)
			res[i] = res[i].AddDyad(2.0/δ, m, m)
		}
	}
	return
}
