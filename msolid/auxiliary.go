// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/thelfer/tfel-sub004/eig"
	"github.com/thelfer/tfel-sub004/stensor"
)

// Calc_K_from_Enu computes the bulk modulus from Young's modulus and Poisson's coefficient
func Calc_K_from_Enu(E, ν float64) float64 { return E / (3.0 * (1.0 - 2.0*ν)) }

// Calc_G_from_Enu computes the shear modulus from Young's modulus and Poisson's coefficient
func Calc_G_from_Enu(E, ν float64) float64 { return E / (2.0 * (1.0 + ν)) }

// Calc_E_from_KG computes Young's modulus from the bulk and shear moduli
func Calc_E_from_KG(K, G float64) float64 { return 9.0 * K * G / (3.0*K + G) }

// Calc_nu_from_KG computes Poisson's coefficient from the bulk and shear moduli
func Calc_nu_from_KG(K, G float64) float64 { return (3.0*K - 2.0*G) / (6.0*K + 2.0*G) }

// checkModuli checks that the elastic moduli are admissible
func checkModuli(K, G float64) error {
	if K <= 0 || G <= 0 {
		return chk.Err("elastic moduli must be positive. K=%g G=%g", K, G)
	}
	return nil
}

// PrincipalValues returns the principal values of a stress or strain tensor in decreasing order
func PrincipalValues(t stensor.Stensor) stensor.Vec3 {
	return eig.Compute(t, eig.Jacobi, eig.Descending).Vals
}
