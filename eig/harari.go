// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"math"

	"github.com/thelfer/tfel-sub004/stensor"
)

// harari computes the root that is the farthest from the other two in closed form. The Lode
// angle is obtained with atan2 from the discriminant 4 J2³ - 27 J3² instead of acos. The closed
// form only selects the distinct root and its eigenvector; the remaining pair is the exact
// solution of the 2x2 problem in the complement of that eigenvector, because the discriminant
// loses half of the digits when two eigenvalues are nearly equal
type harari struct{}

func (harari) Solve(a stensor.Mat3) Decomposition {
	if isDiagonal(a) {
		return trivial(a)
	}
	b, scale := scaled(a)
	s, j2, j3 := deviator(b)
	if j2 == 0 {
		return trivial(a)
	}
	Δ := math.Max(4.0*j2*j2*j2-27.0*j3*j3, 0)
	θ := math.Atan2(math.Sqrt(Δ), 3.0*math.Sqrt(3.0)*j3) / 3.0
	ρ := 2.0 * math.Sqrt(j2/3.0)
	λf := ρ * math.Cos(θ) // largest
	if j3 < 0 {
		λf = ρ * math.Cos(θ+2.0*math.Pi/3.0) // smallest
	}
	v0 := nullVector(s, λf)
	return deflate(b, v0, scale)
}
