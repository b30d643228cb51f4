// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/thelfer/tfel-sub004/crit"
	"github.com/thelfer/tfel-sub004/stensor"
)

// Locus computes the yield locus Φ(σ) = sig0 of a criterion along npts+1 directions covering
// [0, 2π] in one of the planes:
//  "s1s2" -- σ = diag(x, y, 0)
//  "pi"   -- σ = x e1 + y e2 with e1 = (2,-1,-1)/√6 and e2 = (0,1,-1)/√2 (deviatoric plane)
// The equivalent stress is assumed to be positively homogeneous of degree one
func Locus(c crit.Criterion, ndim int, sig0 float64, npts int, plane string) (x, y []float64, err error) {
	var e1, e2 stensor.Stensor
	switch plane {
	case "s1s2":
		e1, e2 = stensor.New(ndim, 1), stensor.New(ndim, 0, 1)
	case "pi":
		e1 = stensor.New(ndim, 2, -1, -1).Scale(1.0 / math.Sqrt(6))
		e2 = stensor.New(ndim, 0, 1, -1).Scale(1.0 / math.Sqrt2)
	default:
		return nil, nil, chk.Err("plane %q is invalid; options are \"s1s2\" and \"pi\"", plane)
	}
	if npts < 1 {
		return nil, nil, chk.Err("number of points must be at least 1. npts=%d", npts)
	}
	x = make([]float64, npts+1)
	y = make([]float64, npts+1)
	for i := 0; i <= npts; i++ {
		θ := 2.0 * math.Pi * float64(i) / float64(npts)
		cs, sn := math.Cos(θ), math.Sin(θ)
		Φ := c.Stress(e1.Scale(cs).AddScaled(sn, e2))
		if !(Φ > 0) || math.IsInf(Φ, 0) {
			return nil, nil, chk.Err("equivalent stress along θ=%g is not positive. Φ=%g", θ, Φ)
		}
		r := sig0 / Φ
		x[i], y[i] = r*cs, r*sn
	}
	return
}
