// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"math"

	"github.com/thelfer/tfel-sub004/stensor"
)

// HybridTol is the tolerance (relative to max|aij|) on the reconstruction and
// orthonormality residuals above which the hybrid solver switches to its safe solver
var HybridTol = 1e-12

// hybrid runs the fast solver and falls back to the safe one when the result is inaccurate
type hybrid struct {
	fast Solver
	safe Solver
}

func (o hybrid) Solve(a stensor.Mat3) Decomposition {
	d := o.fast.Solve(a)
	scale := a.MaxAbs()
	rebuild, ortho := d.Residual(a)
	if math.IsNaN(rebuild) || math.IsNaN(ortho) || rebuild > HybridTol*scale || ortho > HybridTol {
		return o.safe.Solve(a)
	}
	return d
}
