// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stensor

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// CheckStensor compares two tensors component-wise
func CheckStensor(tst *testing.T, msg string, tol float64, res, correct Stensor) {
	if res.N != correct.N {
		tst.Errorf("%s: dimensions differ: %d != %d\n", msg, res.N, correct.N)
		return
	}
	chk.Array(tst, msg, tol, res.Slice(), correct.Slice())
}

// CheckSt2toSt2 compares two operators component-wise
func CheckSt2toSt2(tst *testing.T, msg string, tol float64, res, correct St2toSt2) {
	if res.N != correct.N {
		tst.Errorf("%s: dimensions differ: %d != %d\n", msg, res.N, correct.N)
		return
	}
	chk.Deep2(tst, msg, tol, res.Rows(), correct.Rows())
}

// CheckDeriv compares ana with the numerical derivative of f @ s. The tolerance is relative to
// max(1, max|ana|)
func CheckDeriv(tst *testing.T, msg string, tol float64, ana, s Stensor, h float64, verb bool, f func(s Stensor) float64) {
	tol *= math.Max(1, ana.MaxAbs())
	chk.DerivScaVec(tst, msg, tol, ana.Slice(), s.Slice(), h, verb, func(x []float64) float64 {
		return f(New(s.N, x...))
	})
}

// CheckDeriv2 compares ana with the numerical derivative of F @ s. The tolerance is relative to
// max(1, max|ana|)
func CheckDeriv2(tst *testing.T, msg string, tol float64, ana St2toSt2, s Stensor, h float64, verb bool, f func(s Stensor) Stensor) {
	tol *= math.Max(1, ana.MaxAbs())
	chk.DerivVecVec(tst, msg, tol, ana.Rows(), s.Slice(), h, verb, func(res, x []float64) {
		copy(res, f(New(s.N, x...)).Slice())
	})
}

// IsFinite tells whether all components of the operator are finite
func IsFinite(o St2toSt2) bool {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if math.IsNaN(o.C[i][j]) || math.IsInf(o.C[i][j], 0) {
				return false
			}
		}
	}
	return true
}
