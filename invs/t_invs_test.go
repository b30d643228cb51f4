// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invs

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/thelfer/tfel-sub004/stensor"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

var samples = []stensor.Stensor{
	stensor.New(3, 1.27453824166446, 0.77207083708966, 0.24525337568425, -1.7790370858361e-4, 3.613971630283e-3, -1.7873236537153e-2),
	stensor.New(3, 0.3, -0.2, 0.1, 0.5, -0.4, 0.25),
	stensor.New(3, 150, -20, 35, 40, -10, 15),
	stensor.New(2, 2, -1, 0.5, 0.7),
	stensor.New(1, 3, -2, 1),
}

func Test_invs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invs01. values")

	s := stensor.New(3, 1, 2, 3)
	chk.Float64(tst, "I1", 1e-15, I1(s), 6)
	chk.Float64(tst, "I2", 1e-15, I2(s), 11)
	chk.Float64(tst, "I3", 1e-15, I3(s), 6)
	chk.Float64(tst, "J2", 1e-15, J2(s), 1)
	chk.Float64(tst, "J3", 1e-15, J3(s), 0)
	chk.Float64(tst, "σeq", 1e-15, Sigmaeq(s), 1.7320508075688772)

	// uniaxial
	s = stensor.New(1, 7)
	chk.Float64(tst, "σeq(uniaxial)", 1e-14, Sigmaeq(s), 7)
	chk.Float64(tst, "J3(uniaxial)", 1e-13, J3(s), 2.0*7*7*7/27.0)

	// pure shear
	s = stensor.New(2, 0, 0, 0, 2*stensor.SQ2)
	chk.Float64(tst, "σeq(shear)", 1e-14, Sigmaeq(s), 2*1.7320508075688772)
}

func Test_invs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invs02. first derivatives")

	for k, s := range samples {
		h := 1e-6 * (1 + s.MaxAbs())
		tol := 1e-7 * (1 + s.MaxAbs())
		msg := io.Sf("%d", k)
		stensor.CheckDeriv(tst, "dI1 "+msg, tol, I1Derivative(s), s, h, chk.Verbose, I1)
		stensor.CheckDeriv(tst, "dI2 "+msg, tol, I2Derivative(s), s, h, chk.Verbose, I2)
		stensor.CheckDeriv(tst, "ddet "+msg, tol, DeterminantDerivative(s), s, h, chk.Verbose, I3)
		stensor.CheckDeriv(tst, "dJ2 "+msg, tol, J2Derivative(s), s, h, chk.Verbose, J2)
		stensor.CheckDeriv(tst, "dJ3 "+msg, tol, DeviatorDeterminantDerivative(s), s, h, chk.Verbose, J3)
		_, n := SigmaeqDerivative(s, 1e-12)
		stensor.CheckDeriv(tst, "dσeq "+msg, tol, n, s, h, chk.Verbose, Sigmaeq)
	}
}

func Test_invs03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invs03. second derivatives")

	for k, s := range samples {
		h := 1e-6 * (1 + s.MaxAbs())
		tol := 1e-7 * (1 + s.MaxAbs())
		msg := io.Sf("%d", k)
		stensor.CheckDeriv2(tst, "d²I2 "+msg, tol, I2SecondDerivative(s.N), s, h, chk.Verbose, I2Derivative)
		stensor.CheckDeriv2(tst, "d²det "+msg, tol, DeterminantSecondDerivative(s), s, h, chk.Verbose, DeterminantDerivative)
		stensor.CheckDeriv2(tst, "d²J2 "+msg, tol, J2SecondDerivative(s.N), s, h, chk.Verbose, J2Derivative)
		stensor.CheckDeriv2(tst, "d²J3 "+msg, tol, DeviatorDeterminantSecondDerivative(s), s, h, chk.Verbose, DeviatorDeterminantDerivative)
		_, _, dn := SigmaeqSecondDerivative(s, 1e-12)
		stensor.CheckDeriv2(tst, "d²σeq "+msg, tol, dn, s, h, chk.Verbose, func(s stensor.Stensor) stensor.Stensor {
			_, n := SigmaeqDerivative(s, 1e-12)
			return n
		})
	}
}

func Test_invs04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invs04. identities")

	for k, s := range samples {
		msg := io.Sf("%d", k)
		tol := 1e-13 * (1 + s.MaxAbs()*s.MaxAbs()*s.MaxAbs())

		// det is homogeneous of degree 3
		d1 := DeterminantDerivative(s)
		d2 := DeterminantSecondDerivative(s)
		chk.Float64(tst, "ddet:s = 3 det "+msg, tol, d1.Dot(s), 3*s.Det())
		stensor.CheckStensor(tst, "d²det:s = 2 ddet "+msg, tol, d2.MatVec(s), d1.Scale(2))

		// Cayley-Hamilton: s·ddet(s) = det(s) Id
		m := s.ToMat3().Mul(d1.ToMat3())
		stensor.CheckStensor(tst, "s·cof(s) "+msg, tol, stensor.FromMat3(s.N, m), stensor.Id(s.N).Scale(s.Det()))

		// J3 derivative is deviatoric
		chk.Float64(tst, "tr(dJ3) "+msg, tol, DeviatorDeterminantDerivative(s).Trace(), 0)

		// the von Mises normal has norm sqrt(3/2)
		_, n := SigmaeqDerivative(s, 1e-12)
		chk.Float64(tst, "|n| "+msg, 1e-14, n.Norm(), 1.224744871391589)
	}

	// null tensor
	z := stensor.Zero(3)
	seq, n, dn := SigmaeqSecondDerivative(z, 1e-12)
	chk.Float64(tst, "σeq(0)", 1e-17, seq, 0)
	chk.Float64(tst, "max|n(0)|", 1e-17, n.MaxAbs(), 0)
	chk.Float64(tst, "max|dn(0)|", 1e-17, dn.MaxAbs(), 0)
	chk.Float64(tst, "max|ddet(0)|", 1e-17, DeterminantDerivative(z).MaxAbs(), 0)
	stensor.CheckSt2toSt2(tst, "d²det(0)", 1e-17, DeterminantSecondDerivative(z), stensor.Zero4(3))
	if !stensor.IsFinite(DeviatorDeterminantSecondDerivative(z)) {
		tst.Errorf("d²J3(0) is not finite\n")
	}
}
