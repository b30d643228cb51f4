// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package invs implements invariants of symmetric tensors and their first and second
// derivatives
package invs

import (
	"math"

	"github.com/thelfer/tfel-sub004/stensor"
)

// I1 returns tr(s)
func I1(s stensor.Stensor) float64 {
	return s.Trace()
}

// I2 returns (tr(s)² - s:s)/2
func I2(s stensor.Stensor) float64 {
	tr := s.Trace()
	return (tr*tr - s.Dot(s)) / 2.0
}

// I3 returns det(s)
func I3(s stensor.Stensor) float64 {
	return s.Det()
}

// J2 returns dev(s):dev(s)/2
func J2(s stensor.Stensor) float64 {
	d := s.Dev()
	return d.Dot(d) / 2.0
}

// J3 returns det(dev(s))
func J3(s stensor.Stensor) float64 {
	return s.Dev().Det()
}

// Sigmaeq returns the von Mises equivalent stress sqrt(3 J2)
func Sigmaeq(s stensor.Stensor) float64 {
	return math.Sqrt(3.0 * J2(s))
}

// I1Derivative returns dI1/ds = Id
func I1Derivative(s stensor.Stensor) stensor.Stensor {
	return stensor.Id(s.N)
}

// I2Derivative returns dI2/ds = I1 Id - s
func I2Derivative(s stensor.Stensor) stensor.Stensor {
	return stensor.Id(s.N).Scale(s.Trace()).Sub(s)
}

// I2SecondDerivative returns d²I2/ds² = Id⊗Id - Id4
func I2SecondDerivative(n int) stensor.St2toSt2 {
	return stensor.IxI(n).Sub(stensor.Id4(n))
}

// J2Derivative returns dJ2/ds = dev(s)
func J2Derivative(s stensor.Stensor) stensor.Stensor {
	return s.Dev()
}

// J2SecondDerivative returns d²J2/ds² = K
func J2SecondDerivative(n int) stensor.St2toSt2 {
	return stensor.K(n)
}

// DeterminantDerivative returns ddet/ds = s² - I1 s + I2 Id (the cofactor of s)
func DeterminantDerivative(s stensor.Stensor) stensor.Stensor {
	return s.Square().AddScaled(-s.Trace(), s).AddScaled(I2(s), stensor.Id(s.N))
}

// DeterminantSecondDerivative returns d²det/ds² = Dsquare(s) - s⊗Id - I1 Id4 + Id⊗(I1 Id - s)
func DeterminantSecondDerivative(s stensor.Stensor) stensor.St2toSt2 {
	id := stensor.Id(s.N)
	tr := s.Trace()
	return stensor.Dsquare(s).
		AddDyad(-1, s, id).
		AddScaled(-tr, stensor.Id4(s.N)).
		AddDyad(1, id, id.Scale(tr).Sub(s))
}

// I3Derivative returns dI3/ds
func I3Derivative(s stensor.Stensor) stensor.Stensor {
	return DeterminantDerivative(s)
}

// I3SecondDerivative returns d²I3/ds²
func I3SecondDerivative(s stensor.Stensor) stensor.St2toSt2 {
	return DeterminantSecondDerivative(s)
}

// DeviatorDeterminantDerivative returns dJ3/ds = K : ddet(dev(s))
func DeviatorDeterminantDerivative(s stensor.Stensor) stensor.Stensor {
	return stensor.K(s.N).MatVec(DeterminantDerivative(s.Dev()))
}

// DeviatorDeterminantSecondDerivative returns d²J3/ds² = K · d²det(dev(s)) · K
func DeviatorDeterminantSecondDerivative(s stensor.Stensor) stensor.St2toSt2 {
	k := stensor.K(s.N)
	return k.Mul(DeterminantSecondDerivative(s.Dev())).Mul(k)
}

// SigmaeqDerivative returns the von Mises stress and its normal n = 3 dev(s)/(2 σeq)
//  The normal is zero if σeq < eps
func SigmaeqDerivative(s stensor.Stensor, eps float64) (seq float64, n stensor.Stensor) {
	seq = Sigmaeq(s)
	n.N = s.N
	if seq < eps {
		return
	}
	n = s.Dev().Scale(1.5 / seq)
	return
}

// SigmaeqSecondDerivative returns the von Mises stress, its normal and the derivative of the
// normal dn/ds = (3/2 K - n⊗n)/σeq
//  Normal and derivative are zero if σeq < eps
func SigmaeqSecondDerivative(s stensor.Stensor, eps float64) (seq float64, n stensor.Stensor, dn stensor.St2toSt2) {
	seq, n = SigmaeqDerivative(s, eps)
	dn.N = s.N
	if seq < eps {
		return
	}
	dn = stensor.K(s.N).Scale(1.5).AddDyad(-1, n, n).Scale(1.0 / seq)
	return
}
