// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crit

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/thelfer/tfel-sub004/stensor"
)

// J2OCoefficients holds a1, ..., a6
type J2OCoefficients [6]float64

// J3OCoefficients holds b1, ..., b11
type J3OCoefficients [11]float64

// j2oMatrix returns M such that J2O = ½ s:M:s with
//   J2O = a1/6 (sxx-syy)² + a2/6 (syy-szz)² + a3/6 (sxx-szz)² + a4 sxy² + a5 sxz² + a6 syz²
func j2oMatrix(n int, a J2OCoefficients) stensor.St2toSt2 {
	var M stensor.St2toSt2
	M.N = 3
	M.C[0][0] = (a[0] + a[2]) / 3.0
	M.C[1][1] = (a[0] + a[1]) / 3.0
	M.C[2][2] = (a[1] + a[2]) / 3.0
	M.C[0][1], M.C[1][0] = -a[0]/3.0, -a[0]/3.0
	M.C[1][2], M.C[2][1] = -a[1]/3.0, -a[1]/3.0
	M.C[0][2], M.C[2][0] = -a[2]/3.0, -a[2]/3.0
	M.C[3][3] = a[3]
	M.C[4][4] = a[4]
	M.C[5][5] = a[5]
	return M.Truncate(n)
}

// J2O computes the generalisation of J2 to orthotropic materials. J2O = J2 for unit coefficients
func J2O(s stensor.Stensor, a J2OCoefficients) float64 {
	return j2oMatrix(s.N, a).MatVec(s).Dot(s) / 2.0
}

// J2ODerivative computes dJ2O/ds
func J2ODerivative(s stensor.Stensor, a J2OCoefficients) stensor.Stensor {
	return j2oMatrix(s.N, a).MatVec(s)
}

// J2OSecondDerivative computes d²J2O/ds²
func J2OSecondDerivative(n int, a J2OCoefficients) stensor.St2toSt2 {
	return j2oMatrix(n, a)
}

// monomial holds c s[i] s[j] s[k]
type monomial struct {
	c float64
	i [3]int
}

// j3oMonomials returns J3O as a sum of cubic monomials of the components of s
func j3oMonomials(b J3OCoefficients) []monomial {
	b1, b2, b3, b4, b5 := b[0], b[1], b[2], b[3], b[4]
	b6, b7, b8, b9, b10, b11 := b[5], b[6], b[7], b[8], b[9], b[10]
	return []monomial{
		{(b1 + b2) / 27.0, [3]int{0, 0, 0}},
		{(b3 + b4) / 27.0, [3]int{1, 1, 1}},
		{(2*(b1+b4) - b2 - b3) / 27.0, [3]int{2, 2, 2}},
		{-b1 / 9.0, [3]int{0, 0, 1}},
		{-b2 / 9.0, [3]int{0, 0, 2}},
		{-b3 / 9.0, [3]int{1, 1, 2}},
		{-b4 / 9.0, [3]int{0, 1, 1}},
		{-(b1 - b2 + b4) / 9.0, [3]int{0, 2, 2}},
		{-(b1 - b3 + b4) / 9.0, [3]int{1, 2, 2}},
		{2 * (b1 + b4) / 9.0, [3]int{0, 1, 2}},
		{-b9 / 3.0, [3]int{1, 4, 4}},
		{b8 / 6.0, [3]int{2, 4, 4}},
		{(2*b9 - b8) / 6.0, [3]int{0, 4, 4}},
		{-b10 / 3.0, [3]int{2, 3, 3}},
		{b5 / 6.0, [3]int{1, 3, 3}},
		{(2*b10 - b5) / 6.0, [3]int{0, 3, 3}},
		{-(b6 + b7) / 6.0, [3]int{0, 5, 5}},
		{b6 / 6.0, [3]int{1, 5, 5}},
		{b7 / 6.0, [3]int{2, 5, 5}},
		{b11 / math.Sqrt2, [3]int{3, 4, 5}},
	}
}

// J3O computes the generalisation of J3 to orthotropic materials. J3O = J3 for unit coefficients
func J3O(s stensor.Stensor, b J3OCoefficients) (res float64) {
	for _, m := range j3oMonomials(b) {
		res += m.c * s.C[m.i[0]] * s.C[m.i[1]] * s.C[m.i[2]]
	}
	return
}

// J3ODerivative computes dJ3O/ds
func J3ODerivative(s stensor.Stensor, b J3OCoefficients) (res stensor.Stensor) {
	res.N = s.N
	for _, m := range j3oMonomials(b) {
		for p := 0; p < 3; p++ {
			q, r := m.i[(p+1)%3], m.i[(p+2)%3]
			res.C[m.i[p]] += m.c * s.C[q] * s.C[r]
		}
	}
	return res.Truncate(s.N)
}

// J3OSecondDerivative computes d²J3O/ds²
func J3OSecondDerivative(s stensor.Stensor, b J3OCoefficients) (res stensor.St2toSt2) {
	res.N = 3
	for _, m := range j3oMonomials(b) {
		for p := 0; p < 3; p++ {
			for q := 0; q < 3; q++ {
				if q == p {
					continue
				}
				r := 3 - p - q
				res.C[m.i[p]][m.i[q]] += m.c * s.C[m.i[r]]
			}
		}
	}
	return res.Truncate(s.N)
}

// orthotropicFactor returns (3^(-3/2) - 2c/27)^(-1/3) such that Φ = σ in uniaxial tension for
// unit coefficients
func orthotropicFactor(c float64) float64 {
	return math.Pow(math.Pow(3, -1.5)-2*c/27.0, -1.0/3.0)
}

// OrthotropicStress computes the Cazacu-Barlat (2004) equivalent stress
//   Φ = k (J2O^(3/2) - c J3O)^(1/3)
//  which reduces to the von Mises stress for unit coefficients and c = 0
func OrthotropicStress(s stensor.Stensor, a J2OCoefficients, b J3OCoefficients, c float64) float64 {
	j2 := math.Max(J2O(s, a), 0)
	return orthotropicFactor(c) * math.Cbrt(j2*math.Sqrt(j2)-c*J3O(s, b))
}

// OrthotropicStressNormal computes the orthotropic stress and its derivative. The derivative is
// zero if Φ < eps
func OrthotropicStressNormal(s stensor.Stensor, a J2OCoefficients, b J3OCoefficients, c, eps float64) (Φ float64, n stensor.Stensor) {
	n.N = s.N
	Φ = OrthotropicStress(s, a, b, c)
	if Φ < eps {
		return
	}
	k := orthotropicFactor(c)
	j2 := J2O(s, a)
	f := j2*math.Sqrt(j2) - c*J3O(s, b)
	df := J2ODerivative(s, a).Scale(1.5*math.Sqrt(j2)).AddScaled(-c, J3ODerivative(s, b))
	n = df.Scale(k / (3.0 * math.Cbrt(f*f)))
	return
}

// OrthotropicStressSecondDerivative computes the orthotropic stress and its first and second
// derivatives. The derivatives are zero if Φ < eps
func OrthotropicStressSecondDerivative(s stensor.Stensor, a J2OCoefficients, b J3OCoefficients, c, eps float64) (Φ float64, n stensor.Stensor, dn stensor.St2toSt2) {
	n.N, dn.N = s.N, s.N
	Φ = OrthotropicStress(s, a, b, c)
	if Φ < eps {
		return
	}
	k := orthotropicFactor(c)
	j2 := J2O(s, a)
	sq := math.Sqrt(j2)
	f := j2*sq - c*J3O(s, b)
	dj2 := J2ODerivative(s, a)
	df := dj2.Scale(1.5*sq).AddScaled(-c, J3ODerivative(s, b))
	d2f := J2OSecondDerivative(s.N, a).Scale(1.5*sq).
		AddDyad(0.75/sq, dj2, dj2).
		AddScaled(-c, J3OSecondDerivative(s, b))
	f23 := math.Cbrt(f * f)
	n = df.Scale(k / (3.0 * f23))
	dn = d2f.Scale(k/(3.0*f23)).AddDyad(-2.0*k/(9.0*f23*f), df, df)
	return
}

// Orthotropic implements the Cazacu-Barlat orthotropic criterion
type Orthotropic struct {
	A   J2OCoefficients // coefficients of J2O
	B   J3OCoefficients // coefficients of J3O
	C   float64         // weight of J3O
	Eps float64         // numerical floor
}

// add criterion to factory
func init() {
	allocators["orthotropic"] = func() Criterion { return new(Orthotropic) }
}

// Init initialises criterion
//  Parameters: a1, ..., a6, b1, ..., b11, c, eps and solver. Missing coefficients are equal to 1
func (o *Orthotropic) Init(ndim int, prms dbf.Params) (err error) {
	for i := range o.A {
		o.A[i] = 1
	}
	for i := range o.B {
		o.B[i] = 1
	}
	o.C, o.Eps = 0, DefaultEps
	for _, p := range prms {
		switch p.N {
		case "c":
			o.C = p.V
		case "eps":
			o.Eps = p.V
		case "solver":
			if _, err = solverPrm(p); err != nil {
				return
			}
		default:
			found := false
			for i := range o.A {
				if p.N == io.Sf("a%d", i+1) {
					o.A[i], found = p.V, true
				}
			}
			for i := range o.B {
				if p.N == io.Sf("b%d", i+1) {
					o.B[i], found = p.V, true
				}
			}
			if !found {
				return chk.Err("orthotropic: parameter named %q is invalid", p.N)
			}
		}
	}
	if orthotropicFactor(o.C) <= 0 || math.IsNaN(orthotropicFactor(o.C)) {
		return chk.Err("orthotropic: c = %g is invalid", o.C)
	}
	return
}

// Stress computes Φ
func (o Orthotropic) Stress(s stensor.Stensor) float64 {
	return OrthotropicStress(s, o.A, o.B, o.C)
}

// Normal computes Φ and dΦ/ds
func (o Orthotropic) Normal(s stensor.Stensor) (float64, stensor.Stensor) {
	return OrthotropicStressNormal(s, o.A, o.B, o.C, o.Eps)
}

// SecondDerivative computes Φ, dΦ/ds and d²Φ/ds²
func (o Orthotropic) SecondDerivative(s stensor.Stensor) (float64, stensor.Stensor, stensor.St2toSt2) {
	return OrthotropicStressSecondDerivative(s, o.A, o.B, o.C, o.Eps)
}
