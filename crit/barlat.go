// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crit

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/thelfer/tfel-sub004/eig"
	"github.com/thelfer/tfel-sub004/isof"
	"github.com/thelfer/tfel-sub004/stensor"
)

// Hypothesis defines the modelling hypothesis
type Hypothesis int

// modelling hypotheses
const (
	Tridimensional Hypothesis = iota
	PlaneStrain
	PlaneStress
	Axisymmetrical
	AxisymmetricalGeneralisedPlaneStrain
	GeneralisedPlaneStrain
)

// Dim returns the space dimension associated with the hypothesis
func (o Hypothesis) Dim() int {
	switch o {
	case Tridimensional:
		return 3
	case AxisymmetricalGeneralisedPlaneStrain:
		return 1
	}
	return 2
}

// AxesConvention defines how the material frame is related to the axes of 2D and 1D
// computations
type AxesConvention int

// axes conventions
const (
	Default AxesConvention = iota // material axes 1, 2 and 3 are x, y and z
	Pipe                          // material axes are (r, z, θ): axes 2 and 3 are swapped in 2D and 1D
)

// BarlatCoefficients holds c12, c21, c13, c31, c23, c32, c44, c55 and c66
type BarlatCoefficients [9]float64

// names of Barlat coefficients
var barlatNames = [9]string{"12", "21", "13", "31", "23", "32", "44", "55", "66"}

// UnitBarlatCoefficients returns the isotropic set of coefficients
func UnitBarlatCoefficients() BarlatCoefficients {
	return BarlatCoefficients{1, 1, 1, 1, 1, 1, 1, 1, 1}
}

// MakeBarlatLinearTransformation returns the linear transformation
//        ┌                                            ┐
//        │ (c12+c13)/3   -c12/3      -c13/3     0  0  0│
//        │  -c21/3     (c21+c23)/3   -c23/3     0  0  0│
//   L =  │  -c31/3       -c32/3    (c31+c32)/3  0  0  0│
//        │     0            0           0     c44 0  0│
//        │     0            0           0      0 c55 0│
//        │     0            0           0      0  0 c66│
//        └                                            ┘
//  truncated to dimension n. Unit coefficients give the deviatoric projector K
func MakeBarlatLinearTransformation(n int, c BarlatCoefficients) stensor.St2toSt2 {
	c12, c21, c13, c31, c23, c32 := c[0], c[1], c[2], c[3], c[4], c[5]
	var L stensor.St2toSt2
	L.N = 3
	L.C[0][0] = (c12 + c13) / 3.0
	L.C[0][1] = -c12 / 3.0
	L.C[0][2] = -c13 / 3.0
	L.C[1][0] = -c21 / 3.0
	L.C[1][1] = (c21 + c23) / 3.0
	L.C[1][2] = -c23 / 3.0
	L.C[2][0] = -c31 / 3.0
	L.C[2][1] = -c32 / 3.0
	L.C[2][2] = (c31 + c32) / 3.0
	L.C[3][3] = c[6]
	L.C[4][4] = c[7]
	L.C[5][5] = c[8]
	return L.Truncate(n)
}

// pipePerm swaps yy with zz and xy with xz
var pipePerm = [6]int{0, 2, 1, 4, 3, 5}

// MakeBarlatLinearTransformationWithConvention returns the linear transformation for the given
// modelling hypothesis and axes convention
func MakeBarlatLinearTransformationWithConvention(h Hypothesis, conv AxesConvention, c BarlatCoefficients) stensor.St2toSt2 {
	L := MakeBarlatLinearTransformation(3, c)
	if conv == Pipe && h != Tridimensional {
		L = L.Permute(pipePerm)
	}
	return L.Truncate(h.Dim())
}

// barlatBundle holds the Barlat stress and its derivatives with respect to the eigenvalues of
// the two transformed stresses
type barlatBundle struct {
	Φ      float64      // equivalent stress
	dvp1   stensor.Vec3 // dΦ/dvp1
	dvp2   stensor.Vec3 // dΦ/dvp2
	d2vp1  [6]float64   // d²Φ/dvp1²: 00, 11, 22, 01, 02, 12
	d2vp2  [6]float64   // d²Φ/dvp2²: 00, 11, 22, 01, 02, 12
	d2vp12 [9]float64   // d²Φ/dvp1dvp2: [i*3+j]
}

// packed indices of symmetric 3x3 matrices
var sym6 = [3][3]int{{0, 3, 4}, {3, 1, 5}, {4, 5, 2}}

// unpack6 converts packed symmetric values into a 3x3 matrix
func unpack6(v [6]float64) (m [3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = v[sym6[i][j]]
		}
	}
	return
}

// barlatPotential computes
//   Φ = (¼ Σ_i Σ_j |vp1_i - vp2_j|^a)^(1/a)
// and its derivatives. ok is false if max|vp1_i - vp2_j| < eps
func barlatPotential(vp1, vp2 stensor.Vec3, a, eps float64, order int) (b barlatBundle, ok bool) {
	var scale float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			scale = math.Max(scale, math.Abs(vp1[i]-vp2[j]))
		}
	}
	if scale < eps {
		return
	}
	ok = true
	x1, x2 := vp1.Scale(1.0/scale), vp2.Scale(1.0/scale)
	var ψ float64
	var dψ1, dψ2 stensor.Vec3
	var d2ψ1, d2ψ2 stensor.Vec3
	var d2ψ12 [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d := x1[i] - x2[j]
			ψ += absPow(d, a) / 4.0
			if order < 1 {
				continue
			}
			pm2 := absPowm2(d, a, eps/scale)
			dψ1[i] += a * pm2 * d / 4.0
			dψ2[j] -= a * pm2 * d / 4.0
			if order < 2 {
				continue
			}
			c := a * (a - 1) * pm2 / 4.0
			d2ψ1[i] += c
			d2ψ2[j] += c
			d2ψ12[i][j] = -c
		}
	}
	b.Φ = scale * math.Pow(ψ, 1.0/a)
	if order < 1 {
		return
	}
	c1 := math.Pow(ψ, 1.0/a-1) / a
	b.dvp1 = dψ1.Scale(c1)
	b.dvp2 = dψ2.Scale(c1)
	if order < 2 {
		return
	}
	c2 := (1.0/a - 1) * math.Pow(ψ, 1.0/a-2) / a
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			k := sym6[i][j]
			b.d2vp1[k] = c2 * dψ1[i] * dψ1[j] / scale
			b.d2vp2[k] = c2 * dψ2[i] * dψ2[j] / scale
			if i == j {
				b.d2vp1[k] += c1 * d2ψ1[i] / scale
				b.d2vp2[k] += c1 * d2ψ2[i] / scale
			}
		}
		for j := 0; j < 3; j++ {
			b.d2vp12[i*3+j] = (c2*dψ1[i]*dψ2[j] + c1*d2ψ12[i][j]) / scale
		}
	}
	return
}

// BarlatStress computes the Barlat equivalent stress
//   Φ = (¼ Σ_i Σ_j |vp1_i - vp2_j|^a)^(1/a)
//  where vp1 and vp2 are the eigenvalues of L1:s and L2:s. Φ = 0 if max|vp1_i - vp2_j| < eps
func BarlatStress(s stensor.Stensor, l1, l2 stensor.St2toSt2, a, eps float64, kind eig.Kind) float64 {
	d1 := eig.Compute(l1.MatVec(s), kind, eig.Undefined)
	d2 := eig.Compute(l2.MatVec(s), kind, eig.Undefined)
	b, _ := barlatPotential(d1.Vals, d2.Vals, a, eps, 0)
	return b.Φ
}

// BarlatStressNormal computes the Barlat stress and its derivative
//   dΦ/ds = L1ᵀ:(Σ dΦ/dvp1_i n1i⊗n1i) + L2ᵀ:(Σ dΦ/dvp2_i n2i⊗n2i)
func BarlatStressNormal(s stensor.Stensor, l1, l2 stensor.St2toSt2, a, eps float64, kind eig.Kind) (Φ float64, n stensor.Stensor) {
	n.N = s.N
	d1 := eig.Compute(l1.MatVec(s), kind, eig.Undefined)
	d2 := eig.Compute(l2.MatVec(s), kind, eig.Undefined)
	b, ok := barlatPotential(d1.Vals, d2.Vals, a, eps, 1)
	if !ok {
		return
	}
	Φ = b.Φ
	n = l1.TMatVec(isof.FromValues(d1, s.N, b.dvp1)).Add(l2.TMatVec(isof.FromValues(d2, s.N, b.dvp2)))
	return
}

// BarlatStressSecondDerivative computes the Barlat stress, its derivative and its second
// derivative
//   d²Φ/ds² = L1ᵀ·D11·L1 + L2ᵀ·D22·L2 + L1ᵀ·D12·L2 + (L1ᵀ·D12·L2)ᵀ
//  where D11 and D22 are the derivatives of the normals with respect to L1:s and L2:s and
//  D12 = Σ d²Φ/dvp1_i dvp2_j n1i⊗n1i⊗n2j⊗n2j
func BarlatStressSecondDerivative(s stensor.Stensor, l1, l2 stensor.St2toSt2, a, eps float64, kind eig.Kind) (Φ float64, n stensor.Stensor, dn stensor.St2toSt2) {
	n.N, dn.N = s.N, s.N
	d1 := eig.Compute(l1.MatVec(s), kind, eig.Undefined)
	d2 := eig.Compute(l2.MatVec(s), kind, eig.Undefined)
	b, ok := barlatPotential(d1.Vals, d2.Vals, a, eps, 2)
	if !ok {
		return
	}
	Φ = b.Φ
	n = l1.TMatVec(isof.FromValues(d1, s.N, b.dvp1)).Add(l2.TMatVec(isof.FromValues(d2, s.N, b.dvp2)))

	// diagonal blocks
	D11 := isof.SpectralDerivative(d1, b.dvp1, unpack6(b.d2vp1), eps, s.N)
	D22 := isof.SpectralDerivative(d2, b.dvp2, unpack6(b.d2vp2), eps, s.N)

	// cross block
	N1 := eig.Eigenprojectors(d1, s.N)
	N2 := eig.Eigenprojectors(d2, s.N)
	D12 := stensor.Zero4(s.N)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D12 = D12.AddDyad(b.d2vp12[i*3+j], N1[i], N2[j])
		}
	}
	l1t, l2t := l1.Transpose(), l2.Transpose()
	cross := l1t.Mul(D12).Mul(l2)
	dn = l1t.Mul(D11).Mul(l1).Add(l2t.Mul(D22).Mul(l2)).Add(cross).Add(cross.Transpose())
	return
}

// Barlat implements the Barlat (Yld2004-18p) criterion
type Barlat struct {
	L1     stensor.St2toSt2 // first linear transformation
	L2     stensor.St2toSt2 // second linear transformation
	A      float64          // exponent
	Eps    float64          // numerical floor
	Solver eig.Kind         // eigensolver
}

// add criterion to factory
func init() {
	allocators["barlat"] = func() Criterion { return new(Barlat) }
}

// Init initialises criterion
//  Parameters: a, eps, solver, cp12, cp21, ..., cp66 (L1), cpp12, ..., cpp66 (L2) and pipe (1 selects
//  the Pipe axes convention). Missing coefficients are equal to 1
func (o *Barlat) Init(ndim int, prms dbf.Params) (err error) {
	o.A, o.Eps, o.Solver = 8, DefaultEps, DefaultSolver
	c1, c2 := UnitBarlatCoefficients(), UnitBarlatCoefficients()
	conv := Default
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "eps":
			o.Eps = p.V
		case "solver":
			if o.Solver, err = solverPrm(p); err != nil {
				return
			}
		case "pipe":
			if p.V > 0 {
				conv = Pipe
			}
		default:
			found := false
			for k, name := range barlatNames {
				if p.N == "cp"+name {
					c1[k], found = p.V, true
				}
				if p.N == "cpp"+name {
					c2[k], found = p.V, true
				}
			}
			if !found {
				return chk.Err("barlat: parameter named %q is invalid", p.N)
			}
		}
	}
	if o.A < 1 {
		return chk.Err("barlat: exponent must be greater than or equal to 1. a = %g is invalid", o.A)
	}
	h := Tridimensional
	switch ndim {
	case 1:
		h = AxisymmetricalGeneralisedPlaneStrain
	case 2:
		h = PlaneStrain
	}
	o.L1 = MakeBarlatLinearTransformationWithConvention(h, conv, c1)
	o.L2 = MakeBarlatLinearTransformationWithConvention(h, conv, c2)
	return
}

// Stress computes Φ
func (o Barlat) Stress(s stensor.Stensor) float64 {
	return BarlatStress(s, o.L1, o.L2, o.A, o.Eps, o.Solver)
}

// Normal computes Φ and dΦ/ds
func (o Barlat) Normal(s stensor.Stensor) (float64, stensor.Stensor) {
	return BarlatStressNormal(s, o.L1, o.L2, o.A, o.Eps, o.Solver)
}

// SecondDerivative computes Φ, dΦ/ds and d²Φ/ds²
func (o Barlat) SecondDerivative(s stensor.Stensor) (float64, stensor.Stensor, stensor.St2toSt2) {
	return BarlatStressSecondDerivative(s, o.L1, o.L2, o.A, o.Eps, o.Solver)
}
