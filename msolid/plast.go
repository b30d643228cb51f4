// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/thelfer/tfel-sub004/crit"
	"github.com/thelfer/tfel-sub004/stensor"
	"gonum.org/v1/gonum/mat"
)

// Plasticity implements associated plasticity with linear isotropic hardening:
//  f(σ, α) = Φ(σ) - (σy0 + H α)
// where Φ is the equivalent stress of a yield criterion. The stress update is the implicit
// (backward-Euler) return mapping:
//  σ = σtr - Δγ De:n(σ)    f(σ, α0 + Δγ) = 0
// solved with Newton's method on the unknowns {σ, Δγ}
type Plasticity struct {
	SmallElasticity
	Crit  crit.Criterion // equivalent stress
	Name  string         // criterion name
	Sig0  float64        // initial yield stress
	H     float64        // hardening modulus
	Tol   float64        // tolerance on the residuals, relative to Sig0
	MaxIt int            // maximum number of Newton iterations
	MaxLs int            // maximum number of step halvings per Newton iteration
}

// add models to factory; one for each criterion
func init() {
	for _, name := range crit.Names() {
		cname := name
		allocators["plast-"+cname] = func() Model { return &Plasticity{Name: cname} }
	}
}

// Init initialises model
func (o *Plasticity) Init(ndim int, prms dbf.Params) (err error) {

	// elastic parameters
	rest, err := o.SmallElasticity.parse(ndim, prms)
	if err != nil {
		return
	}

	// plastic parameters
	o.Tol, o.MaxIt, o.MaxLs = 1e-10, 20, 8
	var cprms dbf.Params
	for _, p := range rest {
		switch p.N {
		case "sig0":
			o.Sig0 = p.V
		case "H":
			o.H = p.V
		case "tol":
			o.Tol = p.V
		case "maxit":
			o.MaxIt = int(p.V)
		case "maxls":
			o.MaxLs = int(p.V)
		default:
			cprms = append(cprms, p)
		}
	}
	if o.Sig0 <= 0 {
		return chk.Err("plast-%s: initial yield stress sig0 must be positive. sig0=%g", o.Name, o.Sig0)
	}
	if o.H < 0 {
		return chk.Err("plast-%s: softening is not supported. H=%g", o.Name, o.H)
	}
	if o.MaxIt < 1 || o.MaxLs < 1 {
		return chk.Err("plast-%s: maxit and maxls must be at least 1", o.Name)
	}

	// yield criterion
	o.Crit, err = crit.New(o.Name, ndim, cprms)
	return
}

// GetPrms gets (an example) of parameters
func (o Plasticity) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 200000},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "sig0", V: 150},
		&dbf.P{N: "H", V: 1000},
	}
}

// InitIntVars initialises internal (secondary) variables
func (o Plasticity) InitIntVars(σ stensor.Stensor) (s *State, err error) {
	if f := o.yieldFunc(σ, 0); f > o.Tol*o.Sig0 {
		return nil, chk.Err("plast-%s: initial stress is outside the elastic domain. f=%g", o.Name, f)
	}
	s = NewState(o.Ndim, 1)
	s.Sig = σ
	s.EpsE = o.Compliance().MatVec(σ)
	return
}

// Info returns the number of internal variables and yield surfaces
func (o Plasticity) Info() (nalp, nsurf int) {
	return 1, 1
}

// Criterion returns the equivalent stress
func (o Plasticity) Criterion() crit.Criterion {
	return o.Crit
}

// YieldFuncs computes the yield functions
func (o Plasticity) YieldFuncs(s *State) []float64 {
	return []float64{o.yieldFunc(s.Sig, s.Alp[0])}
}

func (o Plasticity) yieldFunc(σ stensor.Stensor, α float64) float64 {
	return o.Crit.Stress(σ) - o.Sig0 - o.H*α
}

// Update updates stresses for given strain increment
//  The state is only modified if the update succeeds
func (o *Plasticity) Update(s *State, Δε stensor.Stensor) (err error) {

	// trial state
	De := o.De()
	σtr := s.Sig.Add(De.MatVec(Δε))
	εetr := s.EpsE.Add(Δε)
	α0 := s.Alp[0]

	// elastic update
	if o.yieldFunc(σtr, α0) <= o.Tol*o.Sig0 {
		s.Sig, s.EpsE = σtr, εetr
		s.Loading, s.Dgam, s.Nit = false, 0, 0
		return
	}

	// return mapping
	σ, Δγ := σtr, 0.0
	m := σ.Size()
	jac := mat.NewDense(m+1, m+1, nil)
	rhs := mat.NewVecDense(m+1, nil)
	var dx mat.VecDense
	var n stensor.Stensor
	var nit int
	for it := 0; ; it++ {

		// residuals
		var Φ float64
		var dn stensor.St2toSt2
		Φ, n, dn = o.Crit.SecondDerivative(σ)
		rσ, rf := o.residuals(De, σtr, σ, n, Φ, α0, Δγ)
		rnorm := math.Max(rσ.MaxAbs(), math.Abs(rf))
		if rnorm <= o.Tol*o.Sig0 {
			nit = it
			break
		}
		if it == o.MaxIt {
			return chk.Err("plast-%s: return mapping did not converge after %d iterations. |r|=%g", o.Name, it, rnorm)
		}

		// Jacobian
		o.jacobian(jac, De, n, dn, Δγ)
		for i := 0; i < m; i++ {
			rhs.SetVec(i, -rσ.C[i])
		}
		rhs.SetVec(m, -rf)

		// Newton direction
		err = dx.SolveVec(jac, rhs)
		if err != nil {
			return chk.Err("plast-%s: cannot solve Newton system:\n%v", o.Name, err)
		}

		// backtracking on the residual norm
		β := 1.0
		var σnew stensor.Stensor
		var Δγnew float64
		for k := 0; k < o.MaxLs; k++ {
			σnew, Δγnew = σ, Δγ+β*dx.AtVec(m)
			for i := 0; i < m; i++ {
				σnew.C[i] += β * dx.AtVec(i)
			}
			Φnew, nnew := o.Crit.Normal(σnew)
			rσnew, rfnew := o.residuals(De, σtr, σnew, nnew, Φnew, α0, Δγnew)
			if math.Max(rσnew.MaxAbs(), math.Abs(rfnew)) < rnorm {
				break
			}
			β /= 2.0
		}
		σ, Δγ = σnew, Δγnew
	}
	if Δγ < 0 {
		return chk.Err("plast-%s: return mapping yields a negative plastic multiplier. Δγ=%g", o.Name, Δγ)
	}

	// set state
	s.Sig = σ
	s.Dgam = Δγ
	s.Alp[0] = α0 + Δγ
	s.EpsE = εetr.AddScaled(-Δγ, n)
	s.Loading = true
	s.Nit = nit
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
//  D = [J⁻¹]σσ De  with  J = [ I + Δγ De:dn   De:n ]
//                            [ nᵀ             -H   ]
func (o *Plasticity) CalcD(s *State, firstIt bool) (D stensor.St2toSt2, err error) {

	// set first Δγ
	if firstIt {
		s.Dgam = 0
	}

	// elastic
	De := o.De()
	if !s.Loading {
		return De, nil
	}

	// elastoplastic => consistent stiffness
	_, n, dn := o.Crit.SecondDerivative(s.Sig)
	m := s.Sig.Size()
	jac := mat.NewDense(m+1, m+1, nil)
	o.jacobian(jac, De, n, dn, s.Dgam)
	var inv mat.Dense
	err = inv.Inverse(jac)
	if err != nil {
		return D, chk.Err("plast-%s: cannot compute consistent tangent:\n%v", o.Name, err)
	}
	var Jσσ stensor.St2toSt2
	Jσσ.N = o.Ndim
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			Jσσ.C[i][j] = inv.At(i, j)
		}
	}
	return Jσσ.Mul(De), nil
}

// residuals computes rσ = σ - σtr + Δγ De:n and rf = Φ - σy
func (o Plasticity) residuals(De stensor.St2toSt2, σtr, σ, n stensor.Stensor, Φ, α0, Δγ float64) (rσ stensor.Stensor, rf float64) {
	rσ = σ.Sub(σtr).AddScaled(Δγ, De.MatVec(n))
	rf = Φ - o.Sig0 - o.H*(α0+Δγ)
	return
}

// jacobian computes the derivative of the residuals with respect to {σ, Δγ}
func (o Plasticity) jacobian(jac *mat.Dense, De stensor.St2toSt2, n stensor.Stensor, dn stensor.St2toSt2, Δγ float64) {
	m := n.Size()
	A := stensor.Id4(o.Ndim).AddScaled(Δγ, De.Mul(dn))
	Dn := De.MatVec(n)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			jac.Set(i, j, A.C[i][j])
		}
		jac.Set(i, m, Dn.C[i])
		jac.Set(m, i, n.C[i])
	}
	jac.Set(m, m, -o.H)
}
