// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/thelfer/tfel-sub004/stensor"
)

// SmallElasticity implements linear isotropic elasticity for small strains
type SmallElasticity struct {
	Ndim int     // space dimension
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	K    float64 // bulk modulus
	G    float64 // shear modulus
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(SmallElasticity) }
}

// Init initialises model
func (o *SmallElasticity) Init(ndim int, prms dbf.Params) (err error) {
	rest, err := o.parse(ndim, prms)
	if err != nil {
		return
	}
	if len(rest) > 0 {
		return chk.Err("lin-elast: parameter named %q is incorrect", rest[0].N)
	}
	return
}

// parse reads the elastic parameters and returns the ones that were not consumed
//  Either {E, nu} or {K, G} must be given
func (o *SmallElasticity) parse(ndim int, prms dbf.Params) (rest dbf.Params, err error) {
	o.Ndim = ndim
	var hasE, hasNu, hasK, hasG bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasNu = p.V, true
		case "K":
			o.K, hasK = p.V, true
		case "G":
			o.G, hasG = p.V, true
		default:
			rest = append(rest, p)
		}
	}
	switch {
	case hasE && hasNu:
		if o.Nu <= -1 || o.Nu >= 0.5 {
			return nil, chk.Err("Poisson's coefficient must be in (-1, 0.5). nu=%g", o.Nu)
		}
		o.K = Calc_K_from_Enu(o.E, o.Nu)
		o.G = Calc_G_from_Enu(o.E, o.Nu)
	case hasK && hasG:
		o.E = Calc_E_from_KG(o.K, o.G)
		o.Nu = Calc_nu_from_KG(o.K, o.G)
	default:
		return nil, chk.Err("elastic parameters are missing: either {E, nu} or {K, G} must be given")
	}
	err = checkModuli(o.K, o.G)
	return
}

// GetPrms gets (an example) of parameters
func (o SmallElasticity) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 200000},
		&dbf.P{N: "nu", V: 0.3},
	}
}

// InitIntVars initialises internal (secondary) variables
func (o SmallElasticity) InitIntVars(σ stensor.Stensor) (s *State, err error) {
	s = NewState(o.Ndim, 0)
	s.Sig = σ
	s.EpsE = o.Compliance().MatVec(σ)
	return
}

// Update updates stresses for given strain increment
func (o SmallElasticity) Update(s *State, Δε stensor.Stensor) (err error) {
	s.EpsE = s.EpsE.Add(Δε)
	s.Sig = s.Sig.Add(o.De().MatVec(Δε))
	return
}

// CalcD computes D = dσ_new/dε_new
func (o SmallElasticity) CalcD(s *State, firstIt bool) (stensor.St2toSt2, error) {
	return o.De(), nil
}

// De returns the elastic stiffness: 3K J + 2G K with J = I⊗I/3
func (o SmallElasticity) De() stensor.St2toSt2 {
	return stensor.IxI(o.Ndim).Scale(o.K).AddScaled(2.0*o.G, stensor.K(o.Ndim))
}

// Compliance returns the inverse of De
func (o SmallElasticity) Compliance() stensor.St2toSt2 {
	return stensor.IxI(o.Ndim).Scale(1.0/(9.0*o.K)).AddScaled(1.0/(2.0*o.G), stensor.K(o.Ndim))
}

// ElastUpdate updates state with an elastic response
func (o SmallElasticity) ElastUpdate(s *State, ε stensor.Stensor) {
	s.EpsE = ε
	s.Sig = o.De().MatVec(ε)
}
