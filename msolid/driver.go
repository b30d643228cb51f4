// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/thelfer/tfel-sub004/stensor"
)

// Path holds a strain-driven loading path
//  The strains are reached one after the other starting from ε = 0, each segment being divided
//  into Nincs equal increments
type Path struct {
	Ndim  int               // space dimension
	Nincs int               // number of increments per segment
	Eps   []stensor.Stensor // target strains
}

// NewPath returns a new strain path
func NewPath(ndim, nincs int, eps ...stensor.Stensor) (o *Path, err error) {
	if nincs < 1 {
		return nil, chk.Err("number of increments must be at least 1. nincs=%d", nincs)
	}
	for i, e := range eps {
		if e.N != ndim {
			return nil, chk.Err("strain %d has space dimension %d; %d is required", i, e.N, ndim)
		}
	}
	return &Path{ndim, nincs, eps}, nil
}

// Size returns the total number of increments
func (o Path) Size() int {
	return o.Nincs * len(o.Eps)
}

// Driver runs simulations with models for solids
type Driver struct {

	// input
	nsig  int   // number of stress components
	model Small // solid model

	// settings
	Silent bool    // do not show error messages
	CheckD bool    // do check consistent matrix
	TolD   float64 // tolerance to check consistent matrix, relative to max|D|
	StepD  float64 // strain perturbation to check consistent matrix
	VerD   bool    // verbose check of D

	// results
	Res  []*State          // stress/ivs results
	Eps  []stensor.Stensor // strains
	DErr []float64         // maximum relative error between D and its finite-difference approximation
}

// Init initialises driver
func (o *Driver) Init(modelname string, ndim int, prms dbf.Params) (err error) {
	model, err := New(modelname)
	if err != nil {
		return
	}
	var ok bool
	o.model, ok = model.(Small)
	if !ok {
		return chk.Err("model %q is not a small strain model", modelname)
	}
	err = o.model.Init(ndim, prms)
	if err != nil {
		return chk.Err("cannot initialise model %q:\n%v", modelname, err)
	}
	o.nsig = stensor.Size(ndim)
	o.TolD = 1e-5
	o.StepD = 1e-7
	return
}

// Model returns the underlying model
func (o Driver) Model() Small {
	return o.model
}

// Run runs simulation
func (o *Driver) Run(pth *Path) (err error) {

	// initial state
	zero := stensor.Zero(pth.Ndim)
	s, err := o.model.InitIntVars(zero)
	if err != nil {
		return
	}
	o.Res = []*State{s.GetCopy()}
	o.Eps = []stensor.Stensor{zero}
	o.DErr = nil

	// increments
	ε := zero
	for iseg, target := range pth.Eps {
		Δε := target.Sub(ε).Scale(1.0 / float64(pth.Nincs))
		for inc := 0; inc < pth.Nincs; inc++ {

			// update
			s0 := s.GetCopy()
			err = o.model.Update(s, Δε)
			if err != nil {
				if !o.Silent {
					io.Pfred("segment %d, increment %d: %v\n", iseg, inc, err)
				}
				return chk.Err("Update failed at segment %d, increment %d:\n%v", iseg, inc, err)
			}
			ε = ε.Add(Δε)

			// check consistent matrix
			if o.CheckD {
				var D stensor.St2toSt2
				D, err = o.model.CalcD(s, false)
				if err != nil {
					return
				}
				var dnum stensor.St2toSt2
				dnum, err = o.numericalD(s0, Δε)
				if err != nil {
					return
				}
				rerr := dnum.Sub(D).MaxAbs() / math.Max(D.MaxAbs(), 1)
				o.DErr = append(o.DErr, rerr)
				if o.VerD {
					io.Pf("segment %d, increment %d: loading=%v max|D-Dnum|/max|D| = %g\n", iseg, inc, s.Loading, rerr)
				}
				if rerr > o.TolD {
					return chk.Err("consistent matrix is inaccurate at segment %d, increment %d: relative error %g > %g", iseg, inc, rerr, o.TolD)
				}
			}

			// results
			o.Res = append(o.Res, s.GetCopy())
			o.Eps = append(o.Eps, ε)
		}
	}
	return
}

// numericalD computes dσ/dε by central differences of Update from state s0
func (o *Driver) numericalD(s0 *State, Δε stensor.Stensor) (D stensor.St2toSt2, err error) {
	D.N = Δε.N
	for j := 0; j < o.nsig; j++ {
		e := stensor.Basis(Δε.N, j)
		for i := 0; i < o.nsig; i++ {
			D.C[i][j], _ = num.DerivCentral(func(x float64) float64 {
				s := s0.GetCopy()
				if errUp := o.model.Update(s, Δε.AddScaled(x, e)); errUp != nil {
					err = errUp
				}
				return s.Sig.C[i]
			}, 0, o.StepD)
			if err != nil {
				return
			}
		}
	}
	return
}
