// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/thelfer/tfel-sub004/stensor"

// State holds all continuum mechanics data, including for updating the state
type State struct {

	// essential
	Sig  stensor.Stensor // σ: current Cauchy stress tensor
	EpsE stensor.Stensor // εe: elastic strain

	// for plasticity (if len(α) > 0)
	Alp     []float64 // α: internal variables of rate type [nalp]
	Dgam    float64   // Δγ: increment of Lagrange multiplier
	Loading bool      // unloading flag
	Nit     int       // number of iterations used by the last return mapping
}

// NewState allocates state structure for small strain analyses
func NewState(ndim, nalp int) *State {
	var state State
	state.Sig = stensor.Zero(ndim)
	state.EpsE = stensor.Zero(ndim)
	if nalp > 0 {
		state.Alp = make([]float64, nalp)
	}
	return &state
}

// Set copies states
//  Note: this and other states must have been pre-allocated with the same number of internal variables
func (o *State) Set(other *State) {
	o.Sig = other.Sig
	o.EpsE = other.EpsE
	copy(o.Alp, other.Alp)
	o.Dgam = other.Dgam
	o.Loading = other.Loading
	o.Nit = other.Nit
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(o.Sig.N, len(o.Alp))
	other.Set(o)
	return other
}
