// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements small strain models for solids that use the yield criteria of
// package crit
package msolid

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/thelfer/tfel-sub004/crit"
	"github.com/thelfer/tfel-sub004/stensor"
)

// Model defines the interface for solid models
type Model interface {

	// Init initialises model
	Init(ndim int, prms dbf.Params) error

	// InitIntVars initialises AND allocates internal (secondary) variables
	InitIntVars(σ stensor.Stensor) (*State, error)

	// GetPrms gets (an example) of parameters
	GetPrms() dbf.Params
}

// Small defines rate type solid models for small strain analyses
type Small interface {
	Model

	// Update updates stresses for given strain increment
	Update(s *State, Δε stensor.Stensor) error

	// CalcD computes D = dσ_new/dε_new consistent with Update
	CalcD(s *State, firstIt bool) (stensor.St2toSt2, error)
}

// EPmodel implements an elasto-plastic model
type EPmodel interface {
	Small
	Info() (nalp, nsurf int)                 // number of internal variables and yield surfaces
	YieldFuncs(s *State) []float64           // yield functions
	Criterion() crit.Criterion               // equivalent stress
	ElastUpdate(s *State, ε stensor.Stensor) // elastic response for total strain ε
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
