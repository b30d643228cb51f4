// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package crit implements yield criteria (equivalent stresses) and their first and second
// derivatives with respect to the stress tensor
package crit

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/thelfer/tfel-sub004/eig"
	"github.com/thelfer/tfel-sub004/invs"
	"github.com/thelfer/tfel-sub004/stensor"
)

// DefaultSolver is the eigensolver of criteria without a "solver" parameter
const DefaultSolver = eig.Jacobi

// DefaultEps is the default numerical floor in stress units
const DefaultEps = 1e-10

// Criterion defines an equivalent stress
type Criterion interface {

	// Init initialises criterion
	Init(ndim int, prms dbf.Params) error

	// Stress computes the equivalent stress
	Stress(s stensor.Stensor) float64

	// Normal computes the equivalent stress and its derivative
	Normal(s stensor.Stensor) (float64, stensor.Stensor)

	// SecondDerivative computes the equivalent stress and its first and second derivatives
	SecondDerivative(s stensor.Stensor) (float64, stensor.Stensor, stensor.St2toSt2)
}

// allocators holds all available criteria
var allocators = map[string]func() Criterion{}

// New allocates and initialises a criterion by name
func New(name string, ndim int, prms dbf.Params) (Criterion, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("criterion %q is not available; options are %v", name, Names())
	}
	c := allocator()
	if err := c.Init(ndim, prms); err != nil {
		return nil, chk.Err("cannot initialise criterion %q:\n%v", name, err)
	}
	return c, nil
}

// Names returns the names of all available criteria
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// VonMises implements the von Mises equivalent stress
type VonMises struct {
	Eps float64 // numerical floor
}

// add criterion to factory
func init() {
	allocators["vonmises"] = func() Criterion { return new(VonMises) }
}

// Init initialises criterion
func (o *VonMises) Init(ndim int, prms dbf.Params) (err error) {
	o.Eps = DefaultEps
	for _, p := range prms {
		switch p.N {
		case "eps":
			o.Eps = p.V
		case "solver":
			if _, err = solverPrm(p); err != nil {
				return
			}
		default:
			return chk.Err("vonmises: parameter named %q is invalid", p.N)
		}
	}
	return
}

// Stress computes σeq
func (o VonMises) Stress(s stensor.Stensor) float64 {
	return invs.Sigmaeq(s)
}

// Normal computes σeq and dσeq/ds
func (o VonMises) Normal(s stensor.Stensor) (float64, stensor.Stensor) {
	return invs.SigmaeqDerivative(s, o.Eps)
}

// SecondDerivative computes σeq, dσeq/ds and d²σeq/ds²
func (o VonMises) SecondDerivative(s stensor.Stensor) (float64, stensor.Stensor, stensor.St2toSt2) {
	return invs.SigmaeqSecondDerivative(s, o.Eps)
}

// solverPrm returns the eigensolver selected by the "solver" parameter, whose value is the
// index of the solver in eig.Kinds
func solverPrm(p *dbf.P) (eig.Kind, error) {
	k := int(p.V)
	if float64(k) != p.V || k < 0 || k >= len(eig.Kinds) {
		return 0, chk.Err("solver = %g is invalid; it must be an integer in [0, %d)", p.V, len(eig.Kinds))
	}
	return eig.Kinds[k], nil
}

// absPow returns |x|^a
func absPow(x, a float64) float64 {
	return math.Pow(math.Abs(x), a)
}

// absPowm2 returns |x|^(a-2); |x| is floored by floor when a < 2
//  x is normalised by the largest eigenvalue difference, hence floor = eps/scale
func absPowm2(x, a, floor float64) float64 {
	ax := math.Abs(x)
	if a < 2 && ax < floor {
		ax = floor
	}
	return math.Pow(ax, a-2)
}
