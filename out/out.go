// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of material point simulations for analyses and
// plotting
package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/thelfer/tfel-sub004/crit"
	"github.com/thelfer/tfel-sub004/invs"
	"github.com/thelfer/tfel-sub004/msolid"
	"github.com/thelfer/tfel-sub004/stensor"
)

// Results holds the history of a material point
type Results struct {
	Eps  []stensor.Stensor // strains
	Res  []*msolid.State   // states
	Crit crit.Criterion    // equivalent stress; may be nil
}

// Global variables
var (
	R *Results // current results; set by Start

	// subplots
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Start starts handling of results from a driver that has been run
func Start(drv *msolid.Driver) {
	R = NewResults(drv)
	Splots = nil
	Csplot = nil
}

// NewResults collects the results of a driver
func NewResults(drv *msolid.Driver) *Results {
	o := &Results{Eps: drv.Eps, Res: drv.Res}
	if ep, ok := drv.Model().(msolid.EPmodel); ok {
		o.Crit = ep.Criterion()
	}
	return o
}

// Keys returns all keys accepted by GetRes
func Keys() []string {
	return []string{
		"i", "sxx", "syy", "szz", "sxy", "sxz", "syz", "sm", "seq", "phi", "s1", "s2", "s3",
		"exx", "eyy", "ezz", "exy", "exz", "eyz", "ev", "ed", "alp", "dgam",
	}
}

// tensor components; shear ones are converted from the normalised basis
var components = map[string]int{"xx": 0, "yy": 1, "zz": 2, "xy": 3, "xz": 4, "yz": 5}

// GetRes returns the history of a quantity
//  key -- "i" (increment), stresses: "sxx", "syy", "szz", "sxy", "sxz", "syz", "sm" (mean),
//         "seq" (von Mises), "phi" (criterion), "s1", "s2", "s3" (principal values, decreasing);
//         strains: "exx", "eyy", "ezz", "exy", "exz", "eyz", "ev" (volumetric), "ed" (deviatoric);
//         internal variables: "alp", "dgam"
func (o Results) GetRes(key string) (res []float64, err error) {
	n := len(o.Res)
	res = make([]float64, n)
	tensor := func(t stensor.Stensor, k int) float64 {
		if k >= t.Size() {
			return 0
		}
		if k > 2 {
			return t.C[k] * stensor.ISQ2
		}
		return t.C[k]
	}
	kind, comp := key, 0
	if len(key) == 3 && (key[0] == 's' || key[0] == 'e') {
		if k, ok := components[key[1:]]; ok {
			kind, comp = "σ", k
			if key[0] == 'e' {
				kind = "ε"
			}
		}
	}
	for i, s := range o.Res {
		ε := o.Eps[i]
		switch kind {
		case "i":
			res[i] = float64(i)
		case "σ":
			res[i] = tensor(s.Sig, comp)
		case "ε":
			res[i] = tensor(ε, comp)
		case "sm":
			res[i] = s.Sig.Trace() / 3.0
		case "seq":
			res[i] = invs.Sigmaeq(s.Sig)
		case "phi":
			if o.Crit == nil {
				return nil, chk.Err("results have no yield criterion")
			}
			res[i] = o.Crit.Stress(s.Sig)
		case "s1", "s2", "s3":
			res[i] = msolid.PrincipalValues(s.Sig)[key[1]-'1']
		case "ev":
			res[i] = ε.Trace()
		case "ed":
			res[i] = math.Sqrt(2.0/3.0) * ε.Dev().Norm()
		case "alp":
			if len(s.Alp) > 0 {
				res[i] = s.Alp[0]
			}
		case "dgam":
			res[i] = s.Dgam
		default:
			return nil, chk.Err("key %q is invalid; options are %v", key, Keys())
		}
	}
	return
}
