// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/thelfer/tfel-sub004/inp"
	"github.com/thelfer/tfel-sub004/msolid"
	"github.com/thelfer/tfel-sub004/stensor"
)

// PointResult holds the equivalent stress and its derivatives at a stress point
type PointResult struct {
	Point int              // index of point
	Mat   string           // material name
	Phi   float64          // equivalent stress
	N     stensor.Stensor  // dΦ/dσ
	DN    stensor.St2toSt2 // d²Φ/dσ²
}

// Summary holds the results of a simulation
type Summary struct {
	Paths  []*Results     // results of loading paths
	Points []*PointResult // results at stress points
	Files  []string       // files written
}

// RunSim runs all paths, evaluates criteria at all points and computes all loci of a simulation
func RunSim(sim *inp.Simulation, verbose bool) (sum *Summary, err error) {
	sum = new(Summary)
	ndim := sim.Data.Ndim
	err = os.MkdirAll(sim.DirOut, 0777)
	if err != nil {
		return nil, chk.Err("cannot create directory %q:\n%v", sim.DirOut, err)
	}

	// loading paths
	for i, p := range sim.Paths {
		mat := sim.MatParams.Get(p.Mat)
		var drv msolid.Driver
		err = drv.Init(mat.Model, ndim, mat.Prms)
		if err != nil {
			return
		}
		drv.CheckD = p.CheckD
		drv.VerD = verbose
		drv.Silent = !verbose
		err = drv.Run(p.Path)
		if err != nil {
			return nil, chk.Err("path %d (%s) failed:\n%v", i, p.Desc, err)
		}
		res := NewResults(&drv)
		sum.Paths = append(sum.Paths, res)

		// table
		fn := filepath.Join(sim.DirOut, io.Sf("%s-path%d.txt", sim.Key, i))
		err = writeTable(fn, res)
		if err != nil {
			return
		}
		sum.Files = append(sum.Files, fn)
		if verbose {
			io.Pf("path %d (%s): %d increments => %s\n", i, p.Desc, p.Path.Size(), fn)
		}

		// figure
		if p.Plot != "" {
			Start(&drv)
			Splot(p.Desc)
			for _, key := range []string{"sxx", "syy", "szz"} {
				if err = Plot("exx", key, key); err != nil {
					return
				}
			}
			SplotConfig("εxx", "σ", false)
			Splot("")
			if err = Plot("ed", "seq", p.Mat); err != nil {
				return
			}
			err = Draw(sim.DirOut, p.Plot)
			if err != nil {
				return
			}
			sum.Files = append(sum.Files, filepath.Join(sim.DirOut, p.Plot))
		}
	}

	// stress points
	for i, p := range sim.Points {
		for _, name := range p.Mats {
			c, _ := sim.MatParams.GetCrit(name)
			Φ, n, dn := c.SecondDerivative(p.Sig)
			sum.Points = append(sum.Points, &PointResult{i, name, Φ, n, dn})
			if verbose {
				io.Pf("point %d, %-10s: Φ = %g  n = %v\n", i, name, Φ, n.Slice())
			}
		}
	}

	// yield loci
	for i, l := range sim.Loci {
		Splots, Csplot = nil, nil
		Splot(l.Desc)
		for _, name := range l.Mats {
			c, _ := sim.MatParams.GetCrit(name)
			x, y, e := Locus(c, ndim, l.Sig0, l.Npts, l.Plane)
			if e != nil {
				return nil, chk.Err("locus %d, material %q:\n%v", i, name, e)
			}
			if err = Plot(x, y, name); err != nil {
				return
			}
		}
		if l.Plane == "pi" {
			SplotConfig("x (e1)", "y (e2)", true)
		} else {
			SplotConfig("σ1", "σ2", true)
		}
		if l.Png != "" {
			err = Draw(sim.DirOut, l.Png)
			if err != nil {
				return
			}
			sum.Files = append(sum.Files, filepath.Join(sim.DirOut, l.Png))
		}
	}
	return
}

// writeTable writes results to file
func writeTable(fn string, res *Results) (err error) {
	f, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create file %q:\n%v", fn, err)
	}
	defer f.Close()
	return res.WriteTable(f)
}
