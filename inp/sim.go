// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/thelfer/tfel-sub004/crit"
	"github.com/thelfer/tfel-sub004/eig"
	"github.com/thelfer/tfel-sub004/msolid"
	"github.com/thelfer/tfel-sub004/stensor"
)

// Data holds global data for simulations
type Data struct {
	Desc    string  `json:"desc"`    // description of simulation
	Matfile string  `json:"matfile"` // materials file path
	DirOut  string  `json:"dirout"`  // directory for output; e.g. /tmp/tfel
	Ndim    int     `json:"ndim"`    // space dimension: 1, 2 (plane strain) or 3
	Solver  string  `json:"solver"`  // eigensolver; e.g. "jacobi", "analytic", "cuppen"
	Eps     float64 `json:"eps"`     // numerical floor of criteria (stress units); 0 => default
}

// PathData holds a strain-driven loading of a material point
type PathData struct {

	// input
	Desc    string      `json:"desc"`    // description of path
	Mat     string      `json:"mat"`     // material name
	Nincs   int         `json:"nincs"`   // number of increments per segment; 0 => 1
	Strains [][]float64 `json:"strains"` // target strains (normalised basis); [nseg][nsig]
	CheckD  bool        `json:"checkd"`  // check consistent matrix with finite differences
	Plot    string      `json:"plot"`    // file name of stress-strain figure; e.g. "path.png". "" => no plot

	// derived
	Path *msolid.Path `json:"-"` // the loading path
}

// PointData holds a stress state where criteria are evaluated
type PointData struct {

	// input
	Mats   []string  `json:"mats"`   // materials names
	Stress []float64 `json:"stress"` // stress components (normalised basis) [nsig]

	// derived
	Sig stensor.Stensor // the stress tensor
}

// LocusData holds data for computing yield loci
type LocusData struct {
	Desc  string   `json:"desc"`  // description
	Mats  []string `json:"mats"`  // materials names
	Npts  int      `json:"npts"`  // number of points; 0 => 72
	Plane string   `json:"plane"` // "s1s2" (plane stress) or "pi" (deviatoric plane); "" => "s1s2"
	Sig0  float64  `json:"sig0"`  // level of the equivalent stress; 0 => 1
	Png   string   `json:"png"`   // file name of figure; e.g. "locus.png". "" => no plot
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data         `json:"data"`   // stores global simulation data
	Paths  []*PathData  `json:"paths"`  // loading paths
	Points []*PointData `json:"points"` // stress points
	Loci   []*LocusData `json:"loci"`   // yield loci

	// derived
	DirOut    string   // directory to save results
	Key       string   // simulation key; e.g. mysim01.sim => mysim01
	MatParams *MatDb   // materials' parameters
	Solver    eig.Kind // eigensolver of criteria
	Eps       float64  // numerical floor of criteria
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, erasefiles bool) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/tfel/" + fnkey
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// numerical settings and materials
	err = o.setup()
	if err != nil {
		return
	}
	o.MatParams, err = ReadMat(dir, o.Data.Matfile, o.Data.Ndim, o.Solver, o.Eps)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read materials database:\n%v", err)
	}

	// check entities
	err = o.postProcess()
	return
}

// setup sets the numerical settings of criteria before materials are allocated
func (o *Simulation) setup() (err error) {
	if o.Data.Ndim < 1 || o.Data.Ndim > 3 {
		return chk.Err("ndim must be 1, 2 or 3. ndim=%d is invalid", o.Data.Ndim)
	}
	o.Solver = crit.DefaultSolver
	if o.Data.Solver != "" {
		o.Solver, err = eig.ParseKind(o.Data.Solver)
		if err != nil {
			return
		}
	}
	o.Eps = crit.DefaultEps
	if o.Data.Eps > 0 {
		o.Eps = o.Data.Eps
	}
	return
}

// postProcess checks and sets derived data of paths, points and loci
func (o *Simulation) postProcess() (err error) {
	ndim, nsig := o.Data.Ndim, stensor.Size(o.Data.Ndim)
	for i, p := range o.Paths {
		m := o.MatParams.Get(p.Mat)
		if m == nil || m.Solid == nil {
			return chk.Err("path %d: cannot find solid material named %q", i, p.Mat)
		}
		if p.Nincs < 1 {
			p.Nincs = 1
		}
		eps := make([]stensor.Stensor, len(p.Strains))
		for j, e := range p.Strains {
			if len(e) != nsig {
				return chk.Err("path %d: strain %d must have %d components", i, j, nsig)
			}
			eps[j] = stensor.New(ndim, e...)
		}
		p.Path, err = msolid.NewPath(ndim, p.Nincs, eps...)
		if err != nil {
			return chk.Err("path %d: %v", i, err)
		}
	}
	for i, p := range o.Points {
		if len(p.Stress) != nsig {
			return chk.Err("point %d: stress must have %d components", i, nsig)
		}
		for _, name := range p.Mats {
			if _, err = o.MatParams.GetCrit(name); err != nil {
				return chk.Err("point %d: %v", i, err)
			}
		}
		p.Sig = stensor.New(ndim, p.Stress...)
	}
	for i, l := range o.Loci {
		if l.Npts < 1 {
			l.Npts = 72
		}
		if l.Sig0 <= 0 {
			l.Sig0 = 1
		}
		switch l.Plane {
		case "":
			l.Plane = "s1s2"
		case "s1s2", "pi":
		default:
			return chk.Err("locus %d: plane %q is invalid; options are \"s1s2\" and \"pi\"", i, l.Plane)
		}
		for _, name := range l.Mats {
			if _, err = o.MatParams.GetCrit(name); err != nil {
				return chk.Err("locus %d: %v", i, err)
			}
		}
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
