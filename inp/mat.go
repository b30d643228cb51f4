// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/thelfer/tfel-sub004/crit"
	"github.com/thelfer/tfel-sub004/eig"
	"github.com/thelfer/tfel-sub004/msolid"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; "solid" or "crit"
	Model string     `json:"model"` // name of model; e.g. "plast-hosford", "lin-elast" or a criterion such as "barlat"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Solid msolid.Model   `json:"-"` // pointer to actual solid model
	Crit  crit.Criterion `json:"-"` // equivalent stress; from "crit" materials or elastoplastic solids
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Solids map[string]*Material `json:"-"` // subset with materials/models: solids
	Crits  map[string]*Material `json:"-"` // subset with materials/models: criteria
}

// ReadMat reads all materials data from a .mat JSON file
//  solver and eps are given to the criteria that do not set them in their parameters
func ReadMat(dir, fn string, ndim int, solver eig.Kind, eps float64) (mdb *MatDb, err error) {

	// read file
	fp := filepath.Join(dir, fn)
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", fp, err)
	}

	// decode and initialise
	return ParseMat(b, ndim, solver, eps)
}

// ParseMat decodes and initialises a materials database from JSON data
//  solver and eps are given to the criteria that do not set them in their parameters
func ParseMat(b []byte, ndim int, solver eig.Kind, eps float64) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials data:\n%v", err)
	}

	// subsets
	mdb.Solids = make(map[string]*Material)
	mdb.Crits = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if _, ok := mdb.Solids[m.Name]; ok {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		if _, ok := mdb.Crits[m.Name]; ok {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		switch m.Type {
		case "solid":
			mdb.Solids[m.Name] = m
		case "crit":
			mdb.Crits[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect; options are \"solid\" and \"crit\"", m.Type)
		}
	}

	// alloc/init: solids
	for _, m := range mdb.Solids {
		m.Solid, err = msolid.New(m.Model)
		if err != nil {
			return nil, err
		}
		prms := m.Prms
		if _, ok := m.Solid.(msolid.EPmodel); ok {
			prms = withNumerics(m.Prms, solver, eps)
		}
		err = m.Solid.Init(ndim, prms)
		if err != nil {
			return nil, chk.Err("cannot initialise material %q:\n%v", m.Name, err)
		}
		if ep, ok := m.Solid.(msolid.EPmodel); ok {
			m.Crit = ep.Criterion()
		}
	}

	// alloc/init: criteria
	for _, m := range mdb.Crits {
		m.Crit, err = crit.New(m.Model, ndim, withNumerics(m.Prms, solver, eps))
		if err != nil {
			return nil, chk.Err("cannot initialise material %q:\n%v", m.Name, err)
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// GetCrit returns the equivalent stress of a material
func (o MatDb) GetCrit(name string) (crit.Criterion, error) {
	mat := o.Get(name)
	if mat == nil {
		return nil, chk.Err("cannot find material named %q", name)
	}
	if mat.Crit == nil {
		return nil, chk.Err("material %q (model %q) has no yield criterion", name, mat.Model)
	}
	return mat.Crit, nil
}

// withNumerics returns a copy of prms with the "solver" and "eps" parameters of criteria added
// unless prms already has them
func withNumerics(prms dbf.Params, solver eig.Kind, eps float64) (res dbf.Params) {
	res = append(res, prms...)
	hasSolver, hasEps := false, false
	for _, p := range prms {
		switch p.N {
		case "solver":
			hasSolver = true
		case "eps":
			hasEps = true
		}
	}
	if !hasSolver {
		for i, kind := range eig.Kinds {
			if kind == solver {
				res = append(res, &dbf.P{N: "solver", V: float64(i)})
			}
		}
	}
	if !hasEps {
		res = append(res, &dbf.P{N: "eps", V: eps})
	}
	return
}
