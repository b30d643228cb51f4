// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelfer/tfel-sub004/stensor"
)

// steel returns typical elastoplastic parameters plus the extra ones
func steel(H float64, extra ...*dbf.P) dbf.Params {
	prms := []*dbf.P{
		&dbf.P{N: "E", V: 200000},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "sig0", V: 150},
		&dbf.P{N: "H", V: H},
	}
	return append(prms, extra...)
}

// checkConsistency checks that all plastic states lie on the yield surface
func checkConsistency(tst *testing.T, msg string, drv *Driver) {
	mdl := drv.Model().(EPmodel)
	αold := 0.0
	nplast := 0
	for i, s := range drv.Res {
		f := mdl.YieldFuncs(s)[0]
		if f > 1e-7 {
			tst.Errorf("%s: state %d is outside the yield surface. f=%g", msg, i, f)
		}
		if s.Loading {
			nplast++
			chk.Float64(tst, io.Sf("%s: f(%d)", msg, i), 1e-7, f, 0)
		}
		if s.Alp[0] < αold {
			tst.Errorf("%s: internal variable decreased at state %d", msg, i)
		}
		αold = s.Alp[0]
	}
	if nplast == 0 {
		tst.Errorf("%s: no plastic loading", msg)
	}
}

func Test_plast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plast01")

	// allocate driver
	var drv Driver
	err := drv.Init("plast-vonmises", 3, steel(1000))
	require.NoError(tst, err)
	drv.CheckD = true
	drv.VerD = chk.Verbose

	// path: loading, elastic unloading, reloading
	ε1 := stensor.New(3, 3e-3, -1e-3, -0.5e-3, 1e-3, 0.4e-3, -0.6e-3)
	pth, err := NewPath(3, 10, ε1, ε1.Scale(0.8), ε1.Scale(1.5))
	require.NoError(tst, err)

	// run
	err = drv.Run(pth)
	require.NoError(tst, err)
	checkConsistency(tst, "vonmises", &drv)

	// unloading is elastic
	for i := 11; i <= 20; i++ {
		if drv.Res[i].Loading {
			tst.Errorf("state %d should be elastic", i)
		}
	}

	// plastic incompressibility
	for i, s := range drv.Res {
		chk.Float64(tst, io.Sf("tr(εe) = tr(ε) @ %d", i), 1e-15, s.EpsE.Trace(), drv.Eps[i].Trace())
	}
	io.Pforan("DErr = %v\n", drv.DErr)
}

func Test_plast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plast02")

	tests := []struct {
		model string
		ndim  int
		prms  dbf.Params
		ε     stensor.Stensor
	}{
		{"plast-hosford", 2, steel(500, &dbf.P{N: "a", V: 8}), stensor.New(2, 2e-3, -1.5e-3, 0, 1.2e-3)},
		{"plast-hosford", 3, steel(500, &dbf.P{N: "a", V: 3.5}), stensor.New(3, 2e-3, -0.5e-3, -1e-3, 0.2e-3, 0.7e-3, -0.3e-3)},
		{"plast-barlat", 3, steel(500,
			&dbf.P{N: "a", V: 8},
			&dbf.P{N: "cp12", V: -0.069888}, &dbf.P{N: "cp21", V: 0.936408},
			&dbf.P{N: "cp13", V: 0.079143}, &dbf.P{N: "cp31", V: 1.003060},
			&dbf.P{N: "cp23", V: 0.524741}, &dbf.P{N: "cp32", V: 1.363180},
			&dbf.P{N: "cp44", V: 1.023770}, &dbf.P{N: "cp55", V: 1.069060}, &dbf.P{N: "cp66", V: 0.954322},
			&dbf.P{N: "cpp12", V: 0.981171}, &dbf.P{N: "cpp21", V: 0.476741},
			&dbf.P{N: "cpp13", V: 0.575316}, &dbf.P{N: "cpp31", V: 0.866827},
			&dbf.P{N: "cpp23", V: 1.145010}, &dbf.P{N: "cpp32", V: -0.079294},
			&dbf.P{N: "cpp44", V: 1.051660}, &dbf.P{N: "cpp55", V: 1.147100}, &dbf.P{N: "cpp66", V: 1.404620},
		), stensor.New(3, 2e-3, -0.5e-3, -1e-3, 0.2e-3, 0.7e-3, -0.3e-3)},
		{"plast-cazacu", 3, steel(500, &dbf.P{N: "a", V: 4}, &dbf.P{N: "k", V: 0.2}), stensor.New(3, -2e-3, 0.5e-3, 1e-3, 0.2e-3, -0.7e-3, 0.3e-3)},
		{"plast-orthotropic", 3, steel(500, &dbf.P{N: "c", V: 1}, &dbf.P{N: "a1", V: 0.8}, &dbf.P{N: "a4", V: 1.2}), stensor.New(3, 2e-3, -0.5e-3, -1e-3, 0.2e-3, 0.7e-3, -0.3e-3)},
	}

	for _, t := range tests {
		msg := io.Sf("%s (%dD)", t.model, t.ndim)
		var drv Driver
		err := drv.Init(t.model, t.ndim, t.prms)
		require.NoError(tst, err, msg)
		drv.CheckD = true
		drv.TolD = 1e-4
		drv.VerD = chk.Verbose
		pth, err := NewPath(t.ndim, 10, t.ε)
		require.NoError(tst, err, msg)
		err = drv.Run(pth)
		require.NoError(tst, err, msg)
		checkConsistency(tst, msg, &drv)
		for i, s := range drv.Res {
			assert.LessOrEqual(tst, s.Nit, 20, "%s: iterations @ %d", msg, i)
		}
	}
}

func Test_plast03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plast03")

	// elastic-perfectly plastic; uniaxial strain
	var drv Driver
	err := drv.Init("plast-vonmises", 1, steel(0))
	require.NoError(tst, err)
	drv.CheckD = true
	pth, err := NewPath(1, 20, stensor.New(1, 5e-3))
	require.NoError(tst, err)
	err = drv.Run(pth)
	require.NoError(tst, err)
	checkConsistency(tst, "perfect", &drv)

	// |σxx - σyy| = σy0
	last := drv.Res[len(drv.Res)-1]
	chk.Float64(tst, "σyy = σzz", 1e-10, last.Sig.C[1], last.Sig.C[2])
	chk.Float64(tst, "|σxx - σyy|", 1e-7, math.Abs(last.Sig.C[0]-last.Sig.C[1]), 150)
}

func Test_plast04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plast04")

	// factory
	names := Names()
	io.Pforan("models = %v\n", names)
	for _, name := range []string{"lin-elast", "plast-vonmises", "plast-hosford", "plast-barlat", "plast-cazacu", "plast-orthotropic"} {
		assert.Contains(tst, names, name)
	}
	_, err := New("plast-unknown")
	assert.Error(tst, err)

	// invalid parameters
	var drv Driver
	assert.Error(tst, drv.Init("plast-vonmises", 3, []*dbf.P{
		&dbf.P{N: "E", V: 200000},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "H", V: 1000},
	}))
	assert.Error(tst, drv.Init("plast-vonmises", 3, steel(-1)))
	assert.Error(tst, drv.Init("plast-hosford", 3, steel(0, &dbf.P{N: "b", V: 1})))
	assert.Error(tst, drv.Init("plast-cazacu", 3, steel(0, &dbf.P{N: "k", V: 2})))

	// initial stress outside the elastic domain
	mdl, err := New("plast-vonmises")
	require.NoError(tst, err)
	require.NoError(tst, mdl.Init(3, steel(1000)))
	_, err = mdl.InitIntVars(stensor.New(3, 1000))
	assert.Error(tst, err)

	// return mapping without enough iterations
	err = drv.Init("plast-hosford", 3, steel(0, &dbf.P{N: "a", V: 8}, &dbf.P{N: "maxit", V: 1}))
	require.NoError(tst, err)
	drv.Silent = true
	pth, err := NewPath(3, 1, stensor.New(3, 5e-3, -2e-3, 1e-3, 2e-3, -1e-3, 1e-3))
	require.NoError(tst, err)
	assert.Error(tst, drv.Run(pth))

	// a failed update leaves the state untouched
	hos, err := New("plast-hosford")
	require.NoError(tst, err)
	require.NoError(tst, hos.Init(3, steel(0, &dbf.P{N: "a", V: 8}, &dbf.P{N: "maxit", V: 1})))
	s, err := hos.InitIntVars(stensor.New(3, 50, -20, 10))
	require.NoError(tst, err)
	s.EpsE = stensor.New(3, 1e-4, -5e-5, 2e-5)
	s.Dgam, s.Nit = 0.25, 3
	s0 := s.GetCopy()
	err = hos.(Small).Update(s, stensor.New(3, 5e-3, -2e-3, 1e-3, 2e-3, -1e-3, 1e-3))
	require.Error(tst, err)
	assert.Equal(tst, s0.Sig, s.Sig)
	assert.Equal(tst, s0.EpsE, s.EpsE)
	assert.Equal(tst, s0.Alp, s.Alp)
	assert.Equal(tst, s0.Dgam, s.Dgam)
	assert.Equal(tst, s0.Nit, s.Nit)
	assert.Equal(tst, s0.Loading, s.Loading)

	// path errors
	_, err = NewPath(3, 0, stensor.New(3, 1))
	assert.Error(tst, err)
	_, err = NewPath(3, 1, stensor.New(2, 1))
	assert.Error(tst, err)
}
