// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelfer/tfel-sub004/crit"
	"github.com/thelfer/tfel-sub004/msolid"
	"github.com/thelfer/tfel-sub004/stensor"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// runDriver runs a material point simulation
func runDriver(tst *testing.T, model string, ndim int, prms dbf.Params, nincs int, eps ...stensor.Stensor) *msolid.Driver {
	var drv msolid.Driver
	err := drv.Init(model, ndim, prms)
	require.NoError(tst, err)
	pth, err := msolid.NewPath(ndim, nincs, eps...)
	require.NoError(tst, err)
	err = drv.Run(pth)
	require.NoError(tst, err)
	return &drv
}

var vmPrms = []*dbf.P{
	&dbf.P{N: "E", V: 200000},
	&dbf.P{N: "nu", V: 0.3},
	&dbf.P{N: "sig0", V: 150},
	&dbf.P{N: "H", V: 0},
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01")

	drv := runDriver(tst, "plast-vonmises", 1, vmPrms, 20, stensor.New(1, 5e-3))
	Start(drv)

	Splot("uniaxial strain")
	require.NoError(tst, Plot("exx", "sxx", "σxx"))
	require.NoError(tst, Plot("exx", "syy", "σyy"))

	Splot("")
	require.NoError(tst, Plot("i", "alp", "α"))

	Splot("yield locus")
	x, y, err := Locus(drv.Model().(msolid.EPmodel).Criterion(), 1, 150, 72, "s1s2")
	require.NoError(tst, err)
	require.NoError(tst, Plot(x, y, "von Mises"))
	SplotConfig("σ1", "σ2", true)
	assert.Equal(tst, "σ1", Csplot.Xlbl)
	assert.True(tst, Csplot.Equal)

	// errors
	assert.Error(tst, Plot("exx", "unknown", "bad"))
	assert.Error(tst, Plot([]float64{0, 1}, []float64{0}, "bad"))
	assert.Error(tst, Plot(1, "sxx", "bad"))
	assert.Len(tst, Splots, 3)
	assert.Len(tst, Splots[0].Data, 2)

	// draw
	dirout := tst.TempDir()
	require.NoError(tst, Draw(dirout, "plot01.png"))
	info, err := os.Stat(filepath.Join(dirout, "plot01.png"))
	require.NoError(tst, err)
	assert.Greater(tst, info.Size(), int64(0))

	// nothing to draw
	Start(drv)
	assert.Error(tst, Draw(dirout, "empty.png"))
}

func Test_locus01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("locus01")

	vm, err := crit.New("vonmises", 3, nil)
	require.NoError(tst, err)

	// biaxial plane: x² - xy + y² = σ0²
	σ0 := 150.0
	x, y, err := Locus(vm, 3, σ0, 36, "s1s2")
	require.NoError(tst, err)
	require.Len(tst, x, 37)
	for i := range x {
		chk.Float64(tst, io.Sf("ellipse @ %d", i), 1e-9, x[i]*x[i]-x[i]*y[i]+y[i]*y[i], σ0*σ0)
	}
	chk.Float64(tst, "closed x", 1e-12, x[36], x[0])
	chk.Float64(tst, "closed y", 1e-9, y[36], y[0])

	// deviatoric plane: circle with radius √(2/3) σ0
	x, y, err = Locus(vm, 2, σ0, 36, "pi")
	require.NoError(tst, err)
	for i := range x {
		chk.Float64(tst, io.Sf("circle @ %d", i), 1e-10, x[i]*x[i]+y[i]*y[i], 2.0*σ0*σ0/3.0)
	}

	// tension/compression asymmetry
	cpb, err := crit.New("cazacu", 3, []*dbf.P{&dbf.P{N: "a", V: 2}, &dbf.P{N: "k", V: 0.3}})
	require.NoError(tst, err)
	x, _, err = Locus(cpb, 3, σ0, 4, "s1s2")
	require.NoError(tst, err)
	chk.Float64(tst, "tension", 1e-9, x[0], σ0)
	σc := σ0 / crit.CazacuStress(stensor.New(3, -1), stensor.K(3), 2, 0.3, 1e-10, crit.DefaultSolver)
	chk.Float64(tst, "compression", 1e-9, -x[2], σc)
	io.Pforan("σt = %v  σc = %v\n", x[0], -x[2])
	assert.NotEqual(tst, x[0], -x[2])

	// errors
	_, _, err = Locus(vm, 3, σ0, 36, "xy")
	assert.Error(tst, err)
	_, _, err = Locus(vm, 3, σ0, 0, "pi")
	assert.Error(tst, err)
}
