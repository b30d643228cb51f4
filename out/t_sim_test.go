// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelfer/tfel-sub004/inp"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim, err := inp.ReadSim("../inp/data/metals.sim", false)
	require.NoError(tst, err)
	sim.DirOut = tst.TempDir()
	sim.Paths[0].Plot = "steel.png"
	sim.Loci[1].Png = "pi.png"

	sum, err := RunSim(sim, chk.Verbose)
	require.NoError(tst, err)

	// paths
	require.Len(tst, sum.Paths, 2)
	assert.Len(tst, sum.Paths[0].Res, 31)
	assert.Len(tst, sum.Paths[1].Res, 21)
	seq, err := sum.Paths[0].GetRes("seq")
	require.NoError(tst, err)
	assert.InDelta(tst, 0, seq[0], 1e-15)
	alp, err := sum.Paths[0].GetRes("alp")
	require.NoError(tst, err)
	assert.Greater(tst, alp[len(alp)-1], 0.0)

	// points: von Mises of uniaxial stress is the stress itself
	require.Len(tst, sum.Points, 3)
	for _, p := range sum.Points {
		assert.Equal(tst, 0, p.Point)
		assert.False(tst, math.IsNaN(p.Phi))
		assert.Greater(tst, p.Phi, 0.0)
	}
	assert.Equal(tst, "steel", sum.Points[2].Mat)
	assert.InDelta(tst, 150, sum.Points[2].Phi, 1e-10)

	// files
	assert.Len(tst, sum.Files, 4)
	for _, fn := range sum.Files {
		info, err := os.Stat(fn)
		require.NoError(tst, err, "file %q", fn)
		assert.Greater(tst, info.Size(), int64(0))
	}
}
