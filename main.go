// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/thelfer/tfel-sub004/inp"
	"github.com/thelfer/tfel-sub004/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	showInfo := io.ArgToBool(3, false)

	// message
	if verbose {
		io.PfWhite("\ntfel -- eigensolvers and yield criteria for material points\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"show simulation data", "showInfo", showInfo,
		))
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath, erasePrev)
	if err != nil {
		chk.Panic("ReadSim failed:\n%v", err)
	}
	if showInfo {
		err = sim.GetInfo(os.Stdout)
		if err != nil {
			chk.Panic("GetInfo failed:\n%v", err)
		}
		io.Pf("\n")
	}

	// run simulation
	sum, err := out.RunSim(sim, verbose)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	if verbose {
		io.Pfgreen("\n%d paths, %d points and %d loci computed. %d files written to %s\n",
			len(sum.Paths), len(sim.Points), len(sim.Loci), len(sum.Files), sim.DirOut)
	}
}
