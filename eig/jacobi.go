// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"math"

	"github.com/thelfer/tfel-sub004/stensor"
)

// JacobiMaxSweeps is the maximum number of sweeps of the Jacobi solver
var JacobiMaxSweeps = 50

// jacobi implements the cyclic Jacobi method
type jacobi struct{}

var jacobiPairs = [3][2]int{{0, 1}, {0, 2}, {1, 2}}

func (jacobi) Solve(a stensor.Mat3) (d Decomposition) {
	v := stensor.Identity3()
	for sweep := 0; sweep < JacobiMaxSweeps; sweep++ {
		off := math.Abs(a[0][1]) + math.Abs(a[0][2]) + math.Abs(a[1][2])
		if off == 0 {
			break
		}
		for _, pq := range jacobiPairs {
			p, q := pq[0], pq[1]
			apq := a[p][q]
			if apq == 0 {
				continue
			}
			g := 100.0 * math.Abs(apq)
			if sweep > 3 && math.Abs(a[p][p])+g == math.Abs(a[p][p]) && math.Abs(a[q][q])+g == math.Abs(a[q][q]) {
				a[p][q], a[q][p] = 0, 0
				continue
			}
			_, _, c, s := Sym2(a[p][p], apq, a[q][q])
			rot := stensor.Identity3()
			rot[p][p], rot[q][q] = c, c
			rot[p][q], rot[q][p] = s, -s
			a = rot.Transpose().Mul(a).Mul(rot)
			a[p][q], a[q][p] = 0, 0
			v = v.Mul(rot)
		}
	}
	d.Vals = stensor.Vec3{a[0][0], a[1][1], a[2][2]}
	d.Vecs = v
	return
}
