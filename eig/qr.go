// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"github.com/thelfer/tfel-sub004/stensor"
	"gonum.org/v1/gonum/mat"
)

// genericQR uses the LAPACK symmetric eigensolver available in gonum
type genericQR struct{}

func (genericQR) Solve(a stensor.Mat3) (d Decomposition) {
	sym := mat.NewSymDense(3, []float64{
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	})
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return jacobi{}.Solve(a)
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	for j := 0; j < 3; j++ {
		d.Vals[j] = vals[j]
		for i := 0; i < 3; i++ {
			d.Vecs[i][j] = vecs.At(i, j)
		}
	}
	return
}
