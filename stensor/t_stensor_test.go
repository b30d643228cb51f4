// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stensor

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

var samples = []Stensor{
	New(3, 1, 1, 1, 0, 0, 0),
	New(3, 1.27453824166446, 0.77207083708966, 0.24525337568425, -1.7790370858361e-4, 3.613971630283e-3, -1.7873236537153e-2),
	New(3, 0.3, -0.2, 0.1, 0.5, -0.4, 0.25),
	New(2, 2, -1, 0.5, 0.7),
	New(1, 3, -2, 1),
}

func Test_stensor01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stensor01")

	for _, s := range samples {
		m := s.ToMat3()

		// double contraction
		var dd float64
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				dd += m[i][j] * m[i][j]
			}
		}
		chk.Float64(tst, "s:s", 1e-15, s.Dot(s), dd)

		// determinant and trace
		chk.Float64(tst, "det", 1e-15, s.Det(), m.Det())
		chk.Float64(tst, "tr", 1e-15, s.Trace(), m[0][0]+m[1][1]+m[2][2])

		// round trip
		CheckStensor(tst, "from(to(s))", 1e-15, FromMat3(s.N, m), s)

		// deviator
		CheckStensor(tst, "K:s", 1e-15, K(s.N).MatVec(s), s.Dev())
		chk.Float64(tst, "tr(dev)", 1e-15, s.Dev().Trace(), 0)
	}
}

func Test_stensor02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stensor02")

	for _, s := range samples {
		io.Pforan("s = %v\n", s.Slice())
		CheckDeriv2(tst, "dsquare", 1e-9, Dsquare(s), s, 1e-6, chk.Verbose, func(x Stensor) Stensor {
			return x.Square()
		})
	}
}

func Test_stensor03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stensor03")

	a := New(3, 1, 2, 3, 4, 5, 6)
	b := New(3, -1, 0.5, 2, 0, 1, -3)
	h := New(3, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6)

	// (a⊗b):h = a (b:h)
	CheckStensor(tst, "dyad", 1e-14, Dyad(a, b).MatVec(h), a.Scale(b.Dot(h)))

	// h:(a⊗b) = (h:a) b
	CheckStensor(tst, "dyadT", 1e-14, Dyad(a, b).TMatVec(h), b.Scale(h.Dot(a)))

	// (K·K) = K
	CheckSt2toSt2(tst, "K·K", 1e-15, K(3).Mul(K(3)), K(3))

	// permutation swapping yy and zz twice is the identity
	perm := [6]int{0, 2, 1, 4, 3, 5}
	A := Dyad(a, b)
	CheckSt2toSt2(tst, "perm", 1e-15, A.Permute(perm).Permute(perm), A)

	// truncation
	t := New(3, 1, 2, 3, 4, 5, 6).Truncate(2)
	chk.Array(tst, "truncated", 1e-15, t.Slice(), []float64{1, 2, 3, 4})
	chk.Int(tst, "size", len(Id4(1).Rows()), 3)
}
