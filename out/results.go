// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	goio "io"

	"github.com/cpmech/gosl/io"
)

// WriteTable writes the history of the given quantities as columns
//  keys -- see GetRes; nil => all keys except "phi" when there is no criterion
func (o Results) WriteTable(w goio.Writer, keys ...string) (err error) {
	if len(keys) == 0 {
		for _, key := range Keys() {
			if key == "phi" && o.Crit == nil {
				continue
			}
			keys = append(keys, key)
		}
	}
	cols := make([][]float64, len(keys))
	for j, key := range keys {
		cols[j], err = o.GetRes(key)
		if err != nil {
			return
		}
	}
	var buf bytes.Buffer
	for _, key := range keys {
		buf.WriteString(io.Sf("%23s", key))
	}
	buf.WriteString("\n")
	for i := range o.Res {
		for j := range keys {
			buf.WriteString(io.Sf("%23.15e", cols[j][i]))
		}
		buf.WriteString("\n")
	}
	_, err = w.Write(buf.Bytes())
	return
}

// Work computes the cumulative work per unit volume ∫σ:dε using the trapezoidal rule
func (o Results) Work() (res []float64) {
	res = make([]float64, len(o.Res))
	for i := 1; i < len(o.Res); i++ {
		Δε := o.Eps[i].Sub(o.Eps[i-1])
		σ := o.Res[i].Sig.Add(o.Res[i-1].Sig).Scale(0.5)
		res[i] = res[i-1] + σ.Dot(Δε)
	}
	return
}

// Dissipation computes the cumulative plastic work: W - ½ σ:εe
func (o Results) Dissipation() (res []float64) {
	res = o.Work()
	for i, s := range o.Res {
		res[i] -= 0.5 * s.Sig.Dot(s.EpsE)
	}
	return
}
