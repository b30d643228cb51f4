// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// figure size of each subplot
var (
	SplotWidth  = 4 * vg.Inch
	SplotHeight = 4 * vg.Inch
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Xlbl  string    // horizontal axis label (raw; e.g. "exx")
	Ylbl  string    // vertical axis label (raw; e.g. "sxx")
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Title string       // title of subplot
	Xlbl  string       // x-axis label
	Ylbl  string       // y-axis label
	Equal bool         // equal scale factors
	Data  []*PltEntity // data to be plotted
}

// Splot activates a new subplot window
func Splot(splotTitle string) {
	s := &SplotDat{Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig configures labels of axes
//  "" => use the labels of the first entity
func SplotConfig(xlbl, ylbl string, equal bool) {
	if Csplot == nil {
		return
	}
	if len(Csplot.Data) > 0 {
		if xlbl == "" {
			xlbl = Csplot.Data[0].Xlbl
		}
		if ylbl == "" {
			ylbl = Csplot.Data[0].Ylbl
		}
	}
	Csplot.Xlbl, Csplot.Ylbl, Csplot.Equal = xlbl, ylbl, equal
}

// Plot adds a curve to the current subplot
//  xHandle -- can be a string, e.g. "exx" or a slice, e.g. x = []float64{0, 1, 2}
//  yHandle -- can be a string, e.g. "sxx" or a slice, e.g. y = []float64{0, 1, 2}
//  alias   -- alias such as "steel"; shown in the legend
func Plot(xHandle, yHandle interface{}, alias string) (err error) {
	var e PltEntity
	e.Alias = alias
	e.X, e.Xlbl, err = getValsAndLabels(xHandle, alias)
	if err != nil {
		return
	}
	e.Y, e.Ylbl, err = getValsAndLabels(yHandle, alias)
	if err != nil {
		return
	}
	if len(e.X) != len(e.Y) {
		return chk.Err("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(e.X), len(e.Y))
	}
	if Csplot == nil {
		Splot("")
	}
	Csplot.Data = append(Csplot.Data, &e)
	SplotConfig(Csplot.Xlbl, Csplot.Ylbl, Csplot.Equal)
	return
}

// Draw saves a figure with all subplots arranged in a grid
//  dirout -- directory to save figure
//  fname  -- file name; e.g. myplot.png
func Draw(dirout, fname string) (err error) {
	nplots := len(Splots)
	if nplots == 0 {
		return chk.Err("there are no subplots to draw")
	}
	nr, nc := utl.BestSquare(nplots)
	plots := make([][]*plot.Plot, nr)
	var k int
	for i := 0; i < nr; i++ {
		plots[i] = make([]*plot.Plot, nc)
		for j := 0; j < nc; j++ {
			if k < nplots {
				plots[i][j], err = newPlot(Splots[k])
				if err != nil {
					return
				}
			} else {
				plots[i][j] = plot.New()
				plots[i][j].HideAxes()
			}
			k++
		}
	}

	// canvas
	img := vgimg.New(vg.Length(nc)*SplotWidth, vg.Length(nr)*SplotHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: nr, Cols: nc, PadX: vg.Millimeter, PadY: vg.Millimeter}
	canvases := plot.Align(plots, tiles, dc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	// save
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	fn := filepath.Join(dirout, fname)
	f, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create file %q:\n%v", fn, err)
	}
	defer f.Close()
	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(f)
	if err != nil {
		return chk.Err("cannot write figure %q:\n%v", fn, err)
	}
	io.Pf("file <%s> written\n", fn)
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// newPlot converts subplot data into a plot
func newPlot(s *SplotDat) (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.Xlbl
	p.Y.Label.Text = s.Ylbl
	p.Add(plotter.NewGrid())
	for i, d := range s.Data {
		xys := make(plotter.XYs, len(d.X))
		for j := range d.X {
			xys[j].X, xys[j].Y = d.X[j], d.Y[j]
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, chk.Err("cannot plot %q:\n%v", d.Alias, err)
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		if d.Alias != "" {
			p.Legend.Add(d.Alias, l)
		}
	}
	if s.Equal {
		lo := min(p.X.Min, p.Y.Min)
		hi := max(p.X.Max, p.Y.Max)
		p.X.Min, p.X.Max = lo, hi
		p.Y.Min, p.Y.Max = lo, hi
	}
	return
}

func getValsAndLabels(handle interface{}, alias string) ([]float64, string, error) {
	switch hnd := handle.(type) {
	case []float64:
		return hnd, io.Sf("%s-type", alias), nil
	case string:
		if R == nil {
			return nil, "", chk.Err("results are not available; Start must be called first")
		}
		vals, err := R.GetRes(hnd)
		return vals, hnd, err
	}
	return nil, "", chk.Err("cannot get values slice with handle = %v", handle)
}
