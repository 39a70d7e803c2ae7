// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders the comparison reports as PNG charts in a
// fixed output directory.
//
// Every generator is a pure function of (records, directory, Options)
// and writes one deterministically named artifact; rerunning overwrites
// the previous file. There is no package-level style state, so the
// generators can run in any order or concurrently.
package benchchart

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/mstlab/mstbench/benchcsv"
	"github.com/mstlab/mstbench/benchpair"
)

// Options is the presentation configuration of a single render call.
// Passing it explicitly keeps style out of shared state, so tests can
// render with their own settings.
type Options struct {
	// Width and Height give the canvas size of a single-panel
	// chart. The combined report scales these up.
	Width, Height vg.Length

	// DPI of the PNG canvas.
	DPI int

	// Line and marker colors of the two series.
	PrimColor    color.Color
	KruskalColor color.Color
}

// DefaultOptions returns the standard report style.
func DefaultOptions() Options {
	return Options{
		Width:        10 * vg.Inch,
		Height:       6 * vg.Inch,
		DPI:          300,
		PrimColor:    color.NRGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF},
		KruskalColor: color.NRGBA{R: 0xA2, G: 0x3B, B: 0x72, A: 0xFF},
	}
}

// newPlot returns a titled plot with the grid and legend placement
// shared by all reports.
func newPlot(title, xlabel, ylabel string) *plot.Plot {
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = xlabel
	pl.Y.Label.Text = ylabel
	pl.Add(plotter.NewGrid())
	pl.Legend.Top = true
	return pl
}

// addLinePoints adds one algorithm's series in the marker-on-line style
// used across the line charts.
func addLinePoints(pl *plot.Plot, xys plotter.XYs, label string, clr color.Color, shape draw.GlyphDrawer, dashed bool) error {
	ln, pts, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	ln.LineStyle.Width = vg.Points(2)
	ln.LineStyle.Color = clr
	if dashed {
		ln.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	}
	pts.GlyphStyle.Color = clr
	pts.GlyphStyle.Radius = vg.Points(4)
	pts.GlyphStyle.Shape = shape
	pl.Add(ln, pts)
	pl.Legend.Add(label, ln, pts)
	return nil
}

// seriesXY projects one algorithm's records, ordered by ascending
// vertex count, onto (vertices, y(record)) points.
func seriesXY(records []benchcsv.Record, algo benchcsv.Algorithm, y func(benchcsv.Record) float64) plotter.XYs {
	series := benchpair.Series(records, algo)
	xys := make(plotter.XYs, len(series))
	for i, r := range series {
		xys[i].X = float64(r.Vertices)
		xys[i].Y = y(r)
	}
	return xys
}

func timeMS(r benchcsv.Record) float64     { return r.TimeMS }
func operations(r benchcsv.Record) float64 { return float64(r.Operations) }
func mstCost(r benchcsv.Record) float64    { return r.MSTCost }

// writePNG draws pl onto a fresh canvas and writes it to dir/name,
// replacing any previous artifact of the same name.
func writePNG(pl *plot.Plot, dir, name string, w, h vg.Length, dpi int) error {
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)}
	pl.Draw(draw.New(can))

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
