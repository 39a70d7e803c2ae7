// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mstlab/mstbench/benchcsv"
	"github.com/mstlab/mstbench/benchpair"
)

// PerformanceRatioFile is the artifact written by PerformanceRatio.
const PerformanceRatioFile = "performance_ratio.png"

// PerformanceRatio draws one bar per graph, Kruskal time over Prim
// time, ordered by ascending vertex count: green below 1.0, red at or
// above it, with a dashed reference line at equal performance. Graphs
// with a zero Prim time have no defined ratio and are left out.
func PerformanceRatio(records []benchcsv.Record, dir string, opt Options) error {
	pairs, _ := benchpair.Join(records)
	ratios := benchpair.Ratios(pairs)

	pl := newPlot("Performance Ratio: Kruskal vs Prim\n(< 1 = Kruskal faster, > 1 = Prim faster)",
		"Graph (by vertex count)", "Performance Ratio (Kruskal / Prim)")

	// Two overlapping bar charts at the same positions; the zero-
	// height entries of each are invisible, which gives per-bar color.
	faster := make(plotter.Values, len(ratios))
	slower := make(plotter.Values, len(ratios))
	labels := make([]string, len(ratios))
	for i, r := range ratios {
		if r.Value < 1 {
			faster[i] = r.Value
		} else {
			slower[i] = r.Value
		}
		labels[i] = fmt.Sprintf("%dv", r.Vertices)
	}

	barWidth := vg.Points(20)
	fb, err := plotter.NewBarChart(faster, barWidth)
	if err != nil {
		return err
	}
	fb.Color = color.NRGBA{G: 0xA0, A: 0xB0}
	fb.LineStyle.Color = color.Black

	sb, err := plotter.NewBarChart(slower, barWidth)
	if err != nil {
		return err
	}
	sb.Color = color.NRGBA{R: 0xD0, A: 0xB0}
	sb.LineStyle.Color = color.Black

	pl.Add(fb, sb)
	pl.Legend.Add("Kruskal faster", fb)
	pl.Legend.Add("Prim faster", sb)
	pl.NominalX(labels...)

	if n := len(ratios); n > 0 {
		eq, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: 1}, {X: float64(n) - 0.5, Y: 1}})
		if err != nil {
			return err
		}
		eq.LineStyle.Width = vg.Points(2)
		eq.LineStyle.Color = color.Black
		eq.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		pl.Add(eq)
		pl.Legend.Add("Equal Performance", eq)
	}

	pl.X.Tick.Label.Rotation = -math.Pi / 8
	pl.X.Tick.Label.YAlign = draw.YTop
	pl.X.Tick.Label.XAlign = draw.XLeft

	return writePNG(pl, dir, PerformanceRatioFile, opt.Width, opt.Height, opt.DPI)
}
