// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mstlab/mstbench/benchcsv"
	"github.com/mstlab/mstbench/benchpair"
)

// EdgeDensityFile is the artifact written by EdgeDensityImpact.
const EdgeDensityFile = "edge_density_impact.png"

// EdgeDensityImpact scatters execution time against edge density, one
// point series per algorithm. Scatter points need no ordering. Density
// is undefined below two vertices, so such records are skipped.
func EdgeDensityImpact(records []benchcsv.Record, dir string, opt Options) error {
	pl := newPlot("Impact of Edge Density on Performance",
		"Edge Density (edges / max possible edges)", "Execution Time (ms)")

	add := func(algo benchcsv.Algorithm, label string, clr color.Color, shape draw.GlyphDrawer) error {
		var xys plotter.XYs
		for _, r := range records {
			if r.Algorithm != algo || r.Vertices < 2 {
				continue
			}
			xys = append(xys, plotter.XY{X: benchpair.EdgeDensity(r), Y: r.TimeMS})
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = clr
		sc.GlyphStyle.Radius = vg.Points(5)
		sc.GlyphStyle.Shape = shape
		pl.Add(sc)
		pl.Legend.Add(label, sc)
		return nil
	}

	if err := add(benchcsv.Prim, "Prim's Algorithm", opt.PrimColor, draw.CircleGlyph{}); err != nil {
		return err
	}
	if err := add(benchcsv.Kruskal, "Kruskal's Algorithm", opt.KruskalColor, draw.BoxGlyph{}); err != nil {
		return err
	}
	return writePNG(pl, dir, EdgeDensityFile, opt.Width, opt.Height, opt.DPI)
}
