// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
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

// ComprehensiveFile is the artifact written by Comprehensive.
const ComprehensiveFile = "comprehensive_comparison.png"

// Comprehensive lays out the execution-time, operation-count and MST
// cost comparisons plus a side-by-side time bar chart as four panels
// under one shared title.
func Comprehensive(records []benchcsv.Record, dir string, opt Options) error {
	timePl := newPanel("(a) Execution Time", "Vertices", "Time (ms)")
	if err := addPanelSeries(timePl, records, timeMS, opt, false); err != nil {
		return err
	}
	opsPl := newPanel("(b) Operation Count", "Vertices", "Operations")
	if err := addPanelSeries(opsPl, records, operations, opt, false); err != nil {
		return err
	}
	costPl := newPanel("(c) MST Cost Verification", "Vertices", "MST Cost")
	if err := addPanelSeries(costPl, records, mstCost, opt, true); err != nil {
		return err
	}
	barPl, err := sideBySidePanel(records, opt)
	if err != nil {
		return err
	}

	width := 16 * opt.Width / 10
	height := 2 * opt.Height
	can := vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseDPI(opt.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(can)

	// Reserve a strip at the top of the canvas for the shared title.
	const titleHeight = 0.5 * vg.Inch
	titleArea := draw.Crop(dc, 0, 0, dc.Max.Y-dc.Min.Y-titleHeight, 0)
	sty := timePl.Title.TextStyle
	sty.Font.Size = vg.Points(22)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YTop
	titleArea.FillText(sty, vg.Point{X: (titleArea.Min.X + titleArea.Max.X) / 2, Y: titleArea.Max.Y},
		"MST Algorithm Comparison: Prim vs Kruskal")

	panelArea := draw.Crop(dc, 0, 0, 0, -titleHeight)
	panels := [][]*plot.Plot{
		{timePl, opsPl},
		{costPl, barPl},
	}
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Points(15), PadY: vg.Points(15),
		PadLeft: vg.Points(5), PadRight: vg.Points(5),
		PadBottom: vg.Points(5), PadTop: vg.Points(5),
	}
	canvases := plot.Align(panels, tiles, panelArea)
	for i := range panels {
		for j := range panels[i] {
			panels[i][j].Draw(canvases[i][j])
		}
	}

	f, err := os.Create(filepath.Join(dir, ComprehensiveFile))
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: can}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newPanel(title, xlabel, ylabel string) *plot.Plot {
	pl := newPlot(title, xlabel, ylabel)
	pl.Title.TextStyle.Font.Size = vg.Points(14)
	return pl
}

// addPanelSeries adds both algorithms' series for one metric, with the
// short legend labels used inside panels.
func addPanelSeries(pl *plot.Plot, records []benchcsv.Record, y func(benchcsv.Record) float64, opt Options, dashKruskal bool) error {
	if err := addLinePoints(pl, seriesXY(records, benchcsv.Prim, y),
		"Prim", opt.PrimColor, draw.CircleGlyph{}, false); err != nil {
		return err
	}
	return addLinePoints(pl, seriesXY(records, benchcsv.Kruskal, y),
		"Kruskal", opt.KruskalColor, draw.BoxGlyph{}, dashKruskal)
}

// sideBySidePanel builds the grouped time bar chart, one bar group per
// paired graph ordered by ascending vertex count.
func sideBySidePanel(records []benchcsv.Record, opt Options) (*plot.Plot, error) {
	pairs, _ := benchpair.Join(records)

	primTimes := make(plotter.Values, len(pairs))
	kruskalTimes := make(plotter.Values, len(pairs))
	labels := make([]string, len(pairs))
	for i, p := range pairs {
		primTimes[i] = p.Prim.TimeMS
		kruskalTimes[i] = p.Kruskal.TimeMS
		labels[i] = fmt.Sprintf("%d", p.Vertices)
	}

	pl := newPanel("(d) Side-by-Side Comparison", "Graph Size (Vertices)", "Time (ms)")

	barWidth := vg.Points(10)
	pb, err := plotter.NewBarChart(primTimes, barWidth)
	if err != nil {
		return nil, err
	}
	pb.Color = opt.PrimColor
	pb.Offset = -barWidth / 2

	kb, err := plotter.NewBarChart(kruskalTimes, barWidth)
	if err != nil {
		return nil, err
	}
	kb.Color = opt.KruskalColor
	kb.Offset = barWidth / 2

	pl.Add(pb, kb)
	pl.Legend.Add("Prim", pb)
	pl.Legend.Add("Kruskal", kb)
	pl.NominalX(labels...)
	return pl, nil
}
