// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"gonum.org/v1/plot/vg/draw"

	"github.com/mstlab/mstbench/benchcsv"
	"github.com/mstlab/mstbench/benchpair"
)

// Artifact filenames of the line reports.
const (
	ExecutionTimeFile    = "execution_time_comparison.png"
	OperationsFile       = "operations_comparison.png"
	CostVerificationFile = "mst_cost_verification.png"
)

// ExecutionTime renders both algorithms' execution times over
// ascending vertex counts.
func ExecutionTime(records []benchcsv.Record, dir string, opt Options) error {
	pl := newPlot("Execution Time Comparison: Prim vs Kruskal",
		"Number of Vertices", "Execution Time (ms)")
	if err := addLinePoints(pl, seriesXY(records, benchcsv.Prim, timeMS),
		"Prim's Algorithm", opt.PrimColor, draw.CircleGlyph{}, false); err != nil {
		return err
	}
	if err := addLinePoints(pl, seriesXY(records, benchcsv.Kruskal, timeMS),
		"Kruskal's Algorithm", opt.KruskalColor, draw.BoxGlyph{}, false); err != nil {
		return err
	}
	return writePNG(pl, dir, ExecutionTimeFile, opt.Width, opt.Height, opt.DPI)
}

// Operations renders both algorithms' operation counts over ascending
// vertex counts.
func Operations(records []benchcsv.Record, dir string, opt Options) error {
	pl := newPlot("Operation Count Comparison: Prim vs Kruskal",
		"Number of Vertices", "Number of Operations")
	if err := addLinePoints(pl, seriesXY(records, benchcsv.Prim, operations),
		"Prim's Algorithm", opt.PrimColor, draw.CircleGlyph{}, false); err != nil {
		return err
	}
	if err := addLinePoints(pl, seriesXY(records, benchcsv.Kruskal, operations),
		"Kruskal's Algorithm", opt.KruskalColor, draw.BoxGlyph{}, false); err != nil {
		return err
	}
	return writePNG(pl, dir, OperationsFile, opt.Width, opt.Height, opt.DPI)
}

// CostVerification overlays both algorithms' MST costs, drawing the
// Kruskal series dashed so identical curves stay distinguishable, and
// annotates the title when the paired costs agree within tolerance.
func CostVerification(records []benchcsv.Record, dir string, opt Options) error {
	title := "MST Cost Verification (Both Algorithms)"
	pairs, _ := benchpair.Join(records)
	if len(pairs) > 0 && benchpair.CostsMatch(pairs) {
		title += "\n✓ All MST costs match (correctness verified)"
	}

	pl := newPlot(title, "Number of Vertices", "MST Total Cost")
	if err := addLinePoints(pl, seriesXY(records, benchcsv.Prim, mstCost),
		"Prim's Algorithm", opt.PrimColor, draw.CircleGlyph{}, false); err != nil {
		return err
	}
	if err := addLinePoints(pl, seriesXY(records, benchcsv.Kruskal, mstCost),
		"Kruskal's Algorithm", opt.KruskalColor, draw.BoxGlyph{}, true); err != nil {
		return err
	}
	return writePNG(pl, dir, CostVerificationFile, opt.Width, opt.Height, opt.DPI)
}
