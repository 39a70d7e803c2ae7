// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchpair

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/stats"

	"github.com/mstlab/mstbench/benchcsv"
)

// AlgoStats aggregates every run of a single algorithm.
type AlgoStats struct {
	MeanTimeMS     float64
	MeanOperations float64
	Graphs         int
}

// A Summary is the aggregate comparison of the two algorithms over a
// whole dataset.
type Summary struct {
	Prim    AlgoStats
	Kruskal AlgoStats

	// Win counts over paired graphs, joined by graph identity.
	// PrimWins + KruskalWins + Ties == TotalPairs.
	PrimWins    int
	KruskalWins int
	Ties        int
	TotalPairs  int

	// GeoMeanRatio is the geometric mean of the per-graph speed
	// ratios (Kruskal/Prim); NaN when no ratio is defined.
	GeoMeanRatio float64

	// CostsMatch is the tolerance-based correctness verdict over
	// the paired MST costs.
	CostsMatch bool
}

// Summarize computes the aggregate comparison. Win counts compare the
// two runs of each joined pair, so they are immune to input row order.
// Warnings from the underlying Join (malformed groups) are passed
// through.
func Summarize(records []benchcsv.Record) (*Summary, []error) {
	pairs, warnings := Join(records)

	s := &Summary{
		Prim:         algoStats(records, benchcsv.Prim),
		Kruskal:      algoStats(records, benchcsv.Kruskal),
		TotalPairs:   len(pairs),
		GeoMeanRatio: math.NaN(),
		CostsMatch:   CostsMatch(pairs),
	}

	var ratios []float64
	for _, p := range pairs {
		switch {
		case p.Prim.TimeMS < p.Kruskal.TimeMS:
			s.PrimWins++
		case p.Kruskal.TimeMS < p.Prim.TimeMS:
			s.KruskalWins++
		default:
			s.Ties++
		}
		if r, ok := p.SpeedRatio(); ok {
			ratios = append(ratios, r)
		}
	}
	if len(ratios) > 0 {
		s.GeoMeanRatio = stats.GeoMean(ratios)
	}
	return s, warnings
}

func algoStats(records []benchcsv.Record, algo benchcsv.Algorithm) AlgoStats {
	var times, ops []float64
	for _, r := range records {
		if r.Algorithm != algo {
			continue
		}
		times = append(times, r.TimeMS)
		ops = append(ops, float64(r.Operations))
	}
	if len(times) == 0 {
		return AlgoStats{}
	}
	return AlgoStats{
		MeanTimeMS:     stats.Mean(times),
		MeanOperations: stats.Mean(ops),
		Graphs:         len(times),
	}
}

// Format renders the summary as the human-readable report text that is
// echoed to the console and persisted as summary_statistics.txt.
func (s *Summary) Format() string {
	rule := strings.Repeat("=", 60)

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "MST ALGORITHM PERFORMANCE SUMMARY")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)

	writeAlgo := func(name string, a AlgoStats) {
		fmt.Fprintf(&b, "%s's Algorithm:\n", name)
		fmt.Fprintf(&b, "  Average Time: %.2f ms\n", a.MeanTimeMS)
		fmt.Fprintf(&b, "  Average Operations: %.0f\n", a.MeanOperations)
		fmt.Fprintf(&b, "  Total Graphs: %d\n", a.Graphs)
		fmt.Fprintln(&b)
	}
	writeAlgo("Prim", s.Prim)
	writeAlgo("Kruskal", s.Kruskal)

	fmt.Fprintln(&b, "Performance Summary:")
	fmt.Fprintf(&b, "  Prim faster: %d times\n", s.PrimWins)
	fmt.Fprintf(&b, "  Kruskal faster: %d times\n", s.KruskalWins)
	if s.Ties > 0 {
		fmt.Fprintf(&b, "  Ties: %d\n", s.Ties)
	}
	if !math.IsNaN(s.GeoMeanRatio) {
		fmt.Fprintf(&b, "  Geometric mean ratio (Kruskal/Prim): %.3f\n", s.GeoMeanRatio)
	}
	fmt.Fprintln(&b)

	if s.CostsMatch {
		fmt.Fprintln(&b, "Correctness: ✓ All MST costs match")
	} else {
		fmt.Fprintln(&b, "Correctness: ✗ MST costs differ!")
	}
	b.WriteString(rule)
	return b.String()
}
