// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchpair derives comparative metrics from paired Prim and
// Kruskal benchmark records.
//
// All comparative series produced here are ordered by ascending vertex
// count, regardless of input row order, so chart x-axes are
// reproducible and monotonic.
package benchpair

import (
	"fmt"
	"math"
	"sort"

	"github.com/mstlab/mstbench/benchcsv"
)

// A Pair joins the two measurements taken on a single graph: one Prim
// run and one Kruskal run.
type Pair struct {
	Graph    string
	Vertices int
	Prim     benchcsv.Record
	Kruskal  benchcsv.Record
}

// Join partitions records by graph and pairs each graph's Prim and
// Kruskal runs, ordered by ascending vertex count (graph name breaks
// ties). A graph without exactly one record per algorithm is skipped
// and reported in the returned warning list; a malformed group never
// aborts the rest.
func Join(records []benchcsv.Record) ([]Pair, []error) {
	type group struct {
		prim, kruskal []benchcsv.Record
	}
	groups := make(map[string]*group)
	var order []string
	var warnings []error
	for _, r := range records {
		g := groups[r.Graph]
		if g == nil {
			g = new(group)
			groups[r.Graph] = g
			order = append(order, r.Graph)
		}
		switch r.Algorithm {
		case benchcsv.Prim:
			g.prim = append(g.prim, r)
		case benchcsv.Kruskal:
			g.kruskal = append(g.kruskal, r)
		default:
			warnings = append(warnings, fmt.Errorf("graph %q: unknown algorithm %q", r.Graph, r.Algorithm))
		}
	}

	pairs := make([]Pair, 0, len(order))
	for _, name := range order {
		g := groups[name]
		if len(g.prim) != 1 || len(g.kruskal) != 1 {
			warnings = append(warnings, fmt.Errorf("graph %q: want one Prim and one Kruskal record, have %d and %d", name, len(g.prim), len(g.kruskal)))
			continue
		}
		pairs = append(pairs, Pair{
			Graph:    name,
			Vertices: g.prim[0].Vertices,
			Prim:     g.prim[0],
			Kruskal:  g.kruskal[0],
		})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Vertices != pairs[j].Vertices {
			return pairs[i].Vertices < pairs[j].Vertices
		}
		return pairs[i].Graph < pairs[j].Graph
	})
	return pairs, warnings
}

// SpeedRatio returns Kruskal time over Prim time for this pair. It
// reports ok=false when the Prim time is zero, in which case the pair
// must be left out of ratio series rather than producing Inf or NaN.
func (p Pair) SpeedRatio() (ratio float64, ok bool) {
	if p.Prim.TimeMS <= 0 {
		return 0, false
	}
	return p.Kruskal.TimeMS / p.Prim.TimeMS, true
}

// A Ratio is the relative execution time of Kruskal vs Prim on one
// graph. Value < 1 means Kruskal was faster.
type Ratio struct {
	Graph    string
	Vertices int
	Value    float64
}

// Ratios computes the speed ratio of every pair with a nonzero Prim
// time, preserving the ascending-vertices order of pairs.
func Ratios(pairs []Pair) []Ratio {
	ratios := make([]Ratio, 0, len(pairs))
	for _, p := range pairs {
		v, ok := p.SpeedRatio()
		if !ok {
			continue
		}
		ratios = append(ratios, Ratio{Graph: p.Graph, Vertices: p.Vertices, Value: v})
	}
	return ratios
}

// EdgeDensity returns the ratio of r's edges to the maximum possible
// edges of a simple undirected graph on the same vertices. It is
// defined only for records with at least two vertices; callers must
// filter out smaller graphs.
func EdgeDensity(r benchcsv.Record) float64 {
	return float64(r.Edges) / (float64(r.Vertices) * float64(r.Vertices-1) / 2)
}

// Series returns records for one algorithm ordered by ascending vertex
// count. The sort is stable, so equal-sized graphs keep file order.
func Series(records []benchcsv.Record, algo benchcsv.Algorithm) []benchcsv.Record {
	var out []benchcsv.Record
	for _, r := range records {
		if r.Algorithm == algo {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Vertices < out[j].Vertices })
	return out
}

// MST costs are floating-point sums accumulated in different edge
// orders by the two algorithms, so cross-checking them needs a
// relative plus absolute tolerance, never exact equality.
const (
	costRelTol = 1e-5
	costAbsTol = 1e-8
)

// CostsMatch reports whether every pair's two MST costs agree within
// tolerance. It is vacuously true for an empty pair list.
func CostsMatch(pairs []Pair) bool {
	for _, p := range pairs {
		if !costsClose(p.Prim.MSTCost, p.Kruskal.MSTCost) {
			return false
		}
	}
	return true
}

func costsClose(a, b float64) bool {
	return math.Abs(a-b) <= costAbsTol+costRelTol*math.Abs(b)
}
