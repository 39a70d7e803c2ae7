// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchpair_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstlab/mstbench/benchcsv"
	"github.com/mstlab/mstbench/benchpair"
)

func rec(graph string, algo benchcsv.Algorithm, vertices, edges int, timeMS float64, ops int64, cost float64) benchcsv.Record {
	return benchcsv.Record{
		Graph:      graph,
		Algorithm:  algo,
		Vertices:   vertices,
		Edges:      edges,
		TimeMS:     timeMS,
		Operations: ops,
		MSTCost:    cost,
	}
}

// scenarioRecords is the two-graph dataset used throughout: Kruskal
// wins both graphs, costs agree.
func scenarioRecords() []benchcsv.Record {
	return []benchcsv.Record{
		rec("sparse_20", benchcsv.Prim, 20, 60, 12, 400, 250),
		rec("sparse_10", benchcsv.Prim, 10, 20, 5, 150, 100),
		rec("sparse_10", benchcsv.Kruskal, 10, 20, 4, 130, 100),
		rec("sparse_20", benchcsv.Kruskal, 20, 60, 9, 360, 250),
	}
}

func TestJoinOrdersByVertices(t *testing.T) {
	pairs, warnings := benchpair.Join(scenarioRecords())
	require.Empty(t, warnings)
	require.Len(t, pairs, 2)

	assert.Equal(t, "sparse_10", pairs[0].Graph)
	assert.Equal(t, 10, pairs[0].Vertices)
	assert.Equal(t, "sparse_20", pairs[1].Graph)
	assert.Equal(t, benchcsv.Prim, pairs[0].Prim.Algorithm)
	assert.Equal(t, benchcsv.Kruskal, pairs[0].Kruskal.Algorithm)
}

func TestJoinSkipsUnpairedGraph(t *testing.T) {
	records := append(scenarioRecords(),
		rec("orphan_30", benchcsv.Prim, 30, 100, 20, 700, 500))

	pairs, warnings := benchpair.Join(records)
	require.Len(t, warnings, 1)
	assert.ErrorContains(t, warnings[0], "orphan_30")
	require.Len(t, pairs, 2)
	for _, p := range pairs {
		assert.NotEqual(t, "orphan_30", p.Graph)
	}
}

func TestJoinSkipsDuplicateRuns(t *testing.T) {
	records := append(scenarioRecords(),
		rec("dup_30", benchcsv.Prim, 30, 100, 20, 700, 500),
		rec("dup_30", benchcsv.Prim, 30, 100, 21, 710, 500),
		rec("dup_30", benchcsv.Kruskal, 30, 100, 18, 650, 500))

	pairs, warnings := benchpair.Join(records)
	require.Len(t, warnings, 1)
	require.Len(t, pairs, 2)
}

func TestSpeedRatio(t *testing.T) {
	p := benchpair.Pair{
		Prim:    rec("g", benchcsv.Prim, 10, 20, 5, 0, 0),
		Kruskal: rec("g", benchcsv.Kruskal, 10, 20, 4, 0, 0),
	}
	ratio, ok := p.SpeedRatio()
	require.True(t, ok)
	assert.InDelta(t, 0.8, ratio, 1e-12)
}

func TestSpeedRatioZeroPrimTime(t *testing.T) {
	p := benchpair.Pair{
		Prim:    rec("g", benchcsv.Prim, 10, 20, 0, 0, 0),
		Kruskal: rec("g", benchcsv.Kruskal, 10, 20, 4, 0, 0),
	}
	_, ok := p.SpeedRatio()
	assert.False(t, ok)
}

func TestRatiosExcludeZeroPrimTime(t *testing.T) {
	records := append(scenarioRecords(),
		rec("instant_5", benchcsv.Prim, 5, 6, 0, 10, 12),
		rec("instant_5", benchcsv.Kruskal, 5, 6, 1, 12, 12))

	pairs, _ := benchpair.Join(records)
	ratios := benchpair.Ratios(pairs)
	require.Len(t, ratios, 2)
	for _, r := range ratios {
		assert.False(t, math.IsNaN(r.Value) || math.IsInf(r.Value, 0))
		assert.NotEqual(t, "instant_5", r.Graph)
	}
	assert.InDelta(t, 0.8, ratios[0].Value, 1e-12)
	assert.InDelta(t, 0.75, ratios[1].Value, 1e-12)
}

func TestEdgeDensity(t *testing.T) {
	// Two vertices, one edge: the only possible edge is present.
	assert.InDelta(t, 1.0, benchpair.EdgeDensity(rec("g", benchcsv.Prim, 2, 1, 0, 0, 0)), 1e-12)
	// Complete graph on 10 vertices.
	assert.InDelta(t, 1.0, benchpair.EdgeDensity(rec("g", benchcsv.Prim, 10, 45, 0, 0, 0)), 1e-12)
	// Tree on 10 vertices.
	assert.InDelta(t, 0.2, benchpair.EdgeDensity(rec("g", benchcsv.Prim, 10, 9, 0, 0, 0)), 1e-12)
}

func TestSeries(t *testing.T) {
	series := benchpair.Series(scenarioRecords(), benchcsv.Kruskal)
	require.Len(t, series, 2)
	assert.Equal(t, 10, series[0].Vertices)
	assert.Equal(t, 20, series[1].Vertices)
	for _, r := range series {
		assert.Equal(t, benchcsv.Kruskal, r.Algorithm)
	}
}

func TestCostsMatch(t *testing.T) {
	pairs, _ := benchpair.Join(scenarioRecords())
	assert.True(t, benchpair.CostsMatch(pairs))

	// Rounding noise from a different summation order still matches.
	noisy := scenarioRecords()
	noisy[2].MSTCost += 1e-9
	pairs, _ = benchpair.Join(noisy)
	assert.True(t, benchpair.CostsMatch(pairs))

	// A real discrepancy does not.
	wrong := scenarioRecords()
	wrong[2].MSTCost = 101
	pairs, _ = benchpair.Join(wrong)
	assert.False(t, benchpair.CostsMatch(pairs))
}
