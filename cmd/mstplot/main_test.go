// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const comparisonCSV = `Graph,Algorithm,Vertices,Edges,Time(ms),Operations,MST Cost
sparse_10,Prim,10,20,5,150,100
sparse_10,Kruskal,10,20,4,130,100
sparse_20,Prim,20,60,12,400,250
sparse_20,Kruskal,20,60,9,360,250
`

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "comparison.csv")
	require.NoError(t, os.WriteFile(input, []byte(comparisonCSV), 0666))
	output := filepath.Join(dir, "plots")

	require.Equal(t, 0, run(input, output))

	for _, name := range []string{
		"execution_time_comparison.png",
		"operations_comparison.png",
		"mst_cost_verification.png",
		"performance_ratio.png",
		"edge_density_impact.png",
		"comprehensive_comparison.png",
		"summary_statistics.txt",
		"index.html",
	} {
		st, err := os.Stat(filepath.Join(output, name))
		require.NoError(t, err, name)
		assert.Greater(t, st.Size(), int64(0), name)
	}
}

// A load failure aborts the run before any artifact is produced.
func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "plots")

	require.Equal(t, 1, run(filepath.Join(dir, "absent.csv"), output))

	entries, err := os.ReadDir(output)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunArchives(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "comparison.csv")
	require.NoError(t, os.WriteFile(input, []byte(comparisonCSV), 0666))

	t.Setenv("MSTPLOT_ARCHIVE_DRIVER", "sqlite3")
	t.Setenv("MSTPLOT_ARCHIVE_DSN", filepath.Join(dir, "archive.db"))

	require.Equal(t, 0, run(input, filepath.Join(dir, "plots")))

	st, err := os.Stat(filepath.Join(dir, "archive.db"))
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))
}
