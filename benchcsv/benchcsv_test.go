// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstlab/mstbench/benchcsv"
)

const comparisonCSV = `Graph,Algorithm,Vertices,Edges,Time(ms),Operations,MST Cost
sparse_10,Prim,10,20,5,150,100
sparse_10,Kruskal,10,20,4,130,100
sparse_20,Prim,20,60,12,400,250
sparse_20,Kruskal,20,60,9,360,250
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "comparison.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestLoad(t *testing.T) {
	ds, err := benchcsv.Load(writeCSV(t, comparisonCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, ds.NumRows())
	assert.Equal(t, []string{"Graph", "Algorithm", "Vertices", "Edges", "Time(ms)", "Operations", "MST Cost"}, ds.Columns())
}

func TestLoadMissingFile(t *testing.T) {
	ds, err := benchcsv.Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Nil(t, ds)
}

func TestLoadMalformedRow(t *testing.T) {
	path := writeCSV(t, "Graph,Algorithm,Vertices\nsparse_10,Prim\n")
	_, err := benchcsv.Load(path)
	require.Error(t, err)
}

func TestRecords(t *testing.T) {
	ds, err := benchcsv.Load(writeCSV(t, comparisonCSV))
	require.NoError(t, err)

	records, err := ds.Records()
	require.NoError(t, err)
	require.Len(t, records, 4)

	want := benchcsv.Record{
		Graph:      "sparse_10",
		Algorithm:  benchcsv.Prim,
		Vertices:   10,
		Edges:      20,
		TimeMS:     5,
		Operations: 150,
		MSTCost:    100,
	}
	assert.Equal(t, want, records[0])
	assert.Equal(t, benchcsv.Kruskal, records[1].Algorithm)
}

// Mutating a returned record slice must not leak into later calls.
func TestRecordsImmutable(t *testing.T) {
	ds, err := benchcsv.Load(writeCSV(t, comparisonCSV))
	require.NoError(t, err)

	first, err := ds.Records()
	require.NoError(t, err)
	first[0].Graph = "clobbered"
	first[0].TimeMS = -1

	second, err := ds.Records()
	require.NoError(t, err)
	assert.Equal(t, "sparse_10", second[0].Graph)
	assert.Equal(t, 5.0, second[0].TimeMS)
}

func TestRecordsMissingColumn(t *testing.T) {
	// Loading must succeed; the absent column surfaces on first
	// typed access.
	ds, err := benchcsv.Load(writeCSV(t, "Graph,Algorithm,Vertices,Edges,Time(ms),MST Cost\ng,Prim,10,20,5,100\n"))
	require.NoError(t, err)

	_, err = ds.Records()
	var missing *benchcsv.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Operations", missing.Column)
}

func TestRecordsBadCell(t *testing.T) {
	ds, err := benchcsv.Load(writeCSV(t, "Graph,Algorithm,Vertices,Edges,Time(ms),Operations,MST Cost\ng,Prim,ten,20,5,150,100\n"))
	require.NoError(t, err)

	_, err = ds.Records()
	var verr *benchcsv.ValueError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 1, verr.Row)
	assert.Equal(t, "Vertices", verr.Column)
}
