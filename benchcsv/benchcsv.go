// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads the CSV comparison log produced by an MST
// benchmark run into an in-memory dataset.
//
// A comparison log has a header row and one data row per (graph,
// algorithm) measurement. Load keeps the raw cells and performs no
// schema validation; the typed view is materialized by Records, so a
// missing or renamed column only surfaces when a consumer first asks
// for it.
package benchcsv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// An Algorithm names one of the two MST algorithms under comparison.
type Algorithm string

const (
	Prim    Algorithm = "Prim"
	Kruskal Algorithm = "Kruskal"
)

// Column names consumed by the reporting pipeline.
const (
	ColGraph      = "Graph"
	ColAlgorithm  = "Algorithm"
	ColVertices   = "Vertices"
	ColEdges      = "Edges"
	ColTimeMS     = "Time(ms)"
	ColOperations = "Operations"
	ColMSTCost    = "MST Cost"
)

// A Record is one benchmark measurement: one algorithm run on one graph.
//
// For a well-formed log every graph has exactly two records, one per
// algorithm. That invariant is not enforced here; benchpair.Join skips
// graphs that violate it.
type Record struct {
	Graph      string
	Algorithm  Algorithm
	Vertices   int
	Edges      int
	TimeMS     float64
	Operations int64
	MSTCost    float64
}

// A Dataset is the ordered contents of one comparison log. It is
// immutable after Load; all derived views are copies.
type Dataset struct {
	path    string
	columns []string
	colIdx  map[string]int
	rows    [][]string

	records []Record // cached typed view
}

// A MissingColumnError reports a column the pipeline needs but the
// input file does not carry.
type MissingColumnError struct {
	Path   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing column %q", e.Path, e.Column)
}

// A ValueError reports a cell that could not be parsed as its column's
// type. Row is 1-based and counts data rows, excluding the header.
type ValueError struct {
	Path   string
	Row    int
	Column string
	Msg    string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: row %d, column %q: %s", e.Path, e.Row, e.Column, e.Msg)
}

// Load reads the comparison log at path. It fails if the file is
// missing, unreadable, or structurally malformed (rows with the wrong
// field count). Column content is not inspected.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("loading %s: empty file", path)
	}

	d := &Dataset{
		path:    path,
		columns: all[0],
		rows:    all[1:],
		colIdx:  make(map[string]int, len(all[0])),
	}
	for i, c := range d.columns {
		d.colIdx[c] = i
	}
	return d, nil
}

// Path returns the file the dataset was loaded from.
func (d *Dataset) Path() string { return d.path }

// NumRows returns the number of data rows, excluding the header.
func (d *Dataset) NumRows() int { return len(d.rows) }

// Columns returns the header row.
func (d *Dataset) Columns() []string {
	cols := make([]string, len(d.columns))
	copy(cols, d.columns)
	return cols
}

// Records returns the typed view of the dataset, in file order. The
// first call parses every consumed column; an absent column yields a
// *MissingColumnError and an unparseable cell a *ValueError. The
// returned slice is the caller's to reorder or filter; the dataset
// keeps its own copy.
func (d *Dataset) Records() ([]Record, error) {
	if d.records != nil {
		return copyRecords(d.records), nil
	}

	var cols [7]int
	for i, name := range []string{ColGraph, ColAlgorithm, ColVertices, ColEdges, ColTimeMS, ColOperations, ColMSTCost} {
		idx, ok := d.colIdx[name]
		if !ok {
			return nil, &MissingColumnError{Path: d.path, Column: name}
		}
		cols[i] = idx
	}

	recs := make([]Record, 0, len(d.rows))
	for i, row := range d.rows {
		cell := func(col int) string { return row[col] }
		verr := func(col int, msg string) *ValueError {
			return &ValueError{Path: d.path, Row: i + 1, Column: d.columns[col], Msg: msg}
		}

		var r Record
		r.Graph = cell(cols[0])
		r.Algorithm = Algorithm(cell(cols[1]))

		v, err := strconv.Atoi(cell(cols[2]))
		if err != nil {
			return nil, verr(cols[2], fmt.Sprintf("bad vertex count %q", cell(cols[2])))
		}
		r.Vertices = v

		e, err := strconv.Atoi(cell(cols[3]))
		if err != nil {
			return nil, verr(cols[3], fmt.Sprintf("bad edge count %q", cell(cols[3])))
		}
		r.Edges = e

		t, err := strconv.ParseFloat(cell(cols[4]), 64)
		if err != nil {
			return nil, verr(cols[4], fmt.Sprintf("bad time %q", cell(cols[4])))
		}
		r.TimeMS = t

		ops, err := strconv.ParseInt(cell(cols[5]), 10, 64)
		if err != nil {
			return nil, verr(cols[5], fmt.Sprintf("bad operation count %q", cell(cols[5])))
		}
		r.Operations = ops

		c, err := strconv.ParseFloat(cell(cols[6]), 64)
		if err != nil {
			return nil, verr(cols[6], fmt.Sprintf("bad MST cost %q", cell(cols[6])))
		}
		r.MSTCost = c

		recs = append(recs, r)
	}
	d.records = recs
	return copyRecords(recs), nil
}

func copyRecords(recs []Record) []Record {
	out := make([]Record, len(recs))
	copy(out, recs)
	return out
}
