// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mstplot renders comparison charts and summary statistics from an MST
// benchmark CSV log.
//
// Usage:
//
//	mstplot [-i comparison.csv] [-o plotdir]
//
// An optional .env file (or the process environment) can configure a
// run archive: MSTPLOT_ARCHIVE_DRIVER selects sqlite3 or mysql and
// MSTPLOT_ARCHIVE_DSN the data source. Archiving failures are reported
// but never block report generation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mstlab/mstbench/benchchart"
	"github.com/mstlab/mstbench/benchcsv"
	"github.com/mstlab/mstbench/benchdb"
	"github.com/mstlab/mstbench/benchpair"
)

const (
	defaultInput  = "data/output/comparison.csv"
	defaultOutput = "docs/plots"
)

func main() {
	var input, output string
	flag.StringVar(&input, "input", defaultInput, "input CSV file")
	flag.StringVar(&input, "i", defaultInput, "shorthand for -input")
	flag.StringVar(&output, "output", defaultOutput, "output directory for plots")
	flag.StringVar(&output, "o", defaultOutput, "shorthand for -output")
	flag.Parse()

	os.Exit(run(input, output))
}

func run(input, output string) int {
	// A .env file is optional; the environment may already be set.
	godotenv.Load()

	rule := strings.Repeat("=", 60)
	fmt.Println(rule)
	fmt.Println("MST RESULTS PLOTTING")
	fmt.Println(rule)

	if err := os.MkdirAll(output, 0777); err != nil {
		fmt.Printf("✗ Error creating %s: %v\n", output, err)
		return 1
	}

	ds, err := benchcsv.Load(input)
	if err != nil {
		fmt.Printf("✗ Error loading %s: %v\n", input, err)
		return 1
	}
	cols := ds.Columns()
	fmt.Printf("✓ Loaded %s: %d rows, %d columns\n", input, ds.NumRows(), len(cols))
	fmt.Printf("  Columns: %s\n", strings.Join(cols, ", "))

	records, err := ds.Records()
	if err != nil {
		fmt.Printf("✗ Error reading records: %v\n", err)
		return 1
	}

	archive(input, records)

	fmt.Println("\nGenerating plots...")
	fmt.Println(strings.Repeat("-", 60))

	failed := 0
	results := benchchart.RenderAll(records, output, benchchart.DefaultOptions())
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Printf("✗ Error generating %s: %v\n", res.Name, res.Err)
			continue
		}
		fmt.Printf("✓ Saved: %s\n", res.Path)
	}

	sum, warnings := benchpair.Summarize(records)
	for _, w := range warnings {
		fmt.Printf("  warning: skipping %v\n", w)
	}
	summaryText := sum.Format()
	fmt.Println()
	fmt.Println(summaryText)
	if err := benchchart.WriteSummary(sum, output); err != nil {
		failed++
		fmt.Printf("\n✗ Error saving summary: %v\n", err)
	} else {
		fmt.Printf("\n✓ Saved: %s\n", filepath.Join(output, benchchart.SummaryFile))
	}

	if err := benchchart.WriteIndex(results, summaryText, output); err != nil {
		failed++
		fmt.Printf("✗ Error saving index: %v\n", err)
	} else {
		fmt.Printf("✓ Saved: %s\n", filepath.Join(output, benchchart.IndexFile))
	}

	fmt.Println(strings.Repeat("-", 60))
	if failed > 0 {
		fmt.Printf("✗ %d report(s) failed; see diagnostics above\n", failed)
		return 1
	}
	fmt.Printf("✓ All plots saved to: %s\n", output)
	fmt.Println(rule)
	return 0
}

// archive stores the run in the configured SQL archive, if any. It
// only warns on failure: losing an archive row must not cost a report.
func archive(input string, records []benchcsv.Record) {
	driver := os.Getenv("MSTPLOT_ARCHIVE_DRIVER")
	dsn := os.Getenv("MSTPLOT_ARCHIVE_DSN")
	if driver == "" || dsn == "" {
		return
	}
	db, err := benchdb.OpenSQL(driver, dsn)
	if err != nil {
		fmt.Printf("  warning: archive unavailable: %v\n", err)
		return
	}
	defer db.Close()
	id, err := db.InsertRun(context.Background(), input, records)
	if err != nil {
		fmt.Printf("  warning: archiving run: %v\n", err)
		return
	}
	fmt.Printf("✓ Archived run %d (%d records)\n", id, len(records))
}
