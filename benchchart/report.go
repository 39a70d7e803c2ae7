// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mstlab/mstbench/benchcsv"
	"github.com/mstlab/mstbench/benchpair"
)

// SummaryFile is the text artifact written by WriteSummary.
const SummaryFile = "summary_statistics.txt"

// A Generator renders one report artifact.
type Generator struct {
	// Name identifies the report in status output.
	Name string

	// File is the artifact's filename within the output directory.
	File string

	Render func(records []benchcsv.Record, dir string, opt Options) error
}

// Generators returns every chart report. The order is presentational
// only; RenderAll runs them concurrently.
func Generators() []Generator {
	return []Generator{
		{"execution time comparison", ExecutionTimeFile, ExecutionTime},
		{"operation count comparison", OperationsFile, Operations},
		{"MST cost verification", CostVerificationFile, CostVerification},
		{"performance ratio", PerformanceRatioFile, PerformanceRatio},
		{"edge density impact", EdgeDensityFile, EdgeDensityImpact},
		{"comprehensive comparison", ComprehensiveFile, Comprehensive},
	}
}

// A Result reports the outcome of one generator.
type Result struct {
	Name string
	Path string
	Err  error
}

// RenderAll runs every generator over the same read-only record slice,
// one goroutine per report. A failing or panicking generator is
// recorded in its Result and does not stop its siblings.
func RenderAll(records []benchcsv.Record, dir string, opt Options) []Result {
	return render(Generators(), records, dir, opt)
}

func render(gens []Generator, records []benchcsv.Record, dir string, opt Options) []Result {
	results := make([]Result, len(gens))
	var wg sync.WaitGroup
	for i, g := range gens {
		wg.Add(1)
		go func(i int, g Generator) {
			defer wg.Done()
			res := Result{Name: g.Name, Path: filepath.Join(dir, g.File)}
			defer func() {
				if p := recover(); p != nil {
					res.Err = fmt.Errorf("rendering %s: panic: %v", g.Name, p)
				}
				results[i] = res
			}()
			res.Err = g.Render(records, dir, opt)
		}(i, g)
	}
	wg.Wait()
	return results
}

// WriteSummary persists the formatted summary block in dir, replacing
// any previous one. Echoing the block to the console is the caller's
// concern.
func WriteSummary(sum *benchpair.Summary, dir string) error {
	return os.WriteFile(filepath.Join(dir, SummaryFile), []byte(sum.Format()+"\n"), 0666)
}
