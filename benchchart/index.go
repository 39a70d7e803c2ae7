// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/safehtml/template"
)

// IndexFile is the HTML gallery page linking the artifacts of a run.
const IndexFile = "index.html"

var indexTmpl = template.Must(template.New("index").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>MST Algorithm Comparison</title>
</head>
<body>
<h1>MST Algorithm Comparison: Prim vs Kruskal</h1>
<p>Generated {{.Generated}}.</p>
{{range .Charts}}
<h2>{{.Name}}</h2>
<img src="{{.File}}" alt="{{.Name}}" width="960">
{{end}}
<h2>Summary statistics</h2>
<pre>{{.Summary}}</pre>
</body>
</html>
`)))

type indexChart struct {
	Name string
	File string
}

type indexData struct {
	Generated string
	Charts    []indexChart
	Summary   string
}

// WriteIndex writes an HTML gallery in dir linking every successfully
// rendered chart, with the summary block inlined. Failed reports are
// left out rather than linked as broken images.
func WriteIndex(results []Result, summaryText, dir string) error {
	data := indexData{
		Generated: time.Now().Format(time.RFC1123),
		Summary:   summaryText,
	}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		data.Charts = append(data.Charts, indexChart{Name: r.Name, File: filepath.Base(r.Path)})
	}

	f, err := os.Create(filepath.Join(dir, IndexFile))
	if err != nil {
		return err
	}
	if err := indexTmpl.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
