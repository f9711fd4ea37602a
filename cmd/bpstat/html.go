// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Branch Predictor Comparison</title>
<style>
.bpstat { border-collapse: collapse; margin-bottom: 2em; }
.bpstat th { text-align: left; border-bottom: 1px solid #666; padding: 0em 1em 0em 0em; }
.bpstat td { padding: 0em 1em 0em 0em; }
.bpstat td:nth-child(1n+2) { text-align: right; }
</style>
</head>
<body>
{{- range .}}
<h3>{{.Title}}</h3>
<table class='bpstat'>
<tr>{{range .Header}}<th>{{.}}{{end}}
{{range .Rows -}}
<tr>{{range .}}<td>{{.}}{{end}}
{{end -}}
</table>
{{- end}}
</body>
</html>
`))

// FormatHTML appends an HTML report of sections to buf.
func FormatHTML(buf *bytes.Buffer, sections []*Section) {
	err := htmlTemplate.Execute(buf, sections)
	if err != nil {
		// Only possible errors here are template not matching data structure.
		// Don't make caller check - it's our fault.
		panic(err)
	}
}
