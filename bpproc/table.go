// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bpproc provides read-only summary views over a set of
// enriched branch predictor results.
//
// Every view groups records by one or more key columns (Predictor,
// Workload, or Run). Groups appear in the order their first record
// appears in the input, so the output is deterministic for a given
// load order. No view modifies its input.
package bpproc

import (
	"github.com/aclements/go-gg/table"

	"github.com/bpred/bpstat/bpfmt"
)

// Column names of the internal grouping table. These match the
// exported field names of row.
const (
	colIndex     = "Index"
	colRun       = "Run"
	colWorkload  = "Workload"
	colPredictor = "Predictor"
	colMPKI      = "MPKI"
)

// row is the projection of a bpfmt.Record used for grouping. Index
// refers back to the position of the record in the input slice.
type row struct {
	Index     int
	Run       string
	Workload  string
	Predictor string

	IPC, MPKI, IPM, Improvement, MissRate float64
}

// newTable builds a go-gg table with one row per record.
func newTable(recs []bpfmt.Record) *table.Table {
	rows := make([]row, len(recs))
	for i := range recs {
		r := &recs[i]
		rows[i] = row{
			Index:       i,
			Run:         r.Run,
			Workload:    r.Workload,
			Predictor:   r.Predictor,
			IPC:         r.IPC,
			MPKI:        r.MPKI,
			IPM:         r.IPM,
			Improvement: r.MPKIImprovement,
			MissRate:    r.MRFloat,
		}
	}
	return table.TableFromStructs(rows)
}

// group groups recs by cols and calls f for each group in order of
// first appearance. keys holds the group's value for each of cols.
func group(recs []bpfmt.Record, cols []string, f func(keys []string, t *table.Table)) {
	if len(recs) == 0 {
		return
	}
	g := table.GroupBy(newTable(recs), cols...)
	for _, gid := range g.Tables() {
		keys := make([]string, len(cols))
		p := gid
		for i := len(cols) - 1; i >= 0; i-- {
			keys[i] = p.Label().(string)
			p = p.Parent()
		}
		f(keys, g.Table(gid))
	}
}

// floats returns column col of t as a []float64.
func floats(t *table.Table, col string) []float64 {
	return t.MustColumn(col).([]float64)
}

// indexes returns the input positions of the rows of t.
func indexes(t *table.Table) []int {
	return t.MustColumn(colIndex).([]int)
}
