// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpproc

import (
	"sort"

	"github.com/aclements/go-gg/table"

	"github.com/bpred/bpstat/bpfmt"
)

// A RunMPKI is the MPKI of one predictor on one trace.
type RunMPKI struct {
	Run       string
	Workload  string
	Predictor string
	MPKI      float64
}

// Runs ranks every (Run, Predictor) pair by MPKI, highest first.
// Pairs with equal MPKI are ordered by the first appearance of their
// Run, then of their Predictor. If a predictor reports a Run more than
// once, its first record is used.
func Runs(recs []bpfmt.Record) []*RunMPKI {
	var out []*RunMPKI
	group(recs, []string{colRun, colPredictor}, func(keys []string, t *table.Table) {
		r := &recs[indexes(t)[0]]
		out = append(out, &RunMPKI{Run: keys[0], Workload: r.Workload, Predictor: keys[1], MPKI: r.MPKI})
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MPKI > out[j].MPKI
	})
	return out
}
