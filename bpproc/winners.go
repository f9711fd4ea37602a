// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpproc

import (
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	"github.com/bpred/bpstat/bpfmt"
)

// A Winner is the record with the lowest MPKI on one trace.
type Winner struct {
	Run    string
	Record bpfmt.Record
}

// Winners selects, for every Run, the record with the lowest MPKI.
// If several records tie, the one that appears first in recs wins.
func Winners(recs []bpfmt.Record) []*Winner {
	var out []*Winner
	group(recs, []string{colRun}, func(keys []string, t *table.Table) {
		i := slice.ArgMin(floats(t, colMPKI))
		out = append(out, &Winner{Run: keys[0], Record: recs[indexes(t)[i]]})
	})
	return out
}

// A WinCount is the number of traces on which a predictor had the
// lowest MPKI.
type WinCount struct {
	Predictor string
	Wins      int
}

// WinCounts counts the wins of every predictor in recs, including
// predictors that never win. The result is ordered by decreasing wins,
// then by first appearance.
func WinCounts(recs []bpfmt.Record) []*WinCount {
	var out []*WinCount
	pos := make(map[string]int)
	for i := range recs {
		p := recs[i].Predictor
		if _, ok := pos[p]; !ok {
			pos[p] = len(out)
			out = append(out, &WinCount{Predictor: p})
		}
	}
	for _, w := range Winners(recs) {
		out[pos[w.Record.Predictor]].Wins++
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Wins > out[j].Wins
	})
	return out
}
