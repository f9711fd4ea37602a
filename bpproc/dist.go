// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpproc

import (
	"math"
	"sort"

	"github.com/aclements/go-gg/table"

	"github.com/bpred/bpstat/bpfmt"
	"github.com/bpred/bpstat/bpmath"
)

// A Distribution summarizes the spread of one predictor's MPKI across
// traces.
type Distribution struct {
	Predictor string
	MPKI      bpmath.Summary
}

// Distributions summarizes the MPKI of every predictor.
func Distributions(recs []bpfmt.Record) []*Distribution {
	var out []*Distribution
	group(recs, []string{colPredictor}, func(keys []string, t *table.Table) {
		s := bpmath.NewSample(floats(t, colMPKI))
		out = append(out, &Distribution{Predictor: keys[0], MPKI: s.Summary()})
	})
	return out
}

// An Improvement is the mean MPKI improvement of one predictor over
// the baseline.
type Improvement struct {
	Predictor string

	// Mean is the average improvement in percent over the traces
	// the baseline also ran, or missing if there are none.
	Mean float64

	// N is the number of traces that contributed to Mean.
	N int
}

// Improvements returns the mean improvement of every predictor other
// than baseline, from most to least improved. Predictors with no
// comparable traces sort last.
func Improvements(recs []bpfmt.Record, baseline string) []*Improvement {
	var out []*Improvement
	group(recs, []string{colPredictor}, func(keys []string, t *table.Table) {
		if keys[0] == baseline {
			return
		}
		s := bpmath.NewSample(floats(t, "Improvement"))
		out = append(out, &Improvement{Predictor: keys[0], Mean: s.Mean(), N: s.N()})
	})
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Mean, out[j].Mean
		if math.IsNaN(a) || math.IsNaN(b) {
			return !math.IsNaN(a) && math.IsNaN(b)
		}
		return a > b
	})
	return out
}
