// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bpmath computes derived metrics over branch predictor
// results.
//
// Enrich attaches to every record its efficiency ratio (instructions
// per misprediction) and its MPKI improvement relative to a baseline
// predictor on the same trace. Sample provides statistics that skip
// missing measurements.
package bpmath

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/bpred/bpstat/bpfmt"
)

// DefaultBaseline is the predictor other predictors are compared
// against by default.
const DefaultBaseline = "gshare"

// Epsilon is added to denominators to avoid dividing by zero. It is
// far below the resolution of any real count.
const Epsilon = 1e-9

// IPM returns instructions per misprediction. It is finite and
// non-negative for finite, non-negative inputs, including mispBr == 0.
// A ratio too large for a float64 saturates at math.MaxFloat64.
func IPM(instr, mispBr float64) float64 {
	v := instr / (mispBr + Epsilon)
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}

// Improvement returns the percent by which mpki improves on baseline.
// Positive values mean fewer mispredictions than the baseline. If
// either input is missing the result is missing.
func Improvement(baseline, mpki float64) float64 {
	return (baseline - mpki) / (baseline + Epsilon) * 100
}

// Baseline maps each Run to the baseline predictor's MPKI on it.
type Baseline struct {
	Predictor string
	MPKI      map[string]float64
}

// NewBaseline projects recs onto the (Run, MPKI) pairs of predictor.
// If predictor reports a Run more than once, the first row wins.
func NewBaseline(recs []bpfmt.Record, predictor string) *Baseline {
	b := &Baseline{Predictor: predictor, MPKI: make(map[string]float64)}
	for i := range recs {
		r := &recs[i]
		if r.Predictor != predictor {
			continue
		}
		if _, ok := b.MPKI[r.Run]; !ok {
			b.MPKI[r.Run] = r.MPKI
		}
	}
	return b
}

// Found reports whether the baseline predictor has any records.
func (b *Baseline) Found() bool {
	return len(b.MPKI) > 0
}

// Lookup returns the baseline MPKI for run, or a missing value.
func (b *Baseline) Lookup(run string) float64 {
	if v, ok := b.MPKI[run]; ok {
		return v
	}
	return bpfmt.Missing()
}

// Enriched is the result of Enrich.
type Enriched struct {
	Records  []bpfmt.Record
	Baseline *Baseline
}

// Enrich returns a copy of recs with IPM, MPKIBaseline and
// MPKIImprovement set. It does not modify recs.
//
// The baseline MPKI is joined onto every record by Run. A Run the
// baseline did not report gets a missing baseline and improvement.
// If the baseline predictor has no records at all, Enrich logs a
// warning to log (or the standard logger if log is nil) and the
// baseline and improvement are missing for every record.
func Enrich(recs []bpfmt.Record, baseline string, log logrus.FieldLogger) *Enriched {
	if log == nil {
		log = logrus.StandardLogger()
	}
	b := NewBaseline(recs, baseline)
	if !b.Found() {
		log.WithField("baseline", baseline).Warn("baseline predictor not found; improvement will be missing")
	}

	out := make([]bpfmt.Record, len(recs))
	for i, r := range recs {
		r.IPM = IPM(r.Instr, r.MispBr)
		r.MPKIBaseline = b.Lookup(r.Run)
		r.MPKIImprovement = Improvement(r.MPKIBaseline, r.MPKI)
		out[i] = r
	}
	return &Enriched{Records: out, Baseline: b}
}
