// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpproc

import (
	"github.com/aclements/go-gg/table"

	"github.com/bpred/bpstat/bpfmt"
	"github.com/bpred/bpstat/bpmath"
)

// Means is the average of each metric over one group of records.
// Missing values are excluded from each average. A metric with no
// present values in the group averages to a missing value.
type Means struct {
	// Predictor and Workload identify the group. A key the view
	// does not group by is empty.
	Predictor string
	Workload  string

	// N is the number of records in the group.
	N int

	IPC         float64
	MPKI        float64
	IPM         float64
	Improvement float64
	MissRate    float64
}

// Key returns a display name for the group.
func (m *Means) Key() string {
	switch {
	case m.Workload == "":
		return m.Predictor
	case m.Predictor == "":
		return m.Workload
	}
	return m.Workload + "/" + m.Predictor
}

func newMeans(t *table.Table) *Means {
	mean := func(col string) float64 {
		return bpmath.NewSample(floats(t, col)).Mean()
	}
	return &Means{
		N:           t.Len(),
		IPC:         mean("IPC"),
		MPKI:        mean(colMPKI),
		IPM:         mean("IPM"),
		Improvement: mean("Improvement"),
		MissRate:    mean("MissRate"),
	}
}

// PredictorMeans averages every metric per predictor.
func PredictorMeans(recs []bpfmt.Record) []*Means {
	var out []*Means
	group(recs, []string{colPredictor}, func(keys []string, t *table.Table) {
		m := newMeans(t)
		m.Predictor = keys[0]
		out = append(out, m)
	})
	return out
}

// WorkloadMeans averages every metric per workload. If byPredictor is
// set, it averages per (workload, predictor) pair instead.
func WorkloadMeans(recs []bpfmt.Record, byPredictor bool) []*Means {
	cols := []string{colWorkload}
	if byPredictor {
		cols = append(cols, colPredictor)
	}
	var out []*Means
	group(recs, cols, func(keys []string, t *table.Table) {
		m := newMeans(t)
		m.Workload = keys[0]
		if byPredictor {
			m.Predictor = keys[1]
		}
		out = append(out, m)
	})
	return out
}

// Get returns the means for the given keys, or nil.
func Get(ms []*Means, workload, predictor string) *Means {
	for _, m := range ms {
		if m.Workload == workload && m.Predictor == predictor {
			return m
		}
	}
	return nil
}
