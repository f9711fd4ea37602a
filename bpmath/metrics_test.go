// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpmath

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpred/bpstat/bpfmt"
)

func rec(pred, run string, mpki, mispBr, instr float64) bpfmt.Record {
	return bpfmt.Record{
		Run: run, Workload: "SPEC", Predictor: pred,
		IPC: 1.5, MPKI: mpki, MispBr: mispBr, Instr: instr,
		MRFloat: bpfmt.Missing(), IPM: bpfmt.Missing(),
		MPKIBaseline: bpfmt.Missing(), MPKIImprovement: bpfmt.Missing(),
	}
}

func TestIPM(t *testing.T) {
	assert.InDelta(t, 20000.0, IPM(20000000, 1000), 1e-6)

	// Zero mispredictions stays finite.
	v := IPM(20000000, 0)
	assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), "IPM = %v", v)
	assert.Greater(t, v, 0.0)

	assert.Equal(t, 0.0, IPM(0, 0))

	// Huge instruction counts saturate instead of overflowing.
	assert.Equal(t, math.MaxFloat64, IPM(1e300, 0))
	assert.Equal(t, math.MaxFloat64, IPM(math.MaxFloat64, 0))
}

func TestEnrichScenario(t *testing.T) {
	recs := []bpfmt.Record{
		rec("gshare", "trace1", 5.0, 1000, 20000000),
		rec("perceptron", "trace1", 3.0, 600, 20000000),
	}
	log, hook := logtest.NewNullLogger()
	e := Enrich(recs, "gshare", log)
	require.Len(t, e.Records, 2)
	assert.Empty(t, hook.AllEntries())
	assert.True(t, e.Baseline.Found())

	g, p := e.Records[0], e.Records[1]
	assert.Equal(t, 5.0, g.MPKIBaseline)
	assert.Equal(t, 5.0, p.MPKIBaseline)
	assert.InDelta(t, 0.0, g.MPKIImprovement, 1e-9)
	assert.InDelta(t, 40.0, p.MPKIImprovement, 1e-6)
	assert.InDelta(t, 20000.0, g.IPM, 1e-6)
	assert.InDelta(t, 33333.333, p.IPM, 1e-3)

	// The input is untouched.
	for _, r := range recs {
		assert.True(t, bpfmt.IsMissing(r.IPM))
		assert.True(t, bpfmt.IsMissing(r.MPKIImprovement))
	}
}

func TestEnrichProperties(t *testing.T) {
	recs := []bpfmt.Record{
		rec("gshare", "t1", 5, 1000, 2e7),
		rec("gshare", "t2", 0, 0, 2e7),
		rec("gshare", "t3", 12.5, 2500, 2e5),
		rec("tage", "t1", 2, 400, 2e7),
		rec("tage", "t2", 0.5, 10, 2e7),
		rec("tage", "t4", 1, 20, 2e7),
		rec("tage", "t5", 0, 0, 1e300),
	}
	log, _ := logtest.NewNullLogger()
	e := Enrich(recs, "gshare", log)
	for _, r := range e.Records {
		assert.False(t, math.IsInf(r.IPM, 0) || math.IsNaN(r.IPM), "%s: IPM %v", &r, r.IPM)
		assert.GreaterOrEqual(t, r.IPM, 0.0)
		if r.Predictor == "gshare" {
			assert.InDelta(t, 0.0, r.MPKIImprovement, 1e-9, "%s", &r)
			assert.Equal(t, r.MPKI, r.MPKIBaseline)
		}
	}

	// t4 has no baseline row, so it has no baseline value.
	t4 := e.Records[5]
	assert.True(t, bpfmt.IsMissing(t4.MPKIBaseline))
	assert.True(t, bpfmt.IsMissing(t4.MPKIImprovement))
	assert.False(t, bpfmt.IsMissing(t4.IPM))

	// A zero baseline does not divide by zero.
	t2 := e.Records[4]
	assert.False(t, math.IsNaN(t2.MPKIImprovement))
	assert.Less(t, t2.MPKIImprovement, 0.0)
}

func TestEnrichBaselineNotFound(t *testing.T) {
	recs := []bpfmt.Record{
		rec("gshare", "trace1", 5.0, 1000, 20000000),
		rec("perceptron", "trace1", 3.0, 600, 20000000),
	}
	log, hook := logtest.NewNullLogger()
	e := Enrich(recs, "tournament", log)
	assert.False(t, e.Baseline.Found())
	for _, r := range e.Records {
		assert.True(t, bpfmt.IsMissing(r.MPKIBaseline))
		assert.True(t, bpfmt.IsMissing(r.MPKIImprovement))
		assert.False(t, bpfmt.IsMissing(r.IPM))
	}

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "tournament", entry.Data["baseline"])
}

func TestBaselineFirstRowWins(t *testing.T) {
	b := NewBaseline([]bpfmt.Record{
		rec("gshare", "t1", 5, 1, 1),
		rec("gshare", "t1", 7, 1, 1),
		rec("tage", "t2", 1, 1, 1),
	}, "gshare")
	assert.Equal(t, map[string]float64{"t1": 5}, b.MPKI)
	assert.True(t, bpfmt.IsMissing(b.Lookup("t2")))
}
