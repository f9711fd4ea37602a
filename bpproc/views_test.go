// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpproc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpred/bpstat/bpfmt"
	"github.com/bpred/bpstat/bpmath"
)

func rec(pred, run, workload string, ipc, mpki float64) bpfmt.Record {
	return bpfmt.Record{
		Run: run, Workload: workload, Predictor: pred,
		IPC: ipc, MPKI: mpki, MispBr: mpki * 1000, Instr: 1e6,
		MRFloat: bpfmt.Missing(), IPM: bpfmt.Missing(),
		MPKIBaseline: bpfmt.Missing(), MPKIImprovement: bpfmt.Missing(),
	}
}

func testRecords() []bpfmt.Record {
	recs := []bpfmt.Record{
		rec("gshare", "t1", "INT", 1.0, 5.0),
		rec("gshare", "t2", "FP", 2.0, 1.0),
		rec("gshare", "t3", "INT", 1.5, 4.0),
		rec("tage", "t1", "INT", 1.2, 2.0),
		rec("tage", "t2", "FP", 2.2, 1.0),
		rec("tage", "t3", "INT", 1.6, 6.0),
		rec("perceptron", "t1", "INT", 1.1, 3.0),
	}
	return bpmath.Enrich(recs, "gshare", nil).Records
}

func TestPredictorMeans(t *testing.T) {
	ms := PredictorMeans(testRecords())
	require.Len(t, ms, 3)
	assert.Equal(t, []string{"gshare", "tage", "perceptron"}, []string{ms[0].Predictor, ms[1].Predictor, ms[2].Predictor})

	assert.Equal(t, 3, ms[0].N)
	assert.InDelta(t, 1.5, ms[0].IPC, 1e-9)
	assert.InDelta(t, 10.0/3, ms[0].MPKI, 1e-9)
	assert.InDelta(t, 0, ms[0].Improvement, 1e-6)
	assert.True(t, math.IsNaN(ms[0].MissRate))

	assert.InDelta(t, 3.0, ms[1].MPKI, 1e-9)
	// (60 + 0 - 50) / 3
	assert.InDelta(t, 10.0/3, ms[1].Improvement, 1e-6)
	assert.InDelta(t, 40, ms[2].Improvement, 1e-6)
}

func TestMeansSkipMissing(t *testing.T) {
	recs := []bpfmt.Record{
		rec("tage", "t1", "INT", 1, 2),
		rec("tage", "t2", "INT", 3, 4),
	}
	recs[0].MPKIImprovement = 10
	recs[0].MRFloat = 5
	ms := PredictorMeans(recs)
	require.Len(t, ms, 1)
	assert.Equal(t, 10.0, ms[0].Improvement)
	assert.Equal(t, 5.0, ms[0].MissRate)
	assert.Equal(t, 2.0, ms[0].IPC)
}

func TestWorkloadMeans(t *testing.T) {
	recs := testRecords()

	ms := WorkloadMeans(recs, false)
	require.Len(t, ms, 2)
	assert.Equal(t, "INT", ms[0].Key())
	assert.Equal(t, 5, ms[0].N)
	assert.Equal(t, "FP", ms[1].Key())
	assert.InDelta(t, 1.0, ms[1].MPKI, 1e-9)

	ms = WorkloadMeans(recs, true)
	require.Len(t, ms, 5)
	m := Get(ms, "INT", "tage")
	require.NotNil(t, m)
	assert.Equal(t, "INT/tage", m.Key())
	assert.InDelta(t, 4.0, m.MPKI, 1e-9)
	assert.Nil(t, Get(ms, "FP", "perceptron"))
}

func TestWinners(t *testing.T) {
	recs := testRecords()
	ws := Winners(recs)
	require.Len(t, ws, 3)

	min := map[string]float64{}
	for _, r := range recs {
		if m, ok := min[r.Run]; !ok || r.MPKI < m {
			min[r.Run] = r.MPKI
		}
	}
	for _, w := range ws {
		assert.Equal(t, w.Run, w.Record.Run)
		assert.Equal(t, min[w.Run], w.Record.MPKI, "winner of %s", w.Run)
	}
	assert.Equal(t, "tage", ws[0].Record.Predictor)
	assert.Equal(t, "gshare", ws[2].Record.Predictor)
}

func TestWinnersThreeWayTie(t *testing.T) {
	recs := []bpfmt.Record{
		rec("gshare", "trace1", "SPEC", 1, 5.0),
		rec("tage", "trace1", "SPEC", 1, 3.0),
		rec("perceptron", "trace1", "SPEC", 1, 3.0),
	}
	ws := Winners(recs)
	require.Len(t, ws, 1)
	assert.Equal(t, 3.0, ws[0].Record.MPKI)
	assert.Contains(t, []string{"tage", "perceptron"}, ws[0].Record.Predictor)
}

func TestWinCounts(t *testing.T) {
	wc := WinCounts(testRecords())
	require.Len(t, wc, 3)
	total := 0
	for _, c := range wc {
		total += c.Wins
	}
	assert.Equal(t, 3, total)
	assert.Equal(t, "perceptron", wc[2].Predictor)
	assert.Equal(t, 0, wc[2].Wins)
	assert.GreaterOrEqual(t, wc[0].Wins, wc[1].Wins)
}

func TestDistributions(t *testing.T) {
	ds := Distributions(testRecords())
	require.Len(t, ds, 3)
	s := ds[1].MPKI
	assert.Equal(t, "tage", ds[1].Predictor)
	assert.Equal(t, 3, s.N)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 2.0, s.Median)
	assert.Equal(t, 6.0, s.Max)
	assert.True(t, s.Q1 <= s.Median && s.Median <= s.Q3)
}

func TestImprovements(t *testing.T) {
	imps := Improvements(testRecords(), "gshare")
	require.Len(t, imps, 2)
	assert.Equal(t, "perceptron", imps[0].Predictor)
	assert.InDelta(t, 40, imps[0].Mean, 1e-6)
	assert.Equal(t, 1, imps[0].N)
	assert.Equal(t, "tage", imps[1].Predictor)

	// Without a baseline nothing is comparable.
	recs := bpmath.Enrich(testRecords(), "none", nil).Records
	imps = Improvements(recs, "none")
	require.Len(t, imps, 3)
	for _, imp := range imps {
		assert.True(t, math.IsNaN(imp.Mean))
		assert.Equal(t, 0, imp.N)
	}
}

func TestRuns(t *testing.T) {
	runs := Runs(testRecords())
	require.Len(t, runs, 7)
	for i := 1; i < len(runs); i++ {
		assert.GreaterOrEqual(t, runs[i-1].MPKI, runs[i].MPKI, "at %d", i)
	}
	assert.Equal(t, RunMPKI{Run: "t3", Workload: "INT", Predictor: "tage", MPKI: 6}, *runs[0])

	// gshare and tage tie on t2; the order of first appearance holds.
	assert.Equal(t, "gshare", runs[5].Predictor)
	assert.Equal(t, "tage", runs[6].Predictor)
	assert.Equal(t, "t2", runs[6].Run)
}

func TestRunsDuplicateRun(t *testing.T) {
	runs := Runs([]bpfmt.Record{
		rec("gshare", "t1", "INT", 1, 2),
		rec("gshare", "t1", "INT", 1, 9),
	})
	require.Len(t, runs, 1)
	assert.Equal(t, 2.0, runs[0].MPKI)
}

func TestEmpty(t *testing.T) {
	assert.Empty(t, PredictorMeans(nil))
	assert.Empty(t, WorkloadMeans(nil, true))
	assert.Empty(t, Winners(nil))
	assert.Empty(t, WinCounts(nil))
	assert.Empty(t, Distributions(nil))
	assert.Empty(t, Improvements(nil, "gshare"))
	assert.Empty(t, Runs(nil))
}

func TestViewsDoNotModifyInput(t *testing.T) {
	recs := testRecords()
	before := append([]bpfmt.Record(nil), recs...)
	PredictorMeans(recs)
	WorkloadMeans(recs, true)
	WinCounts(recs)
	Distributions(recs)
	Improvements(recs, "gshare")
	Runs(recs)
	assert.Equal(t, len(before), len(recs))
	for i := range recs {
		assert.Equal(t, before[i].String(), recs[i].String())
		assert.Equal(t, before[i].MPKI, recs[i].MPKI)
	}
}
