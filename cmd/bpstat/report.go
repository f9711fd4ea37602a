// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/bpred/bpstat/bpfmt"
	"github.com/bpred/bpstat/bpmath"
	"github.com/bpred/bpstat/bpproc"
)

// A Section is one titled table of the report. Every output format
// renders the same sections.
type Section struct {
	Title  string
	Header []string
	Rows   [][]string
}

func (s *Section) row(cells ...string) {
	s.Rows = append(s.Rows, cells)
}

// Report is the set of summary views of one enriched dataset.
type Report struct {
	Baseline string

	// Predictors lists predictors in display order.
	Predictors []string

	Means         []*bpproc.Means
	Workloads     []*bpproc.Means
	ByWorkload    []*bpproc.Means
	Improvements  []*bpproc.Improvement
	Distributions []*bpproc.Distribution
	WinCounts     []*bpproc.WinCount
	Runs          []*bpproc.RunMPKI

	// ShowImprovement is false if there is nothing to compare
	// against the baseline.
	ShowImprovement bool
}

// NewReport computes every view of e. If order is non-nil, predictors
// are listed in that order; otherwise in load order.
func NewReport(e *bpmath.Enriched, order bpproc.SortFunc, log logrus.FieldLogger) *Report {
	recs := e.Records
	r := &Report{
		Baseline:      e.Baseline.Predictor,
		Means:         bpproc.PredictorMeans(recs),
		Workloads:     bpproc.WorkloadMeans(recs, false),
		ByWorkload:    bpproc.WorkloadMeans(recs, true),
		Distributions: bpproc.Distributions(recs),
		WinCounts:     bpproc.WinCounts(recs),
		Runs:          bpproc.Runs(recs),
	}
	if order != nil {
		bpproc.Sort(r.Means, order)
	}
	for _, m := range r.Means {
		r.Predictors = append(r.Predictors, m.Predictor)
	}

	switch {
	case !e.Baseline.Found():
		// Enrich already warned.
	case len(r.Predictors) == 1:
		log.WithField("baseline", r.Baseline).Warn("only the baseline predictor is present; omitting improvement")
	default:
		r.ShowImprovement = true
		r.Improvements = bpproc.Improvements(recs, r.Baseline)
	}
	return r
}

// Sections lays out the report as tables.
func (r *Report) Sections() []*Section {
	var out []*Section

	means := &Section{
		Title:  "Overall means",
		Header: []string{"predictor", "traces", "IPC", "MPKI", "IPM", "MR %"},
	}
	if r.ShowImprovement {
		means.Header = append(means.Header, "vs "+r.Baseline)
	}
	for _, m := range r.Means {
		cells := []string{m.Predictor, strconv.Itoa(m.N), num(m.IPC, 3), num(m.MPKI, 3), num(m.IPM, 0), num(m.MissRate, 2)}
		if r.ShowImprovement {
			cells = append(cells, bpmath.FormatPct(m.Improvement))
		}
		means.row(cells...)
	}
	out = append(out, means)

	workloads := &Section{
		Title:  "Means by workload",
		Header: []string{"workload", "rows", "IPC", "MPKI", "MR %"},
	}
	for _, w := range r.Workloads {
		workloads.row(w.Workload, strconv.Itoa(w.N), num(w.IPC, 3), num(w.MPKI, 3), num(w.MissRate, 2))
	}
	out = append(out, workloads)

	out = append(out,
		r.workloadMatrix("MPKI by workload", func(m *bpproc.Means) string { return num(m.MPKI, 3) }),
		r.workloadMatrix("IPM by workload", func(m *bpproc.Means) string { return num(m.IPM, 0) }))

	if r.ShowImprovement {
		imp := &Section{
			Title:  fmt.Sprintf("MPKI improvement vs %s", r.Baseline),
			Header: []string{"predictor", "improvement", "traces"},
		}
		for _, x := range r.Improvements {
			imp.row(x.Predictor, bpmath.FormatPct(x.Mean), strconv.Itoa(x.N))
		}
		out = append(out, imp)
	}

	dist := &Section{
		Title:  "MPKI distribution",
		Header: []string{"predictor", "min", "Q1", "median", "Q3", "max"},
	}
	byPred := make(map[string]*bpproc.Distribution)
	for _, d := range r.Distributions {
		byPred[d.Predictor] = d
	}
	for _, p := range r.Predictors {
		s := byPred[p].MPKI
		dist.row(p, num(s.Min, 3), num(s.Q1, 3), num(s.Median, 3), num(s.Q3, 3), num(s.Max, 3))
	}
	out = append(out, dist)

	wins := &Section{
		Title:  "Wins (lowest MPKI per trace)",
		Header: []string{"predictor", "wins"},
	}
	for _, w := range r.WinCounts {
		wins.row(w.Predictor, strconv.Itoa(w.Wins))
	}
	out = append(out, wins)

	runs := &Section{
		Title:  "MPKI per run",
		Header: []string{"run", "predictor", "workload", "MPKI"},
	}
	for _, x := range r.Runs {
		runs.row(x.Run, x.Predictor, x.Workload, num(x.MPKI, 3))
	}
	out = append(out, runs)

	return out
}

// workloadMatrix lays out one metric with a row per workload and a
// column per predictor.
func (r *Report) workloadMatrix(title string, cell func(*bpproc.Means) string) *Section {
	s := &Section{Title: title, Header: append([]string{"workload"}, r.Predictors...)}
	for _, w := range r.Workloads {
		cells := []string{w.Workload}
		for _, p := range r.Predictors {
			if m := bpproc.Get(r.ByWorkload, w.Workload, p); m != nil {
				cells = append(cells, cell(m))
			} else {
				cells = append(cells, "")
			}
		}
		s.row(cells...)
	}
	return s
}

// num formats x with prec digits after the decimal point. A missing
// value formats as "~".
func num(x float64, prec int) string {
	if bpfmt.IsMissing(x) || math.IsInf(x, 0) {
		return "~"
	}
	return strconv.FormatFloat(x, 'f', prec, 64)
}
