// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpmath

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of measurements of one metric, such as the MPKI of
// one predictor across every trace. Missing measurements are counted
// but take no part in any statistic.
type Sample struct {
	// Values are the present measurements, in ascending order.
	Values []float64

	// Missing is the number of missing measurements that were
	// dropped.
	Missing int
}

// NewSample constructs a Sample from a set of measurements, dropping
// NaNs. It does not modify values.
func NewSample(values []float64) *Sample {
	s := &Sample{Values: make([]float64, 0, len(values))}
	for _, v := range values {
		if math.IsNaN(v) {
			s.Missing++
			continue
		}
		s.Values = append(s.Values, v)
	}
	// Sort values for fast order statistics.
	sort.Float64s(s.Values)
	return s
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// N returns the number of present measurements.
func (s *Sample) N() int {
	return len(s.Values)
}

// Mean returns the mean of the present measurements, or NaN if there
// are none.
func (s *Sample) Mean() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return stats.Mean(s.Values)
}

// Quantile returns the q'th quantile of the present measurements,
// or NaN if there are none.
func (s *Sample) Quantile(q float64) float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.sample().Quantile(q)
}

// Bounds returns the smallest and largest present measurements, or
// NaN, NaN if there are none.
func (s *Sample) Bounds() (min, max float64) {
	if len(s.Values) == 0 {
		return math.NaN(), math.NaN()
	}
	return stats.Bounds(s.Values)
}

// A Summary is the five-number summary of a Sample, plus its mean.
type Summary struct {
	N, Missing int

	Mean          float64
	Min, Max      float64
	Q1, Median, Q3 float64
}

// Summary summarizes s. Every statistic is NaN if s has no present
// measurements.
func (s *Sample) Summary() Summary {
	sum := Summary{
		N:       s.N(),
		Missing: s.Missing,
		Mean:    s.Mean(),
		Q1:      s.Quantile(0.25),
		Median:  s.Quantile(0.5),
		Q3:      s.Quantile(0.75),
	}
	sum.Min, sum.Max = s.Bounds()
	return sum
}

// IQR returns the interquartile range of the summary.
func (s Summary) IQR() float64 {
	return s.Q3 - s.Q1
}

// FormatPct formats a percentage with an explicit sign. A missing
// percentage formats as "~".
func FormatPct(pct float64) string {
	if math.IsNaN(pct) {
		return "~"
	}
	return fmt.Sprintf("%+.2f%%", pct)
}
