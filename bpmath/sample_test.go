// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	in := []float64{3, math.NaN(), 1, 2, math.NaN()}
	s := NewSample(in)
	require.Equal(t, 3, s.N())
	require.Equal(t, 2, s.Missing)
	assert.Equal(t, 3.0, in[0], "NewSample modified its input")
	assert.Equal(t, 2.0, s.Mean())
	lo, hi := s.Bounds()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 3.0, hi)

	sum := s.Summary()
	assert.Equal(t, 2.0, sum.Median)
	assert.True(t, sum.Min <= sum.Q1 && sum.Q1 <= sum.Median && sum.Median <= sum.Q3 && sum.Q3 <= sum.Max,
		"summary out of order: %+v", sum)
	assert.GreaterOrEqual(t, sum.IQR(), 0.0)
}

func TestSampleAllMissing(t *testing.T) {
	sum := NewSample([]float64{math.NaN(), math.NaN()}).Summary()
	assert.Equal(t, 0, sum.N)
	assert.Equal(t, 2, sum.Missing)
	for _, x := range []float64{sum.Mean, sum.Min, sum.Max, sum.Q1, sum.Median, sum.Q3} {
		assert.True(t, math.IsNaN(x), "got %v, want NaN in %+v", x, sum)
	}
}

func TestFormatPct(t *testing.T) {
	for _, test := range []struct {
		in   float64
		want string
	}{
		{40, "+40.00%"},
		{-12.5, "-12.50%"},
		{0, "+0.00%"},
		{math.NaN(), "~"},
	} {
		assert.Equal(t, test.want, FormatPct(test.in), "FormatPct(%v)", test.in)
	}
}
