// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bpfmt reads and writes branch predictor benchmark results.
//
// A benchmark campaign produces one CSV file per branch predictor.
// Each file holds one row per evaluated instruction trace, with at
// least the columns Run, Workload, IPC, MPKI, MispBr and Instr, and
// optionally a miss rate column MR. The predictor identity is not
// part of the file: it is the file's base name, and is attached to
// every record by Dir when the file is loaded.
//
// Column names may carry incidental whitespace. The miss rate may be
// written either as a plain number or as a percentage string such as
// "5.00%". Normalize reconciles both into the canonical MRFloat
// field.
//
// This package is designed to be used with the higher-level packages
// bpmath and bpproc.
package bpfmt

import (
	"fmt"
	"math"
	"strconv"
)

// Canonical column names.
const (
	ColRun             = "Run"
	ColWorkload        = "Workload"
	ColPredictor       = "Predictor"
	ColIPC             = "IPC"
	ColMPKI            = "MPKI"
	ColMispBr          = "MispBr"
	ColInstr           = "Instr"
	ColMR              = "MR"
	ColMRFloat         = "MR_float"
	ColIPM             = "IPM"
	ColMPKIBaseline    = "MPKI_baseline"
	ColMPKIImprovement = "MPKI_Improvement_%"
)

// RequiredColumns lists the columns every result file must carry.
var RequiredColumns = []string{ColRun, ColWorkload, ColIPC, ColMPKI, ColMispBr, ColInstr}

// Columns lists every column of an enriched record, in output order.
var Columns = []string{
	ColRun, ColWorkload, ColPredictor,
	ColIPC, ColMPKI, ColMispBr, ColInstr,
	ColMR, ColMRFloat, ColIPM, ColMPKIBaseline, ColMPKIImprovement,
}

// Missing returns the value used for a missing measurement.
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether x is a missing measurement.
func IsMissing(x float64) bool {
	return math.IsNaN(x)
}

// A MissRateKind says how a miss rate was encoded in the input.
type MissRateKind int

const (
	// MissRateAbsent means the file has no MR column or the cell
	// was empty.
	MissRateAbsent MissRateKind = iota
	// MissRateText means the cell was not a plain number, for
	// example "5.00%".
	MissRateText
	// MissRateNumber means the cell parsed as a plain number.
	MissRateNumber
)

// A MissRate is the raw miss rate of a record as read from the input.
type MissRate struct {
	Kind MissRateKind

	// Text is the raw cell for MissRateText.
	Text string

	// Value is the number for MissRateNumber.
	Value float64
}

// TextMissRate returns a textual miss rate.
func TextMissRate(s string) MissRate {
	return MissRate{Kind: MissRateText, Text: s}
}

// NumberMissRate returns a numeric miss rate.
func NumberMissRate(v float64) MissRate {
	return MissRate{Kind: MissRateNumber, Value: v}
}

// parseMissRateCell classifies a raw MR cell.
func parseMissRateCell(cell string) MissRate {
	if cell == "" {
		return MissRate{}
	}
	if v, err := strconv.ParseFloat(cell, 64); err == nil {
		return NumberMissRate(v)
	}
	return TextMissRate(cell)
}

// String returns the miss rate as it would be written to a CSV cell.
func (m MissRate) String() string {
	switch m.Kind {
	case MissRateText:
		return m.Text
	case MissRateNumber:
		return strconv.FormatFloat(m.Value, 'g', -1, 64)
	}
	return ""
}

// A Record is the result of one predictor on one trace.
//
// The derived fields MRFloat, IPM, MPKIBaseline and MPKIImprovement
// are filled by the pipeline stages; a missing derived value is NaN
// (see IsMissing). Records read by a Reader start with every derived
// field missing.
type Record struct {
	// Run identifies the trace.
	Run string
	// Workload is the trace's category label.
	Workload string
	// Predictor is the identity of the source file. It is set
	// once, when the file is loaded.
	Predictor string

	IPC    float64
	MPKI   float64
	MispBr float64
	Instr  float64

	// MR is the raw miss rate. It may be absent.
	MR MissRate

	// MRFloat is the canonical miss rate in percent, set by
	// Normalize.
	MRFloat float64
	// IPM is instructions per misprediction, set by bpmath.Enrich.
	IPM float64
	// MPKIBaseline is the baseline predictor's MPKI on the same
	// Run, set by bpmath.Enrich.
	MPKIBaseline float64
	// MPKIImprovement is the percent improvement of MPKI over the
	// baseline, set by bpmath.Enrich.
	MPKIImprovement float64

	// fileName and line record where this Record was read from.
	fileName string
	line     int
}

// Pos returns the file name and line number of a Record that was read
// by a Reader. For Records that were not read from a file, it returns
// "", 0.
func (r *Record) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// Value returns the numeric value of column col and whether col names
// a numeric column.
func (r *Record) Value(col string) (float64, bool) {
	switch col {
	case ColIPC:
		return r.IPC, true
	case ColMPKI:
		return r.MPKI, true
	case ColMispBr:
		return r.MispBr, true
	case ColInstr:
		return r.Instr, true
	case ColMRFloat:
		return r.MRFloat, true
	case ColIPM:
		return r.IPM, true
	case ColMPKIBaseline:
		return r.MPKIBaseline, true
	case ColMPKIImprovement:
		return r.MPKIImprovement, true
	}
	return 0, false
}

func (r *Record) String() string {
	return fmt.Sprintf("%s/%s (%s)", r.Predictor, r.Run, r.Workload)
}
