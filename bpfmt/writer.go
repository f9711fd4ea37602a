// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpfmt

import (
	"encoding/csv"
	"io"
	"strconv"
)

// A Writer writes records as CSV with the canonical columns. Missing
// values are written as empty cells.
type Writer struct {
	w     *csv.Writer
	first bool
}

// NewWriter returns a writer that writes records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w), first: true}
}

// Write writes rec to w, preceded by the header if this is the first
// record.
func (w *Writer) Write(rec *Record) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	row := []string{
		rec.Run, rec.Workload, rec.Predictor,
		formatValue(rec.IPC), formatValue(rec.MPKI),
		formatValue(rec.MispBr), formatValue(rec.Instr),
		rec.MR.String(), formatValue(rec.MRFloat), formatValue(rec.IPM),
		formatValue(rec.MPKIBaseline), formatValue(rec.MPKIImprovement),
	}
	return w.w.Write(row)
}

func (w *Writer) writeHeader() error {
	if !w.first {
		return nil
	}
	w.first = false
	return w.w.Write(Columns)
}

// WriteAll writes recs to w and flushes it. The header is written even
// if recs is empty.
func (w *Writer) WriteAll(recs []Record) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	for i := range recs {
		if err := w.Write(&recs[i]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}

func formatValue(x float64) string {
	if IsMissing(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
