// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/csv"

	"github.com/bpred/bpstat/cmd/bpstat/internal/texttab"
)

// FormatText appends a fixed-width text rendering of sections to buf.
func FormatText(buf *bytes.Buffer, sections []*Section) error {
	for i, s := range sections {
		if i > 0 {
			buf.WriteByte('\n')
		}
		tab := texttab.New(s.Title, s.Header...)
		for col := 1; col < len(s.Header); col++ {
			tab.AlignRight(col)
		}
		for _, row := range s.Rows {
			tab.Row(row...)
		}
		if err := tab.Format(buf); err != nil {
			return err
		}
	}
	return nil
}

// FormatCSV appends a CSV rendering of sections to buf. Each section
// is a title line, a header line, and its rows, and sections are
// separated by a blank line.
func FormatCSV(buf *bytes.Buffer, sections []*Section) error {
	w := csv.NewWriter(buf)
	for i, s := range sections {
		if i > 0 {
			w.Flush()
			buf.WriteByte('\n')
		}
		if err := w.Write([]string{s.Title}); err != nil {
			return err
		}
		if err := w.Write(s.Header); err != nil {
			return err
		}
		if err := w.WriteAll(s.Rows); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
