// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table is a text table with a header row and any number of body
// rows. Its methods return the Table so calls can be chained.
type Table struct {
	// Title, if non-empty, is printed on a line above the table.
	Title string

	header []string
	rows   [][]string
	right  []bool
}

// New returns a table with the given title and column headers.
func New(title string, header ...string) *Table {
	return &Table{Title: title, header: header, right: make([]bool, len(header))}
}

// AlignRight right-aligns the given columns, which is usually what
// numeric columns want. Columns are numbered from 0.
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		for len(t.right) <= c {
			t.right = append(t.right, false)
		}
		t.right[c] = true
	}
	return t
}

// Row appends a row of cells. A row may have fewer cells than the
// header; the rest are blank.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Len returns the number of body rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) widths() []int {
	n := len(t.header)
	for _, r := range t.rows {
		if len(r) > n {
			n = len(r)
		}
	}
	ws := make([]int, n)
	measure := func(cells []string) {
		for i, c := range cells {
			if w := utf8.RuneCountInString(c); w > ws[i] {
				ws[i] = w
			}
		}
	}
	measure(t.header)
	for _, r := range t.rows {
		measure(r)
	}
	return ws
}

// Format lays out t and writes it to w. Columns are separated by two
// spaces and lines carry no trailing spaces.
func (t *Table) Format(w io.Writer) error {
	ws := t.widths()
	var buf strings.Builder
	line := func(cells []string) {
		var l strings.Builder
		for i, width := range ws {
			var c string
			if i < len(cells) {
				c = cells[i]
			}
			if i > 0 {
				l.WriteString("  ")
			}
			pad := strings.Repeat(" ", width-utf8.RuneCountInString(c))
			if i < len(t.right) && t.right[i] {
				l.WriteString(pad + c)
			} else {
				l.WriteString(c + pad)
			}
		}
		buf.WriteString(strings.TrimRight(l.String(), " "))
		buf.WriteByte('\n')
	}

	if t.Title != "" {
		fmt.Fprintf(&buf, "%s\n", t.Title)
	}
	if len(t.header) > 0 {
		line(t.header)
		rule := make([]string, len(ws))
		for i, width := range ws {
			rule[i] = strings.Repeat("-", width)
		}
		line(rule)
	}
	for _, r := range t.rows {
		line(r)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
