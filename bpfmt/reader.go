// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Reader reads one predictor's result file.
//
// Its API is modeled on bufio.Scanner. The first Scan reads and
// validates the header; every following Scan reads one record.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	csv       *csv.Reader
	fileName  string
	predictor string

	// header holds the canonical column names, in file order.
	// col maps a canonical column name to its index.
	header []string
	col    map[string]int

	line   int
	result Record
	err    error
}

// A SyntaxError represents a syntax error on a particular line of a
// result file. Line 1 is the header.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader constructs a reader for the result file r. fileName is
// used in error messages; it is purely diagnostic. predictor is
// attached to every record read.
func NewReader(r io.Reader, fileName, predictor string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName, predictor)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName, predictor string) {
	r.csv = csv.NewReader(ior)
	// Field counts are checked against the header by Scan so the
	// error names the line in our own terms.
	r.csv.FieldsPerRecord = -1
	r.csv.TrimLeadingSpace = true
	r.csv.ReuseRecord = true
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.predictor = predictor
	r.header = nil
	r.col = nil
	r.line = 0
	r.result = Record{}
	r.err = nil
}

func (r *Reader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg}
}

// Scan advances the reader to the next record and reports whether a
// record was read. The caller should use the Result method to get the
// record. If Scan reaches EOF or an error occurs, it returns false, in
// which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if r.header == nil {
		if !r.readHeader() {
			return false
		}
	}

	fields, err := r.read()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		return false
	}
	if len(fields) != len(r.header) {
		r.err = r.newSyntaxError(fmt.Sprintf("have %d fields, header has %d", len(fields), len(r.header)))
		return false
	}
	rec, err := r.parseRecord(fields)
	if err != nil {
		r.err = err
		return false
	}
	r.result = rec
	return true
}

// read returns the next CSV row, skipping blank lines, and tracks the
// current line number.
func (r *Reader) read() ([]string, error) {
	fields, err := r.csv.Read()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			r.line = perr.Line
			return nil, r.newSyntaxError(perr.Err.Error())
		}
		return nil, err
	}
	r.line, _ = r.csv.FieldPos(0)
	return fields, nil
}

func (r *Reader) readHeader() bool {
	fields, err := r.read()
	if err == io.EOF {
		r.line = 1
		r.err = r.newSyntaxError("missing header")
		return false
	} else if err != nil {
		r.err = err
		return false
	}

	r.header = make([]string, len(fields))
	r.col = make(map[string]int, len(fields))
	for i, f := range fields {
		name := CanonicalColumn(f)
		r.header[i] = name
		if _, ok := r.col[name]; ok {
			r.err = r.newSyntaxError(fmt.Sprintf("duplicate column %q", name))
			return false
		}
		r.col[name] = i
	}
	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := r.col[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		r.err = r.newSyntaxError("missing required column(s) " + strings.Join(missing, ", "))
		return false
	}
	return true
}

func (r *Reader) parseRecord(fields []string) (Record, error) {
	cell := func(name string) string {
		return strings.TrimSpace(fields[r.col[name]])
	}
	rec := Record{
		Run:       cell(ColRun),
		Workload:  cell(ColWorkload),
		Predictor: r.predictor,

		MRFloat:         Missing(),
		IPM:             Missing(),
		MPKIBaseline:    Missing(),
		MPKIImprovement: Missing(),

		fileName: r.fileName,
		line:     r.line,
	}
	if rec.Run == "" {
		return Record{}, r.newSyntaxError("empty " + ColRun)
	}

	// All measurements are counts or ratios of counts.
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{ColIPC, &rec.IPC},
		{ColMPKI, &rec.MPKI},
		{ColMispBr, &rec.MispBr},
		{ColInstr, &rec.Instr},
	} {
		v, err := strconv.ParseFloat(cell(f.name), 64)
		if err != nil {
			return Record{}, r.newSyntaxError(fmt.Sprintf("%s: %q is not a number", f.name, cell(f.name)))
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Record{}, r.newSyntaxError(fmt.Sprintf("%s: %q is not finite", f.name, cell(f.name)))
		}
		if v < 0 {
			return Record{}, r.newSyntaxError(fmt.Sprintf("%s: %v is negative", f.name, v))
		}
		*f.dst = v
	}

	if _, ok := r.col[ColMR]; ok {
		rec.MR = parseMissRateCell(cell(ColMR))
	}
	return rec, nil
}

// Result returns the record that was just read by Scan.
func (r *Reader) Result() Record {
	return r.result
}

// Err returns the first error encountered by the Reader.
// If Scan stopped at EOF, Err returns nil.
func (r *Reader) Err() error {
	return r.err
}

// Header returns the canonical column names of the file, in file
// order, or nil if the header has not been read yet.
func (r *Reader) Header() []string {
	return r.header
}

// ReadAll reads every remaining record from r.
func (r *Reader) ReadAll() ([]Record, error) {
	var recs []Record
	for r.Scan() {
		recs = append(recs, r.Result())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}
