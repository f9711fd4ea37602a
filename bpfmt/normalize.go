// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// CanonicalColumn returns the canonical form of a column name as it
// appears in a file header. It strips surrounding whitespace and a
// leading UTF-8 byte order mark.
func CanonicalColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.TrimSpace(name)
}

// A MissRateError reports a miss rate that is present but is not a
// percentage in [0, 100].
type MissRateError struct {
	FileName string
	Line     int
	MR       MissRate
	Err      error // parse error, if any
}

func (e *MissRateError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("malformed miss rate %q: %v", e.MR.String(), e.Err)
	} else {
		msg = fmt.Sprintf("miss rate %q out of range [0, 100]", e.MR.String())
	}
	if e.FileName == "" {
		return msg
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, msg)
}

func (e *MissRateError) Unwrap() error {
	return e.Err
}

// ParseMissRate returns the canonical miss rate in percent.
//
// Text is stripped of surrounding whitespace and a trailing "%" and
// then parsed. Numbers are returned unchanged. An absent miss rate is
// Missing with a nil error. Anything else, including a value outside
// [0, 100], is a *MissRateError.
func ParseMissRate(mr MissRate) (float64, error) {
	var v float64
	switch mr.Kind {
	case MissRateAbsent:
		return Missing(), nil
	case MissRateNumber:
		v = mr.Value
	case MissRateText:
		s := strings.TrimSpace(mr.Text)
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		var err error
		v, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return Missing(), &MissRateError{MR: mr, Err: err}
		}
	default:
		return Missing(), fmt.Errorf("unknown miss rate kind %d", mr.Kind)
	}
	// The negated comparison also rejects NaN.
	if !(v >= 0 && v <= 100) {
		return Missing(), &MissRateError{MR: mr}
	}
	return v, nil
}

// Normalize returns a copy of recs with MRFloat set from MR. It does
// not modify recs. Normalize is idempotent.
//
// If any record has a malformed miss rate, Normalize returns the first
// such error, with the record's position filled in.
func Normalize(recs []Record) ([]Record, error) {
	out := make([]Record, len(recs))
	for i, rec := range recs {
		mr, err := ParseMissRate(rec.MR)
		if err != nil {
			if mrErr, ok := err.(*MissRateError); ok {
				mrErr.FileName, mrErr.Line = rec.Pos()
			}
			return nil, err
		}
		rec.MRFloat = mr
		out[i] = rec
	}
	return out, nil
}
