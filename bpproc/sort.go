// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpproc

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// A SortFunc reports whether Means x sorts before Means y.
type SortFunc func(x, y *Means) bool

// ByName sorts by group key.
func ByName(x, y *Means) bool {
	return x.Key() < y.Key()
}

// ByIPC sorts by mean IPC.
func ByIPC(x, y *Means) bool { return lessNaN(x.IPC, y.IPC) }

// ByMPKI sorts by mean MPKI.
func ByMPKI(x, y *Means) bool { return lessNaN(x.MPKI, y.MPKI) }

// ByIPM sorts by mean instructions per misprediction.
func ByIPM(x, y *Means) bool { return lessNaN(x.IPM, y.IPM) }

// ByImprovement sorts by mean MPKI improvement over the baseline.
func ByImprovement(x, y *Means) bool { return lessNaN(x.Improvement, y.Improvement) }

// lessNaN orders missing values before everything else.
func lessNaN(a, b float64) bool {
	if math.IsNaN(a) {
		return !math.IsNaN(b)
	}
	return a < b
}

// SortReverse returns a SortFunc that is the reverse of sortFunc.
func SortReverse(sortFunc SortFunc) SortFunc {
	return func(x, y *Means) bool { return sortFunc(y, x) }
}

// Sort sorts ms in place by sortFunc. Equal elements keep their
// relative order.
func Sort(ms []*Means, sortFunc SortFunc) {
	sort.SliceStable(ms, func(i, j int) bool { return sortFunc(ms[i], ms[j]) })
}

var sortFuncs = map[string]SortFunc{
	"name":        ByName,
	"ipc":         ByIPC,
	"mpki":        ByMPKI,
	"ipm":         ByIPM,
	"improvement": ByImprovement,
}

// ParseSort parses a sort order name. A leading "-" reverses the
// order.
func ParseSort(s string) (SortFunc, error) {
	name, reverse := strings.CutPrefix(s, "-")
	f, ok := sortFuncs[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown sort order %q (want name, ipc, mpki, ipm, or improvement)", s)
	}
	if reverse {
		f = SortReverse(f)
	}
	return f, nil
}
