// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bpfmt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultExt is the extension of result files.
const DefaultExt = ".csv"

var (
	// ErrNoSources is returned by Dir.Load when the directory has
	// no result files.
	ErrNoSources = errors.New("no result files found")

	// ErrAllSourcesFailed is returned by Dir.Load when result files
	// were found but none of them could be loaded.
	ErrAllSourcesFailed = errors.New("no result files could be loaded")
)

// A SourceError reports why one result file was not loaded.
type SourceError struct {
	Path      string
	Predictor string
	Err       error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("predictor %s: %v", e.Predictor, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// A Dir loads every result file in a directory.
//
// Each file contributes the records of one predictor, named after the
// file's base name without its extension. Files are visited in
// lexical order of their names.
type Dir struct {
	// Path is the directory to read.
	Path string

	// Ext is the extension of result files, including the dot.
	// If empty, it defaults to DefaultExt.
	Ext string

	// Log receives one line per discovered file. If nil, it
	// defaults to logrus.StandardLogger().
	Log logrus.FieldLogger
}

// A FileResult is the outcome of loading one result file. Exactly one
// of Records and Err is meaningful: if Err is nil, the file loaded and
// Records holds its normalized records (possibly none).
type FileResult struct {
	Path      string
	Predictor string
	Records   []Record
	Err       error
}

// A LoadResult is the outcome of loading a directory.
type LoadResult struct {
	// Files has one entry per discovered file, in discovery order.
	Files []FileResult

	// Records is the concatenation of the records of every file
	// that loaded, in discovery order.
	Records []Record
}

// Predictors returns the predictors that loaded, in discovery order.
func (r *LoadResult) Predictors() []string {
	var out []string
	for _, f := range r.Files {
		if f.Err == nil {
			out = append(out, f.Predictor)
		}
	}
	return out
}

// Failed returns the per-file errors, in discovery order.
func (r *LoadResult) Failed() []*SourceError {
	var out []*SourceError
	for _, f := range r.Files {
		if f.Err != nil {
			out = append(out, &SourceError{f.Path, f.Predictor, f.Err})
		}
	}
	return out
}

func (d *Dir) ext() string {
	if d.Ext == "" {
		return DefaultExt
	}
	return d.Ext
}

func (d *Dir) log() logrus.FieldLogger {
	if d.Log == nil {
		return logrus.StandardLogger()
	}
	return d.Log
}

// Discover returns the paths of the result files in d, in the order
// Load reads them.
func (d *Dir) Discover() ([]string, error) {
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, err
	}
	ext := d.ext()
	var paths []string
	for _, e := range entries {
		// Hidden files, including a bare ".csv", are not results.
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || filepath.Ext(e.Name()) != ext {
			continue
		}
		paths = append(paths, filepath.Join(d.Path, e.Name()))
	}
	return paths, nil
}

// Load reads and normalizes every result file in d.
//
// A file that cannot be read or parsed is logged and left out of the
// combined records; its FileResult carries the cause. Load fails only
// if the directory cannot be listed, if it contains no result files
// (ErrNoSources), or if no file loads (ErrAllSourcesFailed, joined
// with every *SourceError). On failure no records are returned.
func (d *Dir) Load() (*LoadResult, error) {
	paths, err := d.Discover()
	if err != nil {
		return nil, fmt.Errorf("reading result directory: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s (extension %s)", ErrNoSources, d.Path, d.ext())
	}

	log := d.log()
	log.Infof("found %d result files in %s", len(paths), d.Path)

	res := new(LoadResult)
	for _, path := range paths {
		fr := loadFile(path, PredictorName(path))
		res.Files = append(res.Files, fr)
		fields := logrus.Fields{"file": filepath.Base(path), "predictor": fr.Predictor}
		if fr.Err != nil {
			log.WithFields(fields).WithError(fr.Err).Warn("skipping result file")
			continue
		}
		log.WithFields(fields).WithField("rows", len(fr.Records)).Info("loaded result file")
		res.Records = append(res.Records, fr.Records...)
	}

	if failed := res.Failed(); len(failed) == len(res.Files) {
		errs := []error{ErrAllSourcesFailed}
		for _, e := range failed {
			errs = append(errs, e)
		}
		return nil, errors.Join(errs...)
	}
	return res, nil
}

// PredictorName returns the predictor identity of a result file: its
// base name without the extension. A name that is all extension, such
// as ".csv", is kept whole.
func PredictorName(path string) string {
	base := filepath.Base(path)
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return base
}

func loadFile(path, predictor string) FileResult {
	fr := FileResult{Path: path, Predictor: predictor}
	f, err := os.Open(path)
	if err != nil {
		fr.Err = err
		return fr
	}
	defer f.Close()

	recs, err := NewReader(f, path, predictor).ReadAll()
	if err == nil {
		recs, err = Normalize(recs)
	}
	if err != nil {
		fr.Err = err
		return fr
	}
	fr.Records = recs
	return fr
}
