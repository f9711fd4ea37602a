// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Bpstat summarizes and compares branch predictor simulation results.
//
// Usage:
//
//	bpstat [flags] dir
//
// Dir should contain one CSV result file per predictor. The file's
// name, minus its extension, names the predictor. Each file must have
// the columns Run, Workload, IPC, MPKI, MispBr, and Instr, and may have
// an MR column giving the miss rate as a percentage, with or without
// a trailing "%".
//
// Bpstat loads every file, skipping (with a warning) files it cannot
// parse, and derives for every row its instructions per misprediction
// (IPM) and its MPKI improvement over the baseline predictor on the
// same trace. It then prints:
//
//   - the mean of every metric per predictor,
//   - mean MPKI and IPM per workload and predictor,
//   - the mean improvement of every predictor over the baseline,
//   - the spread of MPKI per predictor,
//   - and the number of traces on which each predictor had the
//     lowest MPKI.
//
// The --baseline flag names the baseline predictor (default gshare).
// If the baseline has no results, improvement is reported as missing.
//
// The --format flag selects text (the default), csv, or html output.
//
// The --sort flag orders predictors by name, ipc, mpki, ipm, or
// improvement. A leading "-" reverses the order. By default
// predictors are listed in the order their files were loaded.
//
// The -o flag additionally writes every enriched row to a CSV file.
//
// The --config flag reads settings from a YAML file with the keys
// baseline, ext, format, log, sort, and output. Flags given on the
// command line override the file.
//
// If no result file is found, or every file fails to load, bpstat
// prints nothing and exits with a non-zero status.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bpred/bpstat/bpfmt"
	"github.com/bpred/bpstat/bpmath"
)

func main() {
	if err := newCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bpstat: %v\n", err)
		os.Exit(1)
	}
}

// newCommand returns the bpstat root command writing its report to
// stdout and its diagnostics to stderr.
func newCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		flags      = DefaultConfig()
		configPath string
	)
	cmd := &cobra.Command{
		Use:           "bpstat [flags] dir",
		Short:         "Summarize and compare branch predictor results",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = LoadConfig(configPath); err != nil {
					return err
				}
			}
			fs := cmd.Flags()
			override := func(name string, dst *string, val string) {
				if fs.Changed(name) {
					*dst = val
				}
			}
			override("baseline", &cfg.Baseline, flags.Baseline)
			override("ext", &cfg.Ext, flags.Ext)
			override("format", &cfg.Format, flags.Format)
			override("log", &cfg.Log, flags.Log)
			override("sort", &cfg.Sort, flags.Sort)
			override("output", &cfg.Output, flags.Output)
			return run(cfg, args[0], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&flags.Baseline, "baseline", "b", flags.Baseline, "compare against baseline `predictor`")
	f.StringVar(&flags.Ext, "ext", flags.Ext, "load result files with extension `ext`")
	f.StringVar(&flags.Format, "format", flags.Format, "output `format`: text, csv, or html")
	f.StringVar(&flags.Log, "log", flags.Log, "log `level`: debug, info, warn, or error")
	f.StringVar(&flags.Sort, "sort", flags.Sort, "sort predictors by `order`: [-]name, [-]ipc, [-]mpki, [-]ipm, [-]improvement")
	f.StringVarP(&flags.Output, "output", "o", flags.Output, "also write enriched results as CSV to `file`")
	f.StringVar(&configPath, "config", "", "read settings from YAML `file`")
	return cmd
}

// run loads the results in dir and writes the report to stdout. It
// writes nothing to stdout if any step fails.
func run(cfg Config, dir string, stdout, stderr io.Writer) error {
	level, order, err := cfg.Validate()
	if err != nil {
		return err
	}
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	d := &bpfmt.Dir{Path: dir, Ext: cfg.Ext, Log: log}
	res, err := d.Load()
	if err != nil {
		return err
	}
	e := bpmath.Enrich(res.Records, cfg.Baseline, log)
	report := NewReport(e, order, log)

	var buf bytes.Buffer
	sections := report.Sections()
	switch cfg.Format {
	case "csv":
		err = FormatCSV(&buf, sections)
	case "html":
		FormatHTML(&buf, sections)
	default:
		err = FormatText(&buf, sections)
	}
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := writeEnriched(cfg.Output, e.Records); err != nil {
			return err
		}
		log.WithField("file", cfg.Output).Infof("wrote %d enriched rows", len(e.Records))
	}

	_, err = stdout.Write(buf.Bytes())
	return err
}

func writeEnriched(path string, recs []bpfmt.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bpfmt.NewWriter(f).WriteAll(recs); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
