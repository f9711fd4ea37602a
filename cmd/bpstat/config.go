// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/bpred/bpstat/bpfmt"
	"github.com/bpred/bpstat/bpmath"
	"github.com/bpred/bpstat/bpproc"
)

// Config holds the settings of one bpstat run. It can be read from a
// YAML file; command-line flags override the file.
type Config struct {
	Baseline string `yaml:"baseline"`
	Ext      string `yaml:"ext"`
	Format   string `yaml:"format"`
	Log      string `yaml:"log"`
	Sort     string `yaml:"sort"`
	Output   string `yaml:"output"`
}

// DefaultConfig returns the settings used when neither a file nor a
// flag sets them.
func DefaultConfig() Config {
	return Config{
		Baseline: bpmath.DefaultBaseline,
		Ext:      bpfmt.DefaultExt,
		Format:   "text",
		Log:      "info",
	}
}

// LoadConfig reads a YAML config file. Keys the file does not set keep
// their defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

var formats = map[string]bool{"text": true, "csv": true, "html": true}

// Validate checks cfg and returns its parsed log level and sort
// order. The sort order is nil if cfg does not request one. An
// extension given without its leading dot, such as "csv", is
// corrected in place.
func (cfg *Config) Validate() (logrus.Level, bpproc.SortFunc, error) {
	cfg.Ext = strings.TrimSpace(cfg.Ext)
	if cfg.Ext == "" || cfg.Ext == "." {
		return 0, nil, fmt.Errorf("result file extension must not be empty")
	}
	if !strings.HasPrefix(cfg.Ext, ".") {
		cfg.Ext = "." + cfg.Ext
	}
	level, err := logrus.ParseLevel(cfg.Log)
	if err != nil {
		return 0, nil, err
	}
	if !formats[cfg.Format] {
		return 0, nil, fmt.Errorf("unknown format %q (want text, csv, or html)", cfg.Format)
	}
	if cfg.Baseline == "" {
		return 0, nil, fmt.Errorf("baseline predictor must not be empty")
	}
	var order bpproc.SortFunc
	if cfg.Sort != "" && cfg.Sort != "none" {
		if order, err = bpproc.ParseSort(cfg.Sort); err != nil {
			return 0, nil, err
		}
	}
	return level, order, nil
}
