// Package domain holds the plain data types shared between the experiment
// runner and its persistence layer: the request (Spec), the per-config
// outcome (Result), and the aggregate (Report) the CLI prints and the
// sqlite store saves.
package domain

import "github.com/example/covarray/covering"

// Spec describes a sweep of Build calls: every Config crossed with every
// Stride, repeated Iterations times each, all seeded from Seed so the whole
// sweep is reproducible. Mirrors IPO_Variant.py's size-vs-config loop.
type Spec struct {
	ID         string
	Configs    []covering.Config
	Strides    []int
	Iterations int
	Seed       int64
}

// Validate checks the preconditions a Runner relies on.
func (s Spec) Validate() error {
	if len(s.Configs) == 0 {
		return ErrEmptySpec
	}
	if len(s.Strides) == 0 {
		return ErrEmptySpec
	}
	if s.Iterations < 1 {
		return ErrInvalidIterations
	}
	return nil
}

// MaxSizeHistory bounds how many raw per-iteration sizes a Result keeps.
// Min/Mean are always computed over every iteration regardless of this
// bound; only the raw history kept for later inspection (e.g. plotting, or
// the sqlite store's sizes_json column) is capped, so a long sweep can't
// grow a Result without limit.
const MaxSizeHistory = 500

// Result is the outcome of running Iterations builds of one (Config,
// Stride) pair.
type Result struct {
	Config  covering.Config
	Stride  int
	Sizes   []int // capped at MaxSizeHistory entries
	Dropped int    // iterations beyond MaxSizeHistory; the first drop is logged
	Min     int
	Mean    float64
}

// Report is the full output of running a Spec: one Result per
// (Config, Stride) combination, in the order the sweep was requested.
type Report struct {
	SpecID  string
	Results []Result
}
