/*
Package stat expands batches of connections into spring polylines.

A computation runs in three stages, each of them a pure function:

   params, err := NormalizeParams(params)                       // once per call
   rows, err   := NormalizeRows(rows)                           // once per panel
   points, err := ComputePanel(rows, *params.N, params.Workers) // once per panel

Validation is atomic: either every row of a batch is valid and all of them
are expanded, or the call fails before any spring is generated. Run
chains the three stages for a single panel.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package stat

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/springs"
)

// tracer writes to trace with key 'springs.stat'
func tracer() tracing.Trace {
	return tracing.Select("springs.stat")
}

// DefaultN is the default number of points per revolution.
const DefaultN = 50

// RequiredAes lists the columns every connection must provide.
var RequiredAes = []string{"x", "y", "xend", "yend"}

// OptionalAes lists the shape columns understood by the spring stat.
var OptionalAes = []string{"diameter", "tension"}

// Params are the batch parameters, shared by all rows of a computation.
type Params struct {
	N       *int // points per revolution, nil selects DefaultN
	Workers int  // goroutines for the fan-out; <= 1 computes sequentially
}

// N is a helper for setting Params.N from a constant.
func N(n int) *int {
	return &n
}

// NormalizeParams resolves the default for n and checks it.
// It returns a copy of params with N set.
func NormalizeParams(params Params) (Params, error) {
	if params.N == nil {
		params.N = N(DefaultN)
		return params, nil
	}
	if *params.N <= 0 {
		tracer().Errorf("n must be greater than 0, is %d", *params.N)
		return params, springs.ErrInvalidN
	}
	params.N = N(*params.N)
	return params, nil
}
