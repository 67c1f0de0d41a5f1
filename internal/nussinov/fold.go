package nussinov

import (
	"errors"
	"fmt"
)

// ErrNegativeMinLoop is returned for a minimum loop length below zero.
var ErrNegativeMinLoop = errors.New("minimum loop length must be a non-negative integer")

// Options tune a fold.
type Options struct {
	// MinLoop is the number of unpaired bases a hairpin loop needs between
	// two paired bases
	MinLoop int

	// Trace also records the traceback, step by step
	Trace bool
}

// Result is a folded sequence.
type Result struct {
	// DPTable is the full score matrix
	DPTable [][]int `json:"dpTable" yaml:"dpTable"`

	// MaxScore is the most base pairs the sequence can form
	MaxScore int `json:"maxScore" yaml:"maxScore"`

	// Pairings are the base pairs of one optimal structure
	Pairings []Pairing `json:"pairings" yaml:"pairings"`

	// DashStructure is that structure in dot-bracket notation
	DashStructure string `json:"dashStructure" yaml:"dashStructure"`

	// Trace is the traceback, if requested
	Trace []Step `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// Fold predicts the secondary structure of raw.
func Fold(raw string, opts Options) (*Result, error) {
	if opts.MinLoop < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeMinLoop, opts.MinLoop)
	}

	seq := NewSequence(raw)
	m := Compute(seq, opts.MinLoop)

	pairings, structure, err := Reconstruct(m, seq, opts.MinLoop)
	if err != nil {
		return nil, err
	}

	result := &Result{
		DPTable:       m.Rows(),
		MaxScore:      m.Score(),
		Pairings:      pairings,
		DashStructure: structure,
	}

	if opts.Trace {
		if result.Trace, err = Trace(m, seq, opts.MinLoop); err != nil {
			return nil, err
		}
	}

	return result, nil
}
