// Package dotbracket reads secondary structures written in dot-bracket
// notation, where '.' is an unpaired base and a matching '(' and ')' are
// two paired bases.
package dotbracket

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnbalanced is returned when a ')' has no '(' to close or a '(' is
	// never closed.
	ErrUnbalanced = errors.New("unbalanced structure")

	// ErrSymbol is returned for anything other than '(', ')' or '.'.
	ErrSymbol = errors.New("unexpected symbol")
)

// Pair is a bond between the bases at Open and Close, Open < Close.
type Pair struct {
	Open  int
	Close int
}

// Count returns the number of base pairs in structure, its '(' count.
// It doesn't check that the structure is balanced.
func Count(structure string) int {
	count := 0
	for _, c := range structure {
		if c == '(' {
			count++
		}
	}
	return count
}

// Parse matches the brackets of structure and returns its pairs ordered by
// their opening index.
func Parse(structure string) ([]Pair, error) {
	pairs := []Pair{}
	var open []int

	for i := 0; i < len(structure); i++ {
		switch structure[i] {
		case '.':
		case '(':
			open = append(open, i)
		case ')':
			if len(open) == 0 {
				return nil, fmt.Errorf("%w: ')' at %d closes nothing", ErrUnbalanced, i)
			}
			pairs = append(pairs, Pair{Open: open[len(open)-1], Close: i})
			open = open[:len(open)-1]
		default:
			return nil, fmt.Errorf("%w: %q at %d", ErrSymbol, structure[i], i)
		}
	}

	if len(open) > 0 {
		return nil, fmt.Errorf("%w: '(' at %d is never closed", ErrUnbalanced, open[len(open)-1])
	}

	sort.Slice(pairs, func(a, b int) bool {
		return pairs[a].Open < pairs[b].Open
	})
	return pairs, nil
}
