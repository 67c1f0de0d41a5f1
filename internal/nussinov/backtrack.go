package nussinov

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrInconsistentMatrix is returned when a score matrix can't be explained
// by the sequence it's replayed against.
var ErrInconsistentMatrix = errors.New("inconsistent score matrix")

// Pairing is a bond between the nucleotides at I and J, with I < J.
type Pairing struct {
	I int
	J int
}

// MarshalJSON writes the pairing as a two element array, [i, j].
func (p Pairing) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.I, p.J})
}

// UnmarshalJSON reads a pairing from a two element array.
func (p *Pairing) UnmarshalJSON(data []byte) error {
	var ij [2]int
	if err := json.Unmarshal(data, &ij); err != nil {
		return err
	}
	p.I, p.J = ij[0], ij[1]
	return nil
}

// MarshalYAML writes the pairing as a flow sequence, [i, j].
func (p Pairing) MarshalYAML() (interface{}, error) {
	return []int{p.I, p.J}, nil
}

// span is a pending subsequence on the traceback stack. color tags the
// branch of the traceback it belongs to; each side of a bifurcation gets a
// new one.
type span struct {
	i, j  int
	color int
}

// traceback replays m from (0, n-1) and calls onPair for every pair it
// recovers. After each range it explains, onStep gets the ranges still
// pending. Either callback may be nil.
//
// When more than one case explains a cell, the first one below wins:
//
//  1. dp[i][j] == dp[i+1][j]                       leave i unpaired
//  2. dp[i][j] == dp[i][j-1]                       leave j unpaired
//  3. i, j can pair and dp[i][j] == dp[i+1][j-1]+1 pair i with j
//  4. smallest k with dp[i][j] == dp[i][k]+dp[k+1][j]
func traceback(m *Matrix, seq Sequence, minLoop int, onPair func(Pairing), onStep func([]span)) error {
	n := len(seq)
	if m.Len() != n {
		return fmt.Errorf("%w: %dx%[2]d matrix for a sequence of length %d", ErrInconsistentMatrix, m.Len(), n)
	}
	if n == 0 {
		return nil
	}

	stack := []span{{0, n - 1, 0}}
	color := 0
	if onStep != nil {
		onStep(stack)
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i, j := s.i, s.j
		if i >= j {
			continue
		}

		score := m.At(i, j)
		switch {
		case score == m.At(i+1, j):
			stack = append(stack, span{i + 1, j, s.color})
		case score == m.At(i, j-1):
			stack = append(stack, span{i, j - 1, s.color})
		case CanPair(seq[i], seq[j], i, j, minLoop) && score == m.At(i+1, j-1)+1:
			if onPair != nil {
				onPair(Pairing{i, j})
			}
			stack = append(stack, span{i + 1, j - 1, s.color})
		default:
			k := i + 1
			for ; k < j; k++ {
				if score == m.At(i, k)+m.At(k+1, j) {
					break
				}
			}
			if k == j {
				return fmt.Errorf("%w: no case explains score %d at (%d, %d)", ErrInconsistentMatrix, score, i, j)
			}

			// (i, k) is pushed last so it's explained first
			stack = append(stack, span{k + 1, j, color + 1}, span{i, k, color + 2})
			color += 2
		}

		if onStep != nil {
			onStep(stack)
		}
	}

	return nil
}

// Reconstruct recovers one optimal structure from a matrix built by Compute
// for the same sequence and minLoop. It returns the pairs, ordered by their
// first index, and the structure in dot-bracket notation.
func Reconstruct(m *Matrix, seq Sequence, minLoop int) ([]Pairing, string, error) {
	pairings := []Pairing{}
	err := traceback(m, seq, minLoop, func(p Pairing) {
		pairings = append(pairings, p)
	}, nil)
	if err != nil {
		return nil, "", err
	}

	sort.Slice(pairings, func(a, b int) bool {
		return pairings[a].I < pairings[b].I
	})

	return pairings, DotBracket(len(seq), pairings), nil
}

// DotBracket renders pairings as a dot-bracket string of length n: '(' at
// the first index of each pair, ')' at the second and '.' everywhere else.
func DotBracket(n int, pairings []Pairing) string {
	structure := make([]byte, n)
	for i := range structure {
		structure[i] = '.'
	}
	for _, p := range pairings {
		structure[p.I] = '('
		structure[p.J] = ')'
	}
	return string(structure)
}
