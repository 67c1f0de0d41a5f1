// Package nussinov predicts the secondary structure of an RNA strand by
// maximizing its number of base pairs (Nussinov and Jacobson, 1980).
//
// Folding is split in two: Compute fills a triangular score matrix, where
// each cell holds the most pairs any structure of that subsequence can form,
// and Reconstruct walks the finished matrix back to one optimal structure.
package nussinov

import "bytes"

// Sequence is an RNA strand, one byte per nucleotide, in upper case.
type Sequence []byte

// NewSequence canonicalizes a raw strand to upper case. Symbols other than
// A, U, G and C are kept: they never pair, but they still occupy a position.
func NewSequence(raw string) Sequence {
	return Sequence(bytes.ToUpper([]byte(raw)))
}

// Len is the number of nucleotides in the strand.
func (s Sequence) Len() int {
	return len(s)
}

func (s Sequence) String() string {
	return string(s)
}
