// Package rna reads RNA strands from FASTA files and writes their folds.
package rna

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Record is a single named strand of a FASTA file.
type Record struct {
	// ID is the header line, minus the '>'
	ID string

	// Seq is the strand, without whitespace or line breaks
	Seq string
}

// unwantedChars are stripped from sequence lines: whitespace, digits, etc.
var unwantedChars = regexp.MustCompile(`[^A-Za-z]`)

// ReadFASTA reads every record in the FASTA file at path.
func ReadFASTA(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fasta file %s: %w", path, err)
	}
	defer f.Close()

	records, err := ParseFASTA(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fasta file %s: %w", path, err)
	}
	return records, nil
}

// ParseFASTA reads FASTA records from r. Sequence lines before the first
// header are an error.
func ParseFASTA(r io.Reader) ([]Record, error) {
	dat, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(dat), "\n")

	var records []Record
	var seq strings.Builder
	flush := func() {
		if len(records) > 0 {
			records[len(records)-1].Seq = seq.String()
		}
		seq.Reset()
	}

	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "", strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, ">"):
			flush()
			records = append(records, Record{ID: strings.TrimSpace(line[1:])})
		case len(records) == 0:
			return nil, fmt.Errorf("line %d: sequence before the first header", i+1)
		default:
			seq.WriteString(unwantedChars.ReplaceAllString(line, ""))
		}
	}
	flush()

	if len(records) == 0 {
		return nil, errors.New("no records")
	}
	return records, nil
}
