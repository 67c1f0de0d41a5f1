package rna

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tiffanybuu/cs466-project/internal/nussinov"
)

// Fold is the fold of one FASTA record.
type Fold struct {
	// ID of the record the strand came from
	ID string `json:"id" yaml:"id"`

	// Seq is the folded strand
	Seq string `json:"seq" yaml:"seq"`

	nussinov.Result `yaml:",inline"`
}

// FoldAll folds every record, at most workers at a time (GOMAXPROCS if
// workers < 1). Folds are returned in the order of records. The first
// failure cancels the folds that haven't started.
func FoldAll(ctx context.Context, records []Record, opts nussinov.Options, workers int) ([]Fold, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	folds := make([]Fold, len(records))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, rec := range records {
		i, rec := i, rec // per-iteration copies (go < 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := nussinov.Fold(rec.Seq, opts)
			if err != nil {
				return fmt.Errorf("failed to fold %s: %w", rec.ID, err)
			}

			folds[i] = Fold{ID: rec.ID, Seq: rec.Seq, Result: *result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return folds, nil
}
