package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tiffanybuu/cs466-project/internal/nussinov"
	"github.com/tiffanybuu/cs466-project/internal/rna"
)

// foldCmd is for folding a strand passed as an argument or every strand in a FASTA file
var foldCmd = &cobra.Command{
	Use:   "fold [seq]",
	Short: "Fold an RNA strand, or every strand in a FASTA file",
	Long: `Fold an RNA strand into the structure with the most base pairs.

The strand is either the argument or, with --in, each record of a FASTA file.
Records of a FASTA file are folded in parallel. The output has, per strand:

  dpTable        the score matrix: the most pairs of every subsequence
  maxScore       the most pairs of the whole strand
  pairings       the pairs of one structure with maxScore pairs
  dashStructure  that structure in dot-bracket notation`,
	Example: `  nussinov fold GGGAAAUCC --min-loop 3
  nussinov fold --in trna.fa --out trna.yaml --format yaml`,
	Args:                       cobra.MaximumNArgs(1),
	RunE:                       runFold,
	SuggestionsMinimumDistance: 2,
}

// set flags
func init() {
	foldCmd.Flags().StringP("in", "i", "", "input FASTA file with the strands to fold")
	foldCmd.Flags().StringP("out", "o", "", "output file name (stdout if empty)")
	foldCmd.Flags().StringP("format", "f", "json", "output format: json or yaml")
	foldCmd.Flags().IntP("workers", "w", 0, "strands folded at once (GOMAXPROCS if 0)")
	foldCmd.Flags().BoolP("matrix", "m", false, "print each score matrix to stderr")
	foldCmd.Flags().BoolP("trace", "t", false, "include the traceback, step by step")

	viper.BindPFlag("fold.format", foldCmd.Flags().Lookup("format"))
	viper.BindPFlag("fold.workers", foldCmd.Flags().Lookup("workers"))

	RootCmd.AddCommand(foldCmd)
}

func runFold(cmd *cobra.Command, args []string) error {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	showMatrix, _ := cmd.Flags().GetBool("matrix")
	trace, _ := cmd.Flags().GetBool("trace")

	opts := nussinov.Options{MinLoop: conf.Fold.MinLoop, Trace: trace}

	var output interface{}
	switch {
	case in != "":
		records, err := rna.ReadFASTA(in)
		if err != nil {
			return err
		}

		folds, err := rna.FoldAll(cmd.Context(), records, opts, conf.Fold.Workers)
		if err != nil {
			return err
		}

		if showMatrix {
			for _, f := range folds {
				if err := printMatrix(cmd.ErrOrStderr(), f.ID, f.Seq, f.DPTable); err != nil {
					return err
				}
			}
		}
		output = folds
	case len(args) > 0:
		result, err := nussinov.Fold(args[0], opts)
		if err != nil {
			return err
		}

		if showMatrix {
			if err := printMatrix(cmd.ErrOrStderr(), "", args[0], result.DPTable); err != nil {
				return err
			}
		}
		output = result
	default:
		cmd.Help()
		return errors.New("no sequence: pass one as an argument or a FASTA file with --in")
	}

	if out == "" {
		return rna.Write(cmd.OutOrStdout(), output, conf.Fold.Format)
	}
	return rna.WriteFile(out, output, conf.Fold.Format)
}

// printMatrix writes a score matrix as a table under an optional header
func printMatrix(w io.Writer, id, seq string, rows [][]int) error {
	m, err := nussinov.NewMatrix(rows)
	if err != nil {
		return err
	}

	if id != "" {
		fmt.Fprintf(w, ">%s\n", id)
	}
	_, err = fmt.Fprintln(w, nussinov.Format(m, nussinov.NewSequence(seq)))
	return err
}
