package cmd

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/tiffanybuu/cs466-project/internal/dotbracket"
	"github.com/tiffanybuu/cs466-project/internal/nussinov"
)

// scoreCmd is for counting the pairs of a structure that came from elsewhere,
// e.g. a published structure, and comparing it against the Nussinov optimum
var scoreCmd = &cobra.Command{
	Use:   "score [structure]",
	Short: "Count the base pairs of a dot-bracket structure",
	Long: `Count the base pairs of a structure in dot-bracket notation.

With --seq, the structure's pairs are checked against the strand (Watson-Crick
pairs with at least --min-loop bases between them) and compared with the most
pairs a fold of the strand has.`,
	Example:                    "  nussinov score '.(((....((((....))))....)))........' --seq GUUUCCAUCCCCGUGAGGGGAAUAAGUGUUUUGAA",
	Args:                       cobra.ExactArgs(1),
	RunE:                       runScore,
	SuggestionsMinimumDistance: 2,
}

// set flags
func init() {
	scoreCmd.Flags().String("seq", "", "strand the structure belongs to")

	RootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	structure := args[0]
	pairs, err := dotbracket.Parse(structure)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.AddRow("pairs", len(pairs))

	raw, _ := cmd.Flags().GetString("seq")
	if raw != "" {
		seq := nussinov.NewSequence(raw)
		if seq.Len() != len(structure) {
			return fmt.Errorf("structure has %d positions but the strand has %d bases", len(structure), seq.Len())
		}

		invalid := 0
		for _, p := range pairs {
			if !nussinov.CanPair(seq[p.Open], seq[p.Close], p.Open, p.Close, conf.Fold.MinLoop) {
				invalid++
			}
		}

		result, err := nussinov.Fold(raw, nussinov.Options{MinLoop: conf.Fold.MinLoop})
		if err != nil {
			return err
		}

		table.AddRow("invalid pairs", invalid)
		table.AddRow("max pairs", result.MaxScore)
		table.AddRow("max structure", result.DashStructure)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), table)
	return err
}
