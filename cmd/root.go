// Package cmd is for command line interactions with the nussinov application
package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tiffanybuu/cs466-project/config"
	"github.com/tiffanybuu/cs466-project/internal/logger"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// conf is loaded from viper before any command runs
	conf *config.Config
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "nussinov",
	Short: "Predict RNA secondary structure by maximizing base pairs",
	Long: `Predict the secondary structure of RNA strands with the Nussinov algorithm.

Strands are folded into the structure with the most Watson-Crick base pairs
(A-U, G-C). Every hairpin loop is left with at least --min-loop unpaired bases.
Structures are written as a score matrix, the pairs, and dot-bracket notation.`,
	Version:       "0.1.0",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if conf, err = config.New(); err != nil {
			return err
		}
		return logger.Init(conf.Log.Level, conf.Log.Format)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		stop()
		stderr.Fatalf("%v", err)
	}
}

// set flags
func init() {
	RootCmd.PersistentFlags().StringP("settings", "s", "", "YAML settings file")
	RootCmd.PersistentFlags().IntP("min-loop", "l", 0, "minimum number of unpaired bases in a hairpin loop")
	RootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("fold.min-loop", RootCmd.PersistentFlags().Lookup("min-loop"))
	viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))
}
