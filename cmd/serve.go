package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tiffanybuu/cs466-project/internal/server"
)

// serveCmd is for folding strands sent over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve folds over HTTP",
	Long: `Serve folds over HTTP until interrupted.

  GET /nussinov?rna=GCGC&minloop=0   fold a strand, responds with JSON
  GET /healthz                       liveness check
  GET /metrics                       Prometheus metrics

"minloop" defaults to --min-loop. Add "trace=true" to get the traceback.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.New(conf).Run(cmd.Context())
	},
	SuggestionsMinimumDistance: 2,
}

// set flags
func init() {
	serveCmd.Flags().StringP("addr", "a", ":5000", "address to listen on")
	serveCmd.Flags().Int("max-length", 0, "longest strand to fold (0 for no limit)")
	serveCmd.Flags().String("cors-origin", "*", "Access-Control-Allow-Origin header value")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("server.max-length", serveCmd.Flags().Lookup("max-length"))
	viper.BindPFlag("server.cors-origin", serveCmd.Flags().Lookup("cors-origin"))

	RootCmd.AddCommand(serveCmd)
}
