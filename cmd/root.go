package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentic-research/mosaic/internal/config"
)

var (
	formatFlag   string
	strategyFlag string
	selectFlag   string
	removeFlag   []int

	// cfg is resolved once per invocation: config file, then env, then flags.
	cfg config.Config
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&formatFlag, "format", "f", "", "Input format: json, yaml or hcl (default: from file extension)")
	pf.StringVarP(&strategyFlag, "strategy", "s", "", "Build strategy: window, poly or arena (default poly)")
	pf.StringVar(&selectFlag, "select", "", "JSONPath selecting the nodes to build (json input only)")
	pf.IntSliceVarP(&removeFlag, "remove", "r", nil, "Top-level child indices to remove before output, applied in order")
}

var rootCmd = &cobra.Command{
	Use:           "mosaic",
	Short:         "Mosaic: build and inspect component trees",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("format") {
			loaded.Format = formatFlag
		}
		if flags.Changed("strategy") {
			loaded.Strategy = strategyFlag
		}
		if flags.Changed("select") {
			loaded.Select = selectFlag
		}
		if flags.Changed("enumerator") {
			loaded.Enumerator = enumeratorFlag
		}
		if flags.Changed("package") {
			loaded.Package = packageFlag
		}
		if flags.Changed("func") {
			loaded.Func = funcFlag
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
