package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/mosaic/internal/codegen"
	"github.com/agentic-research/mosaic/internal/ingest"
)

var (
	packageFlag string
	funcFlag    string
)

var genCmd = &cobra.Command{
	Use:   "gen [description]",
	Short: "Emit Go source that builds the described tree",
	Long: `Emit gofumpt-formatted Go source for a builder function returning the
described tree, after any --remove indices are applied. The poly strategy
yields a container.Container[container.Poly], the window strategy a
*component.Window. The arena strategy has no source form.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(sourceFS, args[0], cfg)
		if err != nil {
			return err
		}
		s, err := ingest.ParseStrategy(cfg.Strategy)
		if err != nil {
			return err
		}
		opts := codegen.Options{Package: cfg.Package, Func: cfg.Func}

		var src []byte
		switch s {
		case ingest.StrategyPoly:
			c, err := buildPoly(doc, removeFlag)
			if err != nil {
				return err
			}
			src, err = codegen.PolySource(c, opts)
			if err != nil {
				return err
			}
		case ingest.StrategyWindow:
			w, err := buildWindow(doc, removeFlag)
			if err != nil {
				return err
			}
			src, err = codegen.WindowSource(w, opts)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("gen: strategy %q has no source form (use poly or window)", s)
		}

		_, err = cmd.OutOrStdout().Write(src)
		return err
	},
}

func init() {
	genCmd.Flags().StringVar(&packageFlag, "package", "", "Package name of the generated file (default main)")
	genCmd.Flags().StringVar(&funcFlag, "func", "", "Name of the generated builder function (default Build)")
	rootCmd.AddCommand(genCmd)
}
