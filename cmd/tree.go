package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/mosaic/internal/render"
)

var (
	enumeratorFlag string
	colorFlag      bool
)

var treeCmd = &cobra.Command{
	Use:   "tree [description]",
	Short: "Draw a described component tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(sourceFS, args[0], cfg)
		if err != nil {
			return err
		}
		root, err := buildTree(doc, cfg.Strategy, removeFlag)
		if err != nil {
			return err
		}
		out := render.Tree(root, render.Options{
			Enumerator: cfg.Enumerator,
			Color:      colorFlag,
		})
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	treeCmd.Flags().StringVar(&enumeratorFlag, "enumerator", "", "Branch style: default or rounded")
	treeCmd.Flags().BoolVar(&colorFlag, "color", false, "Style branch labels")
	rootCmd.AddCommand(treeCmd)
}
