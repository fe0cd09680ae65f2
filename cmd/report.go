package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [description]",
	Short: "Print the report of a described component tree, one line per leaf",
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
		if r := root.Report(); r != "" {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
