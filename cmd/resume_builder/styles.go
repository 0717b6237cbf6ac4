package main

import (
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available document styles",
	RunE:  runStyles,
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}

func runStyles(cmd *cobra.Command, _ []string) error {
	m, err := styles.NewManager()
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintStyles(m.FormatChoices(), styles.DefaultStyle)
	return nil
}
