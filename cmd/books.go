package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/esv-reader/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var booksCmd = &cobra.Command{
	Use:              "books",
	Short:            "List the accepted book names",
	Args:             cobra.NoArgs,
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		app.ExecuteBooksCommand(cmd.Context(), cmd.OutOrStdout())
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(booksCmd)
}
