package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/esv-reader/internal/version"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var versionCmd = &cobra.Command{
	Use:              "version",
	Short:            "Print the version information",
	Args:             cobra.NoArgs,
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full()) //nolint:errcheck // Printing to stdout.
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(versionCmd)
}
