package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/esv-reader/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	keyCmd = &cobra.Command{
		Use:   "key",
		Short: "API key management commands",
		Long: `Manage the ESV API key.

Create a key at https://api.esv.org/account/create-application/ and store it with 'key set'.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	keySetCmd = &cobra.Command{
		Use:   "set KEY",
		Short: "Save the API key to the configuration file",
		Long: `Saves the API key to the configuration file, creating the file if needed.
Other settings in the file are kept as they are.

  esv-reader key set 0123456789abcdef0123456789abcdef01234567`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteKeySetCommand(cmd.Context(), appConfig, args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	keyCmd.AddCommand(keySetCmd)

	rootCmd.AddCommand(keyCmd)
}
