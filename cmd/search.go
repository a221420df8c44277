package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/esv-reader/internal/app"
	"github.com/oshokin/esv-reader/internal/config"
	"github.com/oshokin/esv-reader/internal/logger"
	esv_service "github.com/oshokin/esv-reader/internal/service/esv"
)

// errNegativePage indicates a negative --page value.
var errNegativePage = errors.New("page cannot be negative")

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var searchCmd = &cobra.Command{
	Use:   "search [flags] QUERY...",
	Short: "Search the ESV text",
	Long: `Search the full text of the ESV and print the matching verses.

  esv-reader search living water
  esv-reader search --page 2 --page-size 10 faith hope love
  esv-reader search --json shepherd`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		req, err := parseSearchArgs(cmd.Flags(), args)
		if err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse arguments: %v", err)
		}

		if err = bindSearchFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteSearchCommand(cmd.Context(), appConfig, req)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	addSearchFlags(searchCmd.Flags())

	rootCmd.AddCommand(searchCmd)
}

// addSearchFlags defines the flags of the search command.
func addSearchFlags(flags *pflag.FlagSet) {
	flags.Bool("json", false, "print the raw JSON response.")
	flags.IntP("page", "p", 0, "result page to show, starting at 1.")
	flags.Int("page-size", 0, "number of results per page, at most 100.")
	flags.IntP("width", "w", 0, "wrap results at this width.")
	flags.Bool("no-pager", false, "print directly instead of using the configured pager.")
}

func parseSearchArgs(flags *pflag.FlagSet, args []string) (*esv_service.SearchRequest, error) {
	page, _ := flags.GetInt("page")
	if page < 0 {
		return nil, fmt.Errorf("%w, got %d", errNegativePage, page)
	}

	asJSON, _ := flags.GetBool("json")

	return &esv_service.SearchRequest{
		Query:  strings.Join(args, " "),
		Page:   page,
		AsJSON: asJSON,
	}, nil
}

func bindSearchFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("page-size"); flag != nil && flag.Changed {
		cfg.SearchPageSize, _ = flags.GetInt("page-size")
	}

	if flag := flags.Lookup("width"); flag != nil && flag.Changed {
		cfg.SearchLineWidth, _ = flags.GetInt("width")
	}

	if flag := flags.Lookup("no-pager"); flag != nil && flag.Changed {
		cfg.NoPager, _ = flags.GetBool("no-pager")
	}

	return config.ValidateConfig(cfg)
}
