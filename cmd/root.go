package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/esv-reader/internal/app"
	"github.com/oshokin/esv-reader/internal/client/esv"
	"github.com/oshokin/esv-reader/internal/config"
	"github.com/oshokin/esv-reader/internal/logger"
	"github.com/oshokin/esv-reader/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	logLevelFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "esv-reader [flags] BOOK... VERSE",
		Short: "Read, search and listen to the English Standard Version in the terminal.",
		Long: `esv-reader looks up passages of the English Standard Version through the ESV API.

The book may span several words ("1 John", "song of solomon", "song_of_solomon")
and the verse is one of 16, 16-21, 3:16 or 3:16-21:

  esv-reader john 3:16
  esv-reader 1 john 1:5-10 --no-footnotes
  esv-reader psalms 23 --audio

An API key from https://api.esv.org is required; store it with 'esv-reader key set KEY'
or export ESV_API_KEY.`,
		Version:          version.Short(),
		Args:             cobra.MinimumNArgs(2), //nolint:mnd // A book and a verse.
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			req, err := parsePassageArgs(args)
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse arguments: %v", err)
			}

			if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			req.HTML, _ = cmd.Flags().GetBool("html")
			req.Audio, _ = cmd.Flags().GetBool("audio")

			app.ExecutePassageCommand(cmd.Context(), appConfig, req)
		},
	}
)

// errNotEnoughArguments indicates a command line without both a book and a verse.
var errNotEnoughArguments = errors.New("expected a book and a verse")

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigPath()))

	rootCmd.PersistentFlags().StringVar(
		&logLevelFromFlag,
		"log-level",
		"",
		"override the log level: debug, info, warn, error.")

	addPassageFlags(rootCmd.Flags())
}

// addPassageFlags defines the flags of the passage command.
func addPassageFlags(flags *pflag.FlagSet) {
	flags.Bool("no-headings", false, "omit section headings.")
	flags.Bool("no-footnotes", false, "omit footnote markers and footnotes.")
	flags.Bool("no-verse-numbers", false, "omit verse numbers.")
	flags.Bool("no-references", false, "omit the passage reference before the text.")
	flags.Bool("no-copyright", false, "omit the copyright notice.")
	flags.IntP("line-length", "w", 0, "wrap lines at this width, 0 disables wrapping.")
	flags.Bool("tabs", false, "indent with tabs instead of spaces.")
	flags.String("extra", "", "raw query parameters appended to the request, e.g. 'include-selahs=false'.")
	flags.BoolP("audio", "a", false, "download and play the audio of the passage.")
	flags.Bool("html", false, "fetch the HTML rendering and print it as Markdown.")
	flags.Bool("no-pager", false, "print directly instead of using the configured pager.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if logLevelFromFlag != "" {
		appConfig.LogLevel = logLevelFromFlag
	}

	if err = config.ValidateSettings(appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Invalid configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

// parsePassageArgs joins every argument but the last into the book name and takes the last one as the verse.
func parsePassageArgs(args []string) (*app.PassageCommandRequest, error) {
	if len(args) < 2 { //nolint:mnd // A book and a verse.
		return nil, fmt.Errorf("%w, got %d argument(s)", errNotEnoughArguments, len(args))
	}

	last := len(args) - 1

	return &app.PassageCommandRequest{
		Book:  esv.NormalizeBookInput(strings.Join(args[:last], " ")),
		Verse: strings.TrimSpace(args[last]),
	}, nil
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("no-headings"); flag != nil && flag.Changed {
		noHeadings, _ := flags.GetBool("no-headings")
		cfg.Passage.IncludeHeadings = !noHeadings
	}

	if flag := flags.Lookup("no-footnotes"); flag != nil && flag.Changed {
		noFootnotes, _ := flags.GetBool("no-footnotes")
		cfg.Passage.IncludeFootnotes = !noFootnotes
		cfg.Passage.IncludeFootnoteBody = !noFootnotes
	}

	if flag := flags.Lookup("no-verse-numbers"); flag != nil && flag.Changed {
		noVerseNumbers, _ := flags.GetBool("no-verse-numbers")
		cfg.Passage.IncludeVerseNumbers = !noVerseNumbers
		cfg.Passage.IncludeFirstVerseNumbers = !noVerseNumbers
	}

	if flag := flags.Lookup("no-references"); flag != nil && flag.Changed {
		noReferences, _ := flags.GetBool("no-references")
		cfg.Passage.IncludePassageReferences = !noReferences
	}

	if flag := flags.Lookup("no-copyright"); flag != nil && flag.Changed {
		noCopyright, _ := flags.GetBool("no-copyright")
		cfg.Passage.IncludeShortCopyright = !noCopyright

		if noCopyright {
			cfg.Passage.IncludeCopyright = false
		}
	}

	if flag := flags.Lookup("line-length"); flag != nil && flag.Changed {
		cfg.Passage.LineLength, _ = flags.GetInt("line-length")
	}

	if flag := flags.Lookup("tabs"); flag != nil && flag.Changed {
		cfg.Passage.IndentUsing = esv.IndentSpace

		if tabs, _ := flags.GetBool("tabs"); tabs {
			cfg.Passage.IndentUsing = esv.IndentTab
		}
	}

	if flag := flags.Lookup("extra"); flag != nil && flag.Changed {
		cfg.ExtraParams, _ = flags.GetString("extra")
	}

	if flag := flags.Lookup("no-pager"); flag != nil && flag.Changed {
		cfg.NoPager, _ = flags.GetBool("no-pager")
	}

	return config.ValidateConfig(cfg)
}
