package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/esv-reader/internal/client/esv"
	"github.com/oshokin/esv-reader/internal/config"
	"github.com/oshokin/esv-reader/internal/constants"
)

const testBaseConfigContent = `
api_key: "config_key"
log_level: "info"
extra_params: "include-selahs=false"
passage:
  include_headings: true
  include_footnotes: true
  line_length: 60
  indent_using: space
`

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test-config.yaml")

	err := os.WriteFile(configPath, []byte(testBaseConfigContent), constants.DefaultFilePermissions)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	return cfg
}

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
func TestFlagOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		flags          []string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: []string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.True(t, cfg.Passage.IncludeHeadings)
				assert.True(t, cfg.Passage.IncludeFootnotes)
				assert.Equal(t, 60, cfg.Passage.LineLength)
				assert.Equal(t, esv.IndentSpace, cfg.Passage.IndentUsing)
				assert.Equal(t, "include-selahs=false", cfg.ExtraParams)
				assert.False(t, cfg.NoPager)
			},
		},
		{
			name:  "no-headings",
			flags: []string{"--no-headings"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.False(t, cfg.Passage.IncludeHeadings)
				assert.True(t, cfg.Passage.IncludeFootnotes)
			},
		},
		{
			name:  "no-footnotes clears markers and body",
			flags: []string{"--no-footnotes"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.False(t, cfg.Passage.IncludeFootnotes)
				assert.False(t, cfg.Passage.IncludeFootnoteBody)
				assert.True(t, cfg.Passage.IncludeHeadings)
			},
		},
		{
			name:  "no-verse-numbers",
			flags: []string{"--no-verse-numbers"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.False(t, cfg.Passage.IncludeVerseNumbers)
				assert.False(t, cfg.Passage.IncludeFirstVerseNumbers)
			},
		},
		{
			name:  "no-references and no-copyright",
			flags: []string{"--no-references", "--no-copyright"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.False(t, cfg.Passage.IncludePassageReferences)
				assert.False(t, cfg.Passage.IncludeShortCopyright)
				assert.False(t, cfg.Passage.IncludeCopyright)
			},
		},
		{
			name:  "explicit false keeps headings",
			flags: []string{"--no-headings=false"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.True(t, cfg.Passage.IncludeHeadings)
			},
		},
		{
			name:  "line length, tabs and extra",
			flags: []string{"--line-length", "40", "--tabs", "--extra", "&include-selahs=true"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, 40, cfg.Passage.LineLength)
				assert.Equal(t, esv.IndentTab, cfg.Passage.IndentUsing)
				assert.Equal(t, "&include-selahs=true", cfg.ExtraParams)
			},
		},
		{
			name:  "no-pager",
			flags: []string{"--no-pager"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.True(t, cfg.NoPager)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := loadTestConfig(t)

			testCmd := &cobra.Command{Use: "test"}
			addPassageFlags(testCmd.Flags())

			require.NoError(t, testCmd.Flags().Parse(tt.flags))
			require.NoError(t, bindFlagsToConfig(testCmd.Flags(), cfg))

			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_MissingAPIKey tests that binding flags validates the configuration.
func TestFlagOverrides_MissingAPIKey(t *testing.T) {
	t.Parallel()

	cfg := loadTestConfig(t)
	cfg.APIKey = ""

	testCmd := &cobra.Command{Use: "test"}
	addPassageFlags(testCmd.Flags())

	err := bindFlagsToConfig(testCmd.Flags(), cfg)
	require.ErrorIs(t, err, config.ErrEmptyAPIKey)
}

// TestParsePassageArgs tests how arguments are split into a book and a verse.
func TestParsePassageArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		args          []string
		expectedBook  string
		expectedVerse string
		expectError   bool
	}{
		{name: "single word book", args: []string{"john", "3:16"}, expectedBook: "john", expectedVerse: "3:16"},
		{name: "numbered book", args: []string{"1", "John", "1:9"}, expectedBook: "1 John", expectedVerse: "1:9"},
		{
			name:          "multi-word book",
			args:          []string{"song", "of", "solomon", "2"},
			expectedBook:  "song of solomon",
			expectedVerse: "2",
		},
		{
			name:          "underscored book",
			args:          []string{"song_of_solomon", "2:4"},
			expectedBook:  "song of solomon",
			expectedVerse: "2:4",
		},
		{name: "hyphenated book", args: []string{"1-john", "4:8"}, expectedBook: "1 john", expectedVerse: "4:8"},
		{name: "verse only", args: []string{"3:16"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := parsePassageArgs(tt.args)
			if tt.expectError {
				require.ErrorIs(t, err, errNotEnoughArguments)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedBook, req.Book)
			assert.Equal(t, tt.expectedVerse, req.Verse)
		})
	}
}

// TestSearchFlags tests the search command's arguments and flag overrides.
func TestSearchFlags(t *testing.T) {
	t.Parallel()

	cfg := loadTestConfig(t)

	testCmd := &cobra.Command{Use: "test"}
	addSearchFlags(testCmd.Flags())

	require.NoError(t, testCmd.Flags().Parse([]string{"--json", "--page", "3", "--page-size", "25", "--width", "70"}))

	req, err := parseSearchArgs(testCmd.Flags(), []string{"living", "water"})
	require.NoError(t, err)
	assert.Equal(t, "living water", req.Query)
	assert.Equal(t, 3, req.Page)
	assert.True(t, req.AsJSON)

	require.NoError(t, bindSearchFlagsToConfig(testCmd.Flags(), cfg))
	assert.Equal(t, 25, cfg.SearchPageSize)
	assert.Equal(t, 70, cfg.SearchLineWidth)
}

// TestSearchFlags_Invalid tests rejected search flag values.
func TestSearchFlags_Invalid(t *testing.T) {
	t.Parallel()

	testCmd := &cobra.Command{Use: "test"}
	addSearchFlags(testCmd.Flags())

	require.NoError(t, testCmd.Flags().Parse([]string{"--page", "-1", "--page-size", "500"}))

	_, err := parseSearchArgs(testCmd.Flags(), []string{"faith"})
	require.ErrorIs(t, err, errNegativePage)

	err = bindSearchFlagsToConfig(testCmd.Flags(), loadTestConfig(t))
	require.ErrorIs(t, err, config.ErrInvalidSearchPageSize)
}
