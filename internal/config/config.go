package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/esv-reader/internal/client/esv"
	"github.com/oshokin/esv-reader/internal/constants"
	"github.com/oshokin/esv-reader/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// APIKey is the ESV API token.
	APIKey string `mapstructure:"api_key"`
	// BaseURL is the root of the passage API.
	BaseURL string `mapstructure:"base_url"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// Pager is the command text passages are piped into, e.g. "less -R". Empty prints to stdout.
	Pager string `mapstructure:"pager"`
	// AudioPlayer is the command audio passages are played with; the file path is appended.
	AudioPlayer string `mapstructure:"audio_player"`
	// TagAudio writes ID3 tags into downloaded audio passages.
	TagAudio bool `mapstructure:"tag_audio"`
	// ExtraParams is a raw query string suffix appended to passage requests.
	ExtraParams string `mapstructure:"extra_params"`
	// SearchLineWidth is the wrapping width of formatted search results.
	SearchLineWidth int `mapstructure:"search_line_width"`
	// SearchPageSize is the number of search results per page, 0 for the API default.
	SearchPageSize int `mapstructure:"search_page_size"`
	// Passage holds the formatting options of text passages.
	Passage esv.RequestOptions `mapstructure:"passage"`
	// ConfigFile is the file the configuration was read from (set automatically).
	ConfigFile string
	// NoPager prints passages directly to stdout, ignoring Pager.
	NoPager bool
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultConfigFilename is the default name of the configuration file in the home folder.
	DefaultConfigFilename = ".esv-reader.yaml"

	// EnvPrefix is the prefix of environment variables overriding the configuration, e.g. ESV_API_KEY.
	EnvPrefix = "ESV"

	// DefaultAudioPlayer is the default command used to play audio passages.
	DefaultAudioPlayer = "mpg123 -q"

	// maxSearchPageSize is the largest page size the search endpoint accepts.
	maxSearchPageSize = 100

	apiKeyField = "api_key"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyAPIKey indicates that the API key is missing.
	ErrEmptyAPIKey = errors.New("API key cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidBaseURL indicates that the base URL is not an HTTP(S) URL.
	ErrInvalidBaseURL = errors.New("invalid base_url")
	// ErrInvalidIndentUnit indicates that passage.indent_using is neither space nor tab.
	ErrInvalidIndentUnit = errors.New("passage.indent_using must be 'space' or 'tab'")
	// ErrInvalidSearchLineWidth indicates a negative search line width.
	ErrInvalidSearchLineWidth = errors.New("search_line_width cannot be negative")
	// ErrInvalidSearchPageSize indicates a search page size outside the accepted range.
	ErrInvalidSearchPageSize = errors.New("search_page_size must be between 0 and 100")
	// ErrNotBoolean indicates a boolean setting holding another kind of value.
	ErrNotBoolean = errors.New("value is not a boolean")
	// ErrNotInteger indicates an integer setting holding another kind of value.
	ErrNotInteger = errors.New("value is not an integer")
)

// DefaultConfigPath returns the default configuration file path in the user's home folder.
// It falls back to the current folder when the home folder is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFilename
	}

	return filepath.Join(home, DefaultConfigFilename)
}

// LoadConfig loads configuration settings from a YAML file and the environment.
// An empty filename selects DefaultConfigPath, which may be absent; an explicit file must exist.
func LoadConfig(configFilename string) (*Config, error) {
	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigPath()
	}

	v := newViper()
	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if isExplicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecoderConfigOption(strictDecoding)); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigFile = configFilename

	return &cfg, nil
}

// strictDecoding rejects values of the wrong type instead of coercing them,
// so that "include_headings: 5" or "line_length: 3.7" fail to load.
// Strings are still parsed because environment variables are always strings.
func strictDecoding(dc *mapstructure.DecoderConfig) {
	dc.WeaklyTypedInput = false
	dc.DecodeHook = mapstructure.DecodeHookFuncKind(parseScalarString)
}

func parseScalarString(from, to reflect.Kind, data any) (any, error) {
	switch to {
	case reflect.Bool:
		s, ok := data.(string)
		if from != reflect.String || !ok {
			return data, nil
		}

		parsed, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotBoolean, s)
		}

		return parsed, nil
	case reflect.Int:
		switch from {
		case reflect.String:
			s, ok := data.(string)
			if !ok {
				return data, nil
			}

			parsed, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrNotInteger, s)
			}

			return parsed, nil
		case reflect.Float32, reflect.Float64:
			return nil, fmt.Errorf("%w: %v", ErrNotInteger, data)
		default:
			return data, nil
		}
	default:
		return data, nil
	}
}

// newViper returns a viper instance with a default for every key, so that
// absent keys keep their defaults and every key can be overridden from the environment.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(apiKeyField, "")
	v.SetDefault("base_url", esv.DefaultBaseURL)
	v.SetDefault("log_level", zapcore.InfoLevel.String())
	v.SetDefault("pager", "")
	v.SetDefault("audio_player", DefaultAudioPlayer)
	v.SetDefault("tag_audio", true)
	v.SetDefault("extra_params", "")
	v.SetDefault("search_line_width", esv.DefaultSearchLineWidth)
	v.SetDefault("search_page_size", 0)

	passage := esv.DefaultRequestOptions()

	v.SetDefault("passage.include_passage_references", passage.IncludePassageReferences)
	v.SetDefault("passage.include_verse_numbers", passage.IncludeVerseNumbers)
	v.SetDefault("passage.include_first_verse_numbers", passage.IncludeFirstVerseNumbers)
	v.SetDefault("passage.include_footnotes", passage.IncludeFootnotes)
	v.SetDefault("passage.include_footnote_body", passage.IncludeFootnoteBody)
	v.SetDefault("passage.include_headings", passage.IncludeHeadings)
	v.SetDefault("passage.include_short_copyright", passage.IncludeShortCopyright)
	v.SetDefault("passage.include_copyright", passage.IncludeCopyright)
	v.SetDefault("passage.include_passage_horizontal_lines", passage.IncludePassageHorizontalLines)
	v.SetDefault("passage.include_heading_horizontal_lines", passage.IncludeHeadingHorizontalLines)
	v.SetDefault("passage.horizontal_line_length", passage.HorizontalLineLength)
	v.SetDefault("passage.include_selahs", passage.IncludeSelahs)
	v.SetDefault("passage.indent_using", string(passage.IndentUsing))
	v.SetDefault("passage.indent_paragraphs", passage.IndentParagraphs)
	v.SetDefault("passage.indent_poetry", passage.IndentPoetry)
	v.SetDefault("passage.indent_poetry_lines", passage.IndentPoetryLines)
	v.SetDefault("passage.indent_declares", passage.IndentDeclares)
	v.SetDefault("passage.indent_psalm_doxology", passage.IndentPsalmDoxology)
	v.SetDefault("passage.line_length", passage.LineLength)

	return v
}

// ValidateConfig checks the configuration for validity and sets derived fields.
// Every error wraps esv.ErrConfig.
func ValidateConfig(cfg *Config) error {
	if err := ValidateSettings(cfg); err != nil {
		return err
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return fmt.Errorf("%w: %w", esv.ErrConfig, ErrEmptyAPIKey)
	}

	return nil
}

// ValidateSettings validates everything but the API key, which commands managing the key do not need.
func ValidateSettings(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !(isLogLevelCorrect) {
		return fmt.Errorf("%w: %w: '%s'", esv.ErrConfig, ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if !esv.IsValidBaseURL(cfg.BaseURL) {
		return fmt.Errorf("%w: %w: '%s'", esv.ErrConfig, ErrInvalidBaseURL, cfg.BaseURL)
	}

	cfg.Passage.IndentUsing = esv.IndentUnit(strings.ToLower(strings.TrimSpace(string(cfg.Passage.IndentUsing))))
	if !cfg.Passage.IndentUsing.IsValid() {
		return fmt.Errorf("%w: %w, got '%s'", esv.ErrConfig, ErrInvalidIndentUnit, cfg.Passage.IndentUsing)
	}

	if cfg.SearchLineWidth < 0 {
		return fmt.Errorf("%w: %w", esv.ErrConfig, ErrInvalidSearchLineWidth)
	}

	if cfg.SearchPageSize < 0 || cfg.SearchPageSize > maxSearchPageSize {
		return fmt.Errorf("%w: %w, got %d", esv.ErrConfig, ErrInvalidSearchPageSize, cfg.SearchPageSize)
	}

	return nil
}

// SaveAPIKey writes cfg.APIKey to the configuration file while preserving the rest of its content and order.
// The file is created when it does not exist.
func SaveAPIKey(cfg *Config) error {
	configFile := cfg.ConfigFile
	if configFile == "" {
		configFile = DefaultConfigPath()
	}

	var node yaml.Node

	// A missing file starts from an empty document.
	originalContent, err := os.ReadFile(filepath.Clean(configFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML while preserving order using yaml.Node.
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err = setAPIKeyInNode(&node, cfg.APIKey); err != nil {
		return err
	}

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.PrivateFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cfg.ConfigFile = configFile

	return nil
}

// setAPIKeyInNode updates the api_key value in the YAML node tree, adding the key when missing.
func setAPIKeyInNode(node *yaml.Node, apiKey string) error {
	// An empty file decodes to a zero node.
	if node.Kind == 0 {
		node.Kind = yaml.DocumentNode
	}

	if len(node.Content) == 0 {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"})
	}

	// The root node is a document node, content[0] is the actual map.
	mapNode := node.Content[0]
	if mapNode.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: config file root is not a mapping", esv.ErrConfig)
	}

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value != apiKeyField {
			continue
		}

		valueNode := mapNode.Content[i+1]
		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = "!!str"
		valueNode.Value = apiKey

		if valueNode.Style == 0 {
			valueNode.Style = yaml.DoubleQuotedStyle
		}

		return nil
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: apiKeyField},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: apiKey, Style: yaml.DoubleQuotedStyle})

	return nil
}
