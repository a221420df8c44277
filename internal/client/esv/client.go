package esv

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/oshokin/esv-reader/internal/constants"
	"github.com/oshokin/esv-reader/internal/logger"
	http_transport "github.com/oshokin/esv-reader/internal/transport/http"
	"github.com/oshokin/esv-reader/internal/utils"
	"github.com/oshokin/esv-reader/internal/version"
)

// Client defines the interface for interacting with the ESV passage API.
type Client interface {
	// GetPassage returns the plain text of a passage.
	GetPassage(ctx context.Context, req *PassageRequest) (string, error)
	// GetHTMLPassage returns the HTML rendering of a passage.
	GetHTMLPassage(ctx context.Context, req *PassageRequest) (string, error)
	// GetAudioPassage downloads the MP3 of a passage and returns the file path.
	GetAudioPassage(ctx context.Context, book, verse string) (string, error)
	// Search runs a full-text search.
	Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error)
	// SearchRaw runs a full-text search and returns the undecoded JSON body.
	SearchRaw(ctx context.Context, req *SearchRequest) (json.RawMessage, error)
	// SearchFormatted runs a full-text search and renders the results for the terminal.
	SearchFormatted(ctx context.Context, req *SearchRequest, lineWidth int) (string, error)
	// GetBaseURL returns the API base URL.
	GetBaseURL() string
	// SetBaseURL replaces the API base URL if it is an HTTP(S) URL.
	SetBaseURL(baseURL string) error
	// SetProgressFunc replaces the progress callback; nil restores the no-op.
	SetProgressFunc(progress ProgressFunc)
	// AudioPath returns the file the audio passages of this client are written to.
	AudioPath() string
}

// ClientImpl implements the Client interface.
// It is not safe for concurrent use; give each goroutine its own client.
type ClientImpl struct {
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient sends every request with the API key attached.
	httpClient *http.Client
	// progress receives download progress of every response body.
	progress ProgressFunc
	// audioPath is the reusable audio file of this client.
	audioPath string
	// timeout bounds JSON requests as a whole and audio requests until their headers arrive.
	timeout time.Duration
}

// Option customizes a client at construction.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL   string
	progress  ProgressFunc
	transport http.RoundTripper
	audioDir  string
	timeout   time.Duration
}

//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
var baseURLPattern = regexp.MustCompile(`^https?://.+\..+(/.+)?`)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithProgressFunc sets the progress callback.
func WithProgressFunc(progress ProgressFunc) Option {
	return func(o *clientOptions) {
		o.progress = progress
	}
}

// WithTransport sets the innermost round tripper, http.DefaultTransport by default.
func WithTransport(transport http.RoundTripper) Option {
	return func(o *clientOptions) {
		o.transport = transport
	}
}

// WithAudioDir sets the folder of the audio file, a folder under os.TempDir() by default.
func WithAudioDir(dir string) Option {
	return func(o *clientOptions) {
		o.audioDir = dir
	}
}

// WithTimeout replaces http_transport.DefaultTimeout. JSON requests must complete within it;
// audio downloads only have to start within it, so long chapters are not cut off on slow links.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// NewClient creates a client authenticated with apiKey.
// The key cannot be changed for the lifetime of the client.
func NewClient(apiKey string, opts ...Option) (Client, error) {
	options := &clientOptions{
		baseURL:   DefaultBaseURL,
		progress:  nil,
		transport: http.DefaultTransport,
		audioDir:  filepath.Join(os.TempDir(), constants.AppName),
		timeout:   http_transport.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(options)
	}

	if !IsValidBaseURL(options.baseURL) {
		return nil, fmt.Errorf("%w: base URL %q is not an HTTP(S) URL", ErrConfig, options.baseURL)
	}

	if options.timeout <= 0 {
		options.timeout = http_transport.DefaultTimeout
	}

	authTransport, err := http_transport.NewAuthTokenInjector(
		http_transport.NewLogTransport(options.transport, 0),
		apiKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			authTransport,
			utils.NewProductUserAgentProvider(constants.AppName, version.Short())),
	}

	client := &ClientImpl{
		baseURL:    options.baseURL,
		httpClient: httpClient,
		progress:   noopProgress,
		audioPath:  filepath.Join(options.audioDir, "passage-"+uuid.NewString()+constants.ExtensionMP3),
		timeout:    options.timeout,
	}

	client.SetProgressFunc(options.progress)

	return client, nil
}

// GetPassage returns the first passage of the text endpoint's response.
func (c *ClientImpl) GetPassage(ctx context.Context, req *PassageRequest) (string, error) {
	if err := validatePassageRequest(req); err != nil {
		return "", err
	}

	query := referenceQuery(req.Book, req.Verse) + BuildQuery(req.Options, req.ExtraParams)

	return c.fetchPassage(ctx, textEndpoint, query)
}

// GetHTMLPassage returns the first passage of the HTML endpoint's response.
// Only the extra parameters are forwarded; the text formatting options do not apply to HTML.
func (c *ClientImpl) GetHTMLPassage(ctx context.Context, req *PassageRequest) (string, error) {
	if err := validatePassageRequest(req); err != nil {
		return "", err
	}

	query := referenceQuery(req.Book, req.Verse) + normalizeExtraParams(req.ExtraParams)

	return c.fetchPassage(ctx, htmlEndpoint, query)
}

// GetAudioPassage downloads the MP3 of a passage into the client's audio file, overwriting it.
// On failure the file is removed so that no partial audio is left behind.
func (c *ClientImpl) GetAudioPassage(ctx context.Context, book, verse string) (string, error) {
	if err := ValidateReference(book, verse); err != nil {
		return "", err
	}

	// The timeout covers the wait for the response headers only; the body may take as long as it takes.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	headerTimer := time.AfterFunc(c.timeout, cancel)

	response, err := c.get(ctx, audioEndpoint, referenceQuery(book, verse))

	headerTimer.Stop()

	if err != nil {
		return "", err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	written, err := c.writeAudio(response)
	if err != nil {
		if removeErr := os.Remove(c.audioPath); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warnf(ctx, "Failed to clean up audio file '%s': %v", c.audioPath, removeErr)
		}

		return "", err
	}

	logger.Debugf(ctx, "Saved %s of audio to %s", humanize.Bytes(utils.SafeInt64ToUint64(written)), c.audioPath)

	return c.audioPath, nil
}

// Search runs a full-text search and decodes the response.
func (c *ClientImpl) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	if err := validateSearchRequest(req); err != nil {
		return nil, err
	}

	return fetchJSON[SearchResponse](c, ctx, searchEndpoint, searchQuery(req))
}

// SearchRaw runs a full-text search and returns the JSON body after checking that it is valid JSON.
func (c *ClientImpl) SearchRaw(ctx context.Context, req *SearchRequest) (json.RawMessage, error) {
	if err := validateSearchRequest(req); err != nil {
		return nil, err
	}

	body, err := c.fetchBody(ctx, searchEndpoint, searchQuery(req))
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: search response is not valid JSON", ErrFormat)
	}

	return json.RawMessage(body), nil
}

// SearchFormatted runs a full-text search and renders it with FormatSearchResults.
// It fails with ErrSearch when the search has no results.
func (c *ClientImpl) SearchFormatted(ctx context.Context, req *SearchRequest, lineWidth int) (string, error) {
	response, err := c.Search(ctx, req)
	if err != nil {
		return "", err
	}

	if response.TotalResults == 0 {
		return "", fmt.Errorf("%w for %q", ErrSearch, req.Query)
	}

	return FormatSearchResults(response.Results, lineWidth), nil
}

// GetBaseURL returns the base URL of the API.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// SetBaseURL replaces the base URL. A value that is not an HTTP(S) URL is rejected with ErrConfig
// and the previous base URL is kept.
func (c *ClientImpl) SetBaseURL(baseURL string) error {
	if !IsValidBaseURL(baseURL) {
		return fmt.Errorf("%w: base URL %q is not an HTTP(S) URL", ErrConfig, baseURL)
	}

	c.baseURL = baseURL

	return nil
}

// SetProgressFunc replaces the progress callback; nil restores the no-op.
func (c *ClientImpl) SetProgressFunc(progress ProgressFunc) {
	if progress == nil {
		progress = noopProgress
	}

	c.progress = progress
}

// AudioPath returns the file the audio passages of this client are written to.
func (c *ClientImpl) AudioPath() string {
	return c.audioPath
}

func (c *ClientImpl) fetchPassage(ctx context.Context, endpoint, query string) (string, error) {
	result, err := fetchJSON[PassageResponse](c, ctx, endpoint, query)
	if err != nil {
		return "", err
	}

	if len(result.Passages) == 0 {
		return "", fmt.Errorf("%w: response has no passages", ErrFormat)
	}

	return result.Passages[0], nil
}

func (c *ClientImpl) writeAudio(response *http.Response) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(c.audioPath), constants.DefaultFolderPermissions); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAudioStorage, err)
	}

	f, err := os.OpenFile(filepath.Clean(c.audioPath), os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
		constants.DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAudioStorage, err)
	}

	written, err := io.Copy(f, newProgressReader(response.Body, response.ContentLength, c.progress))

	closeErr := f.Close()

	if err != nil {
		return written, fmt.Errorf("%w: failed to read audio: %w", ErrRequest, err)
	}

	if closeErr != nil {
		return written, fmt.Errorf("%w: %w", ErrAudioStorage, closeErr)
	}

	return written, nil
}

func validatePassageRequest(req *PassageRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty passage request", ErrReference)
	}

	return ValidateReference(req.Book, req.Verse)
}

func validateSearchRequest(req *SearchRequest) error {
	if req == nil || strings.TrimSpace(req.Query) == "" {
		return fmt.Errorf("%w: empty search query", ErrReference)
	}

	return nil
}

// IsValidBaseURL reports whether baseURL is an HTTP(S) URL the client accepts.
func IsValidBaseURL(baseURL string) bool {
	if !baseURLPattern.MatchString(baseURL) {
		return false
	}

	_, err := url.Parse(baseURL)

	return err == nil
}
