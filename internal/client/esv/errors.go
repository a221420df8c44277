package esv

import "errors"

var (
	// ErrReference indicates an invalid book or verse, detected before any network I/O.
	ErrReference = errors.New("invalid reference")
	// ErrConfig indicates an invalid client setting such as a non-HTTP base URL or an empty API key.
	ErrConfig = errors.New("invalid client configuration")
	// ErrRequest indicates a transport failure or a non-2xx response.
	ErrRequest = errors.New("request failed")
	// ErrFormat indicates a response body that is not the expected JSON shape.
	ErrFormat = errors.New("unexpected response format")
	// ErrSearch indicates a search that returned no results.
	ErrSearch = errors.New("no search results")
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrAudioStorage indicates that the audio temp file could not be written.
	ErrAudioStorage = errors.New("failed to store audio passage")
)
