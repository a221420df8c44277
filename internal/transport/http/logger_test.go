package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogTransport tests the NewLogTransport defaults.
func TestNewLogTransport(t *testing.T) {
	t.Parallel()

	transport, ok := NewLogTransport(http.DefaultTransport, 0).(*LogTransport)
	require.True(t, ok)
	assert.Equal(t, uint64(DefaultMaxLogLength), transport.maxLogLength)

	transport, ok = NewLogTransport(http.DefaultTransport, 10).(*LogTransport)
	require.True(t, ok)
	assert.Equal(t, uint64(10), transport.maxLogLength)
}

// TestLogTransport_RoundTrip tests that responses pass through unchanged.
func TestLogTransport_RoundTrip(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"passages":["text"]}`)) //nolint:errcheck // Test handler, error is not critical.
	}))
	defer server.Close()

	transport := NewLogTransport(http.DefaultTransport, 0)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil) //nolint:noctx // Test code, context not needed.
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)

	defer resp.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLogTransport_NilRequest tests that a nil request is rejected.
func TestLogTransport_NilRequest(t *testing.T) {
	t.Parallel()

	resp, err := NewLogTransport(http.DefaultTransport, 0).RoundTrip(nil) //nolint:bodyclose // Response is nil.
	require.ErrorIs(t, err, ErrNilRequest)
	assert.Nil(t, resp)
}

// TestRedactAuthorization tests that the API key never reaches the log.
func TestRedactAuthorization(t *testing.T) {
	t.Parallel()

	dump := "GET /v3/passage/text/?q=john+3:16 HTTP/1.1\r\n" +
		"Host: api.esv.org\r\n" +
		"Authorization: Token 0123456789abcdef\r\n" +
		"User-Agent: esv-reader/0.1.0\r\n\r\n"

	result := string(redactAuthorization([]byte(dump)))

	assert.NotContains(t, result, "0123456789abcdef")
	assert.Contains(t, result, "Authorization: Token [redacted]\r\n")
	assert.Contains(t, result, "User-Agent: esv-reader/0.1.0")
}

// TestLogTransport_Truncate tests that long dumps are truncated.
func TestLogTransport_Truncate(t *testing.T) {
	t.Parallel()

	transport := &LogTransport{maxLogLength: 5}

	assert.Equal(t, "abc", transport.truncate([]byte("abc")))
	assert.True(t, strings.HasSuffix(transport.truncate([]byte("abcdefgh")), "... [truncated]"))
	assert.True(t, strings.HasPrefix(transport.truncate([]byte("abcdefgh")), "abcde"))
}
