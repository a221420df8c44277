package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewAuthTokenInjector tests the NewAuthTokenInjector constructor.
func TestNewAuthTokenInjector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		token       string
		expectError bool
	}{
		{name: "valid token", token: "abc123", expectError: false},
		{name: "token with spaces is trimmed", token: "  abc123  ", expectError: false},
		{name: "empty token", token: "", expectError: true},
		{name: "blank token", token: "   ", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			injector, err := NewAuthTokenInjector(http.DefaultTransport, tt.token)
			if tt.expectError {
				require.ErrorIs(t, err, ErrEmptyAuthToken)
				assert.Nil(t, injector)

				return
			}

			require.NoError(t, err)
			assert.Implements(t, (*http.RoundTripper)(nil), injector)
		})
	}
}

// TestAuthTokenInjector_RoundTrip tests that every request carries the token header.
func TestAuthTokenInjector_RoundTrip(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token abc123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	injector, err := NewAuthTokenInjector(http.DefaultTransport, "abc123")
	require.NoError(t, err)

	for range 3 {
		req, reqErr := http.NewRequest(http.MethodGet, server.URL, nil) //nolint:noctx // Test code, context not needed.
		require.NoError(t, reqErr)

		// A caller-supplied header is overwritten with the configured token.
		req.Header.Set("Authorization", "Token forged")

		resp, rtErr := injector.RoundTrip(req)
		require.NoError(t, rtErr)
		resp.Body.Close() //nolint:errcheck,gosec // Test cleanup, error is not critical.

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// The original request is left untouched.
		assert.Equal(t, "Token forged", req.Header.Get("Authorization"))
	}
}

// TestAuthTokenInjector_NilRequest tests that a nil request is rejected.
func TestAuthTokenInjector_NilRequest(t *testing.T) {
	t.Parallel()

	injector, err := NewAuthTokenInjector(http.DefaultTransport, "abc123")
	require.NoError(t, err)

	resp, err := injector.RoundTrip(nil) //nolint:bodyclose // Response is nil on error.
	require.ErrorIs(t, err, ErrNilRequest)
	assert.Nil(t, resp)
}
