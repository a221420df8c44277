package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/esv-reader/internal/utils"
	mock_utils "github.com/oshokin/esv-reader/internal/utils/mocks"
)

const testUserAgent = "esv-reader/0.1.0 (linux; amd64)"

// TestUserAgentInjector_RoundTrip tests which requests get the client's User-Agent.
func TestUserAgentInjector_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		setCallerAgent bool
		callerAgent    string
		providerCalls  int
		expectedAgent  string
	}{
		{
			name:          "missing header",
			providerCalls: 1,
			expectedAgent: testUserAgent,
		},
		{
			name:           "empty header",
			setCallerAgent: true,
			providerCalls:  1,
			expectedAgent:  testUserAgent,
		},
		{
			name:           "caller agent is kept",
			setCallerAgent: true,
			callerAgent:    "curl/8.5.0",
			providerCalls:  0,
			expectedAgent:  "curl/8.5.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			mockProvider := mock_utils.NewMockUserAgentProvider(ctrl)
			mockProvider.EXPECT().GetUserAgent().Return(testUserAgent).Times(tt.providerCalls)

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.expectedAgent, r.Header.Get("User-Agent"))
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			injector := NewUserAgentInjector(http.DefaultTransport, mockProvider)

			req, err := http.NewRequest(http.MethodGet, server.URL+"/v3/passage/text/", nil) //nolint:noctx // Test code.
			require.NoError(t, err)

			if tt.setCallerAgent {
				req.Header.Set("User-Agent", tt.callerAgent)
			}

			resp, err := injector.RoundTrip(req)
			require.NoError(t, err)

			defer resp.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

			assert.Equal(t, http.StatusOK, resp.StatusCode)

			// The caller's request is never modified.
			if !tt.setCallerAgent {
				assert.Empty(t, req.Header.Values("User-Agent"))
			}
		})
	}
}

// TestUserAgentInjector_WithAuthToken tests the decorator chain the API client builds.
func TestUserAgentInjector_WithAuthToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "esv-reader/0.1.0 ("))
		assert.Equal(t, "Token abc123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	authTransport, err := NewAuthTokenInjector(NewLogTransport(http.DefaultTransport, 0), "abc123")
	require.NoError(t, err)

	injector := NewUserAgentInjector(authTransport, utils.NewProductUserAgentProvider("esv-reader", "0.1.0"))

	for range 3 {
		req, reqErr := http.NewRequest(http.MethodGet, server.URL, nil) //nolint:noctx // Test code.
		require.NoError(t, reqErr)

		resp, rtErr := injector.RoundTrip(req)
		require.NoError(t, rtErr)
		resp.Body.Close() //nolint:errcheck,gosec // Test cleanup, error is not critical.

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	}
}

// TestUserAgentInjector_Errors tests nil requests and transport failures.
func TestUserAgentInjector_Errors(t *testing.T) {
	t.Parallel()

	injector := NewUserAgentInjector(http.DefaultTransport, utils.NewProductUserAgentProvider("esv-reader", "0.1.0"))

	resp, err := injector.RoundTrip(nil) //nolint:bodyclose // Response is nil on error.
	require.ErrorIs(t, err, ErrNilRequest)
	assert.Nil(t, resp)

	req, err := http.NewRequest(http.MethodGet, "http://[::1]:0", nil) //nolint:noctx // Test code.
	require.NoError(t, err)

	resp, err = injector.RoundTrip(req) //nolint:bodyclose // Response is nil on error.
	require.Error(t, err)
	assert.Nil(t, resp)
}
