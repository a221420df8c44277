package http

import (
	"net/http"

	"github.com/oshokin/esv-reader/internal/utils"
)

// UserAgentInjector is an http.RoundTripper that identifies the client to the API.
// A User-Agent already set by the caller is kept.
type UserAgentInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// userAgentProvider supplies the User-Agent of requests without one.
	userAgentProvider utils.UserAgentProvider
}

const userAgentHeader = "User-Agent"

// NewUserAgentInjector creates a UserAgentInjector in front of next.
func NewUserAgentInjector(next http.RoundTripper, userAgentProvider utils.UserAgentProvider) http.RoundTripper {
	return &UserAgentInjector{
		next:              next,
		userAgentProvider: userAgentProvider,
	}
}

// RoundTrip fills in a missing or empty User-Agent on a clone of the request and forwards it.
// It implements the http.RoundTripper interface.
func (t *UserAgentInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if req.Header.Get(userAgentHeader) != "" {
		return t.next.RoundTrip(req)
	}

	identified := req.Clone(req.Context())
	identified.Header.Set(userAgentHeader, t.userAgentProvider.GetUserAgent())

	return t.next.RoundTrip(identified)
}
