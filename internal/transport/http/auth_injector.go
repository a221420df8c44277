package http

import (
	"errors"
	"net/http"
	"strings"
)

// AuthTokenInjector is an http.RoundTripper that sets the Authorization header on every request.
// The token is fixed at construction and cannot be changed afterwards.
type AuthTokenInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// headerValue is the precomputed "Token <key>" value.
	headerValue string
}

// ErrEmptyAuthToken indicates that the injector was built without a token.
var ErrEmptyAuthToken = errors.New("authorization token cannot be empty")

// NewAuthTokenInjector creates an AuthTokenInjector for the given API key.
func NewAuthTokenInjector(next http.RoundTripper, token string) (http.RoundTripper, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyAuthToken
	}

	return &AuthTokenInjector{
		next:        next,
		headerValue: AuthorizationScheme + " " + token,
	}, nil
}

// RoundTrip sets the Authorization header on a clone of the request and forwards it.
// It implements the http.RoundTripper interface.
func (t *AuthTokenInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	// RoundTrippers must not modify the caller's request.
	authorized := req.Clone(req.Context())
	authorized.Header.Set(AuthorizationHeader, t.headerValue)

	return t.next.RoundTrip(authorized)
}
