package utils

import (
	"runtime"
	"strings"
)

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

// UserAgentProvider supplies the User-Agent of outgoing API requests.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// ProductUserAgentProvider identifies the client as "product/version (os; arch)".
// The value is built once, at construction.
type ProductUserAgentProvider struct {
	userAgent string
}

// NewProductUserAgentProvider creates a provider for the given product and version.
// A blank version leaves the bare product name, as in "esv-reader (linux; amd64)".
func NewProductUserAgentProvider(product, version string) UserAgentProvider {
	token := strings.TrimSpace(product)

	if version = strings.TrimSpace(version); version != "" {
		token += "/" + version
	}

	return &ProductUserAgentProvider{
		userAgent: token + " (" + runtime.GOOS + "; " + runtime.GOARCH + ")",
	}
}

// GetUserAgent returns the User-Agent string.
func (p *ProductUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}
