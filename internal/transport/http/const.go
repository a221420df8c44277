package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxLogLength is the default maximum size (in bytes) of a logged request or response dump.
	DefaultMaxLogLength = 64 * 1024

	// AuthorizationHeader is the HTTP header carrying the API key.
	AuthorizationHeader = "Authorization"

	// AuthorizationScheme prefixes the API key in the Authorization header.
	AuthorizationScheme = "Token"
)
