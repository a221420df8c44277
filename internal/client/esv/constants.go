package esv

const (
	// DefaultBaseURL is the upstream passage API root.
	DefaultBaseURL = "https://api.esv.org/v3/passage/"

	// textEndpoint is the plain text passage endpoint.
	textEndpoint = "text"
	// htmlEndpoint is the HTML passage endpoint.
	htmlEndpoint = "html"
	// audioEndpoint is the MP3 passage endpoint.
	audioEndpoint = "audio"
	// searchEndpoint is the full-text search endpoint.
	searchEndpoint = "search"

	// maxErrorBodySize caps how much of an error response is read for its detail message.
	maxErrorBodySize = 4096
)
