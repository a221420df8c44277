package esv

// ProgressFunc receives transfer progress while a response body is streamed.
// Totals are 0 when unknown; uploads are always 0 because every request is a GET.
type ProgressFunc func(downloaded, downloadTotal, uploaded, uploadTotal int64)

// PassageRequest describes a text or HTML passage lookup.
type PassageRequest struct {
	// Book is a canonical book name in any case, e.g. "1 John".
	Book string
	// Verse is the verse expression, e.g. "3:16-21".
	Verse string
	// Options are the formatting parameters sent with text requests.
	Options RequestOptions
	// ExtraParams is a raw, already escaped query string suffix forwarded verbatim.
	ExtraParams string
}

// SearchRequest describes a full-text search.
type SearchRequest struct {
	// Query is the free-text search query.
	Query string
	// Page is the 1-based result page; 0 leaves the API default.
	Page int
	// PageSize is the number of results per page; 0 leaves the API default.
	PageSize int
}

// PassageResponse is the JSON body of the text and HTML endpoints.
type PassageResponse struct {
	// Query echoes the q parameter.
	Query string `json:"query"`
	// Canonical is the canonical form of the reference, e.g. "John 3:16".
	Canonical string `json:"canonical"`
	// Parsed holds the resolved verse ID ranges.
	Parsed [][]int64 `json:"parsed"`
	// Passages holds the rendered passages.
	Passages []string `json:"passages"`
}

// SearchResponse is the JSON body of the search endpoint.
type SearchResponse struct {
	// Page is the current result page.
	Page int `json:"page"`
	// TotalResults is the number of matches across all pages.
	TotalResults int `json:"total_results"`
	// Results holds the matches of the current page.
	Results []SearchResult `json:"results"`
	// TotalPages is the number of result pages.
	TotalPages int `json:"total_pages"`
}

// SearchResult is a single search match.
type SearchResult struct {
	// Reference is the matched passage reference, e.g. "John 3:16".
	Reference string `json:"reference"`
	// Content is the matched verse text.
	Content string `json:"content"`
}

// errorResponse is the body the API sends with non-2xx statuses.
type errorResponse struct {
	Detail string `json:"detail"`
}
