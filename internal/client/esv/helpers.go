package esv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oshokin/esv-reader/internal/logger"
	"github.com/oshokin/esv-reader/internal/utils"
)

// referenceQuery renders "q={book}+{verse}" with the book lower-cased and its spaces replaced by '+'.
func referenceQuery(book, verse string) string {
	normalizedBook := strings.ToLower(utils.CollapseWhitespace(book))

	return "q=" + url.QueryEscape(normalizedBook) + "+" + verse
}

// searchQuery renders the search query string including optional pagination.
func searchQuery(req *SearchRequest) string {
	query := "q=" + url.QueryEscape(utils.CollapseWhitespace(req.Query))

	if req.Page > 0 {
		query += fmt.Sprintf("&page=%d", req.Page)
	}

	if req.PageSize > 0 {
		query += fmt.Sprintf("&page-size=%d", req.PageSize)
	}

	return query
}

// endpointURL joins the base URL with an endpoint, keeping the trailing slash the API expects.
func endpointURL(baseURL, endpoint string) (string, error) {
	route, err := url.JoinPath(baseURL, endpoint)
	if err != nil {
		return "", err
	}

	if !strings.HasSuffix(route, "/") {
		route += "/"
	}

	return route, nil
}

// get issues a single GET and returns the response of a 2xx status.
// Any other outcome is returned as an error wrapping ErrRequest.
func (c *ClientImpl) get(ctx context.Context, endpoint, rawQuery string) (*http.Response, error) {
	route, err := endpointURL(c.baseURL, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	request.URL.RawQuery = rawQuery

	logger.Debugf(ctx, "Requesting %s", request.URL.String())

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

		return nil, unexpectedStatusError(response)
	}

	return response, nil
}

// fetchBody reads a whole 2xx response body, reporting progress as it goes.
// The request and the body must complete within the client's timeout.
func (c *ClientImpl) fetchBody(ctx context.Context, endpoint, rawQuery string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.get(ctx, endpoint, rawQuery)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	body, err := io.ReadAll(newProgressReader(response.Body, response.ContentLength, c.progress))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrRequest, err)
	}

	return body, nil
}

// fetchJSON fetches an endpoint and decodes its JSON body into T.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func fetchJSON[T any](c *ClientImpl, ctx context.Context, endpoint, rawQuery string) (*T, error) {
	body, err := c.fetchBody(ctx, endpoint, rawQuery)
	if err != nil {
		return nil, err
	}

	var result T
	if err = json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	return &result, nil
}

// unexpectedStatusError builds the error for a non-2xx response, including the API's detail message if any.
func unexpectedStatusError(response *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodySize))

	var apiError errorResponse
	if err := json.Unmarshal(body, &apiError); err == nil && apiError.Detail != "" {
		return fmt.Errorf("%w: %w: %d: %s",
			ErrRequest, ErrUnexpectedHTTPStatus, response.StatusCode, apiError.Detail)
	}

	return fmt.Errorf("%w: %w: %d", ErrRequest, ErrUnexpectedHTTPStatus, response.StatusCode)
}
