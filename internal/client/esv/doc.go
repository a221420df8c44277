// Package esv provides a Go client for the ESV passage API.
// It validates book and verse references before any network I/O,
// assembles the formatting query parameters, sends authenticated
// requests for text, HTML, audio and search results, and renders
// search results for the terminal.
// Every request is a single attempt: there is no retry and no caching.
package esv
