// Package esv orchestrates a single esv-reader invocation on top of the ESV API client.
// It fetches a passage and hands it to a pager, downloads, tags and plays audio
// passages, and prints search results either formatted or as raw JSON.
package esv
