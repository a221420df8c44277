package esv

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/oshokin/esv-reader/internal/utils"
)

const (
	// DefaultSearchLineWidth is used when a non-positive width is requested.
	DefaultSearchLineWidth = 80

	searchContentIndent = "  "
)

// FormatSearchResults renders results as "reference\n  content\n" blocks,
// wrapping content so that indented lines fit within lineWidth columns.
// A result without content renders as its reference line alone.
func FormatSearchResults(results []SearchResult, lineWidth int) string {
	if lineWidth <= 0 {
		lineWidth = DefaultSearchLineWidth
	}

	contentWidth := max(lineWidth-len(searchContentIndent), 1)

	var b strings.Builder

	for _, result := range results {
		b.WriteString(result.Reference)
		b.WriteString("\n")

		content := utils.CollapseWhitespace(result.Content)
		if content == "" {
			continue
		}

		wrapped := wordwrap.WrapString(content, uint(contentWidth))
		for line := range strings.SplitSeq(wrapped, "\n") {
			b.WriteString(searchContentIndent)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}
