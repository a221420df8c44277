package esv

import (
	"strconv"
	"strings"
)

// IndentUnit selects the character used for indentation in text passages.
type IndentUnit string

const (
	// IndentSpace indents with spaces.
	IndentSpace IndentUnit = "space"
	// IndentTab indents with tab characters.
	IndentTab IndentUnit = "tab"
)

// IsValid reports whether the unit is one the API understands.
func (u IndentUnit) IsValid() bool {
	return u == IndentSpace || u == IndentTab
}

// RequestOptions holds the formatting parameters of a text passage request.
// Numeric values are forwarded as-is; the API decides which ones it accepts.
type RequestOptions struct {
	// IncludePassageReferences prints the passage reference before the text.
	IncludePassageReferences bool `mapstructure:"include_passage_references"`
	// IncludeVerseNumbers prints verse numbers.
	IncludeVerseNumbers bool `mapstructure:"include_verse_numbers"`
	// IncludeFirstVerseNumbers prints the number of the first verse of each chapter.
	IncludeFirstVerseNumbers bool `mapstructure:"include_first_verse_numbers"`
	// IncludeFootnotes prints footnote markers in the text.
	IncludeFootnotes bool `mapstructure:"include_footnotes"`
	// IncludeFootnoteBody prints the footnotes after the text.
	IncludeFootnoteBody bool `mapstructure:"include_footnote_body"`
	// IncludeHeadings prints section headings.
	IncludeHeadings bool `mapstructure:"include_headings"`
	// IncludeShortCopyright appends "(ESV)".
	IncludeShortCopyright bool `mapstructure:"include_short_copyright"`
	// IncludeCopyright appends the full copyright notice.
	IncludeCopyright bool `mapstructure:"include_copyright"`
	// IncludePassageHorizontalLines draws a rule around each passage.
	IncludePassageHorizontalLines bool `mapstructure:"include_passage_horizontal_lines"`
	// IncludeHeadingHorizontalLines draws a rule under each heading.
	IncludeHeadingHorizontalLines bool `mapstructure:"include_heading_horizontal_lines"`
	// HorizontalLineLength is the width of horizontal rules.
	HorizontalLineLength int `mapstructure:"horizontal_line_length"`
	// IncludeSelahs keeps "Selah" in the Psalms.
	IncludeSelahs bool `mapstructure:"include_selahs"`
	// IndentUsing is the indentation character.
	IndentUsing IndentUnit `mapstructure:"indent_using"`
	// IndentParagraphs is the indentation width of paragraphs.
	IndentParagraphs int `mapstructure:"indent_paragraphs"`
	// IndentPoetry enables poetry indentation.
	IndentPoetry bool `mapstructure:"indent_poetry"`
	// IndentPoetryLines is the indentation width of each poetry level.
	IndentPoetryLines int `mapstructure:"indent_poetry_lines"`
	// IndentDeclares is the indentation width of "Declares the LORD".
	IndentDeclares int `mapstructure:"indent_declares"`
	// IndentPsalmDoxology is the indentation width of the psalm doxologies.
	IndentPsalmDoxology int `mapstructure:"indent_psalm_doxology"`
	// LineLength wraps lines at this width; 0 disables wrapping.
	LineLength int `mapstructure:"line_length"`
}

// DefaultRequestOptions returns the API's documented defaults.
func DefaultRequestOptions() RequestOptions {
	return RequestOptions{
		IncludePassageReferences:      true,
		IncludeVerseNumbers:           true,
		IncludeFirstVerseNumbers:      true,
		IncludeFootnotes:              true,
		IncludeFootnoteBody:           true,
		IncludeHeadings:               true,
		IncludeShortCopyright:         true,
		IncludeCopyright:              false,
		IncludePassageHorizontalLines: false,
		IncludeHeadingHorizontalLines: false,
		HorizontalLineLength:          55,
		IncludeSelahs:                 true,
		IndentUsing:                   IndentSpace,
		IndentParagraphs:              2,
		IndentPoetry:                  true,
		IndentPoetryLines:             4,
		IndentDeclares:                40,
		IndentPsalmDoxology:           30,
		LineLength:                    0,
	}
}

// Encode renders the options as a query string fragment: one "&key=value" pair per option
// in a fixed order, with indent-using last.
func (o RequestOptions) Encode() string {
	var b strings.Builder

	writeBool := func(key string, value bool) {
		b.WriteString("&" + key + "=" + strconv.FormatBool(value))
	}

	writeInt := func(key string, value int) {
		b.WriteString("&" + key + "=" + strconv.Itoa(value))
	}

	writeBool("include-passage-references", o.IncludePassageReferences)
	writeBool("include-verse-numbers", o.IncludeVerseNumbers)
	writeBool("include-first-verse-numbers", o.IncludeFirstVerseNumbers)
	writeBool("include-footnotes", o.IncludeFootnotes)
	writeBool("include-footnote-body", o.IncludeFootnoteBody)
	writeBool("include-headings", o.IncludeHeadings)
	writeBool("include-short-copyright", o.IncludeShortCopyright)
	writeBool("include-copyright", o.IncludeCopyright)
	writeBool("include-passage-horizontal-lines", o.IncludePassageHorizontalLines)
	writeBool("include-heading-horizontal-lines", o.IncludeHeadingHorizontalLines)
	writeInt("horizontal-line-length", o.HorizontalLineLength)
	writeBool("include-selahs", o.IncludeSelahs)
	writeInt("indent-paragraphs", o.IndentParagraphs)
	writeBool("indent-poetry", o.IndentPoetry)
	writeInt("indent-poetry-lines", o.IndentPoetryLines)
	writeInt("indent-declares", o.IndentDeclares)
	writeInt("indent-psalm-doxology", o.IndentPsalmDoxology)
	writeInt("line-length", o.LineLength)

	b.WriteString("&indent-using=" + string(o.IndentUsing))

	return b.String()
}

// BuildQuery appends the caller's raw extra parameters to the encoded options.
// extra is forwarded verbatim apart from a leading '&' added when missing.
func BuildQuery(options RequestOptions, extra string) string {
	return options.Encode() + normalizeExtraParams(extra)
}

func normalizeExtraParams(extra string) string {
	extra = strings.TrimSpace(extra)
	if extra == "" || strings.HasPrefix(extra, "&") {
		return extra
	}

	return "&" + extra
}
