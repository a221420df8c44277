package esv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBooks tests the canonical book list.
func TestBooks(t *testing.T) {
	t.Parallel()

	books := Books()
	require.Len(t, books, 67)
	assert.Equal(t, "Genesis", books[0])
	assert.Equal(t, "Revelation", books[len(books)-1])
	assert.Contains(t, books, "Song of Solomon")
	assert.Contains(t, books, "Song of Songs")

	// Callers get a copy; the table itself cannot be changed.
	books[0] = "Gospel"
	assert.Equal(t, "Genesis", Books()[0])
	assert.False(t, IsValidBook("Gospel"))
}

// TestIsValidBook_AllBooksAnyCase tests that every canonical book is accepted in any case.
func TestIsValidBook_AllBooksAnyCase(t *testing.T) {
	t.Parallel()

	for _, book := range Books() {
		assert.True(t, IsValidBook(book), book)
		assert.True(t, IsValidBook(strings.ToLower(book)), book)
		assert.True(t, IsValidBook(strings.ToUpper(book)), book)
		assert.True(t, IsValidBook(mixCase(book)), book)
	}
}

// TestIsValidBook tests rejection of names outside the canonical list.
func TestIsValidBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "canonical", input: "John", expected: true},
		{name: "numbered", input: "1 Corinthians", expected: true},
		{name: "alternate spelling", input: "song of songs", expected: true},
		{name: "not a book", input: "Gospel", expected: false},
		{name: "abbreviation", input: "Jn", expected: false},
		{name: "prefix", input: "Gen", expected: false},
		{name: "missing space", input: "1John", expected: false},
		{name: "underscore is not normalized", input: "1_john", expected: false},
		{name: "hyphen is not normalized", input: "song-of-solomon", expected: false},
		{name: "singular psalm", input: "Psalm", expected: false},
		{name: "surrounding spaces", input: " John ", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsValidBook(tt.input))
		})
	}
}

// TestIsValidVerse tests the four accepted verse shapes.
func TestIsValidVerse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "verse", input: "16", expected: true},
		{name: "verse range", input: "16-21", expected: true},
		{name: "chapter and verse", input: "3:16", expected: true},
		{name: "chapter and verse range", input: "3:16-21", expected: true},
		{name: "three digits", input: "119:176", expected: true},
		{name: "out of bounds still passes", input: "999:999", expected: true},
		{name: "descending range still passes", input: "21-16", expected: true},
		{name: "too many parts", input: "3:16:21", expected: false},
		{name: "letters", input: "abc", expected: false},
		{name: "empty", input: "", expected: false},
		{name: "four digits", input: "1000", expected: false},
		{name: "cross chapter range", input: "3:16-4:2", expected: false},
		{name: "trailing dash", input: "3:16-", expected: false},
		{name: "spaces", input: "3 : 16", expected: false},
		{name: "trailing newline", input: "3:16\n", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsValidVerse(tt.input))
		})
	}
}

// TestNormalizeBookInput tests command line book normalization.
func TestNormalizeBookInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "john", expected: "john"},
		{input: "1_john", expected: "1 john"},
		{input: "song-of-solomon", expected: "song of solomon"},
		{input: "  2   Kings ", expected: "2 Kings"},
		{input: "song__of--songs", expected: "song of songs"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			normalized := NormalizeBookInput(tt.input)
			assert.Equal(t, tt.expected, normalized)
			assert.True(t, IsValidBook(normalized))
		})
	}
}

// TestValidateReference tests the combined reference check.
func TestValidateReference(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateReference("John", "3:16"))

	err := ValidateReference("Gospel", "3:16")
	require.ErrorIs(t, err, ErrReference)
	assert.Contains(t, err.Error(), "Gospel")

	err = ValidateReference("John", "3:16:21")
	require.ErrorIs(t, err, ErrReference)
	assert.Contains(t, err.Error(), "3:16:21")
}

// TestCanonicalBook tests the canonical spelling lookup.
func TestCanonicalBook(t *testing.T) {
	t.Parallel()

	book, ok := CanonicalBook("1 JOHN")
	require.True(t, ok)
	assert.Equal(t, "1 John", book)

	book, ok = CanonicalBook("song of songs")
	require.True(t, ok)
	assert.Equal(t, "Song of Songs", book)

	_, ok = CanonicalBook("1john")
	assert.False(t, ok)
}

func mixCase(s string) string {
	var b strings.Builder

	for i, r := range s {
		if i%2 == 0 {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteString(strings.ToLower(string(r)))
		}
	}

	return b.String()
}
