package esv

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/oshokin/esv-reader/internal/utils"
)

// canonicalBooks lists the accepted book names in canonical order.
// "Song of Songs" is accepted as an alternate spelling of "Song of Solomon".
//
//nolint:gochecknoglobals // Immutable table, only reachable through Books and IsValidBook.
var canonicalBooks = [...]string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth", "1 Samuel", "2 Samuel",
	"1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles", "Ezra",
	"Nehemiah", "Esther", "Job", "Psalms", "Proverbs",
	"Ecclesiastes", "Song of Solomon", "Song of Songs", "Isaiah", "Jeremiah",
	"Lamentations", "Ezekiel", "Daniel", "Hosea", "Joel",
	"Amos", "Obadiah", "Jonah", "Micah", "Nahum",
	"Habakkuk", "Zephaniah", "Haggai", "Zechariah", "Malachi",
	"Matthew", "Mark", "Luke", "John", "Acts",
	"Romans", "1 Corinthians", "2 Corinthians", "Galatians", "Ephesians",
	"Philippians", "Colossians", "1 Thessalonians", "2 Thessalonians", "1 Timothy",
	"2 Timothy", "Titus", "Philemon", "Hebrews", "James",
	"1 Peter", "2 Peter", "1 John", "2 John", "3 John",
	"Jude", "Revelation",
}

var (
	//nolint:gochecknoglobals // Lower-cased lookup of canonical names built once from canonicalBooks.
	bookSet = buildBookSet()

	// versePatterns are the four accepted verse shapes: verse, verse range,
	// chapter:verse and chapter:verse range.
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
	versePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{1,3}$`),
		regexp.MustCompile(`^\d{1,3}-\d{1,3}$`),
		regexp.MustCompile(`^\d{1,3}:\d{1,3}$`),
		regexp.MustCompile(`^\d{1,3}:\d{1,3}-\d{1,3}$`),
	}
)

func buildBookSet() map[string]string {
	set := make(map[string]string, len(canonicalBooks))
	for _, book := range canonicalBooks {
		set[strings.ToLower(book)] = book
	}

	return set
}

// Books returns a copy of the accepted book names in canonical order.
func Books() []string {
	return slices.Clone(canonicalBooks[:])
}

// IsValidBook reports whether name is an accepted book name, ignoring case.
// The match is exact: "john" is valid, "jn", "1john" and "1_john" are not.
func IsValidBook(name string) bool {
	_, ok := bookSet[strings.ToLower(name)]

	return ok
}

// CanonicalBook returns the canonical spelling of an accepted book name, e.g. "1 john" -> "1 John".
func CanonicalBook(name string) (string, bool) {
	book, ok := bookSet[strings.ToLower(name)]

	return book, ok
}

// IsValidVerse reports whether expr has one of the accepted verse shapes:
// "16", "16-21", "3:16" or "3:16-21", each number one to three digits long.
// Ranges and bounds are not checked against the book.
func IsValidVerse(expr string) bool {
	for _, pattern := range versePatterns {
		if pattern.MatchString(expr) {
			return true
		}
	}

	return false
}

// NormalizeBookInput turns command line input such as "song_of_solomon" or "1-john"
// into a candidate book name by mapping '_' and '-' to spaces and collapsing whitespace.
// IsValidBook never applies this itself.
func NormalizeBookInput(raw string) string {
	replaced := strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}

		return r
	}, raw)

	return utils.CollapseWhitespace(replaced)
}

// ValidateReference returns an error wrapping ErrReference when the book or the verse is invalid.
func ValidateReference(book, verse string) error {
	if !IsValidBook(book) {
		return fmt.Errorf("%w: unknown book %q", ErrReference, book)
	}

	if !IsValidVerse(verse) {
		return fmt.Errorf("%w: malformed verse %q", ErrReference, verse)
	}

	return nil
}
