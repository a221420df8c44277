package utils

import (
	"mime"
	"os"
	"regexp"
	"strings"
)

var (
	// textContentTypePatterns matches content types whose bodies are safe to dump into logs:
	// "text/*", "application/json" and the problem-details JSON the API answers errors with.
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
	textContentTypePatterns = []*regexp.Regexp{
		regexp.MustCompile("^text/.+"),
		regexp.MustCompile("^application/json$"),
		regexp.MustCompile(`^application/problem\+json$`),
	}

	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// SafeInt64ToUint64 converts an int64 to an uint64, clamping negative values to zero.
func SafeInt64ToUint64(val int64) uint64 {
	if val < 0 {
		return 0
	}

	return uint64(val)
}

// CollapseWhitespace trims the string and replaces every whitespace run with a single space.
func CollapseWhitespace(s string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(s), " ")
}

// IsFileExist checks if a file exists at the specified path.
// It returns true if the file exists and is not a directory, false if the file does not exist,
// and an error if there was an issue accessing the file.
func IsFileExist(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// IsTextContentType checks if the given content type represents a text-based format.
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}
