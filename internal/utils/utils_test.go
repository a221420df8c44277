package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSafeInt64ToUint64 tests the SafeInt64ToUint64 function.
func TestSafeInt64ToUint64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), SafeInt64ToUint64(-1))
	assert.Equal(t, uint64(0), SafeInt64ToUint64(0))
	assert.Equal(t, uint64(4096), SafeInt64ToUint64(4096))
}

// TestCollapseWhitespace tests the CollapseWhitespace function.
func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "single word", input: "John", expected: "John"},
		{name: "surrounding spaces", input: "  1 John  ", expected: "1 John"},
		{name: "inner runs", input: "Song \t of\n\nSolomon", expected: "Song of Solomon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, CollapseWhitespace(tt.input))
		})
	}
}

// TestIsFileExist tests the IsFileExist function.
func TestIsFileExist(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "passage.mp3")

	exists, err := IsFileExist(filePath)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(filePath, []byte("audio"), 0o600))

	exists, err = IsFileExist(filePath)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = IsFileExist(tempDir)
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{
			name:        "text/plain",
			contentType: "text/plain",
			expected:    true,
		},
		{
			name:        "text/html with charset",
			contentType: "text/html; charset=utf-8",
			expected:    true,
		},
		{
			name:        "application/json",
			contentType: "application/json",
			expected:    true,
		},
		{
			name:        "application/problem+json",
			contentType: "application/problem+json",
			expected:    true,
		},
		{
			name:        "audio/mpeg",
			contentType: "audio/mpeg",
			expected:    false,
		},
		{
			name:        "text with invalid charset",
			contentType: "text/plain; charset=invalid",
			expected:    false,
		},
		{
			name:        "invalid content type",
			contentType: "invalid/type",
			expected:    false,
		},
		{
			name:        "empty content type",
			contentType: "",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := IsTextContentType(tt.contentType)
			assert.Equal(t, tt.expected, result)
		})
	}
}
