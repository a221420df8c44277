package esv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oshokin/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/esv-reader/internal/constants"
)

// TestTagProcessor_WriteTags tests that ID3 frames are written to an MP3 file.
func TestTagProcessor_WriteTags(t *testing.T) {
	t.Parallel()

	audioPath := filepath.Join(t.TempDir(), "passage.mp3")
	require.NoError(t, os.WriteFile(audioPath, nil, constants.DefaultFilePermissions))

	err := NewTagProcessor().WriteTags(context.Background(), &WriteTagsRequest{
		AudioPath: audioPath,
		Title:     "John 3:16",
		Album:     "John",
	})
	require.NoError(t, err)

	//nolint:exhaustruct // ParseFrames intentionally omitted to parse every frame.
	tag, err := id3v2.Open(audioPath, id3v2.Options{Parse: true})
	require.NoError(t, err)

	defer tag.Close()

	assert.Equal(t, "John 3:16", tag.Title())
	assert.Equal(t, "John", tag.Album())
	assert.Equal(t, audioArtist, tag.Artist())
	assert.Equal(t, audioGenre, tag.Genre())
}

// TestTagProcessor_WriteTags_Errors tests the request checks.
func TestTagProcessor_WriteTags_Errors(t *testing.T) {
	t.Parallel()

	tp := NewTagProcessor()

	require.ErrorIs(t, tp.WriteTags(context.Background(), nil), ErrEmptyAudioPath)
	require.ErrorIs(t, tp.WriteTags(context.Background(), &WriteTagsRequest{}), ErrEmptyAudioPath)

	err := tp.WriteTags(context.Background(), &WriteTagsRequest{
		AudioPath: filepath.Join(t.TempDir(), "missing.mp3"),
	})
	require.Error(t, err)
}
