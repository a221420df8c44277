package esv

import (
	"context"

	"github.com/oshokin/id3v2/v2"

	"github.com/oshokin/esv-reader/internal/logger"
)

// TagProcessor defines the interface for writing metadata tags to audio passages.
type TagProcessor interface {
	WriteTags(ctx context.Context, req *WriteTagsRequest) error
}

// WriteTagsRequest contains parameters for writing metadata to an audio passage.
type WriteTagsRequest struct {
	// AudioPath is the file path of the MP3.
	AudioPath string
	// Title is the passage reference, e.g. "John 3:16".
	Title string
	// Album is the canonical book name.
	Album string
}

const (
	// audioArtist is written as the artist of every audio passage.
	audioArtist = "English Standard Version"
	// audioPublisher is the publisher of the ESV audio.
	audioPublisher = "Crossway"
	// audioGenre is the ID3 genre of audio passages.
	audioGenre = "Speech"
)

// TagProcessorImpl provides the default implementation of TagProcessor.
type TagProcessorImpl struct{}

// NewTagProcessor creates a new TagProcessor instance.
func NewTagProcessor() TagProcessor {
	return new(TagProcessorImpl)
}

// WriteTags replaces the title, album, artist, genre and publisher frames of an MP3.
func (tp *TagProcessorImpl) WriteTags(ctx context.Context, req *WriteTagsRequest) error {
	if req == nil || req.AudioPath == "" {
		return ErrEmptyAudioPath
	}

	//nolint:exhaustruct // ParseFrames intentionally omitted when Parse=false (parsing disabled).
	tag, err := id3v2.Open(req.AudioPath, id3v2.Options{Parse: false})
	if err != nil {
		return err
	}

	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(req.Title)
	tag.SetAlbum(req.Album)
	tag.SetArtist(audioArtist)
	tag.SetGenre(audioGenre)
	tag.AddTextFrame(tag.CommonID("Publisher"), tag.DefaultEncoding(), audioPublisher)

	logger.Debugf(ctx, "Writing ID3 tags to %s", req.AudioPath)

	return tag.Save()
}
