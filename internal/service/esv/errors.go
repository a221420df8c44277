package esv

import "errors"

// Static error definitions for better error handling.
var (
	// ErrEmptyAudioPath indicates that the audio file path is empty.
	ErrEmptyAudioPath = errors.New("audio path cannot be empty")
	// ErrNoAudioPlayer indicates that no audio player command is configured.
	ErrNoAudioPlayer = errors.New("no audio player configured")
	// ErrEmptyCommand indicates a command line without a program.
	ErrEmptyCommand = errors.New("command cannot be empty")
	// ErrInvalidCommand indicates a command line that cannot be split into words, e.g. an unclosed quote.
	ErrInvalidCommand = errors.New("invalid command line")
)
