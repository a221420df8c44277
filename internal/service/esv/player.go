package esv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/oshokin/esv-reader/internal/logger"
)

// Player plays an audio file.
type Player interface {
	Play(ctx context.Context, path string) error
}

// CommandPlayer runs an external player with the audio file path as its last argument.
// The command line is split with shell quoting and escaping rules, without variable expansion.
type CommandPlayer struct {
	// command is the player command line, e.g. "mpg123 -q".
	command string
}

// NewPlayer creates a player running command.
func NewPlayer(command string) Player {
	return &CommandPlayer{command: strings.TrimSpace(command)}
}

// Play blocks until the player exits.
func (p *CommandPlayer) Play(ctx context.Context, path string) error {
	if path == "" {
		return ErrEmptyAudioPath
	}

	if p.command == "" {
		return ErrNoAudioPlayer
	}

	args, err := shellwords.Parse(p.command)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", ErrInvalidCommand, p.command, err)
	}

	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("%w: '%s'", ErrEmptyCommand, p.command)
	}

	args = append(args, path)

	logger.Debugf(ctx, "Playing audio with: %s", strings.Join(args, " "))

	//nolint:gosec // The player command comes from the user's own configuration.
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err = cmd.Run(); err != nil {
		return fmt.Errorf("failed to run audio player '%s': %w", args[0], err)
	}

	return nil
}
