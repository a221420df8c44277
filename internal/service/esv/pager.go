package esv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/oshokin/esv-reader/internal/logger"
)

// Pager displays text to the user.
type Pager interface {
	Page(ctx context.Context, text string) error
}

// CommandPager pipes text into an external pager such as "less -R".
// With no command, or when the command is not installed, it writes to its fallback writer.
type CommandPager struct {
	// command is the pager command line; empty means no pager.
	command string
	// out receives the pager's output, or the text itself without a pager.
	out io.Writer
}

// NewPager creates a pager running command. An empty command writes straight to out.
func NewPager(command string, out io.Writer) Pager {
	if out == nil {
		out = os.Stdout
	}

	return &CommandPager{
		command: strings.TrimSpace(command),
		out:     out,
	}
}

// Page displays text, appending a final newline when it is missing.
func (p *CommandPager) Page(ctx context.Context, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if p.command == "" {
		return p.write(text)
	}

	args, err := shellwords.Parse(p.command)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", ErrInvalidCommand, p.command, err)
	}

	if len(args) == 0 || args[0] == "" {
		return p.write(text)
	}

	//nolint:gosec // The pager command comes from the user's own configuration.
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = p.out
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	if errors.Is(err, exec.ErrNotFound) {
		logger.Warnf(ctx, "Pager '%s' is not installed, printing directly", args[0])

		return p.write(text)
	}

	if err != nil {
		return fmt.Errorf("failed to run pager '%s': %w", p.command, err)
	}

	return nil
}

func (p *CommandPager) write(text string) error {
	if _, err := io.WriteString(p.out, text); err != nil {
		return fmt.Errorf("failed to print text: %w", err)
	}

	return nil
}
