package app

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/esv-reader/internal/client/esv"
	"github.com/oshokin/esv-reader/internal/logger"
)

// ExecuteBooksCommand prints the accepted book names, one per line.
func ExecuteBooksCommand(ctx context.Context, out io.Writer) {
	for _, book := range esv.Books() {
		if _, err := fmt.Fprintln(out, book); err != nil {
			logger.Fatalf(ctx, "Failed to print books: %v", err)
		}
	}
}
