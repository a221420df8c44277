package esv

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/esv-reader/internal/logger"
	"github.com/oshokin/esv-reader/internal/utils"
)

// progressBarThreshold is the smallest payload that gets a progress bar.
const progressBarThreshold = 256 * 1024

// barFactory creates a byte progress bar; progressbar.DefaultBytes outside of tests.
type barFactory func(maxBytes int64, description ...string) *progressbar.ProgressBar

// downloadProgress feeds client progress callbacks into a progress bar.
// The bar is created on the first callback whose total is known and large enough.
type downloadProgress struct {
	ctx         context.Context //nolint:containedctx // Only used for logging from the callback.
	description string
	enabled     bool
	newBar      barFactory
	bar         *progressbar.ProgressBar
}

func newDownloadProgress(ctx context.Context, description string, newBar barFactory) *downloadProgress {
	return &downloadProgress{
		ctx:         ctx,
		description: description,
		enabled:     logger.Level() <= zap.InfoLevel,
		newBar:      newBar,
	}
}

// update matches the client's ProgressFunc signature.
func (p *downloadProgress) update(downloaded, downloadTotal, _, _ int64) {
	if p.bar == nil {
		if !p.enabled || downloadTotal < progressBarThreshold {
			return
		}

		logger.Infof(p.ctx, "Downloading %s", humanize.Bytes(utils.SafeInt64ToUint64(downloadTotal)))

		p.bar = p.newBar(downloadTotal, p.description)
	}

	_ = p.bar.Set64(downloaded)
}

// finish completes the bar if one was shown.
func (p *downloadProgress) finish() {
	if p.bar == nil {
		return
	}

	_ = p.bar.Finish()
}
