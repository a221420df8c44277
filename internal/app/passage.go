package app

import (
	"context"
	"os"

	"github.com/oshokin/esv-reader/internal/client/esv"
	"github.com/oshokin/esv-reader/internal/config"
	"github.com/oshokin/esv-reader/internal/logger"
	esv_service "github.com/oshokin/esv-reader/internal/service/esv"
)

// PassageCommandRequest describes one invocation of the root command.
type PassageCommandRequest struct {
	// Book is the normalized book name.
	Book string
	// Verse is the verse expression.
	Verse string
	// HTML shows the HTML rendering as Markdown.
	HTML bool
	// Audio downloads and plays the audio instead of printing text.
	Audio bool
}

// ExecutePassageCommand prints or plays a single passage.
func ExecutePassageCommand(ctx context.Context, cfg *config.Config, req *PassageCommandRequest) {
	ctx = logger.WithKV(ctx, "book", req.Book, "verse", req.Verse)

	s := newService(ctx, cfg)

	var err error

	if req.Audio {
		err = s.PlayPassage(ctx, req.Book, req.Verse)
	} else {
		err = s.ShowPassage(ctx, &esv_service.ShowPassageRequest{
			Book:  req.Book,
			Verse: req.Verse,
			HTML:  req.HTML,
		})
	}

	if err != nil {
		logger.Fatalf(ctx, "Failed to get passage: %v", err)
	}
}

// newService wires the ESV client and the service components from the configuration.
func newService(ctx context.Context, cfg *config.Config) esv_service.Service {
	esvClient, err := esv.NewClient(cfg.APIKey, esv.WithBaseURL(cfg.BaseURL))
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize ESV client: %v", err)
	}

	pagerCommand := cfg.Pager
	if cfg.NoPager {
		pagerCommand = ""
	}

	return esv_service.NewService(
		cfg,
		esvClient,
		esv_service.NewPager(pagerCommand, os.Stdout),
		esv_service.NewPlayer(cfg.AudioPlayer),
		esv_service.NewTagProcessor())
}
