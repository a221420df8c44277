package esv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/schollz/progressbar/v3"

	"github.com/oshokin/esv-reader/internal/client/esv"
	"github.com/oshokin/esv-reader/internal/config"
	"github.com/oshokin/esv-reader/internal/logger"
)

// Service runs the passage, audio and search commands.
type Service interface {
	// ShowPassage fetches a text or HTML passage and hands it to the pager.
	ShowPassage(ctx context.Context, req *ShowPassageRequest) error
	// PlayPassage downloads the audio of a passage, tags it and plays it.
	PlayPassage(ctx context.Context, book, verse string) error
	// Search prints the results of a full-text search.
	Search(ctx context.Context, req *SearchRequest) error
}

// ShowPassageRequest describes a passage to display.
type ShowPassageRequest struct {
	// Book is the book name as entered, e.g. "1 John".
	Book string
	// Verse is the verse expression, e.g. "3:16".
	Verse string
	// HTML fetches the HTML rendering and shows it as Markdown.
	HTML bool
}

// SearchRequest describes a search to print.
type SearchRequest struct {
	// Query is the free-text search query.
	Query string
	// Page is the 1-based result page; 0 leaves the API default.
	Page int
	// AsJSON prints the raw API response instead of formatted results.
	AsJSON bool
}

// ServiceImpl implements Service.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// esvClient is the client for interacting with the ESV API.
	esvClient esv.Client
	// pager displays passages and formatted search results.
	pager Pager
	// player plays audio passages.
	player Player
	// tagProcessor writes metadata tags to audio passages.
	tagProcessor TagProcessor
	// out receives raw JSON output.
	out io.Writer
	// newBar creates download progress bars.
	newBar barFactory
}

// NewService creates a service instance with dependency-injected components.
func NewService(
	cfg *config.Config,
	esvClient esv.Client,
	pager Pager,
	player Player,
	tagProcessor TagProcessor,
) Service {
	return &ServiceImpl{
		cfg:          cfg,
		esvClient:    esvClient,
		pager:        pager,
		player:       player,
		tagProcessor: tagProcessor,
		out:          os.Stdout,
		newBar:       progressbar.DefaultBytes,
	}
}

// ShowPassage fetches a text or HTML passage and hands it to the pager.
func (s *ServiceImpl) ShowPassage(ctx context.Context, req *ShowPassageRequest) error {
	passageRequest := &esv.PassageRequest{
		Book:        req.Book,
		Verse:       req.Verse,
		Options:     s.cfg.Passage,
		ExtraParams: s.cfg.ExtraParams,
	}

	var (
		text string
		err  error
	)

	if req.HTML {
		text, err = s.fetchHTMLAsMarkdown(ctx, passageRequest)
	} else {
		text, err = s.esvClient.GetPassage(ctx, passageRequest)
	}

	if err != nil {
		return err
	}

	return s.pager.Page(ctx, text)
}

// PlayPassage downloads the audio of a passage, tags it and plays it.
// A tagging failure is logged and does not prevent playback.
func (s *ServiceImpl) PlayPassage(ctx context.Context, book, verse string) error {
	progress := newDownloadProgress(ctx, "Downloading audio", s.newBar)

	s.esvClient.SetProgressFunc(progress.update)
	defer s.esvClient.SetProgressFunc(nil)

	audioPath, err := s.esvClient.GetAudioPassage(ctx, book, verse)

	progress.finish()

	if err != nil {
		return err
	}

	if s.cfg.TagAudio {
		canonicalBook, _ := esv.CanonicalBook(book)

		err = s.tagProcessor.WriteTags(ctx, &WriteTagsRequest{
			AudioPath: audioPath,
			Title:     canonicalBook + " " + verse,
			Album:     canonicalBook,
		})
		if err != nil {
			logger.Warnf(ctx, "Failed to write tags to '%s': %v", audioPath, err)
		}
	}

	return s.player.Play(ctx, audioPath)
}

// Search prints the results of a full-text search.
// Formatted results go through the pager, raw JSON is indented and printed directly.
func (s *ServiceImpl) Search(ctx context.Context, req *SearchRequest) error {
	searchRequest := &esv.SearchRequest{
		Query:    req.Query,
		Page:     req.Page,
		PageSize: s.cfg.SearchPageSize,
	}

	if req.AsJSON {
		return s.printRawSearch(ctx, searchRequest)
	}

	formatted, err := s.esvClient.SearchFormatted(ctx, searchRequest, s.cfg.SearchLineWidth)
	if err != nil {
		return err
	}

	return s.pager.Page(ctx, formatted)
}

func (s *ServiceImpl) fetchHTMLAsMarkdown(ctx context.Context, req *esv.PassageRequest) (string, error) {
	html, err := s.esvClient.GetHTMLPassage(ctx, req)
	if err != nil {
		return "", err
	}

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("%w: failed to convert HTML passage: %w", esv.ErrFormat, err)
	}

	return strings.TrimSpace(markdown), nil
}

func (s *ServiceImpl) printRawSearch(ctx context.Context, req *esv.SearchRequest) error {
	raw, err := s.esvClient.SearchRaw(ctx, req)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("%w: %w", esv.ErrFormat, err)
	}

	buf.WriteByte('\n')

	if _, err = buf.WriteTo(s.out); err != nil {
		return fmt.Errorf("failed to print search results: %w", err)
	}

	return nil
}
