package app

import (
	"context"
	"errors"

	"github.com/oshokin/esv-reader/internal/client/esv"
	"github.com/oshokin/esv-reader/internal/config"
	"github.com/oshokin/esv-reader/internal/logger"
	esv_service "github.com/oshokin/esv-reader/internal/service/esv"
)

// ExecuteSearchCommand prints the results of a full-text search.
func ExecuteSearchCommand(ctx context.Context, cfg *config.Config, req *esv_service.SearchRequest) {
	ctx = logger.WithKV(ctx, "query", req.Query)

	err := newService(ctx, cfg).Search(ctx, req)

	switch {
	case err == nil:
		return
	case errors.Is(err, esv.ErrSearch):
		logger.Fatalf(ctx, "No results found for '%s'", req.Query)
	default:
		logger.Fatalf(ctx, "Search failed: %v", err)
	}
}
