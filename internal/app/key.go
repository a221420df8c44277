package app

import (
	"context"
	"strings"

	"github.com/oshokin/esv-reader/internal/config"
	"github.com/oshokin/esv-reader/internal/logger"
	"github.com/oshokin/esv-reader/internal/utils"
)

// ExecuteKeySetCommand stores the API key in the configuration file.
func ExecuteKeySetCommand(ctx context.Context, cfg *config.Config, apiKey string) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		logger.Fatalf(ctx, "Failed to save API key: %v", config.ErrEmptyAPIKey)
	}

	if cfg.ConfigFile == "" {
		cfg.ConfigFile = config.DefaultConfigPath()
	}

	isConfigExist, err := utils.IsFileExist(cfg.ConfigFile)
	if err != nil {
		logger.Fatalf(ctx, "Failed to check configuration file '%s': %v", cfg.ConfigFile, err)
	}

	cfg.APIKey = apiKey

	if err = config.SaveAPIKey(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
	}

	if isConfigExist {
		logger.Infof(ctx, "API key updated in %s", cfg.ConfigFile)
	} else {
		logger.Infof(ctx, "Created %s with the API key", cfg.ConfigFile)
	}

	logger.Info(ctx, "Try reading a passage:")
	logger.Info(ctx, "esv-reader john 3:16")
}
