package main

import (
	"github.com/oxtoacart/bpool"
	"github.com/rs/zerolog"
)

func main() {
	ctx := setupLogging()
	logger := zerolog.Ctx(ctx)

	config, err := loadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if config.Debugging {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	templates, err := loadTemplates(config)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse templates")
	}

	deps := &Dependencies{
		config:    config,
		logger:    logger,
		templates: templates,
		bufpool:   bpool.NewBufferPool(64),
		defaults:  defaultDataset(),
	}

	startHTTPServer(ctx, deps)
}
