package main

import (
	"context"

	"dueday/config"
	"dueday/di"
	"dueday/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	application, cleanup, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer cleanup()

	if err := application.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("Application stopped with error")
	}
}
