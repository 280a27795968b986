package main

import (
	"os"

	"rollcall/internal/bot"
	"rollcall/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Missing token is fatal before connecting
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Msg("Log level not understood, using info")
	}

	// Create bot
	bot, err := bot.CreateBot(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create discord bot")
	}

	// Run bot
	if err := bot.Run(); err != nil {
		log.Fatal().Err(err).Msg("Bot stopped")
	}
}
