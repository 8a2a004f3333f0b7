package main

import (
	"context"
	"os"
	"os/signal"
	"slotbook/config"
	"slotbook/di"
	"slotbook/shared/logger"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if !cfg.Kafka.Enable {
		log.Warn().Msg("Kafka is disabled, notifier has nothing to consume")

		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	di.InitializeNotifier().Run(ctx)

	log.Info().Msg("Notifier stopped")
}
