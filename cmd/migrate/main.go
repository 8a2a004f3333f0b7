package main

import (
	"os"
	"slotbook/config"
	"slotbook/helper"
	"slotbook/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, drop or step-up")
	}

	if cfg.Booking.Store.Driver != config.StoreDriverPostgres {
		log.Warn().Str("driver", cfg.Booking.Store.Driver).Msg("Booking store is not postgres, migrations will not be used by the app")
	}

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Migration failed")
	}
}
