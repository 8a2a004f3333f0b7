package handler

import (
	"net/http"
	"slotbook/config"
	"slotbook/di"
	"slotbook/shared/logger"
	"slotbook/transport/http/response"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	handler http.Handler
	initErr error
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server, err := di.InitializeService()
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize service")

			initErr = err

			return
		}

		handler = server.Handler()
	})

	if initErr != nil {
		response.WithUnhealthy(w)

		return
	}

	handler.ServeHTTP(w, r)
}
