package main

import (
	"fmt"
	"net/http"
	"time"

	"corte-report-go/internal/config"
	"corte-report-go/internal/logger"
)

// setup loads config first so that ENVIRONMENT and LOG_LEVEL from .env shape
// the logger.
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	return cfg, logger.New(), err
}

func main() {
	cfg, log, err := setup()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	log.WithField("service", "corte-report-go").Info("starting service")

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      newMux(cfg, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}
